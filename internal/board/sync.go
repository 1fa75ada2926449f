package board

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/baxromumarov/job-board/internal/core"
	"github.com/baxromumarov/job-board/internal/observability"
)

type Fetcher interface {
	ListOffers(ctx context.Context, token string) ([]core.JobOffer, error)
}

// Sync loads the offer list whenever the token changes. At most one fetch
// is in flight; a newer token or Close cancels it and its result is dropped.
type Sync struct {
	board   *Board
	fetcher Fetcher
	logger  *slog.Logger

	mu     sync.Mutex
	token  string
	gen    uint64
	cancel context.CancelFunc
	closed bool
	wg     sync.WaitGroup
}

func NewSync(b *Board, f Fetcher, logger *slog.Logger) *Sync {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sync{board: b, fetcher: f, logger: logger}
}

// SetToken starts a fetch for token unless it is the current one. An empty
// token only cancels pending work.
func (s *Sync) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || token == s.token {
		return
	}
	s.token = token
	s.gen++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if token == "" {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.wg.Add(1)
	go s.fetch(ctx, s.gen, token)
}

// Wait blocks until all started fetches have returned.
func (s *Sync) Wait() {
	s.wg.Wait()
}

func (s *Sync) Close() {
	s.mu.Lock()
	s.closed = true
	s.gen++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *Sync) fetch(ctx context.Context, gen uint64, token string) {
	defer s.wg.Done()

	observability.IncFetch()
	start := time.Now()
	offers, err := s.fetcher.ListOffers(ctx, token)
	observability.ObserveFetchDuration(time.Since(start).Seconds())

	if ctx.Err() != nil {
		s.logger.Debug("offer fetch superseded", "generation", gen)
		return
	}
	if err != nil {
		observability.IncError(observability.ClassifyFetchError(err), "board")
		s.logger.Error("error fetching offers", "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || gen != s.gen {
		s.logger.Debug("dropping stale offer list", "generation", gen)
		return
	}
	s.board.SetOffers(offers)
	s.logger.Info("fetched offers", "count", len(offers))
}
