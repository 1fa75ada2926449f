package board

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/baxromumarov/job-board/internal/client"
	"github.com/baxromumarov/job-board/internal/core"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBoardViewAndLikes(t *testing.T) {
	b := New()
	if !b.Loading() {
		t.Fatal("new board should be loading")
	}

	sales := core.JobOffer{ID: uuid.New(), Title: "Account Manager", Category: "Sales", Location: "Lyon", Visible: true}
	dev := core.JobOffer{ID: uuid.New(), Title: "Backend Developer", Category: "Engineering", Location: "Paris", Visible: true}
	b.SetOffers([]core.JobOffer{sales, dev})

	if b.Loading() {
		t.Fatal("board with offers should not be loading")
	}
	if got := b.View("SALES", ""); len(got) != 1 || got[0].ID != sales.ID {
		t.Fatalf("View(SALES) = %+v", got)
	}
	if got := b.View("astronaut", ""); len(got) != 0 {
		t.Fatalf("View(astronaut) = %+v", got)
	}

	before := b.LikedSet()
	b.ToggleLike(dev.ID)
	if !b.Liked(dev.ID) || before.Has(dev.ID) {
		t.Fatal("ToggleLike should produce a new set containing the id")
	}
	b.ToggleLike(dev.ID)
	if !b.LikedSet().Equal(before) {
		t.Fatal("double toggle should restore the original set")
	}
}

func TestBoardOffersIsACopy(t *testing.T) {
	b := New()
	b.SetOffers([]core.JobOffer{{ID: uuid.New(), Title: "A", Visible: true}})

	got := b.Offers()
	got[0].Title = "changed"

	if b.Offers()[0].Title != "A" {
		t.Fatal("Offers leaked internal state")
	}
}

func TestBoardDisclosure(t *testing.T) {
	b := New()
	a, c := uuid.New(), uuid.New()

	b.ToggleEmail(a)
	if b.Disclosure().StateOf(a) != core.EmailOpen {
		t.Fatalf("state = %s", b.Disclosure().StateOf(a))
	}
	b.ToggleDetails(c)
	if b.Disclosure().StateOf(a) != core.Closed || b.Disclosure().StateOf(c) != core.DetailsOpen {
		t.Fatal("opening details on c should close a")
	}
	b.CloseDisclosure()
	if b.Disclosure().StateOf(c) != core.Closed {
		t.Fatal("CloseDisclosure did not close")
	}
}

func TestBoardSnapshot(t *testing.T) {
	b := New()
	if snap := b.Snapshot("", ""); !snap.Loading || snap.Offers == nil || len(snap.Offers) != 0 {
		t.Fatalf("empty snapshot = %+v", snap)
	}

	sales := core.JobOffer{ID: uuid.New(), Title: "Account Manager", Category: "Sales", Visible: true}
	dev := core.JobOffer{ID: uuid.New(), Title: "Backend Developer", Category: "Engineering", Visible: true}
	b.SetOffers([]core.JobOffer{sales, dev})
	b.ToggleLike(dev.ID)
	b.ToggleEmail(dev.ID)

	snap := b.Snapshot("developer", "")
	if snap.Loading {
		t.Fatal("snapshot should not be loading")
	}
	if len(snap.Offers) != 1 || snap.Offers[0].ID != dev.ID {
		t.Fatalf("snapshot offers = %+v", snap.Offers)
	}
	if !snap.Liked.Has(dev.ID) || snap.Disclosure.StateOf(dev.ID) != core.EmailOpen {
		t.Fatalf("snapshot state = %+v", snap)
	}

	b.ToggleLike(dev.ID)
	b.SetOffers(nil)
	if !snap.Liked.Has(dev.ID) || len(snap.Offers) != 1 {
		t.Fatal("later changes leaked into an earlier snapshot")
	}
}

func TestRenderDuringReload(t *testing.T) {
	offer := core.JobOffer{ID: uuid.New(), Title: "Backend Developer", Visible: true}
	b := New()
	b.SetOffers([]core.JobOffer{offer})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			if i%2 == 0 {
				b.SetOffers(nil)
			} else {
				b.SetOffers([]core.JobOffer{offer})
			}
		}
	}()

	for i := 0; i < 200; i++ {
		var sb strings.Builder
		if err := Render(&sb, b, "", ""); err != nil {
			t.Fatalf("Render: %v", err)
		}
		out := sb.String()
		if out != "Loading...\n" && !strings.Contains(out, "Backend Developer") {
			t.Fatalf("mixed render: %q", out)
		}
	}
	<-done
}

type stubFetcher struct {
	mu      sync.Mutex
	calls   []string
	results map[string][]core.JobOffer
	errs    map[string]error
	// gates blocks a token's fetch until closed, when set.
	gates   map[string]chan struct{}
}

func (f *stubFetcher) ListOffers(ctx context.Context, token string) ([]core.JobOffer, error) {
	f.mu.Lock()
	f.calls = append(f.calls, token)
	gate := f.gates[token]
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err := f.errs[token]; err != nil {
		return nil, err
	}
	return f.results[token], nil
}

func (f *stubFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func TestSyncLoadsOnToken(t *testing.T) {
	offer := core.JobOffer{ID: uuid.New(), Title: "A", Visible: true}
	f := &stubFetcher{results: map[string][]core.JobOffer{"t1": {offer}}}
	b := New()
	s := NewSync(b, f, quietLogger())
	defer s.Close()

	s.SetToken("")
	s.Wait()
	if f.callCount() != 0 {
		t.Fatal("empty token should not fetch")
	}

	s.SetToken("t1")
	s.Wait()
	if got := b.Offers(); len(got) != 1 || got[0].ID != offer.ID {
		t.Fatalf("offers = %+v", got)
	}

	s.SetToken("t1")
	s.Wait()
	if f.callCount() != 1 {
		t.Fatalf("same token refetched: %d calls", f.callCount())
	}
}

func TestSyncFailureKeepsPreviousOffers(t *testing.T) {
	offer := core.JobOffer{ID: uuid.New(), Title: "A", Visible: true}
	f := &stubFetcher{
		results: map[string][]core.JobOffer{"good": {offer}},
		errs:    map[string]error{"bad": &client.FetchError{Status: 500, Message: "boom"}},
	}
	b := New()
	s := NewSync(b, f, quietLogger())
	defer s.Close()

	s.SetToken("good")
	s.Wait()
	s.SetToken("bad")
	s.Wait()

	if got := b.Offers(); len(got) != 1 || got[0].ID != offer.ID {
		t.Fatalf("failure replaced offers: %+v", got)
	}
}

func TestSyncDropsStaleResponse(t *testing.T) {
	stale := core.JobOffer{ID: uuid.New(), Title: "stale", Visible: true}
	fresh := core.JobOffer{ID: uuid.New(), Title: "fresh", Visible: true}
	gate := make(chan struct{})
	f := &stubFetcher{
		results: map[string][]core.JobOffer{"old": {stale}, "new": {fresh}},
		gates:   map[string]chan struct{}{"old": gate},
	}
	b := New()
	s := NewSync(b, f, quietLogger())
	defer s.Close()

	s.SetToken("old")
	s.SetToken("new")
	close(gate)
	s.Wait()

	got := b.Offers()
	if len(got) != 1 || got[0].ID != fresh.ID {
		t.Fatalf("offers = %+v, want only fresh", got)
	}
}

func TestSyncCloseCancelsInFlight(t *testing.T) {
	gate := make(chan struct{})
	f := &stubFetcher{
		results: map[string][]core.JobOffer{"t": {{ID: uuid.New(), Visible: true}}},
		gates:   map[string]chan struct{}{"t": gate},
	}
	b := New()
	s := NewSync(b, f, quietLogger())

	s.SetToken("t")
	s.Close()

	if !b.Loading() {
		t.Fatal("result after Close should be discarded")
	}

	s.SetToken("other")
	s.Wait()
	if f.callCount() > 1 {
		t.Fatal("SetToken after Close should be a no-op")
	}
}

func TestSyncServerErrorKeepsPreviousOffers(t *testing.T) {
	offer := core.JobOffer{ID: uuid.New(), Title: "Backend Developer", Visible: true}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "Bearer good" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id":"` + offer.ID.String() + `","nom_poste":"Backend Developer","visibility":true}]`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"database unavailable"}`))
	}))
	defer srv.Close()

	c, err := client.New(srv.URL)
	if err != nil {
		t.Fatalf("client.New: %v", err)
	}

	b := New()
	s := NewSync(b, c, quietLogger())
	defer s.Close()

	s.SetToken("broken")
	s.Wait()
	if !b.Loading() {
		t.Fatalf("500 on first load should leave the board loading, got %+v", b.Offers())
	}

	s.SetToken("good")
	s.Wait()
	s.SetToken("broken-again")
	s.Wait()

	got := b.Offers()
	if len(got) != 1 || got[0].ID != offer.ID || got[0].Title != "Backend Developer" {
		t.Fatalf("offers after 500 = %+v", got)
	}
}
