// Package board holds the per-session state of the offer list view: the
// loaded offers, the liked set and the open disclosure popup.
package board

import (
	"sync"

	"github.com/google/uuid"

	"github.com/baxromumarov/job-board/internal/core"
)

// Board is the single owner of session state. Callers get copies.
type Board struct {
	mu         sync.RWMutex
	offers     []core.JobOffer
	liked      core.LikedSet
	disclosure core.Disclosure
}

func New() *Board {
	return &Board{}
}

// SetOffers replaces the whole offer collection.
func (b *Board) SetOffers(offers []core.JobOffer) {
	cp := make([]core.JobOffer, len(offers))
	copy(cp, offers)

	b.mu.Lock()
	b.offers = cp
	b.mu.Unlock()
}

func (b *Board) Offers() []core.JobOffer {
	b.mu.RLock()
	defer b.mu.RUnlock()
	cp := make([]core.JobOffer, len(b.offers))
	copy(cp, b.offers)
	return cp
}

// Loading reports whether no offers have been loaded yet. An empty View
// with Loading false means nothing matched.
func (b *Board) Loading() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.offers) == 0
}

func (b *Board) View(searchTerm, location string) []core.JobOffer {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return core.Filter(b.offers, searchTerm, location)
}

// Snapshot is a consistent view of the board for one render.
type Snapshot struct {
	Loading    bool
	Offers     []core.JobOffer
	Liked      core.LikedSet
	Disclosure core.Disclosure
}

// Snapshot filters the offers and reads the likes and disclosure under a
// single lock.
func (b *Board) Snapshot(searchTerm, location string) Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return Snapshot{
		Loading:    len(b.offers) == 0,
		Offers:     core.Filter(b.offers, searchTerm, location),
		Liked:      b.liked,
		Disclosure: b.disclosure,
	}
}

func (b *Board) Offer(id uuid.UUID) (core.JobOffer, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, o := range b.offers {
		if o.ID == id {
			return o, true
		}
	}
	return core.JobOffer{}, false
}

func (b *Board) ToggleLike(id uuid.UUID) core.LikedSet {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.liked = b.liked.Toggle(id)
	return b.liked
}

func (b *Board) Liked(id uuid.UUID) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.liked.Has(id)
}

func (b *Board) LikedSet() core.LikedSet {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.liked
}

func (b *Board) ToggleEmail(id uuid.UUID) core.Disclosure {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.disclosure = b.disclosure.ToggleEmail(id)
	return b.disclosure
}

func (b *Board) ToggleDetails(id uuid.UUID) core.Disclosure {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.disclosure = b.disclosure.ToggleDetails(id)
	return b.disclosure
}

func (b *Board) CloseDisclosure() {
	b.mu.Lock()
	b.disclosure = b.disclosure.Close()
	b.mu.Unlock()
}

func (b *Board) Disclosure() core.Disclosure {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.disclosure
}
