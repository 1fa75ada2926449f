package core

import (
	"sort"

	"github.com/google/uuid"
)

// LikedSet is an immutable set of liked offer IDs. The zero value is empty.
type LikedSet struct {
	ids map[uuid.UUID]struct{}
}

// Toggle returns a new set with id removed if present, inserted otherwise.
// The receiver is left untouched.
func (s LikedSet) Toggle(id uuid.UUID) LikedSet {
	next := make(map[uuid.UUID]struct{}, len(s.ids)+1)
	for k := range s.ids {
		next[k] = struct{}{}
	}
	if _, ok := next[id]; ok {
		delete(next, id)
	} else {
		next[id] = struct{}{}
	}
	return LikedSet{ids: next}
}

func (s LikedSet) Has(id uuid.UUID) bool {
	_, ok := s.ids[id]
	return ok
}

func (s LikedSet) Len() int {
	return len(s.ids)
}

// IDs returns the members sorted by their string form.
func (s LikedSet) IDs() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

func (s LikedSet) Equal(other LikedSet) bool {
	if len(s.ids) != len(other.ids) {
		return false
	}
	for id := range s.ids {
		if _, ok := other.ids[id]; !ok {
			return false
		}
	}
	return true
}
