package localstore

import (
	"sort"

	"github.com/dmitrijs2005/docshare/internal/client/models"
)

// ViewedSet records which files of a link the local user has opened,
// downloaded or printed. Membership only grows.
type ViewedSet struct {
	ids map[models.FileID]struct{}
}

func NewViewedSet(ids ...models.FileID) *ViewedSet {
	s := &ViewedSet{ids: make(map[models.FileID]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

// Add inserts id and reports whether the set changed.
func (s *ViewedSet) Add(id models.FileID) bool {
	if _, ok := s.ids[id]; ok {
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

func (s *ViewedSet) Has(id models.FileID) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *ViewedSet) Len() int {
	return len(s.ids)
}

// IDs returns the members in ascending order.
func (s *ViewedSet) IDs() []models.FileID {
	out := make([]models.FileID, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Unviewed counts the files not yet in the set.
func (s *ViewedSet) Unviewed(files []models.FileRecord) int {
	n := 0
	for _, f := range files {
		if !s.Has(f.ID) {
			n++
		}
	}
	return n
}
