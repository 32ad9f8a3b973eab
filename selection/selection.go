// Package selection tracks which vertices a brush stroke has already touched.
package selection

// ID identifies a vertex to a Tracker.
type ID uint64

// Tracker records the stroke-scoped "touched" marker of vertices.
type Tracker interface {
	IsMarked(id ID) bool
	Mark(id ID)
	Unmark(id ID)
	ClearAll()
}

// Set is a Tracker backed by a hash set. The zero value is ready to use.
type Set struct {
	ids map[ID]struct{}
}

var _ Tracker = (*Set)(nil)

// IsMarked returns true if the id has been marked since the last clear.
func (s *Set) IsMarked(id ID) bool {
	_, ok := s.ids[id]
	return ok
}

// Mark adds an id.
func (s *Set) Mark(id ID) {
	if s.ids == nil {
		s.ids = make(map[ID]struct{})
	}
	s.ids[id] = struct{}{}
}

// Unmark removes an id.
func (s *Set) Unmark(id ID) {
	delete(s.ids, id)
}

// ClearAll removes every id.
func (s *Set) ClearAll() {
	for id := range s.ids {
		delete(s.ids, id)
	}
}

// Len returns the number of marked ids.
func (s *Set) Len() int {
	return len(s.ids)
}
