// Package setutil holds small set types for id bookkeeping.
package setutil

// UintSet is an unordered set of ids.
type UintSet struct {
	items map[uint]struct{}
}

func NewUintSetWithCap(n int) *UintSet {
	return &UintSet{items: make(map[uint]struct{}, n)}
}

// Add inserts id and reports whether it was absent.
func (s *UintSet) Add(id uint) bool {
	if _, ok := s.items[id]; ok {
		return false
	}
	s.items[id] = struct{}{}
	return true
}

func (s *UintSet) Has(id uint) bool {
	_, ok := s.items[id]
	return ok
}

func (s *UintSet) Len() int {
	return len(s.items)
}
