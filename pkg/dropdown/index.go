package dropdown

import (
	"fmt"
	"slices"
)

// NoRow is the row sentinel meaning "no particular row". A surface tap carrying it closes
// every component.
const NoRow = -1

// IndexPath addresses one row of one component.
type IndexPath struct {
	Component int
	Row       int
}

func (ip IndexPath) String() string {
	return fmt.Sprintf("[%d, %d]", ip.Component, ip.Row)
}

// IndexSet is an ordered set of non-negative row indexes. The zero value is empty and ready
// to use.
type IndexSet struct {
	items []int
}

// NewIndexSet returns a set holding the given indexes.
func NewIndexSet(indexes ...int) IndexSet {
	var s IndexSet
	for _, i := range indexes {
		s.Insert(i)
	}
	return s
}

// Insert adds i and reports whether it was absent.
func (s *IndexSet) Insert(i int) bool {
	pos, found := slices.BinarySearch(s.items, i)
	if found {
		return false
	}
	s.items = slices.Insert(s.items, pos, i)
	return true
}

// Remove deletes i and reports whether it was present.
func (s *IndexSet) Remove(i int) bool {
	pos, found := slices.BinarySearch(s.items, i)
	if !found {
		return false
	}
	s.items = slices.Delete(s.items, pos, pos+1)
	return true
}

// RemoveAll empties the set.
func (s *IndexSet) RemoveAll() {
	s.items = s.items[:0]
}

// RemoveFrom drops every index greater than or equal to limit.
func (s *IndexSet) RemoveFrom(limit int) {
	pos, _ := slices.BinarySearch(s.items, limit)
	s.items = s.items[:pos]
}

// Union adds every index of o.
func (s *IndexSet) Union(o IndexSet) {
	for _, i := range o.items {
		s.Insert(i)
	}
}

// Contains reports whether i is in the set.
func (s IndexSet) Contains(i int) bool {
	_, found := slices.BinarySearch(s.items, i)
	return found
}

func (s IndexSet) Len() int { return len(s.items) }

// IsEmpty reports whether the set holds no index.
func (s IndexSet) IsEmpty() bool { return len(s.items) == 0 }

// Slice returns the indexes in ascending order. The result is a copy.
func (s IndexSet) Slice() []int {
	return slices.Clone(s.items)
}

// Clone returns an independent copy.
func (s IndexSet) Clone() IndexSet {
	return IndexSet{items: slices.Clone(s.items)}
}

func (s IndexSet) String() string {
	return fmt.Sprint(s.items)
}
