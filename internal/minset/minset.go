package minset

import "github.com/google/btree"

const degree = 16

// Set is an ordered collection of distinct uint64 values. The zero Set
// is not usable; call New.
type Set struct {
	tree *btree.BTreeG[uint64]
}

// New returns an empty set.
func New() *Set {
	return &Set{tree: btree.NewOrderedG[uint64](degree)}
}

// Insert adds v to the set. Inserting a value that is already present
// leaves the set unchanged.
func (s *Set) Insert(v uint64) {
	s.tree.ReplaceOrInsert(v)
}

// Has reports whether v is in the set.
func (s *Set) Has(v uint64) bool {
	return s.tree.Has(v)
}

// Min returns the smallest value without removing it. The second return
// value is false when the set is empty.
func (s *Set) Min() (uint64, bool) {
	return s.tree.Min()
}

// PopMin removes and returns the smallest value. The second return value
// is false when the set is empty.
func (s *Set) PopMin() (uint64, bool) {
	return s.tree.DeleteMin()
}

// Len returns the number of values in the set.
func (s *Set) Len() int {
	return s.tree.Len()
}
