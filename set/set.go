/*
Package set provides an ordered set on top of the binary search tree engine
of package bst.

Elements are kept in ascending order of the set's comparator and are unique:
inserting an element which compares equal to a present one is rejected.

The underlying tree is not balanced. Insertion in sorted order degrades the
set to a linear chain, with O(n) cost per operation.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package set

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/containers/bst"
	"github.com/npillmayer/containers/compare"
)

// Iterator is a bidirectional cursor over the elements of a set.
type Iterator[K any] = bst.Iterator[K]

// Set is an ordered set of unique elements.
//
// Sets must be created with New or NewWith. They are not safe for concurrent use.
type Set[K any] struct {
	tree *bst.Tree[K]
}

// New creates a set ordered by the natural order of K, holding items.
func New[K cmp.Ordered](items ...K) *Set[K] {
	s, err := NewWith[K](compare.Ordered[K]{}, items...)
	if err != nil {
		panic(err) // cannot happen with a non-nil comparator
	}
	return s
}

// NewWith creates a set ordered by c, holding items. Duplicates among items
// are dropped.
func NewWith[K any](c compare.Comparator[K], items ...K) (*Set[K], error) {
	tree, err := bst.New(bst.Config[K]{Comparator: c})
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		tree.Insert(item)
	}
	return &Set[K]{tree: tree}, nil
}

// Clone returns a copy of the set.
func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{tree: s.tree.Clone()}
}

// Move returns a new set taking over all elements of s, leaving s empty.
func (s *Set[K]) Move() *Set[K] {
	return &Set[K]{tree: s.tree.Move()}
}

// Assign replaces the content of s by a copy of the content of other.
func (s *Set[K]) Assign(other *Set[K]) {
	if s == other {
		return
	}
	s.tree = other.tree.Clone()
}

// Len returns the number of elements.
func (s *Set[K]) Len() int { return s.tree.Len() }

// IsEmpty reports whether the set has no elements.
func (s *Set[K]) IsEmpty() bool { return s.tree.IsEmpty() }

// MaxSize returns a theoretical upper bound for the number of elements.
func (s *Set[K]) MaxSize() int { return s.tree.MaxSize() }

// Clear removes all elements.
func (s *Set[K]) Clear() { s.tree.Clear() }

// Swap exchanges the contents of two sets in constant time.
func (s *Set[K]) Swap(other *Set[K]) { s.tree.Swap(other.tree) }

// Begin returns an iterator to the smallest element, or End() if the set is empty.
func (s *Set[K]) Begin() Iterator[K] { return s.tree.Begin() }

// End returns the iterator one past the largest element.
func (s *Set[K]) End() Iterator[K] { return s.tree.End() }

// All returns an iterator over all elements in ascending order.
func (s *Set[K]) All() iter.Seq[K] { return s.tree.All() }

// Backward returns an iterator over all elements in descending order.
func (s *Set[K]) Backward() iter.Seq[K] { return s.tree.Backward() }

// Insert adds key to the set. If an equal element is present, Insert returns
// an iterator to it and false, leaving the set unchanged.
func (s *Set[K]) Insert(key K) (Iterator[K], bool) {
	return s.tree.Insert(key)
}

// Contains reports whether key is an element of the set.
func (s *Set[K]) Contains(key K) bool {
	return s.tree.Contains(key)
}

// Find returns an iterator to the element equal to key, or End().
func (s *Set[K]) Find(key K) Iterator[K] {
	return s.tree.Find(key)
}

// Erase removes the element at pos. Erasing End() is a no-op and returns false.
func (s *Set[K]) Erase(pos Iterator[K]) bool {
	return s.tree.Erase(pos)
}

// Merge moves every element of other which is absent from s into s.
// Elements already present in s remain in other.
func (s *Set[K]) Merge(other *Set[K]) {
	if other == nil || other == s {
		return
	}
	s.tree.Merge(other.tree)
}

// String returns the elements in ascending order, e.g. "{1, 2, 3}".
func (s *Set[K]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	i := 0
	for k := range s.All() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", k)
		i++
	}
	b.WriteByte('}')
	return b.String()
}
