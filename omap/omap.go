package omap

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/npillmayer/containers/bst"
	"github.com/npillmayer/containers/compare"
)

// Entry is a key/value pair stored in a map.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Iterator is a bidirectional cursor over the entries of a map.
type Iterator[K, V any] = bst.Iterator[Entry[K, V]]

// Map is an ordered map with unique keys.
//
// Maps must be created with New or NewWith. They are not safe for concurrent use.
type Map[K, V any] struct {
	tree *bst.Tree[Entry[K, V]]
}

// New creates a map ordered by the natural order of K, holding entries.
// For duplicate keys among entries, the first one wins.
func New[K cmp.Ordered, V any](entries ...Entry[K, V]) *Map[K, V] {
	m, err := NewWith[K, V](compare.Ordered[K]{}, entries...)
	if err != nil {
		panic(err) // cannot happen with a non-nil comparator
	}
	return m
}

// NewWith creates a map with keys ordered by c, holding entries.
func NewWith[K, V any](c compare.Comparator[K], entries ...Entry[K, V]) (*Map[K, V], error) {
	if c == nil {
		return nil, fmt.Errorf("%w: key comparator is required", bst.ErrInvalidConfig)
	}
	tree, err := bst.New(bst.Config[Entry[K, V]]{
		Comparator: compare.Project(entryKey[K, V], c),
	})
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		tree.Insert(e)
	}
	return &Map[K, V]{tree: tree}, nil
}

func entryKey[K, V any](e Entry[K, V]) K {
	return e.Key
}

func probe[K, V any](key K) Entry[K, V] {
	return Entry[K, V]{Key: key}
}

// Clone returns a copy of the map. Values are copied by assignment.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{tree: m.tree.Clone()}
}

// Move returns a new map taking over all entries of m, leaving m empty.
func (m *Map[K, V]) Move() *Map[K, V] {
	return &Map[K, V]{tree: m.tree.Move()}
}

// Assign replaces the content of m by a copy of the content of other.
func (m *Map[K, V]) Assign(other *Map[K, V]) {
	if m == other {
		return
	}
	m.tree = other.tree.Clone()
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.tree.Len() }

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.tree.IsEmpty() }

// MaxSize returns a theoretical upper bound for the number of entries.
func (m *Map[K, V]) MaxSize() int { return m.tree.MaxSize() }

// Clear removes all entries.
func (m *Map[K, V]) Clear() { m.tree.Clear() }

// Swap exchanges the contents of two maps in constant time.
func (m *Map[K, V]) Swap(other *Map[K, V]) { m.tree.Swap(other.tree) }

// Begin returns an iterator to the entry with the smallest key, or End().
func (m *Map[K, V]) Begin() Iterator[K, V] { return m.tree.Begin() }

// End returns the iterator one past the entry with the largest key.
func (m *Map[K, V]) End() Iterator[K, V] { return m.tree.End() }

// Index returns a pointer to the value for key. If key is absent, an entry
// with the zero value is inserted first.
//
// The pointer stays valid until the entry is erased.
func (m *Map[K, V]) Index(key K) *V {
	it, _ := m.tree.Insert(probe[K, V](key))
	return &it.Ref().Value
}

// At returns a pointer to the value for key. If key is absent, At returns
// an error wrapping ErrKeyNotFound and leaves the map unchanged.
func (m *Map[K, V]) At(key K) (*V, error) {
	it := m.tree.Find(probe[K, V](key))
	if !it.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return &it.Ref().Value, nil
}

// Get returns the value for key and whether it is present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	it := m.tree.Find(probe[K, V](key))
	return it.Value().Value, it.Valid()
}

// Insert adds an entry for key. If key is present, the map is left
// unchanged and Insert returns an iterator to the present entry and false.
func (m *Map[K, V]) Insert(key K, value V) (Iterator[K, V], bool) {
	return m.tree.Insert(Entry[K, V]{Key: key, Value: value})
}

// InsertEntry is like Insert, taking a key/value pair.
func (m *Map[K, V]) InsertEntry(e Entry[K, V]) (Iterator[K, V], bool) {
	return m.tree.Insert(e)
}

// InsertOrAssign adds an entry for key, or overwrites the value of the present
// entry in place. It reports whether a new entry was inserted.
func (m *Map[K, V]) InsertOrAssign(key K, value V) (Iterator[K, V], bool) {
	it, inserted := m.tree.Insert(Entry[K, V]{Key: key, Value: value})
	if !inserted {
		it.Ref().Value = value
	}
	return it, inserted
}

// Contains reports whether an entry for key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m.tree.Contains(probe[K, V](key))
}

// Find returns an iterator to the entry for key, or End().
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	return m.tree.Find(probe[K, V](key))
}

// Erase removes the entry at pos. Erasing End() is a no-op and returns false.
func (m *Map[K, V]) Erase(pos Iterator[K, V]) bool {
	return m.tree.Erase(pos)
}

// Merge moves every entry of other whose key is absent from m into m.
// Entries with keys already present in m remain in other, and the values
// in m are left untouched.
func (m *Map[K, V]) Merge(other *Map[K, V]) {
	if other == nil || other == m {
		return
	}
	m.tree.Merge(other.tree)
}

// All returns an iterator over all key/value pairs in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := range m.tree.All() {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Keys returns an iterator over all keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for e := range m.tree.All() {
			if !yield(e.Key) {
				return
			}
		}
	}
}

// Values returns an iterator over all values in ascending key order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for e := range m.tree.All() {
			if !yield(e.Value) {
				return
			}
		}
	}
}
