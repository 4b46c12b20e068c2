package bst

import (
	"iter"
	"math"
	"unsafe"
)

// Tree is an unbalanced binary search tree with sentinel nodes at both ends.
//
// Trees must be created with New. A Tree is a value holding the root, both
// sentinels and the item count; Swap exchanges these in constant time.
type Tree[T any] struct {
	cfg      Config[T]
	root     *node[T]
	beginNil *node[T]
	endNil   *node[T]
	size     int
}

// New creates an empty tree with validated configuration.
func New[T any](cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	t := &Tree[T]{cfg: cfg}
	t.beginNil = &node[T]{kind: beginSentinel}
	t.endNil = &node[T]{kind: endSentinel}
	t.beginNil.left = t.beginNil
	t.endNil.right = t.endNil
	t.linkSentinels()
	return t, nil
}

// linkSentinels puts the sentinels into their empty-tree configuration.
func (t *Tree[T]) linkSentinels() {
	t.beginNil.parent = t.endNil
	t.endNil.parent = t.beginNil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T]) Config() Config[T] {
	return t.cfg
}

// Len returns the number of items in the tree. Sentinels are not counted.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree has no items.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.size == 0
}

// MaxSize returns a theoretical upper bound for the number of items,
// derived from the address space and the node size. It is informational only.
func (t *Tree[T]) MaxSize() int {
	var n node[T]
	return math.MaxInt / (2 * int(unsafe.Sizeof(n)))
}

// Begin returns an iterator to the minimum item, or End() if the tree is empty.
func (t *Tree[T]) Begin() Iterator[T] {
	if t.size == 0 {
		return t.End()
	}
	return t.BeforeBegin().Next()
}

// End returns the iterator one past the maximum item. It always refers to
// the end sentinel.
func (t *Tree[T]) End() Iterator[T] {
	return Iterator[T]{n: t.endNil}
}

// BeforeBegin returns the iterator one before the minimum item. It always
// refers to the begin sentinel and is the stop position for backward loops.
func (t *Tree[T]) BeforeBegin() Iterator[T] {
	return Iterator[T]{n: t.beginNil}
}

// Min returns the minimum item, if any.
func (t *Tree[T]) Min() (T, bool) {
	if t.size == 0 {
		var zero T
		return zero, false
	}
	return t.beginNil.parent.data, true
}

// Max returns the maximum item, if any.
func (t *Tree[T]) Max() (T, bool) {
	if t.size == 0 {
		var zero T
		return zero, false
	}
	return t.endNil.parent.data, true
}

// All returns an iterator over all items in ascending order.
//
// The tree must not be modified during iteration.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it, end := t.Begin(), t.End(); it != end; it = it.Next() {
			if !yield(it.n.data) {
				return
			}
		}
	}
}

// Backward returns an iterator over all items in descending order.
//
// The tree must not be modified during iteration.
func (t *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it, stop := t.End().Prev(), t.BeforeBegin(); it != stop; it = it.Prev() {
			if !yield(it.n.data) {
				return
			}
		}
	}
}

// Find returns an iterator to the item comparing equal to key, or End() if
// there is none.
func (t *Tree[T]) Find(key T) Iterator[T] {
	if _, at := t.search(key, t.root); at != nil && !at.isSentinel() {
		return Iterator[T]{n: at}
	}
	return t.End()
}

// Contains reports whether an item comparing equal to key is present.
func (t *Tree[T]) Contains(key T) bool {
	_, at := t.search(key, t.root)
	return at != nil && !at.isSentinel()
}

// Clear removes all items. The sentinels are re-linked to each other.
//
// Iterators to removed items become invalid.
func (t *Tree[T]) Clear() {
	if t.size == 0 {
		return
	}
	t.root = nil
	t.size = 0
	t.linkSentinels()
}

// Swap exchanges the complete state of two trees (root, sentinels, item
// count and configuration) in constant time. Iterators keep referring to
// their items, which now live in the other tree.
func (t *Tree[T]) Swap(other *Tree[T]) {
	if other == nil || other == t {
		return
	}
	*t, *other = *other, *t
}

// Move creates a new tree taking over the state of t, leaving t empty.
func (t *Tree[T]) Move() *Tree[T] {
	moved, err := New(t.cfg)
	assert(err == nil, "Move: tree has invalid configuration")
	moved.Swap(t)
	return moved
}

// Clone returns a deep copy of the tree with identical shape.
//
// Payloads are copied by assignment; payloads containing references share
// the referenced data.
func (t *Tree[T]) Clone() *Tree[T] {
	cloned, err := New(t.cfg)
	assert(err == nil, "Clone: tree has invalid configuration")
	if t.root == nil {
		return cloned
	}
	// inserting in pre-order reproduces the shape of the source tree
	stack := []*node[T]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cloned.Insert(n.data)
		if n.right != nil && !n.right.isSentinel() {
			stack = append(stack, n.right)
		}
		if n.left != nil && !n.left.isSentinel() {
			stack = append(stack, n.left)
		}
	}
	return cloned
}

// Merge moves every item of other whose key is absent from t into t.
// Items with keys already present in t stay in other.
//
// Nodes are relocated, not copied: iterators to moved items stay valid and
// now refer to items of t.
func (t *Tree[T]) Merge(other *Tree[T]) {
	if other == nil || other == t || other.size == 0 {
		return
	}
	moved := 0
	for it, end := other.Begin(), other.End(); it != end; {
		next := it.Next() // before detaching, which rewires its links
		if !t.Contains(it.n.data) {
			other.extract(it.n)
			_, ok := t.insertNode(it.n.data, it.n)
			assert(ok, "Merge: relocated key unexpectedly present")
			moved++
		}
		it = next
	}
	tracer().Debugf("bst: merge relocated %d of %d nodes", moved, moved+other.size)
}
