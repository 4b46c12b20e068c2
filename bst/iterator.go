package bst

// Iterator is a bidirectional cursor referring to a node of a tree.
//
// Iterators are small values and compare equal if and only if they refer to
// the same node. The zero Iterator refers to no node at all.
//
// An iterator is invalidated when its item is erased from the tree. Using an
// invalidated iterator is undefined; it is not detected at runtime. Iterators
// to items moved by Merge or Swap stay valid and follow the item.
type Iterator[T any] struct {
	n *node[T]
}

// Value returns the item the iterator refers to. For sentinel positions it
// returns the zero value of T.
func (it Iterator[T]) Value() T {
	if it.n == nil || it.n.isSentinel() {
		var zero T
		return zero
	}
	return it.n.data
}

// Ref returns a pointer to the item the iterator refers to, or nil for
// sentinel positions.
//
// Clients may modify the item through the pointer, but must not change its
// ordering relative to other items. Doing so leaves the tree corrupt.
func (it Iterator[T]) Ref() *T {
	if it.n == nil || it.n.isSentinel() {
		return nil
	}
	return &it.n.data
}

// IsSentinel reports whether the iterator is positioned at one of the two
// sentinels, i.e., at End() or BeforeBegin().
func (it Iterator[T]) IsSentinel() bool {
	return it.n != nil && it.n.isSentinel()
}

// Valid reports whether the iterator refers to an item.
func (it Iterator[T]) Valid() bool {
	return it.n != nil && !it.n.isSentinel()
}

// Equal reports whether two iterators refer to the same node.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.n == other.n
}

// Next returns an iterator to the in-order successor.
//
// Stepping forward from the maximum yields End(); stepping forward from End()
// stays at End().
func (it Iterator[T]) Next() Iterator[T] {
	n := it.n
	if n.right != nil {
		// the end sentinel loops onto itself through right
		return Iterator[T]{n: subtreeMin(n.right)}
	}
	// ratchet upwards until we leave a left subtree
	p := n.parent
	for p != nil && n == p.right {
		n, p = p, p.parent
	}
	return Iterator[T]{n: p}
}

// Prev returns an iterator to the in-order predecessor.
//
// Stepping backwards from the minimum yields BeforeBegin(); stepping backwards
// from BeforeBegin() stays there.
func (it Iterator[T]) Prev() Iterator[T] {
	n := it.n
	if n.left != nil {
		// the begin sentinel loops onto itself through left
		return Iterator[T]{n: subtreeMax(n.left)}
	}
	p := n.parent
	for p != nil && n == p.left {
		n, p = p, p.parent
	}
	return Iterator[T]{n: p}
}

// Advance moves the iterator by k positions, forward for positive k and
// backwards for negative k.
func (it Iterator[T]) Advance(k int) Iterator[T] {
	for ; k > 0; k-- {
		it = it.Next()
	}
	for ; k < 0; k++ {
		it = it.Prev()
	}
	return it
}
