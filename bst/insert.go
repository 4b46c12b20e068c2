package bst

// search descends iteratively from start, comparing key against each visited
// node. It stops at a node comparing equal to key, at a sentinel, or at an
// empty child slot (key absent).
//
// search returns the terminal position at (possibly nil) and its parent, so
// that insertion and deletion can proceed without descending again.
func (t *Tree[T]) search(key T, start *node[T]) (parent, at *node[T]) {
	c := t.cfg.Comparator
	at = start
	for at != nil && !at.isSentinel() && c.NotEquals(key, at.data) {
		parent = at
		if c.LessThan(key, at.data) {
			at = at.left
		} else {
			at = at.right
		}
	}
	return parent, at
}

// Insert adds item to the tree.
//
// If an item comparing equal is already present, the tree is left unchanged
// and Insert returns an iterator to the present item together with false.
// Otherwise it returns an iterator to the new item and true.
func (t *Tree[T]) Insert(item T) (Iterator[T], bool) {
	n, ok := t.insertNode(item, nil)
	return Iterator[T]{n: n}, ok
}

// insertNode links a node carrying key into the tree. If detached is nil a
// new node is allocated, otherwise detached is relocated into this tree
// (relocate-insert). detached must not be linked into any tree.
func (t *Tree[T]) insertNode(key T, detached *node[T]) (*node[T], bool) {
	if t.root == nil {
		n := adopt(key, detached)
		n.parent = nil
		n.left, n.right = t.beginNil, t.endNil
		t.beginNil.parent, t.endNil.parent = n, n
		t.root = n
		t.size++
		return n, true
	}
	parent, at := t.search(key, t.root)
	var n *node[T]
	switch {
	case at == t.endNil: // new maximum
		n = adopt(key, detached)
		parent.right = n
		n.parent = parent
		n.left, n.right = nil, t.endNil
		t.endNil.parent = n
	case at == t.beginNil: // new minimum
		n = adopt(key, detached)
		parent.left = n
		n.parent = parent
		n.left, n.right = t.beginNil, nil
		t.beginNil.parent = n
	case at == nil: // strictly between the extremes
		n = adopt(key, detached)
		if t.cfg.Comparator.LessThan(key, parent.data) {
			parent.left = n
		} else {
			parent.right = n
		}
		n.parent = parent
		n.left, n.right = nil, nil
	default:
		return at, false
	}
	t.size++
	return n, true
}

func adopt[T any](key T, detached *node[T]) *node[T] {
	if detached == nil {
		return &node[T]{data: key}
	}
	assert(!detached.isSentinel(), "relocate-insert of a sentinel node")
	return detached
}
