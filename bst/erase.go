package bst

// eraseCase classifies the topology of a removed node.
type eraseCase uint8

const (
	eraseNone           eraseCase = iota // nothing removed
	eraseLeaf                            // no children
	eraseOneChild                        // child rises into the node's place
	eraseLast                            // sole real node, tree becomes empty
	erasePredecessor                     // two real children, predecessor splice
	eraseMinSuccessor                    // minimum with right subtree, successor splice
	eraseMaxPredecessor                  // maximum with left subtree, predecessor splice
)

func (c eraseCase) String() string {
	switch c {
	case eraseLeaf:
		return "leaf"
	case eraseOneChild:
		return "one-child"
	case eraseLast:
		return "last"
	case erasePredecessor:
		return "predecessor"
	case eraseMinSuccessor:
		return "min-successor"
	case eraseMaxPredecessor:
		return "max-predecessor"
	}
	return "none"
}

// Erase removes the item at pos and reports whether an item was removed.
//
// Erasing a sentinel position (End() or BeforeBegin()) or a zero Iterator is
// a no-op and returns false. Erasing an iterator of another tree or an
// iterator to an already removed item is undefined.
//
// Iterators to other items stay valid, as nodes are never copied.
func (t *Tree[T]) Erase(pos Iterator[T]) bool {
	n := pos.n
	if n == nil || n.isSentinel() {
		return false
	}
	c := t.extract(n)
	n.left, n.right, n.parent = nil, nil, nil
	tracer().Debugf("bst: erased node (%s), %d items left", c, t.size)
	return true
}

// extract unlinks real node n from the tree without discarding it. The links
// of n itself are left dangling; a relocate-insert will overwrite them.
func (t *Tree[T]) extract(n *node[T]) eraseCase {
	assert(n != nil && !n.isSentinel(), "extract called with sentinel or nil node")
	parent := n.parent
	var c eraseCase
	if n.isLeaf() {
		t.replaceChild(parent, n, nil)
		c = eraseLeaf
	} else if child := n.onlyChild(); child != nil {
		t.replaceChild(parent, n, child)
		child.parent = parent
		c = eraseOneChild
	} else {
		switch {
		case n.left == t.beginNil && n.right == t.endNil:
			t.root = nil
			t.linkSentinels()
			c = eraseLast
		case n.left != t.beginNil && n.right != t.endNil:
			t.splicePredecessor(n, parent)
			c = erasePredecessor
		case n.left == t.beginNil:
			t.spliceMinSuccessor(n, parent)
			c = eraseMinSuccessor
		default:
			t.spliceMaxPredecessor(n, parent)
			c = eraseMaxPredecessor
		}
	}
	t.size--
	return c
}

// replaceChild rewires the slot of parent holding old to hold repl. A nil
// parent denotes the root slot.
func (t *Tree[T]) replaceChild(parent, old, repl *node[T]) {
	switch {
	case parent == nil:
		t.root = repl
	case parent.left == old:
		parent.left = repl
	default:
		parent.right = repl
	}
}

// splicePredecessor removes n, which has two real children and is adjacent
// to neither sentinel, by grafting the maximum of its left subtree into its
// place.
func (t *Tree[T]) splicePredecessor(n, parent *node[T]) {
	m := subtreeMax(n.left)
	if m.parent != n {
		mp := m.parent
		mp.right = m.left
		if m.left != nil {
			m.left.parent = mp
		}
		m.left = n.left
		n.left.parent = m
	}
	m.right = n.right
	n.right.parent = m
	m.parent = parent
	t.replaceChild(parent, n, m)
}

// spliceMinSuccessor removes n, the current minimum, which has a real right
// subtree. The successor takes n's place and the begin sentinel moves to the
// successor, which is the new minimum.
func (t *Tree[T]) spliceMinSuccessor(n, parent *node[T]) {
	s := subtreeMin(n.right)
	if s != n.right {
		sp := s.parent
		sp.left = s.right
		if s.right != nil {
			s.right.parent = sp
		}
		s.right = n.right
		n.right.parent = s
	}
	s.parent = parent
	t.replaceChild(parent, n, s)
	s.left = t.beginNil
	t.beginNil.parent = s
}

// spliceMaxPredecessor removes n, the current maximum, which has a real left
// subtree. The predecessor takes n's place and the end sentinel moves to the
// predecessor, which is the new maximum.
func (t *Tree[T]) spliceMaxPredecessor(n, parent *node[T]) {
	m := subtreeMax(n.left)
	if m != n.left {
		mp := m.parent
		mp.right = m.left
		if m.left != nil {
			m.left.parent = mp
		}
		m.left = n.left
		n.left.parent = m
	}
	m.parent = parent
	t.replaceChild(parent, n, m)
	m.right = t.endNil
	t.endNil.parent = m
}
