package bst

type nodeKind uint8

const (
	realNode nodeKind = iota
	beginSentinel
	endSentinel
)

// node is a tree node. The tree owns its real nodes through the left/right
// links; parent is a back-reference only.
//
// Sentinels are nodes as well, but never carry a payload. The begin sentinel
// loops onto itself through left, the end sentinel through right.
type node[T any] struct {
	data   T
	left   *node[T]
	right  *node[T]
	parent *node[T]
	kind   nodeKind
}

func (n *node[T]) isSentinel() bool {
	return n.kind != realNode
}

func (n *node[T]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// onlyChild returns the single child of n, or nil if n has zero or two children.
func (n *node[T]) onlyChild() *node[T] {
	if n.left != nil && n.right == nil {
		return n.left
	}
	if n.left == nil && n.right != nil {
		return n.right
	}
	return nil
}

// subtreeMax descends right from n. Must not be called on subtrees that
// contain the end sentinel.
func subtreeMax[T any](n *node[T]) *node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// subtreeMin descends left from n. Must not be called on subtrees that
// contain the begin sentinel.
func subtreeMin[T any](n *node[T]) *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}
