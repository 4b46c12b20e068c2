package bst

import "fmt"

// Check validates structural tree invariants:
// sentinel placement and self-links, parent back-references, strict ordering
// under the tree's comparator, and the item count.
//
// Check is intended for tests and debugging; it visits every node.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if err := t.checkSentinels(); err != nil {
		return err
	}
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree reports size %d", ErrCorruptTree, t.size)
		}
		if t.beginNil.parent != t.endNil || t.endNil.parent != t.beginNil {
			return fmt.Errorf("%w: sentinels of empty tree not linked to each other", ErrCorruptTree)
		}
		return nil
	}
	if t.root.isSentinel() || t.root.parent != nil {
		return fmt.Errorf("%w: malformed root", ErrCorruptTree)
	}
	count, err := t.checkLinks()
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d reachable != %d)", ErrCorruptTree, count, t.size)
	}
	return t.checkOrder()
}

func (t *Tree[T]) checkSentinels() error {
	b, e := t.beginNil, t.endNil
	if b == nil || e == nil || b.kind != beginSentinel || e.kind != endSentinel {
		return fmt.Errorf("%w: missing sentinels", ErrCorruptTree)
	}
	if b.left != b || b.right != nil {
		return fmt.Errorf("%w: begin sentinel has children", ErrCorruptTree)
	}
	if e.right != e || e.left != nil {
		return fmt.Errorf("%w: end sentinel has children", ErrCorruptTree)
	}
	return nil
}

// checkLinks walks the real nodes top-down and verifies parent links and
// sentinel attachment. It returns the number of real nodes reached.
func (t *Tree[T]) checkLinks() (int, error) {
	count := 0
	var sawBegin, sawEnd bool
	stack := []*node[T]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		if count > t.size+1 {
			return count, fmt.Errorf("%w: more reachable nodes than items (cycle?)", ErrCorruptTree)
		}
		for _, child := range [2]*node[T]{n.left, n.right} {
			if child == nil {
				continue
			}
			if child.parent != n {
				return count, fmt.Errorf("%w: broken parent link below %v", ErrCorruptTree, n.data)
			}
			switch child.kind {
			case beginSentinel:
				if child != t.beginNil || n.left != child || sawBegin {
					return count, fmt.Errorf("%w: misplaced begin sentinel below %v", ErrCorruptTree, n.data)
				}
				sawBegin = true
			case endSentinel:
				if child != t.endNil || n.right != child || sawEnd {
					return count, fmt.Errorf("%w: misplaced end sentinel below %v", ErrCorruptTree, n.data)
				}
				sawEnd = true
			default:
				stack = append(stack, child)
			}
		}
	}
	if !sawBegin || !sawEnd {
		return count, fmt.Errorf("%w: sentinel not reachable from root", ErrCorruptTree)
	}
	return count, nil
}

// checkOrder iterates forward and backwards and verifies strict ordering.
func (t *Tree[T]) checkOrder() error {
	c := t.cfg.Comparator
	it := t.Begin()
	if it.Prev() != t.BeforeBegin() {
		return fmt.Errorf("%w: begin sentinel is not the predecessor of the minimum", ErrCorruptTree)
	}
	steps := 0
	for end := t.End(); it != end; steps++ {
		next := it.Next()
		if next.n == nil || steps >= t.size {
			return fmt.Errorf("%w: forward iteration does not reach end", ErrCorruptTree)
		}
		if next != end && !c.LessThan(it.n.data, next.n.data) {
			return fmt.Errorf("%w: items out of order (%v before %v)", ErrCorruptTree, it.n.data, next.n.data)
		}
		it = next
	}
	if steps != t.size {
		return fmt.Errorf("%w: forward iteration visited %d of %d items", ErrCorruptTree, steps, t.size)
	}
	steps = 0
	for it, stop := t.End().Prev(), t.BeforeBegin(); it != stop; it = it.Prev() {
		if it.n == nil || steps >= t.size {
			return fmt.Errorf("%w: backward iteration does not reach begin", ErrCorruptTree)
		}
		steps++
	}
	if steps != t.size {
		return fmt.Errorf("%w: backward iteration visited %d of %d items", ErrCorruptTree, steps, t.size)
	}
	return nil
}
