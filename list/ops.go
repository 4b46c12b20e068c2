package list

// Merge merges the sorted list other into the sorted list l. Afterwards l is
// sorted and other is empty. Merge is stable: of equal elements, those of l
// precede those of other.
//
// Elements cannot be re-linked across two rings, so they are moved by value:
// iterators into other become invalid.
func (l *List[T]) Merge(other *List[T]) {
	if other == nil || other == l || other.IsEmpty() {
		return
	}
	mark := l.l.Front()
	for e := other.l.Front(); e != nil; {
		next := e.Next()
		v := other.l.Remove(e)
		for mark != nil && l.compare(mark.Value, v) <= 0 {
			mark = mark.Next()
		}
		if mark == nil {
			l.l.PushBack(v)
		} else {
			l.l.InsertBefore(v, mark)
		}
		e = next
	}
	tracer().Debugf("list: merged, now %d elements", l.Len())
}

// Splice moves all elements of other before pos, preserving their order.
// Afterwards other is empty.
func (l *List[T]) Splice(pos Iterator[T], other *List[T]) {
	if other == nil || other == l || other.IsEmpty() {
		return
	}
	for e := other.l.Front(); e != nil; {
		next := e.Next()
		l.Insert(pos, other.l.Remove(e))
		e = next
	}
}

// Reverse reverses the order of the elements in place.
func (l *List[T]) Reverse() {
	for e := l.l.Front(); e != nil; {
		next := e.Next()
		l.l.MoveToFront(e)
		e = next
	}
}

// Unique removes consecutive duplicate elements, keeping the first of each run.
func (l *List[T]) Unique() {
	for e := l.l.Front(); e != nil; {
		next := e.Next()
		if next != nil && l.compare(e.Value, next.Value) == 0 {
			l.l.Remove(next)
			continue
		}
		e = next
	}
}

// Sort sorts the list in place and stable, by re-linking elements
// (insertion sort, O(n²) in the worst case). Iterators stay valid and keep
// referring to their elements.
func (l *List[T]) Sort() {
	if l.Len() < 2 {
		return
	}
	for e := l.l.Front().Next(); e != nil; {
		next := e.Next()
		p := e.Prev()
		for p != nil && l.compare(p.Value, e.Value) > 0 {
			p = p.Prev()
		}
		if p != e.Prev() {
			if p == nil {
				l.l.MoveToFront(e)
			} else {
				l.l.MoveAfter(e, p)
			}
		}
		e = next
	}
}
