package list

import glist "github.com/bahlo/generic-list-go"

// Iterator is a bidirectional cursor over the elements of a list.
// Iterators compare equal if they refer to the same element.
type Iterator[T any] struct {
	l *List[T]
	e *glist.Element[T] // nil at End()
}

// Value returns the element at the iterator, or the zero value at End().
func (it Iterator[T]) Value() T {
	if it.e == nil {
		var zero T
		return zero
	}
	return it.e.Value
}

// Ref returns a pointer to the element at the iterator, or nil at End().
func (it Iterator[T]) Ref() *T {
	if it.e == nil {
		return nil
	}
	return &it.e.Value
}

// Valid reports whether the iterator refers to an element.
func (it Iterator[T]) Valid() bool {
	return it.e != nil
}

// Next returns an iterator to the following element. Stepping forward from
// End() stays at End().
func (it Iterator[T]) Next() Iterator[T] {
	if it.e == nil {
		return it
	}
	return Iterator[T]{l: it.l, e: it.e.Next()}
}

// Prev returns an iterator to the preceding element. Stepping backwards from
// End() yields the last element; stepping backwards from the first element
// yields End().
func (it Iterator[T]) Prev() Iterator[T] {
	if it.e == nil {
		return Iterator[T]{l: it.l, e: it.l.l.Back()}
	}
	return Iterator[T]{l: it.l, e: it.e.Prev()}
}

// Advance moves the iterator by k positions, backwards for negative k.
func (it Iterator[T]) Advance(k int) Iterator[T] {
	for ; k > 0; k-- {
		it = it.Next()
	}
	for ; k < 0; k++ {
		it = it.Prev()
	}
	return it
}
