package list

import (
	"cmp"
	"iter"
	"math"
	"unsafe"

	glist "github.com/bahlo/generic-list-go"
)

// List is a doubly-linked list of values of type T.
//
// Lists must be created with New or NewFunc. They are not safe for concurrent use.
type List[T any] struct {
	l       *glist.List[T]
	compare func(a, b T) int
}

// New creates a list of items, ordered by the natural order of T.
func New[T cmp.Ordered](items ...T) *List[T] {
	return NewFunc(cmp.Compare[T], items...)
}

// NewFunc creates a list of items, ordered by compare. compare must not be nil.
func NewFunc[T any](compare func(a, b T) int, items ...T) *List[T] {
	if compare == nil {
		panic("list: compare function is required")
	}
	l := &List[T]{l: glist.New[T](), compare: compare}
	for _, item := range items {
		l.l.PushBack(item)
	}
	return l
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.l.Len() }

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool { return l.l.Len() == 0 }

// MaxSize returns a theoretical upper bound for the number of elements.
func (l *List[T]) MaxSize() int {
	var e glist.Element[T]
	return math.MaxInt / (2 * int(unsafe.Sizeof(e)))
}

// Front returns the first element.
func (l *List[T]) Front() (T, error) {
	if e := l.l.Front(); e != nil {
		return e.Value, nil
	}
	var zero T
	return zero, ErrEmpty
}

// Back returns the last element.
func (l *List[T]) Back() (T, error) {
	if e := l.l.Back(); e != nil {
		return e.Value, nil
	}
	var zero T
	return zero, ErrEmpty
}

// Begin returns an iterator to the first element, or End() for an empty list.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{l: l, e: l.l.Front()}
}

// End returns the iterator one past the last element.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{l: l}
}

// Insert inserts value before pos and returns an iterator to it.
func (l *List[T]) Insert(pos Iterator[T], value T) Iterator[T] {
	if pos.e == nil {
		return Iterator[T]{l: l, e: l.l.PushBack(value)}
	}
	return Iterator[T]{l: l, e: l.l.InsertBefore(value, pos.e)}
}

// Erase removes the element at pos. Erasing End() is a no-op and returns false.
//
// Iterators to the erased element become invalid.
func (l *List[T]) Erase(pos Iterator[T]) bool {
	if pos.e == nil {
		return false
	}
	l.l.Remove(pos.e)
	return true
}

// PushBack appends value.
func (l *List[T]) PushBack(value T) { l.l.PushBack(value) }

// PushFront prepends value.
func (l *List[T]) PushFront(value T) { l.l.PushFront(value) }

// PopBack removes and returns the last element, if any.
func (l *List[T]) PopBack() (T, bool) {
	if e := l.l.Back(); e != nil {
		return l.l.Remove(e), true
	}
	var zero T
	return zero, false
}

// PopFront removes and returns the first element, if any.
func (l *List[T]) PopFront() (T, bool) {
	if e := l.l.Front(); e != nil {
		return l.l.Remove(e), true
	}
	var zero T
	return zero, false
}

// Clear removes all elements.
func (l *List[T]) Clear() { l.l.Init() }

// Swap exchanges the contents of two lists in constant time.
func (l *List[T]) Swap(other *List[T]) {
	l.l, other.l = other.l, l.l
	l.compare, other.compare = other.compare, l.compare
}

// Clone returns a copy of the list.
func (l *List[T]) Clone() *List[T] {
	c := &List[T]{l: glist.New[T](), compare: l.compare}
	c.l.PushBackList(l.l)
	return c
}

// All returns an iterator over all elements from front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.l.Front(); e != nil; e = e.Next() {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Backward returns an iterator over all elements from back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.l.Back(); e != nil; e = e.Prev() {
			if !yield(e.Value) {
				return
			}
		}
	}
}
