package vector

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"unsafe"
)

// Vector is a growable contiguous sequence of values of type T.
//
// The zero value is an empty vector ready to use. Vectors are not safe for
// concurrent use.
type Vector[T any] struct {
	data []T // len(data) is the size, cap(data) the capacity
}

// New creates a vector holding a copy of items, with capacity len(items).
func New[T any](items ...T) *Vector[T] {
	data := make([]T, len(items))
	copy(data, items)
	return &Vector[T]{data: data}
}

// WithLen creates a vector of n zero values.
func WithLen[T any](n int) *Vector[T] {
	return &Vector[T]{data: make([]T, n)}
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return len(v.data) }

// IsEmpty reports whether the vector has no elements.
func (v *Vector[T]) IsEmpty() bool { return len(v.data) == 0 }

// Capacity returns the number of elements the vector can hold without
// re-allocating its buffer.
func (v *Vector[T]) Capacity() int { return cap(v.data) }

// MaxSize returns a theoretical upper bound for the number of elements.
func (v *Vector[T]) MaxSize() int {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return math.MaxInt
	}
	return math.MaxInt / (2 * size)
}

// At returns the element at index i.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, fmt.Errorf("%w: %d not in [0…%d)", ErrIndexOutOfBounds, i, len(v.data))
	}
	return v.data[i], nil
}

// Ref returns a pointer to the element at index i. Unlike At, Ref does not
// check bounds beyond what the runtime does and panics for invalid indices.
func (v *Vector[T]) Ref(i int) *T {
	return &v.data[i]
}

// Front returns the first element.
func (v *Vector[T]) Front() (T, error) {
	if len(v.data) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return v.data[0], nil
}

// Back returns the last element.
func (v *Vector[T]) Back() (T, error) {
	if len(v.data) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return v.data[len(v.data)-1], nil
}

// Data returns the elements as a slice sharing the vector's buffer. The slice
// is invalidated by the next operation changing the capacity.
func (v *Vector[T]) Data() []T { return v.data }

// Reserve grows the capacity to at least n. It never shrinks the buffer.
func (v *Vector[T]) Reserve(n int) {
	if n <= cap(v.data) {
		return
	}
	data := make([]T, len(v.data), n)
	copy(data, v.data)
	v.data = data
}

// ShrinkToFit reduces the capacity to the number of elements.
func (v *Vector[T]) ShrinkToFit() {
	if cap(v.data) == len(v.data) {
		return
	}
	data := make([]T, len(v.data))
	copy(data, v.data)
	v.data = data
}

// Clear removes all elements, keeping the capacity.
func (v *Vector[T]) Clear() {
	clear(v.data)
	v.data = v.data[:0]
}

// Insert inserts value before pos and returns an iterator to it. Iterators
// at or behind pos are shifted by one element.
func (v *Vector[T]) Insert(pos Iterator[T], value T) Iterator[T] {
	i := pos.i
	if i < 0 || i > len(v.data) {
		panic(fmt.Sprintf("vector: insert position %d out of bounds", i))
	}
	if len(v.data) == cap(v.data) {
		newcap := max(1, 2*cap(v.data))
		tracer().Debugf("vector: grow capacity %d → %d", cap(v.data), newcap)
		v.Reserve(newcap)
	}
	v.data = v.data[:len(v.data)+1]
	copy(v.data[i+1:], v.data[i:])
	v.data[i] = value
	return Iterator[T]{v: v, i: i}
}

// Erase removes the element at pos. Erasing End() is a no-op and returns false.
func (v *Vector[T]) Erase(pos Iterator[T]) bool {
	i := pos.i
	if i < 0 || i >= len(v.data) {
		return false
	}
	v.data = slices.Delete(v.data, i, i+1)
	return true
}

// PushBack appends value.
func (v *Vector[T]) PushBack(value T) {
	v.Insert(v.End(), value)
}

// PopBack removes and returns the last element, if any.
func (v *Vector[T]) PopBack() (T, bool) {
	if len(v.data) == 0 {
		var zero T
		return zero, false
	}
	last := v.data[len(v.data)-1]
	v.Erase(v.End().Prev())
	return last, true
}

// Swap exchanges the contents of two vectors in constant time.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data, other.data = other.data, v.data
}

// Clone returns a copy of the vector with capacity equal to its size.
func (v *Vector[T]) Clone() *Vector[T] {
	return New(v.data...)
}

// All returns an iterator over all elements in index order.
func (v *Vector[T]) All() iter.Seq[T] {
	return slices.Values(v.data)
}

// Begin returns an iterator to the first element.
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{v: v}
}

// End returns the iterator one past the last element.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{v: v, i: len(v.data)}
}
