package vector

// Iterator is a random-access position in a vector. It is a plain index and
// survives re-allocations of the buffer, but shifts meaning with inserts and
// erases in front of it.
type Iterator[T any] struct {
	v *Vector[T]
	i int
}

// Index returns the position of the iterator.
func (it Iterator[T]) Index() int { return it.i }

// Value returns the element at the iterator, or the zero value if the
// iterator is out of bounds (e.g., End()).
func (it Iterator[T]) Value() T {
	if !it.Valid() {
		var zero T
		return zero
	}
	return it.v.data[it.i]
}

// Ref returns a pointer to the element at the iterator, or nil if the
// iterator is out of bounds.
func (it Iterator[T]) Ref() *T {
	if !it.Valid() {
		return nil
	}
	return &it.v.data[it.i]
}

// Valid reports whether the iterator refers to an element.
func (it Iterator[T]) Valid() bool {
	return it.v != nil && it.i >= 0 && it.i < len(it.v.data)
}

// Next returns an iterator to the following position.
func (it Iterator[T]) Next() Iterator[T] { return it.Advance(1) }

// Prev returns an iterator to the preceding position.
func (it Iterator[T]) Prev() Iterator[T] { return it.Advance(-1) }

// Advance moves the iterator by k positions, backwards for negative k.
func (it Iterator[T]) Advance(k int) Iterator[T] {
	it.i += k
	return it
}
