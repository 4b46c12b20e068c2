/*
Package compare provides the ordering strategies used by the ordered containers.

A Comparator is a three-way capability over a payload type. Trees never inspect
their payloads directly; every ordering decision goes through the comparator the
container was configured with. Sets use a comparator over the element itself,
maps project the key component of an entry (see Project).

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package compare

import "cmp"

// Comparator is a strict weak ordering over values of type T.
//
// Implementations must be consistent: for any a, b exactly one of
// LessThan(a, b), GreaterThan(a, b) or !NotEquals(a, b) holds.
type Comparator[T any] interface {
	LessThan(a, b T) bool
	GreaterThan(a, b T) bool
	NotEquals(a, b T) bool
}

// Ordered compares values by their natural order.
type Ordered[T cmp.Ordered] struct{}

func (Ordered[T]) LessThan(a, b T) bool    { return cmp.Less(a, b) }
func (Ordered[T]) GreaterThan(a, b T) bool { return cmp.Less(b, a) }
func (Ordered[T]) NotEquals(a, b T) bool   { return cmp.Compare(a, b) != 0 }

// Func adapts a three-way compare function, such as cmp.Compare or
// strings.Compare, to a Comparator.
type Func[T any] func(a, b T) int

func (f Func[T]) LessThan(a, b T) bool    { return f(a, b) < 0 }
func (f Func[T]) GreaterThan(a, b T) bool { return f(a, b) > 0 }
func (f Func[T]) NotEquals(a, b T) bool   { return f(a, b) != 0 }

// Reverse returns a comparator with the order of c flipped.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return reversed[T]{c: c}
}

type reversed[T any] struct {
	c Comparator[T]
}

func (r reversed[T]) LessThan(a, b T) bool    { return r.c.GreaterThan(a, b) }
func (r reversed[T]) GreaterThan(a, b T) bool { return r.c.LessThan(a, b) }
func (r reversed[T]) NotEquals(a, b T) bool   { return r.c.NotEquals(a, b) }

// Project orders payloads of type T by a key extracted from them.
//
// Two payloads with equal keys compare equal, regardless of the rest of their
// content. Maps use this to order entries by the key component only.
func Project[T, K any](key func(T) K, c Comparator[K]) Comparator[T] {
	return projection[T, K]{key: key, c: c}
}

type projection[T, K any] struct {
	key func(T) K
	c   Comparator[K]
}

func (p projection[T, K]) LessThan(a, b T) bool    { return p.c.LessThan(p.key(a), p.key(b)) }
func (p projection[T, K]) GreaterThan(a, b T) bool { return p.c.GreaterThan(p.key(a), p.key(b)) }
func (p projection[T, K]) NotEquals(a, b T) bool   { return p.c.NotEquals(p.key(a), p.key(b)) }
