/*
Package vector provides a dynamic array with STL-like iteration.

A Vector keeps its elements in one contiguous buffer. Appending is amortized
O(1), capacity doubles when exhausted. Insert and Erase at a position shift
the tail of the buffer and are O(n).

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package vector

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

var (
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("vector: index out of bounds")
	// ErrEmpty is returned when accessing front or back of an empty vector.
	ErrEmpty = errors.New("vector: vector is empty")
)

// tracer writes to trace with key 'containers'
func tracer() tracing.Trace {
	return tracing.Select("containers")
}
