/*
Package list provides a doubly-linked list with STL-like iteration.

Lists are backed by github.com/bahlo/generic-list-go, a ring of elements
around a sentinel root. Positions are expressed as Iterators; the End()
iterator stands for the sentinel. Insert and Erase at a position are O(1),
Sort, Merge and Splice re-link elements instead of shifting them.

Ordering operations (Sort, Merge, Unique) use the compare function the list
was created with.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package list

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// ErrEmpty is returned when accessing front or back of an empty list.
var ErrEmpty = errors.New("list: list is empty")

// tracer writes to trace with key 'containers'
func tracer() tracing.Trace {
	return tracing.Select("containers")
}
