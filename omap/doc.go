/*
Package omap provides an ordered map on top of the binary search tree engine
of package bst.

Entries are stored as key/value pairs in the tree nodes and ordered by key
only; the values never take part in comparisons. Keys are unique.

As with package set, the underlying tree is not balanced.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package omap

import "errors"

// ErrKeyNotFound is returned by At for keys not present in the map.
var ErrKeyNotFound = errors.New("omap: key not found")
