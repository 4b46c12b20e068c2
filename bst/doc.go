/*
Package bst implements the binary search tree engine shared by the ordered
containers of this module.

The tree is an unbalanced BST. No AVL or red-black invariant is maintained,
so depth depends on insertion order and worst-case operations are O(n).

Every tree owns two permanent sentinel nodes, one before the minimum and one
after the maximum:

	            root
	           /    \
	        ...      ...
	        /          \
	      min          max
	      /              \
	  ⟨begin⟩          ⟨end⟩

While the tree is empty the two sentinels point at each other through their
parent links. Stepping forward from the maximum always lands on the end
sentinel, stepping backwards from the minimum always lands on the begin
sentinel, so iteration never has to deal with nil. Iterators hold a node
reference, not a position, and are walked via parent links without recursion
or auxiliary stacks.

Payloads are opaque to the tree. All ordering decisions go through the
comparator strategy given in Config; sets compare elements, maps compare the
key component of entries.

Trees are not safe for concurrent use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package bst

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'containers'
func tracer() tracing.Trace {
	return tracing.Select("containers")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
