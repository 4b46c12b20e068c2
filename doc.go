/*
Package containers is the root of a small family of generic containers with
STL-like iteration semantics.

Ordered containers

Package set and package omap offer an ordered set and an ordered map. Both
are thin adapters over a single binary search tree engine (package bst),
parameterized only by the ordering strategy (package compare): sets order
their elements, maps order entries by key.

	s := set.New(5, 3, 8, 1)
	for it := s.Begin(); it != s.End(); it = it.Next() {
	    fmt.Println(it.Value())          // 1 3 5 8
	}

	m := omap.New[string, int]()
	*m.Index("a") += 1                   // operator[] semantics
	v, err := m.At("b")                  // err wraps omap.ErrKeyNotFound

The tree engine keeps two permanent sentinel nodes in front of the minimum
and behind the maximum. Iterators are node references walked along parent
links; Begin() of an empty container equals End(), stepping before the
first item lands on the begin sentinel and stepping beyond End() stays there.

The tree is deliberately not balanced. Operations cost O(depth), which is
O(n) in the worst case, e.g. for keys inserted in sorted order.

Sequences

Package list (doubly-linked, with splice, merge and in-place sort) and
package vector (contiguous buffer with amortized growth) complete the set.
They share the iterator conventions but are independent of the tree.

None of the containers is safe for concurrent use. Using an iterator after
its item has been erased is undefined and not detected at runtime.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package containers
