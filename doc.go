/*
Package wordtree implements a height-balanced binary search tree (AVL tree)
with pluggable ordering and merge-on-duplicate semantics.

The tree is generic over its element type. Elements are placed according to
an Ordering, which is one of

	Natural[T]()            the element's own total order
	ByKey(key)              the natural order of a key projected from each element
	ByComparator(compare)   a caller supplied three-way comparison

Inserting an element which compares equal to an element already present never
creates a new node. Instead a MergeFunc is called with the existing element and
the incoming one. Without a merge function the incoming element is silently
dropped; comparator orderings must always come with a merge function.

Balancing happens during insertion. The descent path is recorded on an explicit
stack, and the balance pass walks this stack upwards, recomputing cached
heights and performing at most one (single or double) rotation. Nodes carry no
parent links.

In-order traversal uses Morris threading: no recursion and no auxiliary stack.
The tree is mutated temporarily while a traversal is in progress, and restored
before the traversal returns, also if the visitor stops early.

Neither insertion nor traversal is safe for concurrent use. Callers have to
serialize access to a tree, and visitors must not insert into the tree they
are visiting.

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
package wordtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
