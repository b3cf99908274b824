/*
Package art implements an in-memory ordered map keyed by byte strings, built on
an Adaptive Radix Tree.

Adaptive Radix Trees

An ART is a radix trie with path compression, whose inner nodes adapt their
fanout to the number of children they actually have. Nodes come in four
classes, holding up to 4, 16, 48 or 256 children. A node which runs out of
slots is grown into the next class; a structural node left with a single
child is merged into that child. Lookup, insertion and deletion are therefore
bounded by the length of the key rather than by the number of entries.

From the paper by Viktor Leis, Alfons Kemper and Thomas Neumann, 2013:

	Main memory capacities have grown up to a point where most databases fit
	into RAM. For main-memory database systems, index structure performance is
	a critical bottleneck. […] We present the adaptive radix tree (ART), a fast
	and space-efficient in-memory indexing structure specifically tuned for
	modern hardware.

Ordering

Keys are ordered by plain unsigned-byte lexicographic order, as with
bytes.Compare. Every node holding a value is threaded into a doubly linked,
circular list anchored at a sentinel node. The list is kept in key order by
each mutation, which makes iteration in both directions O(1) per step, and
lower/upper bound searches O(key length).

	Operation     |   Tree
	--------------+--------------
	Find          |   O(k)
	Insert        |   O(k)
	Erase         |   O(k)
	LowerBound    |   O(k)
	Next/Prev     |   O(1)

(k is the key length.)

Nodes are not addressed by pointers, but by handles into an arena (see
package arena). Growing a node exchanges its child table, but not its
handle, so iterators stay valid across growth of the node they reference.

Trees are not safe for concurrent use. Clients have to serialize access
externally.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

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
package art

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
