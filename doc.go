/*
Package arbor provides a shared, mutable n-ary tree container.

# Trees

Every node of an arbor tree holds a value of a generic type T and is, at any
point in time, either a leaf or a parent. The distinction is not chosen by the
client but follows from topology: a node owning at least one child is a parent,
a node owning none is a leaf. Attaching the first child to a leaf promotes it
to a parent, removing the last child from a parent demotes it back to a leaf.
Clients never observe a parent without children.

Nodes are shared. Any number of handles may alias the same node, and a change
made through one handle—be it to the stored value or to the topology—is
visible through all of them. Children link back to their parent through a
non-owning reference: the link is good for upward lookup but never keeps the
parent alive. Two back-reference strategies are available, selected at build
time (see backref_weak.go and backref_rc.go); both behave identically from
the caller's perspective.

Access to a node's interior is mediated by a fail-fast guard. arbor is a
single-threaded, cooperative container: conflicting accesses—typically
re-entrant mutation through an aliasing handle—do not wait but fail
immediately with ErrAlreadyBorrowed. All mutators report failure through
error returns and leave the tree untouched when they fail.

Traversal is breadth-first: nodes are emitted level by level, siblings in
insertion order. The walk is available as a pull iterator (Walk), a range
function (Range), and a callback visitor (Each).

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2025–26, the treelight authors

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
package arbor

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer aliases T for use inside generic code, where a type parameter
// named T shadows the package-level function.
var tracer = T

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
