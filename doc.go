/*
Package bst implements a binary search tree over unique, totally ordered keys,
which is balanced on request by rebuilding.

Trees

A tree is created from an arbitrary collection of keys. Duplicates are dropped,
the remaining keys are sorted and arranged into a height-balanced shape:

	t := bst.New(5, 3, 9, 1, 3)

Insert and Delete operate on the live shape and never restructure it beyond
the path they touch. Repeated insertion may therefore degrade the tree into
something list-like. Balance is restored only by an explicit call to
Rebalance, which re-builds the tree from an in-order dump of its keys:

	t.Insert(20)
	t.Insert(30)
	t.Insert(40)
	if !t.IsBalanced() {
	    t.Rebalance()
	}

Balance, as reported by IsBalanced, is a shallow property: only the heights of
the root's two subtrees are compared. Sub-trees further down are not inspected.

Traversals

Keys may be collected in level order (breadth first) or in one of the three
depth-first orders. For clients which want something other than the raw keys,
function Map applies a visitor to every node of a traversal.

Concurrency

Trees have no internal synchronization. Clients sharing a tree between
goroutines have to serialize access themselves, e.g., by guarding it with a
mutex.

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
package bst

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the tracer with key 'bst'.
func T() tracing.Trace {
	return tracing.Select("bst")
}

// TreeError is an error type for the bst module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrNilNode is flagged whenever an operation which needs a starting node
// is called with nil.
const ErrNilNode = TreeError("node is nil")

// ErrNotInTree is flagged whenever a node is not reachable from the root of
// the tree an operation has been called for.
const ErrNotInTree = TreeError("node is not part of the tree")

// ErrInvariant is flagged by Check if a tree violates the search tree order.
const ErrInvariant = TreeError("search tree invariant violated")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
