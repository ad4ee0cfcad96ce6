/*
Package printer renders search trees for human readers.

Fprint draws a tree sideways, with the root at the left margin and right
sub-trees above left sub-trees:

	│       ┌── 7
	│   ┌── 6
	│   │   └── 5
	└── 4
	    │   ┌── 3
	    └── 2
	        └── 1

Listing produces a top-down outline of a tree, which is often easier to read
for deep trees.

Printing needs read access to a tree's nodes only and never changes a tree.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package printer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bst'
func tracer() tracing.Trace {
	return tracing.Select("bst")
}
