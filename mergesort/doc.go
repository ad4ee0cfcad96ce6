/*
Package mergesort provides the sort utility used when building search trees.

Sorting is a classic top-down merge sort. It is stable: when both halves
carry equal values, the value from the left half is emitted first. Merging
works with index cursors, so no element is ever removed from the front of a
slice.

Clients may hand in sequences of different shapes (slices, iterators or
types implementing Sequence) with FromSequence. Anything else is rejected
with ErrInvalidInput.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package mergesort

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bst'
func tracer() tracing.Trace {
	return tracing.Select("bst")
}

// ErrInvalidInput is returned by FromSequence if the input is not a sequence
// of the requested key type.
var ErrInvalidInput = errors.New("mergesort: invalid input")
