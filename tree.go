package bst

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/npillmayer/bst/mergesort"
	"golang.org/x/exp/constraints"
)

// Tree is a binary search tree over unique keys.
//
// A tree created by
//
//	Tree[int]{}
//
// is a valid object and behaves like an empty tree.
//
// Trees are not safe for concurrent use; see the package documentation.
//
//	Operation     |   balanced      |  degenerated
//	--------------+-----------------+-------------
//	Find          |   O(log n)      |   O(n)
//	Insert        |   O(log n)      |   O(n)
//	Delete        |   O(log n)      |   O(n)
//	Traverse      |   O(n)          |   O(n)
//	Rebalance     |   O(n log n)    |   O(n log n)
type Tree[K constraints.Ordered] struct {
	root *Node[K]
}

// New creates a tree from a collection of keys. Duplicate keys are dropped.
func New[K constraints.Ordered](values ...K) *Tree[K] {
	t := &Tree[K]{}
	t.Build(values)
	return t
}

// NewFromSequence creates a tree from any sequence accepted by
// mergesort.FromSequence. If seq is not a sequence of keys,
// mergesort.ErrInvalidInput is returned.
func NewFromSequence[K constraints.Ordered](seq any) (*Tree[K], error) {
	sorted, err := mergesort.FromSequence[K](seq)
	if err != nil {
		return nil, err
	}
	t := &Tree[K]{}
	t.Build(sorted)
	return t, nil
}

// Build discards the current shape of the tree and creates a new,
// height-balanced one from values. Duplicates in values are dropped.
// Build returns the new root node, which is nil for empty input.
func (t *Tree[K]) Build(values []K) *Node[K] {
	seen := make(map[K]struct{}, len(values))
	unique := make([]K, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		unique = append(unique, v)
	}
	sorted := mergesort.Sort(unique)
	t.root = buildSorted(sorted, 0, len(sorted)-1)
	T().Debugf("bst: built tree of %d keys (%d duplicates dropped), height %d",
		len(sorted), len(values)-len(sorted), t.root.Height())
	return t.root
}

// buildSorted arranges the keys sorted[start…end] into a sub-tree, taking the
// middle key as sub-tree root.
func buildSorted[K constraints.Ordered](sorted []K, start, end int) *Node[K] {
	if start > end {
		return nil
	}
	mid := (start + end) / 2
	node := newNode(sorted[mid])
	node.left = buildSorted(sorted, start, mid-1)
	node.right = buildSorted(sorted, mid+1, end)
	return node
}

// Root returns the root node of the tree, or nil for an empty tree.
func (t *Tree[K]) Root() *Node[K] {
	if t == nil {
		return nil
	}
	return t.root
}

// IsEmpty reports whether the tree has no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int {
	if t == nil {
		return 0
	}
	return t.root.size()
}

// Height returns the height of the tree's root; see Node.Height.
func (t *Tree[K]) Height() int {
	if t == nil {
		return 0
	}
	return t.root.Height()
}
