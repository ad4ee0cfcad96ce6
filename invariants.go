package bst

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Check validates the search tree invariant: for every node, all keys of its
// left sub-tree are strictly smaller and all keys of its right sub-tree are
// strictly greater than its own key. As a consequence keys are unique.
//
// Check visits every node and is meant to be used in tests.
func (t *Tree[K]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariant)
	}
	return checkNode(t.root, nil, nil)
}

// checkNode verifies that all keys below node lie strictly between lo and hi,
// where a nil bound is unbounded.
func checkNode[K constraints.Ordered](node *Node[K], lo, hi *K) error {
	if node == nil {
		return nil
	}
	if lo != nil && node.data <= *lo {
		return fmt.Errorf("%w: key %v not greater than %v", ErrInvariant, node.data, *lo)
	}
	if hi != nil && node.data >= *hi {
		return fmt.Errorf("%w: key %v not less than %v", ErrInvariant, node.data, *hi)
	}
	if err := checkNode(node.left, lo, &node.data); err != nil {
		return err
	}
	return checkNode(node.right, &node.data, hi)
}
