package bst

// Depth returns the number of edges on the path from the root of t to node.
// The root has depth 0. Levels are counted breadth first.
//
// If node is nil, ErrNilNode is returned. If node is not part of t,
// ErrNotInTree is returned.
func (t *Tree[K]) Depth(node *Node[K]) (int, error) {
	if node == nil {
		return 0, ErrNilNode
	}
	if t.IsEmpty() {
		return 0, ErrNotInTree
	}
	level := 0
	current := []*Node[K]{t.root}
	var next []*Node[K]
	for len(current) > 0 {
		for _, n := range current {
			if n == node {
				return level, nil
			}
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		current, next = next, current[:0]
		level++
	}
	T().P("key", node.data).Errorf("bst: Depth called for foreign node")
	return 0, ErrNotInTree
}

// IsBalanced reports whether the heights of the root's left and right
// sub-trees differ by at most 1. Sub-trees below the root's children are not
// checked. An empty tree is balanced.
func (t *Tree[K]) IsBalanced() bool {
	if t.IsEmpty() {
		return true
	}
	diff := t.root.left.Height() - t.root.right.Height()
	return diff >= -1 && diff <= 1
}

// Rebalance rebuilds the tree into a height-balanced shape, keeping its keys.
func (t *Tree[K]) Rebalance() {
	if t.IsEmpty() {
		return
	}
	h := t.root.Height()
	t.Build(t.InOrder())
	T().Debugf("bst: rebalanced tree, height %d -> %d", h, t.root.Height())
}
