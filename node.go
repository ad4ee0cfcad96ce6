package bst

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "golang.org/x/exp/constraints"

// Node is a node of a search tree. Each node exclusively owns its children;
// there are no links back to the parent.
//
// Nodes are handed out to clients for read access only. Keys of nodes must not
// be changed by clients, as this would break the tree's ordering.
type Node[K constraints.Ordered] struct {
	data  K
	left  *Node[K]
	right *Node[K]
}

func newNode[K constraints.Ordered](data K) *Node[K] {
	return &Node[K]{data: data}
}

// Data returns the key of a node.
func (n *Node[K]) Data() K {
	return n.data
}

// Left returns the left child of a node, or nil.
func (n *Node[K]) Left() *Node[K] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child of a node, or nil.
func (n *Node[K]) Right() *Node[K] {
	if n == nil {
		return nil
	}
	return n.right
}

// IsLeaf is true for nodes without children.
func (n *Node[K]) IsLeaf() bool {
	return n != nil && n.left == nil && n.right == nil
}

// Height returns the number of nodes on the longest downward path from n to a
// leaf. A nil node has height 0, a leaf has height 1.
func (n *Node[K]) Height() int {
	if n == nil {
		return 0
	}
	return max(n.left.Height(), n.right.Height()) + 1
}

// size counts the nodes of the sub-tree rooted at n.
func (n *Node[K]) size() int {
	if n == nil {
		return 0
	}
	return n.left.size() + 1 + n.right.size()
}
