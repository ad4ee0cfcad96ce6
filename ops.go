package bst

import "golang.org/x/exp/constraints"

// Insert inserts a key into the tree. The new key becomes a leaf; the tree is
// not re-balanced. Inserting a key which is already present is a no-op.
func (t *Tree[K]) Insert(value K) {
	t.root = insertNode(t.root, value)
}

func insertNode[K constraints.Ordered](node *Node[K], value K) *Node[K] {
	if node == nil {
		return newNode(value)
	}
	if value > node.data {
		node.right = insertNode(node.right, value)
	} else if value < node.data {
		node.left = insertNode(node.left, value)
	}
	return node
}

// Delete removes a key from the tree. Deleting a key which is not present
// leaves the tree unchanged.
//
// If the node holding the key has two children, it takes over the smallest
// key of its right sub-tree, and the node of that key is removed instead.
func (t *Tree[K]) Delete(value K) {
	t.root = deleteNode(t.root, value)
}

func deleteNode[K constraints.Ordered](node *Node[K], value K) *Node[K] {
	if node == nil {
		return nil
	}
	switch {
	case value > node.data:
		node.right = deleteNode(node.right, value)
		return node
	case value < node.data:
		node.left = deleteNode(node.left, value)
		return node
	}
	if node.left == nil {
		return node.right
	} else if node.right == nil {
		return node.left
	}
	successor := minNode(node.right)
	T().Debugf("bst: delete %v replaces key by successor %v", value, successor.data)
	node.data = successor.data
	node.right = deleteNode(node.right, successor.data)
	return node
}

// Find returns the node holding value. If value is not present, Find returns
// false.
func (t *Tree[K]) Find(value K) (*Node[K], bool) {
	if t == nil {
		return nil, false
	}
	node := findNode(t.root, value)
	return node, node != nil
}

// Contains reports whether value is a key of the tree.
func (t *Tree[K]) Contains(value K) bool {
	_, ok := t.Find(value)
	return ok
}

func findNode[K constraints.Ordered](node *Node[K], value K) *Node[K] {
	if node == nil {
		return nil
	}
	if value > node.data {
		return findNode(node.right, value)
	} else if value < node.data {
		return findNode(node.left, value)
	}
	return node
}

// FindMin returns the node with the smallest key of the sub-tree rooted at
// node. node must be part of t, otherwise ErrNotInTree is returned. A nil
// node results in ErrNilNode.
func (t *Tree[K]) FindMin(node *Node[K]) (*Node[K], error) {
	if node == nil {
		T().Errorf("bst: FindMin called for nil node")
		return nil, ErrNilNode
	}
	if !t.owns(node) {
		T().Errorf("bst: FindMin called for foreign node %v", node.data)
		return nil, ErrNotInTree
	}
	return minNode(node), nil
}

// Min returns the smallest key of the tree. For an empty tree, Min returns
// false.
func (t *Tree[K]) Min() (K, bool) {
	if t.IsEmpty() {
		var zero K
		return zero, false
	}
	return minNode(t.root).data, true
}

// Max returns the largest key of the tree. For an empty tree, Max returns
// false.
func (t *Tree[K]) Max() (K, bool) {
	if t.IsEmpty() {
		var zero K
		return zero, false
	}
	node := t.root
	for node.right != nil {
		node = node.right
	}
	return node.data, true
}

func minNode[K constraints.Ordered](node *Node[K]) *Node[K] {
	assert(node != nil, "minNode called with nil node")
	for node.left != nil {
		node = node.left
	}
	return node
}

// owns reports whether node is reachable from the root of t. As keys are
// unique, node is reachable iff a search for its key ends at node.
func (t *Tree[K]) owns(node *Node[K]) bool {
	if t == nil || node == nil {
		return false
	}
	return findNode(t.root, node.data) == node
}
