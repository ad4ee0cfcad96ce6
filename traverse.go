package bst

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Order selects a traversal order.
type Order int8

// Traversal orders. The depth-first orders are named by the position a node is
// visited in relative to its children.
const (
	LevelOrder Order = iota // breadth first, left to right within a level
	InOrder                 // left, node, right
	PreOrder                // node, left, right
	PostOrder               // left, right, node
)

func (o Order) String() string {
	switch o {
	case LevelOrder:
		return "level-order"
	case InOrder:
		return "in-order"
	case PreOrder:
		return "pre-order"
	case PostOrder:
		return "post-order"
	}
	return "unknown-order"
}

// Nodes returns an iterator over the nodes of the tree in the given order.
func (t *Tree[K]) Nodes(order Order) iter.Seq[*Node[K]] {
	return func(yield func(*Node[K]) bool) {
		if t.IsEmpty() {
			return
		}
		t.walk(order, yield)
	}
}

// Keys returns the keys of the tree in the given order.
func (t *Tree[K]) Keys(order Order) []K {
	return Map(t, order, (*Node[K]).Data)
}

// LevelOrder returns the keys of the tree in breadth-first order.
func (t *Tree[K]) LevelOrder() []K { return t.Keys(LevelOrder) }

// InOrder returns the keys of the tree in ascending order.
func (t *Tree[K]) InOrder() []K { return t.Keys(InOrder) }

// PreOrder returns the keys of the tree in depth-first pre-order.
func (t *Tree[K]) PreOrder() []K { return t.Keys(PreOrder) }

// PostOrder returns the keys of the tree in depth-first post-order.
func (t *Tree[K]) PostOrder() []K { return t.Keys(PostOrder) }

// Map traverses a tree in the given order and calls visit for every node.
// It returns the results of visit, one per node, in traversal order.
// If visit is nil, Map returns nil.
func Map[K constraints.Ordered, V any](t *Tree[K], order Order, visit func(*Node[K]) V) []V {
	if t.IsEmpty() || visit == nil {
		return nil
	}
	out := make([]V, 0, t.Len())
	t.walk(order, func(node *Node[K]) bool {
		out = append(out, visit(node))
		return true
	})
	return out
}

// walk calls yield for every node in the given order until yield returns false.
func (t *Tree[K]) walk(order Order, yield func(*Node[K]) bool) {
	switch order {
	case LevelOrder:
		walkLevels(t.root, yield)
	case InOrder:
		walkInOrder(t.root, yield)
	case PreOrder:
		walkPreOrder(t.root, yield)
	case PostOrder:
		walkPostOrder(t.root, yield)
	default:
		T().Errorf("bst: unknown traversal order %d", order)
	}
}

func walkLevels[K constraints.Ordered](root *Node[K], yield func(*Node[K]) bool) {
	if root == nil {
		return
	}
	queue := []*Node[K]{root}
	for head := 0; head < len(queue); head++ {
		node := queue[head]
		if !yield(node) {
			return
		}
		if node.left != nil {
			queue = append(queue, node.left)
		}
		if node.right != nil {
			queue = append(queue, node.right)
		}
	}
}

func walkInOrder[K constraints.Ordered](node *Node[K], yield func(*Node[K]) bool) bool {
	if node == nil {
		return true
	}
	return walkInOrder(node.left, yield) && yield(node) && walkInOrder(node.right, yield)
}

func walkPreOrder[K constraints.Ordered](node *Node[K], yield func(*Node[K]) bool) bool {
	if node == nil {
		return true
	}
	return yield(node) && walkPreOrder(node.left, yield) && walkPreOrder(node.right, yield)
}

func walkPostOrder[K constraints.Ordered](node *Node[K], yield func(*Node[K]) bool) bool {
	if node == nil {
		return true
	}
	return walkPostOrder(node.left, yield) && walkPostOrder(node.right, yield) && yield(node)
}
