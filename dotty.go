package bst

import (
	"fmt"
	"io"

	"github.com/emicklei/dot"
	"golang.org/x/exp/constraints"
)

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Missing children of inner nodes are drawn as
// small empty circles, so left and right links stay distinguishable.
func Tree2Dot[K constraints.Ordered](t *Tree[K], w io.Writer) error {
	graph := dot.NewGraph(dot.Directed)
	graph.Attr("ordering", "out")
	if !t.IsEmpty() {
		nilcnt := 0
		var traverse func(node *Node[K], id string) dot.Node
		traverse = func(node *Node[K], id string) dot.Node {
			n := graph.Node(id).Label(fmt.Sprintf("%v", node.data))
			n.Attr("shape", "circle").Attr("style", "filled").Attr("fillcolor", "#a3d7e4")
			if node.IsLeaf() {
				return n
			}
			for i, child := range []*Node[K]{node.left, node.right} {
				if child == nil {
					nilcnt++
					empty := graph.Node(fmt.Sprintf("nil%d", nilcnt)).Label("")
					empty.Attr("shape", "circle").Attr("fixedsize", "true").Attr("width", ".2")
					n.Edge(empty)
					continue
				}
				n.Edge(traverse(child, id+string("lr"[i])))
			}
			return n
		}
		traverse(t.root, "n")
	}
	if _, err := io.WriteString(w, graph.String()); err != nil {
		T().Errorf("bst DOT: %s", err.Error())
		return err
	}
	return nil
}
