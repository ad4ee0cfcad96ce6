package printer

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/bst"
	"github.com/xlab/treeprint"
	"golang.org/x/exp/constraints"
	"golang.org/x/term"
)

// Branch drawing elements. Every level of depth is 4 characters wide.
const (
	upperBranch = "┌── "
	lowerBranch = "└── "
	verticalBar = "│   "
	blank       = "    "
)

// Config controls the output of a tree.
type Config struct {
	Colored     bool         // use terminal colors
	KeyColor    *color.Color // color for keys; defaults to blue
	BranchColor *color.Color // color for branch drawings; defaults to faint
}

// ConfigFromTerminal is a simple helper for creating a printing Config.
// It checks wether stdout is a terminal, and if so it switches on colors.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		config.Colored = true
	}
	tracer().P("printer", "console").Infof("colored output = %v", config.Colored)
	return config
}

func (cfg *Config) normalized() *Config {
	c := Config{}
	if cfg != nil {
		c = *cfg
	}
	if !c.Colored {
		return &c
	}
	if c.KeyColor == nil {
		c.KeyColor = color.New(color.FgBlue, color.Bold)
	}
	if c.BranchColor == nil {
		c.BranchColor = color.New(color.Faint)
	}
	c.KeyColor.EnableColor()
	c.BranchColor.EnableColor()
	return &c
}

func (cfg *Config) key(k any) string {
	if cfg.Colored {
		return cfg.KeyColor.Sprint(k)
	}
	return fmt.Sprint(k)
}

func (cfg *Config) branch(s string) string {
	if cfg.Colored {
		return cfg.BranchColor.Sprint(s)
	}
	return s
}

// Print outputs a tree to stdout. If config is nil, a config will be created
// from the properties of stdout; see ConfigFromTerminal.
func Print[K constraints.Ordered](t *bst.Tree[K], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	return Fprint(os.Stdout, t, config)
}

// Fprint outputs a tree to w, one key per line. Right sub-trees are printed
// above their parent, left sub-trees below. An empty tree produces no output.
func Fprint[K constraints.Ordered](w io.Writer, t *bst.Tree[K], config *Config) error {
	if t.IsEmpty() {
		return nil
	}
	cfg := config.normalized()
	bw := bufio.NewWriter(w)
	printNode(bw, cfg, t.Root(), "", true)
	if err := bw.Flush(); err != nil {
		tracer().Errorf("printer: %s", err.Error())
		return err
	}
	return nil
}

func printNode[K constraints.Ordered](w *bufio.Writer, cfg *Config, node *bst.Node[K],
	prefix string, isLeft bool) {
	//
	if node.Right() != nil {
		printNode(w, cfg, node.Right(), prefix+pick(isLeft, verticalBar, blank), false)
	}
	w.WriteString(cfg.branch(prefix + pick(isLeft, lowerBranch, upperBranch)))
	w.WriteString(cfg.key(node.Data()))
	w.WriteByte('\n')
	if node.Left() != nil {
		printNode(w, cfg, node.Left(), prefix+pick(isLeft, blank, verticalBar), true)
	}
}

func pick(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}

// absent marks a missing child in a listing.
const absent = "·"

// Listing returns a top-down outline of a tree, listing the left child of a
// node before its right child. If a node has just one child, the missing one
// is shown as '·'. An empty tree results in an empty string.
func Listing[K constraints.Ordered](t *bst.Tree[K]) string {
	if t.IsEmpty() {
		return ""
	}
	root := t.Root()
	out := treeprint.NewWithRoot(root.Data())
	addChildren(out, root)
	return out.String()
}

func addChildren[K constraints.Ordered](branch treeprint.Tree, node *bst.Node[K]) {
	if node.IsLeaf() {
		return
	}
	for _, child := range []*bst.Node[K]{node.Left(), node.Right()} {
		switch {
		case child == nil:
			branch.AddNode(absent)
		case child.IsLeaf():
			branch.AddNode(child.Data())
		default:
			addChildren(branch.AddBranch(child.Data()), child)
		}
	}
}
