package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/npillmayer/bst"
	"github.com/npillmayer/bst/printer"
	"github.com/npillmayer/schuko/tracing"
)

// randomKeys creates n keys in (lo…hi].
func randomKeys(rnd *rand.Rand, n, lo, hi int) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = lo + 1 + rnd.IntN(hi-lo)
	}
	return keys
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	tracing.Select("bst").Infof("bstdemo: random seed %d", seed)
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func run(w io.Writer, opts *options) error {
	keys := randomKeys(newRand(opts.seed), opts.size, opts.min, opts.max)
	fmt.Fprintf(w, "keys: %v\n", keys)
	tree := bst.New(keys...)
	cfg := printer.ConfigFromTerminal()
	if err := report(w, tree, cfg, true); err != nil {
		return err
	}
	if len(opts.inserts) > 0 {
		fmt.Fprintln(w, "==========")
		fmt.Fprintf(w, "inserting %v to test balance\n", opts.inserts)
		for _, k := range opts.inserts {
			tree.Insert(k)
		}
		if err := report(w, tree, cfg, false); err != nil {
			return err
		}
	}
	fmt.Fprintln(w, "==========")
	fmt.Fprintln(w, "rebalancing")
	tree.Rebalance()
	if err := report(w, tree, cfg, true); err != nil {
		return err
	}
	if opts.dotFile != "" {
		return writeDot(tree, opts.dotFile)
	}
	return nil
}

func report(w io.Writer, tree *bst.Tree[int], cfg *printer.Config, traversals bool) error {
	if err := printer.Fprint(w, tree, cfg); err != nil {
		return err
	}
	fmt.Fprintf(w, "isBalanced: %v, height: %d\n", tree.IsBalanced(), tree.Height())
	if traversals {
		fmt.Fprintf(w, "inorder:    %v\n", tree.InOrder())
		fmt.Fprintf(w, "preorder:   %v\n", tree.PreOrder())
		fmt.Fprintf(w, "postorder:  %v\n", tree.PostOrder())
		fmt.Fprintf(w, "levelorder: %v\n", tree.LevelOrder())
	}
	return nil
}

func writeDot(tree *bst.Tree[int], path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create DOT file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return bst.Tree2Dot(tree, f)
}
