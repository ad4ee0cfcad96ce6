/*
Command bstdemo exercises a search tree: it builds a tree from random keys,
prints it, unbalances it by inserting a few large keys, and re-balances it.

	bstdemo --size 12 --max 50 --insert 299,444,499 --dot tree.dot

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	opts := defaultOptions()
	cmd := &cobra.Command{
		Use:   "bstdemo",
		Short: "Build, unbalance and re-balance a binary search tree",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().IntVar(&opts.size, "size", opts.size, "number of random keys")
	cmd.Flags().IntVar(&opts.min, "min", opts.min, "lower bound of random keys (exclusive)")
	cmd.Flags().IntVar(&opts.max, "max", opts.max, "upper bound of random keys (inclusive)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", opts.seed, "random seed; 0 picks a random one")
	cmd.Flags().IntSliceVar(&opts.inserts, "insert", opts.inserts, "keys to insert after building")
	cmd.Flags().StringVar(&opts.dotFile, "dot", opts.dotFile, "write final tree in Graphviz DOT format to this file")
	cmd.Flags().StringVar(&opts.traceLevel, "trace", opts.traceLevel, "trace level (Error, Info, Debug)")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := opts.validate(); err != nil {
			return err
		}
		setupTracing(opts.traceLevel)
		return run(cmd.OutOrStdout(), opts)
	}
	return cmd
}

func setupTracing(level string) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracing.Select("bst").SetTraceLevel(tracing.TraceLevelFromString(level))
}

type options struct {
	size       int
	min, max   int
	seed       uint64
	inserts    []int
	dotFile    string
	traceLevel string
}

func defaultOptions() *options {
	return &options{
		size:       7,
		min:        0,
		max:        20,
		inserts:    []int{299, 444, 499},
		traceLevel: "Error",
	}
}

func (o *options) validate() error {
	if o.size < 0 {
		return fmt.Errorf("size must not be negative, is %d", o.size)
	}
	if o.max <= o.min {
		return fmt.Errorf("max (%d) must be greater than min (%d)", o.max, o.min)
	}
	return nil
}
