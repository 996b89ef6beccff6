// SPDX-License-Identifier: MIT
// Command symnmf: CLI driver for the symmetric-NMF clustering pipeline.
//
// Usage:
//
//	symnmf --goal sym|ddg|norm|symnmf [--k N] [--seed S] FILE
//
// FILE is a headerless CSV dataset, one point per line. The selected goal's
// result matrix is printed to stdout in 4-decimal CSV. Any failure prints a
// single generic line to stderr and exits non-zero.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/symnmf/factor"
	"github.com/katalvlaran/symnmf/matrix"
	"github.com/katalvlaran/symnmf/pointset"
	"github.com/katalvlaran/symnmf/simgraph"
)

// Goal names accepted by --goal.
const (
	goalSym    = "sym"    // similarity matrix A
	goalDDG    = "ddg"    // diagonal degree matrix D
	goalNorm   = "norm"   // normalized similarity W
	goalSymNMF = "symnmf" // full factorization H
)

// failureLine is the single user-facing error message; diagnostics stay in
// the wrapped error chain, not on the console.
const failureLine = "An Error Has Occurred"

// run executes one goal against the dataset at path and streams the result
// matrix to out.
func run(goal string, k int, seed int64, path string, out io.Writer) error {
	pts, err := pointset.ReadPointsFile(path)
	if err != nil {
		return err
	}

	var result matrix.Matrix
	switch goal {
	case goalSym:
		result, err = simgraph.Similarity(pts)
	case goalDDG:
		result, err = simgraph.Degree(pts)
	case goalNorm:
		result, err = simgraph.Normalized(pts)
	case goalSymNMF:
		result, err = factorize(pts, k, seed)
	default:
		err = fmt.Errorf("unknown goal %q", goal)
	}
	if err != nil {
		return err
	}

	return pointset.WriteMatrix(out, result)
}

// factorize runs the full pipeline: normalized similarity → seeded H₀ →
// multiplicative-update iteration.
func factorize(pts matrix.Matrix, k int, seed int64) (*matrix.Dense, error) {
	W, err := simgraph.Normalized(pts)
	if err != nil {
		return nil, err
	}
	H0, err := factor.InitH(W, k, seed)
	if err != nil {
		return nil, err
	}

	return factor.Factorize(W, H0, factor.DefaultOptions())
}

// newRootCmd wires flags and argument validation around run.
func newRootCmd() *cobra.Command {
	var (
		goal string
		k    int
		seed int64
	)

	cmd := &cobra.Command{
		Use:           "symnmf --goal sym|ddg|norm|symnmf [--k N] [--seed S] FILE",
		Short:         "Symmetric non-negative matrix factorization clustering",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(goal, k, seed, args[0], cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&goal, "goal", goalSymNMF, "sym, ddg, norm or symnmf")
	cmd.Flags().IntVar(&k, "k", 2, "number of clusters (symnmf goal only)")
	cmd.Flags().Int64Var(&seed, "seed", factor.DefaultSeed, "H0 initialization seed")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, failureLine)
		os.Exit(1)
	}
}
