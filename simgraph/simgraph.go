// SPDX-License-Identifier: MIT
// Package simgraph: similarity, degree and normalized-similarity kernels.
// All kernels validate via the central matrix validators, allocate each
// result exactly once and keep fixed loop orders for reproducibility.

package simgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/symnmf/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opSimilarity   = "Similarity"
	opDegree       = "Degree"
	opDegreeVector = "DegreeVector"
	opNormalized   = "Normalized"
)

// kernelScale is the divisor of the squared Euclidean distance inside the
// Gaussian kernel exp(−dist²/kernelScale). It is part of the algorithm
// definition, not a tunable.
const kernelScale = 2.0

// simgraphErrorf wraps err with an operation tag, preserving the original
// error via %w so errors.Is keeps matching the matrix sentinels.
func simgraphErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Similarity builds the Gaussian-kernel similarity matrix A from an n×d
// point matrix: A[i][j] = exp(−‖xi−xj‖²/2) for i≠j and A[i][i] = 0.
//
// Implementation:
//   - Stage 1: ValidateNotNil(points); allocate the n×n result.
//   - Stage 2: Full double loop over (i,j); the (j,i) cell is recomputed with
//     the same formula rather than mirrored, so results are bit-identical to
//     the naive formulation.
//
// Behavior highlights:
//   - Symmetric with zero diagonal; entries in (0,1]; A[i][j]=1 iff the two
//     points coincide.
//   - d=0 inputs are well-defined: every pairwise distance is 0, so every
//     off-diagonal entry is exp(0)=1. (Dense itself cannot carry zero-width
//     shapes; such inputs arrive via alternative Matrix implementations.)
//
// Inputs:
//   - points: n×d matrix, one point per row; never mutated.
//
// Returns:
//   - *matrix.Dense: freshly allocated n×n similarity matrix.
//
// Errors:
//   - matrix.ErrNilMatrix; matrix.ErrBadShape for n=0 (from the constructor);
//     wrapped At errors on the fallback path.
//
// Determinism:
//   - Fixed i→j→k loop order; no data-dependent branching beyond i==j.
//
// Complexity:
//   - Time O(n²·d), Space O(n²).
//
// AI-Hints:
//   - Pass *matrix.Dense points to unlock the flat row-major fast path.
func Similarity(points matrix.Matrix) (*matrix.Dense, error) {
	// Validate input non-nil
	if err := matrix.ValidateNotNil(points); err != nil {
		return nil, simgraphErrorf(opSimilarity, err)
	}

	// Allocate the n×n result
	n, d := points.Rows(), points.Cols()
	sim, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, simgraphErrorf(opSimilarity, err)
	}

	out := sim.RawData()
	var (
		i, j, k   int // loop iterators
		sum, diff float64
	)

	// Fast path: *Dense points → flat row-major distance accumulation.
	if dp, ok := points.(*matrix.Dense); ok {
		raw := dp.RawData()
		var rowI, rowJ int
		for i = 0; i < n; i++ {
			rowI = i * d
			for j = 0; j < n; j++ {
				if i == j {
					continue // diagonal stays 0
				}
				rowJ = j * d
				sum = 0.0
				for k = 0; k < d; k++ {
					diff = raw[rowI+k] - raw[rowJ+k]
					sum += diff * diff
				}
				out[i*n+j] = math.Exp(-sum / kernelScale)
			}
		}

		return sim, nil
	}

	// Fallback: generic interface loop via At.
	var vi, vj float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue // diagonal stays 0
			}
			sum = 0.0
			for k = 0; k < d; k++ {
				vi, err = points.At(i, k)
				if err != nil {
					return nil, simgraphErrorf(opSimilarity, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				vj, err = points.At(j, k)
				if err != nil {
					return nil, simgraphErrorf(opSimilarity, fmt.Errorf("At(%d,%d): %w", j, k, err))
				}
				diff = vi - vj
				sum += diff * diff
			}
			out[i*n+j] = math.Exp(-sum / kernelScale)
		}
	}

	return sim, nil
}

// DegreeVector returns the per-point total affinity deg[i] = Σ_j A[i][j] as
// a length-n vector, computing the similarity matrix internally as a
// function-local temporary.
//
// Implementation:
//   - Stage 1: delegate to Similarity (validation happens there).
//   - Stage 2: fold each similarity row into one scalar.
//
// Returns:
//   - []float64: row sums of the similarity matrix, length n.
//
// Errors:
//   - everything Similarity can return, wrapped with the DegreeVector tag.
//
// Complexity:
//   - Time O(n²·d), Space O(n²) transient + O(n) result.
func DegreeVector(points matrix.Matrix) ([]float64, error) {
	// Build the similarity matrix as a temporary.
	sim, err := Similarity(points)
	if err != nil {
		return nil, simgraphErrorf(opDegreeVector, err)
	}

	// Fold rows into the degree vector.
	n := sim.Rows()
	raw := sim.RawData()
	deg := make([]float64, n)
	var i, j, base int
	for i = 0; i < n; i++ {
		base = i * n
		for j = 0; j < n; j++ {
			deg[i] += raw[base+j]
		}
	}

	return deg, nil
}

// Degree builds the diagonal degree matrix D with D[i][i] = Σ_j A[i][j] and
// every off-diagonal entry exactly 0.
//
// Implementation:
//   - Stage 1: DegreeVector over the points (similarity is its temporary).
//   - Stage 2: scatter the vector onto the diagonal of a zero matrix.
//
// Behavior highlights:
//   - Off-diagonal cells are the constructor's zeros, never written.
//
// Errors:
//   - everything Similarity can return, wrapped with the Degree tag.
//
// Complexity:
//   - Time O(n²·d), Space O(n²).
func Degree(points matrix.Matrix) (*matrix.Dense, error) {
	// Compute the degree diagonal.
	deg, err := DegreeVector(points)
	if err != nil {
		return nil, simgraphErrorf(opDegree, err)
	}

	// Scatter onto the diagonal of a fresh zero matrix.
	n := len(deg)
	D, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, simgraphErrorf(opDegree, err)
	}
	raw := D.RawData()
	for i := 0; i < n; i++ {
		raw[i*n+i] = deg[i]
	}

	return D, nil
}

// Normalized builds the degree-normalized similarity matrix
// W[i][j] = A[i][j] / sqrt(deg[i]·deg[j]), the factorization target.
//
// Implementation:
//   - Stage 1: Similarity over the points (kept as a local temporary).
//   - Stage 2: fold its rows into the degree vector (no full D matrix).
//   - Stage 3: elementwise normalization into a fresh n×n result.
//
// Behavior highlights:
//   - W is symmetric; its diagonal is A[i][i]/deg[i] = 0 whenever deg[i]>0.
//   - Zero degrees (possible only with n=1) divide 0/0 → NaN, which
//     propagates unguarded; NaN results are not errors.
//
// Errors:
//   - everything Similarity can return, wrapped with the Normalized tag.
//
// Determinism:
//   - Fixed i→j traversal in every stage.
//
// Complexity:
//   - Time O(n²·d), Space O(n²).
func Normalized(points matrix.Matrix) (*matrix.Dense, error) {
	// Stage 1: similarity matrix (temporary).
	sim, err := Similarity(points)
	if err != nil {
		return nil, simgraphErrorf(opNormalized, err)
	}
	n := sim.Rows()
	simRaw := sim.RawData()

	// Stage 2: degree diagonal as a vector (no full matrix needed here).
	deg := make([]float64, n)
	var i, j, base int
	for i = 0; i < n; i++ {
		base = i * n
		for j = 0; j < n; j++ {
			deg[i] += simRaw[base+j]
		}
	}

	// Stage 3: elementwise normalization into the result.
	W, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, simgraphErrorf(opNormalized, err)
	}
	out := W.RawData()
	for i = 0; i < n; i++ {
		base = i * n
		for j = 0; j < n; j++ {
			// Unguarded division: zero degrees propagate NaN by contract.
			out[base+j] = simRaw[base+j] / math.Sqrt(deg[i]*deg[j])
		}
	}

	return W, nil
}
