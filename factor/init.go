// SPDX-License-Identifier: MIT
// Package factor: H₀ initialization for the factorization engine.

package factor

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/symnmf/matrix"
)

// opInitH tags InitH errors for unified wrapping.
const opInitH = "InitH"

// InitH builds a random initial factor H₀ (n×k) for Factorize, with entries
// drawn uniformly from [0, 2·sqrt(mean(W)/k)) — a scale heuristic that puts
// the expected magnitude of (H·Hᵗ)[i][j] near mean(W).
//
// Implementation:
//   - Stage 1: validate W (non-nil, square) and k ≥ 1.
//   - Stage 2: mean over W's entries (gonum stat.Mean on the flat storage
//     for *Dense; kernel fallback otherwise), upper bound 2·sqrt(mean/k).
//   - Stage 3: fill n×k with a seeded math/rand generator, fixed row-major
//     order.
//
// Behavior highlights:
//   - Deterministic per seed; two calls with equal (W, k, seed) return
//     identical matrices. Use DefaultSeed for reproducible pipelines.
//   - A negative mean(W) (impossible for similarity-derived targets) yields
//     a NaN bound that propagates, consistent with the package's unguarded
//     numeric policy.
//
// Inputs:
//   - W:    n×n factorization target.
//   - k:    number of clusters / factorization rank, 1 ≤ k (k < n by
//     convention, not enforced).
//   - seed: RNG seed.
//
// Returns:
//   - *matrix.Dense: freshly allocated n×k matrix with entries in [0, bound).
//
// Errors:
//   - ErrBadRank for k < 1; matrix.ErrNilMatrix, matrix.ErrNonSquare.
//
// Complexity:
//   - Time O(n² + n·k), Space O(n·k).
func InitH(W matrix.Matrix, k int, seed int64) (*matrix.Dense, error) {
	// Stage 1 (Validate).
	if err := matrix.ValidateSquare(W); err != nil {
		return nil, factorErrorf(opInitH, err)
	}
	if k < 1 {
		return nil, factorErrorf(opInitH, ErrBadRank)
	}

	// Stage 2 (Bound): mean(W) → upper bound of the uniform range.
	var mean float64
	if d, ok := W.(*matrix.Dense); ok {
		mean = stat.Mean(d.RawData(), nil) // flat storage, no copy
	} else {
		var err error
		mean, err = matrix.Mean(W)
		if err != nil {
			return nil, factorErrorf(opInitH, err)
		}
	}
	bound := 2.0 * math.Sqrt(mean/float64(k))

	// Stage 3 (Fill): seeded uniform fill in row-major order.
	n := W.Rows()
	H, err := matrix.NewDense(n, k)
	if err != nil {
		return nil, factorErrorf(opInitH, err)
	}
	rng := rand.New(rand.NewSource(seed))
	raw := H.RawData()
	for idx := range raw {
		raw[idx] = rng.Float64() * bound
	}

	return H, nil
}
