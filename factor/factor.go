// SPDX-License-Identifier: MIT
// Package factor: the symNMF multiplicative-update engine.

package factor

import (
	"fmt"
	"math"

	"github.com/katalvlaran/symnmf/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opFactorize = "Factorize"
	opUpdate    = "updateStep"
)

// factorErrorf wraps err with an operation tag, preserving the original
// error via %w so errors.Is keeps matching sentinels across packages.
func factorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateOptions checks every Options field against its documented domain.
// Returns ErrBadOptions on the first violation.
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.MaxIter < 1 {
		return fmt.Errorf("MaxIter %d: %w", opts.MaxIter, ErrBadOptions)
	}
	if math.IsNaN(opts.Epsilon) || math.IsInf(opts.Epsilon, 0) || opts.Epsilon <= 0 {
		return fmt.Errorf("Epsilon %v: %w", opts.Epsilon, ErrBadOptions)
	}
	if math.IsNaN(opts.Beta) || opts.Beta <= 0 || opts.Beta > 1 {
		return fmt.Errorf("Beta %v: %w", opts.Beta, ErrBadOptions)
	}

	return nil
}

// Factorize runs the symNMF fixed-point iteration W ≈ H·Hᵗ and returns the
// converged H. The caller's W and H0 are never mutated.
//
// Implementation:
//   - Stage 1: validate opts, W (square) and H0 (non-nil, rows match W).
//   - Stage 2: copy H0 into a private working matrix H; allocate the
//     same-shape snapshot buffer H_prev once, outside the loop.
//   - Stage 3: up to MaxIter times — snapshot H into H_prev, apply the
//     multiplicative update in place, stop early when
//     FrobeniusDelta(H, H_prev) < Epsilon.
//
// Behavior highlights:
//   - Convergence and iteration exhaustion are BOTH normal termination; the
//     caller cannot distinguish them from the result alone.
//   - Zero denominators inside the update propagate NaN/Inf unguarded (see
//     the package doc); they do not raise errors.
//
// Inputs:
//   - W:    n×n symmetric factorization target (typically simgraph.Normalized).
//   - H0:   n×k initial factor, entries expected non-negative.
//   - opts: iteration cap, epsilon and β; start from DefaultOptions().
//
// Returns:
//   - *matrix.Dense: the final n×k iterate, freshly allocated.
//
// Errors:
//   - ErrBadOptions; matrix.ErrNilMatrix, matrix.ErrNonSquare,
//     matrix.ErrDimensionMismatch (W/H0 row mismatch); allocation failures
//     from the kernels. On any error no partial H is returned.
//
// Determinism:
//   - Fixed kernel loop orders; identical inputs yield identical iterates.
//
// Complexity:
//   - Time O(MaxIter·n²·k) dominated by W·H and H·Hᵗ; Space O(n² + n·k).
//
// AI-Hints:
//   - Shrink MaxIter in tests to pin intermediate iterates (one-step traces).
//   - Keep H0 strictly positive (InitH) to avoid the NaN fixed points.
func Factorize(W, H0 matrix.Matrix, opts Options) (*matrix.Dense, error) {
	// Stage 1 (Validate): options first — cheapest check, clearest failure.
	if err := validateOptions(opts); err != nil {
		return nil, factorErrorf(opFactorize, err)
	}
	if err := matrix.ValidateSquare(W); err != nil {
		return nil, factorErrorf(opFactorize, err)
	}
	if err := matrix.ValidateNotNil(H0); err != nil {
		return nil, factorErrorf(opFactorize, err)
	}
	if W.Rows() != H0.Rows() {
		return nil, factorErrorf(opFactorize, matrix.ErrDimensionMismatch)
	}

	// Stage 2 (Prepare): private working copy of H0 + one snapshot buffer.
	n, k := H0.Rows(), H0.Cols()
	H, err := matrix.NewDense(n, k)
	if err != nil {
		return nil, factorErrorf(opFactorize, err)
	}
	if err = matrix.CopyInto(H, H0); err != nil {
		return nil, factorErrorf(opFactorize, err)
	}
	Hprev, err := matrix.ZerosLike(H)
	if err != nil {
		return nil, factorErrorf(opFactorize, err)
	}

	// Stage 3 (Iterate): snapshot → update → convergence check.
	var delta float64
	for iter := 0; iter < opts.MaxIter; iter++ {
		if err = matrix.CopyInto(Hprev, H); err != nil {
			return nil, factorErrorf(opFactorize, err)
		}
		if err = updateStep(W, H, opts.Beta); err != nil {
			return nil, factorErrorf(opFactorize, err)
		}
		delta, err = matrix.FrobeniusDelta(H, Hprev)
		if err != nil {
			return nil, factorErrorf(opFactorize, err)
		}
		if delta < opts.Epsilon {
			break // converged; exhausting MaxIter is equally fine
		}
	}

	return H, nil
}

// updateStep applies one multiplicative update to H in place:
//
//	WH   = W·H        (n×k)
//	HHt  = H·Hᵗ       (n×n)
//	HHtH = HHt·H      (n×k)
//	H[i][j] *= (1−β) + β·WH[i][j]/HHtH[i][j]
//
// The three products are function-local temporaries. H is mutated only
// after every product succeeded, so no partial update escapes on failure.
//
// Errors: kernel failures wrapped with the updateStep tag.
// Complexity: Time O(n²·k + n·k²), Space O(n² + n·k).
func updateStep(W matrix.Matrix, H *matrix.Dense, beta float64) error {
	WH, err := matrix.Mul(W, H)
	if err != nil {
		return factorErrorf(opUpdate, err)
	}
	Ht, err := matrix.Transpose(H)
	if err != nil {
		return factorErrorf(opUpdate, err)
	}
	HHt, err := matrix.Mul(H, Ht)
	if err != nil {
		return factorErrorf(opUpdate, err)
	}
	HHtH, err := matrix.Mul(HHt, H)
	if err != nil {
		return factorErrorf(opUpdate, err)
	}

	// Elementwise rescale over the flat backing slices (same shape n×k).
	// Unguarded division: HHtH[i][j]==0 propagates NaN/Inf by contract.
	h := H.RawData()
	wh := WH.RawData()
	hhth := HHtH.RawData()
	oneMinusBeta := 1.0 - beta
	for idx := range h {
		h[idx] *= oneMinusBeta + beta*(wh[idx]/hhth[idx])
	}

	return nil
}
