// SPDX-License-Identifier: MIT
// Package matrix: canonical linear-algebra kernels for the symNMF pipeline.
// All kernels perform strict fail-fast validation via the central validators,
// allocate the result exactly once, never mutate their inputs, and offer a
// *Dense flat-slice fast path next to a generic At/Set fallback.

package matrix

import "fmt"

// ZeroSum is the initial accumulator value for dot products and folds.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opFrobDelta = "FrobeniusDelta"
	opCopyInto  = "CopyInto"
	opSum       = "Sum"
	opMean      = "Mean"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is/As keep matching the package sentinels.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A, B (non-nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides;
//     otherwise use the generic i→j→k triple loop via At/Set.
//
// Behavior highlights:
//   - Deterministic loop orders; one allocation for C; inputs immutable.
//
// Inputs:
//   - a: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - *Dense: new C with shape (r × c), C[i,j] = Σ_k A[i,k]·B[k,j].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch),
//     ErrBadShape (degenerate dimensions surfaced by the constructor).
//
// Determinism:
//   - Fixed loop orders (i→k→j fast path, i→j→k fallback).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// AI-Hints:
//   - Keep operands as *Dense to unlock the flat row-major path.
func Mul(a, b Matrix) (*Dense, error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Dense
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k         int // loop iterators
		av, bv, current float64
	)
	// Fast path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// row-major multiplication into res.data
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple loop (i→j→k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv // accumulate product
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: If m is *Dense, use contiguous slice mapping; else generic
//     i→j loop via At/Set.
//
// Behavior highlights:
//   - One allocation for the result; the original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix, plus constructor/indexer errors wrapped with opTranspose.
//
// Determinism:
//   - Fixed traversal orders independent of data values.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Allocate result Dense with flipped dimensions
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Fast path for Dense → Dense
	var i, j int // loop iterators
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	// Fallback: generic interface loop
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return res, nil
}

// FrobeniusDelta returns Σ (a[i,j]−b[i,j])², the SQUARED Frobenius norm of
// the difference. The square root is intentionally not taken: the iterative
// factorization compares this literal quantity against its epsilon.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: Single flat accumulation for *Dense×*Dense; i→j At fallback.
//
// Behavior highlights:
//   - FrobeniusDelta(A, A) == 0 exactly, for any A.
//   - NaN/Inf entries propagate into the result (no numeric policy here).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Determinism:
//   - Fixed accumulation order 0..n-1 (flat) or i→j (fallback).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func FrobeniusDelta(a, b Matrix) (float64, error) {
	// Validate shapes match
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf(opFrobDelta, err)
	}

	rows, cols := a.Rows(), a.Cols()
	sum := ZeroSum
	var diff float64

	// Fast path: both operands are *Dense → single flat accumulation.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ { // deterministic 0..n-1
				diff = da.data[idx] - db.data[idx]
				sum += diff * diff
			}

			return sum, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return 0, matrixErrorf(opFrobDelta, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return 0, matrixErrorf(opFrobDelta, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			diff = av - bv
			sum += diff * diff
		}
	}

	return sum, nil
}

// CopyInto performs a deep element-wise copy of src into the pre-allocated
// dst of matching dimensions. No reallocation takes place; dst keeps its
// backing storage. This is the snapshot primitive of the iteration loop.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(dst, src).
//   - Stage 2: copy() on backing slices for *Dense×*Dense; i→j At/Set fallback.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func CopyInto(dst, src Matrix) error {
	// Validate shapes match
	if err := ValidateBinarySameShape(dst, src); err != nil {
		return matrixErrorf(opCopyInto, err)
	}

	// Fast path: both are *Dense → single bulk copy.
	if dd, okD := dst.(*Dense); okD {
		if ds, okS := src.(*Dense); okS {
			copy(dd.data, ds.data)

			return nil
		}
	}

	// Fallback: generic interface loop.
	rows, cols := src.Rows(), src.Cols()
	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = src.At(i, j)
			if err != nil {
				return matrixErrorf(opCopyInto, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = dst.Set(i, j, v); err != nil {
				return matrixErrorf(opCopyInto, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return nil
}

// Sum folds all elements of m into a single scalar Σ m[i,j].
//
// Deterministic flat accumulation for *Dense, i→j fallback otherwise.
// Errors: ErrNilMatrix. Complexity: Time O(r*c), Space O(1).
func Sum(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opSum, err)
	}

	total := ZeroSum
	if dm, ok := m.(*Dense); ok {
		for _, v := range dm.data { // flat slice walk, fixed order
			total += v
		}

		return total, nil
	}

	rows, cols := m.Rows(), m.Cols()
	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return 0, matrixErrorf(opSum, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			total += v
		}
	}

	return total, nil
}

// Mean returns the arithmetic mean of all elements, Sum(m)/(r*c).
// The shape validator guarantees r*c > 0, so the division is always defined.
// Errors: ErrNilMatrix. Complexity: Time O(r*c), Space O(1).
func Mean(m Matrix) (float64, error) {
	total, err := Sum(m)
	if err != nil {
		return 0, matrixErrorf(opMean, err)
	}

	return total / float64(m.Rows()*m.Cols()), nil
}
