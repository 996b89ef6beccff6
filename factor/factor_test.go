package factor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symnmf/factor"
	"github.com/katalvlaran/symnmf/matrix"
	"github.com/katalvlaran/symnmf/simgraph"
)

// swapW is the 2×2 permutation target used by the hardcoded update traces.
func swapW(t *testing.T) *matrix.Dense {
	t.Helper()
	W, err := matrix.NewDenseFromRows([][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)

	return W
}

// oneStep is shorthand for Factorize with exactly one update iteration.
func oneStep(t *testing.T, W, H0 matrix.Matrix) *matrix.Dense {
	t.Helper()
	opts := factor.DefaultOptions()
	opts.MaxIter = 1
	H, err := factor.Factorize(W, H0, opts)
	require.NoError(t, err, "single-step factorization should succeed")

	return H
}

// TestFactorize_OneStepTraceIdentity pins the hand-computed one-step trace for
// W=[[0,1],[1,0]], H₀=I₂ with β=0.5:
//
//	WH = W, HHt = I, HHtH = I
//	H[0][0] = 1·(0.5 + 0.5·(WH[0][0]/HHtH[0][0])) = 0.5 + 0.5·(0/1) = 0.5
//
// The off-diagonal divides 1/0 → +Inf, and 0·Inf = NaN: the documented
// unguarded zero-denominator behavior, asserted here so a silent "fix"
// cannot slip in.
func TestFactorize_OneStepTraceIdentity(t *testing.T) {
	I, err := matrix.NewIdentity(2)
	require.NoError(t, err)

	H := oneStep(t, swapW(t), I)

	h00, _ := H.At(0, 0)
	assert.Equal(t, 0.5, h00, "H[0][0] must equal the hand trace exactly")
	h11, _ := H.At(1, 1)
	assert.Equal(t, 0.5, h11, "H[1][1] mirrors H[0][0] by symmetry")

	h01, _ := H.At(0, 1)
	assert.True(t, math.IsNaN(h01), "zero denominator must propagate NaN, not error")
	h10, _ := H.At(1, 0)
	assert.True(t, math.IsNaN(h10), "zero denominator must propagate NaN, not error")
}

// TestFactorize_OneStepTracePositive pins a fully positive hand trace:
// H₀ all ones → WH all 1, HHt all 2, HHtH all 4, so every entry becomes
// 1·(0.5 + 0.5·(1/4)) = 0.625, bit-exact in double precision.
func TestFactorize_OneStepTracePositive(t *testing.T) {
	H0, err := matrix.NewDenseFromRows([][]float64{{1, 1}, {1, 1}})
	require.NoError(t, err)

	H := oneStep(t, swapW(t), H0)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, _ := H.At(i, j)
			assert.Equal(t, 0.625, v, "every entry follows the hand trace at (%d,%d)", i, j)
		}
	}
}

// TestFactorize_InputNotMutated verifies the caller's H₀ survives untouched.
func TestFactorize_InputNotMutated(t *testing.T) {
	H0, err := matrix.NewDenseFromRows([][]float64{{1, 1}, {1, 1}})
	require.NoError(t, err)

	_ = oneStep(t, swapW(t), H0)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, _ := H0.At(i, j)
			assert.Equal(t, 1.0, v, "H0 must never be mutated, cell (%d,%d)", i, j)
		}
	}
}

// TestFactorize_ZeroIsFixedPoint verifies the multiplicative rule keeps an
// exactly-zero entry at zero for all subsequent iterations.
func TestFactorize_ZeroIsFixedPoint(t *testing.T) {
	H0, err := matrix.NewDenseFromRows([][]float64{{0, 1}, {1, 1}})
	require.NoError(t, err)

	opts := factor.DefaultOptions()
	opts.MaxIter = 25
	H, err := factor.Factorize(swapW(t), H0, opts)
	require.NoError(t, err)

	h00, _ := H.At(0, 0)
	assert.Equal(t, 0.0, h00, "a zero entry is a fixed point of the update")
}

// TestFactorize_Converges runs the full pipeline on a well-conditioned
// two-cluster dataset and checks normal termination with finite entries,
// then that one extra update from the returned H moves less than Epsilon.
func TestFactorize_Converges(t *testing.T) {
	pts, err := matrix.NewDenseFromRows([][]float64{
		{0.0, 0.0},
		{0.2, 0.1},
		{0.1, 0.3},
		{4.0, 4.0},
		{4.2, 3.9},
	})
	require.NoError(t, err)

	W, err := simgraph.Normalized(pts)
	require.NoError(t, err)
	H0, err := factor.InitH(W, 2, factor.DefaultSeed)
	require.NoError(t, err)

	H, err := factor.Factorize(W, H0, factor.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 5, H.Rows())
	require.Equal(t, 2, H.Cols())

	for idx, v := range H.RawData() {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0),
			"entry %d must stay finite on the well-conditioned path", idx)
		assert.GreaterOrEqual(t, v, 0.0, "entries stay non-negative under the update")
	}

	// One more update step must move the converged iterate by < Epsilon.
	opts := factor.DefaultOptions()
	opts.MaxIter = 1
	Hnext, err := factor.Factorize(W, H, opts)
	require.NoError(t, err)
	delta, err := matrix.FrobeniusDelta(Hnext, H)
	require.NoError(t, err)
	assert.Less(t, delta, factor.DefaultEpsilon,
		"converged H must be (near-)stationary under one more update")
}

// TestFactorize_Validation covers every rejection path: bad options,
// non-square W, nil H0 and row mismatch.
func TestFactorize_Validation(t *testing.T) {
	W := swapW(t)
	H0, err := matrix.NewDenseFromRows([][]float64{{1, 1}, {1, 1}})
	require.NoError(t, err)

	// Options domain.
	bad := factor.DefaultOptions()
	bad.MaxIter = 0
	_, err = factor.Factorize(W, H0, bad)
	assert.ErrorIs(t, err, factor.ErrBadOptions, "MaxIter < 1")

	bad = factor.DefaultOptions()
	bad.Epsilon = 0
	_, err = factor.Factorize(W, H0, bad)
	assert.ErrorIs(t, err, factor.ErrBadOptions, "Epsilon must be > 0")

	bad = factor.DefaultOptions()
	bad.Beta = 1.5
	_, err = factor.Factorize(W, H0, bad)
	assert.ErrorIs(t, err, factor.ErrBadOptions, "Beta must lie in (0,1]")

	// Structural validation.
	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = factor.Factorize(rect, H0, factor.DefaultOptions())
	assert.ErrorIs(t, err, matrix.ErrNonSquare, "W must be square")

	_, err = factor.Factorize(W, nil, factor.DefaultOptions())
	assert.ErrorIs(t, err, matrix.ErrNilMatrix, "H0 must be non-nil")

	tall, err := matrix.NewDense(3, 2)
	require.NoError(t, err)
	_, err = factor.Factorize(W, tall, factor.DefaultOptions())
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "W and H0 rows must match")
}

// TestInitH_Deterministic verifies equal (W, k, seed) triples produce
// identical matrices and different seeds diverge.
func TestInitH_Deterministic(t *testing.T) {
	W := swapW(t)

	H1, err := factor.InitH(W, 2, 42)
	require.NoError(t, err)
	H2, err := factor.InitH(W, 2, 42)
	require.NoError(t, err)
	assert.Equal(t, H1.RawData(), H2.RawData(), "same seed must reproduce H0 exactly")

	H3, err := factor.InitH(W, 2, 43)
	require.NoError(t, err)
	assert.NotEqual(t, H1.RawData(), H3.RawData(), "different seeds must diverge")
}

// TestInitH_RangeAndShape verifies entries land in [0, 2·sqrt(mean(W)/k))
// and the result has shape n×k.
func TestInitH_RangeAndShape(t *testing.T) {
	W := swapW(t) // mean = 2/4 = 0.5
	const k = 2
	bound := 2.0 * math.Sqrt(0.5/float64(k)) // = 1.0

	H, err := factor.InitH(W, k, factor.DefaultSeed)
	require.NoError(t, err)
	require.Equal(t, 2, H.Rows())
	require.Equal(t, k, H.Cols())

	for idx, v := range H.RawData() {
		assert.GreaterOrEqual(t, v, 0.0, "entry %d below range", idx)
		assert.Less(t, v, bound, "entry %d above range", idx)
	}
}

// TestInitH_Validation covers rank and shape rejection.
func TestInitH_Validation(t *testing.T) {
	W := swapW(t)

	_, err := factor.InitH(W, 0, factor.DefaultSeed)
	assert.ErrorIs(t, err, factor.ErrBadRank, "k < 1 must error")

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = factor.InitH(rect, 2, factor.DefaultSeed)
	assert.ErrorIs(t, err, matrix.ErrNonSquare, "W must be square")

	_, err = factor.InitH(nil, 2, factor.DefaultSeed)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix, "W must be non-nil")
}
