// Package factor implements the symNMF factorization engine: given a
// symmetric target matrix W (n×n) and an initial non-negative H₀ (n×k), it
// iterates the multiplicative update
//
//	H[i][j] ← H[i][j] · ((1−β) + β · (W·H)[i][j] / (H·Hᵗ·H)[i][j])
//
// until the squared Frobenius delta between consecutive iterates drops below
// Epsilon or MaxIter iterations have run. Both exits are normal termination.
//
// ✨ Key properties:
//   - fixed point at zero: an entry that reaches exactly 0 stays 0 forever
//   - the caller's H₀ is never mutated; a fresh working copy is returned
//   - MaxIter, Epsilon and β are Options fields with documented defaults
//     (300, 1e-4, 0.5), so tests can run with tiny iteration caps
//
// Numeric policy: a zero denominator (H·Hᵗ·H)[i][j], e.g. a fully zeroed
// column of H, divides unguarded and propagates NaN/Inf through subsequent
// iterations. Choose H₀ with strictly positive entries (see InitH) to stay
// on the well-behaved path.
//
// ⚙️ Usage:
//
//	W, _ := simgraph.Normalized(points)
//	H0, _ := factor.InitH(W, k, factor.DefaultSeed)
//	H, err := factor.Factorize(W, H0, factor.DefaultOptions())
//
// Complexity: O(MaxIter · n²·k) time, O(n² + n·k) transient memory.
package factor
