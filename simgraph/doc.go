// Package simgraph builds the similarity-graph matrices the symNMF pipeline
// factorizes: the Gaussian-kernel similarity matrix A, the diagonal degree
// matrix D, and the degree-normalized similarity W = D^{-1/2}·A·D^{-1/2}.
//
// 🚀 What does simgraph compute?
//
//	For n points in R^d (an n×d matrix, one point per row):
//	  • Similarity:  A[i][j] = exp(−‖xi−xj‖²/2) for i≠j, A[i][i] = 0
//	  • Degree:      D[i][i] = Σ_j A[i][j], zero off-diagonal
//	  • Normalized:  W[i][j] = A[i][j] / sqrt(deg[i]·deg[j])
//
// ✨ Key properties:
//   - A and W are symmetric with zero diagonal; A entries lie in (0, 1]
//   - deterministic double loops — bit-identical to the naive formulation
//   - every operation is a pure function: inputs are never mutated, each
//     call returns a freshly allocated result
//
// Numeric policy: zero denominators in Normalized (possible only when a row
// has zero total affinity, e.g. a single-point input) are NOT guarded; the
// division produces NaN/Inf that propagates downstream. This propagation is
// part of the published semantics, not an error condition.
//
// Complexity: Similarity dominates at O(n²·d) time, O(n²) memory.
package simgraph
