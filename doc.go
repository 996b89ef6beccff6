// Package symnmf is an in-memory toolkit for Symmetric Non-negative Matrix
// Factorization (symNMF) of similarity graphs, usable as a clustering
// primitive for dense point sets.
//
// 🚀 What is symNMF?
//
//	Given n points in R^d, the pipeline builds a Gaussian-kernel similarity
//	matrix A, degree-normalizes it into W = D^{-1/2}·A·D^{-1/2}, and factors
//	W ≈ H·Hᵗ with H entrywise non-negative via a fixed-point multiplicative
//	update. Rows of H act as soft cluster memberships.
//
// ✨ Why choose this library?
//
//   - Deterministic numerics – fixed loop orders, reproducible results
//   - Strict failure contract – sentinel errors, no partial results
//   - Pure Go kernels – flat row-major storage, no cgo
//   - Small surface – four operations, one options struct
//
// Everything is organized under four subpackages plus a CLI:
//
//	matrix/    — dense float64 primitives: multiply, transpose, Frobenius delta
//	simgraph/  — similarity, degree and normalized-similarity construction
//	factor/    — the iterative factorization engine and H initialization
//	pointset/  — CSV ingestion and fixed-point output formatting
//	cmd/symnmf — command-line driver with goals sym | ddg | norm | symnmf
//
// Control flow:
//
//	points → Similarity → (Degree | Normalized) → Factorize → H
//
// Each stage is a pure function of its inputs; no state survives a call.
//
//	go get github.com/katalvlaran/symnmf
package symnmf
