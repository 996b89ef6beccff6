// Package matrix offers the dense float64 primitives behind the symNMF
// pipeline.
//
// The matrix package provides:
//
//   - Dense, a row-major flat-storage matrix with a minimal Matrix interface
//     on top, plus ingestion from [][]float64 host structures.
//   - Kernels Mul, Transpose, FrobeniusDelta, CopyInto with deterministic
//     loop orders, single-allocation results and a strict failure contract.
//   - Scalar folds Sum and Mean used by the factorization initializer.
//
// Dense storage is best for the small-to-medium, fully dense matrices this
// pipeline works with, where O(n²) memory is acceptable.
//
// See the examples in this package, simgraph and factor for usage patterns.
package matrix
