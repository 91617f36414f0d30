// SPDX-License-Identifier: MIT

// Package matrix provides the small dense linear-algebra kernel used by the
// conic tooling: stacked constraint matrices (model.Stack), simplex tableaus
// and the algebraic checks in tests.
//
// What & Why:
//
//	Dense is a row-major float64 buffer with bounds-checked accessors that
//	return errors instead of panicking. Kernels (Transpose, MatVec, Mul)
//	use fixed loop orders so results are bit-for-bit reproducible.
//
// Complexity:
//
//	At/Set: O(1). Clone, Transpose: O(r·c). MatVec: O(r·c). Mul: O(r·n·c).
package matrix
