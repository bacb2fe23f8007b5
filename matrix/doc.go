// SPDX-License-Identifier: MIT

// Package matrix provides the dense square matrices that carry exchange
// rates and edge weights through fxarb.
//
// The package offers:
//
//   - Dense, a row-major float64 matrix implementing the Matrix interface
//     with bounds-checked At/Set and a deep Clone.
//   - Validators (ValidateNotNil, ValidateSquare, ValidateFinite) that return
//     plain sentinels so call sites can wrap them uniformly.
//   - FloydWarshall, an in-place all-pairs shortest-path closure used as the
//     brute-force reference for single-source relaxation results.
//
// Matrices are dense by design: currency universes are small and every
// ordered pair of currencies carries a rate, so O(n²) storage is the natural
// representation.
//
// Errors (sentinel):
//
//   - ErrInvalidDimensions if a requested dimension is non-positive.
//   - ErrOutOfRange        if an index falls outside the matrix.
//   - ErrNonSquare         if a square matrix was required.
//   - ErrRaggedRows        if [][]float64 input rows differ in length.
//   - ErrNaNInf            if a NaN or ±Inf value appears where finite values are required.
//   - ErrNilMatrix         if a nil Matrix is passed.
package matrix
