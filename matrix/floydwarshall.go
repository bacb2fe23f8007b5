// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense APSP (Floyd–Warshall) with deterministic loop order, in-place,
//     O(n³) time, O(1) extra space.
//
// Contract:
//   - Square matrix; +Inf means “no path”; diagonal must be 0 before calling.
//   - Negative weights are allowed. After the closure a negative diagonal
//     entry marks a vertex that lies on a negative cycle.

package matrix

import "math"

const opFloydWarshall = "FloydWarshall"

// floydWarshallInPlace runs the APSP closure on a square *Dense in-place.
// Loop order is fixed (k → i → j) for deterministic accumulation.
func floydWarshallInPlace(d *Dense) {
	n := d.r
	data := d.data

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) { // i cannot reach k
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] { // strict improvement only
					data[baseI+j] = cand
				}
			}
		}
	}
}

// FloydWarshall computes all-pairs shortest paths in-place on m.
//
// Contract:
//   - m must be square (n×n).
//   - +Inf denotes “no edge” off-diagonal; the diagonal MUST be 0.
//
// Complexity: Time O(n^3), extra space O(1).
func FloydWarshall(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opFloydWarshall, err)
	}

	// Fast path over the flat buffer.
	if d, ok := m.(*Dense); ok {
		floydWarshallInPlace(d)

		return nil
	}

	n := m.Rows()
	var (
		k, i, j       int
		dik, dkj, dij float64
		err           error
	)
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			if dik, err = m.At(i, k); err != nil {
				return matrixErrorf(opFloydWarshall, err)
			}
			if math.IsInf(dik, 1) {
				continue
			}
			for j = 0; j < n; j++ {
				if dkj, err = m.At(k, j); err != nil {
					return matrixErrorf(opFloydWarshall, err)
				}
				if math.IsInf(dkj, 1) {
					continue
				}
				if dij, err = m.At(i, j); err != nil {
					return matrixErrorf(opFloydWarshall, err)
				}
				if dik+dkj < dij {
					if err = m.Set(i, j, dik+dkj); err != nil {
						return matrixErrorf(opFloydWarshall, err)
					}
				}
			}
		}
	}

	return nil
}

// HasNegativeCycle reports whether a closed matrix (already passed through
// FloydWarshall) has any negative diagonal entry.
// Complexity: O(n).
func HasNegativeCycle(m Matrix) (bool, error) {
	if err := ValidateSquare(m); err != nil {
		return false, matrixErrorf("HasNegativeCycle", err)
	}
	for i := 0; i < m.Rows(); i++ {
		v, err := m.At(i, i)
		if err != nil {
			return false, matrixErrorf("HasNegativeCycle", err)
		}
		if v < 0 {
			return true, nil
		}
	}

	return false, nil
}
