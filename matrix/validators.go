// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - A single source of truth for the shape and value checks shared by
//     the rate pipeline and the shortest-path helpers.
//   - Validators return sentinels tagged with the validator name; callers
//     branch with errors.Is.
//
// All checks are pure, deterministic and allocate nothing on success.

package matrix

import (
	"fmt"
	"math"
)

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return matrixErrorf("ValidateNotNil", ErrNilMatrix)
	}
	// A typed nil *Dense inside the interface is just as unusable.
	if d, ok := m.(*Dense); ok && d == nil {
		return matrixErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return fmt.Errorf("ValidateSquare: %dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare)
	}

	return nil
}

// ValidateFinite rejects any NaN or ±Inf entry, reporting the first offending
// position in row-major order.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf("ValidateFinite", err)
	}
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return matrixErrorf("ValidateFinite", err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("ValidateFinite: (%d,%d)=%g: %w", i, j, v, ErrNaNInf)
			}
		}
	}

	return nil
}
