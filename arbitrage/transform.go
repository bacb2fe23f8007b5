// SPDX-License-Identifier: MIT

package arbitrage

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fxarb/matrix"
)

// Validate checks that rates is an n×n matrix whose off-diagonal entries are
// strictly positive and finite. Diagonal entries are not inspected.
//
// Validation order: ErrDegenerateSize → ErrDimensionMismatch → ErrInvalidRate,
// the latter reporting the first offending entry in row-major order.
// Complexity: O(n²).
func Validate(n int, rates [][]float64) error {
	if n <= 0 {
		return fmt.Errorf("%w: n=%d", ErrDegenerateSize, n)
	}
	if len(rates) != n {
		return fmt.Errorf("%w: %d rows, want %d", ErrDimensionMismatch, len(rates), n)
	}
	for i, row := range rates {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrDimensionMismatch, i, len(row), n)
		}
	}

	var (
		i, j int
		r    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			r = rates[i][j]
			if !(r > 0) || math.IsInf(r, 1) { // !(r > 0) also catches NaN
				return fmt.Errorf("%w: rate[%d][%d]=%g", ErrInvalidRate, i, j, r)
			}
		}
	}

	return nil
}

// Weights validates rates and returns the additive weight graph:
// w(i,j) = -ln r(i,j) for i ≠ j and 0 on the diagonal.
//
// A cycle whose rate product exceeds 1 has negative total weight, which is
// what lets shortest-path relaxation find arbitrage.
// Complexity: O(n²).
func Weights(rates [][]float64) (*matrix.Dense, error) {
	if err := Validate(len(rates), rates); err != nil {
		return nil, err
	}

	return toWeights(rates), nil
}

// toWeights performs the transform on already-validated input.
func toWeights(rates [][]float64) *matrix.Dense {
	n := len(rates)
	w, _ := matrix.NewDense(n, n) // n ≥ 1 after validation

	var i, j int
	var row []float64
	for i = 0; i < n; i++ {
		row = w.RowView(i)
		for j = 0; j < n; j++ {
			if i == j {
				row[j] = 0 // staying in the same currency costs nothing
				continue
			}
			row[j] = -math.Log(rates[i][j])
		}
	}

	return w
}
