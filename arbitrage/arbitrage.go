// SPDX-License-Identifier: MIT

package arbitrage

import (
	"fmt"

	"github.com/katalvlaran/fxarb/matrix"
)

// Detect looks for an arbitrage cycle among n currencies.
//
// rates[i][j] is how many units of currency j one unit of currency i buys.
// The matrix is validated once, before any allocation beyond the check
// itself; an invalid matrix yields (nil, err) and no partial result.
//
// Preconditions and validation (in order):
//  1. n > 0 (ErrDegenerateSize).
//  2. rates is n×n (ErrDimensionMismatch).
//  3. Every off-diagonal rate is positive and finite (ErrInvalidRate).
//
// Detect does not retain or mutate rates. Running it twice on the same
// input yields identical results.
//
// Complexity:
//
//   - Time:  O(n³)
//   - Space: O(n²)
func Detect(n int, rates [][]float64, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := Validate(n, rates); err != nil {
		return nil, err
	}

	r := newRunner(rates, cfg)
	r.relaxRounds()

	res := &Result{
		Distances:    r.snapshot(),
		Predecessors: append([]int(nil), r.pred...),
	}
	res.Found, res.Cycle = r.findCycle()
	if res.Cycle != nil {
		res.Profit = Profit(rates, res.Cycle)
	}

	return res, nil
}

// DetectMatrix runs Detect on any square matrix.Matrix.
// A nil matrix yields ErrNilMatrix, a non-square one ErrDimensionMismatch.
func DetectMatrix(m matrix.Matrix, opts ...Option) (*Result, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNilMatrix, err)
	}
	if m.Rows() != m.Cols() {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensionMismatch, m.Rows(), m.Cols())
	}

	rates, err := rowsOf(m)
	if err != nil {
		return nil, err
	}

	return Detect(m.Rows(), rates, opts...)
}

// ReferenceDistances computes single-source distances from Source by
// running Floyd–Warshall over the weight graph. It is the brute-force
// counterpart of the bounded relaxation and agrees with Result.Distances
// whenever no negative cycle exists.
//
// Complexity: O(n³).
func ReferenceDistances(rates [][]float64) ([]float64, error) {
	w, err := Closure(rates)
	if err != nil {
		return nil, err
	}

	return append([]float64(nil), w.RowView(Source)...), nil
}

// Closure validates rates and returns the all-pairs shortest weights of the
// weight graph. A negative diagonal entry means some arbitrage cycle exists;
// see matrix.HasNegativeCycle.
//
// Complexity: O(n³).
func Closure(rates [][]float64) (*matrix.Dense, error) {
	w, err := Weights(rates)
	if err != nil {
		return nil, err
	}
	if err = matrix.FloydWarshall(w); err != nil {
		return nil, fmt.Errorf("arbitrage: closure: %w", err)
	}

	return w, nil
}

// rowsOf copies m into [][]float64, using the Dense fast path when possible.
func rowsOf(m matrix.Matrix) ([][]float64, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d.ToRows(), nil
	}
	n := m.Rows()
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("arbitrage: read (%d,%d): %w", i, j, err)
			}
			out[i][j] = v
		}
	}

	return out, nil
}
