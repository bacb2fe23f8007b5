// SPDX-License-Identifier: MIT

package builder

import "math"

const (
	methodConsistent  = "Consistent"
	methodRandom      = "Random"
	methodInjectCycle = "InjectCycle"
)

// Consistent returns the rate matrix implied by prices quoted in a common
// numeraire: rate[i][j] = prices[i] / prices[j], with 1 on the diagonal.
//
// Complexity: O(n²).
func Consistent(prices []float64) ([][]float64, error) {
	if len(prices) < 1 {
		return nil, wrapf(methodConsistent, "n=%d", ErrTooFewCurrencies, len(prices))
	}
	for i, p := range prices {
		if !validPositive(p) {
			return nil, wrapf(methodConsistent, "prices[%d]=%g", ErrBadPrice, i, p)
		}
	}

	return ratesFromPrices(prices, 0), nil
}

// Random returns an n×n rate matrix built from prices drawn uniformly from
// the configured price range, with every off-diagonal rate scaled by
// (1 − spread).
//
// Complexity: O(n²).
func Random(n int, opts ...Option) ([][]float64, error) {
	if n < 1 {
		return nil, wrapf(methodRandom, "n=%d", ErrTooFewCurrencies, n)
	}
	cfg := newConfig(opts...)

	prices := make([]float64, n)
	for i := range prices {
		prices[i] = cfg.minPrice + cfg.rng.Float64()*(cfg.maxPrice-cfg.minPrice)
	}

	return ratesFromPrices(prices, cfg.spread), nil
}

// InjectCycle returns a copy of rates in which every rate along cycle is
// multiplied by the same factor, chosen so that the cycle's rate product
// equals gain. cycle must be closed (first == last) and visit at least two
// distinct currencies without repeating any.
//
// rates itself is not modified. Complexity: O(n²) for the copy.
func InjectCycle(rates [][]float64, cycle []int, gain float64) ([][]float64, error) {
	if !validPositive(gain) {
		return nil, wrapf(methodInjectCycle, "gain=%g", ErrBadGain, gain)
	}
	n := len(rates)
	if n < 2 {
		return nil, wrapf(methodInjectCycle, "n=%d", ErrTooFewCurrencies, n)
	}
	if err := checkCycle(n, cycle); err != nil {
		return nil, wrapf(methodInjectCycle, "cycle=%v", err, cycle)
	}
	for _, c := range cycle {
		if len(rates[c]) != n {
			return nil, wrapf(methodInjectCycle, "row %d has %d columns", ErrBadCycle, c, len(rates[c]))
		}
	}

	out := make([][]float64, n)
	for i := range rates {
		out[i] = append([]float64(nil), rates[i]...)
	}

	edges := len(cycle) - 1
	product := 1.0
	for i := 0; i < edges; i++ {
		product *= out[cycle[i]][cycle[i+1]]
	}
	if !validPositive(product) {
		return nil, wrapf(methodInjectCycle, "current product=%g", ErrBadCycle, product)
	}

	factor := math.Pow(gain/product, 1/float64(edges))
	for i := 0; i < edges; i++ {
		out[cycle[i]][cycle[i+1]] *= factor
	}

	return out, nil
}

// ratesFromPrices builds rate[i][j] = prices[i]/prices[j] * (1 − spread).
func ratesFromPrices(prices []float64, spread float64) [][]float64 {
	n := len(prices)
	keep := 1 - spread
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if i == j {
				out[i][j] = 1
				continue
			}
			out[i][j] = prices[i] / prices[j] * keep
		}
	}

	return out
}

// checkCycle validates a closed simple cycle over n currencies.
func checkCycle(n int, cycle []int) error {
	if len(cycle) < 3 || cycle[0] != cycle[len(cycle)-1] {
		return ErrBadCycle
	}
	seen := make(map[int]bool, len(cycle))
	for _, c := range cycle[:len(cycle)-1] {
		if c < 0 || c >= n || seen[c] {
			return ErrBadCycle
		}
		seen[c] = true
	}

	return nil
}

// validPositive reports whether v is a positive finite number.
func validPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
