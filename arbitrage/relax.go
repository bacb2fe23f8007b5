// SPDX-License-Identifier: MIT

package arbitrage

import "math"

// runner holds the mutable state for a single detection run.
// It is never shared between calls.
type runner struct {
	n       int         // number of currencies
	rates   [][]float64 // validated input; read-only
	weights [][]float64 // row views over the weight matrix; read-only
	dist    []float64   // best known weight from Source; +Inf if unreached
	pred    []int       // last improving predecessor or NoPredecessor
	options Options     // hooks
}

// newRunner allocates the per-run state and seeds the source.
func newRunner(rates [][]float64, cfg Options) *runner {
	n := len(rates)
	wm := toWeights(rates)

	r := &runner{
		n:       n,
		rates:   rates,
		weights: make([][]float64, n),
		dist:    make([]float64, n),
		pred:    make([]int, n),
		options: cfg,
	}
	for i := 0; i < n; i++ {
		r.weights[i] = wm.RowView(i)
		r.dist[i] = math.Inf(1)
		r.pred[i] = NoPredecessor
	}
	r.dist[Source] = 0

	return r
}

// improvable reports whether going through u lowers the distance to v,
// returning the candidate distance. An unreached u never improves anything.
func (r *runner) improvable(u, v int) (float64, bool) {
	if math.IsInf(r.dist[u], 1) {
		return 0, false
	}
	cand := r.dist[u] + r.weights[u][v]

	return cand, cand < r.dist[v]
}

// relaxRounds runs exactly n−1 Bellman–Ford rounds.
//
// Pairs are scanned u ascending then v ascending, skipping u == v. Updates
// are applied in place, so later pairs in the same round already see them.
// There is no early exit: a round without improvements still counts.
func (r *runner) relaxRounds() {
	var (
		k, u, v int
		cand    float64
		ok      bool
	)
	for k = 1; k < r.n; k++ {
		for u = 0; u < r.n; u++ {
			for v = 0; v < r.n; v++ {
				if u == v {
					continue
				}
				if cand, ok = r.improvable(u, v); ok {
					r.dist[v] = cand
					r.pred[v] = u
				}
			}
		}
		if r.options.OnRound != nil {
			r.options.OnRound(k, r.snapshot())
		}
	}
}

// snapshot copies the distance vector.
func (r *runner) snapshot() []float64 {
	out := make([]float64, r.n)
	copy(out, r.dist)

	return out
}
