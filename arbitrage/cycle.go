// SPDX-License-Identifier: MIT

package arbitrage

// findCycle performs the confirmation pass after the bounded rounds.
//
// It scans (u, v) in the same order as relaxRounds without relaxing. The
// first pair that still improves proves a negative cycle; the cycle is
// recovered from v's predecessor chain. A candidate whose chain runs into
// NoPredecessor before looping is skipped and the scan moves on.
//
// Returns (found, cycle). found may be true with a nil cycle when no
// candidate chain closes a loop.
func (r *runner) findCycle() (bool, []int) {
	found := false
	var u, v int
	for u = 0; u < r.n; u++ {
		for v = 0; v < r.n; v++ {
			if u == v {
				continue
			}
			if _, ok := r.improvable(u, v); !ok {
				continue
			}
			found = true
			if cycle := r.walkCycle(v); cycle != nil {
				return true, cycle
			}
		}
	}

	return found, nil
}

// walkCycle steps back n predecessors from v, which by pigeonhole lands on
// a node inside the predecessor loop, then collects the loop and returns it
// in forward conversion order, closed (first == last).
func (r *runner) walkCycle(v int) []int {
	cur := v
	for i := 0; i < r.n; i++ {
		cur = r.pred[cur]
		if cur == NoPredecessor {
			return nil
		}
	}
	start := cur

	// Collected backwards: start, pred(start), ..., start.
	cycle := make([]int, 0, r.n+1)
	cycle = append(cycle, start)
	for cur = r.pred[start]; cur != start; cur = r.pred[cur] {
		if cur == NoPredecessor || len(cycle) > r.n {
			return nil
		}
		cycle = append(cycle, cur)
	}
	cycle = append(cycle, start)

	for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
		cycle[i], cycle[j] = cycle[j], cycle[i]
	}

	return cycle
}

// Profit returns the amount obtained by converting one unit of cycle[0]
// through every consecutive pair of cycle: the product of
// rates[cycle[i]][cycle[i+1]]. A cycle of fewer than two entries yields 1.
//
// Profit does not validate its input; indices must be within rates.
func Profit(rates [][]float64, cycle []int) float64 {
	money := 1.0
	for i := 0; i+1 < len(cycle); i++ {
		money *= rates[cycle[i]][cycle[i+1]]
	}

	return money
}
