// SPDX-License-Identifier: MIT

// Package arbitrage detects currency-arbitrage cycles in a matrix of pairwise
// exchange rates using Bellman–Ford relaxation.
//
// Overview:
//
//   - A rate r(i,j) says how many units of currency j one unit of currency i buys.
//     A cycle whose rate product exceeds 1.0 is an arbitrage opportunity.
//   - Taking w(i,j) = -ln r(i,j) turns products into sums: a profitable cycle in
//     the rate graph is exactly a negative cycle in the weight graph.
//   - Detect runs three stages in strict sequence:
//     1. Transform: rates → weights (Weights).
//     2. Relaxation: exactly n−1 in-place Bellman–Ford rounds from currency 0.
//     3. Extraction: one confirmation pass; the first still-improvable pair
//     (u,v) proves a negative cycle, which is recovered by walking
//     predecessors from v and valued by multiplying rates along it (Profit).
//
// Policy:
//
//   - Single source. Distances are measured from currency index 0 only.
//   - First found. Pairs are scanned in ascending (u, v) order and the first
//     cycle reached under that order is reported, not the most profitable one.
//   - No tolerance. Comparisons are strict and no epsilon is applied, so an
//     exactly reciprocal pair of rates is not reported as arbitrage.
//   - Unreached distances are +Inf and are never used as a relaxation source.
//
// Complexity:
//
//   - Time:  O(n³) for n−1 rounds over n² pairs, plus O(n²) confirmation and O(n) walk.
//   - Space: O(n²) for the weight matrix, O(n) for distances and predecessors.
//
// Errors (sentinel):
//
//   - ErrDegenerateSize    if n ≤ 0.
//   - ErrDimensionMismatch if the rate matrix is not n×n.
//   - ErrInvalidRate       if an off-diagonal rate is zero, negative, NaN or ±Inf.
//   - ErrNilMatrix         if DetectMatrix receives a nil matrix.
//
// Thread safety:
//
//   - Detect owns all of its state; concurrent calls on the same read-only
//     input are safe. Round hooks run synchronously on the calling goroutine.
//
// Example:
//
//	res, err := arbitrage.Detect(3, [][]float64{
//	    {1.0, 0.9, 0.8},
//	    {1.1, 1.0, 0.7},
//	    {1.25, 1.4, 1.0},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Found, res.Cycle) // true [2 1 0 2]
package arbitrage
