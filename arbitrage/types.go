// SPDX-License-Identifier: MIT

package arbitrage

import "errors"

// Sentinel errors returned by the arbitrage detector.
var (
	// ErrDegenerateSize indicates a currency count n ≤ 0.
	ErrDegenerateSize = errors.New("arbitrage: currency count must be positive")

	// ErrDimensionMismatch indicates that the rate matrix is not n×n.
	ErrDimensionMismatch = errors.New("arbitrage: rate matrix is not n×n")

	// ErrInvalidRate indicates an off-diagonal rate that is zero, negative,
	// NaN or infinite; its logarithm would not be a finite weight.
	ErrInvalidRate = errors.New("arbitrage: rate must be positive and finite")

	// ErrNilMatrix indicates that DetectMatrix received a nil matrix.
	ErrNilMatrix = errors.New("arbitrage: rate matrix is nil")
)

// Source is the fixed currency index all distances are measured from.
const Source = 0

// NoPredecessor marks a currency whose distance was never improved.
const NoPredecessor = -1

// Result is the outcome of one detection run.
//
// Found reports whether a negative cycle was proven. When it is, Cycle holds
// the currencies in conversion order with Cycle[0] == Cycle[len(Cycle)-1],
// and Profit is the amount obtained by converting one unit of Cycle[0] along
// the cycle. When Found is false, Cycle is nil and Profit is 0.
//
// Distances and Predecessors are the relaxation state after the n−1 bounded
// rounds, before the confirmation pass. Distances[v] is +Inf for unreached v.
type Result struct {
	Found        bool
	Cycle        []int
	Profit       float64
	Distances    []float64
	Predecessors []int
}

// RoundHook observes the distance vector after each relaxation round.
// round is 1-based; distances is a copy the hook may keep.
type RoundHook func(round int, distances []float64)

// Options configures a detection run.
type Options struct {
	// OnRound, if set, is called after every relaxation round.
	OnRound RoundHook
}

// Option represents a functional option for configuring Detect.
type Option func(*Options)

// WithRoundHook registers a per-round observer of the distance vector.
// Panics on nil to surface programmer error early.
func WithRoundHook(fn RoundHook) Option {
	if fn == nil {
		panic("arbitrage: WithRoundHook(nil)")
	}
	return func(o *Options) {
		o.OnRound = fn
	}
}

// DefaultOptions returns an Options value with no hooks.
func DefaultOptions() Options {
	return Options{}
}
