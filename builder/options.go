// SPDX-License-Identifier: MIT
// Package: fxarb/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// Defaults used when no option overrides them.
const (
	defaultSeed     int64   = 1
	defaultSpread   float64 = 0.001
	defaultMinPrice float64 = 0.5
	defaultMaxPrice float64 = 2.0
)

// config is the resolved set of generator parameters.
type config struct {
	rng      *rand.Rand
	spread   float64
	minPrice float64
	maxPrice float64
}

// Option customizes a generator.
type Option func(*config)

// newConfig resolves defaults then applies opts in order.
func newConfig(opts ...Option) config {
	cfg := config{
		rng:      rand.New(rand.NewSource(defaultSeed)),
		spread:   defaultSpread,
		minPrice: defaultMinPrice,
		maxPrice: defaultMaxPrice,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed uses a fresh *rand.Rand seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSpread sets the fraction lost on every conversion, in [0, 1).
// Zero yields a consistent matrix (subject to rounding). Panics outside [0, 1).
func WithSpread(spread float64) Option {
	if !(spread >= 0 && spread < 1) {
		panic("builder: WithSpread(spread outside [0,1))")
	}
	return func(c *config) {
		c.spread = spread
	}
}

// WithPriceRange sets the interval random prices are drawn from.
// Panics unless 0 < lo < hi.
func WithPriceRange(lo, hi float64) Option {
	if !(lo > 0 && hi > lo) {
		panic("builder: WithPriceRange(lo,hi) requires 0 < lo < hi")
	}
	return func(c *config) {
		c.minPrice, c.maxPrice = lo, hi
	}
}
