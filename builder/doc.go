// SPDX-License-Identifier: MIT

// Package builder generates exchange-rate matrices for tests, benchmarks and
// the `fxarb generate` command.
//
// Constructors:
//
//   - Consistent(prices): rate[i][j] = prices[i] / prices[j]. Every cycle has a
//     rate product of 1 up to floating-point rounding, so it is the
//     arbitrage-free baseline.
//   - Random(n, opts...): seeded random prices with every off-diagonal rate
//     scaled by (1 − spread). With spread > 0 every cycle loses money, which
//     keeps floating-point noise from faking an opportunity.
//   - InjectCycle(rates, cycle, gain): a copy of rates in which the rates along
//     one closed cycle are rescaled so that their product equals gain.
//
// Determinism:
//
//   - Randomness flows only through the *rand.Rand configured with WithSeed or
//     WithRand. The default seed is fixed, so Random(n) is reproducible.
//   - *rand.Rand is not goroutine-safe; do not share one across goroutines.
//
// Errors (sentinel):
//
//   - ErrTooFewCurrencies if n < 1.
//   - ErrBadPrice         if a price is not positive and finite.
//   - ErrBadCycle         if a cycle is not closed, too short, repeats a
//     currency, or indexes outside the matrix.
//   - ErrBadGain          if the target gain is not positive and finite.
//
// Option constructors panic on meaningless values (negative spread, empty
// price range); constructors themselves never panic.
package builder
