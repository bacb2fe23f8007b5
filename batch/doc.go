// SPDX-License-Identifier: MIT

// Package batch evaluates many independent rate sheets concurrently.
//
// Each sheet is an independent, side-effect-free arbitrage.Detect call, so
// sheets fan out over a bounded number of worker goroutines with nothing
// shared between them except a read-mostly result cache.
//
// Caching:
//
//   - Results are memoised in an LRU keyed by an xxhash fingerprint of the
//     matrix (size plus the IEEE-754 bits of every rate).
//   - A cached entry keeps its own copy of the matrix and a hit is only
//     accepted when the matrices are identical, so fingerprint collisions
//     can never return a wrong answer.
//   - Every Outcome carries its own copy of the result, so callers may
//     modify it without affecting the cache.
//
// Failure policy:
//
//   - A sheet rejected by validation is reported in its Outcome.Err and the
//     rest of the batch carries on.
//   - Only cancellation of the context aborts Evaluate.
package batch
