// Package fxarb finds currency-arbitrage opportunities: sequences of
// conversions that turn one unit of a currency into more than one unit of
// the same currency.
//
// 🚀 How it works
//
//	An n×n exchange-rate matrix becomes a complete directed graph whose edge
//	u→v weighs −ln(rate[u][v]). A product of rates greater than 1 is then a
//	cycle with negative total weight, which Bellman–Ford detects:
//		• n−1 relaxation rounds from currency 0
//		• one confirmation pass to find an edge that still improves
//		• a predecessor walk that recovers the cycle and its profit
//
// Under the hood, everything is organized into small packages:
//
//	arbitrage/ — rate validation, −ln transform, Bellman–Ford, cycle recovery
//	matrix/    — dense float64 matrices, validators, Floyd–Warshall reference
//	builder/   — deterministic rate-matrix generators and cycle injection
//	ratesheet/ — YAML/JSON rate sheets with currency codes
//	report/    — text/JSON rendering and the per-round distance trace
//	batch/     — concurrent evaluation of many sheets with a result cache
//	metrics/   — prometheus counters and histograms, textfile export
//	cmd/fxarb  — the command-line tool (detect, batch, generate)
//
// Quick example (USD, EUR, GBP):
//
//	GBP → EUR → USD → GBP   1.4 × 1.1 × 0.8 = 1.232
//
// Starting with $1 you end with $1.232.
//
//	go install github.com/katalvlaran/fxarb/cmd/fxarb@latest
package fxarb
