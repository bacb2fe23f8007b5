// SPDX-License-Identifier: MIT

// Package ratesheet reads and writes exchange-rate sheets: a square rate
// matrix plus optional currency codes used only to label output.
//
// Two encodings are supported, chosen by file extension or explicitly:
//
//	# YAML (.yaml, .yml)
//	name: majors
//	currencies: [USD, EUR, GBP]
//	rates:
//	  - [1.0, 0.9, 0.8]
//	  - [1.1, 1.0, 0.7]
//	  - [1.25, 1.4, 1.0]
//
//	// JSON (.json)
//	{"name":"majors","currencies":["USD","EUR","GBP"],"rates":[[1,0.9,0.8],[1.1,1,0.7],[1.25,1.4,1]]}
//
// Rates follow the arbitrage package convention: rates[i][j] is how many
// units of currency j one unit of currency i buys.
package ratesheet
