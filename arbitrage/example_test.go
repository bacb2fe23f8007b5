// Package arbitrage_test provides runnable examples for the arbitrage detector.
package arbitrage_test

import (
	"fmt"

	"github.com/katalvlaran/fxarb/arbitrage"
)

// ExampleDetect finds the GBP → EUR → USD → GBP loop in a USD/EUR/GBP matrix.
func ExampleDetect() {
	rates := [][]float64{
		{1.0, 0.9, 0.8},  // USD → USD, EUR, GBP
		{1.1, 1.0, 0.7},  // EUR → USD, EUR, GBP
		{1.25, 1.4, 1.0}, // GBP → USD, EUR, GBP
	}

	res, err := arbitrage.Detect(len(rates), rates)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("found=%v cycle=%v profit=%.3f\n", res.Found, res.Cycle, res.Profit)
	// Output: found=true cycle=[2 1 0 2] profit=1.232
}

// ExampleDetect_noArbitrage shows the exact round-trip boundary: 0.5 × 2 = 1.
func ExampleDetect_noArbitrage() {
	res, _ := arbitrage.Detect(2, [][]float64{
		{1, 0.5},
		{2, 1},
	})

	fmt.Println(res.Found, res.Cycle)
	// Output: false []
}

// ExampleWithRoundHook prints the distance vector after every relaxation round.
func ExampleWithRoundHook() {
	rates := [][]float64{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	}

	_, _ = arbitrage.Detect(3, rates, arbitrage.WithRoundHook(func(round int, d []float64) {
		fmt.Println(round, d)
	}))
	// Output:
	// 1 [0 0 0]
	// 2 [0 0 0]
}
