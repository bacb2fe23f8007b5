package arbitrage_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/fxarb/arbitrage"
	"github.com/katalvlaran/fxarb/builder"
)

// BenchmarkDetect measures a full run (transform, n−1 rounds, confirmation)
// on arbitrage-free matrices, the worst case for the confirmation pass.
//
// Complexity: O(n³) per iteration.
func BenchmarkDetect(b *testing.B) {
	for _, n := range []int{8, 32, 128} {
		rates, err := builder.Random(n, builder.WithSeed(1), builder.WithSpread(0.01))
		if err != nil {
			b.Fatal(err)
		}
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = arbitrage.Detect(n, rates)
			}
		})
	}
}

// BenchmarkDetect_WithCycle measures a run that ends in cycle extraction.
func BenchmarkDetect_WithCycle(b *testing.B) {
	const n = 32
	base, _ := builder.Random(n, builder.WithSeed(2))
	rates, err := builder.InjectCycle(base, []int{5, 17, 9, 5}, 1.02)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = arbitrage.Detect(n, rates)
	}
}
