package arbitrage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Complete graphs of valid rates always give improvable pairs a closed
// predecessor chain, so these tests set the runner state by hand.

func TestFindCycle_BrokenChainIsSkipped(t *testing.T) {
	t.Parallel()

	r := newRunner([][]float64{{1, 0.9}, {1.1, 1}}, DefaultOptions())
	// 1 looks improvable from 0 but was never assigned a predecessor.
	r.dist = []float64{0, 5}
	r.pred = []int{NoPredecessor, NoPredecessor}

	found, cycle := r.findCycle()
	assert.True(t, found)
	assert.Nil(t, cycle)
}

func TestFindCycle_SkipsToNextCandidate(t *testing.T) {
	t.Parallel()

	rates := [][]float64{
		{1, 0.9, 0.9},
		{1.1, 1, 1.2},
		{1.1, 1.2, 1},
	}
	r := newRunner(rates, DefaultOptions())
	// (1,0) is the first improvable pair but 0 has no predecessor;
	// (1,2) then closes the loop 1 → 2 → 1.
	r.dist = []float64{0, 0, 0}
	r.pred = []int{NoPredecessor, 2, 1}

	found, cycle := r.findCycle()
	require.True(t, found)
	assert.Equal(t, []int{1, 2, 1}, cycle)
}

func TestWalkCycle_ChainWithoutLoop(t *testing.T) {
	t.Parallel()

	r := newRunner([][]float64{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}, DefaultOptions())
	r.pred = []int{NoPredecessor, 0, 1}
	assert.Nil(t, r.walkCycle(2))

	r.pred = []int{2, 0, 1}
	assert.Equal(t, []int{2, 0, 1, 2}, r.walkCycle(2)) // 2 → 0 → 1 → 2
}
