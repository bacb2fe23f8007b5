package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fxarb/matrix"
)

var inf = math.Inf(1)

// TestFloydWarshall_Chain checks closure on a directed chain with a missing back edge.
func TestFloydWarshall_Chain(t *testing.T) {
	t.Parallel()

	// 0 → 1 (2), 1 → 2 (3), 0 → 2 (10)
	m, err := matrix.NewDenseFromRows([][]float64{
		{0, 2, 10},
		{inf, 0, 3},
		{inf, inf, 0},
	})
	require.NoError(t, err)
	require.NoError(t, matrix.FloydWarshall(m))

	assert.Equal(t, [][]float64{
		{0, 2, 5},
		{inf, 0, 3},
		{inf, inf, 0},
	}, m.ToRows())

	neg, err := matrix.HasNegativeCycle(m)
	require.NoError(t, err)
	assert.False(t, neg)
}

// TestFloydWarshall_NegativeCycle verifies that a negative cycle shows up on the diagonal.
func TestFloydWarshall_NegativeCycle(t *testing.T) {
	t.Parallel()

	m, _ := matrix.NewDenseFromRows([][]float64{
		{0, 1, inf},
		{inf, 0, -2},
		{0.5, inf, 0},
	})
	require.NoError(t, matrix.FloydWarshall(m))

	neg, err := matrix.HasNegativeCycle(m)
	require.NoError(t, err)
	assert.True(t, neg)
}

// TestFloydWarshall_Errors covers nil and non-square input.
func TestFloydWarshall_Errors(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, matrix.FloydWarshall(nil), matrix.ErrNilMatrix)

	rect, _ := matrix.NewDense(2, 3)
	assert.ErrorIs(t, matrix.FloydWarshall(rect), matrix.ErrNonSquare)

	_, err := matrix.HasNegativeCycle(rect)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}
