package knapsack_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ksolve/knapsack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpperBound_Fractional(t *testing.T) {
	// density order 6, 5, 4; capacity 50 → 60 + 100 + 20·4 = 240.
	c, err := knapsack.Load(mkProblem(50, [2]int64{60, 10}, [2]int64{100, 20}, [2]int64{120, 30}))
	require.NoError(t, err)

	got := knapsack.UpperBound(c.ByDensity(), c.Capacity(), 0, make([]bool, 3))
	assert.Equal(t, 240.0, got)
}

func TestUpperBound_ExactFitIsWhole(t *testing.T) {
	// The second item fills the remaining capacity exactly; no fractional term.
	c, err := knapsack.Load(mkProblem(30, [2]int64{40, 10}, [2]int64{60, 20}, [2]int64{1, 5}))
	require.NoError(t, err)

	got := knapsack.UpperBound(c.ByDensity(), c.Capacity(), 0, make([]bool, 3))
	assert.Equal(t, 100.0, got)
}

func TestUpperBound_FixedPrefix(t *testing.T) {
	c, err := knapsack.Load(mkProblem(50, [2]int64{60, 10}, [2]int64{100, 20}, [2]int64{120, 30}))
	require.NoError(t, err)
	items := c.ByDensity()

	// Item 0 excluded, the rest free: 100 + 120 = 220 (exact fit).
	assert.Equal(t, 220.0, knapsack.UpperBound(items, 50, 1, []bool{false, false, false}))

	// Items 0,1 included and decided, item 2 free: 160 + 20·4 = 240.
	assert.Equal(t, 240.0, knapsack.UpperBound(items, 50, 2, []bool{true, true, false}))

	// Everything decided: exact value.
	assert.Equal(t, 180.0, knapsack.UpperBound(items, 50, 3, []bool{true, false, true}))

	// Overweight prefix.
	assert.True(t, math.IsInf(knapsack.UpperBound(items, 50, 3, []bool{true, true, true}), -1))
}

func TestUpperBound_ZeroCapacity(t *testing.T) {
	c, err := knapsack.Load(mkProblem(0, [2]int64{7, 3}, [2]int64{4, 0}))
	require.NoError(t, err)

	// The zero-weight item is always includable; the other contributes 0·density.
	assert.Equal(t, 4.0, knapsack.UpperBound(c.ByDensity(), 0, 0, make([]bool, 2)))
}

func TestUpperBound_SoundAtRoot(t *testing.T) {
	for _, correlated := range []bool{false, true} {
		for i, p := range smallBatch(t, 30, 12, correlated) {
			c, err := knapsack.Load(p)
			require.NoError(t, err)
			ub := knapsack.UpperBound(c.ByDensity(), c.Capacity(), 0, make([]bool, c.Len()))
			assert.GreaterOrEqual(t, ub, float64(bruteForce(p)), "instance %d correlated=%v", i, correlated)
		}
	}
}
