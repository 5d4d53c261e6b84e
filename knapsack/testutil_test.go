// Package knapsack_test: shared helpers for engine tests.
//
// Policy:
//   - Tiny, deterministic instances; brute force is the oracle (n ≤ 16).
//   - Helpers fail the test via t.Helper() + require.
package knapsack_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/ksolve/knapsack"
	"github.com/stretchr/testify/require"
)

// seedDet is the fixed seed for generated batches.
const seedDet int64 = 20240917

// mkProblem builds a Problem from (value, weight) pairs.
func mkProblem(capacity int64, pairs ...[2]int64) knapsack.Problem {
	items := make([]knapsack.Pair, len(pairs))
	for i, p := range pairs {
		items[i] = knapsack.Pair{Value: p[0], Weight: p[1]}
	}

	return knapsack.Problem{Capacity: capacity, Items: items}
}

// bruteForce returns the optimal value of p by enumerating all 2^n subsets.
func bruteForce(p knapsack.Problem) int64 {
	var (
		n    = len(p.Items)
		best int64
		mask int
	)
	for mask = 0; mask < 1<<n; mask++ {
		var w, v int64
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				w += p.Items[i].Weight
				v += p.Items[i].Value
			}
		}
		if w <= p.Capacity && v > best {
			best = v
		}
	}

	return best
}

// mustFeasible asserts that taken is a 0/1 assignment of p whose weight fits
// and whose value equals want.
func mustFeasible(t *testing.T, p knapsack.Problem, taken []int, want int64) {
	t.Helper()
	require.Len(t, taken, len(p.Items))
	var w, v int64
	for i, bit := range taken {
		require.Contains(t, []int{0, 1}, bit, "bit %d", i)
		if bit == 1 {
			w += p.Items[i].Weight
			v += p.Items[i].Value
		}
	}
	require.LessOrEqual(t, w, p.Capacity, "assignment overweight")
	require.Equal(t, want, v, "assignment value differs from reported value")
}

// mustSolve runs Solve with the given algorithm (exhaustive search, no budget).
func mustSolve(t *testing.T, p knapsack.Problem, algo knapsack.Algo) knapsack.Result {
	t.Helper()
	opts := knapsack.DefaultOptions()
	opts.Algo = algo
	opts.TimeBudget = 0
	res, err := knapsack.Solve(context.Background(), p, opts)
	require.NoError(t, err)
	mustFeasible(t, p, res.Taken, res.Value)

	return res
}

// smallBatch returns deterministic random instances small enough for brute force.
func smallBatch(t *testing.T, k int, items int, correlated bool) []knapsack.Problem {
	t.Helper()
	ps, err := knapsack.GenerateBatch(knapsack.GenConfig{
		Items:         items,
		MaxValue:      40,
		MaxWeight:     25,
		CapacityRatio: 0.45,
		Correlated:    correlated,
		Seed:          seedDet,
	}, k)
	require.NoError(t, err)

	return ps
}

// zeroWeightBatch returns k deterministic instances with weights in [0, 7]
// and values in [0, 5], so zero-weight and zero-value items are common.
func zeroWeightBatch(k int, items int) []knapsack.Problem {
	rng := rand.New(rand.NewSource(seedDet))
	out := make([]knapsack.Problem, k)
	for i := range out {
		p := knapsack.Problem{Capacity: rng.Int63n(4 * int64(items)), Items: make([]knapsack.Pair, items)}
		for j := range p.Items {
			p.Items[j] = knapsack.Pair{Value: rng.Int63n(6), Weight: rng.Int63n(8)}
		}
		out[i] = p
	}

	return out
}
