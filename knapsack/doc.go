// Package knapsack solves the 0/1 knapsack problem exactly.
//
// 🚀 What is the 0/1 knapsack problem?
//
//	Given n items, each with an integer value and weight, and a capacity W,
//	choose a subset of items whose total weight is ≤ W and whose total value
//	is as large as possible. Every item is either taken once or not at all.
//
// ✨ Two engines, one entry point:
//   - Dynamic programming: a dense (W+1)×(n+1) table plus backtracking.
//     Always optimal; Time O(n·W), Memory O(n·W).
//   - Branch-and-Bound: density-ordered depth-first search driven by an
//     explicit descent/transition state machine and pruned with the
//     Dantzig (fractional relaxation) upper bound. Memory O(n); exponential
//     worst case, bounded by a wall-clock budget.
//
// Solve runs the table when it fits under Options.MaxTableCells and falls
// back to Branch-and-Bound otherwise. The Result reports which engine ran and
// whether the answer is proven optimal (StatusOptimal) or the best incumbent
// found before the budget ran out (StatusTimeLimit / StatusCanceled).
//
// ⚙️ Usage:
//
//	p := knapsack.Problem{
//	  Capacity: 50,
//	  Items:    []knapsack.Pair{{Value: 60, Weight: 10}, {Value: 100, Weight: 20}, {Value: 120, Weight: 30}},
//	}
//	res, err := knapsack.Solve(ctx, p, knapsack.DefaultOptions())
//	// res.Value == 220, res.Taken == []int{0, 1, 1}
//
// The Branch-and-Bound engine is externally steppable (see Search) so callers
// can interleave their own cancellation or progress reporting between
// branches.
package knapsack
