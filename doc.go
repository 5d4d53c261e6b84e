// Package ksolve is an exact 0/1 knapsack solver: given items with integer
// values and weights and a capacity, it picks the subset of greatest total
// value whose total weight fits.
//
// 🚀 What is inside?
//
//	knapsack         catalog, DP table engine, Branch-and-Bound state
//	                 machine with the Dantzig bound, Solve dispatcher,
//	                 textual problem/answer formats, instance generator
//	internal/config  run configuration, HCL file (env.<NAME> aware), slog setup
//	internal/cli     flag parsing, exit codes
//	cmd/ksolve       the command
//
// ✨ Engines
//
//   - DP: (W+1)×(n+1) table, optimal, used while the table fits MaxTableCells.
//   - Branch-and-Bound: depth-first over density-sorted items, pruned by the
//     fractional relaxation; stops at a time budget with the best incumbent.
//
// Quick start:
//
//	p, _ := knapsack.ParseProblem(f)
//	res, err := knapsack.Solve(ctx, p, knapsack.DefaultOptions())
//	_ = knapsack.WriteResult(os.Stdout, res) // "220 0\n0 1 1\n"
//
// Command line:
//
//	ksolve [-algo auto|dp|bb] [-bound dantzig|none] [-time-budget 5m] data/ks_40_0
package ksolve
