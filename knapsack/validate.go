// Package knapsack - validation helpers shared by the catalog and Solve.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
package knapsack

import "math"

// validateProblem checks the input record. It returns the first violation found.
//
// Complexity: O(n).
func validateProblem(p Problem) error {
	if len(p.Items) == 0 {
		return ErrNoItems
	}
	if p.Capacity < 0 {
		return ErrNegativeCapacity
	}

	var total int64
	for _, it := range p.Items {
		if it.Weight < 0 {
			return ErrNegativeWeight
		}
		if it.Value < 0 {
			return ErrNegativeValue
		}
		// Kept values are summed in int64 throughout both engines.
		if it.Value > math.MaxInt64-total {
			return ErrValueOverflow
		}
		total += it.Value
	}

	return nil
}

// validateOptions checks Options without referencing the problem.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.TimeBudget < 0 || opts.MaxTableCells < 0 {
		return ErrBadOptions
	}
	switch opts.Algo {
	case Auto, DynamicProgramming, BranchAndBound:
		// ok
	default:
		return ErrUnsupportedAlgorithm
	}
	switch opts.Bound {
	case DantzigBound, NoBound:
		// ok
	default:
		return ErrUnsupportedBound
	}

	return nil
}

// tableCells returns (capacity+1)·(n+1) and false if the product overflows int64.
func tableCells(capacity int64, n int) (int64, bool) {
	rows := capacity + 1
	cols := int64(n) + 1
	if rows <= 0 || cols <= 0 {
		return 0, false
	}
	if rows > math.MaxInt64/cols {
		return 0, false
	}

	return rows * cols, true
}
