package knapsack

import "math"

// UpperBound: Dantzig (fractional relaxation) bound.
//
// Items [0, fixed) are decided by set; items [fixed, n) are free. Decided
// items contribute exactly. Free items, in the given (density-descending)
// order, are taken whole while they fit (weight ≤ remaining) and the first
// one that does not fit contributes remaining·density. If no free item
// overflows, the exact sum is returned.
//
// The relaxation allows a fraction of one item, so its optimum is ≥ the value
// of every integral completion of the partial assignment; pruning a branch
// whose bound is ≤ the incumbent therefore never discards a better answer.
//
// Returns -Inf when the decided prefix alone exceeds capacity.
//
// Complexity: O(n).
func UpperBound(items []Item, capacity int64, fixed int, set []bool) float64 {
	var (
		remaining = capacity
		value     int64
		i         int
	)
	if fixed > len(items) {
		fixed = len(items)
	}
	for i = 0; i < fixed; i++ {
		if set[i] {
			remaining -= items[i].Weight
			value += items[i].Value
		}
	}
	if remaining < 0 {
		return math.Inf(-1)
	}

	for i = fixed; i < len(items); i++ {
		if items[i].Weight <= remaining {
			remaining -= items[i].Weight
			value += items[i].Value
			continue
		}
		// Weight > remaining ≥ 0, so Density is finite here.
		return float64(value) + float64(remaining)*items[i].Density
	}

	return float64(value)
}
