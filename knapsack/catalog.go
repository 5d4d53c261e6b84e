package knapsack

import (
	"math"
	"sort"
)

// Catalog owns the items of one problem in two orders: the caller's original
// order (for the DP engine and output) and density-descending order (for the
// bound and the Branch-and-Bound engine). A Catalog is immutable after Load.
type Catalog struct {
	capacity  int64
	items     []Item // original order; items[i].Index == i
	byDensity []Item // density-descending, ties by Index
}

// Load validates p and builds its Catalog.
//
// Contracts:
//   - len(p.Items) ≥ 1, p.Capacity ≥ 0, all values and weights ≥ 0.
//   - Zero-weight items get Density = +Inf, so they lead the density order
//     and are always includable.
//
// Errors: ErrNoItems, ErrNegativeCapacity, ErrNegativeWeight,
// ErrNegativeValue, ErrValueOverflow.
//
// Complexity: O(n log n).
func Load(p Problem) (*Catalog, error) {
	if err := validateProblem(p); err != nil {
		return nil, err
	}

	var (
		n     = len(p.Items)
		items = make([]Item, n)
		i     int
	)
	for i = 0; i < n; i++ {
		items[i] = Item{
			Index:   i,
			Value:   p.Items[i].Value,
			Weight:  p.Items[i].Weight,
			Density: density(p.Items[i].Value, p.Items[i].Weight),
		}
	}

	return &Catalog{
		capacity:  p.Capacity,
		items:     items,
		byDensity: densitySort(items),
	}, nil
}

// density returns value/weight, or +Inf when weight is zero.
func density(value, weight int64) float64 {
	if weight == 0 {
		return math.Inf(1)
	}

	return float64(value) / float64(weight)
}

// densitySort returns a copy of items ordered by descending density.
// The sort is stable, so equal densities keep input order.
func densitySort(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Density > out[b].Density
	})

	return out
}

// Len returns the number of items.
func (c *Catalog) Len() int { return len(c.items) }

// Capacity returns the knapsack capacity.
func (c *Catalog) Capacity() int64 { return c.capacity }

// Items returns the items in original order. The slice must not be modified.
func (c *Catalog) Items() []Item { return c.items }

// ByDensity returns the items in density-descending order. The slice must not be modified.
func (c *Catalog) ByDensity() []Item { return c.byDensity }

// Restore maps inclusion bits given in density order back to a 0/1 slice in
// original order.
func (c *Catalog) Restore(bits []bool) []int {
	out := make([]int, len(c.items))
	for pos, it := range c.byDensity {
		if pos < len(bits) && bits[pos] {
			out[it.Index] = 1
		}
	}

	return out
}
