package knapsack

// Table: dynamic-programming value table.
//
// Description:
//
//	At(w, j) is the best value reachable with the first j items (original
//	order) and capacity w. The table is dense, row-major by capacity:
//	cells[w*cols + j].
//
// Algorithm Outline:
//  1. Let n = len(items), W = capacity. Allocate (W+1)×(n+1) cells, zeroed,
//     so At(w, 0) = 0.
//  2. For j = 0..n-1, for w = 0..W:
//     At(w, j+1) = At(w, j)                                   if weight_j > w
//     At(w, j+1) = max(At(w, j), At(w-weight_j, j) + value_j) otherwise
//  3. Extract walks j = n..1: a change between columns j and j-1 at the
//     current capacity means item j-1 was taken.
//
// Column j+1 dominates column j for every w, which is what makes the
// backtracking in Extract exact.
//
// Complexity:
//
//	Time   = O(n·W)
//	Memory = O(n·W)
type Table struct {
	rows  int // capacity + 1
	cols  int // item count + 1
	cells []int64
}

// BuildTable fills the DP table for items (original order) and capacity.
//
// The table is refused, never truncated, when (capacity+1)·(n+1) exceeds
// the effective limit or overflows. The effective limit is maxCells capped
// at CeilingTableCells; maxCells ≤ 0 selects the ceiling itself.
//
// Errors: ErrResourceExhausted.
func BuildTable(items []Item, capacity int64, maxCells int64) (*Table, error) {
	limit := maxCells
	if limit <= 0 || limit > CeilingTableCells {
		limit = CeilingTableCells
	}
	cells, ok := tableCells(capacity, len(items))
	if !ok || cells > limit {
		return nil, ErrResourceExhausted
	}
	// The backing slice is indexed with int.
	if int64(int(cells)) != cells {
		return nil, ErrResourceExhausted
	}

	t := &Table{
		rows:  int(capacity) + 1,
		cols:  len(items) + 1,
		cells: make([]int64, int(cells)),
	}

	var (
		j, w       int
		weight     int
		value      int64
		keep, take int64
	)
	for j = 0; j < len(items); j++ {
		value = items[j].Value
		for w = 0; w < t.rows; w++ {
			keep = t.cells[w*t.cols+j]
			// An item heavier than the whole knapsack is never taken; the
			// comparison is done in int64 so huge weights do not wrap.
			if items[j].Weight > int64(w) {
				t.cells[w*t.cols+j+1] = keep
				continue
			}
			weight = int(items[j].Weight)
			take = t.cells[(w-weight)*t.cols+j] + value
			if take > keep {
				t.cells[w*t.cols+j+1] = take
			} else {
				t.cells[w*t.cols+j+1] = keep
			}
		}
	}

	return t, nil
}

// Rows returns capacity+1.
func (t *Table) Rows() int { return t.rows }

// Cols returns item count+1.
func (t *Table) Cols() int { return t.cols }

// At returns the best value for capacity w using the first j items.
func (t *Table) At(w, j int) int64 { return t.cells[w*t.cols+j] }

// Extract reconstructs the optimal subset by backtracking from the
// full-capacity, all-items corner. items must be the slice the table was
// built from. Taken is 0/1 in original order.
//
// Complexity: O(n).
func (t *Table) Extract(items []Item) (value int64, taken []int) {
	var (
		w = t.rows - 1
		j int
	)
	taken = make([]int, t.cols-1)
	value = t.At(w, t.cols-1)

	for j = t.cols - 1; j > 0; j-- {
		if t.At(w, j) != t.At(w, j-1) {
			taken[j-1] = 1
			w -= int(items[j-1].Weight)
		}
	}

	return value, taken
}
