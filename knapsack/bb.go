// Package knapsack: Branch-and-Bound (exact search with the Dantzig bound).
//
// Search enumerates inclusion decisions over the items in density-descending
// order with a depth-first, include-first policy. There is no recursion: the
// whole search lives in one Search value and advances by alternating two
// steps, so a caller can stop between any two branches.
//
// Rationale (succinct):
//  1. Descend (a "branch"): starting at Next, take every item that fits in
//     Floor. The first item that does not fit ends the branch; that item can
//     only be excluded, so the next branch resumes right after it. Reaching
//     the last item ends the branch at a leaf.
//  2. Bound: each branch is rooted at the node where items [0, Level] are
//     decided. Its Dantzig bound is computed once, in Advance. If the bound
//     is ≤ the incumbent, the whole subtree under the root is cut.
//  3. Advance (the transition) picks the next branch root:
//     - weight stop at i (i < n−1)  → root at i (excluded), resume at i+1;
//     - leaf reached                → flip the rightmost included item to
//     excluded, clear everything after it, resume right after it;
//     - bound cut                   → same flip, restricted to items decided
//     before the current root.
//     When no included item is left to flip, the search is Exhausted.
//  4. Incumbent: updated on every inclusion that raises Kept above the best
//     value, so every feasible subset is evaluated when it is completed.
//
// Each feasible subset corresponds to exactly one leaf of the include-first
// decision tree, and the transitions above visit the leaves in depth-first
// order without repetition. With NoBound the search therefore visits every
// feasible subset exactly once; with DantzigBound it skips only subtrees that
// cannot beat the incumbent. An exhausted search is optimal.
//
// Complexity:
//   - Worst case exponential in n. Practical speed comes from density order
//     and pruning.
//   - Per branch: O(n) (replay of the decided prefix + bound).
//   - Memory: O(n).
package knapsack

import (
	"context"
	"math"
	"time"
)

// Phase is the state of the Search state machine.
type Phase int

const (
	// Descending: the next call is a descent from State.Next.
	Descending Phase = iota

	// Transitioning: a descent has stopped; Advance picks the next branch.
	Transitioning

	// Exhausted: no branch remains; the incumbent is optimal.
	Exhausted
)

// String returns the lower-case phase name.
func (p Phase) String() string {
	switch p {
	case Descending:
		return "descending"
	case Transitioning:
		return "transitioning"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// StopReason explains why a descent ended.
type StopReason int

const (
	// StopEnd: the descent ran past the last item.
	StopEnd StopReason = iota

	// StopWeight: the item at Stop does not fit in the remaining capacity.
	StopWeight

	// StopBound: the branch bound is ≤ the incumbent value.
	StopBound
)

// String returns the lower-case stop reason.
func (r StopReason) String() string {
	switch r {
	case StopEnd:
		return "end"
	case StopWeight:
		return "weight"
	case StopBound:
		return "bound"
	default:
		return "unknown"
	}
}

// Descent is the outcome of one Descend call.
type Descent struct {
	// Stop is the index (density order) where the descent ended.
	Stop   int
	Reason StopReason

	// Leaf is true when every item has been decided, i.e. the current set
	// is a complete feasible assignment.
	Leaf bool
}

// State is a snapshot of the current partial assignment.
type State struct {
	Level int     // index of the branch root decision (excluded item)
	Next  int     // first undecided item
	Floor int64   // remaining capacity
	Kept  int64   // value of included items
	Bound float64 // Dantzig bound of the branch root; +Inf under NoBound
	Set   []bool  // inclusion bits in density order
}

// Search holds all state of one Branch-and-Bound run. It is owned by a
// single goroutine; independent searches share nothing.
type Search struct {
	catalog  *Catalog
	items    []Item // density order
	n        int
	capacity int64
	useBound bool

	// Current branch.
	set   []bool
	level int
	fixed int // number of decided items at the branch root
	next  int
	floor int64
	kept  int64
	bound float64

	// Incumbent.
	bestValue int64
	bestSet   []bool

	iterations int
	phase      Phase
}

// NewSearch prepares a search over c. The first branch starts at item 0 with
// every item free, so its bound is the Dantzig bound of the whole problem.
func NewSearch(c *Catalog, bound BoundMode) *Search {
	s := &Search{
		catalog:  c,
		items:    c.ByDensity(),
		n:        c.Len(),
		capacity: c.Capacity(),
		useBound: bound != NoBound,
		set:      make([]bool, c.Len()),
		bestSet:  make([]bool, c.Len()),
		floor:    c.Capacity(),
		phase:    Descending,
	}
	s.bound = s.branchBound()

	return s
}

// branchBound returns the bound of the current branch root.
func (s *Search) branchBound() float64 {
	if !s.useBound {
		return math.Inf(1)
	}

	return UpperBound(s.items, s.capacity, s.fixed, s.set)
}

// Descend runs one greedy descent from the first undecided item.
// On an exhausted search it returns Descent{Stop: -1}.
func (s *Search) Descend() Descent {
	if s.phase == Exhausted {
		return Descent{Stop: -1, Reason: StopEnd}
	}
	s.iterations++
	s.phase = Transitioning

	var (
		i  int
		it Item
	)
	for i = s.next; i < s.n; i++ {
		if s.bound <= float64(s.bestValue) {
			return Descent{Stop: i, Reason: StopBound}
		}
		it = s.items[i]
		if it.Weight > s.floor {
			return Descent{Stop: i, Reason: StopWeight, Leaf: i == s.n-1}
		}
		s.floor -= it.Weight
		s.kept += it.Value
		s.set[i] = true
		if s.kept > s.bestValue {
			s.bestValue = s.kept
			copy(s.bestSet, s.set)
		}
	}

	return Descent{Stop: s.n - 1, Reason: StopEnd, Leaf: true}
}

// Advance computes the next branch from the outcome of the last descent,
// replays Floor and Kept for the new root and recomputes its bound.
func (s *Search) Advance(d Descent) {
	if s.phase == Exhausted {
		return
	}

	switch {
	case d.Reason == StopWeight && !d.Leaf:
		// The item at Stop is excluded; resume just after it.
		s.level = d.Stop
	case d.Reason == StopBound:
		if !s.flip(s.fixed) {
			s.phase = Exhausted
			return
		}
	default:
		if !s.flip(s.n) {
			s.phase = Exhausted
			return
		}
	}

	s.fixed = s.level + 1
	s.next = s.level + 1
	s.replay()
	s.bound = s.branchBound()
	s.phase = Descending
}

// Explore performs one full iteration: Descend then Advance.
func (s *Search) Explore() Descent {
	d := s.Descend()
	s.Advance(d)

	return d
}

// flip excludes the rightmost included item below limit and clears every
// decision after it. It reports false when no included item is left.
func (s *Search) flip(limit int) bool {
	var j, k int
	for j = limit - 1; j >= 0; j-- {
		if !s.set[j] {
			continue
		}
		s.set[j] = false
		for k = j + 1; k < s.n; k++ {
			s.set[k] = false
		}
		s.level = j

		return true
	}

	return false
}

// replay recomputes Floor and Kept from the decided prefix.
func (s *Search) replay() {
	s.floor = s.capacity
	s.kept = 0
	var i int
	for i = 0; i < s.fixed; i++ {
		if s.set[i] {
			s.floor -= s.items[i].Weight
			s.kept += s.items[i].Value
		}
	}
}

// Run drives Explore until the search is exhausted, ctx is done, or budget
// elapses (budget ≤ 0 means unlimited). Cancellation is checked once per
// branch, after at least one branch has been explored.
func (s *Search) Run(ctx context.Context, budget time.Duration) Status {
	var deadline time.Time
	if budget > 0 {
		deadline = time.Now().Add(budget)
	}

	for {
		s.Explore()
		if s.phase == Exhausted {
			return StatusOptimal
		}
		if ctx.Err() != nil {
			return StatusCanceled
		}
		if budget > 0 && !time.Now().Before(deadline) {
			return StatusTimeLimit
		}
	}
}

// Done reports whether the search space is exhausted.
func (s *Search) Done() bool { return s.phase == Exhausted }

// Phase returns the current state-machine phase.
func (s *Search) Phase() Phase { return s.phase }

// Iterations returns the number of descents performed.
func (s *Search) Iterations() int { return s.iterations }

// State returns a snapshot of the current partial assignment.
func (s *Search) State() State {
	set := make([]bool, s.n)
	copy(set, s.set)

	return State{
		Level: s.level,
		Next:  s.next,
		Floor: s.floor,
		Kept:  s.kept,
		Bound: s.bound,
		Set:   set,
	}
}

// Incumbent returns the best value found so far and its inclusion bits in
// density order.
func (s *Search) Incumbent() (int64, []bool) {
	set := make([]bool, s.n)
	copy(set, s.bestSet)

	return s.bestValue, set
}

// Assignment returns the incumbent as 0/1 in the caller's original order.
func (s *Search) Assignment() []int { return s.catalog.Restore(s.bestSet) }
