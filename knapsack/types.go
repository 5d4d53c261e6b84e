package knapsack

import (
	"errors"
	"log/slog"
	"time"
)

// Sentinel errors. Malformed input is reported through one of these and is
// never recovered inside the package; ErrResourceExhausted is recovered by
// Solve under Auto (fallback to Branch-and-Bound).
var (
	// ErrNoItems indicates a problem with zero items.
	ErrNoItems = errors.New("knapsack: problem has no items")

	// ErrNegativeCapacity indicates a capacity below zero.
	ErrNegativeCapacity = errors.New("knapsack: negative capacity")

	// ErrNegativeWeight indicates an item with a weight below zero.
	ErrNegativeWeight = errors.New("knapsack: negative item weight")

	// ErrNegativeValue indicates an item with a value below zero.
	ErrNegativeValue = errors.New("knapsack: negative item value")

	// ErrValueOverflow indicates that the sum of all item values does not fit in int64.
	ErrValueOverflow = errors.New("knapsack: total item value overflows int64")

	// ErrMalformedInput indicates a textual problem that cannot be parsed.
	ErrMalformedInput = errors.New("knapsack: malformed input")

	// ErrResourceExhausted indicates that the DP table exceeds Options.MaxTableCells
	// or CeilingTableCells.
	ErrResourceExhausted = errors.New("knapsack: dp table too large")

	// ErrUnsupportedAlgorithm indicates an unknown Options.Algo.
	ErrUnsupportedAlgorithm = errors.New("knapsack: unsupported algorithm")

	// ErrUnsupportedBound indicates an unknown Options.Bound.
	ErrUnsupportedBound = errors.New("knapsack: unsupported bound")

	// ErrBadOptions indicates a negative TimeBudget or MaxTableCells.
	ErrBadOptions = errors.New("knapsack: invalid options")
)

// Pair is one raw input item as read from the problem record.
type Pair struct {
	Value  int64
	Weight int64
}

// Problem is the flat input record: a capacity and the items in caller order.
type Problem struct {
	Capacity int64
	Items    []Pair
}

// Item is an immutable catalog entry. Index is the position of the item in
// Problem.Items and is the only link back to the caller's ordering.
type Item struct {
	Index   int
	Value   int64
	Weight  int64
	Density float64 // Value/Weight; +Inf for zero-weight items
}

// Algo selects the engine used by Solve.
type Algo int

const (
	// Auto builds the DP table when it fits and falls back to Branch-and-Bound otherwise.
	Auto Algo = iota

	// DynamicProgramming forces the table engine; ErrResourceExhausted is returned as-is.
	DynamicProgramming

	// BranchAndBound forces the search engine.
	BranchAndBound
)

// String returns the configuration name of the algorithm.
func (a Algo) String() string {
	switch a {
	case Auto:
		return "auto"
	case DynamicProgramming:
		return "dp"
	case BranchAndBound:
		return "bb"
	default:
		return "unknown"
	}
}

// ParseAlgo maps a configuration name ("auto", "dp", "bb") to an Algo.
func ParseAlgo(s string) (Algo, error) {
	switch s {
	case "auto", "":
		return Auto, nil
	case "dp":
		return DynamicProgramming, nil
	case "bb":
		return BranchAndBound, nil
	default:
		return Auto, ErrUnsupportedAlgorithm
	}
}

// BoundMode selects the pruning bound of the Branch-and-Bound engine.
type BoundMode int

const (
	// DantzigBound prunes with the fractional relaxation; the default.
	DantzigBound BoundMode = iota

	// NoBound disables pruning; every feasible subset is visited (testing only).
	NoBound
)

// String returns the configuration name of the bound.
func (b BoundMode) String() string {
	switch b {
	case DantzigBound:
		return "dantzig"
	case NoBound:
		return "none"
	default:
		return "unknown"
	}
}

// ParseBound maps a configuration name ("dantzig", "none") to a BoundMode.
func ParseBound(s string) (BoundMode, error) {
	switch s {
	case "dantzig", "":
		return DantzigBound, nil
	case "none":
		return NoBound, nil
	default:
		return DantzigBound, ErrUnsupportedBound
	}
}

// Method reports which engine produced a Result.
type Method int

const (
	// MethodDP: the DP table engine.
	MethodDP Method = iota

	// MethodBranchAndBound: the Branch-and-Bound search engine.
	MethodBranchAndBound
)

// String returns the short engine name ("dp", "bb").
func (m Method) String() string {
	if m == MethodDP {
		return "dp"
	}

	return "bb"
}

// Status reports how far the producing engine got.
type Status int

const (
	// StatusOptimal: DP table or an exhausted search; the value is proven optimal.
	StatusOptimal Status = iota

	// StatusTimeLimit: the search stopped at Options.TimeBudget; best incumbent returned.
	StatusTimeLimit

	// StatusCanceled: the context was canceled; best incumbent returned.
	StatusCanceled
)

// String returns the status name used in logs.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusTimeLimit:
		return "time-limit"
	case StatusCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// DefaultTimeBudget is the wall-clock budget of the Branch-and-Bound fallback.
const DefaultTimeBudget = 300 * time.Second

// DefaultMaxTableCells caps the DP table at 16M int64 cells (128 MiB).
const DefaultMaxTableCells int64 = 1 << 24

// CeilingTableCells is the largest DP table ever allocated (2 GiB), whatever
// Options.MaxTableCells says. MaxTableCells == 0 selects this ceiling.
const CeilingTableCells int64 = 1 << 28

// Options configures Solve.
//
// Fields:
//   - Algo         : engine selection (Auto by default).
//   - Bound        : pruning bound for Branch-and-Bound.
//   - TimeBudget   : wall-clock budget for Branch-and-Bound; 0 means unlimited.
//   - MaxTableCells: largest DP table (rows×cols) Solve will allocate;
//     0 means CeilingTableCells.
//   - Logger       : optional; nil disables logging.
type Options struct {
	Algo          Algo
	Bound         BoundMode
	TimeBudget    time.Duration
	MaxTableCells int64
	Logger        *slog.Logger
}

// DefaultOptions returns the Options used by the command line tool.
func DefaultOptions() Options {
	return Options{
		Algo:          Auto,
		Bound:         DantzigBound,
		TimeBudget:    DefaultTimeBudget,
		MaxTableCells: DefaultMaxTableCells,
	}
}

// Result is the outcome of Solve.
type Result struct {
	// Value is the total value of the taken items.
	Value int64

	// Taken holds one 0/1 entry per item in the caller's original order.
	Taken []int

	Method     Method
	Status     Status
	Iterations int // branches explored; 0 for the DP engine
	Elapsed    time.Duration
}

// Optimal reports whether Value is proven optimal.
func (r Result) Optimal() bool { return r.Status == StatusOptimal }
