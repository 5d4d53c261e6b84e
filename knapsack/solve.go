// Package knapsack - unified dispatcher.
//
// Solve is the canonical entry point:
//
//   - Auto: build the DP table when (W+1)·(n+1) ≤ MaxTableCells; otherwise
//     (ErrResourceExhausted) run Branch-and-Bound under TimeBudget.
//   - DynamicProgramming / BranchAndBound force one engine.
//
// Design principles:
//   - Strict sentinels: malformed input is returned, never recovered.
//   - Each call owns its catalog, table or search state; concurrent calls
//     share nothing.
//   - The caller always gets a feasible assignment; Result.Status tells a
//     proven optimum from a budget-limited incumbent.
package knapsack

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Solve validates p and opts and solves p with the engine selected by opts.Algo.
//
// When the Branch-and-Bound search stops early because ctx is done, Solve
// returns the incumbent with StatusCanceled together with ctx.Err(). A
// stop at TimeBudget is not an error (StatusTimeLimit).
//
// Errors: sentinels from Load and validateOptions; ErrResourceExhausted when
// opts.Algo == DynamicProgramming and the table does not fit; ctx.Err().
func Solve(ctx context.Context, p Problem, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	c, err := Load(p)
	if err != nil {
		return Result{}, err
	}

	log := opts.Logger
	if log == nil {
		log = slog.New(discardHandler{})
	}
	start := time.Now()

	switch opts.Algo {
	case DynamicProgramming:
		return solveDP(c, opts, start)

	case BranchAndBound:
		return solveBB(ctx, c, opts, log, start)

	default:
		res, err := solveDP(c, opts, start)
		if errors.Is(err, ErrResourceExhausted) {
			log.Info("DP table too large, falling back to branch-and-bound.",
				"items", c.Len(), "capacity", c.Capacity(), "max_table_cells", opts.MaxTableCells)
			return solveBB(ctx, c, opts, log, start)
		}
		if err == nil {
			log.Debug("Solved with DP table.", "items", c.Len(), "capacity", c.Capacity(), "value", res.Value)
		}

		return res, err
	}
}

// solveDP runs the table engine over the original order.
func solveDP(c *Catalog, opts Options, start time.Time) (Result, error) {
	t, err := BuildTable(c.Items(), c.Capacity(), opts.MaxTableCells)
	if err != nil {
		return Result{}, err
	}
	value, taken := t.Extract(c.Items())

	return Result{
		Value:   value,
		Taken:   taken,
		Method:  MethodDP,
		Status:  StatusOptimal,
		Elapsed: time.Since(start),
	}, nil
}

// solveBB runs the search engine and remaps the incumbent to original order.
func solveBB(ctx context.Context, c *Catalog, opts Options, log *slog.Logger, start time.Time) (Result, error) {
	s := NewSearch(c, opts.Bound)
	status := s.Run(ctx, opts.TimeBudget)
	value, _ := s.Incumbent()

	res := Result{
		Value:      value,
		Taken:      s.Assignment(),
		Method:     MethodBranchAndBound,
		Status:     status,
		Iterations: s.Iterations(),
		Elapsed:    time.Since(start),
	}

	switch status {
	case StatusTimeLimit:
		log.Warn("Branch-and-bound stopped at time budget; result may be suboptimal.",
			"budget", opts.TimeBudget, "iterations", res.Iterations, "value", value)
	case StatusCanceled:
		log.Warn("Branch-and-bound canceled; result may be suboptimal.",
			"iterations", res.Iterations, "value", value)
		return res, ctx.Err()
	default:
		log.Debug("Branch-and-bound exhausted.", "iterations", res.Iterations, "value", value)
	}

	return res, nil
}

// discardHandler drops every record; it stands in for a nil Options.Logger.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
