package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/ksolve/internal/cli"
	"github.com/katalvlaran/ksolve/internal/config"
	"github.com/katalvlaran/ksolve/knapsack"
)

// Bounds of random instances produced by -generate.
const (
	genMaxValue  = 1000
	genMaxWeight = 1000
)

// main is the entrypoint for the ksolve command.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:], os.Environ())
	stop()

	if err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the command logic for easier testing and error handling.
// The answer goes to outW, logs to errW.
func run(ctx context.Context, outW, errW io.Writer, args, environ []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW, environ)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := cfg.Logger(errW)
	opts, err := cfg.Options(logger)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}

	p, err := loadProblem(cfg)
	if err != nil {
		return err
	}
	logger.Debug("Problem loaded.", "items", len(p.Items), "capacity", p.Capacity)

	res, solveErr := knapsack.Solve(ctx, p, opts)
	if solveErr != nil && res.Taken == nil {
		return fmt.Errorf("solve failed: %w", solveErr)
	}
	if err = knapsack.WriteResult(outW, res); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	logger.Info("Solved.",
		"method", res.Method.String(),
		"status", res.Status.String(),
		"value", res.Value,
		"iterations", res.Iterations,
		"elapsed", res.Elapsed)

	if solveErr != nil {
		return fmt.Errorf("search interrupted: %w", solveErr)
	}

	return nil
}

// loadProblem reads the problem file or generates a random instance.
func loadProblem(cfg *config.Config) (knapsack.Problem, error) {
	if cfg.GenerateItems > 0 {
		p, err := knapsack.Generate(knapsack.GenConfig{
			Items:     cfg.GenerateItems,
			MaxValue:  genMaxValue,
			MaxWeight: genMaxWeight,
			Seed:      cfg.Seed,
		})
		if err != nil {
			return knapsack.Problem{}, fmt.Errorf("failed to generate problem: %w", err)
		}

		return p, nil
	}

	f, err := os.Open(cfg.ProblemPath)
	if err != nil {
		return knapsack.Problem{}, fmt.Errorf("failed to open problem: %w", err)
	}
	defer f.Close()

	p, err := knapsack.ParseProblem(f)
	if err != nil {
		return knapsack.Problem{}, fmt.Errorf("failed to read problem %s: %w", cfg.ProblemPath, err)
	}

	return p, nil
}
