// Package cli turns ksolve command-line arguments into a validated
// config.Config. Values are layered: built-in defaults, then the optional
// HCL file given by -config, then flags set explicitly on the command line.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/ksolve/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. environ feeds env.<NAME>
// references in the configuration file. It returns a populated Config, a
// boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer, environ []string) (*config.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("ksolve", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
ksolve - an exact 0/1 knapsack solver (DP table or branch-and-bound).

Usage:
  ksolve [options] PROBLEM_PATH
  ksolve [options] -generate N [-seed S]

Arguments:
  PROBLEM_PATH
    Text file: "<n> <capacity>" followed by n lines "<value> <weight>".

Options:
`)
		flagSet.PrintDefaults()
	}

	def := config.Default()
	configFlag := flagSet.String("config", "", "Path to an optional HCL configuration file.")
	algoFlag := flagSet.String("algo", def.Algorithm, "Solver engine. Options: 'auto', 'dp', 'bb'.")
	boundFlag := flagSet.String("bound", def.Bound, "Branch-and-bound pruning. Options: 'dantzig', 'none'.")
	budgetFlag := flagSet.Duration("time-budget", def.TimeBudget, "Wall-clock budget for branch-and-bound. 0 disables it.")
	cellsFlag := flagSet.Int64("max-table-cells", def.MaxTableCells, "Largest DP table (cells) tried before falling back. 0 selects the built-in ceiling.")
	logFormatFlag := flagSet.String("log-format", def.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", def.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	generateFlag := flagSet.Int("generate", 0, "Solve a random instance with N items instead of reading a file.")
	seedFlag := flagSet.Int64("seed", 0, "Seed for -generate. 0 selects the built-in seed.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one problem path, got %d", flagSet.NArg())}
	}

	cfg := def
	if *configFlag != "" {
		f, err := config.LoadFile(*configFlag, environ)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		if err = cfg.Apply(f); err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		slog.Debug("Configuration file applied.", "path", *configFlag)
	}

	flagSet.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "algo":
			cfg.Algorithm = strings.ToLower(*algoFlag)
		case "bound":
			cfg.Bound = strings.ToLower(*boundFlag)
		case "time-budget":
			cfg.TimeBudget = *budgetFlag
		case "max-table-cells":
			cfg.MaxTableCells = *cellsFlag
		case "log-format":
			cfg.LogFormat = strings.ToLower(*logFormatFlag)
		case "log-level":
			cfg.LogLevel = strings.ToLower(*logLevelFlag)
		}
	})
	cfg.ProblemPath = flagSet.Arg(0)
	cfg.GenerateItems = *generateFlag
	cfg.Seed = *seedFlag

	if cfg.ProblemPath == "" && cfg.GenerateItems <= 0 {
		slog.Debug("No problem provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	validated, err := config.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", validated)
	return validated, false, nil
}
