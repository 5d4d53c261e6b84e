// Package config holds the run configuration of the ksolve command: defaults,
// the optional HCL configuration file, and the conversion to knapsack.Options.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/katalvlaran/ksolve/knapsack"
	"github.com/zclconf/go-cty/cty"
)

// Config holds everything one ksolve run needs.
type Config struct {
	ProblemPath string // textual problem file; empty in generate mode

	Algorithm     string
	Bound         string
	TimeBudget    time.Duration
	MaxTableCells int64

	LogFormat string
	LogLevel  string

	// Generate mode: solve a random instance instead of reading a file.
	GenerateItems int
	Seed          int64
}

// Default returns the configuration used when neither a file nor flags set a value.
func Default() Config {
	return Config{
		Algorithm:     knapsack.Auto.String(),
		Bound:         knapsack.DantzigBound.String(),
		TimeBudget:    knapsack.DefaultTimeBudget,
		MaxTableCells: knapsack.DefaultMaxTableCells,
		LogFormat:     "text",
		LogLevel:      "info",
	}
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ProblemPath == "" && cfg.GenerateItems <= 0 {
		return nil, errors.New("a problem file path or a positive -generate item count is required")
	}
	if cfg.ProblemPath != "" && cfg.GenerateItems > 0 {
		return nil, errors.New("a problem file path and -generate are mutually exclusive")
	}
	if _, err := knapsack.ParseAlgo(cfg.Algorithm); err != nil {
		return nil, fmt.Errorf("invalid algorithm %q: must be 'auto', 'dp' or 'bb'", cfg.Algorithm)
	}
	if _, err := knapsack.ParseBound(cfg.Bound); err != nil {
		return nil, fmt.Errorf("invalid bound %q: must be 'dantzig' or 'none'", cfg.Bound)
	}
	if cfg.TimeBudget < 0 {
		return nil, fmt.Errorf("invalid time budget %s: must not be negative", cfg.TimeBudget)
	}
	if cfg.MaxTableCells < 0 {
		return nil, fmt.Errorf("invalid max table cells %d: must not be negative", cfg.MaxTableCells)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}
	if _, ok := logLevels[cfg.LogLevel]; !ok {
		return nil, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	return &cfg, nil
}

// Options converts the configuration into solver options. logger may be nil.
func (c *Config) Options(logger *slog.Logger) (knapsack.Options, error) {
	algo, err := knapsack.ParseAlgo(c.Algorithm)
	if err != nil {
		return knapsack.Options{}, err
	}
	bound, err := knapsack.ParseBound(c.Bound)
	if err != nil {
		return knapsack.Options{}, err
	}

	return knapsack.Options{
		Algo:          algo,
		Bound:         bound,
		TimeBudget:    c.TimeBudget,
		MaxTableCells: c.MaxTableCells,
		Logger:        logger,
	}, nil
}

// File is the decoded HCL configuration file. Every attribute is optional;
// nil means "keep the current value".
//
//	algorithm       = "auto"      # auto | dp | bb
//	bound           = "dantzig"   # dantzig | none
//	time_budget     = "5m"        # Go duration; "0s" disables the budget
//	max_table_cells = 16777216
//	log_level       = env.KSOLVE_LOG_LEVEL
//	log_format      = "json"
type File struct {
	Algorithm     *string `hcl:"algorithm,optional"`
	Bound         *string `hcl:"bound,optional"`
	TimeBudget    *string `hcl:"time_budget,optional"`
	MaxTableCells *int64  `hcl:"max_table_cells,optional"`
	LogLevel      *string `hcl:"log_level,optional"`
	LogFormat     *string `hcl:"log_format,optional"`
}

// LoadFile parses and decodes an HCL configuration file. Expressions may
// reference env.<NAME>, resolved from environ (KEY=VALUE entries, as from
// os.Environ).
func LoadFile(path string, environ []string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	var f File
	diags = gohcl.DecodeBody(hclFile.Body, evalContext(environ), &f)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}

	return &f, nil
}

// Apply overlays the attributes present in f onto c.
func (c *Config) Apply(f *File) error {
	if f == nil {
		return nil
	}
	if f.Algorithm != nil {
		c.Algorithm = *f.Algorithm
	}
	if f.Bound != nil {
		c.Bound = *f.Bound
	}
	if f.TimeBudget != nil {
		d, err := time.ParseDuration(*f.TimeBudget)
		if err != nil {
			return fmt.Errorf("invalid time_budget %q: %w", *f.TimeBudget, err)
		}
		c.TimeBudget = d
	}
	if f.MaxTableCells != nil {
		c.MaxTableCells = *f.MaxTableCells
	}
	if f.LogLevel != nil {
		c.LogLevel = strings.ToLower(*f.LogLevel)
	}
	if f.LogFormat != nil {
		c.LogFormat = strings.ToLower(*f.LogFormat)
	}

	return nil
}

// evalContext exposes the environment as the object variable "env".
func evalContext(environ []string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" || !hclIdent(k) || !utf8.ValidString(v) {
			continue
		}
		vars[k] = cty.StringVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
	}
}

// hclIdent reports whether s can be used as an attribute name after "env.".
func hclIdent(s string) bool {
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r == '-' || (r >= '0' && r <= '9')):
		default:
			return false
		}
	}

	return true
}
