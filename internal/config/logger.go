package config

import (
	"io"
	"log/slog"
)

// logLevels maps the accepted log-level names to slog levels. NewConfig
// rejects any name missing here.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Logger builds the run's logger writing to outW. It is not installed as
// the slog default; the solver receives it through knapsack.Options.
func (c *Config) Logger(outW io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: logLevels[c.LogLevel]}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}

	return slog.New(slog.NewTextHandler(outW, opts))
}
