// Package logging builds the zap logger used by the command-line tool.
// The library packages never log.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger at the given level ("debug", "info", "warn", "error").
// development switches to zap's development config (console encoder,
// human-readable timestamps); otherwise the JSON production config is used.
// verbose forces debug regardless of level.
func New(level string, development, verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if development {
		config = zap.NewDevelopmentConfig()
	}

	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}
	config.Level = lvl
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}

// Shape is a zap field for a rows×cols shape.
func Shape(key string, rows, cols int) zap.Field {
	return zap.String(key, fmt.Sprintf("%dx%d", rows, cols))
}
