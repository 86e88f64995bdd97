package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Log encodings.
const (
	LogConsole = "console"
	LogJSON    = "json"
)

// LogConfig selects the log level and encoding of the command.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{Level: "info", Format: LogConsole}
}

// Validate checks the level name and encoding.
func (l *LogConfig) Validate() error {
	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level %q: %w", l.Level, errors.ErrInvalidConfig)
	}
	switch l.Format {
	case LogConsole, LogJSON:
	default:
		return fmt.Errorf("log format %q: %w", l.Format, errors.ErrInvalidConfig)
	}
	return nil
}
