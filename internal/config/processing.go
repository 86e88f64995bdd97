package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ProcessingConfig controls how input files are worked through.
type ProcessingConfig struct {
	// Workers is the number of files checked in parallel.
	Workers int `yaml:"workers"`

	// StopOnError ends processing at the first game that fails.
	StopOnError bool `yaml:"stop_on_error"`
}

// NewProcessingConfig creates a ProcessingConfig with one worker per CPU.
func NewProcessingConfig() *ProcessingConfig {
	return &ProcessingConfig{Workers: runtime.NumCPU()}
}

// Validate checks that the processing configuration is valid.
func (p *ProcessingConfig) Validate() error {
	if p.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
