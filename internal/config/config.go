// Package config provides configuration for the chessrules command.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Config holds all program configuration. Sections map to the top-level
// keys of the YAML configuration file.
type Config struct {
	Output     OutputConfig     `yaml:"output"`
	Log        LogConfig        `yaml:"log"`
	Processing ProcessingConfig `yaml:"processing"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Output:     *NewOutputConfig(),
		Log:        *NewLogConfig(),
		Processing: *NewProcessingConfig(),
	}
}

// Load reads a YAML configuration file. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	return Parse(data)
}

// Parse decodes YAML configuration data over the defaults and validates
// the result.
func Parse(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "%v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	return c.Processing.Validate()
}
