package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// DefaultMaxLineLength is the widest movetext line written by export.
const DefaultMaxLineLength = 79

// Notation selects how exported moves are written.
type Notation int

const (
	SAN  Notation = iota // Standard Algebraic Notation
	LALG                 // Long algebraic (e2e4)
	HALG                 // Hyphenated long algebraic (e2-e4, e4xd5)
	UCI                  // UCI format, lowercase promotion letter
)

var notationNames = []string{"san", "lalg", "halg", "uci"}

// String returns the lowercase name used in configuration files.
func (n Notation) String() string {
	if n >= 0 && int(n) < len(notationNames) {
		return notationNames[n]
	}
	return "unknown"
}

// ParseNotation converts a configuration name to a Notation.
func ParseNotation(name string) (Notation, error) {
	for i, s := range notationNames {
		if strings.EqualFold(s, name) {
			return Notation(i), nil
		}
	}
	return SAN, fmt.Errorf("unknown notation %q: %w", name, errors.ErrInvalidConfig)
}

// UnmarshalYAML reads a notation name.
func (n *Notation) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseNotation(name)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// MaxLineLength is the maximum movetext line length, including the
	// space before each token.
	MaxLineLength int `yaml:"max_line_length"`

	// Notation is the move notation used in movetext.
	Notation Notation `yaml:"notation"`

	// JSONFormat enables JSON output instead of PGN.
	JSONFormat bool `yaml:"json"`

	// JSONStream writes one JSON document per game instead of a single
	// batch. Only used with JSONFormat.
	JSONStream bool `yaml:"json_stream"`

	// CheckOnly validates games without writing them.
	CheckOnly bool `yaml:"check_only"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		MaxLineLength: DefaultMaxLineLength,
		Notation:      SAN,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	// The longest single token is a result or a move number in the
	// thousands, so anything narrower cannot hold a line.
	if o.MaxLineLength < 8 {
		return fmt.Errorf("max line length %d is too short: %w", o.MaxLineLength, errors.ErrInvalidConfig)
	}
	if o.Notation < SAN || o.Notation > UCI {
		return fmt.Errorf("notation %d: %w", int(o.Notation), errors.ErrInvalidConfig)
	}
	return nil
}
