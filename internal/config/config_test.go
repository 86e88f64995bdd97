package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.Notation != SAN {
		t.Errorf("Notation = %v, want %v", cfg.Notation, SAN)
	}
	if cfg.MaxLineLength != 79 {
		t.Errorf("MaxLineLength = %d, want 79", cfg.MaxLineLength)
	}
	if cfg.JSONFormat {
		t.Error("JSONFormat should be false by default")
	}
	if cfg.CheckOnly {
		t.Error("CheckOnly should be false by default")
	}
}

func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Log.Level != "info" || cfg.Log.Format != LogConsole {
		t.Errorf("Log = %+v, want info/console", cfg.Log)
	}
	if cfg.Processing.Workers < 1 {
		t.Errorf("Workers = %d, want at least 1", cfg.Processing.Workers)
	}
	if cfg.Processing.StopOnError {
		t.Error("StopOnError should be false by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		build   func(*ConfigBuilder)
		wantErr bool
	}{
		{"defaults", func(*ConfigBuilder) {}, false},
		{"wide lines", func(b *ConfigBuilder) { b.WithMaxLineLength(255) }, false},
		{"narrow lines", func(b *ConfigBuilder) { b.WithMaxLineLength(4) }, true},
		{"no workers", func(b *ConfigBuilder) { b.WithWorkers(0) }, true},
		{"bad level", func(b *ConfigBuilder) { b.WithLogLevel("loud") }, true},
		{"bad format", func(b *ConfigBuilder) { b.WithLogFormat("xml") }, true},
		{"bad notation", func(b *ConfigBuilder) { b.WithNotation(Notation(9)) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewConfigBuilder()
			tt.build(b)
			err := b.Build().Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
output:
  max_line_length: 100
  notation: uci
  json: true
  json_stream: true
log:
  level: debug
  format: json
processing:
  workers: 3
  stop_on_error: true
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Output.MaxLineLength != 100 {
		t.Errorf("MaxLineLength = %d, want 100", cfg.Output.MaxLineLength)
	}
	if cfg.Output.Notation != UCI {
		t.Errorf("Notation = %v, want uci", cfg.Output.Notation)
	}
	if !cfg.Output.JSONFormat || !cfg.Output.JSONStream {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != LogJSON {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.Processing.Workers != 3 || !cfg.Processing.StopOnError {
		t.Errorf("Processing = %+v", cfg.Processing)
	}
}

func TestParse_KeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("log:\n  level: warn\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Output.MaxLineLength != DefaultMaxLineLength {
		t.Errorf("MaxLineLength = %d, want %d", cfg.Output.MaxLineLength, DefaultMaxLineLength)
	}
	if cfg.Log.Format != LogConsole {
		t.Errorf("Format = %q, want console", cfg.Log.Format)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad notation", "output:\n  notation: figurine\n"},
		{"bad yaml", "output: [\n"},
		{"invalid value", "processing:\n  workers: -2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("Parse() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chessrules.yaml")
	if err := os.WriteFile(path, []byte("output:\n  notation: halg\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output.Notation != HALG {
		t.Errorf("Notation = %v, want halg", cfg.Output.Notation)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}

func TestParseNotation(t *testing.T) {
	for _, n := range []Notation{SAN, LALG, HALG, UCI} {
		got, err := ParseNotation(n.String())
		if err != nil || got != n {
			t.Errorf("ParseNotation(%q) = %v, %v", n.String(), got, err)
		}
	}
	if got, err := ParseNotation("LALG"); err != nil || got != LALG {
		t.Errorf("ParseNotation is not case-insensitive: %v, %v", got, err)
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	cfg := NewConfigBuilder().
		WithNotation(LALG).
		WithMaxLineLength(120).
		WithJSONOutput(true).
		WithJSONStream(true).
		WithCheckOnly(true).
		WithWorkers(2).
		WithStopOnError(true).
		Build()

	if cfg.Output.Notation != LALG {
		t.Errorf("Notation = %v, want LALG", cfg.Output.Notation)
	}
	if cfg.Output.MaxLineLength != 120 {
		t.Errorf("MaxLineLength = %d, want 120", cfg.Output.MaxLineLength)
	}
	if !cfg.Output.JSONFormat || !cfg.Output.JSONStream || !cfg.Output.CheckOnly {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.Processing.Workers != 2 || !cfg.Processing.StopOnError {
		t.Errorf("Processing = %+v", cfg.Processing)
	}

	base := NewConfig()
	From(base).WithLogLevel("error")
	if base.Log.Level != "error" {
		t.Errorf("From() did not modify the config in place")
	}
}
