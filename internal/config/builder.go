package config

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// From starts the builder from an existing configuration, which is
// modified in place.
func From(cfg *Config) *ConfigBuilder {
	return &ConfigBuilder{cfg: cfg}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length int) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithNotation sets the movetext notation.
func (b *ConfigBuilder) WithNotation(n Notation) *ConfigBuilder {
	b.cfg.Output.Notation = n
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithJSONStream writes JSON games one document at a time.
func (b *ConfigBuilder) WithJSONStream(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONStream = enabled
	return b
}

// WithCheckOnly disables output of parsed games.
func (b *ConfigBuilder) WithCheckOnly(enabled bool) *ConfigBuilder {
	b.cfg.Output.CheckOnly = enabled
	return b
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithLogFormat sets the log encoding.
func (b *ConfigBuilder) WithLogFormat(format string) *ConfigBuilder {
	b.cfg.Log.Format = format
	return b
}

// WithWorkers sets the number of parallel workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Processing.Workers = n
	return b
}

// WithStopOnError ends processing at the first failed game.
func (b *ConfigBuilder) WithStopOnError(enabled bool) *ConfigBuilder {
	b.cfg.Processing.StopOnError = enabled
	return b
}
