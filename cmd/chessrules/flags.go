// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

// options holds the parsed command line.
type options struct {
	configFile  string
	outputFile  string
	checkOnly   bool
	lineLength  int
	workers     int
	stopOnError bool
	logLevel    string
	logFormat   string
	jsonOutput  bool
	jsonStream  bool
	notation    string
	version     bool

	// set records the flags given explicitly, so only those override
	// values read from the configuration file.
	set   map[string]bool
	files []string
}

// newFlagSet binds the command's flags to opts.
func newFlagSet(opts *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("chessrules", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configFile, "config", "", "YAML configuration file")
	fs.StringVar(&opts.outputFile, "o", "", "Output file (default: stdout)")
	fs.BoolVar(&opts.checkOnly, "check", false, "Check games without writing them")
	fs.IntVar(&opts.lineLength, "w", config.DefaultMaxLineLength, "Maximum line length")
	fs.IntVar(&opts.workers, "j", 0, "Number of inputs checked in parallel (default: number of CPUs)")
	fs.BoolVar(&opts.stopOnError, "stop", false, "Stop at the first game that fails")
	fs.StringVar(&opts.logLevel, "loglevel", "info", "Log level: debug, info, warn, error")
	fs.StringVar(&opts.logFormat, "logformat", config.LogConsole, "Log encoding: console, json")
	fs.BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	fs.BoolVar(&opts.jsonStream, "jsonstream", false, "Write one JSON document per game (implies -json)")
	fs.StringVar(&opts.notation, "notation", "san", "Move notation: san, lalg, halg, uci")
	fs.BoolVar(&opts.version, "version", false, "Show version")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "chessrules version %s\n", programVersion)
		fmt.Fprintf(stderr, "Usage: chessrules [options] [file.pgn ...]\n\n")
		fmt.Fprintf(stderr, "Checks every game against the rules of chess and writes the\n")
		fmt.Fprintf(stderr, "games that pass. Reads standard input when no files are given.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
	}
	return fs
}

// parseFlags parses args into options.
func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{set: make(map[string]bool)}
	fs := newFlagSet(opts, stderr)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	opts.files = fs.Args()
	return opts, nil
}

// loadConfig reads the configuration file, if any, and applies the
// flags given on the command line over it.
func loadConfig(opts *options) (*config.Config, error) {
	cfg := config.NewConfig()
	if opts.configFile != "" {
		var err error
		if cfg, err = config.Load(opts.configFile); err != nil {
			return nil, err
		}
	}
	if err := applyFlags(cfg, opts); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// applyFlags copies explicitly set command-line flags to the configuration.
func applyFlags(cfg *config.Config, opts *options) error {
	b := config.From(cfg)
	if opts.set["w"] {
		b.WithMaxLineLength(opts.lineLength)
	}
	if opts.set["check"] {
		b.WithCheckOnly(opts.checkOnly)
	}
	if opts.set["j"] {
		b.WithWorkers(opts.workers)
	}
	if opts.set["stop"] {
		b.WithStopOnError(opts.stopOnError)
	}
	if opts.set["loglevel"] {
		b.WithLogLevel(opts.logLevel)
	}
	if opts.set["logformat"] {
		b.WithLogFormat(opts.logFormat)
	}
	if opts.set["json"] {
		b.WithJSONOutput(opts.jsonOutput)
	}
	if opts.set["jsonstream"] {
		b.WithJSONStream(opts.jsonStream)
		if opts.jsonStream {
			b.WithJSONOutput(true)
		}
	}
	if opts.set["notation"] {
		n, err := config.ParseNotation(opts.notation)
		if err != nil {
			return err
		}
		b.WithNotation(n)
	}
	return nil
}
