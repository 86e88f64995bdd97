// chessrules checks chess games in PGN format against the rules of chess
// and re-exports the games that pass.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

const programVersion = "0.1.0"

// Exit statuses.
const (
	exitOK     = 0
	exitFailed = 1 // some game or input failed
	exitUsage  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns its exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err == flag.ErrHelp {
		return exitOK
	}
	if err != nil {
		return exitUsage
	}

	if opts.version {
		fmt.Fprintf(stdout, "chessrules version %s\n", programVersion)
		return exitOK
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	logger, err := newLogger(cfg.Log, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	defer func() { _ = logger.Sync() }()

	out := stdout
	if opts.outputFile != "" && !cfg.Output.CheckOnly {
		file, err := os.Create(opts.outputFile)
		if err != nil {
			logger.Error("cannot create output file", zap.String("file", opts.outputFile), zap.Error(err))
			return exitUsage
		}
		defer file.Close()
		out = file
	}

	ctx := &ProcessingContext{cfg: cfg, stdin: stdin, logger: logger}
	total, failed, err := processAllInputs(ctx, opts.files, out)
	if err != nil {
		logger.Error("cannot write output", zap.Error(err))
		return exitFailed
	}

	logger.Info("games checked", zap.Int("games", total), zap.Int("failed", failed))
	if failed > 0 {
		return exitFailed
	}
	return exitOK
}
