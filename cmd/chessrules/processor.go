// processor.go - Input processing and game output
package main

import (
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/parser"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// stdinName names standard input in work items and log fields.
const stdinName = "-"

// ProcessingContext holds the state shared by every input.
type ProcessingContext struct {
	cfg    *config.Config
	stdin  io.Reader
	logger *zap.Logger
}

// processInput parses every game of one input.
func (ctx *ProcessingContext) processInput(item worker.WorkItem) worker.ProcessResult {
	result := worker.ProcessResult{Index: item.Index, Name: item.Name}

	var r io.Reader = ctx.stdin
	if item.Name != stdinName {
		file, err := os.Open(item.Name)
		if err != nil {
			result.Err = err
			return result
		}
		defer file.Close()
		r = file
	}

	p := parser.NewParser(r)
	p.File = item.Name
	if ctx.cfg.Processing.StopOnError {
		games, err := p.ParseAllGames()
		result.Games = games
		if err != nil {
			result.Failures = append(result.Failures, err)
		}
	} else {
		for {
			g, err := p.ParseGame()
			if err == io.EOF {
				break
			}
			if err != nil {
				result.Failures = append(result.Failures, err)
				continue
			}
			ctx.logger.Debug("game accepted",
				zap.String("file", item.Name),
				zap.Int("game", p.GameNumber()),
				zap.Int("plies", g.Len()))
			result.Games = append(result.Games, g)
		}
	}
	ctx.logger.Debug("input checked",
		zap.String("file", item.Name),
		zap.Int("games", len(result.Games)),
		zap.Int("failed", len(result.Failures)))
	return result
}

// workItems lists the inputs named on the command line.
func workItems(files []string) []worker.WorkItem {
	if len(files) == 0 {
		return []worker.WorkItem{{Index: 0, Name: stdinName}}
	}
	items := make([]worker.WorkItem, len(files))
	for i, name := range files {
		items[i] = worker.WorkItem{Index: i, Name: name}
	}
	return items
}

// processAllInputs checks every input in parallel and writes the games
// that passed, in input order. It returns the number of games checked
// and the number that failed; an unreadable input counts as one failure.
func processAllInputs(ctx *ProcessingContext, files []string, w io.Writer) (total, failed int, err error) {
	pool := worker.NewPool(ctx.processInput,
		worker.WithWorkers(ctx.cfg.Processing.Workers),
		worker.WithBufferSize(ctx.cfg.Processing.Workers*2))
	results := pool.Run(workItems(files), ctx.cfg.Processing.StopOnError)

	var gw output.GameWriter
	if !ctx.cfg.Output.CheckOnly {
		gw = output.NewGameWriter(w, &ctx.cfg.Output)
	}

	for _, r := range results {
		if r.Err != nil {
			ctx.logger.Error("cannot read input", zap.String("file", r.Name), zap.Error(r.Err))
			failed++
			continue
		}
		for _, ferr := range r.Failures {
			logFailure(ctx.logger, r.Name, ferr)
		}
		total += len(r.Games) + len(r.Failures)
		failed += len(r.Failures)

		if gw == nil {
			continue
		}
		for _, g := range r.Games {
			if err := gw.WriteGame(g); err != nil {
				return total, failed, err
			}
		}
	}

	if gw != nil {
		if err := gw.Close(); err != nil {
			return total, failed, err
		}
	}
	return total, failed, nil
}
