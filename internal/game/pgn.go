package game

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/san"
)

// ExportPGN returns the whole game, every recorded move included, as
// PGN text.
func (g *Game) ExportPGN() string {
	return output.ExportPGN(g)
}

// PGNTags implements output.Record.
func (g *Game) PGNTags() *chess.Tags {
	return g.Tags
}

// PGNMoves implements output.Record.
func (g *Game) PGNMoves() []output.MoveText {
	moves := make([]output.MoveText, len(g.moves))
	for i, m := range g.moves {
		moves[i] = output.MoveText{
			SAN:  san.Encode(g.boardAt(i), g.moves[:i], m),
			Move: m,
		}
	}
	return moves
}

// PGNResult implements output.Record. A result forced or declared at the
// final ply wins; otherwise a decided Result tag is kept.
func (g *Game) PGNResult() chess.Result {
	if r := g.FinalResult(); r.IsDecided() {
		return r
	}
	r, _ := chess.ParseResult(g.Tags.Get("Result"))
	return r
}
