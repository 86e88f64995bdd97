package output

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	Tags           map[string]string `json:"tags"`
	Moves          []JSONMove        `json:"moves,omitempty"`
	Result         string            `json:"result"`
	PlyCount       int               `json:"plyCount"`
	FinalPlacement string            `json:"finalPlacement"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	NAG        int    `json:"nag,omitempty"`
	Placement  string `json:"placement"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a game record to JSON format. The Result tag is
// reported as the exported result.
func GameToJSON(rec Record) *JSONGame {
	result := rec.PGNResult()
	moves := rec.PGNMoves()

	jg := &JSONGame{
		Tags:           copyTags(rec.PGNTags(), result),
		Moves:          make([]JSONMove, 0, len(moves)),
		Result:         result.String(),
		PlyCount:       len(moves),
		FinalPlacement: engine.InitialPlacement,
	}
	for i, mt := range moves {
		jg.Moves = append(jg.Moves, convertMove(i, mt))
	}
	if n := len(moves); n > 0 {
		jg.FinalPlacement = jg.Moves[n-1].Placement
	}
	return jg
}

func copyTags(tags *chess.Tags, result chess.Result) map[string]string {
	out := make(map[string]string, tags.Len()+1)
	for _, tag := range tags.All() {
		out[tag.Name] = tag.Value
	}
	out["Result"] = result.String()
	return out
}

func convertMove(ply int, mt MoveText) JSONMove {
	m := mt.Move
	jm := JSONMove{
		MoveNumber: ply/2 + 1,
		Color:      lower(m.Side().String()),
		SAN:        mt.SAN,
		UCI:        formatUCI(mt),
		From:       m.From.Label(),
		To:         m.To.Label(),
		Piece:      lower(m.Piece.Kind.String()),
		NAG:        m.NAG,
		Placement:  engine.Placement(m.Board),
	}
	if m.IsCapture() {
		jm.Captured = lower(m.Captured.Kind.String())
	}
	if p, ok := m.Promotion(); ok {
		jm.Promotion = lower(p.String())
	}
	return jm
}

func lower(s string) string {
	return strings.ToLower(s)
}
