// Package san converts between moves and Standard Algebraic Notation.
//
// Both directions lean on engine.Validate: disambiguation on output and
// candidate selection on input re-derive the alternative legal moves
// instead of approximating them.
package san

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Castling notations.
const (
	Kingside  = "O-O"
	Queenside = "O-O-O"
)

// Encode renders m as SAN. before is the position m was played from and
// history holds the moves that led to it.
func Encode(before chess.Board, history []chess.Move, m chess.Move) string {
	var sb strings.Builder

	switch {
	case m.IsCastle() && m.IsKingside():
		sb.WriteString(Kingside)
	case m.IsCastle():
		sb.WriteString(Queenside)
	default:
		writeMove(&sb, before, history, m)
	}

	sb.WriteString(checkSuffix(history, m))
	sb.WriteString(GlyphFromNAG(m.NAG))
	return sb.String()
}

// writeMove writes the piece letter, disambiguation, capture marker,
// destination and promotion of a non-castling move.
func writeMove(sb *strings.Builder, before chess.Board, history []chess.Move, m chess.Move) {
	promo, promoted := m.Promotion()

	if m.Piece.Kind != chess.Pawn {
		sb.WriteByte(m.Piece.Kind.Letter())
		if m.Piece.Kind != chess.King {
			sb.WriteString(disambiguation(before, history, m, promo))
		}
	}

	if m.IsCapture() {
		if m.Piece.Kind == chess.Pawn {
			sb.WriteByte(m.From.File())
		}
		sb.WriteByte('x')
	}

	sb.WriteString(m.To.Label())

	if promoted {
		sb.WriteByte('=')
		sb.WriteByte(promo.Letter())
	}
}

// disambiguation returns the origin qualifier needed to tell m apart
// from other identical pieces that could legally reach the same square:
// the file when it is unique among them, otherwise the rank when that
// is unique, otherwise the full origin square.
func disambiguation(before chess.Board, history []chess.Move, m chess.Move, promo chess.Piece) string {
	var rivals []chess.Square
	for _, from := range before.Find(m.Piece) {
		if from != m.From && engine.IsLegal(before, history, from, m.To, promo) {
			rivals = append(rivals, from)
		}
	}
	if len(rivals) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, r := range rivals {
		if r.Col == m.From.Col {
			sameFile = true
		}
		if r.Row == m.From.Row {
			sameRank = true
		}
	}
	switch {
	case !sameFile:
		return string(m.From.File())
	case !sameRank:
		return string(m.From.RankChar())
	default:
		return m.From.Label()
	}
}

// checkSuffix returns "#" when m mates, "+" when it checks, else "".
func checkSuffix(history []chess.Move, m chess.Move) string {
	opponent := m.Side().Opposite()
	if _, inCheck := engine.FindCheck(m.Board, opponent); !inCheck {
		return ""
	}
	after := append(history[:len(history):len(history)], m)
	if engine.InCheckmate(m.Board, opponent, after) {
		return "#"
	}
	return "+"
}
