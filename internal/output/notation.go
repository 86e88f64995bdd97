package output

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

// formatMove formats a move in the specified notation.
func formatMove(mt MoveText, notation config.Notation) string {
	switch notation {
	case config.LALG:
		return formatLongAlgebraic(mt, false)
	case config.HALG:
		return formatLongAlgebraic(mt, true)
	case config.UCI:
		return formatUCI(mt)
	default:
		return mt.SAN
	}
}

// formatLongAlgebraic writes source and destination squares, keeping
// the castling symbols and the promotion suffix of SAN.
func formatLongAlgebraic(mt MoveText, hyphenated bool) string {
	m := mt.Move
	if m.IsCastle() {
		if m.IsKingside() {
			return "O-O"
		}
		return "O-O-O"
	}

	var sb strings.Builder
	sb.WriteString(m.From.Label())
	if hyphenated {
		if m.IsCapture() {
			sb.WriteByte('x')
		} else {
			sb.WriteByte('-')
		}
	}
	sb.WriteString(m.To.Label())

	if p, ok := m.Promotion(); ok {
		sb.WriteByte('=')
		sb.WriteByte(p.Letter())
	}
	return sb.String()
}

// formatUCI formats a move in UCI notation. Castling is the king's own
// two-square move.
func formatUCI(mt MoveText) string {
	m := mt.Move
	s := m.From.Label() + m.To.Label()
	if p, ok := m.Promotion(); ok {
		s += strings.ToLower(string(p.Letter()))
	}
	return s
}
