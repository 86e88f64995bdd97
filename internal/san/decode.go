package san

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// coordinate is a file and/or rank read from move text. Zero marks a
// missing component.
type coordinate struct {
	file, rank byte
}

func (c coordinate) complete() bool {
	return c.file != 0 && c.rank != 0
}

// isCol returns true if c is a valid column (file) character.
func isCol(c byte) bool {
	return c >= chess.ColBase && c <= chess.LastCol
}

// isRank returns true if c is a valid rank character.
func isRank(c byte) bool {
	return c >= chess.RankBase && c <= chess.LastRank
}

// isCapture returns true if c is a capture or separator character.
func isCapture(c byte) bool {
	return c == 'x' || c == 'X' || c == ':' || c == '-'
}

// isCheck returns true if c is a check indicator.
func isCheck(c byte) bool {
	return c == '+' || c == '#'
}

// Parse resolves SAN text against a position. The side to move follows
// from the length of history. Exactly one piece must be able to play the
// move legally.
func Parse(board chess.Board, history []chess.Move, text string) (chess.Move, error) {
	side := chess.White
	if len(history)%2 == 1 {
		side = chess.Black
	}

	body, nag := splitGlyph(strings.TrimSpace(text))
	for len(body) > 0 && isCheck(body[len(body)-1]) {
		body = body[:len(body)-1]
	}

	var m chess.Move
	var err error
	if kingside, ok := castling(body); ok {
		m, err = parseCastle(board, history, side, kingside, text)
	} else {
		m, err = parseMove(board, history, side, body, text)
	}
	if err != nil {
		return chess.Move{}, err
	}
	m.NAG = nag
	return m, nil
}

// castling recognises O-O and O-O-O, written with letters or zeros.
func castling(body string) (kingside, ok bool) {
	switch body {
	case "O-O", "0-0", "o-o":
		return true, true
	case "O-O-O", "0-0-0", "o-o-o":
		return false, true
	}
	return false, false
}

func parseCastle(board chess.Board, history []chess.Move, side chess.Colour, kingside bool, text string) (chess.Move, error) {
	from := chess.Sq(side.HomeRow(), 4)
	to := from.Add(0, -2)
	if kingside {
		to = from.Add(0, 2)
	}
	if board.At(from) != chess.MakeCell(side, chess.King) {
		return chess.Move{}, errors.Wrapf(errors.ErrNoMatchingPiece, "%q", text)
	}
	m, err := engine.MakeMove(board, history, from, to, chess.NoPiece)
	if err != nil {
		return chess.Move{}, errors.Wrapf(errors.ErrNoMatchingPiece, "%q: %v", text, err)
	}
	return m, nil
}

func parseMove(board chess.Board, history []chess.Move, side chess.Colour, body, text string) (chess.Move, error) {
	piece := chess.Pawn
	pos := 0
	if pos < len(body) {
		if p := chess.PieceFromLetter(body[pos]); p != chess.NoPiece {
			piece = p
			pos++
		}
	}

	var coords []coordinate
	promotion := chess.NoPiece
	for ; pos < len(body); pos++ {
		c := body[pos]
		switch {
		case isCol(c):
			coords = append(coords, coordinate{file: c})
		case isRank(c):
			if n := len(coords); n > 0 && coords[n-1].rank == 0 {
				coords[n-1].rank = c
			} else {
				coords = append(coords, coordinate{rank: c})
			}
		case isCapture(c):
		case c == '=':
			if pos+1 >= len(body) {
				return chess.Move{}, errors.Wrapf(errors.ErrParseFailure, "%q: missing promotion piece", text)
			}
		case chess.PieceFromLetter(c) != chess.NoPiece && len(coords) > 0:
			promotion = chess.PieceFromLetter(c)
		default:
			return chess.Move{}, errors.Wrapf(errors.ErrParseFailure, "%q: unexpected character %q", text, c)
		}
	}

	if len(coords) == 0 || !coords[len(coords)-1].complete() {
		return chess.Move{}, errors.Wrapf(errors.ErrMissingDestination, "%q", text)
	}
	dest := coords[len(coords)-1]
	to := chess.FromFileRank(dest.file, dest.rank)

	var hint coordinate
	for _, c := range coords[:len(coords)-1] {
		if c.file != 0 {
			hint.file = c.file
		}
		if c.rank != 0 {
			hint.rank = c.rank
		}
	}

	var found []chess.Move
	for _, from := range board.Find(chess.MakeCell(side, piece)) {
		if hint.file != 0 && from.File() != hint.file {
			continue
		}
		if hint.rank != 0 && from.RankChar() != hint.rank {
			continue
		}
		if m, err := engine.MakeMove(board, history, from, to, promotion); err == nil {
			found = append(found, m)
		}
	}

	switch len(found) {
	case 0:
		return chess.Move{}, errors.Wrapf(errors.ErrNoMatchingPiece, "%q", text)
	case 1:
		return found[0], nil
	}
	return chess.Move{}, errors.Wrapf(errors.ErrAmbiguousMove, "%q matches %d pieces", text, len(found))
}
