package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialPlacement is the FEN piece placement of the standard starting position.
const InitialPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// ParsePlacement creates a board from the piece placement field of a FEN
// string. Any fields after the first are ignored: castling rights and
// the en passant square derive from a game's move history instead.
func ParsePlacement(fen string) (chess.Board, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return chess.Board{}, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != chess.BoardSize {
		return chess.Board{}, fmt.Errorf("%d ranks in placement %q: %w", len(ranks), fields[0], errors.ErrInvalidFEN)
	}

	for row, rank := range ranks {
		col := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				cell, ok := cellFromFENChar(c)
				if !ok {
					return chess.Board{}, fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if col >= chess.BoardSize {
					return chess.Board{}, fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
				}
				board.Set(chess.Sq(row, col), cell)
				col++
			}
		}
		if col != chess.BoardSize {
			return chess.Board{}, fmt.Errorf("rank %q does not cover %d files: %w", rank, chess.BoardSize, errors.ErrInvalidFEN)
		}
	}
	return board, nil
}

// MustParsePlacement is like ParsePlacement but panics on error.
func MustParsePlacement(fen string) chess.Board {
	board, err := ParsePlacement(fen)
	if err != nil {
		panic(err)
	}
	return board
}

// Placement returns the FEN piece placement field for the board.
func Placement(board chess.Board) string {
	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			cell := board.At(chess.Sq(row, col))
			if cell.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(cell.Symbol())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// cellFromFENChar converts a FEN piece letter to a cell. Uppercase
// letters are White.
func cellFromFENChar(c byte) (chess.Cell, bool) {
	colour := chess.White
	if c >= 'a' && c <= 'z' {
		colour = chess.Black
		c -= 'a' - 'A'
	}
	piece := chess.PieceFromLetter(c)
	if piece == chess.NoPiece {
		return chess.Empty, false
	}
	return chess.MakeCell(colour, piece), true
}
