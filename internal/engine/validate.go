// Package engine provides chess move validation and position analysis.
//
// Every function is pure: boards are passed and returned by value and
// the move history is only read. Illegal moves are reported as
// *errors.IllegalMoveError values, never as panics.
package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Outcome is the result of a successfully validated move.
type Outcome struct {
	// Board is the position after the move.
	Board chess.Board

	// Captured is the piece removed by the move, or chess.Empty.
	Captured chess.Cell
}

// candidate carries one move through the validation steps.
type candidate struct {
	board    *chess.Board // position before the move, never modified
	history  []chess.Move
	piece    chess.Cell
	from, to chess.Square
	result   chess.Board
	captured chess.Cell
}

// Validate decides whether moving the piece on from to to is legal in
// board, given the moves that led to it. promotion selects the piece a
// pawn reaching the last rank becomes; chess.NoPiece means a queen. It
// is ignored for every other move.
func Validate(board chess.Board, history []chess.Move, from, to chess.Square, promotion chess.Piece) (Outcome, error) {
	piece, ok := board.Get(from)
	if !ok {
		return Outcome{}, errors.Illegal("square %v is off the board", from)
	}
	target, ok := board.Get(to)
	if !ok {
		return Outcome{}, errors.Illegal("square %v is off the board", to)
	}
	if piece.IsEmpty() {
		return Outcome{}, errors.Illegal("there is no piece on %s", from)
	}
	side := piece.Colour

	if target.Is(side) {
		return Outcome{}, errors.Illegal("square %s is occupied by your own piece", to)
	}

	c := &candidate{
		board:    &board,
		history:  history,
		piece:    piece,
		from:     from,
		to:       to,
		result:   board.Copy(),
		captured: target,
	}
	c.result.Set(from, chess.Empty)
	c.result.Set(to, piece)

	var err error
	switch piece.Kind {
	case chess.King:
		err = c.king()
	case chess.Rook:
		err = c.rook()
	case chess.Bishop:
		err = c.bishop()
	case chess.Queen:
		err = c.queen()
	case chess.Knight:
		err = c.knight()
	case chess.Pawn:
		err = c.pawn(promotion)
	}
	if err != nil {
		return Outcome{}, err
	}

	if threat, inCheck := FindCheck(c.result, side); inCheck {
		return Outcome{}, errors.Illegal("this move would place the king in check from %s at %s",
			describe(c.result.At(threat)), threat)
	}

	return Outcome{Board: c.result, Captured: c.captured}, nil
}

// MakeMove validates the move and returns its history record.
func MakeMove(board chess.Board, history []chess.Move, from, to chess.Square, promotion chess.Piece) (chess.Move, error) {
	out, err := Validate(board, history, from, to, promotion)
	if err != nil {
		return chess.Move{}, err
	}
	return chess.Move{
		Piece:    board.At(from),
		From:     from,
		To:       to,
		Captured: out.Captured,
		Board:    out.Board,
	}, nil
}

// IsLegal reports whether Validate accepts the move.
func IsLegal(board chess.Board, history []chess.Move, from, to chess.Square, promotion chess.Piece) bool {
	_, err := Validate(board, history, from, to, promotion)
	return err == nil
}

// king validates a one-square king step or a castling move.
func (c *candidate) king() error {
	rows, cols := c.to.Diff(c.from)
	if abs(rows) <= 1 && abs(cols) <= 1 {
		return nil
	}
	if rows == 0 && abs(cols) == 2 && c.from == kingHome(c.piece.Colour) {
		return c.castle(cols > 0)
	}
	return errors.Illegal("the king may move one square in any direction, or two squares when castling")
}

func (c *candidate) rook() error {
	if !isStraight(c.from, c.to) {
		return errors.Illegal("a rook may only move horizontally or vertically")
	}
	return c.unobstructed()
}

func (c *candidate) bishop() error {
	if !isDiagonal(c.from, c.to) {
		return errors.Illegal("a bishop may only move diagonally")
	}
	return c.unobstructed()
}

func (c *candidate) queen() error {
	if !isStraight(c.from, c.to) && !isDiagonal(c.from, c.to) {
		return errors.Illegal("a queen may only move horizontally, vertically or diagonally")
	}
	return c.unobstructed()
}

func (c *candidate) knight() error {
	rows, cols := c.to.Diff(c.from)
	if !(abs(rows) == 2 && abs(cols) == 1) && !(abs(rows) == 1 && abs(cols) == 2) {
		return errors.Illegal("invalid target for a knight")
	}
	return nil
}

// unobstructed checks the squares between from and to in the position
// before the move.
func (c *candidate) unobstructed() error {
	if sq, blocked := firstObstruction(c.board, c.from, c.to); blocked {
		return errors.Illegal("movement is blocked by another piece at %s", sq)
	}
	return nil
}

// describe names a cell for reasons, e.g. "black queen".
func describe(cell chess.Cell) string {
	return lower(cell.Colour) + " " + lower(cell.Kind)
}

func lower(s fmt.Stringer) string {
	return strings.ToLower(s.String())
}
