package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// pawn validates a pawn advance, capture or en passant capture, and
// applies promotion on the last rank.
func (c *candidate) pawn(promotion chess.Piece) error {
	side := c.piece.Colour
	step := side.Forward()
	rows, cols := c.to.Diff(c.from)
	target := c.board.At(c.to)

	switch {
	case cols == 0 && rows == step:
		if !target.IsEmpty() {
			return errors.Illegal("pawn may only capture on the diagonal")
		}

	case cols == 0 && rows == 2*step:
		if c.from.Row != side.PawnRow() {
			return errors.Illegal("pawn may only advance two squares from its starting rank")
		}
		if err := c.unobstructed(); err != nil {
			return err
		}
		if !target.IsEmpty() {
			return errors.Illegal("pawn may only capture on the diagonal")
		}

	case abs(cols) == 1 && rows == step:
		if target.IsEmpty() && !c.enPassant() {
			return errors.Illegal("pawn may only move diagonally when capturing")
		}

	default:
		return errors.Illegal("pawn may only advance forward or capture diagonally")
	}

	if c.to.Row == side.LastRow() {
		switch {
		case promotion == chess.NoPiece:
			promotion = chess.Queen
		case !promotion.IsPromotion():
			return errors.Illegal("a pawn cannot promote to a %s", lower(promotion))
		}
		c.result.Set(c.to, chess.MakeCell(side, promotion))
	}
	return nil
}

// enPassant reports whether a diagonal step onto an empty square
// captures a pawn that has just advanced two squares past it. On
// success, the captured pawn is removed from the resulting position.
func (c *candidate) enPassant() bool {
	if len(c.history) == 0 {
		return false
	}
	last := &c.history[len(c.history)-1]
	opponentPawn := chess.MakeCell(c.piece.Colour.Opposite(), chess.Pawn)
	if last.Piece != opponentPawn || !last.IsDoublePawnStep() {
		return false
	}
	if c.to.Col != last.To.Col || c.to.Row != last.To.Row+c.piece.Colour.Forward() {
		return false
	}
	if c.board.At(last.To) != opponentPawn {
		return false
	}

	c.captured = opponentPawn
	c.result.Set(last.To, chess.Empty)
	return true
}
