package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// kingCol is the file the king starts the game on.
const kingCol = 4

// kingHome returns the starting square of the colour's king.
func kingHome(colour chess.Colour) chess.Square {
	return chess.Sq(colour.HomeRow(), kingCol)
}

// rookHome returns the starting square of the rook castling on the
// given wing.
func rookHome(colour chess.Colour, kingside bool) chess.Square {
	if kingside {
		return chess.Sq(colour.HomeRow(), chess.BoardSize-1)
	}
	return chess.Sq(colour.HomeRow(), 0)
}

// castle validates a two-square king move from its home square and
// moves the rook in the resulting position.
//
// Rights are derived from the history: castling is lost once any
// recorded move departs the king's home square or any recorded position
// lacks the rook on its home square.
func (c *candidate) castle(kingside bool) error {
	side := c.piece.Colour
	rookSq := rookHome(side, kingside)
	rook := chess.MakeCell(side, chess.Rook)

	if c.board.At(rookSq) != rook {
		return errors.Illegal("rook must be present at %s for the king to castle", rookSq)
	}

	for i := range c.history {
		h := &c.history[i]
		if h.From == c.from || h.From == rookSq || h.Board.At(rookSq) != rook {
			return errors.Illegal("castling is not allowed if the king or rook has previously moved")
		}
	}

	if sq, blocked := firstObstruction(c.board, c.from, rookSq); blocked {
		return errors.Illegal("castling is blocked by another piece at %s", sq)
	}

	// The king may not start on, pass through or land on an attacked
	// square. Attacks are evaluated with the king lifted off its origin.
	dir := sign(c.to.Col - c.from.Col)
	lifted := c.board.Copy()
	lifted.Set(c.from, chess.Empty)
	for sq := c.from; ; sq = sq.Add(0, dir) {
		if attacker, attacked := attackerOf(&lifted, sq, side.Opposite()); attacked {
			if sq == c.from {
				return errors.Illegal("cannot castle out of check from %s at %s",
					describe(lifted.At(attacker)), attacker)
			}
			return errors.Illegal("cannot move the king through check from %s at %s",
				describe(lifted.At(attacker)), attacker)
		}
		if sq == c.to {
			break
		}
	}

	c.result.Set(rookSq, chess.Empty)
	c.result.Set(c.from.Add(0, dir), rook)
	return nil
}
