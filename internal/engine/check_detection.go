package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// FindCheck returns the square of a piece giving check to side's king.
// When several pieces give check only the first found is reported:
// knights, then pawns, then the enemy king, then rooks and queens along
// ranks and files, then bishops and queens along diagonals.
//
// A board without a king of the given side is a programming error and
// panics.
func FindCheck(board chess.Board, side chess.Colour) (chess.Square, bool) {
	king, ok := board.KingSquare(side)
	if !ok {
		panic(fmt.Sprintf("engine: no %s king on the board", lower(side)))
	}
	return attackerOf(&board, king, side.Opposite())
}

// InCheck reports whether side's king is attacked.
func InCheck(board chess.Board, side chess.Colour) bool {
	_, ok := FindCheck(board, side)
	return ok
}

// IsSquareAttacked reports whether any piece of colour by attacks sq.
// The square itself need not be occupied.
func IsSquareAttacked(board chess.Board, sq chess.Square, by chess.Colour) bool {
	_, ok := attackerOf(&board, sq, by)
	return ok
}

// attackerOf returns the first piece of colour by that attacks sq.
func attackerOf(board *chess.Board, sq chess.Square, by chess.Colour) (chess.Square, bool) {
	knight := chess.MakeCell(by, chess.Knight)
	for _, v := range knightVectors {
		if from := sq.Add(v[0], v[1]); from.Valid() && board.At(from) == knight {
			return from, true
		}
	}

	// An attacking pawn stands one row behind sq from its own point of view.
	pawn := chess.MakeCell(by, chess.Pawn)
	row := -by.Forward()
	for _, col := range [2]int{1, -1} {
		if from := sq.Add(row, col); from.Valid() && board.At(from) == pawn {
			return from, true
		}
	}

	king := chess.MakeCell(by, chess.King)
	for _, v := range kingVectors {
		if from := sq.Add(v[0], v[1]); from.Valid() && board.At(from) == king {
			return from, true
		}
	}

	for _, v := range orthogonalVectors {
		if from, ok := slidingAttacker(board, sq, v, by, chess.Rook); ok {
			return from, true
		}
	}
	for _, v := range diagonalVectors {
		if from, ok := slidingAttacker(board, sq, v, by, chess.Bishop); ok {
			return from, true
		}
	}

	return chess.Square{}, false
}

// slidingAttacker walks from sq along dir to the first occupied square
// and reports it if it holds a piece of colour by that moves like kind
// or a queen.
func slidingAttacker(board *chess.Board, sq chess.Square, dir [2]int, by chess.Colour, kind chess.Piece) (chess.Square, bool) {
	for from := sq.Add(dir[0], dir[1]); from.Valid(); from = from.Add(dir[0], dir[1]) {
		cell := board.At(from)
		if cell.IsEmpty() {
			continue
		}
		if cell.Colour == by && (cell.Kind == kind || cell.Kind == chess.Queen) {
			return from, true
		}
		break
	}
	return chess.Square{}, false
}
