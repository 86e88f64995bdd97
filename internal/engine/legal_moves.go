package engine

import (
	"sort"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// HasLegalMove returns true if side has at least one legal move.
func HasLegalMove(board chess.Board, side chess.Colour, history []chess.Move) bool {
	for _, from := range board.Pieces(side) {
		for _, to := range candidateTargets(&board, from) {
			if IsLegal(board, history, from, to, chess.NoPiece) {
				return true
			}
		}
	}
	return false
}

// LegalMoves returns the destinations the piece on from can legally
// reach, ordered by square. It returns nil for an empty square.
func LegalMoves(board chess.Board, history []chess.Move, from chess.Square) []chess.Square {
	cell, ok := board.Get(from)
	if !ok || cell.IsEmpty() {
		return nil
	}

	var moves []chess.Square
	for _, to := range candidateTargets(&board, from) {
		if IsLegal(board, history, from, to, chess.NoPiece) {
			moves = append(moves, to)
		}
	}
	sort.Slice(moves, func(i, j int) bool { return moves[i].Compare(moves[j]) < 0 })
	return moves
}

// candidateTargets enumerates pseudo-legal destinations for the piece on
// from. Sliding pieces stop at the first occupied square, which is
// included when it holds an enemy. The result may still contain moves
// Validate rejects.
func candidateTargets(board *chess.Board, from chess.Square) []chess.Square {
	cell := board.At(from)
	var targets []chess.Square

	add := func(to chess.Square) {
		if to.Valid() && !board.At(to).Is(cell.Colour) {
			targets = append(targets, to)
		}
	}
	slide := func(vectors [][2]int) {
		for _, v := range vectors {
			for to := from.Add(v[0], v[1]); to.Valid(); to = to.Add(v[0], v[1]) {
				add(to)
				if !board.At(to).IsEmpty() {
					break
				}
			}
		}
	}

	switch cell.Kind {
	case chess.Pawn:
		step := cell.Colour.Forward()
		add(from.Add(step, 0))
		add(from.Add(2*step, 0))
		add(from.Add(step, -1))
		add(from.Add(step, 1))
	case chess.Knight:
		for _, v := range knightVectors {
			add(from.Add(v[0], v[1]))
		}
	case chess.King:
		for _, v := range kingVectors {
			add(from.Add(v[0], v[1]))
		}
		add(from.Add(0, 2))
		add(from.Add(0, -2))
	case chess.Rook:
		slide(orthogonalVectors[:])
	case chess.Bishop:
		slide(diagonalVectors[:])
	case chess.Queen:
		slide(orthogonalVectors[:])
		slide(diagonalVectors[:])
	}
	return targets
}
