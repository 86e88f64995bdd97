package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// InCheckmate returns true if side is in check and no escape validates.
//
// Escapes are tried in order: a king step to any adjacent square, an
// allied piece capturing the checking piece, an allied piece
// interposing on the line of a sliding attacker, and an en passant
// capture of a checking pawn. Every candidate goes through Validate, so
// the search obeys exactly the rules real moves do.
func InCheckmate(board chess.Board, side chess.Colour, history []chess.Move) bool {
	threat, inCheck := FindCheck(board, side)
	if !inCheck {
		return false
	}

	king, _ := board.KingSquare(side)
	for _, v := range kingVectors {
		if to := king.Add(v[0], v[1]); to.Valid() && IsLegal(board, history, king, to, chess.NoPiece) {
			return false
		}
	}

	targets := []chess.Square{threat}
	attacker := board.At(threat)
	if attacker.Kind.IsSliding() {
		targets = append(targets, squaresBetween(threat, king)...)
	}
	for _, from := range board.Pieces(side) {
		if from == king {
			continue
		}
		for _, to := range targets {
			if IsLegal(board, history, from, to, chess.NoPiece) {
				return false
			}
		}
	}

	if attacker.Kind == chess.Pawn && len(history) > 0 {
		last := &history[len(history)-1]
		if last.To == threat && last.IsDoublePawnStep() {
			passed := threat.Add(side.Forward(), 0)
			pawn := chess.MakeCell(side, chess.Pawn)
			for _, col := range [2]int{-1, 1} {
				from := threat.Add(0, col)
				if from.Valid() && board.At(from) == pawn && IsLegal(board, history, from, passed, chess.NoPiece) {
					return false
				}
			}
		}
	}

	return true
}

// InStalemate returns true if side is not in check but has no legal move.
func InStalemate(board chess.Board, side chess.Colour, history []chess.Move) bool {
	if InCheck(board, side) {
		return false
	}
	return !HasLegalMove(board, side, history)
}
