package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsDeadPosition returns true if neither side can possibly deliver mate
// with the material left on the board:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (bishops on the same square colour)
func IsDeadPosition(board chess.Board) bool {
	var whitePieces, blackPieces []chess.Piece
	var whiteBishopOnLight, blackBishopOnLight bool

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			cell := board.At(sq)
			if cell.IsEmpty() || cell.Kind == chess.King {
				continue
			}

			// Any pawn, rook, or queen means sufficient material
			if cell.Kind == chess.Pawn || cell.Kind == chess.Rook || cell.Kind == chess.Queen {
				return false
			}

			if cell.Colour == chess.White {
				whitePieces = append(whitePieces, cell.Kind)
				if cell.Kind == chess.Bishop {
					whiteBishopOnLight = sq.Light()
				}
			} else {
				blackPieces = append(blackPieces, cell.Kind)
				if cell.Kind == chess.Bishop {
					blackBishopOnLight = sq.Light()
				}
			}
		}
	}

	switch {
	case len(whitePieces) == 0 && len(blackPieces) == 0:
		return true
	case len(whitePieces) == 0 && len(blackPieces) == 1:
		return true
	case len(blackPieces) == 0 && len(whitePieces) == 1:
		return true
	case len(whitePieces) == 1 && len(blackPieces) == 1:
		return whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop &&
			whiteBishopOnLight == blackBishopOnLight
	}
	return false
}
