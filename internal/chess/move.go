package chess

// Move is the historical record of one ply. Board holds the position
// immediately after the move and belongs to this record alone.
type Move struct {
	// The piece that moved, as it stood on From.
	Piece Cell

	// Source and destination squares.
	From Square
	To   Square

	// The piece captured (Empty if no capture). For en passant this is
	// the pawn removed from beside the destination.
	Captured Cell

	// Position after the move.
	Board Board

	// Numeric Annotation Glyph, 0 when the move is unannotated.
	NAG int
}

// IsCapture returns true if this move is a capture.
func (m *Move) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// IsCastle returns true if this move is a castling move.
func (m *Move) IsCastle() bool {
	_, cols := m.To.Diff(m.From)
	return m.Piece.Kind == King && (cols == 2 || cols == -2)
}

// IsKingside returns true for a castling move towards the h-file.
func (m *Move) IsKingside() bool {
	return m.IsCastle() && m.To.Col > m.From.Col
}

// Side returns the colour that made the move.
func (m *Move) Side() Colour {
	return m.Piece.Colour
}

// Promotion returns the piece a pawn promoted to, if any.
func (m *Move) Promotion() (Piece, bool) {
	if m.Piece.Kind != Pawn {
		return NoPiece, false
	}
	arrived := m.Board.At(m.To)
	if arrived.Kind == Pawn || arrived.IsEmpty() {
		return NoPiece, false
	}
	return arrived.Kind, true
}

// IsDoublePawnStep returns true if a pawn advanced two squares.
func (m *Move) IsDoublePawnStep() bool {
	rows, cols := m.To.Diff(m.From)
	return m.Piece.Kind == Pawn && cols == 0 && (rows == 2 || rows == -2)
}
