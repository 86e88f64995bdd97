package chess

// Board is an 8x8 grid of cells. It is a value type: assigning or
// passing a Board copies every cell, so two board states never share
// storage.
type Board [BoardSize][BoardSize]Cell

// NewBoard creates a new empty board.
func NewBoard() Board {
	return Board{}
}

// NewInitialBoard returns the standard chess starting position.
func NewInitialBoard() Board {
	var b Board
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b[White.HomeRow()][col] = W(backRank[col])
		b[White.PawnRow()][col] = W(Pawn)
		b[Black.PawnRow()][col] = B(Pawn)
		b[Black.HomeRow()][col] = B(backRank[col])
	}
}

// Get returns the cell at sq. ok is false when sq is off the board.
func (b *Board) Get(sq Square) (cell Cell, ok bool) {
	if !sq.Valid() {
		return Empty, false
	}
	return b[sq.Row][sq.Col], true
}

// At returns the cell at sq, or Empty when sq is off the board.
func (b *Board) At(sq Square) Cell {
	c, _ := b.Get(sq)
	return c
}

// Set places a cell at sq and returns the previous content.
// ok is false, and the board untouched, when sq is off the board.
func (b *Board) Set(sq Square, cell Cell) (prev Cell, ok bool) {
	if !sq.Valid() {
		return Empty, false
	}
	if cell.Kind == NoPiece {
		cell = Empty
	}
	prev = b[sq.Row][sq.Col]
	b[sq.Row][sq.Col] = cell
	return prev, true
}

// IsEmpty reports whether sq is vacant. ok is false when sq is off
// the board, which callers must not confuse with an empty square.
func (b *Board) IsEmpty(sq Square) (empty, ok bool) {
	c, ok := b.Get(sq)
	if !ok {
		return false, false
	}
	return c.IsEmpty(), true
}

// Copy creates an independent copy of the board.
func (b *Board) Copy() Board {
	return *b
}

// Find returns the squares holding the given cell, in row then column order.
func (b *Board) Find(cell Cell) []Square {
	var squares []Square
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col] == cell {
				squares = append(squares, Sq(row, col))
			}
		}
	}
	return squares
}

// Pieces returns every square occupied by the given colour.
func (b *Board) Pieces(colour Colour) []Square {
	var squares []Square
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col].Is(colour) {
				squares = append(squares, Sq(row, col))
			}
		}
	}
	return squares
}

// KingSquare locates the king of the given colour.
func (b *Board) KingSquare(colour Colour) (Square, bool) {
	king := MakeCell(colour, King)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col] == king {
				return Sq(row, col), true
			}
		}
	}
	return Square{}, false
}

// String renders the board as eight lines of FEN letters, rank 8 first.
func (b *Board) String() string {
	buf := make([]byte, 0, BoardSize*(BoardSize+1))
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			buf = append(buf, b[row][col].Symbol())
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
