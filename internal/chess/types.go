// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the row step a pawn of this colour advances by.
// Row 0 is the eighth rank, so White moves towards lower rows.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// HomeRow returns the row holding the colour's back rank.
func (c Colour) HomeRow() int {
	if c == White {
		return BoardSize - 1
	}
	return 0
}

// PawnRow returns the row pawns of this colour start on.
func (c Colour) PawnRow() int {
	return c.HomeRow() + c.Forward()
}

// LastRow returns the row on which pawns of this colour promote.
func (c Colour) LastRow() int {
	return c.Opposite().HomeRow()
}

// Piece represents a chess piece type.
type Piece int

const (
	NoPiece Piece = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// IsSliding reports whether the piece moves along unbounded rays.
func (p Piece) IsSliding() bool {
	switch p {
	case Bishop, Rook, Queen:
		return true
	default:
		return false
	}
}

// IsPromotion reports whether a pawn may promote to this piece.
func (p Piece) IsPromotion() bool {
	switch p {
	case Knight, Bishop, Rook, Queen:
		return true
	default:
		return false
	}
}

// PieceFromLetter converts an uppercase SAN letter to a piece.
func PieceFromLetter(c byte) Piece {
	switch c {
	case 'P':
		return Pawn
	case 'N':
		return Knight
	case 'B':
		return Bishop
	case 'R':
		return Rook
	case 'Q':
		return Queen
	case 'K':
		return King
	}
	return NoPiece
}

// Cell is the content of one board square: a piece of a given colour,
// or the zero value for an empty square.
type Cell struct {
	Kind   Piece
	Colour Colour
}

// Empty is the empty cell value.
var Empty = Cell{}

// MakeCell creates a coloured piece value.
func MakeCell(colour Colour, piece Piece) Cell {
	if piece == NoPiece {
		return Empty
	}
	return Cell{Kind: piece, Colour: colour}
}

// W creates a white piece.
func W(piece Piece) Cell {
	return MakeCell(White, piece)
}

// B creates a black piece.
func B(piece Piece) Cell {
	return MakeCell(Black, piece)
}

// IsEmpty returns true if the cell holds no piece.
func (c Cell) IsEmpty() bool {
	return c.Kind == NoPiece
}

// Is returns true if the cell holds a piece of the given colour.
func (c Cell) Is(colour Colour) bool {
	return c.Kind != NoPiece && c.Colour == colour
}

// Symbol returns the FEN letter for the cell: uppercase for White,
// lowercase for Black and '.' for an empty square.
func (c Cell) Symbol() byte {
	if c.IsEmpty() {
		return '.'
	}
	letter := c.Kind.Letter()
	if c.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a readable name such as "White Knight".
func (c Cell) String() string {
	if c.IsEmpty() {
		return "Empty"
	}
	return c.Colour.String() + " " + c.Kind.String()
}

// Board dimensions and coordinate bases.
const (
	BoardSize = 8

	RankBase = '1'
	ColBase  = 'a'
	LastRank = RankBase + BoardSize - 1
	LastCol  = ColBase + BoardSize - 1
)

// Result is the outcome of a game at a given position.
type Result int

const (
	Undetermined Result = iota
	WhiteWins
	BlackWins
	Draw
)

// String returns the PGN termination marker for the result.
func (r Result) String() string {
	switch r {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// IsDecided returns true for any result except Undetermined.
func (r Result) IsDecided() bool {
	return r != Undetermined
}

// ParseResult converts a PGN termination marker to a Result.
func ParseResult(token string) (Result, bool) {
	switch token {
	case "1-0":
		return WhiteWins, true
	case "0-1":
		return BlackWins, true
	case "1/2-1/2":
		return Draw, true
	case "*":
		return Undetermined, true
	}
	return Undetermined, false
}

// WinFor returns the result of a game won by the given colour.
func WinFor(colour Colour) Result {
	if colour == White {
		return WhiteWins
	}
	return BlackWins
}
