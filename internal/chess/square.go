package chess

import "strconv"

// Square addresses a board cell by zero-based row and column.
// Row 0 is the eighth rank and column 0 is the a-file. Squares outside
// the board are representable; board queries treat them as absent.
type Square struct {
	Row int
	Col int
}

// Sq creates a square from row and column indices.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// ParseSquare converts a label such as "e4" to a square.
func ParseSquare(label string) (Square, bool) {
	if len(label) != 2 {
		return Square{}, false
	}
	file, rank := label[0], label[1]
	if file < ColBase || file > LastCol || rank < RankBase || rank > LastRank {
		return Square{}, false
	}
	return FromFileRank(file, rank), true
}

// MustSquare is like ParseSquare but panics on a malformed label.
// It is intended for constants and tests.
func MustSquare(label string) Square {
	sq, ok := ParseSquare(label)
	if !ok {
		panic("chess: bad square label " + strconv.Quote(label))
	}
	return sq
}

// FromFileRank converts file and rank characters to a square.
func FromFileRank(file, rank byte) Square {
	return Square{Row: int(LastRank) - int(rank), Col: int(file) - ColBase}
}

// File returns the file character, 'a' to 'h'.
func (s Square) File() byte {
	return byte(ColBase + s.Col)
}

// Rank returns the rank number, 1 to 8.
func (s Square) Rank() int {
	return BoardSize - s.Row
}

// RankChar returns the rank character, '1' to '8'.
func (s Square) RankChar() byte {
	return byte(RankBase + s.Rank() - 1)
}

// Label returns the algebraic name of the square, e.g. "e4".
func (s Square) Label() string {
	return string([]byte{s.File(), s.RankChar()})
}

// String implements fmt.Stringer.
func (s Square) String() string {
	if !s.Valid() {
		return "(" + strconv.Itoa(s.Row) + "," + strconv.Itoa(s.Col) + ")"
	}
	return s.Label()
}

// Light reports whether the square is light; a8 is light.
func (s Square) Light() bool {
	return (s.Row%2 == 0) == (s.Col%2 == 0)
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Add returns the square offset by the given rows and columns.
func (s Square) Add(rows, cols int) Square {
	return Square{Row: s.Row + rows, Col: s.Col + cols}
}

// Diff returns the row and column offsets from o to s.
func (s Square) Diff(o Square) (rows, cols int) {
	return s.Row - o.Row, s.Col - o.Col
}

// Compare orders squares by row, then column.
func (s Square) Compare(o Square) int {
	switch {
	case s.Row < o.Row:
		return -1
	case s.Row > o.Row:
		return 1
	case s.Col < o.Col:
		return -1
	case s.Col > o.Col:
		return 1
	}
	return 0
}
