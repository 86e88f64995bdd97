package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Movement vectors as (row, col) offsets.
var (
	knightVectors = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingVectors   = [8][2]int{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}

	orthogonalVectors = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	diagonalVectors   = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// isStraight reports whether to lies on a rank or file through from.
func isStraight(from, to chess.Square) bool {
	rows, cols := to.Diff(from)
	return (rows == 0) != (cols == 0)
}

// isDiagonal reports whether to lies on a diagonal through from.
func isDiagonal(from, to chess.Square) bool {
	rows, cols := to.Diff(from)
	return rows != 0 && abs(rows) == abs(cols)
}

// squaresBetween returns the squares strictly between from and to along
// a rank, file or diagonal. It returns nil when the squares are not
// aligned or are adjacent.
func squaresBetween(from, to chess.Square) []chess.Square {
	if !isStraight(from, to) && !isDiagonal(from, to) {
		return nil
	}
	rows, cols := to.Diff(from)
	rowDir, colDir := sign(rows), sign(cols)

	var path []chess.Square
	for sq := from.Add(rowDir, colDir); sq != to; sq = sq.Add(rowDir, colDir) {
		path = append(path, sq)
	}
	return path
}

// firstObstruction returns the first occupied square on the path from
// from to to, exclusive of both endpoints.
func firstObstruction(board *chess.Board, from, to chess.Square) (chess.Square, bool) {
	for _, sq := range squaresBetween(from, to) {
		if !board.At(sq).IsEmpty() {
			return sq, true
		}
	}
	return chess.Square{}, false
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
