package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// BoardFromRows builds a board from eight rows of FEN letters, top row
// first (rank 8). '.' marks an empty square. It panics on malformed
// input, which is a bug in the test itself.
func BoardFromRows(rows ...string) chess.Board {
	if len(rows) != chess.BoardSize {
		panic("testutil: BoardFromRows needs 8 rows")
	}
	placement := make([]string, 0, chess.BoardSize)
	for _, row := range rows {
		if len(row) != chess.BoardSize {
			panic("testutil: board row " + row + " is not 8 squares wide")
		}
		placement = append(placement, collapseEmpty(row))
	}
	return engine.MustParsePlacement(strings.Join(placement, "/"))
}

// BoardRows is the inverse of BoardFromRows.
func BoardRows(board chess.Board) []string {
	rows := make([]string, chess.BoardSize)
	for row := range rows {
		b := make([]byte, chess.BoardSize)
		for col := range b {
			b[col] = board.At(chess.Sq(row, col)).Symbol()
		}
		rows[row] = string(b)
	}
	return rows
}

// collapseEmpty rewrites runs of '.' as FEN digits.
func collapseEmpty(row string) string {
	var sb strings.Builder
	run := 0
	for i := 0; i < len(row); i++ {
		if row[i] == '.' {
			run++
			continue
		}
		if run > 0 {
			sb.WriteByte(byte('0' + run))
			run = 0
		}
		sb.WriteByte(row[i])
	}
	if run > 0 {
		sb.WriteByte(byte('0' + run))
	}
	return sb.String()
}

// Play applies coordinate moves such as "e2e4" or "e7e8n" starting from
// board and returns the final position and the move history. Any
// illegal move aborts the test.
func Play(t *testing.T, board chess.Board, moves ...string) (chess.Board, []chess.Move) {
	t.Helper()
	var history []chess.Move
	for _, text := range moves {
		from, to, promo := ParseCoordinate(t, text)
		m, err := engine.MakeMove(board, history, from, to, promo)
		if err != nil {
			t.Fatalf("move %d %s: %v", len(history)+1, text, err)
		}
		history = append(history, m)
		board = m.Board
	}
	return board, history
}

// ParseCoordinate splits "e2e4" or "e7e8q" into its parts.
func ParseCoordinate(t *testing.T, text string) (from, to chess.Square, promo chess.Piece) {
	t.Helper()
	if len(text) != 4 && len(text) != 5 {
		t.Fatalf("bad coordinate move %q", text)
	}
	var ok1, ok2 bool
	from, ok1 = chess.ParseSquare(text[0:2])
	to, ok2 = chess.ParseSquare(text[2:4])
	if !ok1 || !ok2 {
		t.Fatalf("bad coordinate move %q", text)
	}
	if len(text) == 5 {
		promo = chess.PieceFromLetter(strings.ToUpper(text[4:])[0])
	}
	return from, to, promo
}
