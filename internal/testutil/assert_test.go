package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// The assertion helpers cannot be driven with a fake *testing.T, so
// only their passing paths run here.

func TestAssertHelpers_Success(t *testing.T) {
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, "e4", "e4", "move %d", 1)
	AssertNoError(t, nil)
	AssertError(t, errors.New("boom"))
	AssertContains(t, "1. e4 e5", "e5")
	AssertTrue(t, true)
	AssertFalse(t, false)

	sentinel := errors.New("sentinel")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", sentinel), sentinel)
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"ply %d: %s", 3, "Nf3"}, "ply 3: Nf3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestBoardFromRows(t *testing.T) {
	rows := []string{
		"rnbqkbnr",
		"pppppppp",
		"........",
		"........",
		"........",
		"........",
		"PPPPPPPP",
		"RNBQKBNR",
	}
	board := BoardFromRows(rows...)
	AssertBoard(t, board, chess.NewInitialBoard())
	AssertEqual(t, BoardRows(board), rows)
}

func TestPlay(t *testing.T) {
	board, history := Play(t, chess.NewInitialBoard(), "e2e4", "e7e5", "g1f3")

	AssertEqual(t, len(history), 3)
	AssertEqual(t, board.At(chess.MustSquare("f3")), chess.W(chess.Knight))
	AssertEqual(t, history[1].Piece, chess.B(chess.Pawn))
	AssertTrue(t, history[0].IsDoublePawnStep())
}
