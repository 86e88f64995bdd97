// Package game implements a chess game as a move-history state machine.
//
// A Game owns its move list. The current position is the initial board
// or the board recorded by the move at the selected ply, so selecting an
// earlier ply never discards moves; playing a new move from there does.
package game

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/san"
)

// Game is a single chess game. The zero value is not usable; call New.
// A Game is not safe for concurrent use.
type Game struct {
	// Tags holds the PGN metadata.
	Tags *chess.Tags

	initial chess.Board
	moves   []chess.Move
	ply     int // number of moves applied to the selected position
	result  chess.Result

	// declared is a result agreed off the board (resignation, draw
	// agreement, PGN termination marker). It applies to the final ply.
	declared   chess.Result
	drawOffers [2]bool
}

// New creates a game at the standard initial position.
func New() *Game {
	return &Game{
		Tags:    chess.NewTags(),
		initial: chess.NewInitialBoard(),
	}
}

// Board returns the selected position.
func (g *Game) Board() chess.Board {
	return g.boardAt(g.ply)
}

// boardAt returns the position after ply moves.
func (g *Game) boardAt(ply int) chess.Board {
	if ply == 0 {
		return g.initial
	}
	return g.moves[ply-1].Board
}

// Moves returns a copy of the recorded moves, including any after the
// selected ply.
func (g *Game) Moves() []chess.Move {
	return append([]chess.Move(nil), g.moves...)
}

// Len returns the number of recorded moves.
func (g *Game) Len() int {
	return len(g.moves)
}

// Ply returns the number of moves leading to the selected position.
func (g *Game) Ply() int {
	return g.ply
}

// Turn returns the 1-based ply counter: 1 at the initial position.
func (g *Game) Turn() int {
	return g.ply + 1
}

// ToMove returns the side to move in the selected position.
func (g *Game) ToMove() chess.Colour {
	return sideAt(g.ply)
}

func sideAt(ply int) chess.Colour {
	if ply%2 == 0 {
		return chess.White
	}
	return chess.Black
}

// Result returns the result at the selected position.
func (g *Game) Result() chess.Result {
	return g.result
}

// FinalResult returns the result after the last recorded move.
func (g *Game) FinalResult() chess.Result {
	return g.resultAt(len(g.moves))
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return engine.InCheck(g.Board(), g.ToMove())
}

// LegalMoves returns the legal destinations of the piece on from in the
// selected position.
func (g *Game) LegalMoves(from chess.Square) []chess.Square {
	return engine.LegalMoves(g.Board(), g.moves[:g.ply], from)
}

// Move plays a move from the selected position. Moves recorded after
// the selected ply are discarded. promotion may be chess.NoPiece for a
// queen. On error the game is unchanged.
func (g *Game) Move(from, to chess.Square, promotion chess.Piece) error {
	if g.result.IsDecided() {
		return errors.Wrapf(errors.ErrGameOver, "result %s", g.result)
	}

	board := g.Board()
	if cell, ok := board.Get(from); ok && !cell.IsEmpty() && cell.Colour != g.ToMove() {
		return errors.Illegal("it is %s's turn to move", strings.ToLower(g.ToMove().String()))
	}

	m, err := engine.MakeMove(board, g.moves[:g.ply], from, to, promotion)
	if err != nil {
		return err
	}
	g.push(m)
	return nil
}

// PlaySAN plays a move written in Standard Algebraic Notation.
func (g *Game) PlaySAN(text string) error {
	if g.result.IsDecided() {
		return errors.Wrapf(errors.ErrGameOver, "result %s", g.result)
	}
	m, err := san.Parse(g.Board(), g.moves[:g.ply], text)
	if err != nil {
		return err
	}
	g.push(m)
	return nil
}

// push records a validated move at the selected ply. Truncating the
// game resets a decided Result tag along with the declared result.
func (g *Game) push(m chess.Move) {
	if g.ply < len(g.moves) {
		if r, ok := chess.ParseResult(g.Tags.Get("Result")); ok && r.IsDecided() {
			g.Tags.Set("Result", chess.Undetermined.String())
		}
	}
	g.moves = append(g.moves[:g.ply], m)
	g.ply++
	g.declared = chess.Undetermined
	g.drawOffers = [2]bool{}
	g.result = g.resultAt(g.ply)
}

// SelectTurn moves the view to the position after ply moves. Ply 0 is
// the initial position. Out-of-range values are ignored.
func (g *Game) SelectTurn(ply int) {
	if ply < 0 || ply > len(g.moves) || ply == g.ply {
		return
	}
	g.ply = ply
	g.result = g.resultAt(ply)
}

// resultAt derives the result after ply moves: checkmate, then
// stalemate, then dead position. The declared result counts only at
// the final ply.
func (g *Game) resultAt(ply int) chess.Result {
	board := g.boardAt(ply)
	history := g.moves[:ply]
	side := sideAt(ply)

	switch {
	case engine.InCheckmate(board, side, history):
		return chess.WinFor(side.Opposite())
	case engine.InStalemate(board, side, history):
		return chess.Draw
	case engine.IsDeadPosition(board):
		return chess.Draw
	case ply == len(g.moves):
		return g.declared
	}
	return chess.Undetermined
}

// MoveSAN returns the move at index (0-based) in Standard Algebraic Notation.
func (g *Game) MoveSAN(index int) (string, error) {
	if index < 0 || index >= len(g.moves) {
		return "", errors.Wrapf(errors.ErrMoveIndex, "move %d of %d", index, len(g.moves))
	}
	return san.Encode(g.boardAt(index), g.moves[:index], g.moves[index]), nil
}

// SetNAG annotates the move at index. A move may be annotated once;
// repeating the code it already carries is accepted.
func (g *Game) SetNAG(index, nag int) error {
	if index < 0 || index >= len(g.moves) {
		return errors.Wrapf(errors.ErrMoveIndex, "move %d of %d", index, len(g.moves))
	}
	if nag <= 0 {
		return errors.Wrapf(errors.ErrParseFailure, "NAG $%d", nag)
	}
	if cur := g.moves[index].NAG; cur == nag {
		return nil
	} else if cur != 0 {
		return errors.Wrapf(errors.ErrNAGAlreadySet, "move %d has $%d", index, g.moves[index].NAG)
	}
	g.moves[index].NAG = nag
	return nil
}

// Declare records a result reached off the board. A result already
// forced by the position takes precedence.
func (g *Game) Declare(result chess.Result) {
	g.declared = result
	if g.ply == len(g.moves) {
		g.result = g.resultAt(g.ply)
	}
}

// Resign concedes the game for side.
func (g *Game) Resign(side chess.Colour) error {
	if r := g.FinalResult(); r.IsDecided() {
		return errors.Wrapf(errors.ErrGameOver, "result %s", r)
	}
	g.conclude(chess.WinFor(side.Opposite()))
	return nil
}

// OfferDraw records a draw offer from side and reports whether the game
// is now drawn by agreement. Offers lapse when a move is played.
func (g *Game) OfferDraw(side chess.Colour) bool {
	if g.FinalResult().IsDecided() {
		return false
	}
	g.drawOffers[side] = true
	if !g.drawOffers[chess.White] || !g.drawOffers[chess.Black] {
		return false
	}
	g.conclude(chess.Draw)
	return true
}

// DeclineDraw refuses any pending draw offer on behalf of side. The
// offers of both sides are withdrawn, so a draw needs two new offers.
func (g *Game) DeclineDraw(side chess.Colour) {
	g.drawOffers = [2]bool{}
}

// DrawOffered reports whether side has a pending draw offer.
func (g *Game) DrawOffered(side chess.Colour) bool {
	return g.drawOffers[side]
}

func (g *Game) conclude(result chess.Result) {
	g.Declare(result)
	g.Tags.Set("Result", result.String())
}
