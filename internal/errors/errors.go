// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines the two error families the engine reports: illegal moves, which are
// ordinary recoverable outcomes, and malformed input, which fails a whole parse.
// All types preserve context while allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameOver indicates a move attempted in a concluded position.
	ErrGameOver = errors.New("game is over")

	// ErrParseFailure indicates a general PGN parsing error.
	ErrParseFailure = errors.New("parse failure")

	// ErrMalformedTag indicates a tag that is not [NAME "value"].
	ErrMalformedTag = errors.New("malformed tag")

	// ErrMissingDestination indicates SAN text without a destination square.
	ErrMissingDestination = errors.New("move has no destination square")

	// ErrNoMatchingPiece indicates SAN text that no piece can legally play.
	ErrNoMatchingPiece = errors.New("no piece can make this move")

	// ErrAmbiguousMove indicates SAN text that more than one piece can play.
	ErrAmbiguousMove = errors.New("ambiguous move")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMoveIndex indicates a move index outside the recorded moves.
	ErrMoveIndex = errors.New("move index out of range")

	// ErrNAGAlreadySet indicates a second annotation for the same move.
	ErrNAGAlreadySet = errors.New("annotation already set")
)

// IllegalMoveError carries the human-readable reason a move was rejected.
// The reason is for display; branch on ErrIllegalMove, not on its text.
type IllegalMoveError struct {
	Reason string
}

// Illegal creates an IllegalMoveError with a formatted reason.
func Illegal(format string, args ...interface{}) *IllegalMoveError {
	return &IllegalMoveError{Reason: fmt.Sprintf(format, args...)}
}

// Error returns the rejection reason.
func (e *IllegalMoveError) Error() string {
	return "illegal move: " + e.Reason
}

// Unwrap returns ErrIllegalMove so errors.Is() matches every rejection.
func (e *IllegalMoveError) Unwrap() error {
	return ErrIllegalMove
}

// GameError wraps errors with game context, including game number,
// ply position, and move information. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type GameError struct {
	Err      error  // The underlying error
	GameNum  int    // 1-based game number in the file
	PlyNum   int    // Ply number where error occurred (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
	File     string // Source file name (if known)
	Line     int    // Line number in source file (if known)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.File != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.File, e.Line))
		} else {
			parts = append(parts, e.File)
		}
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.GameNum > 0 {
		parts = append(parts, fmt.Sprintf("game %d", e.GameNum))
	}
	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	switch {
	case context == "" && e.Err != nil:
		return e.Err.Error()
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error with file location context.
type ParseError struct {
	Err      error  // The underlying error
	File     string // Source file name
	Line     int    // Line number (1-based)
	Column   int    // Column number (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	loc := e.File
	if e.Line > 0 {
		if loc == "" {
			loc = "line"
			loc += fmt.Sprintf(" %d", e.Line)
		} else {
			loc += fmt.Sprintf(":%d", e.Line)
		}
		if e.Column > 0 {
			loc += fmt.Sprintf(":%d", e.Column)
		}
	}
	if loc != "" {
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is and As re-export the standard helpers so callers need only this package.
var (
	Is = errors.Is
	As = errors.As
)
