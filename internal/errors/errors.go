// Package errors provides sentinel errors and error types for the
// chess engine. It defines the classified error conditions returned
// at the notation and session boundaries, plus structured types that
// preserve input context while allowing inspection with errors.Is()
// and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the boundary error taxonomy.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrParse indicates move input that matches neither notation grammar.
	ErrParse = errors.New("unrecognized move notation")

	// ErrAmbiguousMove indicates algebraic input that matches more than
	// one legal move.
	ErrAmbiguousMove = errors.New("ambiguous move")

	// ErrIllegalMove indicates well-formed input naming a move that is
	// not legal in the current position.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameOver indicates a move submitted to a finished game.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidFEN indicates a malformed or internally inconsistent
	// FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrNothingToUndo indicates an undo request with only the initial
	// position in the history.
	ErrNothingToUndo = errors.New("nothing to undo")
)

// MoveError wraps a move rejection with the offending input and the
// position it was rejected in. It supports unwrapping via errors.Is()
// and errors.As().
type MoveError struct {
	Err   error  // The underlying sentinel error
	Input string // The move text as submitted
	FEN   string // FEN of the position the move was rejected in
}

// Error returns a formatted message including all available context.
func (e *MoveError) Error() string {
	var parts []string
	if e.Input != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Input))
	}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("position %q", e.FEN))
	}
	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and
// errors.As() to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// FENError wraps a FEN decoding failure with the string and the field
// that failed.
type FENError struct {
	Err   error  // The underlying error
	FEN   string // The full FEN string
	Field string // Which field failed ("placement", "side to move", ...)
}

// Error returns a formatted message with field context.
func (e *FENError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("in %q", e.FEN))
	}
	context := strings.Join(parts, " ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "FEN error"
	}
	return context
}

// Unwrap returns the underlying error.
func (e *FENError) Unwrap() error {
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

// Wrapf adds formatted context to an error while preserving the
// underlying error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
