// Package errors provides sentinel errors and error types for the mailbox board.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOffBoard indicates a write that would break the border invariant.
	ErrOffBoard = errors.New("square is off the board")

	// ErrInvalidPiece indicates square contents that are not Empty, Invalid
	// or a piece of a known kind.
	ErrInvalidPiece = errors.New("invalid piece")

	// ErrNotImplemented indicates a piece kind with no move generator.
	ErrNotImplemented = errors.New("not implemented")

	// ErrInvalidSquare indicates a malformed square name.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidTour indicates a square sequence that is not a knight's tour.
	ErrInvalidTour = errors.New("invalid knight's tour")

	// ErrNoTour indicates the tour solver reached a dead end.
	ErrNoTour = errors.New("no tour found")

	// ErrNotFound indicates a missing stored record.
	ErrNotFound = errors.New("not found")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// OffBoardError reports a Board write rejected because the target index
// and the written contents disagree about the border.
type OffBoardError struct {
	Square   uint8  // The 0x88 index that was written
	Contents string // Description of the rejected contents
}

// Error returns a formatted error message.
func (e *OffBoardError) Error() string {
	if e.Contents != "" {
		return fmt.Sprintf("cannot write %s to 0x%02x: %v", e.Contents, e.Square, ErrOffBoard)
	}
	return fmt.Sprintf("0x%02x: %v", e.Square, ErrOffBoard)
}

// Unwrap returns ErrOffBoard so callers can use errors.Is().
func (e *OffBoardError) Unwrap() error {
	return ErrOffBoard
}

// NotImplementedError reports a move generation request for a piece kind
// that has no generator.
type NotImplementedError struct {
	Kind string // Piece kind name
}

// Error returns a formatted error message.
func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("move generation for %s: %v", e.Kind, ErrNotImplemented)
}

// Unwrap returns ErrNotImplemented.
func (e *NotImplementedError) Unwrap() error {
	return ErrNotImplemented
}

// TourError reports a single broken step of a knight's tour.
type TourError struct {
	Step int    // 1-based step number within the sequence
	From string // Square the knight stood on
	To   string // Square the sequence asked it to reach
	Err  error  // The underlying error, ErrInvalidTour when nil
}

// Error returns a formatted error message.
func (e *TourError) Error() string {
	return fmt.Sprintf("step %d: %s -> %s: %v", e.Step, e.From, e.To, e.Unwrap())
}

// Unwrap returns the underlying error.
func (e *TourError) Unwrap() error {
	if e.Err == nil {
		return ErrInvalidTour
	}
	return e.Err
}

// ParseError represents a parsing error with location context.
// It's used for square names and square sequences.
type ParseError struct {
	Err      error  // The underlying error
	Column   int    // Column number (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Column > 0 {
		parts = append(parts, fmt.Sprintf("column %d", e.Column))
	}

	// Add expected/got context
	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	// Add underlying error
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
