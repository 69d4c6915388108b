// Package tour validates, solves and replays knight's tours on the mailbox
// board. It relies only on the knight generator in package engine.
package tour

import (
	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/mailbox-go/internal/chess"
	"github.com/lgbarn/mailbox-go/internal/engine"
	"github.com/lgbarn/mailbox-go/internal/errors"
)

// DemonstrationStart is the square the demonstration tour begins on.
const DemonstrationStart = chess.E8

// Demonstration lists the 63 squares a knight visits after
// DemonstrationStart, in order.
const Demonstration = "g7 h5 f6 e4 g3 h1 f2 d1 b2 a4 c3 d5 b6 a8 c7 b5 a7 c8 d6 c4 a3 b1 d2 f1 " +
	"h2 g4 e3 f5 h6 g8 e7 c6 d8 b7 a5 b3 a1 c2 d4 f3 e1 g2 h4 g6 h8 f7 g5 h7 f8 e6 " +
	"f4 h3 g1 e2 c1 a2 b4 d3 c5 a6 b8 d7 e5"

// Length is the number of jumps in a complete tour.
const Length = chess.BoardSize*chess.BoardSize - 1

// DemonstrationPath returns Demonstration parsed into squares.
func DemonstrationPath() []chess.Square {
	return chess.MustParseSquares(Demonstration)
}

// Step checks that a knight on from can jump to to.
func Step(from, to chess.Square) error {
	moves, err := engine.Candidates(chess.Knight, from)
	if err != nil {
		return err
	}
	if !to.Valid() {
		return &errors.OffBoardError{Square: uint8(to), Contents: "knight"}
	}
	if !chess.ContainsDestination(moves, to) {
		return &errors.TourError{From: from.String(), To: to.String()}
	}
	return nil
}

// Validate checks that every consecutive pair of start followed by path is a
// knight jump. All broken steps are reported; each unwraps to a
// *errors.TourError with a 1-based Step.
func Validate(start chess.Square, path []chess.Square) error {
	var result *multierror.Error
	current := start
	for i, next := range path {
		if err := Step(current, next); err != nil {
			result = multierror.Append(result, numberStep(err, i+1, current, next))
		}
		current = next
	}
	return result.ErrorOrNil()
}

func numberStep(err error, step int, from, to chess.Square) error {
	if tourErr, ok := err.(*errors.TourError); ok {
		tourErr.Step = step
		return tourErr
	}
	return &errors.TourError{Step: step, From: from.String(), To: to.String(), Err: err}
}

// Complete checks that path is a valid tour from start that visits every
// square of the board exactly once.
func Complete(start chess.Square, path []chess.Square) error {
	if err := Validate(start, path); err != nil {
		return err
	}
	if len(path) != Length {
		return errors.Wrapf(errors.ErrInvalidTour, "%d jumps, want %d", len(path), Length)
	}
	var seen [chess.NumSquares]bool
	seen[start] = true
	for i, sq := range path {
		if seen[sq] {
			return &errors.TourError{Step: i + 1, From: start.String(), To: sq.String(),
				Err: errors.Wrapf(errors.ErrInvalidTour, "%v visited twice", sq)}
		}
		seen[sq] = true
	}
	return nil
}

// Visited ORs together every square index in path. A path touching every
// file and rank yields 0x77.
func Visited(path []chess.Square) chess.Square {
	var visited chess.Square
	for _, sq := range path {
		visited |= sq
	}
	return visited
}

// Replay walks piece along path on b: before each jump the piece is placed
// on the current square, then that square is cleared and the next occupied.
// fn, if non-nil, is called after every jump with its 1-based number and
// may stop the replay by returning an error, leaving b at that jump. The
// path is checked with Validate first; if it is broken, or the piece cannot
// stand on start, b is left unchanged.
func Replay(b *chess.Board, piece chess.Piece, start chess.Square, path []chess.Square, fn func(step int, b *chess.Board) error) error {
	if err := Validate(start, path); err != nil {
		return err
	}
	if err := b.Place(start, piece); err != nil {
		return err
	}
	current := start
	for i, next := range path {
		if err := b.Clear(current); err != nil {
			return err
		}
		if err := b.Place(next, piece); err != nil {
			return err
		}
		current = next
		if fn != nil {
			if err := fn(i+1, b); err != nil {
				return err
			}
		}
	}
	return nil
}
