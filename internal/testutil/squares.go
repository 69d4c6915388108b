package testutil

import (
	"testing"

	"github.com/lgbarn/mailbox-go/internal/chess"
)

// MustParseSquare parses a square name such as "e4".
// It calls t.Fatal if the name is malformed.
func MustParseSquare(t testing.TB, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("MustParseSquare(%q): %v", name, err)
	}
	return sq
}

// MustParseSquares parses a whitespace separated list of square names.
// It calls t.Fatal if any name is malformed.
func MustParseSquares(t testing.TB, names string) []chess.Square {
	t.Helper()
	squares, err := chess.ParseSquares(names)
	if err != nil {
		t.Fatalf("MustParseSquares(%q): %v", names, err)
	}
	return squares
}

// BoardWith builds an empty board holding a single piece.
// It calls t.Fatal if the square is not on the board.
func BoardWith(t testing.TB, sq chess.Square, piece chess.Piece) *chess.Board {
	t.Helper()
	b, err := chess.NewBoardWith(chess.Placement{Square: sq, Piece: piece})
	if err != nil {
		t.Fatalf("BoardWith(%v, %v): %v", sq, piece, err)
	}
	return b
}
