// Package engine generates candidate moves for pieces on the mailbox board.
//
// Generation is a pure function of piece kind and origin square. It never
// reads a Board, so it knows nothing about occupancy, captures or blocking.
package engine

import (
	"github.com/lgbarn/mailbox-go/internal/chess"
	"github.com/lgbarn/mailbox-go/internal/errors"
)

// knightOffsets are the (file, rank) deltas of a knight jump.
var knightOffsets = [8][2]int{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {-1, 2}, {-1, -2}, {1, 2}, {1, -2}}

// Candidates returns every destination implied by the movement geometry of
// kind from origin, including destinations that have stepped onto the
// border. Kinds without a generator fail with *errors.NotImplementedError;
// an origin that is itself a border square fails with *errors.OffBoardError.
func Candidates(kind chess.PieceKind, from chess.Square) ([]chess.Move, error) {
	if !from.Valid() {
		return nil, &errors.OffBoardError{Square: uint8(from), Contents: "origin of " + kind.String()}
	}

	var targets [][2]int

	switch kind {
	case chess.Knight:
		targets = knightOffsets[:]

	default:
		// King, Queen, Rook, Bishop and Pawn have no generator yet.
		return nil, &errors.NotImplementedError{Kind: kind.String()}
	}

	return jumps(from, targets), nil
}

// jumps applies each offset once using the wrapping arithmetic of
// chess.Compose. Nothing is filtered.
func jumps(from chess.Square, offsets [][2]int) []chess.Move {
	file, rank := chess.Decompose(from)
	moves := make([]chess.Move, 0, len(offsets))
	for _, offset := range offsets {
		moves = append(moves, chess.Move{
			From: from,
			To:   chess.Compose(file+offset[0], rank+offset[1]),
		})
	}
	return moves
}

// OnBoard returns the candidates of kind from origin whose destination is a
// legal square.
func OnBoard(kind chess.PieceKind, from chess.Square) ([]chess.Move, error) {
	moves, err := Candidates(kind, from)
	if err != nil {
		return nil, err
	}
	return FilterOnBoard(moves), nil
}

// FilterOnBoard returns the moves whose destination is a legal square,
// preserving order. The input is not modified.
func FilterOnBoard(moves []chess.Move) []chess.Move {
	filtered := make([]chess.Move, 0, len(moves))
	for _, m := range moves {
		if m.To.Valid() {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// PieceCandidates returns the candidates for a coloured piece. Colour does
// not affect any implemented geometry.
func PieceCandidates(piece chess.Piece, from chess.Square) ([]chess.Move, error) {
	return Candidates(piece.Kind(), from)
}

// BoardCandidates generates candidates for every piece on b. Kinds without a
// generator are skipped and reported through the returned map so callers can
// treat them as unavailable rather than fatal.
func BoardCandidates(b *chess.Board) (map[chess.Square][]chess.Move, map[chess.Square]error) {
	moves := make(map[chess.Square][]chess.Move)
	var failed map[chess.Square]error
	for _, p := range b.Pieces() {
		m, err := PieceCandidates(p.Piece, p.Square)
		if err != nil {
			if failed == nil {
				failed = make(map[chess.Square]error)
			}
			failed[p.Square] = err
			continue
		}
		moves[p.Square] = m
	}
	return moves, failed
}
