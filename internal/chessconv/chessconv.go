// Package chessconv converts between the mailbox board and
// github.com/notnil/chess, which supplies FEN parsing and serves as a
// reference move generator in tests.
package chessconv

import (
	"strings"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/mailbox-go/internal/chess"
	"github.com/lgbarn/mailbox-go/internal/errors"
)

var pieces = map[chess.Piece]nchess.Piece{
	chess.W(chess.King):   nchess.WhiteKing,
	chess.W(chess.Queen):  nchess.WhiteQueen,
	chess.W(chess.Rook):   nchess.WhiteRook,
	chess.W(chess.Bishop): nchess.WhiteBishop,
	chess.W(chess.Knight): nchess.WhiteKnight,
	chess.W(chess.Pawn):   nchess.WhitePawn,
	chess.B(chess.King):   nchess.BlackKing,
	chess.B(chess.Queen):  nchess.BlackQueen,
	chess.B(chess.Rook):   nchess.BlackRook,
	chess.B(chess.Bishop): nchess.BlackBishop,
	chess.B(chess.Knight): nchess.BlackKnight,
	chess.B(chess.Pawn):   nchess.BlackPawn,
}

var typeToKind = map[nchess.PieceType]chess.PieceKind{
	nchess.King:   chess.King,
	nchess.Queen:  chess.Queen,
	nchess.Rook:   chess.Rook,
	nchess.Bishop: chess.Bishop,
	nchess.Knight: chess.Knight,
	nchess.Pawn:   chess.Pawn,
}

// ToSquare maps a legal mailbox square onto the 0..63 numbering.
func ToSquare(sq chess.Square) (nchess.Square, error) {
	if !sq.Valid() {
		return 0, &errors.OffBoardError{Square: uint8(sq)}
	}
	return nchess.Square(sq.Rank()*chess.BoardSize + sq.File()), nil
}

// FromSquare maps a 0..63 square onto its mailbox index.
func FromSquare(sq nchess.Square) chess.Square {
	return chess.Compose(int(sq.File()), int(sq.Rank()))
}

// ToPiece converts a mailbox piece. It returns NoPiece for an invalid kind.
func ToPiece(p chess.Piece) nchess.Piece {
	piece, ok := pieces[p]
	if !ok {
		return nchess.NoPiece
	}
	return piece
}

// FromPiece converts a piece, reporting false for NoPiece.
func FromPiece(p nchess.Piece) (chess.Piece, bool) {
	kind, ok := typeToKind[p.Type()]
	if !ok {
		return 0, false
	}
	colour := chess.Black
	if p.Color() == nchess.White {
		colour = chess.White
	}
	return chess.MakePiece(colour, kind), true
}

// ToBoard copies every piece on b into a new board.
func ToBoard(b *chess.Board) *nchess.Board {
	squares := make(map[nchess.Square]nchess.Piece)
	for _, p := range b.Pieces() {
		sq, err := ToSquare(p.Square)
		if err != nil {
			continue
		}
		if piece := ToPiece(p.Piece); piece != nchess.NoPiece {
			squares[sq] = piece
		}
	}
	return nchess.NewBoard(squares)
}

// FromBoard builds a mailbox board holding the pieces of nb.
func FromBoard(nb *nchess.Board) (*chess.Board, error) {
	b := chess.NewEmptyBoard()
	for sq, piece := range nb.SquareMap() {
		p, ok := FromPiece(piece)
		if !ok {
			continue
		}
		if err := b.Place(FromSquare(sq), p); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Placement returns the piece placement field of the FEN for b.
func Placement(b *chess.Board) string {
	return ToBoard(b).String()
}

// ParseFEN reads a full FEN, or a bare piece placement, into a board. Only
// the placement is kept; the remaining fields are checked for syntax.
func ParseFEN(fen string) (*chess.Board, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, &errors.ParseError{Expected: "FEN", Got: `""`}
	}
	if len(fields) > 1 {
		if _, err := nchess.FEN(strings.Join(fields, " ")); err != nil {
			return nil, errors.Wrapf(err, "parsing FEN %q", fen)
		}
	}

	var nb nchess.Board
	if err := nb.UnmarshalText([]byte(fields[0])); err != nil {
		return nil, errors.Wrapf(err, "parsing piece placement %q", fields[0])
	}
	return FromBoard(&nb)
}
