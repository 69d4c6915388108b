// Package chess provides the mailbox board, its square encoding and the
// piece model stored on it.
package chess

import "fmt"

// Colour represents the colour of a piece.
type Colour uint8

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceKind is the closed set of chess piece kinds.
type PieceKind uint8

const (
	King PieceKind = iota + 1
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// NumPieceKinds is the number of distinct piece kinds.
const NumPieceKinds = 6

// PieceKinds lists every kind in declaration order.
var PieceKinds = [NumPieceKinds]PieceKind{King, Queen, Rook, Bishop, Knight, Pawn}

var pieceKindNames = [NumPieceKinds + 1]string{"", "King", "Queen", "Rook", "Bishop", "Knight", "Pawn"}

// String returns the name of the piece kind.
func (k PieceKind) String() string {
	if k.Valid() {
		return pieceKindNames[k]
	}
	return fmt.Sprintf("PieceKind(%d)", uint8(k))
}

// Valid reports whether k is one of the six declared kinds.
func (k PieceKind) Valid() bool {
	return k >= King && k <= Pawn
}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 1

// Piece is a piece kind paired with a colour. White Knight and Black Knight
// are distinct values of the same type.
type Piece uint8

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, kind PieceKind) Piece {
	return Piece(kind)<<PieceShift | Piece(colour)
}

// W creates a white piece.
func W(kind PieceKind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind PieceKind) Piece {
	return MakePiece(Black, kind)
}

// Kind extracts the piece kind.
func (p Piece) Kind() PieceKind {
	return PieceKind(p >> PieceShift)
}

// Colour extracts the colour.
func (p Piece) Colour() Colour {
	return Colour(p & 0x01)
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	return p.Colour().String() + " " + p.Kind().String()
}

var glyphs = [2][NumPieceKinds + 1]string{
	Black: {"?", "♚", "♛", "♜", "♝", "♞", "♟"},
	White: {"?", "♔", "♕", "♖", "♗", "♘", "♙"},
}

// Glyph returns the canonical display character for the piece.
func (p Piece) Glyph() string {
	if !p.Kind().Valid() {
		return "?"
	}
	return glyphs[p.Colour()][p.Kind()]
}

// Contents is what a square holds: Empty, Invalid, or an occupying Piece.
// Known pieces encode to values of 2 and above so the three states never collide.
type Contents uint8

const (
	Empty   Contents = iota // Legal square with nothing on it
	Invalid                 // Border square; never holds a piece
)

// EmptyGlyph is shown for both Empty and Invalid squares.
const EmptyGlyph = "."

// badContents is what Occupied yields for a piece of an unknown kind. It
// reads as neither Empty, Invalid nor a piece, and Board.Set rejects it.
const badContents Contents = 0xff

// Occupied returns the contents of a square holding p.
func Occupied(p Piece) Contents {
	if !p.Kind().Valid() {
		return badContents
	}
	return Contents(p)
}

// Piece returns the occupying piece, if any.
func (c Contents) Piece() (Piece, bool) {
	p := Piece(c)
	if c <= Invalid || !p.Kind().Valid() {
		return 0, false
	}
	return p, true
}

// IsOccupied reports whether the square holds a piece.
func (c Contents) IsOccupied() bool {
	_, ok := c.Piece()
	return ok
}

// Valid reports whether c is Empty, Invalid or a piece of a known kind.
func (c Contents) Valid() bool {
	return c <= Invalid || c.IsOccupied()
}

// Glyph returns the display character for the square.
func (c Contents) Glyph() string {
	if p, ok := c.Piece(); ok {
		return p.Glyph()
	}
	return EmptyGlyph
}

// String returns the string representation of the contents.
func (c Contents) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Invalid:
		return "Invalid"
	}
	if p, ok := c.Piece(); ok {
		return p.String()
	}
	return fmt.Sprintf("Contents(0x%02x)", uint8(c))
}
