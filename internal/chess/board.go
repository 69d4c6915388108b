package chess

import (
	"io"
	"strings"

	"github.com/lgbarn/mailbox-go/internal/errors"
)

// Board is a 0x88 mailbox: a fixed array holding the contents of every one
// of the 128 indices. Border indices always hold Invalid and legal indices
// never do; Set enforces this.
type Board struct {
	squares [NumSquares]Contents
}

// Pawn ranks for each side.
const (
	WhitePawnRank = Rank2
	BlackPawnRank = Rank7
)

// Placement pairs a square with the piece standing on it.
type Placement struct {
	Square Square
	Piece  Piece
}

// startingPieces is the back-rank setup for both sides.
var startingPieces = [...]Placement{
	{A1, W(Rook)}, {B1, W(Knight)}, {C1, W(Bishop)}, {D1, W(Queen)},
	{E1, W(King)}, {F1, W(Bishop)}, {G1, W(Knight)}, {H1, W(Rook)},
	{A8, B(Rook)}, {B8, B(Knight)}, {C8, B(Bishop)}, {D8, B(Queen)},
	{E8, B(King)}, {F8, B(Bishop)}, {G8, B(Knight)}, {H8, B(Rook)},
}

// NewEmptyBoard creates a board with every legal square Empty and every
// border square Invalid.
func NewEmptyBoard() *Board {
	b := &Board{}
	for i := range b.squares {
		b.squares[i] = Empty
	}
	for i := range b.squares {
		if !Square(i).Valid() {
			b.squares[i] = Invalid
		}
	}
	return b
}

// NewStandardBoard creates a board set up in the standard starting position.
func NewStandardBoard() *Board {
	b := NewEmptyBoard()
	for file := FileA; file <= FileH; file++ {
		b.squares[Compose(file, WhitePawnRank)] = Occupied(W(Pawn))
		b.squares[Compose(file, BlackPawnRank)] = Occupied(B(Pawn))
	}
	for _, p := range startingPieces {
		b.squares[p.Square] = Occupied(p.Piece)
	}
	return b
}

// NewBoardWith creates an otherwise empty board holding the given pieces.
func NewBoardWith(pieces ...Placement) (*Board, error) {
	b := NewEmptyBoard()
	for _, p := range pieces {
		if err := b.Set(p.Square, Occupied(p.Piece)); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Get returns the contents at sq. Every index is readable; anything outside
// the legal board reads as Invalid.
func (b *Board) Get(sq Square) Contents {
	if int(sq) >= NumSquares {
		return Invalid
	}
	return b.squares[sq]
}

// Set writes contents to sq. Contents that are not Empty, Invalid or a piece
// of a known kind fail with errors.ErrInvalidPiece. Writing anything but
// Invalid to a border square, or Invalid to a legal square, fails with an
// *errors.OffBoardError. A failed Set leaves the board unchanged.
func (b *Board) Set(sq Square, c Contents) error {
	if !c.Valid() {
		return errors.Wrapf(errors.ErrInvalidPiece, "cannot write %v to 0x%02x", c, uint8(sq))
	}
	if sq.Valid() == (c == Invalid) {
		return &errors.OffBoardError{Square: uint8(sq), Contents: c.String()}
	}
	if int(sq) >= NumSquares {
		// Past the array: a border index being written Invalid.
		return nil
	}
	b.squares[sq] = c
	return nil
}

// Clear empties sq.
func (b *Board) Clear(sq Square) error {
	return b.Set(sq, Empty)
}

// Place puts piece on sq.
func (b *Board) Place(sq Square, piece Piece) error {
	return b.Set(sq, Occupied(piece))
}

// Copy creates a copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Pieces returns every occupied square in index order.
func (b *Board) Pieces() []Placement {
	var pieces []Placement
	for _, sq := range ValidSquares() {
		if p, ok := b.squares[sq].Piece(); ok {
			pieces = append(pieces, Placement{Square: sq, Piece: p})
		}
	}
	return pieces
}

// Glyphs returns the display character for every one of the 128 indices.
func (b *Board) Glyphs() [NumSquares]string {
	var chars [NumSquares]string
	for i, c := range b.squares {
		chars[i] = c.Glyph()
	}
	return chars
}

// GlyphFunc renders one square for Render.
type GlyphFunc func(sq Square, c Contents) string

// Render writes the board with rank 8 at the top, one character per square
// followed by a space, a rank label on the left and a file footer.
func (b *Board) Render(w io.Writer, glyph GlyphFunc) error {
	if glyph == nil {
		glyph = func(_ Square, c Contents) string { return c.Glyph() }
	}
	var sb strings.Builder
	for rank := Rank8; rank >= Rank1; rank-- {
		sb.WriteByte(byte(RankBase + rank))
		sb.WriteByte(' ')
		for file := FileA; file <= FileH; file++ {
			sq := Compose(file, rank)
			sb.WriteString(glyph(sq, b.squares[sq]))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  A B C D E F G H\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// String renders the board using plain glyphs.
func (b *Board) String() string {
	var sb strings.Builder
	_ = b.Render(&sb, nil)
	return sb.String()
}
