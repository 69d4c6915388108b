package chess

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/mailbox-go/internal/errors"
)

// Square is an index into the 128-slot mailbox. The rank lives in the high
// nibble and the file in the low nibble, so index = rank*16 + file. Bit 3 of
// either nibble marks a border square; see Valid.
type Square uint8

// Constants for board dimensions and the 0x88 encoding.
const (
	BoardSize  = 8
	NumSquares = 128
	borderMask = 0x88

	RankBase = '1'
	FileBase = 'a'
)

// File and rank coordinates, 0-based.
const (
	FileA = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// Square constants for the 64 legal squares.
const (
	A1, B1, C1, D1, E1, F1, G1, H1 Square = 0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07
	A2, B2, C2, D2, E2, F2, G2, H2 Square = 0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17
	A3, B3, C3, D3, E3, F3, G3, H3 Square = 0x20, 0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27
	A4, B4, C4, D4, E4, F4, G4, H4 Square = 0x30, 0x31, 0x32, 0x33, 0x34, 0x35, 0x36, 0x37
	A5, B5, C5, D5, E5, F5, G5, H5 Square = 0x40, 0x41, 0x42, 0x43, 0x44, 0x45, 0x46, 0x47
	A6, B6, C6, D6, E6, F6, G6, H6 Square = 0x50, 0x51, 0x52, 0x53, 0x54, 0x55, 0x56, 0x57
	A7, B7, C7, D7, E7, F7, G7, H7 Square = 0x60, 0x61, 0x62, 0x63, 0x64, 0x65, 0x66, 0x67
	A8, B8, C8, D8, E8, F8, G8, H8 Square = 0x70, 0x71, 0x72, 0x73, 0x74, 0x75, 0x76, 0x77
)

// InvalidName is the name of every border square.
const InvalidName = "Invalid"

// Compose packs file and rank into a square index. Arithmetic wraps modulo
// 256, so a component that has stepped below 0 or above 7 yields an index
// with border bits set instead of failing.
func Compose(file, rank int) Square {
	return Square(uint8(rank*16 + file))
}

// Decompose splits a square into (file, rank). The file keeps only its low
// three bits; use Valid, not Decompose, to test for the border.
// Compose(Decompose(sq)) == sq for every valid sq.
func Decompose(sq Square) (file, rank int) {
	return int(sq & 0x07), int(sq >> 4)
}

// Valid reports whether sq is one of the 64 legal squares.
func (sq Square) Valid() bool {
	return sq&borderMask == 0
}

// File returns the 0-based file of a valid square.
func (sq Square) File() int {
	file, _ := Decompose(sq)
	return file
}

// Rank returns the 0-based rank of a valid square.
func (sq Square) Rank() int {
	_, rank := Decompose(sq)
	return rank
}

// String returns the upper-case algebraic name ("E8"), or "Invalid" for a
// border square.
func (sq Square) String() string {
	if !sq.Valid() {
		return InvalidName
	}
	return string([]byte{byte('A' + sq.File()), byte(RankBase + sq.Rank())})
}

// ValidSquares returns the 64 legal squares in index order.
func ValidSquares() []Square {
	squares := make([]Square, 0, BoardSize*BoardSize)
	for i := 0; i < NumSquares; i++ {
		if sq := Square(i); sq.Valid() {
			squares = append(squares, sq)
		}
	}
	return squares
}

// ParseSquare converts a two-character token such as "e8" into a square.
// Upper-case file letters are accepted, so ParseSquare(sq.String()) == sq.
func ParseSquare(token string) (Square, error) {
	return parseSquareAt(token, 0)
}

func parseSquareAt(token string, column int) (Square, error) {
	if len(token) != 2 {
		return 0, invalidSquare(token, column)
	}
	file := int(unicode.ToLower(rune(token[0]))) - FileBase
	rank := int(token[1]) - RankBase
	if file < FileA || file > FileH || rank < Rank1 || rank > Rank8 {
		return 0, invalidSquare(token, column)
	}
	return Compose(file, rank), nil
}

func invalidSquare(token string, column int) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidSquare,
		Column:   column,
		Expected: "file a-h followed by rank 1-8",
		Got:      strconv.Quote(token),
	}
}

// ParseSquares parses a whitespace separated list of square names. Every
// malformed token is reported; the returned error unwraps to each token's
// *errors.ParseError.
func ParseSquares(s string) ([]Square, error) {
	var (
		squares []Square
		result  *multierror.Error
	)
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		sq, err := parseSquareAt(s[start:end], start+1)
		if err != nil {
			result = multierror.Append(result, err)
		} else {
			squares = append(squares, sq)
		}
		start = -1
	}
	for i, r := range s {
		if unicode.IsSpace(r) {
			flush(i)
		} else if start < 0 {
			start = i
		}
	}
	flush(len(s))

	if err := result.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("parsing squares: %w", err)
	}
	return squares, nil
}

// MustParseSquares is like ParseSquares but panics on error. It is intended
// for fixed sequences compiled into the program.
func MustParseSquares(s string) []Square {
	squares, err := ParseSquares(s)
	if err != nil {
		panic(err)
	}
	return squares
}
