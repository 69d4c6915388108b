package chess

import "fmt"

// Move is an (origin, destination) pair of square indices. It carries no
// capture, check or legality information. Equality is structural.
type Move struct {
	From Square
	To   Square
}

// String returns the move in "E8-F6" form.
func (m Move) String() string {
	return m.From.String() + "-" + m.To.String()
}

// GoString returns the raw indices alongside the square names, e.g.
// "0x74 -> 0x55, E8 -> F6".
func (m Move) GoString() string {
	return fmt.Sprintf("0x%02x -> 0x%02x, %s -> %s", uint8(m.From), uint8(m.To), m.From, m.To)
}

// OnBoard reports whether both ends of the move are legal squares.
func (m Move) OnBoard() bool {
	return m.From.Valid() && m.To.Valid()
}

// ContainsDestination reports whether any move in moves lands on to.
func ContainsDestination(moves []Move, to Square) bool {
	for _, m := range moves {
		if m.To == to {
			return true
		}
	}
	return false
}

// Destinations returns the destination of every move, in order.
func Destinations(moves []Move) []Square {
	squares := make([]Square, len(moves))
	for i, m := range moves {
		squares[i] = m.To
	}
	return squares
}
