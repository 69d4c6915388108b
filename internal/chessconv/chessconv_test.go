package chessconv

import (
	"sort"
	"testing"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/mailbox-go/internal/chess"
	"github.com/lgbarn/mailbox-go/internal/engine"
	chesserrors "github.com/lgbarn/mailbox-go/internal/errors"
	"github.com/lgbarn/mailbox-go/internal/testutil"
)

const standardPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// whiteToMove completes a piece placement into a full FEN.
const whiteToMove = " w - - 0 1"

func TestSquareMapping(t *testing.T) {
	tests := []struct {
		sq   chess.Square
		want nchess.Square
	}{
		{chess.A1, nchess.A1},
		{chess.H1, nchess.H1},
		{chess.E4, nchess.E4},
		{chess.E8, nchess.E8},
		{chess.A8, nchess.A8},
		{chess.H8, nchess.H8},
	}
	for _, tt := range tests {
		got, err := ToSquare(tt.sq)
		testutil.AssertNoError(t, err)
		if got != tt.want {
			t.Errorf("ToSquare(%v) = %v; want %v", tt.sq, got, tt.want)
		}
		if back := FromSquare(got); back != tt.sq {
			t.Errorf("FromSquare(%v) = %v; want %v", got, back, tt.sq)
		}
	}

	_, err := ToSquare(chess.Square(0x08))
	testutil.AssertErrorIs(t, err, chesserrors.ErrOffBoard)
}

func TestPieceMapping(t *testing.T) {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, kind := range chess.PieceKinds {
			p := chess.MakePiece(colour, kind)
			np := ToPiece(p)
			if np == nchess.NoPiece {
				t.Fatalf("ToPiece(%v) = NoPiece", p)
			}
			back, ok := FromPiece(np)
			if !ok || back != p {
				t.Errorf("FromPiece(ToPiece(%v)) = %v, %v", p, back, ok)
			}
		}
	}
	if got := ToPiece(chess.MakePiece(chess.White, chess.PieceKind(0))); got != nchess.NoPiece {
		t.Errorf("ToPiece(invalid kind) = %v; want NoPiece", got)
	}
	if _, ok := FromPiece(nchess.NoPiece); ok {
		t.Error("FromPiece(NoPiece) reported a piece")
	}
}

func TestStandardBoardPlacement(t *testing.T) {
	testutil.AssertEqual(t, Placement(chess.NewStandardBoard()), standardPlacement)
}

func TestFromBoardMatchesStartingPosition(t *testing.T) {
	b, err := FromBoard(nchess.NewGame().Position().Board())
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, b.Pieces(), chess.NewStandardBoard().Pieces())
}

func TestParseFEN(t *testing.T) {
	b, err := ParseFEN("8/8/8/8/3N4/8/8/K6k w - - 0 1")
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, b.Pieces(), []chess.Placement{
		{Square: chess.A1, Piece: chess.W(chess.King)},
		{Square: chess.H1, Piece: chess.B(chess.King)},
		{Square: chess.D4, Piece: chess.W(chess.Knight)},
	})

	bare, err := ParseFEN(standardPlacement)
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, bare.Pieces(), chess.NewStandardBoard().Pieces())

	// No kings: placement only, no game state needed.
	lone, err := ParseFEN("8/8/8/8/8/8/8/N7")
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, lone.Pieces(), []chess.Placement{{Square: chess.A1, Piece: chess.W(chess.Knight)}})
}

func TestParseFENRejects(t *testing.T) {
	for _, fen := range []string{"", "   ", "not a fen", "8/8/8 w - - 0 1"} {
		if _, err := ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q) = nil error", fen)
		}
	}
}

// TestKnightMatchesReference compares on-board knight destinations with the
// legal knight moves of an otherwise empty position. The kings stand where
// none of the tested origins attack them.
func TestKnightMatchesReference(t *testing.T) {
	origins := []chess.Square{chess.D4, chess.E5, chess.A1, chess.H8, chess.C3, chess.E8, chess.B2, chess.G5}
	for _, from := range origins {
		t.Run(from.String(), func(t *testing.T) {
			b, err := chess.NewBoardWith(
				chess.Placement{Square: from, Piece: chess.W(chess.Knight)},
				chess.Placement{Square: chess.H1, Piece: chess.W(chess.King)},
				chess.Placement{Square: chess.A8, Piece: chess.B(chess.King)},
			)
			testutil.RequireNoError(t, err)

			opt, err := nchess.FEN(Placement(b) + whiteToMove)
			testutil.RequireNoError(t, err)
			game := nchess.NewGame(opt)

			origin, err := ToSquare(from)
			testutil.RequireNoError(t, err)
			var want []chess.Square
			for _, m := range game.ValidMoves() {
				if m.S1() == origin {
					want = append(want, FromSquare(m.S2()))
				}
			}

			moves, err := engine.OnBoard(chess.Knight, from)
			testutil.RequireNoError(t, err)
			testutil.AssertEqual(t, sorted(chess.Destinations(moves)), sorted(want))
		})
	}
}

func sorted(squares []chess.Square) []chess.Square {
	out := append([]chess.Square(nil), squares...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
