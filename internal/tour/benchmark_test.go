package tour

import (
	"testing"

	"github.com/lgbarn/mailbox-go/internal/chess"
)

func BenchmarkValidateDemonstration(b *testing.B) {
	path := DemonstrationPath()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Validate(DemonstrationStart, path)
	}
}

func BenchmarkSolve(b *testing.B) {
	for _, start := range []chess.Square{chess.E8, chess.A1, chess.D4} {
		b.Run(start.String(), func(b *testing.B) {
			var s Solver
			for i := 0; i < b.N; i++ {
				s.Solve(start)
			}
		})
	}
}
