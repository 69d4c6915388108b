package tour

import (
	"sort"

	"github.com/lgbarn/mailbox-go/internal/chess"
	"github.com/lgbarn/mailbox-go/internal/engine"
	"github.com/lgbarn/mailbox-go/internal/errors"
)

// DefaultNodeLimit bounds the search in Solve.
const DefaultNodeLimit = 1 << 22

// Solver searches for knight's tours. Candidate jumps are tried in
// Warnsdorff order: fewest onward jumps first, ties broken by lower square
// index. A dead end backtracks.
type Solver struct {
	// NodeLimit caps the number of squares entered; 0 means DefaultNodeLimit.
	NodeLimit int

	visited [chess.NumSquares]bool
	path    []chess.Square
	nodes   int
}

// Solve finds a tour from start with a fresh Solver.
func Solve(start chess.Square) ([]chess.Square, error) {
	var s Solver
	return s.Solve(start)
}

// Solve returns the Length squares visited after start. The Solver may be
// reused but not shared between goroutines.
func (s *Solver) Solve(start chess.Square) ([]chess.Square, error) {
	if !start.Valid() {
		return nil, &errors.OffBoardError{Square: uint8(start), Contents: "tour start"}
	}
	s.visited = [chess.NumSquares]bool{}
	s.path = make([]chess.Square, 0, Length)
	s.nodes = 0

	s.visited[start] = true
	found, err := s.search(start)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.Wrapf(errors.ErrNoTour, "from %v", start)
	}
	return s.path, nil
}

// Nodes reports how many squares the last Solve entered.
func (s *Solver) Nodes() int {
	return s.nodes
}

func (s *Solver) search(current chess.Square) (bool, error) {
	s.nodes++
	limit := s.NodeLimit
	if limit <= 0 {
		limit = DefaultNodeLimit
	}
	if s.nodes > limit {
		return false, errors.Wrapf(errors.ErrNoTour, "node limit %d reached", limit)
	}
	if len(s.path) == Length {
		return true, nil
	}

	next, err := s.unvisited(current)
	if err != nil {
		return false, err
	}
	degree := make(map[chess.Square]int, len(next))
	for _, sq := range next {
		onward, err := s.unvisited(sq)
		if err != nil {
			return false, err
		}
		degree[sq] = len(onward)
	}
	sort.Slice(next, func(i, j int) bool {
		if degree[next[i]] != degree[next[j]] {
			return degree[next[i]] < degree[next[j]]
		}
		return next[i] < next[j]
	})

	for _, sq := range next {
		s.visited[sq] = true
		s.path = append(s.path, sq)
		found, err := s.search(sq)
		if found || err != nil {
			return found, err
		}
		s.visited[sq] = false
		s.path = s.path[:len(s.path)-1]
	}
	return false, nil
}

// unvisited returns the on-board knight destinations from sq not yet visited.
func (s *Solver) unvisited(sq chess.Square) ([]chess.Square, error) {
	moves, err := engine.OnBoard(chess.Knight, sq)
	if err != nil {
		return nil, err
	}
	squares := make([]chess.Square, 0, len(moves))
	for _, m := range moves {
		if !s.visited[m.To] {
			squares = append(squares, m.To)
		}
	}
	return squares, nil
}
