// run.go - Mode dispatch and output
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/mailbox-go/internal/chess"
	"github.com/lgbarn/mailbox-go/internal/chessconv"
	"github.com/lgbarn/mailbox-go/internal/config"
	chesserrors "github.com/lgbarn/mailbox-go/internal/errors"
	"github.com/lgbarn/mailbox-go/internal/storage"
	"github.com/lgbarn/mailbox-go/internal/tour"
	"github.com/lgbarn/mailbox-go/internal/worker"
)

var (
	whiteColour = color.New(color.FgHiWhite, color.Bold)
	blackColour = color.New(color.FgRed, color.Bold)
	emptyColour = color.New(color.FgHiBlack)
)

// run executes the configured mode.
func run(cfg *config.Config) error {
	cfg.Logf(config.Verbose, "mode %v", cfg.Mode)

	switch cfg.Mode {
	case config.ModeTour:
		return runTourMode(cfg)
	case config.ModeSolve:
		return runSolve(cfg)
	case config.ModeAll:
		return runAll(cfg)
	default:
		return runBoard(cfg)
	}
}

// glyphFunc colours pieces by side, or returns nil for plain glyphs.
func glyphFunc(cfg *config.Config) chess.GlyphFunc {
	if !cfg.UseColour {
		return nil
	}
	return func(_ chess.Square, c chess.Contents) string {
		p, ok := c.Piece()
		switch {
		case !ok:
			return emptyColour.Sprint(c.Glyph())
		case p.Colour() == chess.White:
			return whiteColour.Sprint(p.Glyph())
		default:
			return blackColour.Sprint(p.Glyph())
		}
	}
}

// formatPath joins start and path as upper-case square names.
func formatPath(start chess.Square, path []chess.Square) string {
	names := make([]string, 0, len(path)+1)
	names = append(names, start.String())
	for _, sq := range path {
		names = append(names, sq.String())
	}
	return strings.Join(names, " ")
}

func runBoard(cfg *config.Config) error {
	b := chess.NewStandardBoard()
	if cfg.FEN != "" {
		var err error
		if b, err = chessconv.ParseFEN(cfg.FEN); err != nil {
			return err
		}
		cfg.Logf(config.Verbose, "position %s", chessconv.Placement(b))
	}
	return b.Render(cfg.OutputFile, glyphFunc(cfg))
}

func runTourMode(cfg *config.Config) error {
	start, path := tour.DemonstrationStart, tour.DemonstrationPath()
	if cfg.Start != tour.DemonstrationStart {
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		if store != nil {
			defer store.Close()
		}
		start = cfg.Start
		if path, err = solveFrom(cfg, store, start); err != nil {
			return err
		}
	}

	b := chess.NewEmptyBoard()
	glyph := glyphFunc(cfg)
	err := tour.Replay(b, chess.W(chess.Knight), start, path, func(step int, b *chess.Board) error {
		if cfg.Verbosity < config.Verbose {
			return nil
		}
		from := start
		if step > 1 {
			from = path[step-2]
		}
		fmt.Fprintf(cfg.OutputFile, "%d. %v\n", step, chess.Move{From: from, To: path[step-1]})
		return b.Render(cfg.OutputFile, glyph)
	})
	if err != nil {
		return err
	}
	if err := tour.Complete(start, path); err != nil {
		return err
	}

	if cfg.Verbosity < config.Verbose {
		if err := b.Render(cfg.OutputFile, glyph); err != nil {
			return err
		}
	}
	fmt.Fprintln(cfg.OutputFile, formatPath(start, path))

	visited := tour.Visited(append([]chess.Square{start}, path...))
	cfg.Logf(config.Summary, "tour from %v: %d squares, visited 0x%02x", start, len(path)+1, uint8(visited))
	return nil
}

func runSolve(cfg *config.Config) error {
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	path, err := solveFrom(cfg, store, cfg.Start)
	if err != nil {
		return err
	}
	fmt.Fprintln(cfg.OutputFile, formatPath(cfg.Start, path))
	return nil
}

// solveFrom returns a stored tour from start if there is one, and otherwise
// solves and stores it.
func solveFrom(cfg *config.Config, store *storage.Store, start chess.Square) ([]chess.Square, error) {
	if store != nil {
		rec, err := store.Get(start)
		switch {
		case err == nil:
			path, err := rec.Squares()
			if err == nil {
				err = tour.Complete(start, path)
			}
			if err != nil {
				return nil, chesserrors.Wrapf(err, "stored tour from %v", start)
			}
			cfg.Logf(config.Summary, "tour from %v loaded from %s", start, cfg.DatabaseDir)
			return path, nil
		case !errors.Is(err, chesserrors.ErrNotFound):
			return nil, err
		}
	}

	s := tour.Solver{NodeLimit: cfg.NodeLimit}
	path, err := s.Solve(start)
	if err != nil {
		return nil, err
	}
	cfg.Logf(config.Summary, "tour from %v solved in %d nodes", start, s.Nodes())

	if store != nil {
		if err := store.Put(storage.NewTourRecord(start, path, s.Nodes())); err != nil {
			return nil, err
		}
	}
	return path, nil
}

func runAll(cfg *config.Config) error {
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	starts := chess.ValidSquares()
	results := worker.SolveAll(starts, worker.TourSolver(cfg.NodeLimit),
		worker.WithWorkers(cfg.Workers), worker.WithBufferSize(len(starts)))

	var (
		failures *multierror.Error
		solved   int
	)
	for _, r := range results {
		if r.Err != nil {
			failures = multierror.Append(failures, chesserrors.Wrapf(r.Err, "tour from %v", r.Start))
			continue
		}
		solved++
		cfg.Logf(config.Verbose, "%v: %d nodes", r.Start, r.Nodes)
		fmt.Fprintln(cfg.OutputFile, formatPath(r.Start, r.Path))

		if store != nil {
			if err := store.Put(storage.NewTourRecord(r.Start, r.Path, r.Nodes)); err != nil {
				failures = multierror.Append(failures, err)
			}
		}
	}

	cfg.Logf(config.Summary, "%d of %d tours solved with %d workers", solved, len(starts), cfg.Workers)
	return failures.ErrorOrNil()
}

// openStore opens the tour store, or returns nil when none is configured.
func openStore(cfg *config.Config) (*storage.Store, error) {
	if cfg.DatabaseDir == "" {
		return nil, nil
	}
	store, err := storage.Open(cfg.DatabaseDir)
	if err != nil {
		return nil, err
	}
	cfg.Logf(config.Verbose, "tour store %s", cfg.DatabaseDir)
	return store, nil
}
