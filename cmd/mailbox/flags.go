// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/mailbox-go/internal/chess"
	"github.com/lgbarn/mailbox-go/internal/config"
	"github.com/lgbarn/mailbox-go/internal/errors"
)

var (
	// Modes (at most one)
	showBoard = flag.Bool("board", false, "Print the starting position (default mode)")
	runTour   = flag.Bool("tour", false, "Replay the demonstration knight's tour")
	solveTour = flag.Bool("solve", false, "Solve a knight's tour from the -from square")
	solveAll  = flag.Bool("all", false, "Solve knight's tours from every square")

	// Mode options
	fromSquare = flag.String("from", "e8", "Start square for -tour and -solve")
	fenString  = flag.String("fen", "", "Position to print with -board (FEN or piece placement)")
	dbDir      = flag.String("db", "", "Store solved tours in this BadgerDB directory")
	nodeLimit  = flag.Int("nodes", 0, "Search node limit per tour (0 = default)")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	noColour   = flag.Bool("nocolor", false, "Don't colour pieces")

	// Logging
	logFile = flag.String("l", "", "Write diagnostics to log file")
	verbose = flag.Bool("v", false, "Running commentary, including every tour step")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (errors only)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of worker threads for -all (0 = auto-detect based on CPU cores)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyModeFlags(cfg); err != nil {
		return err
	}

	start, err := chess.ParseSquare(*fromSquare)
	if err != nil {
		return errors.Wrap(err, "-from")
	}
	cfg.Start = start

	cfg.FEN = *fenString
	cfg.DatabaseDir = *dbDir
	cfg.NodeLimit = *nodeLimit
	cfg.UseColour = !*noColour
	if *workers > 0 {
		cfg.Workers = *workers
	}

	switch {
	case *quiet:
		cfg.Verbosity = config.Quiet
	case *verbose:
		cfg.Verbosity = config.Verbose
	}
	return nil
}

// applyModeFlags selects the mode, rejecting more than one.
func applyModeFlags(cfg *config.Config) error {
	modes := []struct {
		set  bool
		mode config.Mode
	}{
		{*showBoard, config.ModeBoard},
		{*runTour, config.ModeTour},
		{*solveTour, config.ModeSolve},
		{*solveAll, config.ModeAll},
	}

	var chosen []config.Mode
	for _, m := range modes {
		if m.set {
			chosen = append(chosen, m.mode)
		}
	}
	switch len(chosen) {
	case 0:
		cfg.Mode = config.ModeBoard
	case 1:
		cfg.Mode = chosen[0]
	default:
		return errors.Wrapf(errors.ErrInvalidConfig, "choose one of -board, -tour, -solve, -all (got %v)", chosen)
	}
	return nil
}
