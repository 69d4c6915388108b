// Package config provides configuration for the mailbox command.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/mailbox-go/internal/chess"
	"github.com/lgbarn/mailbox-go/internal/errors"
)

// Mode selects what the command does.
type Mode int

const (
	ModeBoard Mode = iota // Print the standard starting position
	ModeTour              // Replay the demonstration tour
	ModeSolve             // Solve a tour from one start square
	ModeAll               // Solve tours from every square in parallel
)

var modeNames = [...]string{"board", "tour", "solve", "all"}

// String returns the flag name for the mode.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Verbosity levels.
const (
	Quiet   = 0 // Errors only
	Summary = 1 // One line per result
	Verbose = 2 // Running commentary, every tour step
)

// Config holds all program configuration.
type Config struct {
	Mode      Mode
	Verbosity int // Quiet, Summary or Verbose

	// Start is the tour start square for ModeTour and ModeSolve.
	Start chess.Square

	// FEN, if set, replaces the starting position in ModeBoard.
	FEN string

	// DatabaseDir, if set, stores solved tours in BadgerDB.
	DatabaseDir string

	// Solver settings
	Workers   int
	NodeLimit int // 0 = tour.DefaultNodeLimit

	// UseColour colours pieces by side when rendering.
	UseColour bool

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Mode:       ModeBoard,
		Verbosity:  Summary,
		Start:      chess.E8,
		Workers:    runtime.NumCPU(),
		UseColour:  true,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate reports every setting that is out of range.
func (c *Config) Validate() error {
	var result *multierror.Error
	invalid := func(format string, args ...interface{}) {
		result = multierror.Append(result, errors.Wrapf(errors.ErrInvalidConfig, format, args...))
	}

	if c.Mode < ModeBoard || c.Mode > ModeAll {
		invalid("unknown mode %v", c.Mode)
	}
	if c.Verbosity < Quiet || c.Verbosity > Verbose {
		invalid("verbosity %d outside %d-%d", c.Verbosity, Quiet, Verbose)
	}
	if !c.Start.Valid() {
		invalid("start 0x%02x is not on the board", uint8(c.Start))
	}
	if c.Workers < 1 {
		invalid("workers must be at least 1, got %d", c.Workers)
	}
	if c.NodeLimit < 0 {
		invalid("node limit must not be negative, got %d", c.NodeLimit)
	}
	if c.OutputFile == nil {
		invalid("no output stream")
	}
	if c.LogFile == nil {
		invalid("no log stream")
	}
	return result.ErrorOrNil()
}

// Logf writes a line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
