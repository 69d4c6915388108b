package main

import (
	"testing"

	"github.com/lgbarn/mailbox-go/internal/chess"
	"github.com/lgbarn/mailbox-go/internal/config"
	chesserrors "github.com/lgbarn/mailbox-go/internal/errors"
	"github.com/lgbarn/mailbox-go/internal/testutil"
)

// saveRestoreBool sets a bool flag and returns a func restoring it.
// Usage: defer saveRestoreBool(runTour, true)()
func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyFlagsDefaults(t *testing.T) {
	cfg := config.NewConfig()
	testutil.RequireNoError(t, applyFlags(cfg))

	testutil.AssertEqual(t, cfg.Mode, config.ModeBoard)
	testutil.AssertEqual(t, cfg.Start, chess.E8)
	testutil.AssertEqual(t, cfg.Verbosity, config.Summary)
	testutil.AssertTrue(t, cfg.UseColour, "colour on by default")
	testutil.AssertNoError(t, cfg.Validate())
}

func TestApplyModeFlags(t *testing.T) {
	tests := []struct {
		name string
		flag *bool
		want config.Mode
	}{
		{"board", showBoard, config.ModeBoard},
		{"tour", runTour, config.ModeTour},
		{"solve", solveTour, config.ModeSolve},
		{"all", solveAll, config.ModeAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(tt.flag, true)()
			cfg := config.NewConfig()
			testutil.RequireNoError(t, applyModeFlags(cfg))
			testutil.AssertEqual(t, cfg.Mode, tt.want)
		})
	}

	t.Run("two modes rejected", func(t *testing.T) {
		defer saveRestoreBool(runTour, true)()
		defer saveRestoreBool(solveAll, true)()
		err := applyModeFlags(config.NewConfig())
		testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidConfig)
	})
}

func TestApplyFlagsFrom(t *testing.T) {
	t.Run("valid square", func(t *testing.T) {
		defer saveRestoreString(fromSquare, "B1")()
		cfg := config.NewConfig()
		testutil.RequireNoError(t, applyFlags(cfg))
		testutil.AssertEqual(t, cfg.Start, chess.B1)
	})

	t.Run("invalid square", func(t *testing.T) {
		defer saveRestoreString(fromSquare, "i9")()
		err := applyFlags(config.NewConfig())
		testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidSquare)
	})
}

func TestApplyFlagsOptions(t *testing.T) {
	defer saveRestoreString(fenString, "8/8/8/8/8/8/8/8")()
	defer saveRestoreString(dbDir, "/tmp/tours")()
	defer saveRestoreInt(nodeLimit, 500)()
	defer saveRestoreInt(workers, 3)()
	defer saveRestoreBool(noColour, true)()

	cfg := config.NewConfig()
	testutil.RequireNoError(t, applyFlags(cfg))

	testutil.AssertEqual(t, cfg.FEN, "8/8/8/8/8/8/8/8")
	testutil.AssertEqual(t, cfg.DatabaseDir, "/tmp/tours")
	testutil.AssertEqual(t, cfg.NodeLimit, 500)
	testutil.AssertEqual(t, cfg.Workers, 3)
	testutil.AssertTrue(t, !cfg.UseColour, "-nocolor disables colour")
}

func TestApplyFlagsWorkersAuto(t *testing.T) {
	defer saveRestoreInt(workers, 0)()
	cfg := config.NewConfig()
	want := cfg.Workers
	testutil.RequireNoError(t, applyFlags(cfg))
	testutil.AssertEqual(t, cfg.Workers, want)
}

func TestApplyFlagsVerbosity(t *testing.T) {
	t.Run("verbose", func(t *testing.T) {
		defer saveRestoreBool(verbose, true)()
		cfg := config.NewConfig()
		testutil.RequireNoError(t, applyFlags(cfg))
		testutil.AssertEqual(t, cfg.Verbosity, config.Verbose)
	})

	t.Run("quiet wins over verbose", func(t *testing.T) {
		defer saveRestoreBool(verbose, true)()
		defer saveRestoreBool(quiet, true)()
		cfg := config.NewConfig()
		testutil.RequireNoError(t, applyFlags(cfg))
		testutil.AssertEqual(t, cfg.Verbosity, config.Quiet)
	})
}
