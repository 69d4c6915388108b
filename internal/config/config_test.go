package config

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/mailbox-go/internal/chess"
	chesserrors "github.com/lgbarn/mailbox-go/internal/errors"
	"github.com/lgbarn/mailbox-go/internal/testutil"
)

// TestNewConfig_Defaults verifies Config has sensible defaults
func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Mode != ModeBoard {
		t.Errorf("Mode = %v, want %v", cfg.Mode, ModeBoard)
	}
	if cfg.Verbosity != Summary {
		t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, Summary)
	}
	if cfg.Start != chess.E8 {
		t.Errorf("Start = %v, want E8", cfg.Start)
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want at least 1", cfg.Workers)
	}
	if !cfg.UseColour {
		t.Error("UseColour should be true by default")
	}
	if cfg.OutputFile == nil || cfg.LogFile == nil {
		t.Error("output streams should be set by default")
	}
	testutil.AssertNoError(t, cfg.Validate(), "default config")
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeBoard, "board"},
		{ModeTour, "tour"},
		{ModeSolve, "solve"},
		{ModeAll, "all"},
		{Mode(9), "Mode(9)"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", int(tt.mode), got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"bad mode", func(c *Config) { c.Mode = Mode(7) }, "unknown mode"},
		{"bad verbosity", func(c *Config) { c.Verbosity = 3 }, "verbosity 3"},
		{"border start", func(c *Config) { c.Start = chess.Square(0x78) }, "start 0x78"},
		{"no workers", func(c *Config) { c.Workers = 0 }, "workers must be at least 1"},
		{"negative node limit", func(c *Config) { c.NodeLimit = -1 }, "node limit"},
		{"nil output", func(c *Config) { c.OutputFile = nil }, "no output stream"},
		{"nil log", func(c *Config) { c.LogFile = nil }, "no log stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidConfig)
			if err != nil && !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestValidateReportsAll(t *testing.T) {
	cfg := NewConfig()
	cfg.Workers = 0
	cfg.Verbosity = -1
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil")
	}
	msg := err.Error()
	if !strings.Contains(msg, "workers") || !strings.Contains(msg, "verbosity") {
		t.Errorf("Validate() = %v, want both problems reported", err)
	}
}

func TestLogf(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfig()
	cfg.LogFile = &buf

	cfg.Logf(Summary, "solved %v", chess.E8)
	cfg.Logf(Verbose, "step %d", 1)
	testutil.AssertEqual(t, buf.String(), "solved E8\n")

	buf.Reset()
	cfg.Verbosity = Verbose
	cfg.Logf(Verbose, "step %d", 1)
	testutil.AssertEqual(t, buf.String(), "step 1\n")

	buf.Reset()
	cfg.Verbosity = Quiet
	cfg.Logf(Summary, "hidden")
	testutil.AssertEqual(t, buf.String(), "")
}
