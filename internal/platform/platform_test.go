package platform

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/box-arcade/internal/core"
)

func TestReporterRoundOver(t *testing.T) {
	var out, logs bytes.Buffer
	logger, err := NewLogger(&logs, "test", "debug")
	if err != nil {
		t.Fatal(err)
	}
	r := NewReporter(&out, logger, "flappy")

	r.Report(core.Event{Kind: core.EventPointScored, Player: core.Player1, Score: 1})
	r.Report(core.Event{Kind: core.EventRoundOver, Score: 3})
	r.Report(core.Event{Kind: core.EventRoundOver, Score: 0})

	if got := out.String(); got != "Last score: 3\nLast score: 0\n" {
		t.Errorf("unexpected console output %q", got)
	}
	if r.Rounds() != 2 {
		t.Errorf("Rounds() = %d", r.Rounds())
	}
	if !strings.Contains(logs.String(), "point_scored") {
		t.Errorf("point events should be logged at debug, logs: %q", logs.String())
	}
}

func TestReporterWithoutLogger(t *testing.T) {
	var out bytes.Buffer
	r := NewReporter(&out, nil, "dodger")

	r.Report(core.Event{Kind: core.EventPlayerHit, Score: 90})
	if out.Len() != 0 {
		t.Errorf("hits should not reach the console, got %q", out.String())
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level   string
		want    log.Level
		wantErr bool
	}{
		{"", log.InfoLevel, false},
		{"debug", log.DebugLevel, false},
		{"warn", log.WarnLevel, false},
		{"loud", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			logger, err := NewLogger(&bytes.Buffer{}, "test", tc.level)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if logger.GetLevel() != tc.want {
				t.Errorf("level = %v, expected %v", logger.GetLevel(), tc.want)
			}
		})
	}
}

func TestOpenLogFile(t *testing.T) {
	w, closeFn, err := OpenLogFile("")
	if err != nil || w == nil {
		t.Fatalf("empty path should discard, err %v", err)
	}
	if err := closeFn(); err != nil {
		t.Error(err)
	}

	path := filepath.Join(t.TempDir(), "arcade.log")
	w, closeFn, err = OpenLogFile(path)
	if err != nil {
		t.Fatal(err)
	}
	logger, _ := NewLogger(w, "test", "info")
	logger.Info("hello")
	if err := closeFn(); err != nil {
		t.Error(err)
	}

	if _, _, err := OpenLogFile(filepath.Join(t.TempDir(), "missing", "x.log")); err == nil {
		t.Error("expected an error for a missing directory")
	}
}

func TestRuntime(t *testing.T) {
	cfg := Runtime(0, 42)
	if cfg.TickRate != 60 || cfg.Seed != 42 {
		t.Errorf("unexpected runtime %+v", cfg)
	}

	cfg = Runtime(30, 0)
	if cfg.TickRate != 30 {
		t.Errorf("TickRate = %d", cfg.TickRate)
	}
	if cfg.Seed == 0 {
		t.Error("zero seed should be replaced")
	}
}
