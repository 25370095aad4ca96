package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSimCommand(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "arcade.log")

	first, err := execute(t, "sim", "dodger", "--ticks", "120", "--fast", "--seed", "7", "--log-file", logFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(first, "ticks=120") {
		t.Errorf("unexpected output %q", first)
	}

	second, err := execute(t, "sim", "dodger", "--ticks", "120", "--fast", "--seed", "7", "--log-file", logFile)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("same seed should reproduce the run:\n%s\n%s", first, second)
	}
}

func TestSimFlappyEndsRounds(t *testing.T) {
	// Without flapping the box never leaves idle.
	out, err := execute(t, "sim", "flappy", "--ticks", "300", "--fast", "--seed", "1", "--log-file", filepath.Join(t.TempDir(), "a.log"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "idle=true") || !strings.Contains(out, "rounds=0") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestSimRejectsBadInput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "arcade.log")
	if _, err := execute(t, "sim", "tetris", "--ticks", "10", "--fast", "--log-file", logFile); err == nil {
		t.Error("unknown game should fail")
	}
	if _, err := execute(t, "sim", "dodger", "--ticks", "0", "--log-file", logFile); err == nil {
		t.Error("zero ticks should fail")
	}
	flagTicks = 600
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "config", "pong4p")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "players: 4") {
		t.Errorf("pong4p config should list four players:\n%s", out)
	}
	if !strings.HasPrefix(out, "# source: ") {
		t.Errorf("config output should start with its source:\n%s", out)
	}

	if _, err := execute(t, "config", "snake"); err == nil {
		t.Error("unknown game should fail")
	}
}
