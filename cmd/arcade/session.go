package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/box-arcade/internal/config"
	"github.com/vovakirdan/box-arcade/internal/platform"
	"github.com/vovakirdan/box-arcade/internal/registry"
)

// newLogger builds the command logger. In terminal mode logs would corrupt
// the alternate screen, so they are discarded unless --log-file is set.
func newLogger(terminal bool) (*log.Logger, func() error, error) {
	var w io.Writer = os.Stderr
	closeFn := func() error { return nil }
	if flagLogFile != "" || terminal {
		var err error
		w, closeFn, err = platform.OpenLogFile(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
	}

	logger, err := platform.NewLogger(w, "arcade", flagLogLevel)
	if err != nil {
		_ = closeFn()
		return nil, nil, err
	}
	return logger, closeFn, nil
}

// createGame looks up id and builds it with the tuning at configPath.
func createGame(id, configPath string, logger *log.Logger) (registry.Game, error) {
	if !registry.Exists(id) {
		return nil, fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", id)
	}

	game, err := registry.Create(id, registry.Options{ConfigPath: configPath})
	if err != nil {
		return nil, err
	}

	w, h := game.Field()
	logger.Info("game created", "game", id, "width", w, "height", h, "config", config.Source(id, configPath))
	return game, nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
