package window

import (
	"os"

	"github.com/vovakirdan/box-arcade/internal/platform"
	"github.com/vovakirdan/box-arcade/internal/registry"
)

// Main runs the registered game id in a window with its built-in tuning.
// It is the whole body of the per-game executables, which take no flags,
// environment or config files; any setup failure is fatal.
func Main(id string) {
	logger, err := platform.NewLogger(os.Stderr, id, "info")
	if err != nil {
		panic(err)
	}

	game, err := registry.Create(id, registry.Options{Embedded: true})
	if err != nil {
		logger.Fatal("could not create game", "error", err)
	}

	cfg := platform.Runtime(0, 0)
	reporter := platform.NewReporter(os.Stdout, logger, id)

	f, err := New(game, cfg, reporter.Report, logger)
	if err != nil {
		logger.Fatal("could not prepare window", "error", err)
	}
	if err := f.Run(cfg.TickRate); err != nil {
		logger.Fatal("game stopped", "error", err)
	}
}
