package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/box-arcade/internal/platform"
	"github.com/vovakirdan/box-arcade/internal/platform/tui"
	"github.com/vovakirdan/box-arcade/internal/platform/window"
)

var (
	flagConfig string
	flagTUI    bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game in a window, or in the terminal with --tui.

Controls:
  dodger   Left/Right         - Move the box
  flappy   Space              - Flap
  pong     W/S, Up/Down       - Left and right paddles
  pong4p   W/S, Up/Down, Z/X, N/M
  Esc                         - Quit

Examples:
  arcade play dodger
  arcade play flappy --tui
  arcade play pong --config ./my-pong.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagTUI, "tui", false, "Play in the terminal instead of a window")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	logger, closeLog, err := newLogger(flagTUI)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := createGame(gameID, flagConfig, logger)
	if err != nil {
		return err
	}
	cfg := platform.Runtime(flagFPS, flagSeed)
	logger.Debug("runtime", "tps", cfg.TickRate, "seed", cfg.Seed)

	if !flagTUI {
		reporter := platform.NewReporter(os.Stdout, logger, gameID)
		f, err := window.New(game, cfg, reporter.Report, logger)
		if err != nil {
			return err
		}
		return f.Run(cfg.TickRate)
	}

	// Round results are printed once the alternate screen is gone.
	var results bytes.Buffer
	reporter := platform.NewReporter(&results, logger, gameID)
	width, height := terminalSize()
	runErr := tui.Run(game, cfg, width, height, reporter.Report)
	fmt.Print(results.String())
	if runErr != nil {
		return fmt.Errorf("running %s: %w", gameID, runErr)
	}
	return nil
}
