package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/box-arcade/internal/platform"
	"github.com/vovakirdan/box-arcade/internal/platform/tui"
	"github.com/vovakirdan/box-arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode in the terminal.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends (Esc), you return to the menu to play again.

Examples:
  arcade menu
  arcade menu --fps 30 --log-file ./arcade.log`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	items, err := tui.MenuItems(registry.Options{})
	if err != nil {
		return err
	}

	var results bytes.Buffer
	defer func() { fmt.Print(results.String()) }()

	for {
		gameID, err := tui.RunMenu(items)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		if gameID == "" {
			return nil
		}

		game, err := createGame(gameID, "", logger)
		if err != nil {
			return err
		}

		reporter := platform.NewReporter(&results, logger, gameID)
		width, height := terminalSize()
		if err := tui.Run(game, platform.Runtime(flagFPS, flagSeed), width, height, reporter.Report); err != nil {
			return fmt.Errorf("running %s: %w", gameID, err)
		}
		logger.Info("back to menu", "game", gameID)
	}
}
