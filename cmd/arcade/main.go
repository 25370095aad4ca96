// arcade is a launcher for the box arcade games.
//
// Usage:
//
//	arcade list                 - List available games
//	arcade play <game>          - Play a game in a window (--tui for the terminal)
//	arcade menu                 - Pick games interactively in the terminal
//	arcade config <game>        - Print the effective tuning of a game
//	arcade sim <game>           - Run a game headless for a number of ticks
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/box-arcade/internal/games/dodger"
	_ "github.com/vovakirdan/box-arcade/internal/games/flappy"
	_ "github.com/vovakirdan/box-arcade/internal/games/pong"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Box Arcade - dodge dots, flap a box, play pong",
	Long: `Box Arcade bundles three small arcade games: Avoid the Dots, Flappy Box
and Pong for two or four players on one keyboard.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker in the terminal
  config   - Print a game's effective configuration
  sim      - Run a game without input for a number of ticks

Examples:
  arcade list
  arcade play flappy
  arcade play pong4p --tui
  arcade config dodger --config ./my-dodger.yaml
  arcade sim flappy --ticks 600 --seed 7 --fast`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(simCmd)
}
