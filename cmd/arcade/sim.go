package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/box-arcade/internal/core"
	"github.com/vovakirdan/box-arcade/internal/platform"
)

var (
	flagTicks   int
	flagFast    bool
	flagSimConf string
)

var simCmd = &cobra.Command{
	Use:   "sim <game>",
	Short: "Run a game headless without input",
	Long: `Runs the game loop for a fixed number of ticks with no keys held and
prints the final state. Useful as a smoke test and to check that a seed
reproduces the same run.

Examples:
  arcade sim dodger --ticks 600 --seed 7
  arcade sim flappy --ticks 6000 --fast`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Number of ticks to run")
	simCmd.Flags().BoolVar(&flagFast, "fast", false, "Do not pace ticks against the wall clock")
	simCmd.Flags().StringVar(&flagSimConf, "config", "", "Path to custom game config YAML")
}

// idleInput holds no keys and asks the loop to stop after limit polls.
type idleInput struct {
	polls int
	limit int
}

func (s *idleInput) Poll() core.MultiInputFrame {
	s.polls++
	frame := core.NewMultiInputFrame()
	if s.polls >= s.limit {
		frame.Press(core.Player1, core.ActionQuit)
	}
	return frame
}

// fastClock never sleeps.
type fastClock struct{}

func (fastClock) Now() time.Time      { return time.Now() }
func (fastClock) Sleep(time.Duration) {}

func runSim(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if flagTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagTicks)
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := createGame(gameID, flagSimConf, logger)
	if err != nil {
		return err
	}

	cfg := platform.Runtime(flagFPS, flagSeed)
	game.Reset(cfg)
	w, h := game.Field()
	loop := core.NewLoop(game, w, h, cfg.TickRate)
	if flagFast {
		loop.SetClock(fastClock{})
	}

	reporter := platform.NewReporter(os.Stdout, logger, gameID)
	loop.OnEvent = reporter.Report

	start := time.Now()
	ticks := loop.Run(&idleInput{limit: flagTicks}, nil)
	st := loop.Last().State

	logger.Info("simulation finished", "game", gameID, "ticks", ticks, "seed", cfg.Seed, "elapsed", time.Since(start))
	fmt.Fprintf(cmd.OutOrStdout(), "ticks=%d score=%d scores=%v health=%d game_over=%t idle=%t rounds=%d\n",
		ticks, st.Score, st.Scores, st.Health, st.GameOver, st.Idle, reporter.Rounds())
	return nil
}
