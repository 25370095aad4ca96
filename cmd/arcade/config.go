package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/box-arcade/internal/config"
)

// loaders maps game ids to their config loaders.
var loaders = map[string]func(customPath string) (any, error){
	"dodger": func(p string) (any, error) { return config.LoadDodger(p) },
	"flappy": func(p string) (any, error) { return config.LoadFlappy(p) },
	"pong":   func(p string) (any, error) { return config.LoadPong(p) },
	"pong4p": func(p string) (any, error) { return config.LoadPong4P(p) },
}

var flagShowConfig string

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print the effective configuration of a game",
	Long: `Loads a game's tuning the same way 'play' does and prints it as YAML,
together with the file it was read from.

Search order:
  --config path
  ~/.arcade/configs/<game>.yaml
  ./configs/<game>.yaml
  built-in defaults

Examples:
  arcade config flappy
  arcade config pong4p --config ./pong4p.yaml > my-pong4p.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagShowConfig, "config", "", "Path to custom game config YAML")
}

func runConfig(cmd *cobra.Command, args []string) error {
	id := args[0]
	load, ok := loaders[id]
	if !ok {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", id)
	}

	cfg, err := load(flagShowConfig)
	if err != nil {
		return err
	}
	out, err := config.Dump(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n%s", config.Source(id, flagShowConfig), out)
	return nil
}
