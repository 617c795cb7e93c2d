package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/astrohop/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in config as YAML. Save it to
~/.astrohop/configs/astrohop.yaml or ./configs/astrohop.yaml and edit the
keys you want to change; missing keys keep their defaults.

With --check, load the config the game would use and report errors instead.

Examples:
  astrohop config > ~/.astrohop/configs/astrohop.yaml
  astrohop config --check --config ./my-astrohop.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var flagCheck bool

func init() {
	configCmd.Flags().BoolVar(&flagCheck, "check", false, "Validate the effective config instead of printing defaults")
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagCheck {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.LoadAstro(flagConfig)
	if err != nil {
		return err
	}
	fmt.Printf("config ok: %dx%d field, %d starting asteroids, audio %v\n",
		int(cfg.World.Width), int(cfg.World.Height), cfg.Rounds.StartGems, cfg.Audio.Enabled)
	return nil
}
