package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/astrohop/internal/audio"
	"github.com/vovakirdan/astrohop/internal/config"
	"github.com/vovakirdan/astrohop/internal/core"
	"github.com/vovakirdan/astrohop/internal/games/astrohop"
	"github.com/vovakirdan/astrohop/internal/platform/tui"
	"github.com/vovakirdan/astrohop/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagDebug      bool
	flagPlayer     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Astro Hop",
	Long: `Start a run in this terminal.

Controls:
  Left/A, Right/D  - Orbit the asteroid / steer in flight
  Space            - Launch off the asteroid (breaks it open)
  Enter            - Continue after a meteor hit
  P/Esc            - Pause
  F1               - Debug overlay
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Fewer starting rocks, sharper turning, progression on
  normal - Progression starts at 30%
  hard   - Two meteors per round, progression starts at 70%
  fixed  - No progression, stays at the config's initial level

Examples:
  astrohop play
  astrohop play --difficulty hard
  astrohop play --config ./my-astrohop.yaml --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Start with the debug overlay on")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name scores are saved under (default: OS user)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadAstro(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyAstroPreset(&cfg, config.ParsePreset(flagDifficulty))
	if flagMute {
		cfg.Audio.Enabled = false
	}

	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(logFile, "astrohop")
	if err != nil {
		return err
	}

	sink, closeAudio, err := audio.Open(cfg.Audio)
	if err != nil {
		logger.Warn("audio unavailable, playing silently", "error", err)
	}
	defer closeAudio()

	game := astrohop.NewWithConfig(cfg)
	game.SetAudio(sink)
	game.SetLogger(logger)

	runtime := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW, runtime.ScreenH = w, h
	}
	runtime.TickRate = flagFPS
	runtime.Seed = flagSeed
	runtime.Debug = flagDebug

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without scores", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	best := 0
	if store != nil {
		defer store.Close()
		if best, err = store.HighScore(astrohop.ID); err != nil {
			logger.Warn("could not read high score", "error", err)
		}
	}

	logger.Info("run started", "seed", flagSeed, "difficulty", flagDifficulty,
		"audio", cfg.Audio.Enabled, "best", best)

	if err := tui.Run(game, store, runtime, tui.Options{
		Player: playerName(),
		Logger: logger,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
