// astrohop is a terminal arcade game: hop between drifting asteroids,
// break them open for gems, and dodge the meteors.
//
// Usage:
//
//	astrohop play            - Play in this terminal
//	astrohop serve           - Start SSH server for remote play
//	astrohop scores          - Show high scores
//	astrohop list            - List registered games
//	astrohop config          - Print the default config YAML
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.astrohop/scores.db)
//	--log-level <level>  - debug, info, warn, error
//
// A .env file in the working directory may set ASTROHOP_DB, ASTROHOP_CONFIG,
// ASTROHOP_DIFFICULTY, and ASTROHOP_LOG_LEVEL for flags not given on the command line.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	// Import games to register them
	_ "github.com/vovakirdan/astrohop/internal/games/astrohop"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

// envFlags maps flag names to the environment variables that can default them.
var envFlags = map[string]string{
	"db":         "ASTROHOP_DB",
	"config":     "ASTROHOP_CONFIG",
	"difficulty": "ASTROHOP_DIFFICULTY",
	"log-level":  "ASTROHOP_LOG_LEVEL",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "astrohop",
	Short: "Astro Hop - hop between asteroids in your terminal",
	Long: `Astro Hop is a terminal arcade game. Orbit an asteroid, launch off it
to break it open, grab the gem inside, and land on the next rock before a
meteor finds you.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  list     - Show registered games
  config   - Print the default configuration

Examples:
  astrohop play
  astrohop play --difficulty hard
  astrohop serve --ssh :2222
  astrohop scores`,
	SilenceUsage:      true,
	PersistentPreRunE: applyEnv,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.astrohop/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// applyEnv loads ./.env and fills every flag the user did not set from its
// ASTROHOP_* variable. Variables already in the environment win over .env.
func applyEnv(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("env: %w", err)
	}

	var setErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		env, ok := envFlags[f.Name]
		if !ok || f.Changed || setErr != nil {
			return
		}
		if v, ok := os.LookupEnv(env); ok {
			if err := f.Value.Set(v); err != nil {
				setErr = fmt.Errorf("env: %s: %w", env, err)
			}
		}
	})
	return setErr
}

// newLogger creates a logger at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("log: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// openLogFile opens ~/.astrohop/astrohop.log for appending. The terminal is
// owned by the game while it runs, so local play logs go here.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("log: %w", err)
	}
	dir := filepath.Join(home, ".astrohop")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("log: %w", err)
	}
	return os.OpenFile(filepath.Join(dir, "astrohop.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}
