package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/astrohop/internal/games/astrohop"
	"github.com/vovakirdan/astrohop/internal/platform/tui"
	"github.com/vovakirdan/astrohop/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresPlayer string
	flagScoresBoard  bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs: gems collected and the round reached.

Examples:
  astrohop scores
  astrohop scores --player ana --limit 5
  astrohop scores --board
  astrohop scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only show runs by this player")
	scoresCmd.Flags().BoolVar(&flagScoresBoard, "board", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every saved run")
	scoresCmd.MarkFlagsMutuallyExclusive("board", "clear")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(astrohop.ID); err != nil {
			return err
		}
		fmt.Println("High scores cleared.")
		return nil
	}

	if flagScoresBoard {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		_, err := tui.RunScoreboard(store, astrohop.ID, "Astro Hop", width, height)
		return err
	}

	var scores []storage.ScoreEntry
	if flagScoresPlayer != "" {
		scores, err = store.TopScoresFor(astrohop.ID, flagScoresPlayer, flagScoresLimit)
	} else {
		scores, err = store.TopScores(astrohop.ID, flagScoresLimit)
	}
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Astro Hop")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'astrohop play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-5s  %-5s  %s\n", "Rank", "Player", "Gems", "Round", "Date")
	fmt.Printf("  %-4s  %-16s  %-5s  %-5s  %s\n", "----", "------", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-5d  %-5d  %s\n", i+1, entry.Player, entry.Score, entry.Round, dateStr)
	}

	stats, err := store.GetGameStats(astrohop.ID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d gems, furthest round %d, %d runs (avg %.1f gems)\n",
			stats.HighScore, stats.BestRound, stats.GamesCount, stats.AvgScore)
	}
	return nil
}
