package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rabduction/internal/games/rabduction"
	"github.com/vovakirdan/rabduction/internal/platform/tui"
	"github.com/vovakirdan/rabduction/internal/registry"
	"github.com/vovakirdan/rabduction/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best recorded runs.

Examples:
  rabduction scores
  rabduction scores --limit 25
  rabduction scores -i
  rabduction scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, _ []string) {
	gameID := rabduction.GameID

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Println("Scores cleared.")
		return
	}

	if flagInteractive {
		if err := tui.RunScoreboard(gameID, title, store, terminalConfig()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	// Get top scores
	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'rabduction play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-8s  %-20s  %s\n", "Rank", "Score", "Time", "Seed", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-20s  %s\n", "----", "-----", "----", "----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-8s  %-20d  %s\n", i+1, entry.Score, runTime(int64(entry.Ticks)), entry.Seed, dateStr)
	}

	// Show summary
	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  Runs: %d  Average: %.0f  Played: %s\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, runTime(stats.TotalTicks))
	}
}

// runTime converts a tick count at the current --fps to wall time.
func runTime(ticks int64) string {
	d := time.Duration(ticks) * time.Second / time.Duration(max(flagFPS, 1))
	return d.Round(100 * time.Millisecond).String()
}
