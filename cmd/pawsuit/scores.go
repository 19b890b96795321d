package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pawsuit/internal/storage"
)

var flagRecent int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and run history",
	Long: `Display the top 10 high scores, recent runs, and per-level stats.

Examples:
  pawsuit scores
  pawsuit scores --recent 20`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 10, "Number of recent runs to show")
}

func runScores(cmd *cobra.Command, args []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	printHighScores(store)
	printRecentRuns(store)
	printLevelStats(store)
}

func printHighScores(store *storage.Store) {
	scores, err := store.TopScores("pawsuit", 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Println("High Scores - Pawsuit")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pawsuit play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	// Show high score
	highScore, err := store.HighScore("pawsuit")
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", highScore)
	}
}

func printRecentRuns(store *storage.Store) {
	runs, err := store.RecentRuns(flagRecent)
	if err != nil || len(runs) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent runs:")
	fmt.Println()
	fmt.Printf("  %-12s  %-16s  %-8s  %-8s  %s\n", "Level", "Outcome", "Score", "Ticks", "Date")
	fmt.Printf("  %-12s  %-16s  %-8s  %-8s  %s\n", "-----", "-------", "-----", "-----", "----")

	for _, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-12s  %-16s  %-8d  %-8d  %s\n", r.LevelID, r.Outcome, r.Score, r.DurationTicks, dateStr)
	}
}

func printLevelStats(store *storage.Store) {
	stats, err := store.LevelStats()
	if err != nil || len(stats) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Per-level stats:")
	fmt.Println()
	fmt.Printf("  %-12s  %-6s  %-6s  %s\n", "Level", "Runs", "Wins", "Best")
	fmt.Printf("  %-12s  %-6s  %-6s  %s\n", "-----", "----", "----", "----")

	for _, s := range stats {
		fmt.Printf("  %-12s  %-6d  %-6d  %d\n", s.LevelID, s.Runs, s.Victories, s.BestScore)
	}
}
