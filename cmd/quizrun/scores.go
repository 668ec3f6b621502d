package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quizrun/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best runs",
	Long: `Display the top 10 runs from the local results database.

Examples:
  quizrun scores
  quizrun scores --db ./results.db
  quizrun scores --clear`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all stored results")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearResults(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All results cleared.")
		return
	}

	results, err := store.TopResults(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs - Quiz Runner")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'quizrun play' to set the first score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-9s  %-8s  %-6s  %-8s  %s\n",
		"Rank", "Score", "Questions", "Accuracy", "Streak", "Level", "Date")
	fmt.Printf("  %-4s  %-8s  %-9s  %-8s  %-6s  %-8s  %s\n",
		"----", "-----", "---------", "--------", "------", "-----", "----")

	for i, r := range results {
		fmt.Printf("  %-4d  %-8d  %-9d  %-7.0f%%  %-6d  %-8s  %s\n",
			i+1, r.Score, r.QuestionsAnswered, r.Accuracy, r.BestStreak,
			r.DifficultyReached, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetStats(); err == nil && stats.SessionsCount > 0 {
		fmt.Printf("Runs: %d  Best: %d  Avg score: %.0f  Avg accuracy: %.0f%%\n",
			stats.SessionsCount, stats.BestScore, stats.AvgScore, stats.AvgAccuracy)
	}
}
