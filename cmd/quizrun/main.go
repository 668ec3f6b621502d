// quizrun is a terminal quiz arcade: steer a runner across lanes and pick
// the lane carrying the right answer before the gate reaches you.
//
// Usage:
//
//	quizrun play              - Start a run (menu first)
//	quizrun scores            - Show best runs
//	quizrun validate <file>   - Validate a question file
//	quizrun fetch             - Prefetch questions into the local cache
//	quizrun serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.quizrun/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quizrun",
	Short: "Quiz Runner - answer questions by steering into the right lane",
	Long: `Quiz Runner is a terminal lane-runner quiz game. Answer gates approach
down a perspective track; steer into the lane with the correct answer to
score, build streaks, and survive.

Available commands:
  play      - Start a run
  scores    - View best runs
  validate  - Validate a question file offline
  fetch     - Prefetch questions into the local cache
  serve     - Start SSH server for remote play

Examples:
  quizrun play
  quizrun play --difficulty hard
  quizrun play --questions ./my-questions.json
  quizrun scores
  quizrun serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.quizrun/results.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(serveCmd)
}
