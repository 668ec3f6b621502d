package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/quizrun/internal/quiz"
)

var flagFetchURL string

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Prefetch questions into the local cache",
	Long: `Download a question file and store it in the local cache so later
runs can start without network access.

The cache lives at ~/.quizrun/cache/questions.json.

Examples:
  quizrun fetch --questions-url https://example.com/questions.json`,
	Run: runFetch,
}

func init() {
	fetchCmd.Flags().StringVar(&flagFetchURL, "questions-url", "", "URL of a remote question file")
	fetchCmd.MarkFlagRequired("questions-url")
}

func runFetch(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "quizrun"})

	source := quiz.HTTPSource{URL: flagFetchURL, Logger: logger}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	questions, err := source.Fetch(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching questions: %v\n", err)
		os.Exit(1)
	}

	if report := quiz.Validate(questions); !report.Valid() {
		for _, issue := range report.Errors {
			fmt.Fprintf(os.Stderr, "error: %s\n", issue)
		}
		fmt.Fprintln(os.Stderr, "Refusing to cache an invalid question set.")
		os.Exit(1)
	}

	cache := quiz.NewCache(quiz.DefaultCachePath())
	if err := cache.Save(questions); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing cache: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Cached %d questions at %s\n", len(questions), cache.Path)
}
