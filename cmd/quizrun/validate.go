package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quizrun/internal/quiz"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a question file",
	Long: `Check a question file offline before serving it.

Reports errors (missing fields, wrong option counts, duplicate ids or
option texts) and warnings (missing explanation or category). Exits
non-zero when any error is found.

Examples:
  quizrun validate ./questions.json`,
	Args: cobra.ExactArgs(1),
	Run:  runValidate,
}

func runValidate(_ *cobra.Command, args []string) {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
		os.Exit(1)
	}

	questions, err := quiz.ParseDocument(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %s: %v\n", path, err)
		os.Exit(1)
	}

	report := quiz.Validate(questions)

	for _, issue := range report.Errors {
		fmt.Printf("error: %s\n", issue)
	}
	for _, issue := range report.Warnings {
		fmt.Printf("warning: %s\n", issue)
	}

	fmt.Printf("%d questions, %d errors, %d warnings\n",
		len(questions), len(report.Errors), len(report.Warnings))

	if !report.Valid() {
		os.Exit(1)
	}
}
