package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/quizrun/internal/api"
	"github.com/vovakirdan/quizrun/internal/config"
	"github.com/vovakirdan/quizrun/internal/core"
	"github.com/vovakirdan/quizrun/internal/game"
	"github.com/vovakirdan/quizrun/internal/platform/tui"
	"github.com/vovakirdan/quizrun/internal/quiz"
	"github.com/vovakirdan/quizrun/internal/storage"
)

var (
	flagConfig        string
	flagDifficulty    string
	flagQuestionsFile string
	flagQuestionsURL  string
	flagAPIURL        string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a quiz run. Without --difficulty a preset menu is shown first.

Controls:
  A/D, H/L, Arrows - Switch lanes
  1-4              - Jump straight to a lane
  P                - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty presets:
  easy   - 5 lives, slower track
  normal - 3 lives, ramping speed
  hard   - 2 lives, fast track
  fixed  - constant speed, no ramp

Examples:
  quizrun play
  quizrun play --difficulty hard
  quizrun play --questions ./my-questions.json
  quizrun play --questions-url https://example.com/questions.json
  quizrun play --config ./my-quizrun.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagQuestionsFile, "questions", "", "Path to a local question file")
	playCmd.Flags().StringVar(&flagQuestionsURL, "questions-url", "", "URL of a remote question file")
	playCmd.Flags().StringVar(&flagAPIURL, "api", "", "Leaderboard API base URL (optional)")
}

func runPlay(_ *cobra.Command, _ []string) {
	preset := config.DifficultyPreset(flagDifficulty)
	if !config.ValidPreset(preset) {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, normal, hard, fixed)\n", flagDifficulty)
		os.Exit(1)
	}

	if flagFPS < 1 {
		fmt.Fprintln(os.Stderr, "Error: --fps must be at least 1")
		os.Exit(1)
	}

	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	source := quiz.BuildSource(flagQuestionsFile, flagQuestionsURL, nil)

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - the run still works
		store = nil
	}

	client := &api.Client{BaseURL: flagAPIURL}
	if store != nil {
		client.Ranker = store
	}

	var runErr error
	if flagDifficulty != "" {
		// Skip the menu and start a single run with the given preset
		config.ApplyPreset(&gameCfg, preset)

		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
			cfg.Seed = seed
		}
		bank := quiz.NewBank(seed)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if loadErr := bank.Load(ctx, source); loadErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not load questions, using built-in set: %v\n", loadErr)
		}
		cancel()

		runErr = tui.Run(game.New(gameCfg, bank), store, client, cfg)
	} else {
		runErr = tui.RunSession(store, client, gameCfg, source, cfg)
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
