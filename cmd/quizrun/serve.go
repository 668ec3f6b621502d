package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quizrun/internal/platform/tui"
)

var (
	flagSSHAddr           string
	flagHostKey           string
	flagSSHDBPath         string
	flagServeQuestions    string
	flagServeQuestionsURL string
	flagIdleTimeout       int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the quiz SSH server",
	Long: `Start an SSH server that lets users connect and play remotely.

Each connection gets its own session with a preset menu. Results are
stored per-server, so all users share the same leaderboard. Questions
are loaded once at startup and shared across sessions.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.quizrun/host_key

Examples:
  quizrun serve                           # Listen on :23234 with auto-generated key
  quizrun serve --ssh :2222               # Listen on port 2222
  quizrun serve --host-key ./my_host_key  # Use specific host key
  quizrun serve --questions ./q.json      # Serve a custom question file

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagSSHDBPath, "db", "~/.quizrun/results.db", "Path to results database")
	serveCmd.Flags().StringVar(&flagServeQuestions, "questions", "", "Path to a local question file")
	serveCmd.Flags().StringVar(&flagServeQuestionsURL, "questions-url", "", "URL of a remote question file")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.SSHServerConfig{
		Address:       flagSSHAddr,
		HostKeyPath:   flagHostKey,
		DBPath:        flagSSHDBPath,
		QuestionsFile: flagServeQuestions,
		QuestionsURL:  flagServeQuestionsURL,
		IdleTimeout:   time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting quizrun SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
