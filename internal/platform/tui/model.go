package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/quizrun/internal/api"
	"github.com/vovakirdan/quizrun/internal/core"
	"github.com/vovakirdan/quizrun/internal/game"
	"github.com/vovakirdan/quizrun/internal/storage"
)

const toastTicks = 120 // how long a toast stays visible, in simulation ticks

// submitDoneMsg carries the leaderboard outcome of an async score submission.
type submitDoneMsg struct {
	result api.SubmitResult
	err    error
}

// Model is the Bubble Tea model for a quiz runner session.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	client     *api.Client
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper

	toast      string
	toastLeft  int
	rank       int
	rankLocal  bool
	submitted  bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given session.
// The store and client are optional; both are best effort.
func NewModel(g *game.Game, store *storage.Store, client *api.Client, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		client:     client,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case submitDoneMsg:
		if msg.err == nil {
			m.rank = msg.result.Rank
			m.rankLocal = msg.result.Local
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Esc or B backs out to the menu once the run is over or paused
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Restart with the new track geometry unless the run already ended
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.submitted = false
		m.rank = 0
		m.toast = ""
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	m.consumeEvents()

	var cmds []tea.Cmd
	if m.gameState.GameOver && !m.submitted {
		cmds = append(cmds, m.finishRun())
		m.submitted = true
	}

	if m.toastLeft > 0 {
		m.toastLeft--
		if m.toastLeft == 0 {
			m.toast = ""
		}
	}

	m.inputFrame.Clear()
	cmds = append(cmds, tickCmd(m.config.TickRate))
	return m, tea.Batch(cmds...)
}

// consumeEvents turns gameplay events into short HUD toasts.
func (m *Model) consumeEvents() {
	for _, e := range m.game.Events() {
		switch ev := e.(type) {
		case game.AchievementUnlockedEvent:
			m.showToast(fmt.Sprintf("Achievement: %s!", ev.Achievement.Name))
		case game.LifeRecoveredEvent:
			m.showToast("Life recovered!")
		case game.EmptyLanePenaltyEvent:
			m.showToast(fmt.Sprintf("Missed the question! -%d", ev.Penalty))
		case game.QuestionTimeoutEvent:
			m.showToast("Time's up!")
		case game.QuestionMissedEvent:
			m.showToast("Question missed")
		}
	}
}

func (m *Model) showToast(text string) {
	m.toast = text
	m.toastLeft = toastTicks
}

// finishRun persists the session result and kicks off the async score
// submission. Both are best effort.
func (m *Model) finishRun() tea.Cmd {
	summary := m.game.Summary()

	if m.store != nil && summary.Score > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveResult(storage.Result{
			Score:             summary.Score,
			QuestionsAnswered: summary.QuestionsAnswered,
			Accuracy:          summary.Accuracy,
			BestStreak:        summary.BestStreak,
			DifficultyReached: string(summary.DifficultyReached),
		})
	}

	if m.client == nil {
		return nil
	}

	sub := api.Submission{
		Score:             summary.Score,
		QuestionsAnswered: summary.QuestionsAnswered,
		Accuracy:          summary.Accuracy,
		BestStreak:        summary.BestStreak,
		DifficultyReached: string(summary.DifficultyReached),
	}
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		result, err := client.Submit(ctx, sub)
		return submitDoneMsg{result: result, err: err}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".quizrun", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("quizrun_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)

	if m.toast != "" {
		out += "\n " + m.toast
	} else if m.gameState.GameOver && m.rank > 0 {
		suffix := ""
		if m.rankLocal {
			suffix = " (local)"
		}
		out += fmt.Sprintf("\n Leaderboard rank: #%d%s", m.rank, suffix)
	}

	return out
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for one session.
func Run(g *game.Game, store *storage.Store, client *api.Client, cfg core.RuntimeConfig) error {
	model := NewModel(g, store, client, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
