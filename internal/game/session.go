package game

import (
	"math/rand"

	"github.com/vovakirdan/quizrun/internal/config"
	"github.com/vovakirdan/quizrun/internal/core"
	"github.com/vovakirdan/quizrun/internal/quiz"
)

// Game runs one quiz runner session. The player steers across lanes of a
// perspective track while answer gates approach; crossing a gate answers
// the active question. All simulation is tick-based and seeded, so a
// session replays identically from the same seed and input sequence.
type Game struct {
	config  core.RuntimeConfig
	gameCfg config.GameConfig

	bank  *quiz.Bank
	track Track
	field *Field
	score *ScoreEngine
	lives *LivesController
	rng   *rand.Rand

	playerLane float64 // continuous position, eased toward targetLane
	targetLane int
	speed      float64

	questionsAnswered int
	tickCount         int
	gameOver          bool
	paused            bool

	events []Event
}

// New creates a quiz runner session over the given question bank.
func New(gameCfg config.GameConfig, bank *quiz.Bank) *Game {
	return &Game{gameCfg: gameCfg, bank: bank}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "quizrun"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Quiz Runner"
}

// Reset initializes or restarts the session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	g.track = NewTrack(g.gameCfg.Track, cfg.ScreenW, cfg.ScreenH)
	g.field = NewField(g.gameCfg.Gameplay, g.track.Lanes, g.track.MaxDepth, cfg.TickRate, g.rng)
	g.score = NewScoreEngine(g.gameCfg.Scoring, cfg.TickRate)
	g.lives = NewLivesController(g.gameCfg.Lives, cfg.TickRate)

	g.targetLane = g.track.Lanes / 2
	if g.targetLane > 0 {
		g.targetLane--
	}
	g.playerLane = float64(g.targetLane)
	g.speed = g.gameCfg.Gameplay.BaseSpeed

	g.questionsAnswered = 0
	g.tickCount = 0
	g.gameOver = false
	g.paused = false
	g.events = nil
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.handleInput(in)

	// Ease the continuous lane position toward the target lane
	g.playerLane += (float64(g.targetLane) - g.playerLane) * g.gameCfg.Gameplay.LaneEase

	if g.field.Active() {
		missed, timedOut := g.field.Advance(g.speed, g.config.DeltaMs())

		if o := g.field.AtPlayer(g.playerLane); o != nil {
			g.handleAnswer(*o)
		} else if g.field.InEmptyLane(g.playerLane) {
			g.handleEmptyLane()
		} else if timedOut {
			g.handleTimeout()
		} else if missed {
			g.handleMissed()
		}
	} else if g.field.TickSpawn() {
		if q, ok := g.bank.Next(); ok {
			g.field.Spawn(q, g.questionsAnswered)
			g.emit(QuestionSpawnedEvent{Question: q})
		}
	}

	if g.lives.Dead() && !g.gameOver {
		g.gameOver = true
		g.emit(GameOverEvent{Score: g.score.Score()})
	}

	return core.StepResult{State: g.State()}
}

// handleInput applies steering. Left/Right shift the target lane by one;
// number keys jump straight to a lane.
func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.targetLane = core.Clamp(g.targetLane-1, 0, g.track.Lanes-1)
	}
	if in.Has(core.ActionRight) {
		g.targetLane = core.Clamp(g.targetLane+1, 0, g.track.Lanes-1)
	}
	for i, a := range []core.Action{core.ActionLane1, core.ActionLane2, core.ActionLane3, core.ActionLane4} {
		if in.Has(a) && i < g.track.Lanes {
			g.targetLane = i
		}
	}
}

// handleAnswer resolves the gate the player just crossed.
func (g *Game) handleAnswer(o Obstacle) {
	q := *g.field.Question()
	timeRemainingMs := float64(g.field.CountdownTicks()) * g.config.DeltaMs()

	points, unlocked := g.score.CalculateScore(o.Correct, q.Difficulty, timeRemainingMs, false, g.tickCount)
	g.emit(QuestionAnsweredEvent{
		Question: q,
		Option:   o.Option,
		Correct:  o.Correct,
		Points:   points,
	})

	if o.Correct {
		if g.lives.AddCorrectAnswer() {
			g.emit(LifeRecoveredEvent{Lives: g.lives.Lives()})
		}
	} else {
		if g.lives.TakeDamage(1, g.tickCount) {
			g.emit(LifeLostEvent{Remaining: g.lives.Lives()})
		}
	}

	for _, a := range unlocked {
		g.emit(AchievementUnlockedEvent{Achievement: a})
	}

	g.resolveWave()
}

// handleEmptyLane applies the dodge penalty. Slipping through a gap lane
// costs points but never a life or the streak.
func (g *Game) handleEmptyLane() {
	q := *g.field.Question()
	g.score.AddScore(-g.gameCfg.Gameplay.EmptyLanePenalty)
	g.emit(EmptyLanePenaltyEvent{Question: q, Penalty: g.gameCfg.Gameplay.EmptyLanePenalty})
	g.resolveWave()
}

// handleTimeout resolves a question whose answer clock ran out. A timeout
// scores nothing and resets the streak; lives are untouched.
func (g *Game) handleTimeout() {
	q := *g.field.Question()
	g.score.CalculateScore(false, q.Difficulty, 0, true, g.tickCount)
	g.emit(QuestionTimeoutEvent{Question: q})
	g.resolveWave()
}

// handleMissed clears a wave whose gates all rolled past the player
// untouched. A missed wave costs nothing.
func (g *Game) handleMissed() {
	q := *g.field.Question()
	g.emit(QuestionMissedEvent{Question: q})
	g.resolveWave()
}

// resolveWave clears the field and applies per-question progression:
// the answered counter and the periodic speed ramp.
func (g *Game) resolveWave() {
	g.field.Resolve()
	g.questionsAnswered++

	gp := g.gameCfg.Gameplay
	if gp.SpeedIncrement > 0 && gp.SpeedUpEvery > 0 && g.questionsAnswered%gp.SpeedUpEvery == 0 {
		g.speed += gp.SpeedIncrement
		if g.speed > gp.MaxSpeed {
			g.speed = gp.MaxSpeed
		}
	}
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// Events returns the events accumulated since the last call and clears
// the queue.
func (g *Game) Events() []Event {
	out := g.events
	g.events = nil
	return out
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score.Score(),
		Lives:    g.lives.Lives(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
