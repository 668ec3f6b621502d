package game

import (
	"math"

	"github.com/vovakirdan/quizrun/internal/config"
	"github.com/vovakirdan/quizrun/internal/core"
	"github.com/vovakirdan/quizrun/internal/quiz"
)

// Achievement is a one-shot unlockable milestone.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Unlocked    bool
	UnlockedAt  int // tick of unlock, 0 when locked
}

// ScoreEngine computes points from correctness, difficulty, remaining time,
// and streak state, and tracks streaks, accuracy, and achievements.
// Time is measured in ticks so the engine is deterministic and pausable.
type ScoreEngine struct {
	cfg config.ScoringConfig

	score          int
	currentStreak  int
	bestStreak     int
	perfectStreak  int
	totalCorrect   int
	totalIncorrect int
	totalTimeouts  int
	lastPoints     int
	lastAnswerTick int // -1 until the first answer
	comboTicks     int

	achievements []*Achievement
}

// NewScoreEngine creates a score engine for one session.
func NewScoreEngine(cfg config.ScoringConfig, tickRate int) *ScoreEngine {
	e := &ScoreEngine{cfg: cfg}
	e.comboTicks = core.TicksFor(cfg.ComboWindowMs, tickRate)
	e.Reset()
	return e
}

// Reset clears all per-session scoring state.
func (e *ScoreEngine) Reset() {
	e.score = 0
	e.currentStreak = 0
	e.bestStreak = 0
	e.perfectStreak = 0
	e.totalCorrect = 0
	e.totalIncorrect = 0
	e.totalTimeouts = 0
	e.lastPoints = 0
	e.lastAnswerTick = -1
	e.achievements = []*Achievement{
		{ID: "first_correct", Name: "Good Start", Description: "Answer your first question correctly"},
		{ID: "streak_5", Name: "Streak of 5", Description: "Reach a streak of 5 correct answers"},
		{ID: "streak_10", Name: "Streak of 10", Description: "Reach a streak of 10 correct answers"},
		{ID: "streak_20", Name: "Streak of 20", Description: "Reach a streak of 20 correct answers"},
		{ID: "perfect_10", Name: "Perfectionist", Description: "Answer 10 questions in a row with time to spare"},
		{ID: "speed_demon", Name: "Speed Demon", Description: "Answer with more than 8 seconds remaining"},
		{ID: "score_1000", Name: "Scorer", Description: "Reach 1,000 points"},
		{ID: "score_5000", Name: "High Scorer", Description: "Reach 5,000 points"},
		{ID: "score_10000", Name: "Legend", Description: "Reach 10,000 points"},
	}
}

// CalculateScore resolves one question outcome at the given tick and
// returns the points applied plus any achievements unlocked by it.
//
// Timeouts reset the streak and score nothing. Correct answers earn
// base x difficulty, plus a time bonus that grows as the clock runs down,
// multiplied by the streak bucket and an optional combo bonus when the
// previous answer was recent. Wrong answers cost a flat penalty. The
// total score never drops below zero.
func (e *ScoreEngine) CalculateScore(isCorrect bool, difficulty quiz.Difficulty, timeRemainingMs float64, isTimeout bool, nowTick int) (int, []Achievement) {
	if isTimeout {
		e.resetStreak()
		e.totalTimeouts++
		return 0, nil
	}

	var points float64
	if isCorrect {
		points = float64(e.cfg.BaseCorrect) * difficulty.Multiplier()
		points += e.timeBonus(timeRemainingMs)
		points *= e.streakMultiplier()

		if e.lastAnswerTick >= 0 && nowTick-e.lastAnswerTick < e.comboTicks {
			points *= e.cfg.ComboMultiplier
		}

		e.currentStreak++
		if e.currentStreak > e.bestStreak {
			e.bestStreak = e.currentStreak
		}
		if timeRemainingMs > float64(e.cfg.PerfectThresholdMs) {
			e.perfectStreak++
		} else {
			e.perfectStreak = 0
		}
		e.totalCorrect++
	} else {
		points = -float64(e.cfg.IncorrectPenalty)
		e.resetStreak()
		e.totalIncorrect++
	}

	e.lastAnswerTick = nowTick
	rounded := int(math.Round(points))
	e.AddScore(rounded)
	e.lastPoints = rounded

	unlocked := e.checkAchievements(isCorrect, timeRemainingMs, nowTick)
	return rounded, unlocked
}

// AddScore applies a raw point delta, clamping the total at zero.
// Used directly for the empty-lane penalty, which touches neither
// streak nor lives.
func (e *ScoreEngine) AddScore(points int) {
	e.score += points
	if e.score < 0 {
		e.score = 0
	}
}

func (e *ScoreEngine) timeBonus(timeRemainingMs float64) float64 {
	secondsRemaining := timeRemainingMs / 1000
	bonus := e.cfg.MaxTimeBonus - secondsRemaining*e.cfg.BonusDecayRate
	if bonus < 0 {
		bonus = 0
	}
	return math.Round(bonus)
}

// streakMultiplier buckets the pre-increment streak into the multiplier
// table: 0, 1-2, 3-5, 6-9, 10-14, 15+.
func (e *ScoreEngine) streakMultiplier() float64 {
	m := e.cfg.StreakMultipliers
	if len(m) < 6 {
		return 1
	}
	switch {
	case e.currentStreak == 0:
		return m[0]
	case e.currentStreak <= 2:
		return m[1]
	case e.currentStreak <= 5:
		return m[2]
	case e.currentStreak <= 9:
		return m[3]
	case e.currentStreak <= 14:
		return m[4]
	default:
		return m[5]
	}
}

func (e *ScoreEngine) resetStreak() {
	e.currentStreak = 0
	e.perfectStreak = 0
}

// checkAchievements evaluates milestones after an answer. Score thresholds
// are edge-triggered: they fire only on the answer whose points crossed
// the threshold.
func (e *ScoreEngine) checkAchievements(isCorrect bool, timeRemainingMs float64, nowTick int) []Achievement {
	if !isCorrect {
		return nil
	}

	var unlocked []Achievement

	try := func(id string, condition bool) {
		if !condition {
			return
		}
		for _, a := range e.achievements {
			if a.ID == id && !a.Unlocked {
				a.Unlocked = true
				a.UnlockedAt = nowTick
				unlocked = append(unlocked, *a)
			}
		}
	}

	try("first_correct", e.totalCorrect == 1)
	try("streak_5", e.currentStreak == 5)
	try("streak_10", e.currentStreak == 10)
	try("streak_20", e.currentStreak == 20)
	try("perfect_10", e.perfectStreak == e.cfg.PerfectStreakTarget)
	try("speed_demon", timeRemainingMs > float64(e.cfg.PerfectThresholdMs))
	try("score_1000", e.score >= 1000 && e.score-e.lastPoints < 1000)
	try("score_5000", e.score >= 5000 && e.score-e.lastPoints < 5000)
	try("score_10000", e.score >= 10000 && e.score-e.lastPoints < 10000)

	return unlocked
}

// Score returns the current total, never negative.
func (e *ScoreEngine) Score() int { return e.score }

// Streak returns the current consecutive-correct count.
func (e *ScoreEngine) Streak() int { return e.currentStreak }

// BestStreak returns the session's longest streak.
func (e *ScoreEngine) BestStreak() int { return e.bestStreak }

// PerfectStreak returns the consecutive fast-answer count.
func (e *ScoreEngine) PerfectStreak() int { return e.perfectStreak }

// TotalCorrect returns the number of correct answers.
func (e *ScoreEngine) TotalCorrect() int { return e.totalCorrect }

// TotalIncorrect returns the number of wrong answers.
func (e *ScoreEngine) TotalIncorrect() int { return e.totalIncorrect }

// TotalTimeouts returns the number of timed-out questions.
func (e *ScoreEngine) TotalTimeouts() int { return e.totalTimeouts }

// Accuracy returns correct/(correct+incorrect) as a percentage,
// 0 when nothing has been answered yet.
func (e *ScoreEngine) Accuracy() float64 {
	total := e.totalCorrect + e.totalIncorrect
	if total == 0 {
		return 0
	}
	return float64(e.totalCorrect) / float64(total) * 100
}

// Achievements returns a copy of all achievements with unlock state.
func (e *ScoreEngine) Achievements() []Achievement {
	out := make([]Achievement, len(e.achievements))
	for i, a := range e.achievements {
		out[i] = *a
	}
	return out
}
