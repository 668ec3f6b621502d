package game

import "github.com/vovakirdan/quizrun/internal/quiz"

// Snapshot is a read-only view of the live session for the UI layer.
type Snapshot struct {
	Score             int
	Lives             int
	MaxLives          int
	Streak            int
	BestStreak        int
	Speed             float64
	QuestionsAnswered int
	TargetDifficulty  quiz.Difficulty
	Question          *quiz.Question
	CountdownSeconds  float64
	ShieldActive      bool
	Invincible        bool
}

// Snapshot captures the current session state for HUD rendering.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Score:             g.score.Score(),
		Lives:             g.lives.Lives(),
		MaxLives:          g.lives.MaxLives(),
		Streak:            g.score.Streak(),
		BestStreak:        g.score.BestStreak(),
		Speed:             g.speed,
		QuestionsAnswered: g.questionsAnswered,
		TargetDifficulty:  g.bank.TargetDifficulty(),
		ShieldActive:      g.lives.HasShield(g.tickCount),
		Invincible:        g.lives.Invincible(g.tickCount),
	}
	if g.field.Active() {
		s.Question = g.field.Question()
		s.CountdownSeconds = float64(g.field.CountdownTicks()) * g.config.DeltaMs() / 1000
	}
	return s
}

// Summary is the final result of a finished session, ready for storage
// and score submission.
type Summary struct {
	Score             int
	QuestionsAnswered int
	Correct           int
	Incorrect         int
	Timeouts          int
	Accuracy          float64
	BestStreak        int
	DifficultyReached quiz.Difficulty
	Achievements      []Achievement
}

// Summary builds the end-of-session result.
func (g *Game) Summary() Summary {
	var unlocked []Achievement
	for _, a := range g.score.Achievements() {
		if a.Unlocked {
			unlocked = append(unlocked, a)
		}
	}
	return Summary{
		Score:             g.score.Score(),
		QuestionsAnswered: g.questionsAnswered,
		Correct:           g.score.TotalCorrect(),
		Incorrect:         g.score.TotalIncorrect(),
		Timeouts:          g.score.TotalTimeouts(),
		Accuracy:          g.score.Accuracy(),
		BestStreak:        g.score.BestStreak(),
		DifficultyReached: DifficultyReachedFor(g.questionsAnswered),
		Achievements:      unlocked,
	}
}

// DifficultyReachedFor maps a question count to the highest tier the
// session progressed into.
func DifficultyReachedFor(questionsAnswered int) quiz.Difficulty {
	switch {
	case questionsAnswered >= 50:
		return quiz.DifficultyExpert
	case questionsAnswered >= 25:
		return quiz.DifficultyHard
	case questionsAnswered >= 10:
		return quiz.DifficultyMedium
	default:
		return quiz.DifficultyEasy
	}
}
