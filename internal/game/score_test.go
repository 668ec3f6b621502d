package game

import (
	"testing"

	"github.com/vovakirdan/quizrun/internal/config"
	"github.com/vovakirdan/quizrun/internal/quiz"
)

func newTestScoreEngine() *ScoreEngine {
	return NewScoreEngine(config.DefaultGameConfig().Scoring, 60)
}

func TestScoreCorrectEasyAnswer(t *testing.T) {
	e := newTestScoreEngine()

	// 9s remaining: time bonus = round(50 - 9*5) = 5, streak bucket 1.0
	points, unlocked := e.CalculateScore(true, quiz.DifficultyEasy, 9000, false, 10)
	if points != 105 {
		t.Errorf("points = %d, expected 105", points)
	}
	if e.Score() != 105 {
		t.Errorf("score = %d, expected 105", e.Score())
	}
	if e.Streak() != 1 {
		t.Errorf("streak = %d, expected 1", e.Streak())
	}

	ids := map[string]bool{}
	for _, a := range unlocked {
		ids[a.ID] = true
	}
	if !ids["first_correct"] {
		t.Error("first correct answer should unlock first_correct")
	}
	if !ids["speed_demon"] {
		t.Error("answering with 9s remaining should unlock speed_demon")
	}
}

func TestScoreDifficultyMultipliers(t *testing.T) {
	tests := []struct {
		difficulty quiz.Difficulty
		expected   int
	}{
		{quiz.DifficultyEasy, 100},
		{quiz.DifficultyMedium, 150},
		{quiz.DifficultyHard, 200},
		{quiz.DifficultyExpert, 300},
	}

	for _, tc := range tests {
		t.Run(string(tc.difficulty), func(t *testing.T) {
			e := newTestScoreEngine()
			// 10s remaining zeroes the time bonus
			points, _ := e.CalculateScore(true, tc.difficulty, 10000, false, 10)
			if points != tc.expected {
				t.Errorf("points = %d, expected %d", points, tc.expected)
			}
		})
	}
}

func TestScoreStreakBuckets(t *testing.T) {
	e := newTestScoreEngine()

	// Answers spaced beyond the combo window; the multiplier uses the
	// streak before each increment: 0 -> x1.0, 1-2 -> x1.2, 3 -> x1.5
	expected := []int{100, 120, 120, 150}
	tick := 200
	for i, want := range expected {
		points, _ := e.CalculateScore(true, quiz.DifficultyEasy, 10000, false, tick)
		if points != want {
			t.Errorf("answer %d: points = %d, expected %d", i+1, points, want)
		}
		tick += 400
	}
	if e.Streak() != 4 || e.BestStreak() != 4 {
		t.Errorf("streak = %d/%d, expected 4/4", e.Streak(), e.BestStreak())
	}
}

func TestScoreComboBonus(t *testing.T) {
	e := newTestScoreEngine()

	e.CalculateScore(true, quiz.DifficultyEasy, 10000, false, 100)

	// 100 ticks later at 60 fps is well inside the 3s combo window:
	// 100 * 1.2 streak * 1.5 combo = 180
	points, _ := e.CalculateScore(true, quiz.DifficultyEasy, 10000, false, 200)
	if points != 180 {
		t.Errorf("combo points = %d, expected 180", points)
	}
}

func TestScoreComboWindowNeverVanishes(t *testing.T) {
	cfg := config.DefaultGameConfig().Scoring
	// 10ms at 60 fps is 0.6 ticks; the window still spans one tick
	cfg.ComboWindowMs = 10
	e := NewScoreEngine(cfg, 60)

	e.CalculateScore(true, quiz.DifficultyEasy, 10000, false, 100)

	// Same-tick follow-up: 100 * 1.2 streak * 1.5 combo = 180
	points, _ := e.CalculateScore(true, quiz.DifficultyEasy, 10000, false, 100)
	if points != 180 {
		t.Errorf("combo points = %d, expected 180", points)
	}

	// One tick later the window has passed
	points, _ = e.CalculateScore(true, quiz.DifficultyEasy, 10000, false, 101)
	if points != 120 {
		t.Errorf("points = %d, expected 120 without combo", points)
	}
}

func TestScoreNoComboOnFirstAnswer(t *testing.T) {
	e := newTestScoreEngine()

	// First answer at a small tick must not combo against the zero value
	points, _ := e.CalculateScore(true, quiz.DifficultyEasy, 10000, false, 5)
	if points != 100 {
		t.Errorf("points = %d, expected 100", points)
	}
}

func TestScoreIncorrectResetsStreak(t *testing.T) {
	e := newTestScoreEngine()

	e.CalculateScore(true, quiz.DifficultyEasy, 10000, false, 100)
	e.CalculateScore(true, quiz.DifficultyEasy, 10000, false, 500)
	if e.Streak() != 2 {
		t.Fatalf("streak = %d, expected 2", e.Streak())
	}

	points, _ := e.CalculateScore(false, quiz.DifficultyEasy, 5000, false, 900)
	if points != -50 {
		t.Errorf("penalty = %d, expected -50", points)
	}
	if e.Streak() != 0 {
		t.Errorf("streak after wrong answer = %d, expected 0", e.Streak())
	}
	if e.BestStreak() != 2 {
		t.Errorf("best streak = %d, expected 2", e.BestStreak())
	}
}

func TestScoreNeverNegative(t *testing.T) {
	e := newTestScoreEngine()

	for i := 0; i < 5; i++ {
		e.CalculateScore(false, quiz.DifficultyEasy, 5000, false, 100+i*400)
		if e.Score() < 0 {
			t.Fatalf("score went negative: %d", e.Score())
		}
	}
	if e.Score() != 0 {
		t.Errorf("score = %d, expected 0", e.Score())
	}

	e.AddScore(-500)
	if e.Score() != 0 {
		t.Errorf("score after raw penalty = %d, expected clamp to 0", e.Score())
	}
}

func TestScoreTimeout(t *testing.T) {
	e := newTestScoreEngine()

	e.CalculateScore(true, quiz.DifficultyEasy, 9000, false, 100)
	before := e.Score()

	points, unlocked := e.CalculateScore(false, quiz.DifficultyEasy, 0, true, 800)
	if points != 0 {
		t.Errorf("timeout points = %d, expected 0", points)
	}
	if len(unlocked) != 0 {
		t.Errorf("timeout unlocked %d achievements, expected none", len(unlocked))
	}
	if e.Score() != before {
		t.Errorf("score changed on timeout: %d -> %d", before, e.Score())
	}
	if e.Streak() != 0 || e.PerfectStreak() != 0 {
		t.Errorf("timeout should reset streaks, got %d/%d", e.Streak(), e.PerfectStreak())
	}
	if e.TotalTimeouts() != 1 {
		t.Errorf("timeouts = %d, expected 1", e.TotalTimeouts())
	}
}

func TestScoreStreakAchievement(t *testing.T) {
	e := newTestScoreEngine()

	var unlockedIDs []string
	tick := 200
	for i := 0; i < 6; i++ {
		_, unlocked := e.CalculateScore(true, quiz.DifficultyEasy, 5000, false, tick)
		for _, a := range unlocked {
			unlockedIDs = append(unlockedIDs, a.ID)
		}
		tick += 400
	}

	count := 0
	for _, id := range unlockedIDs {
		if id == "streak_5" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("streak_5 unlocked %d times, expected exactly once", count)
	}
}

func TestScoreThresholdAchievementEdgeTriggered(t *testing.T) {
	e := newTestScoreEngine()

	// Expert answers with no time bonus: 300, 360, 360 ... crosses 1000
	// on the third answer
	var crossings int
	tick := 200
	for i := 0; i < 6; i++ {
		_, unlocked := e.CalculateScore(true, quiz.DifficultyExpert, 10000, false, tick)
		for _, a := range unlocked {
			if a.ID == "score_1000" {
				crossings++
				if i != 2 {
					t.Errorf("score_1000 unlocked on answer %d, expected answer 3", i+1)
				}
			}
		}
		tick += 400
	}
	if crossings != 1 {
		t.Errorf("score_1000 unlocked %d times, expected exactly once", crossings)
	}
}

func TestScoreAccuracy(t *testing.T) {
	e := newTestScoreEngine()

	if e.Accuracy() != 0 {
		t.Errorf("accuracy with no answers = %f, expected 0", e.Accuracy())
	}

	tick := 200
	for i := 0; i < 3; i++ {
		e.CalculateScore(true, quiz.DifficultyEasy, 5000, false, tick)
		tick += 400
	}
	e.CalculateScore(false, quiz.DifficultyEasy, 5000, false, tick)

	if e.Accuracy() != 75 {
		t.Errorf("accuracy = %f, expected 75", e.Accuracy())
	}
}

func TestScoreReset(t *testing.T) {
	e := newTestScoreEngine()

	e.CalculateScore(true, quiz.DifficultyExpert, 9000, false, 100)
	e.Reset()

	if e.Score() != 0 || e.Streak() != 0 || e.TotalCorrect() != 0 {
		t.Error("reset should clear all scoring state")
	}
	for _, a := range e.Achievements() {
		if a.Unlocked {
			t.Errorf("achievement %s still unlocked after reset", a.ID)
		}
	}
}
