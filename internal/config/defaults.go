package config

import (
	_ "embed"
)

//go:embed defaults/quizrun.yaml
var defaultQuizrunYAML []byte

// DefaultGameConfig returns the default quiz runner configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Track: TrackConfig{
			Lanes:           4,
			MaxDepth:        100,
			TopWidthFrac:    0.2,
			BottomWidthFrac: 0.85,
			HorizonFrac:     0.18,
			GroundMargin:    3,
		},
		Gameplay: GameplayConfig{
			SpawnIntervalMs:  3000,
			AnswerTimeMs:     10000,
			BaseSpeed:        2.0,
			SpeedIncrement:   0.3,
			MaxSpeed:         5.0,
			SpeedUpEvery:     3,
			LaneEase:         0.1,
			TriggerDepth:     0.1,
			TriggerBand:      2.0,
			EmptyLanePenalty: 500,
			EarlyQuestions:   5,
			EarlyMaxAnswers:  2,
		},
		Scoring: ScoringConfig{
			BaseCorrect:         100,
			IncorrectPenalty:    50,
			MaxTimeBonus:        50,
			BonusDecayRate:      5,
			StreakMultipliers:   []float64{1, 1.2, 1.5, 2, 2.5, 3},
			ComboWindowMs:       3000,
			ComboMultiplier:     1.5,
			PerfectThresholdMs:  8000,
			PerfectStreakTarget: 10,
		},
		Lives: LivesConfig{
			Initial:           3,
			Max:               5,
			InvincibilityMs:   2000,
			ShieldMs:          10000,
			RecoveryThreshold: 10,
			MaxRecoveries:     2,
		},
		Questions: QuestionsConfig{
			CacheDays: 7,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultQuizrunYAML
}
