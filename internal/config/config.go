// Package config provides YAML-based game configuration loading and
// difficulty presets for the quiz runner.
package config

// GameConfig contains all tunable parameters for a quiz runner session.
type GameConfig struct {
	Track     TrackConfig     `yaml:"track"`
	Gameplay  GameplayConfig  `yaml:"gameplay"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Lives     LivesConfig     `yaml:"lives"`
	Questions QuestionsConfig `yaml:"questions"`
}

// TrackConfig defines the perspective-projected track geometry. Widths and
// the horizon are fractions of the screen so the track scales with the
// terminal.
type TrackConfig struct {
	Lanes           int     `yaml:"lanes"`
	MaxDepth        float64 `yaml:"max_depth"`
	TopWidthFrac    float64 `yaml:"top_width_frac"`
	BottomWidthFrac float64 `yaml:"bottom_width_frac"`
	HorizonFrac     float64 `yaml:"horizon_frac"`
	GroundMargin    int     `yaml:"ground_margin"`
}

// GameplayConfig defines spawn timing, speed progression, and collision
// resolution parameters.
type GameplayConfig struct {
	SpawnIntervalMs  int     `yaml:"spawn_interval_ms"`
	AnswerTimeMs     int     `yaml:"answer_time_ms"`
	BaseSpeed        float64 `yaml:"base_speed"`
	SpeedIncrement   float64 `yaml:"speed_increment"`
	MaxSpeed         float64 `yaml:"max_speed"`
	SpeedUpEvery     int     `yaml:"speed_up_every"`
	LaneEase         float64 `yaml:"lane_ease"`
	TriggerDepth     float64 `yaml:"trigger_depth"`
	TriggerBand      float64 `yaml:"trigger_band"`
	EmptyLanePenalty int     `yaml:"empty_lane_penalty"`
	EarlyQuestions   int     `yaml:"early_questions"`
	EarlyMaxAnswers  int     `yaml:"early_max_answers"`
}

// ScoringConfig defines the point computation parameters.
type ScoringConfig struct {
	BaseCorrect         int       `yaml:"base_correct"`
	IncorrectPenalty    int       `yaml:"incorrect_penalty"`
	MaxTimeBonus        float64   `yaml:"max_time_bonus"`
	BonusDecayRate      float64   `yaml:"bonus_decay_rate"`
	StreakMultipliers   []float64 `yaml:"streak_multipliers"`
	ComboWindowMs       int       `yaml:"combo_window_ms"`
	ComboMultiplier     float64   `yaml:"combo_multiplier"`
	PerfectThresholdMs  int       `yaml:"perfect_threshold_ms"`
	PerfectStreakTarget int       `yaml:"perfect_streak_target"`
}

// LivesConfig defines the lives/recovery mechanic parameters.
type LivesConfig struct {
	Initial           int `yaml:"initial"`
	Max               int `yaml:"max"`
	InvincibilityMs   int `yaml:"invincibility_ms"`
	ShieldMs          int `yaml:"shield_ms"`
	RecoveryThreshold int `yaml:"recovery_threshold"`
	MaxRecoveries     int `yaml:"max_recoveries"`
}

// QuestionsConfig defines where questions come from and cache behavior.
type QuestionsConfig struct {
	URL       string `yaml:"url"`
	File      string `yaml:"file"`
	CacheDays int    `yaml:"cache_days"`
}
