package config

// DifficultyPreset represents a named session difficulty.
type DifficultyPreset string

const (
	PresetEasy   DifficultyPreset = "easy"
	PresetNormal DifficultyPreset = "normal"
	PresetHard   DifficultyPreset = "hard"
	PresetFixed  DifficultyPreset = "fixed"
)

// ValidPreset reports whether the preset name is known. The empty preset
// is valid and leaves the config untouched.
func ValidPreset(preset DifficultyPreset) bool {
	switch preset {
	case "", PresetEasy, PresetNormal, PresetHard, PresetFixed:
		return true
	}
	return false
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case PresetEasy:
		cfg.Lives.Initial = 5
		cfg.Gameplay.BaseSpeed = 1.5
		cfg.Gameplay.SpawnIntervalMs = 4000
	case PresetHard:
		cfg.Lives.Initial = 2
		cfg.Gameplay.BaseSpeed = 2.5
		cfg.Gameplay.SpawnIntervalMs = 2500
		cfg.Gameplay.MaxSpeed = 6.0
	case PresetFixed:
		// No speed progression, stays at the configured base speed
		cfg.Gameplay.SpeedIncrement = 0
	}
}
