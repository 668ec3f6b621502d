package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg GameConfig
	if err := yaml.Unmarshal(defaultQuizrunYAML, &cfg); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}

	want := DefaultGameConfig()
	if cfg.Track.Lanes != want.Track.Lanes {
		t.Errorf("lanes = %d, expected %d", cfg.Track.Lanes, want.Track.Lanes)
	}
	if cfg.Gameplay.SpawnIntervalMs != want.Gameplay.SpawnIntervalMs {
		t.Errorf("spawn_interval_ms = %d, expected %d", cfg.Gameplay.SpawnIntervalMs, want.Gameplay.SpawnIntervalMs)
	}
	if cfg.Scoring.BaseCorrect != want.Scoring.BaseCorrect {
		t.Errorf("base_correct = %d, expected %d", cfg.Scoring.BaseCorrect, want.Scoring.BaseCorrect)
	}
	if len(cfg.Scoring.StreakMultipliers) != 6 {
		t.Errorf("streak_multipliers = %v, expected 6 entries", cfg.Scoring.StreakMultipliers)
	}
	if cfg.Lives.Initial != want.Lives.Initial || cfg.Lives.Max != want.Lives.Max {
		t.Errorf("lives = %d/%d, expected %d/%d", cfg.Lives.Initial, cfg.Lives.Max, want.Lives.Initial, want.Lives.Max)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("gameplay:\n  base_speed: 3.5\nlives:\n  initial: 1\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Gameplay.BaseSpeed != 3.5 {
		t.Errorf("base_speed = %f, expected 3.5", cfg.Gameplay.BaseSpeed)
	}
	if cfg.Lives.Initial != 1 {
		t.Errorf("lives.initial = %d, expected 1", cfg.Lives.Initial)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load should fail for an explicit missing path")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		check  func(t *testing.T, cfg GameConfig)
	}{
		{PresetEasy, func(t *testing.T, cfg GameConfig) {
			if cfg.Lives.Initial != 5 {
				t.Errorf("easy preset lives = %d, expected 5", cfg.Lives.Initial)
			}
		}},
		{PresetHard, func(t *testing.T, cfg GameConfig) {
			if cfg.Lives.Initial != 2 {
				t.Errorf("hard preset lives = %d, expected 2", cfg.Lives.Initial)
			}
			if cfg.Gameplay.BaseSpeed != 2.5 {
				t.Errorf("hard preset base_speed = %f, expected 2.5", cfg.Gameplay.BaseSpeed)
			}
		}},
		{PresetFixed, func(t *testing.T, cfg GameConfig) {
			if cfg.Gameplay.SpeedIncrement != 0 {
				t.Errorf("fixed preset should zero the speed increment, got %f", cfg.Gameplay.SpeedIncrement)
			}
		}},
		{PresetNormal, func(t *testing.T, cfg GameConfig) {
			want := DefaultGameConfig()
			if cfg.Lives.Initial != want.Lives.Initial {
				t.Errorf("normal preset should not change lives")
			}
		}},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultGameConfig()
			ApplyPreset(&cfg, tc.preset)
			tc.check(t, cfg)
		})
	}
}

func TestValidPreset(t *testing.T) {
	for _, p := range []DifficultyPreset{"", PresetEasy, PresetNormal, PresetHard, PresetFixed} {
		if !ValidPreset(p) {
			t.Errorf("preset %q should be valid", p)
		}
	}
	if ValidPreset("nightmare") {
		t.Error("unknown preset should be invalid")
	}
}
