package config

import (
	"fmt"
	"math"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty converts a flag value to a preset.
// An empty string means "use the config as loaded".
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// SpeedFactorForPreset returns the tick rate multiplier for a preset.
func SpeedFactorForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.25
	default:
		return 1.0
	}
}

// IsFixedPreset returns true if the preset disables speed progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal and empty presets leave the config untouched.
func ApplyPreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		// Survival never speeds up
		cfg.Survival.FastTickRate = cfg.Survival.BaseTickRate
		return
	}

	f := SpeedFactorForPreset(preset)
	if f == 1.0 {
		return
	}

	cfg.Survival.BaseTickRate = scaleRate(cfg.Survival.BaseTickRate, f)
	cfg.Survival.FastTickRate = scaleRate(cfg.Survival.FastTickRate, f)
	for i := range cfg.Level.Levels {
		cfg.Level.Levels[i].TickRate = scaleRate(cfg.Level.Levels[i].TickRate, f)
	}

	// Bombs show up more often on hard, less on easy
	switch preset {
	case DifficultyEasy:
		cfg.Survival.Bomb.OneIn *= 2
	case DifficultyHard:
		cfg.Survival.Bomb.OneIn = max(cfg.Survival.Bomb.OneIn/2, 1)
	}
}

// scaleRate multiplies a tick rate, keeping it at least 1.
func scaleRate(rate int, f float64) int {
	return max(int(math.Round(float64(rate)*f)), 1)
}
