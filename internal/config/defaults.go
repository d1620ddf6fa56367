package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:  800,
			Height: 600,
			Block:  20,
			StartX: 100,
			StartY: 100,
		},
		Scoring: ScoringConfig{
			PerApple: 10,
		},
		Survival: SurvivalConfig{
			BaseTickRate: 10,
			FastTickRate: 20,
			FastLength:   10,
			Bomb:         ItemConfig{OneIn: 150},
			Magnet: MagnetConfig{
				ItemConfig: ItemConfig{OneIn: 200, MinLength: 15},
				DurationMS: 5000,
				Radius:     120,
			},
			Scissor: ScissorConfig{
				ItemConfig: ItemConfig{OneIn: 250, MinLength: 25},
				Cut:        10,
			},
		},
		Level: LevelConfig{
			Levels: []LevelSpec{
				{Name: "Warm Up", Quota: 5, TickRate: 10, Obstacles: 0},
				{Name: "Rocky Field", Quota: 6, TickRate: 14, Obstacles: 12},
				{Name: "Boulder Run", Quota: 6, TickRate: 16, Obstacles: 15},
				{Name: "Final Sprint", Quota: 6, TickRate: 20, Obstacles: 15},
			},
		},
		Scores: ScoresConfig{
			Backend: "json",
			Path:    "~/.snake/scores.json",
			TopN:    5,
		},
	}
}
