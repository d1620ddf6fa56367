// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// SnakeConfig contains all tunable rules for both play modes.
type SnakeConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Survival SurvivalConfig `yaml:"survival"`
	Level    LevelConfig    `yaml:"level"`
	Scores   ScoresConfig   `yaml:"scores"`
}

// BoardConfig defines the playing field in board units.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Block  int `yaml:"block"`
	StartX int `yaml:"start_x"` // Initial head position
	StartY int `yaml:"start_y"`
}

// Board converts the config to a core.Board.
func (b BoardConfig) Board() core.Board {
	return core.Board{Width: b.Width, Height: b.Height, Block: b.Block}
}

// Start returns the initial head cell.
func (b BoardConfig) Start() core.Cell {
	return core.Cell{X: b.StartX, Y: b.StartY}
}

// ScoringConfig defines point values.
type ScoringConfig struct {
	PerApple int `yaml:"per_apple"`
}

// SurvivalConfig defines endless mode pacing and item rules.
type SurvivalConfig struct {
	BaseTickRate int           `yaml:"base_tick_rate"`
	FastTickRate int           `yaml:"fast_tick_rate"`
	FastLength   int           `yaml:"fast_length"` // Length at which the fast rate kicks in
	Bomb         ItemConfig    `yaml:"bomb"`
	Magnet       MagnetConfig  `yaml:"magnet"`
	Scissor      ScissorConfig `yaml:"scissor"`
}

// ItemConfig defines how often an item spawns.
type ItemConfig struct {
	OneIn     int `yaml:"one_in"`     // Spawn chance per tick is 1/OneIn; 0 disables
	MinLength int `yaml:"min_length"` // Snake length required before spawning
}

// MagnetConfig defines the magnet power-up.
type MagnetConfig struct {
	ItemConfig `yaml:",inline"`
	DurationMS int `yaml:"duration_ms"`
	Radius     int `yaml:"radius"` // Per-axis reach in board units
}

// Duration returns the magnet effect length.
func (m MagnetConfig) Duration() time.Duration {
	return time.Duration(m.DurationMS) * time.Millisecond
}

// ScissorConfig defines the scissor power-up.
type ScissorConfig struct {
	ItemConfig `yaml:",inline"`
	Cut        int `yaml:"cut"` // Tail segments removed on pickup
}

// LevelConfig holds the staged level table.
type LevelConfig struct {
	Levels []LevelSpec `yaml:"levels"`
}

// LevelSpec is the static configuration of one level.
type LevelSpec struct {
	Name      string `yaml:"name"`
	Quota     int    `yaml:"quota"`     // Apples needed to advance
	TickRate  int    `yaml:"tick_rate"` // Ticks per second
	Obstacles int    `yaml:"obstacles"` // Static obstacles placed at round start
}

// ScoresConfig selects the score store.
type ScoresConfig struct {
	Backend string `yaml:"backend"` // "json" or "sqlite"
	Path    string `yaml:"path"`
	TopN    int    `yaml:"top_n"`
}

// Validate checks the config for values the engines cannot run with.
func (c SnakeConfig) Validate() error {
	var errs []error

	b := c.Board
	if b.Block <= 0 {
		errs = append(errs, fmt.Errorf("board.block must be positive, got %d", b.Block))
	} else {
		if b.Width < b.Block || b.Width%b.Block != 0 {
			errs = append(errs, fmt.Errorf("board.width %d must be a positive multiple of block %d", b.Width, b.Block))
		}
		if b.Height < b.Block || b.Height%b.Block != 0 {
			errs = append(errs, fmt.Errorf("board.height %d must be a positive multiple of block %d", b.Height, b.Block))
		}
		if !b.Board().Contains(b.Start()) || !b.Board().Aligned(b.Start()) {
			errs = append(errs, fmt.Errorf("board start (%d,%d) must be an aligned cell on the board", b.StartX, b.StartY))
		}
	}

	if c.Survival.BaseTickRate <= 0 || c.Survival.FastTickRate <= 0 {
		errs = append(errs, errors.New("survival tick rates must be positive"))
	}
	if c.Survival.Magnet.DurationMS < 0 || c.Survival.Magnet.Radius < 0 {
		errs = append(errs, errors.New("survival.magnet duration and radius must not be negative"))
	}
	if c.Survival.Scissor.Cut < 0 {
		errs = append(errs, errors.New("survival.scissor.cut must not be negative"))
	}

	if len(c.Level.Levels) == 0 {
		errs = append(errs, errors.New("level.levels must not be empty"))
	}
	for i, l := range c.Level.Levels {
		if l.Quota <= 0 {
			errs = append(errs, fmt.Errorf("level %d: quota must be positive", i+1))
		}
		if l.TickRate <= 0 {
			errs = append(errs, fmt.Errorf("level %d: tick_rate must be positive", i+1))
		}
		if l.Obstacles < 0 {
			errs = append(errs, fmt.Errorf("level %d: obstacles must not be negative", i+1))
		}
	}

	if c.Scores.TopN <= 0 {
		errs = append(errs, fmt.Errorf("scores.top_n must be positive, got %d", c.Scores.TopN))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid snake config: %w", err)
	}
	return nil
}
