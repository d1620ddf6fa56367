// Package registry maps snake mode IDs ("level", "survival") to engine
// constructors. Each mode package adds itself from init, and the round
// controller and the list command look modes up by ID.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Engine runs one snake round. Step is a pure transition over board state;
// timing, key handling and terminal output belong to the caller.
type Engine interface {
	// ID is the mode key, shared with the score table.
	ID() string

	// Title is the menu label.
	Title() string

	// Reset places a new snake and food, seeding spawns from rt.Seed.
	// Staged modes start at rt.Level.
	Reset(cfg core.RuntimeConfig)

	// Step moves the snake one cell and resolves what it hits.
	// After a terminal cause it only repeats the final state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the board, items and HUD into dst.
	Render(dst *core.Screen)

	// State reports score, cause and the tick rate to run at.
	State() core.GameState

	// Frame copies everything a renderer needs.
	Frame() core.Frame
}

// ModeInfo is one row of the mode list.
type ModeInfo struct {
	ID    string
	Title string
}

// Factory builds an engine for a rule set. The engine is idle until Reset.
type Factory func(cfg config.SnakeConfig) Engine

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a mode. Registering an ID twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}

	factories[id] = f

	// Titles come from an engine built with the shipped rules
	e := f(config.DefaultSnakeConfig())
	titles[id] = e.Title()
}

// List returns the registered modes ordered by ID.
func List() []ModeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ModeInfo, 0, len(factories))
	for id := range factories {
		result = append(result, ModeInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds an engine for id using cfg.
func Create(id string, cfg config.SnakeConfig) (Engine, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}

	return f(cfg), nil
}

// Exists reports whether id names a registered mode.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
