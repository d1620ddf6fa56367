// Package survival implements the endless snake mode with random
// hazards and power-ups.
package survival

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/render"
)

// ID is the registry and score-store key for this mode.
const ID = "survival"

func init() {
	registry.Register(ID, func(cfg config.SnakeConfig) registry.Engine {
		return New(cfg)
	})
}

// Engine runs one survival round. It is not safe for concurrent use.
type Engine struct {
	cfg   config.SnakeConfig
	board core.Board
	clock core.Clock
	spawn *core.Spawner

	tick  uint64
	score int
	snake *snake.Snake
	food  core.Cell

	// Item slots, each independently empty or holding one cell
	bomb    *core.Cell
	magnet  *core.Cell
	scissor *core.Cell

	magnetOn    bool
	magnetSince time.Duration

	tickRate int
	gameOver bool
	cause    core.Cause
}

// New creates a survival engine bound to cfg. Call Reset before stepping.
func New(cfg config.SnakeConfig) *Engine {
	return &Engine{cfg: cfg}
}

// ID returns the mode identifier.
func (e *Engine) ID() string {
	return ID
}

// Title returns the display name.
func (e *Engine) Title() string {
	return "Survival Mode"
}

// Reset starts a fresh round.
func (e *Engine) Reset(rt core.RuntimeConfig) {
	e.board = e.cfg.Board.Board()
	e.clock = rt.ClockOrSystem()
	e.spawn = core.NewSpawner(e.board, rand.New(rand.NewSource(rt.Seed)))

	e.tick = 0
	e.score = 0
	e.snake = snake.New(e.cfg.Board.Start(), core.DirRight)
	e.bomb, e.magnet, e.scissor = nil, nil, nil
	e.magnetOn = false
	e.magnetSince = 0
	e.gameOver = false
	e.cause = core.CauseNone

	e.respawnFood()
	e.updateTickRate()
}

// Step advances the round by one tick.
func (e *Engine) Step(in core.InputFrame) core.StepResult {
	if e.gameOver {
		return core.StepResult{State: e.State()}
	}
	e.tick++

	e.snake.Steer(in.Turns)
	next := e.snake.Next(e.board.Block)

	if !e.board.Contains(next) {
		return e.end(core.CauseWall)
	}
	if e.snake.Contains(next) {
		return e.end(core.CauseSelf)
	}

	e.snake.Push(next)
	if next == e.food {
		e.score += e.cfg.Scoring.PerApple
		e.respawnFood()
	} else {
		e.snake.PopTail()
	}

	head := e.snake.Head()

	// Bomb
	if e.bomb == nil && e.spawn.Chance(e.cfg.Survival.Bomb.OneIn) {
		e.bomb = e.place(e.occupied)
	}
	if e.bomb != nil && head == *e.bomb {
		return e.end(core.CauseBomb)
	}

	// Magnet
	sv := e.cfg.Survival
	if e.magnet == nil && e.snake.Len() >= sv.Magnet.MinLength && e.spawn.Chance(sv.Magnet.OneIn) {
		e.magnet = e.place(e.occupiedWithBomb)
	}
	if e.magnet != nil && head == *e.magnet {
		e.magnet = nil
		e.magnetOn = true
		e.magnetSince = e.clock.Now()
	}

	// Scissor
	if e.scissor == nil && e.snake.Len() >= sv.Scissor.MinLength && e.spawn.Chance(sv.Scissor.OneIn) {
		e.scissor = e.place(e.occupiedWithBomb)
	}
	if e.scissor != nil && head == *e.scissor {
		e.scissor = nil
		e.snake.Cut(sv.Scissor.Cut)
	}

	e.pull()
	e.updateTickRate()

	return core.StepResult{State: e.State()}
}

// pull applies an active magnet: food within reach becomes the new head.
func (e *Engine) pull() {
	if !e.magnetOn {
		return
	}
	if e.clock.Now()-e.magnetSince > e.cfg.Survival.Magnet.Duration() {
		e.magnetOn = false
		return
	}

	head := e.snake.Head()
	r := e.cfg.Survival.Magnet.Radius
	if core.Abs(head.X-e.food.X) < r && core.Abs(head.Y-e.food.Y) < r {
		e.snake.Push(e.food)
		e.score += e.cfg.Scoring.PerApple
		e.respawnFood()
	}
}

// MagnetActive reports whether the magnet effect is currently running.
func (e *Engine) MagnetActive() bool {
	return e.magnetOn && e.clock.Now()-e.magnetSince <= e.cfg.Survival.Magnet.Duration()
}

func (e *Engine) end(cause core.Cause) core.StepResult {
	e.gameOver = true
	e.cause = cause
	return core.StepResult{State: e.State()}
}

func (e *Engine) updateTickRate() {
	if e.snake.Len() >= e.cfg.Survival.FastLength {
		e.tickRate = e.cfg.Survival.FastTickRate
	} else {
		e.tickRate = e.cfg.Survival.BaseTickRate
	}
}

// respawnFood only avoids the snake. An apple may share a cell with an item.
func (e *Engine) respawnFood() {
	if c, ok := e.spawn.SpawnFree(e.snake.Contains); ok {
		e.food = c
	}
}

// occupied blocks the snake and food.
func (e *Engine) occupied(c core.Cell) bool {
	return c == e.food || e.snake.Contains(c)
}

// occupiedWithBomb also blocks an active bomb.
func (e *Engine) occupiedWithBomb(c core.Cell) bool {
	return e.occupied(c) || (e.bomb != nil && c == *e.bomb)
}

// place picks a free cell for an item, or nil if the board is full.
func (e *Engine) place(blocked func(core.Cell) bool) *core.Cell {
	c, ok := e.spawn.SpawnFree(blocked)
	return core.Optional(c, ok)
}

// Render draws the round into dst.
func (e *Engine) Render(dst *core.Screen) {
	render.Draw(dst, e.Frame())
}

// State returns the current round state.
func (e *Engine) State() core.GameState {
	return core.GameState{
		Score:    e.score,
		GameOver: e.gameOver,
		Cause:    e.cause,
		TickRate: e.tickRate,
	}
}

// Frame returns a snapshot of the round for rendering.
func (e *Engine) Frame() core.Frame {
	f := core.Frame{
		Mode:         ID,
		Board:        e.board,
		Tick:         e.tick,
		Snake:        e.snake.Cells(),
		Dir:          e.snake.Dir(),
		Food:         core.Optional(e.food, true),
		Bomb:         copyCell(e.bomb),
		Magnet:       copyCell(e.magnet),
		Scissor:      copyCell(e.scissor),
		MagnetActive: e.MagnetActive(),
		MagnetRadius: e.cfg.Survival.Magnet.Radius,
		Score:        e.score,
		TickRate:     e.tickRate,
		GameOver:     e.gameOver,
		Cause:        e.cause,
	}
	return f
}

// Snapshot returns the round state for determinism checks.
func (e *Engine) Snapshot() snake.Snapshot {
	return snake.SnapshotOf(e.Frame())
}

func copyCell(c *core.Cell) *core.Cell {
	if c == nil {
		return nil
	}
	return core.Optional(*c, true)
}
