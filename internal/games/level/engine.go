// Package level implements the staged snake mode: fixed apple quotas,
// rising speed and static obstacles.
package level

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/render"
)

// ID is the registry and score-store key for this mode.
const ID = "level"

// safeLane is how many cells ahead of the start stay free of obstacles.
const safeLane = 3

func init() {
	registry.Register(ID, func(cfg config.SnakeConfig) registry.Engine {
		return New(cfg)
	})
}

// Engine runs one level. The round controller owns progression between levels.
type Engine struct {
	cfg   config.SnakeConfig
	board core.Board
	spawn *core.Spawner

	index int // 0-based level index
	stage config.LevelSpec

	tick      uint64
	apples    int
	snake     *snake.Snake
	food      core.Cell
	obstacles map[core.Cell]bool
	placed    []core.Cell // Obstacles in placement order

	gameOver bool
	cause    core.Cause
}

// New creates a level engine bound to cfg. Call Reset before stepping.
func New(cfg config.SnakeConfig) *Engine {
	return &Engine{cfg: cfg}
}

// ID returns the mode identifier.
func (e *Engine) ID() string {
	return ID
}

// Title returns the display name.
func (e *Engine) Title() string {
	return "Level Mode"
}

// Count returns the number of configured levels.
func (e *Engine) Count() int {
	return len(e.cfg.Level.Levels)
}

// Reset starts the level selected by rt.Level (1-based, clamped).
func (e *Engine) Reset(rt core.RuntimeConfig) {
	e.board = e.cfg.Board.Board()
	e.spawn = core.NewSpawner(e.board, rand.New(rand.NewSource(rt.Seed)))

	e.index = core.Clamp(rt.Level-1, 0, max(e.Count()-1, 0))
	e.stage = config.LevelSpec{}
	if e.Count() > 0 {
		e.stage = e.cfg.Level.Levels[e.index]
	}

	e.tick = 0
	e.apples = 0
	e.snake = snake.New(e.cfg.Board.Start(), core.DirRight)
	e.gameOver = false
	e.cause = core.CauseNone

	e.placeObstacles()
	e.respawnFood()
}

// placeObstacles generates the static obstacle set for this level.
// Obstacles never cover the snake or the first cells of its path.
func (e *Engine) placeObstacles() {
	e.obstacles = make(map[core.Cell]bool, e.stage.Obstacles)
	e.placed = e.placed[:0]

	lane := make(map[core.Cell]bool, safeLane)
	c := e.snake.Head()
	for range safeLane {
		c = e.snake.Dir().Step(c, e.board.Block)
		lane[c] = true
	}

	blocked := func(c core.Cell) bool {
		return e.obstacles[c] || lane[c] || e.snake.Contains(c)
	}
	for range e.stage.Obstacles {
		o, ok := e.spawn.SpawnFree(blocked)
		if !ok {
			break
		}
		e.obstacles[o] = true
		e.placed = append(e.placed, o)
	}
}

// Step advances the level by one tick.
func (e *Engine) Step(in core.InputFrame) core.StepResult {
	if e.gameOver {
		return core.StepResult{State: e.State()}
	}
	e.tick++

	e.snake.Steer(in.Turns)
	next := e.snake.Next(e.board.Block)

	switch {
	case !e.board.Contains(next):
		return e.end(core.CauseWall)
	case e.obstacles[next]:
		return e.end(core.CauseObstacle)
	case e.snake.Contains(next):
		return e.end(core.CauseSelf)
	}

	e.snake.Push(next)
	if next != e.food {
		e.snake.PopTail()
		return core.StepResult{State: e.State()}
	}

	e.apples++
	if e.apples >= e.stage.Quota {
		return e.end(core.CauseLevelCleared)
	}
	e.respawnFood()
	return core.StepResult{State: e.State()}
}

func (e *Engine) end(cause core.Cause) core.StepResult {
	e.gameOver = true
	e.cause = cause
	return core.StepResult{State: e.State()}
}

func (e *Engine) respawnFood() {
	c, ok := e.spawn.SpawnFree(func(c core.Cell) bool {
		return e.obstacles[c] || e.snake.Contains(c)
	})
	if ok {
		e.food = c
	}
}

// Render draws the level into dst.
func (e *Engine) Render(dst *core.Screen) {
	render.Draw(dst, e.Frame())
}

// State returns the level state. Score is the level's delta: apples times
// the per-apple value.
func (e *Engine) State() core.GameState {
	return core.GameState{
		Score:    e.apples * e.cfg.Scoring.PerApple,
		GameOver: e.gameOver,
		Cause:    e.cause,
		TickRate: e.stage.TickRate,
	}
}

// Frame returns a snapshot of the level for rendering.
// Score holds the level delta; the controller adds the running total.
func (e *Engine) Frame() core.Frame {
	obstacles := make([]core.Cell, len(e.placed))
	copy(obstacles, e.placed)

	return core.Frame{
		Mode:      ID,
		Board:     e.board,
		Tick:      e.tick,
		Snake:     e.snake.Cells(),
		Dir:       e.snake.Dir(),
		Food:      core.Optional(e.food, true),
		Obstacles: obstacles,
		Score:     e.apples * e.cfg.Scoring.PerApple,
		Level:     e.index + 1,
		Levels:    e.Count(),
		Apples:    e.apples,
		Quota:     e.stage.Quota,
		TickRate:  e.stage.TickRate,
		GameOver:  e.gameOver,
		Cause:     e.cause,
	}
}

// Snapshot returns the level state for determinism checks.
func (e *Engine) Snapshot() snake.Snapshot {
	return snake.SnapshotOf(e.Frame())
}
