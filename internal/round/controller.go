// Package round sequences play: it starts engines, carries the level-mode
// running total, persists final scores and applies the player's choice
// after a round ends.
package round

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"

	// Register play modes
	_ "github.com/vovakirdan/tui-snake/internal/games/level"
	_ "github.com/vovakirdan/tui-snake/internal/games/survival"
)

// Mode IDs match the score table keys.
const (
	ModeLevel    = storage.ModeLevel
	ModeSurvival = storage.ModeSurvival
)

// Outcome is the player's (or the level's) decision after a round.
type Outcome int

const (
	OutcomeMenu    Outcome = iota // Leave to the caller
	OutcomeRestart                // Fresh round from the start
	OutcomeNext                   // Advance to the next level
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMenu:
		return "menu"
	case OutcomeRestart:
		return "restart"
	case OutcomeNext:
		return "next"
	default:
		return "unknown"
	}
}

// Phase is where the controller is in its lifecycle.
type Phase int

const (
	PhasePlaying  Phase = iota // An engine is running
	PhaseGameOver              // Player died; awaiting Restart or Menu
	PhaseVictory               // Every level cleared; awaiting Restart or Menu
	PhaseDone                  // Player chose Menu
)

// ScoreSaver persists final scores.
type ScoreSaver interface {
	SaveScore(mode string, score int) error
}

// ErrNotFinished is returned by Resolve while a round is still running.
var ErrNotFinished = errors.New("round: round still in progress")

// Options configures a controller.
type Options struct {
	Mode       string
	Config     config.SnakeConfig
	StartLevel int        // 1-based; level mode only
	Seed       int64      // 0 seeds each round from the wall clock
	Clock      core.Clock // nil uses the system clock
	Saver      ScoreSaver // nil disables persistence
	Logger     *log.Logger
}

// Controller owns one play session of a single mode.
// It is driven from one goroutine (the UI loop).
type Controller struct {
	opts   Options
	logger *log.Logger

	engine registry.Engine
	phase  Phase
	rounds int64

	level      int // 1-based, level mode only
	levels     int
	cumulative int // Sum of cleared level deltas
	final      int // Score persisted at the last terminal
	cause      core.Cause
	cleared    int // Level number cleared by the last Next, 0 if none
	saveErr    error
}

// New creates a controller and starts its first round.
func New(opts Options) (*Controller, error) {
	if !registry.Exists(opts.Mode) {
		return nil, fmt.Errorf("round: unknown mode %q", opts.Mode)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	c := &Controller{
		opts:   opts,
		logger: logger,
		levels: len(opts.Config.Level.Levels),
	}
	c.level = core.Clamp(opts.StartLevel, 1, max(c.levels, 1))

	if err := c.begin(); err != nil {
		return nil, err
	}
	return c, nil
}

// begin builds a fresh engine for the current level.
func (c *Controller) begin() error {
	e, err := registry.Create(c.opts.Mode, c.opts.Config)
	if err != nil {
		return err
	}

	c.rounds++
	seed := time.Now().UnixNano()
	if c.opts.Seed != 0 {
		seed = c.opts.Seed + c.rounds - 1
	}

	e.Reset(core.RuntimeConfig{
		Seed:  seed,
		Clock: c.opts.Clock,
		Level: c.level,
	})
	c.engine = e
	c.phase = PhasePlaying
	c.cause = core.CauseNone

	c.logger.Debug("round started", "mode", c.opts.Mode, "level", c.Level(), "seed", seed)
	return nil
}

// Step advances the running engine by one tick and handles its end.
// Outside PhasePlaying it only reports the current state.
func (c *Controller) Step(in core.InputFrame) core.StepResult {
	if c.phase != PhasePlaying {
		return core.StepResult{State: c.engine.State()}
	}

	res := c.engine.Step(in)
	if res.State.GameOver {
		c.finish(res.State)
	}
	return res
}

// finish reacts to an engine reaching a terminal state.
func (c *Controller) finish(st core.GameState) {
	c.cause = st.Cause

	if st.Cause == core.CauseLevelCleared {
		c.cumulative += st.Score
		c.cleared = c.level
		c.logger.Info("level cleared", "level", c.level, "delta", st.Score, "total", c.cumulative)

		if c.level < c.levels {
			c.advance()
			return
		}

		c.final = c.cumulative
		c.persist()
		c.phase = PhaseVictory
		return
	}

	c.final = st.Score
	if c.opts.Mode == ModeLevel {
		c.final = c.cumulative + st.Score
	}
	c.logger.Info("game over", "mode", c.opts.Mode, "cause", st.Cause, "score", c.final)
	c.persist()
	c.phase = PhaseGameOver
}

// advance applies OutcomeNext.
func (c *Controller) advance() {
	c.level++
	if err := c.begin(); err != nil {
		// Modes are registered at init; a failure here is a programming error
		c.logger.Error("cannot start next level", "error", err)
		c.phase = PhaseDone
	}
}

// persist saves the final score. Failures are logged and kept for display.
func (c *Controller) persist() {
	c.saveErr = nil
	if c.opts.Saver == nil {
		return
	}
	if err := c.opts.Saver.SaveScore(c.opts.Mode, c.final); err != nil {
		c.saveErr = err
		c.logger.Warn("could not save score", "mode", c.opts.Mode, "score", c.final, "error", err)
	}
}

// Resolve applies the player's choice after a game over or victory.
func (c *Controller) Resolve(o Outcome) error {
	if c.phase == PhasePlaying {
		return ErrNotFinished
	}

	switch o {
	case OutcomeRestart:
		c.level = 1
		c.cumulative = 0
		c.final = 0
		c.cleared = 0
		return c.begin()
	case OutcomeMenu:
		c.phase = PhaseDone
		return nil
	default:
		return fmt.Errorf("round: outcome %s is not a player choice", o)
	}
}

// Quit abandons the session. A running round is not scored.
func (c *Controller) Quit() {
	c.phase = PhaseDone
}

// Phase returns the lifecycle phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Mode returns the mode ID.
func (c *Controller) Mode() string {
	return c.opts.Mode
}

// Title returns the mode's display name.
func (c *Controller) Title() string {
	return c.engine.Title()
}

// Level returns the current 1-based level, or 0 outside level mode.
func (c *Controller) Level() int {
	if c.opts.Mode != ModeLevel {
		return 0
	}
	return c.level
}

// Cumulative returns the sum of cleared level deltas.
func (c *Controller) Cumulative() int {
	return c.cumulative
}

// FinalScore returns the score persisted by the last terminal state.
func (c *Controller) FinalScore() int {
	return c.final
}

// Cause returns why the last round ended.
func (c *Controller) Cause() core.Cause {
	return c.cause
}

// TakeCleared returns the level cleared by the last advance once, then 0.
func (c *Controller) TakeCleared() int {
	n := c.cleared
	c.cleared = 0
	return n
}

// SaveErr returns the error from the last persistence attempt, if any.
func (c *Controller) SaveErr() error {
	return c.saveErr
}

// TickRate returns the ticks per second for the running engine.
func (c *Controller) TickRate() int {
	return max(c.engine.State().TickRate, 1)
}

// Frame returns the engine's frame with the running total applied.
func (c *Controller) Frame() core.Frame {
	f := c.engine.Frame()
	switch {
	case c.phase == PhaseVictory:
		f.Score = c.final
	case c.opts.Mode == ModeLevel:
		f.Score += c.cumulative
	}
	return f
}
