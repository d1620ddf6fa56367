package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
	Clock   Clock // Monotonic time source for timed effects; nil means system clock
	Level   int   // 1-based stage for staged modes; 0 means the first
}

// ClockOrSystem returns the configured clock, or a fresh system clock.
func (c RuntimeConfig) ClockOrSystem() Clock {
	if c.Clock != nil {
		return c.Clock
	}
	return NewSystemClock()
}

// Cause identifies why a round ended.
type Cause int

const (
	CauseNone         Cause = iota
	CauseWall               // Head left the board
	CauseSelf               // Head ran into the body
	CauseBomb               // Head touched a bomb
	CauseObstacle           // Head hit a static obstacle
	CauseLevelCleared       // Apple quota reached
)

// String returns a short description of the cause.
func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseBomb:
		return "bomb"
	case CauseObstacle:
		return "obstacle"
	case CauseLevelCleared:
		return "level cleared"
	default:
		return "unknown"
	}
}

// Fatal reports whether the cause is a game over (as opposed to a cleared level).
func (c Cause) Fatal() bool {
	return c != CauseNone && c != CauseLevelCleared
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int   // Score earned in this round
	GameOver bool  // Whether the round has ended
	Cause    Cause // Why the round ended; CauseNone while playing
	TickRate int   // Ticks per second the platform should run at
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
