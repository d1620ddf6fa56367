package core

import "time"

// Clock reports elapsed monotonic time. Engines use it for wall-clock
// timers that must not depend on tick rate.
type Clock interface {
	Now() time.Duration
}

// SystemClock measures time since its creation using the monotonic clock.
type SystemClock struct {
	start time.Time
}

// NewSystemClock returns a clock anchored at the current instant.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now returns the time elapsed since the clock was created.
func (c *SystemClock) Now() time.Duration {
	return time.Since(c.start)
}

// ManualClock is a Clock advanced explicitly. Used by tests and replays.
type ManualClock struct {
	T time.Duration
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Duration {
	return c.T
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.T += d
}
