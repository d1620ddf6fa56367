// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, screens and SSH sessions.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Loop identifies the tick loop that produced it, so a loop left behind by
// a finished round cannot drive the next one.
type TickMsg struct {
	Time time.Time
	Loop uint64
}

// loopSeq hands out tick loop IDs.
var loopSeq atomic.Uint64

// newLoopID returns a fresh tick loop ID.
func newLoopID() uint64 {
	return loopSeq.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
