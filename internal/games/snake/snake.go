// Package snake holds the snake body shared by every play mode:
// steering, movement and collision queries.
package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snake is an ordered list of cells, head first.
// Cells are unique while the snake is alive.
type Snake struct {
	cells []core.Cell
	dir   core.Direction
}

// New creates a one-cell snake at start moving in dir.
func New(start core.Cell, dir core.Direction) *Snake {
	return &Snake{
		cells: []core.Cell{start},
		dir:   dir,
	}
}

// Head returns the head cell.
func (s *Snake) Head() core.Cell {
	return s.cells[0]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.cells)
}

// Dir returns the current direction of travel.
func (s *Snake) Dir() core.Direction {
	return s.dir
}

// Cells returns a copy of the segments, head first.
func (s *Snake) Cells() []core.Cell {
	out := make([]core.Cell, len(s.cells))
	copy(out, s.cells)
	return out
}

// Contains reports whether any segment occupies c.
func (s *Snake) Contains(c core.Cell) bool {
	for _, seg := range s.cells {
		if seg == c {
			return true
		}
	}
	return false
}

// Steer applies at most one buffered turn. Reversals are ignored.
func (s *Snake) Steer(turns []core.Direction) {
	s.dir = core.Turn(s.dir, turns)
}

// Next returns where the head moves this tick.
func (s *Snake) Next(block int) core.Cell {
	return s.dir.Step(s.Head(), block)
}

// Push inserts a new head. The snake grows until the tail is popped.
func (s *Snake) Push(head core.Cell) {
	s.cells = append(s.cells, core.Cell{})
	copy(s.cells[1:], s.cells)
	s.cells[0] = head
}

// PopTail removes the last segment. The head is never removed.
func (s *Snake) PopTail() {
	if len(s.cells) > 1 {
		s.cells = s.cells[:len(s.cells)-1]
	}
}

// Cut drops the last n segments when the snake is longer than n.
// Shorter snakes are left untouched. Returns whether anything was cut.
func (s *Snake) Cut(n int) bool {
	if n <= 0 || len(s.cells) <= n {
		return false
	}
	s.cells = s.cells[:len(s.cells)-n]
	return true
}
