package core

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the unit displacement of the direction in block units.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// Step returns the cell one block away from c in direction d.
func (d Direction) Step(c Cell, block int) Cell {
	dx, dy := d.Delta()
	return c.Add(dx*block, dy*block)
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// IsOpposite reports whether d and other point in exactly opposite directions.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Opposite() == other
}

// Turn picks the direction to move in this tick: the most recent turn that
// is not a reversal of current. Returns current if no turn qualifies.
func Turn(current Direction, turns []Direction) Direction {
	for i := len(turns) - 1; i >= 0; i-- {
		if !turns[i].IsOpposite(current) {
			return turns[i]
		}
	}
	return current
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
