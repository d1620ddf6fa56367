package core

import "testing"

func TestBoardContains(t *testing.T) {
	b := Board{Width: 800, Height: 600, Block: 20}

	tests := []struct {
		name     string
		c        Cell
		expected bool
	}{
		{"origin", Cell{0, 0}, true},
		{"last cell", Cell{780, 580}, true},
		{"right edge (exclusive)", Cell{800, 100}, false},
		{"bottom edge (exclusive)", Cell{100, 600}, false},
		{"negative x", Cell{-20, 100}, false},
		{"negative y", Cell{100, -20}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Contains(tc.c); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.c, got, tc.expected)
			}
		})
	}
}

func TestBoardGrid(t *testing.T) {
	b := Board{Width: 800, Height: 600, Block: 20}

	if b.Cols() != 40 || b.Rows() != 30 {
		t.Errorf("grid = %dx%d, expected 40x30", b.Cols(), b.Rows())
	}
	if b.Capacity() != 1200 {
		t.Errorf("Capacity() = %d, expected 1200", b.Capacity())
	}

	c := b.CellAt(5, 7)
	if c != (Cell{100, 140}) {
		t.Errorf("CellAt(5, 7) = %v, expected (100,140)", c)
	}
	col, row := b.GridPos(c)
	if col != 5 || row != 7 {
		t.Errorf("GridPos(%v) = (%d, %d), expected (5, 7)", c, col, row)
	}
	if !b.Aligned(c) {
		t.Errorf("%v should be aligned", c)
	}
	if b.Aligned(Cell{105, 140}) {
		t.Error("(105,140) should not be aligned")
	}
}

func TestBoardZeroBlock(t *testing.T) {
	b := Board{Width: 100, Height: 100}
	if b.Cols() != 0 || b.Rows() != 0 || b.Capacity() != 0 {
		t.Error("a board without a block size should have no cells")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 || Abs(-5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned a wrong value")
	}
}

func TestDirectionStep(t *testing.T) {
	start := Cell{100, 100}
	tests := []struct {
		dir      Direction
		expected Cell
	}{
		{DirUp, Cell{100, 80}},
		{DirDown, Cell{100, 120}},
		{DirLeft, Cell{80, 100}},
		{DirRight, Cell{120, 100}},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := tc.dir.Step(start, 20); got != tc.expected {
				t.Errorf("Step = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := [][2]Direction{{DirUp, DirDown}, {DirLeft, DirRight}}
	for _, p := range pairs {
		if !p[0].IsOpposite(p[1]) || !p[1].IsOpposite(p[0]) {
			t.Errorf("%s and %s should be opposite", p[0], p[1])
		}
	}
	if DirUp.IsOpposite(DirLeft) {
		t.Error("up and left are not opposite")
	}
	if DirUp.IsOpposite(DirUp) {
		t.Error("a direction is not its own opposite")
	}
}

func TestTurn(t *testing.T) {
	tests := []struct {
		name     string
		current  Direction
		turns    []Direction
		expected Direction
	}{
		{"no input", DirRight, nil, DirRight},
		{"reversal rejected", DirRight, []Direction{DirLeft}, DirRight},
		{"valid turn", DirRight, []Direction{DirUp}, DirUp},
		{"last valid wins", DirRight, []Direction{DirUp, DirDown}, DirDown},
		{"trailing reversal skipped", DirRight, []Direction{DirUp, DirLeft}, DirUp},
		{"same direction", DirUp, []Direction{DirUp}, DirUp},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Turn(tc.current, tc.turns); got != tc.expected {
				t.Errorf("Turn(%s, %v) = %s, expected %s", tc.current, tc.turns, got, tc.expected)
			}
		})
	}
}
