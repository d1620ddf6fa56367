package core

// Frame is a read-only snapshot of a round handed to the renderer.
// Optional items are nil when not on the board.
type Frame struct {
	Mode  string
	Board Board
	Tick  uint64

	Snake     []Cell // Head first
	Dir       Direction
	Food      *Cell
	Bomb      *Cell
	Magnet    *Cell
	Scissor   *Cell
	Obstacles []Cell

	MagnetActive bool
	MagnetRadius int

	Score    int // Score shown in the HUD (running total in level mode)
	Level    int // 1-based, 0 outside level mode
	Levels   int // Number of levels, 0 outside level mode
	Apples   int // Apples eaten this round
	Quota    int // Apples needed to clear the level, 0 outside level mode
	TickRate int

	GameOver bool
	Cause    Cause
}

// Head returns the snake's head. ok is false for an empty snake.
func (f Frame) Head() (c Cell, ok bool) {
	if len(f.Snake) == 0 {
		return Cell{}, false
	}
	return f.Snake[0], true
}

// Length returns the snake length.
func (f Frame) Length() int {
	return len(f.Snake)
}

// Optional returns a pointer to a copy of c, or nil when present is false.
func Optional(c Cell, present bool) *Cell {
	if !present {
		return nil
	}
	return &c
}
