package core

import "math/rand"

// Spawner produces random block-aligned cells on a board.
// It holds no state beyond its random source.
type Spawner struct {
	board Board
	rng   *rand.Rand
}

// NewSpawner creates a spawner for board using rng as its random source.
func NewSpawner(board Board, rng *rand.Rand) *Spawner {
	return &Spawner{board: board, rng: rng}
}

// Board returns the board the spawner places cells on.
func (s *Spawner) Board() Board {
	return s.board
}

// Spawn returns a uniformly random cell on the block grid within bounds.
func (s *Spawner) Spawn() Cell {
	cols, rows := s.board.Cols(), s.board.Rows()
	if cols <= 0 || rows <= 0 {
		return Cell{}
	}
	return s.board.CellAt(s.rng.Intn(cols), s.rng.Intn(rows))
}

// Chance returns true with probability 1/oneIn.
// oneIn <= 0 never fires; oneIn == 1 always fires.
func (s *Spawner) Chance(oneIn int) bool {
	if oneIn <= 0 {
		return false
	}
	return s.rng.Intn(oneIn) == 0
}

// SpawnFree returns a random cell for which blocked reports false.
// Rejection sampling is capped at a budget proportional to the board size;
// once exhausted, a free cell is picked uniformly from the remaining ones.
// ok is false only when every cell is blocked.
func (s *Spawner) SpawnFree(blocked func(Cell) bool) (Cell, bool) {
	capacity := s.board.Capacity()
	if capacity == 0 {
		return Cell{}, false
	}

	for range capacity * 2 {
		c := s.Spawn()
		if !blocked(c) {
			return c, true
		}
	}

	// Board is crowded: enumerate what is left
	var free []Cell
	for row := range s.board.Rows() {
		for col := range s.board.Cols() {
			c := s.board.CellAt(col, row)
			if !blocked(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return Cell{}, false
	}
	return free[s.rng.Intn(len(free))], true
}
