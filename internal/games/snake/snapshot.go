package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snapshot captures the observable round state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Score    int
	Apples   int
	SnakeLen int
	Head     core.Cell
	Dir      core.Direction
	Food     core.Cell
	Bomb     *core.Cell
	Magnet   *core.Cell
	Scissor  *core.Cell
	TickRate int
	GameOver bool
	Cause    core.Cause
}

// SnapshotOf builds a snapshot from a frame.
func SnapshotOf(f core.Frame) Snapshot {
	s := Snapshot{
		Tick:     f.Tick,
		Score:    f.Score,
		Apples:   f.Apples,
		SnakeLen: f.Length(),
		Dir:      f.Dir,
		Bomb:     f.Bomb,
		Magnet:   f.Magnet,
		Scissor:  f.Scissor,
		TickRate: f.TickRate,
		GameOver: f.GameOver,
		Cause:    f.Cause,
	}
	if head, ok := f.Head(); ok {
		s.Head = head
	}
	if f.Food != nil {
		s.Food = *f.Food
	}
	return s
}

// Equal compares two snapshots, dereferencing optional items.
func (s Snapshot) Equal(o Snapshot) bool {
	return s.Tick == o.Tick &&
		s.Score == o.Score &&
		s.Apples == o.Apples &&
		s.SnakeLen == o.SnakeLen &&
		s.Head == o.Head &&
		s.Dir == o.Dir &&
		s.Food == o.Food &&
		sameCell(s.Bomb, o.Bomb) &&
		sameCell(s.Magnet, o.Magnet) &&
		sameCell(s.Scissor, o.Scissor) &&
		s.TickRate == o.TickRate &&
		s.GameOver == o.GameOver &&
		s.Cause == o.Cause
}

func sameCell(a, b *core.Cell) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
