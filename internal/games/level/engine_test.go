package level

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

func newTestEngine(t *testing.T, level int) *Engine {
	t.Helper()
	e := New(config.DefaultSnakeConfig())
	e.Reset(core.RuntimeConfig{Seed: 7, Level: level})
	return e
}

func TestRegistered(t *testing.T) {
	e, err := registry.Create(ID, config.DefaultSnakeConfig())
	if err != nil {
		t.Fatal(err)
	}
	if e.ID() != "level" || e.Title() != "Level Mode" {
		t.Errorf("ID/Title = %q/%q", e.ID(), e.Title())
	}
}

func TestLevelTable(t *testing.T) {
	tests := []struct {
		level     int
		quota     int
		tickRate  int
		obstacles int
	}{
		{1, 5, 10, 0},
		{2, 6, 14, 12},
		{3, 6, 16, 15},
		{4, 6, 20, 15},
	}

	for _, tc := range tests {
		e := newTestEngine(t, tc.level)
		f := e.Frame()

		if f.Level != tc.level || f.Levels != 4 {
			t.Errorf("level %d: frame reports %d/%d", tc.level, f.Level, f.Levels)
		}
		if f.Quota != tc.quota {
			t.Errorf("level %d: quota = %d, expected %d", tc.level, f.Quota, tc.quota)
		}
		if st := e.State(); st.TickRate != tc.tickRate {
			t.Errorf("level %d: tick rate = %d, expected %d", tc.level, st.TickRate, tc.tickRate)
		}
		if len(f.Obstacles) != tc.obstacles {
			t.Errorf("level %d: %d obstacles, expected %d", tc.level, len(f.Obstacles), tc.obstacles)
		}
	}
}

func TestLevelClamped(t *testing.T) {
	if f := newTestEngine(t, 0).Frame(); f.Level != 1 {
		t.Errorf("level 0 should start level 1, got %d", f.Level)
	}
	if f := newTestEngine(t, 9).Frame(); f.Level != 4 {
		t.Errorf("level 9 should clamp to 4, got %d", f.Level)
	}
}

func TestObstaclePlacement(t *testing.T) {
	for seed := range int64(30) {
		e := New(config.DefaultSnakeConfig())
		e.Reset(core.RuntimeConfig{Seed: seed, Level: 4})

		f := e.Frame()
		seen := make(map[core.Cell]bool)
		for _, o := range f.Obstacles {
			if !e.board.Contains(o) || !e.board.Aligned(o) {
				t.Fatalf("seed %d: obstacle %v off the grid", seed, o)
			}
			if seen[o] {
				t.Fatalf("seed %d: duplicate obstacle %v", seed, o)
			}
			seen[o] = true
			if e.snake.Contains(o) {
				t.Fatalf("seed %d: obstacle %v on the snake", seed, o)
			}
			for i := 1; i <= safeLane; i++ {
				if o == (core.Cell{X: 100 + i*20, Y: 100}) {
					t.Fatalf("seed %d: obstacle %v blocks the start lane", seed, o)
				}
			}
		}
		if seen[e.food] {
			t.Fatalf("seed %d: food on an obstacle", seed)
		}
	}
}

func TestFoodAvoidsObstacles(t *testing.T) {
	e := newTestEngine(t, 3)

	for range 500 {
		e.respawnFood()
		if e.obstacles[e.food] {
			t.Fatalf("food spawned on obstacle %v", e.food)
		}
		if e.snake.Contains(e.food) {
			t.Fatalf("food spawned on snake %v", e.food)
		}
	}
}

func TestQuotaClearsLevel(t *testing.T) {
	e := newTestEngine(t, 1)

	for i := 1; i <= 5; i++ {
		e.food = e.snake.Next(e.board.Block)
		st := e.Step(core.NewInputFrame()).State

		if i < 5 {
			if st.GameOver {
				t.Fatalf("level ended after %d apples", i)
			}
			continue
		}
		if !st.GameOver || st.Cause != core.CauseLevelCleared {
			t.Fatalf("State() = %+v, expected level cleared", st)
		}
		if st.Score != 50 {
			t.Errorf("delta = %d, expected 50", st.Score)
		}
	}

	// Nothing else happens once the quota is met
	if e.food != e.snake.Head() {
		t.Error("food should not respawn after the quota is reached")
	}
	before := e.Snapshot()
	e.Step(core.NewInputFrame())
	if !before.Equal(e.Snapshot()) {
		t.Error("Step after clearing must not change the level")
	}
}

func TestObstacleDeath(t *testing.T) {
	e := newTestEngine(t, 1)
	e.obstacles[core.Cell{X: 120, Y: 100}] = true

	st := e.Step(core.NewInputFrame()).State
	if !st.GameOver || st.Cause != core.CauseObstacle {
		t.Errorf("State() = %+v, expected obstacle death", st)
	}
	if !st.Cause.Fatal() {
		t.Error("obstacle death should be fatal")
	}
}

func TestObstacleCheckedBeforeSelf(t *testing.T) {
	e := newTestEngine(t, 1)

	s := snake.New(core.Cell{X: 80, Y: 120}, core.DirLeft)
	s.Push(core.Cell{X: 100, Y: 120})
	s.Push(core.Cell{X: 120, Y: 120})
	s.Push(core.Cell{X: 120, Y: 100})
	s.Push(core.Cell{X: 100, Y: 100})
	e.snake = s
	e.obstacles[core.Cell{X: 100, Y: 120}] = true

	in := core.NewInputFrame()
	in.Set(core.ActionDown)
	if st := e.Step(in).State; st.Cause != core.CauseObstacle {
		t.Errorf("cause = %s, expected obstacle", st.Cause)
	}
}

func TestWallDeath(t *testing.T) {
	e := newTestEngine(t, 1)
	e.food = core.Cell{X: 700, Y: 500}

	in := core.NewInputFrame()
	in.Set(core.ActionUp)
	var st core.GameState
	for range 6 {
		st = e.Step(in).State
	}
	if !st.GameOver || st.Cause != core.CauseWall {
		t.Errorf("State() = %+v, expected wall death", st)
	}
	if st.Score != 0 {
		t.Errorf("delta = %d, expected 0", st.Score)
	}
}

func TestDeterminism(t *testing.T) {
	e1 := New(config.DefaultSnakeConfig())
	e2 := New(config.DefaultSnakeConfig())
	rt := core.RuntimeConfig{Seed: 99, Level: 2}
	e1.Reset(rt)
	e2.Reset(rt)

	f1, f2 := e1.Frame(), e2.Frame()
	for i := range f1.Obstacles {
		if f1.Obstacles[i] != f2.Obstacles[i] {
			t.Fatalf("obstacle %d differs: %v vs %v", i, f1.Obstacles[i], f2.Obstacles[i])
		}
	}

	for i := range 40 {
		in := core.NewInputFrame()
		if i%9 == 4 {
			in.Set(core.ActionDown)
		} else if i%9 == 8 {
			in.Set(core.ActionRight)
		}
		e1.Step(in)
		e2.Step(in)
		if !e1.Snapshot().Equal(e2.Snapshot()) {
			t.Fatalf("tick %d: snapshots differ", i)
		}
	}
}

func TestRender(t *testing.T) {
	e := newTestEngine(t, 2)

	screen := core.NewScreen(100, 40)
	e.Render(screen)
	out := screen.String()

	for _, want := range []string{"Level 2/4", "Apples: 0/6"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
	if !strings.ContainsRune(out, '▒') {
		t.Error("obstacles should be drawn")
	}
}
