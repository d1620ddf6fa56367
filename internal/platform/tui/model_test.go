package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/round"
)

type recordingSaver struct {
	scores []int
}

func (r *recordingSaver) SaveScore(_ string, score int) error {
	r.scores = append(r.scores, score)
	return nil
}

// tinyConfig is a two-cell board: the apple always sits in front of the
// snake, so level mode clears on the first tick and survival dies on the
// second.
func tinyConfig() config.SnakeConfig {
	cfg := config.DefaultSnakeConfig()
	cfg.Board = config.BoardConfig{Width: 40, Height: 20, Block: 20}
	cfg.Survival.Bomb.OneIn = 0
	cfg.Survival.Magnet.OneIn = 0
	cfg.Survival.Scissor.OneIn = 0
	cfg.Level.Levels = []config.LevelSpec{{Name: "Only", Quota: 1, TickRate: 10}}
	return cfg
}

func newTestRound(t *testing.T, mode string) (RoundModel, *recordingSaver) {
	t.Helper()
	saver := &recordingSaver{}
	ctrl, err := round.New(round.Options{
		Mode:   mode,
		Config: tinyConfig(),
		Seed:   1,
		Clock:  &core.ManualClock{},
		Saver:  saver,
	})
	if err != nil {
		t.Fatalf("round.New() failed: %v", err)
	}
	return NewRoundModel(ctrl, 80, 24), saver
}

func update(t *testing.T, m RoundModel, msg tea.Msg) RoundModel {
	t.Helper()
	next, _ := m.Update(msg)
	rm, ok := next.(RoundModel)
	if !ok {
		t.Fatalf("Update returned %T, expected RoundModel", next)
	}
	return rm
}

func tick(t *testing.T, m RoundModel) RoundModel {
	return update(t, m, TickMsg{Loop: m.loop})
}

func TestRoundTickAdvances(t *testing.T) {
	m, _ := newTestRound(t, round.ModeSurvival)

	m = tick(t, m)
	if got := m.Controller().Frame().Tick; got != 1 {
		t.Errorf("Tick = %d after one tick, expected 1", got)
	}
}

func TestRoundIgnoresStaleLoop(t *testing.T) {
	m, _ := newTestRound(t, round.ModeSurvival)

	m = update(t, m, TickMsg{Loop: m.loop + 1000})
	if got := m.Controller().Frame().Tick; got != 0 {
		t.Errorf("Tick = %d after a stale tick, expected 0", got)
	}
}

func TestRoundPause(t *testing.T) {
	m, _ := newTestRound(t, round.ModeSurvival)

	m = update(t, m, runeKey('p'))
	if !m.paused {
		t.Fatal("p should pause")
	}
	m = tick(t, m)
	if got := m.Controller().Frame().Tick; got != 0 {
		t.Errorf("Tick = %d while paused, expected 0", got)
	}
	if !strings.Contains(m.View(), "Paused") {
		t.Error("paused view should show the pause overlay")
	}

	m = update(t, m, runeKey('p'))
	m = tick(t, m)
	if got := m.Controller().Frame().Tick; got != 1 {
		t.Errorf("Tick = %d after resuming, expected 1", got)
	}
}

func TestRoundBackOnlyWhilePaused(t *testing.T) {
	m, _ := newTestRound(t, round.ModeSurvival)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.WantsBack() {
		t.Fatal("esc while playing should be ignored")
	}

	m = update(t, m, runeKey('p'))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.WantsBack() {
		t.Error("esc while paused should leave the round")
	}
	if m.Controller().Phase() != round.PhaseDone {
		t.Errorf("phase = %d, expected done", m.Controller().Phase())
	}
}

func TestRoundQuit(t *testing.T) {
	m, _ := newTestRound(t, round.ModeSurvival)

	next, cmd := m.Update(runeKey('q'))
	rm := next.(RoundModel)
	if !rm.IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return tea.Quit")
	}
	if rm.View() != "" {
		t.Error("quitting view should be empty")
	}
}

func TestRoundGameOverScreen(t *testing.T) {
	m, saver := newTestRound(t, round.ModeSurvival)

	m = tick(t, m) // eats the apple
	m = tick(t, m) // runs into the wall
	if m.Controller().Phase() != round.PhaseGameOver {
		t.Fatalf("phase = %d, expected game over", m.Controller().Phase())
	}
	if len(saver.scores) != 1 || saver.scores[0] != 10 {
		t.Errorf("saved %v, expected [10]", saver.scores)
	}

	view := m.View()
	for _, want := range []string{"GAME OVER", "Score: 10", "[ RESTART ]"} {
		if !strings.Contains(view, want) {
			t.Errorf("game over view missing %q", want)
		}
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if !strings.Contains(m.View(), "[ MENU ]") {
		t.Error("right should select MENU")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.WantsBack() {
		t.Error("enter on MENU should leave the round")
	}
}

func TestRoundRestart(t *testing.T) {
	m, _ := newTestRound(t, round.ModeSurvival)

	m = tick(t, m)
	m = tick(t, m)
	m = update(t, m, runeKey('r'))

	if m.Controller().Phase() != round.PhasePlaying {
		t.Fatalf("phase = %d after restart, expected playing", m.Controller().Phase())
	}
	if f := m.Controller().Frame(); f.Tick != 0 || f.Score != 0 {
		t.Errorf("restarted frame tick=%d score=%d, expected fresh round", f.Tick, f.Score)
	}
	if m.WantsBack() {
		t.Error("restart should stay in the round")
	}
}

func TestRoundVictoryScreen(t *testing.T) {
	m, saver := newTestRound(t, round.ModeLevel)

	m = tick(t, m)
	if m.Controller().Phase() != round.PhaseVictory {
		t.Fatalf("phase = %d, expected victory", m.Controller().Phase())
	}
	if len(saver.scores) != 1 || saver.scores[0] != 10 {
		t.Errorf("saved %v, expected [10]", saver.scores)
	}
	if !strings.Contains(m.View(), "YOU WIN!") {
		t.Error("victory view should say YOU WIN!")
	}
}

func TestRoundTooSmall(t *testing.T) {
	m, _ := newTestRound(t, round.ModeSurvival)
	m = update(t, m, tea.WindowSizeMsg{Width: 3, Height: 2})

	m = tick(t, m)
	if got := m.Controller().Frame().Tick; got != 0 {
		t.Errorf("Tick = %d on a tiny window, expected the round to hold", got)
	}
}
