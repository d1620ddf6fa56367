package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func newTestSession(t *testing.T) SessionModel {
	t.Helper()
	return NewSessionModel(SessionOptions{
		Config: config.DefaultSnakeConfig(),
		Store:  storage.NewJSONStore(filepath.Join(t.TempDir(), "scores.json"), storage.DefaultTopN),
		Seed:   7,
		Clock:  &core.ManualClock{},
		Width:  100,
		Height: 40,
	})
}

func send(t *testing.T, m SessionModel, msgs ...tea.Msg) SessionModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		sm, ok := next.(SessionModel)
		if !ok {
			t.Fatalf("Update returned %T, expected SessionModel", next)
		}
		m = sm
	}
	return m
}

func TestSessionMenuToRoundAndBack(t *testing.T) {
	m := newTestSession(t)

	m = send(t, m, keyDown, keyEnter) // Survival Mode
	if m.view != viewRound {
		t.Fatalf("view = %d, expected round", m.view)
	}
	if m.round.Controller().Mode() != "survival" {
		t.Errorf("mode = %s, expected survival", m.round.Controller().Mode())
	}
	if !strings.Contains(m.View(), "Survival") {
		t.Error("round view should show the survival HUD")
	}

	// Pause, then leave
	m = send(t, m, runeKey('p'), keyEsc)
	if m.view != viewMenu {
		t.Fatalf("view = %d, expected menu after leaving", m.view)
	}
	if m.menu.Selected() != nil {
		t.Error("menu should be reset after a round")
	}
}

func TestSessionLevelSelectStartsAtLevel(t *testing.T) {
	m := newTestSession(t)

	m = send(t, m, keyDown, keyDown, keyEnter, keyDown, keyEnter)
	if m.view != viewRound {
		t.Fatalf("view = %d, expected round", m.view)
	}
	if got := m.round.Controller().Level(); got != 2 {
		t.Errorf("Level() = %d, expected 2", got)
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := newTestSession(t)

	m = send(t, m, keyDown, keyDown, keyDown, keyEnter)
	if m.view != viewScores {
		t.Fatalf("view = %d, expected scores", m.view)
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("scores view should show the title")
	}

	m = send(t, m, keyEsc)
	if m.view != viewMenu {
		t.Errorf("view = %d, expected menu", m.view)
	}
}

func TestSessionExit(t *testing.T) {
	m := send(t, newTestSession(t), keyDown, keyDown, keyDown, keyDown)

	next, cmd := m.Update(keyEnter)
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("Exit should quit the program")
	}
}

func TestSessionResize(t *testing.T) {
	m := newTestSession(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 50}, keyDown, keyEnter)

	if m.width != 120 || m.height != 50 {
		t.Errorf("size = %dx%d, expected 120x50", m.width, m.height)
	}
	if m.round.screen.Width() != 120 {
		t.Errorf("round screen width = %d, expected 120", m.round.screen.Width())
	}
}
