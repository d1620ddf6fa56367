package registry

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

type fakeEngine struct {
	id   string
	cfg  config.SnakeConfig
	seed int64
}

func (f *fakeEngine) ID() string                           { return f.id }
func (f *fakeEngine) Title() string                        { return "Fake " + f.id }
func (f *fakeEngine) Reset(rt core.RuntimeConfig)          { f.seed = rt.Seed }
func (f *fakeEngine) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (f *fakeEngine) Render(*core.Screen)                  {}
func (f *fakeEngine) State() core.GameState                { return core.GameState{} }
func (f *fakeEngine) Frame() core.Frame                    { return core.Frame{Mode: f.id} }

func fakeFactory(id string) Factory {
	return func(cfg config.SnakeConfig) Engine {
		return &fakeEngine{id: id, cfg: cfg}
	}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-fake", fakeFactory("zz-fake"))

	if !Exists("zz-fake") {
		t.Fatal("registered mode should exist")
	}

	cfg := config.DefaultSnakeConfig()
	cfg.Scoring.PerApple = 7
	e, err := Create("zz-fake", cfg)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if got := e.(*fakeEngine).cfg.Scoring.PerApple; got != 7 {
		t.Errorf("factory got PerApple %d, expected 7", got)
	}

	found := false
	for _, m := range List() {
		if m.ID == "zz-fake" {
			found = true
			if m.Title != "Fake zz-fake" {
				t.Errorf("Title = %q, expected %q", m.Title, "Fake zz-fake")
			}
		}
	}
	if !found {
		t.Error("List() should include the registered mode")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-mode", config.DefaultSnakeConfig()); err == nil {
		t.Error("expected error for unknown mode")
	}
	if Exists("no-such-mode") {
		t.Error("unknown mode should not exist")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", fakeFactory("zz-dup"))

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz-dup", fakeFactory("zz-dup"))
}

func TestListSorted(t *testing.T) {
	Register("zz-b", fakeFactory("zz-b"))
	Register("zz-a", fakeFactory("zz-a"))

	modes := List()
	for i := 1; i < len(modes); i++ {
		if modes[i-1].ID >= modes[i].ID {
			t.Fatalf("List() not sorted: %q before %q", modes[i-1].ID, modes[i].ID)
		}
	}
}
