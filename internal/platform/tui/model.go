package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/render"
	"github.com/vovakirdan/tui-snake/internal/round"
)

// bannerTicks is how long the "level cleared" banner stays up.
const bannerTicks = 15

// Outcome screen buttons.
const (
	buttonRestart = iota
	buttonMenu
)

// RoundModel drives a round.Controller from the Bubble Tea loop: it buffers
// key presses into one input frame per tick, renders frames and shows the
// game over screen.
type RoundModel struct {
	ctrl       *round.Controller
	screen     *core.Screen
	input      core.InputFrame
	keyMapper  *KeyMapper
	paused     bool
	button     int
	banner     int // Remaining banner ticks
	bannerText string
	quitting   bool
	done       bool // Player went back to the menu
	standalone bool // Quit the program instead of returning to a menu
	loop       uint64
}

// NewRoundModel creates a model for a running controller.
func NewRoundModel(ctrl *round.Controller, width, height int) RoundModel {
	return RoundModel{
		ctrl:      ctrl,
		screen:    core.NewScreen(width, height),
		input:     core.NewInputFrame(),
		keyMapper: NewKeyMapper(),
		loop:      newLoopID(),
	}
}

// Init starts the tick loop.
func (m RoundModel) Init() tea.Cmd {
	return tickCmd(m.ctrl.TickRate(), m.loop)
}

// Update handles messages and updates the model state.
func (m RoundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m RoundModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.ctrl.Quit()
		m.quitting = true
		return m, tea.Quit
	}

	if m.ctrl.Phase() == round.PhasePlaying {
		return m.handlePlayingKey(action)
	}
	return m.handleOutcomeKey(action)
}

func (m RoundModel) handlePlayingKey(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionPause:
		m.paused = !m.paused
	case core.ActionBack:
		// Leaving mid-round only works from the pause screen
		if m.paused {
			return m.leave()
		}
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		if !m.paused {
			m.input.Set(action)
		}
	}
	return m, nil
}

func (m RoundModel) handleOutcomeKey(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionLeft, core.ActionUp:
		m.button = buttonRestart
	case core.ActionRight, core.ActionDown:
		m.button = buttonMenu
	case core.ActionRestart:
		return m.resolve(round.OutcomeRestart)
	case core.ActionBack:
		return m.resolve(round.OutcomeMenu)
	case core.ActionConfirm:
		if m.button == buttonRestart {
			return m.resolve(round.OutcomeRestart)
		}
		return m.resolve(round.OutcomeMenu)
	}
	return m, nil
}

// resolve applies the outcome screen choice.
func (m RoundModel) resolve(o round.Outcome) (tea.Model, tea.Cmd) {
	if err := m.ctrl.Resolve(o); err != nil {
		return m, nil
	}
	if o == round.OutcomeMenu {
		return m.leave()
	}
	m.button = buttonRestart
	m.paused = false
	m.banner = 0
	m.input.Clear()
	return m, nil
}

// leave ends the round view.
func (m RoundModel) leave() (tea.Model, tea.Cmd) {
	if m.ctrl.Phase() != round.PhaseDone {
		m.ctrl.Quit()
	}
	m.done = true
	if m.standalone {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m RoundModel) handleTick() (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	if m.banner > 0 {
		m.banner--
	}

	// Hold the simulation while paused or while the board cannot be shown
	_, fits := render.NewLayout(m.ctrl.Frame().Board, m.screen.Width(), m.screen.Height())
	if m.ctrl.Phase() == round.PhasePlaying && !m.paused && fits {
		m.ctrl.Step(m.input)
		if lvl := m.ctrl.TakeCleared(); lvl > 0 && m.ctrl.Phase() == round.PhasePlaying {
			m.banner = bannerTicks
			m.bannerText = fmt.Sprintf("Level %d cleared!", lvl)
		}
	}

	// Clear input for next frame
	m.input.Clear()

	// Continue ticking
	return m, tickCmd(m.ctrl.TickRate(), m.loop)
}

// View renders the current state to a string for display.
func (m RoundModel) View() string {
	if m.quitting || m.done {
		return ""
	}

	f := m.ctrl.Frame()
	render.Draw(m.screen, f)
	if _, fits := render.NewLayout(f.Board, m.screen.Width(), m.screen.Height()); !fits {
		return RenderScreen(m.screen)
	}

	switch m.ctrl.Phase() {
	case round.PhaseGameOver:
		m.drawOutcome("GAME OVER", fmt.Sprintf("Cause: %s", m.ctrl.Cause()))
	case round.PhaseVictory:
		m.drawOutcome("YOU WIN!", "All levels cleared")
	default:
		switch {
		case m.paused:
			render.Overlay(m.screen, "Paused", "P to resume  |  Esc for menu")
		case m.banner > 0:
			render.OverlayColored(m.screen, core.ColorGold, m.bannerText, fmt.Sprintf("Level %d", m.ctrl.Level()))
		}
	}

	return RenderScreen(m.screen)
}

// drawOutcome draws the end-of-round box with RESTART and MENU buttons.
func (m RoundModel) drawOutcome(title, detail string) {
	restart, menu := "  RESTART  ", "  MENU  "
	if m.button == buttonRestart {
		restart = "[ RESTART ]"
	} else {
		menu = "[ MENU ]"
	}

	lines := []string{
		title,
		detail,
		fmt.Sprintf("Score: %d", m.ctrl.FinalScore()),
	}
	if m.ctrl.SaveErr() != nil {
		lines = append(lines, "Score could not be saved")
	}
	lines = append(lines, restart+"   "+menu)

	border := core.ColorDanger
	if m.ctrl.Phase() == round.PhaseVictory {
		border = core.ColorGold
	}
	render.OverlayColored(m.screen, border, lines...)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m RoundModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if the user chose to return to the menu.
func (m RoundModel) WantsBack() bool {
	return m.done && !m.quitting
}

// Controller returns the driven controller.
func (m RoundModel) Controller() *round.Controller {
	return m.ctrl
}

// RunRound plays one mode directly, without the main menu.
// Choosing MENU on the outcome screen exits the program.
func RunRound(ctrl *round.Controller, width, height int) error {
	model := NewRoundModel(ctrl, width, height)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
