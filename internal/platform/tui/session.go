package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/round"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// SessionOptions configures a menu-driven session.
type SessionOptions struct {
	Config config.SnakeConfig
	Store  storage.Store // nil plays without high scores
	Logger *log.Logger
	Seed   int64      // 0 seeds rounds from the wall clock
	Clock  core.Clock // nil uses the system clock
	Width  int
	Height int
	User   string // SSH user name, empty for local play
}

// sessionView is the screen a session is showing.
type sessionView int

const (
	viewMenu sessionView = iota
	viewRound
	viewScores
)

// SessionModel manages the full session flow: menu -> round -> menu and
// menu -> high scores -> menu. It is the top-level model for both local
// and SSH play.
type SessionModel struct {
	opts       SessionOptions
	logger     *log.Logger
	view       sessionView
	menu       MenuModel
	round      RoundModel
	scoreboard ScoreboardModel
	width      int
	height     int
	status     string // Last error shown under the menu
	quitting   bool
}

// NewSessionModel creates a new session model starting at the main menu.
func NewSessionModel(opts SessionOptions) SessionModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.User != "" {
		logger = logger.With("user", opts.User)
	}

	return SessionModel{
		opts:   opts,
		logger: logger,
		view:   viewMenu,
		menu:   NewMenuModel(opts.Config.Level.Levels, opts.Width, opts.Height),
		width:  opts.Width,
		height: opts.Height,
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.view {
	case viewRound:
		return m.updateRound(msg)
	case viewScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	sel := m.menu.Selected()
	if sel == nil {
		return m, cmd
	}

	switch sel.Choice {
	case ChoiceExit:
		m.quitting = true
		return m, tea.Quit

	case ChoiceScores:
		m.scoreboard = NewScoreboardModel(m.opts.Store, m.width, m.height)
		m.view = viewScores
		return m, m.scoreboard.Init()

	case ChoicePlay:
		return m.startRound(sel.Mode, sel.Level)
	}

	return m, cmd
}

// startRound creates a controller for the chosen mode and switches to it.
func (m SessionModel) startRound(mode string, level int) (tea.Model, tea.Cmd) {
	opts := round.Options{
		Mode:       mode,
		Config:     m.opts.Config,
		StartLevel: level,
		Seed:       m.opts.Seed,
		Clock:      m.opts.Clock,
		Logger:     m.logger,
	}
	if m.opts.Store != nil {
		opts.Saver = m.opts.Store
	}

	ctrl, err := round.New(opts)
	if err != nil {
		m.logger.Error("could not start round", "mode", mode, "error", err)
		m.status = "Could not start " + mode + " mode"
		m.menu = NewMenuModel(m.opts.Config.Level.Levels, m.width, m.height)
		return m, nil
	}

	m.logger.Info("round started", "mode", mode, "level", ctrl.Level())
	m.status = ""
	m.round = NewRoundModel(ctrl, m.width, m.height)
	m.view = viewRound
	return m, m.round.Init()
}

// updateRound handles updates while a round is running.
func (m SessionModel) updateRound(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.round.Update(msg)
	if roundModel, ok := newModel.(RoundModel); ok {
		m.round = roundModel
	}

	if m.round.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.round.WantsBack() {
		ctrl := m.round.Controller()
		m.logger.Info("round ended", "mode", ctrl.Mode(), "score", ctrl.FinalScore())
		m.backToMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateScores handles updates on the high score screen.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scoreboard.IsGoingBack() {
		m.backToMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// backToMenu resets the menu state.
func (m *SessionModel) backToMenu() {
	m.view = viewMenu
	m.menu = NewMenuModel(m.opts.Config.Level.Levels, m.width, m.height)
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewRound:
		return m.round.View()
	case viewScores:
		return m.scoreboard.View()
	}

	v := m.menu.View()
	if m.status != "" {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		v += "\n" + centerText(errStyle.Render(m.status), m.width)
	}
	return v
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
