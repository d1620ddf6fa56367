package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/round"
)

// MenuChoice is what the player picked on the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceExit
)

// MenuSelection is a finished main menu interaction.
type MenuSelection struct {
	Choice MenuChoice
	Mode   string // Set for ChoicePlay
	Level  int    // Start level for level mode, 1-based
}

// menuItem is one line of the main menu.
type menuItem struct {
	title  string
	choice MenuChoice
	mode   string
}

var mainMenuItems = []menuItem{
	{title: "Level Mode", choice: ChoicePlay, mode: round.ModeLevel},
	{title: "Survival Mode", choice: ChoicePlay, mode: round.ModeSurvival},
	{title: "Select Level...", choice: ChoicePlay, mode: round.ModeLevel},
	{title: "High Scores", choice: ChoiceScores},
	{title: "Exit", choice: ChoiceExit},
}

// levelSelectIndex is the menu line that opens the level picker.
const levelSelectIndex = 2

// MenuModel is the Bubble Tea model for the main menu and level picker.
type MenuModel struct {
	levels        []config.LevelSpec
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	quitting      bool
	selected      *MenuSelection
}

// NewMenuModel creates a new menu model.
func NewMenuModel(levels []config.LevelSpec, width, height int) MenuModel {
	return MenuModel{
		levels:    levels,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)
	if action == MenuActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inLevelSelect {
		return m.handleLevelSelectKey(action)
	}

	switch action {
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(mainMenuItems)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if m.cursor == levelSelectIndex {
			m.inLevelSelect = true
			m.levelCursor = 0
			return m, nil
		}
		item := mainMenuItems[m.cursor]
		m.selected = &MenuSelection{Choice: item.choice, Mode: item.mode, Level: 1}
	}

	return m, nil
}

func (m MenuModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < len(m.levels)-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.selected = &MenuSelection{
			Choice: ChoicePlay,
			Mode:   round.ModeLevel,
			Level:  m.levelCursor + 1, // 1-indexed
		}
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inLevelSelect {
		return m.viewLevelSelect()
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	// Title
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S N A K E"), m.width))
	b.WriteString("\n\n")

	for i, item := range mainMenuItems {
		line := "  " + item.title
		if i == m.cursor {
			line = activeStyle.Render("> " + item.title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Select  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT LEVEL", m.width))
	b.WriteString("\n\n")

	for i, l := range m.levels {
		cursor := "  "
		if i == m.levelCursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%d. %-14s %d apples  speed %d  obstacles %d",
			cursor, i+1, l.Name, l.Quota, l.TickRate, l.Obstacles)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the finished selection, or nil if still choosing.
func (m MenuModel) Selected() *MenuSelection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
