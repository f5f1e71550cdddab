package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/doggo-volley/internal/config"
	"github.com/vovakirdan/doggo-volley/internal/core"
)

// MatchSelection holds the user's match setup choices.
type MatchSelection struct {
	WinScore   int
	Difficulty config.DifficultyPreset
}

// Difficulty presets in menu order.
var difficultyOptions = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

// MatchSetupModel lets users pick the win score and opponent difficulty
// before a match.
type MatchSetupModel struct {
	title     string
	scoreIdx  int
	diffIdx   int
	cursor    int // 0 = win score row, 1 = difficulty row, 2 = start
	width     int
	height    int
	keyMapper *KeyMapper
	selection MatchSelection
	choosing  bool
	quitting  bool
	back      bool
}

// NewMatchSetupModel creates a match setup model with defaults selected.
func NewMatchSetupModel(title string, width, height int) MatchSetupModel {
	return MatchSetupModel{
		title:     title,
		scoreIdx:  1, // Default: first to 5
		diffIdx:   1, // Default: normal
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m MatchSetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MatchSetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m MatchSetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < 2 {
			m.cursor++
		}

	case MenuActionLeft:
		m.cycle(-1)

	case MenuActionRight:
		m.cycle(1)

	case MenuActionSelect:
		if m.cursor == 2 {
			m.choosing = false
			m.selection = MatchSelection{
				WinScore:   config.WinScoreOptions[m.scoreIdx],
				Difficulty: difficultyOptions[m.diffIdx],
			}
			return m, tea.Quit
		}
		m.cursor++

	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// cycle moves the option under the cursor left or right, wrapping around.
func (m *MatchSetupModel) cycle(dir int) {
	switch m.cursor {
	case 0:
		n := len(config.WinScoreOptions)
		m.scoreIdx = (m.scoreIdx + dir + n) % n
	case 1:
		n := len(difficultyOptions)
		m.diffIdx = (m.diffIdx + dir + n) % n
	}
}

// View renders the match setup form.
func (m MatchSetupModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(strings.ToUpper(m.title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Match setup:", m.width))
	b.WriteString("\n\n")

	rows := []string{
		fmt.Sprintf("Play to:    < %d points >", config.WinScoreOptions[m.scoreIdx]),
		fmt.Sprintf("Opponent:   < %s >", difficultyOptions[m.diffIdx]),
		"Start match",
	}

	for i, row := range rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+row, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Left/Right: Change  |  Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m MatchSetupModel) Selected() *MatchSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m MatchSetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m MatchSetupModel) WantsBack() bool {
	return m.back
}

// RunMatchSetup runs the match setup form and returns the selection.
// A nil selection means the user backed out or quit.
func RunMatchSetup(title string, cfg core.RuntimeConfig) (*MatchSelection, core.RuntimeConfig, error) {
	model := NewMatchSetupModel(title, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(MatchSetupModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
