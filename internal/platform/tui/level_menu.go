package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuKeyMap defines the key bindings for the level picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "w", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "s", "j")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

var menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

// LevelMenuModel lets users choose the level a game starts at.
type LevelMenuModel struct {
	names    []string
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	selected int // 1-based, 0 while choosing
	quitting bool
}

// NewLevelMenuModel creates a picker over the given level names.
func NewLevelMenuModel(names []string, width, height int) LevelMenuModel {
	return LevelMenuModel{
		names:  names,
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
	}
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.names)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			if len(m.names) > 0 {
				m.selected = m.cursor + 1
				return m, tea.Quit
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the level list.
func (m LevelMenuModel) View() string {
	if m.quitting || m.selected > 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("PRESENCE OF PRESENTS"), m.width, len("PRESENCE OF PRESENTS")))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select starting level:", m.width, 0))
	b.WriteString("\n\n")

	for i, name := range m.names {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%d. %s", cursor, i+1, name), m.width, 0))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Play  |  Q: Quit", m.width, 0))

	return b.String()
}

// Selected returns the chosen 1-based level, or 0 if none was chosen.
func (m LevelMenuModel) Selected() int {
	return m.selected
}

// centerText pads text to sit in the middle of width columns. visible is the
// printed length when text carries escape codes; 0 means len(text).
func centerText(text string, width, visible int) string {
	if visible == 0 {
		visible = len([]rune(text))
	}
	if visible >= width {
		return text
	}
	padding := (width - visible) / 2
	return strings.Repeat(" ", padding) + text
}

// RunLevelSelector shows the level picker and returns the chosen 1-based
// level, or 0 when the user quit.
func RunLevelSelector(names []string, width, height int) (int, error) {
	p := tea.NewProgram(
		NewLevelMenuModel(names, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, err
	}

	m, ok := finalModel.(LevelMenuModel)
	if !ok {
		return 0, nil
	}
	return m.Selected(), nil
}
