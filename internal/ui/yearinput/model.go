// Package yearinput is the terminal prompt for the lookup year.
package yearinput

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/bookdate/internal/prompt"
)

const charLimit = 12

var hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

// Model asks for a single year.
type Model struct {
	input    textinput.Model
	value    string
	done     bool
	canceled bool
}

// New creates a focused year input.
func New() Model {
	ti := textinput.New()
	ti.Prompt = prompt.Text
	ti.Placeholder = "YYYY"
	ti.CharLimit = charLimit
	ti.Focus()
	return Model{input: ti}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.value = m.input.Value()
			m.done = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC, tea.KeyCtrlD:
			m.canceled = true
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.done {
		// The final frame stays on screen above the result.
		if m.canceled {
			return prompt.Text + "\n"
		}
		return prompt.Text + m.value + "\n"
	}

	view := m.input.View()
	if !looksLikeYear(m.input.Value()) {
		view += "\n" + hintStyle.Render("Use digits only, e.g. 1949")
	}
	return view
}

// Result returns the submitted text, or prompt.ErrCanceled.
func (m Model) Result() (string, error) {
	if m.canceled || !m.done {
		return "", prompt.ErrCanceled
	}
	return m.value, nil
}

// looksLikeYear accepts partial input: an optional sign followed by digits.
func looksLikeYear(s string) bool {
	for i, r := range s {
		if (r == '-' || r == '+') && i == 0 {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
