package styles

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmModel is a yes/no dialog for destructive actions. It starts on "No".
type ConfirmModel struct {
	message string
	detail  string
	yes     bool
	done    bool
	keys    confirmKeyMap
	theme   *Theme
}

type confirmKeyMap struct {
	Yes    key.Binding
	No     key.Binding
	Toggle key.Binding
	Accept key.Binding
	Cancel key.Binding
}

// NewConfirm creates a confirmation dialog asking message.
func NewConfirm(theme *Theme, message string) ConfirmModel {
	return ConfirmModel{
		message: message,
		theme:   theme,
		keys: confirmKeyMap{
			Yes:    key.NewBinding(key.WithKeys("y", "right", "l")),
			No:     key.NewBinding(key.WithKeys("n", "left", "h")),
			Toggle: key.NewBinding(key.WithKeys("tab")),
			Accept: key.NewBinding(key.WithKeys("enter")),
			Cancel: key.NewBinding(key.WithKeys("esc", "q")),
		},
	}
}

// WithDetail adds a muted line under the question.
func (m ConfirmModel) WithDetail(detail string) ConfirmModel {
	m.detail = detail
	return m
}

// Update handles key presses. The dialog never emits commands.
func (m ConfirmModel) Update(msg tea.Msg) (ConfirmModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.done {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Yes):
		m.yes = true
	case key.Matches(keyMsg, m.keys.No):
		m.yes = false
	case key.Matches(keyMsg, m.keys.Toggle):
		m.yes = !m.yes
	case key.Matches(keyMsg, m.keys.Accept):
		m.done = true
	case key.Matches(keyMsg, m.keys.Cancel):
		m.yes = false
		m.done = true
	}
	return m, nil
}

// View renders the dialog in a box.
func (m ConfirmModel) View() string {
	t := m.theme

	yesStyle, noStyle := t.BadgeMuted, t.Badge
	if m.yes {
		yesStyle, noStyle = t.Badge, t.BadgeMuted
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, noStyle.Render(" No "), "  ", yesStyle.Render(" Yes "))

	lines := []string{t.Title.Render(m.message)}
	if m.detail != "" {
		lines = append(lines, t.Subtle.Render(m.detail))
	}
	lines = append(lines, "", buttons, "", t.Subtle.Render("y/n to select, enter to confirm, esc to cancel"))

	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// Done reports whether the user answered or canceled.
func (m ConfirmModel) Done() bool {
	return m.done
}

// Result reports whether the user accepted "Yes".
func (m ConfirmModel) Result() bool {
	return m.done && m.yes
}
