package styles_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/uibridge/internal/cli/styles"
	"github.com/bnema/uibridge/internal/ui/surface"
)

func TestTheme_StateBox(t *testing.T) {
	theme := styles.NewTheme()

	assert.Empty(t, theme.StateBox(nil))

	out := theme.StateBox([]surface.Entry{{Key: "count", Value: "3"}, {Key: "saved", Value: "1"}})
	assert.Contains(t, out, "count")
	assert.Contains(t, out, "3")
	assert.Contains(t, out, "saved")
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestConfirm_DefaultsToNo(t *testing.T) {
	m := styles.NewConfirm(styles.NewTheme(), "Delete?")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.Done())
	assert.False(t, m.Result())
}

func TestConfirm_YesThenEnter(t *testing.T) {
	m := styles.NewConfirm(styles.NewTheme(), "Delete?").WithDetail("4 events")
	assert.Contains(t, m.View(), "4 events")

	m, _ = m.Update(runes("y"))
	assert.False(t, m.Done())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.Result())
}

func TestConfirm_EscapeCancels(t *testing.T) {
	m := styles.NewConfirm(styles.NewTheme(), "Delete?")
	m, _ = m.Update(runes("y"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, m.Done())
	assert.False(t, m.Result())

	m, _ = m.Update(runes("y"))
	assert.False(t, m.Result())
}
