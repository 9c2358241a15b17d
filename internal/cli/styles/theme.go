// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/uibridge/internal/ui/surface"
)

// Theme holds lipgloss colors and styles shared by the CLI and the
// terminal window.
type Theme struct {
	Background lipgloss.Color
	Panel      lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color

	Title      lipgloss.Style
	Normal     lipgloss.Style
	Subtle     lipgloss.Style
	Highlight  lipgloss.Style
	ErrorStyle lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// StateKey and StateValue render view model state entries.
	StateKey   lipgloss.Style
	StateValue lipgloss.Style
	Box        lipgloss.Style
}

// Palette is the set of base colors a Theme is built from.
type Palette struct {
	Background string
	Panel      string
	Text       string
	Muted      string
	Accent     string
	Border     string
	Error      string
}

// DarkPalette returns the default colors.
func DarkPalette() Palette {
	return Palette{
		Background: "#0a0a0b",
		Panel:      "#2d2d2d",
		Text:       "#ffffff",
		Muted:      "#909090",
		Accent:     "#4ade80",
		Border:     "#333333",
		Error:      "#ef4444",
	}
}

// NewTheme creates the default dark theme.
func NewTheme() *Theme {
	return NewThemeFromPalette(DarkPalette())
}

// NewThemeFromPalette creates a Theme from a Palette.
func NewThemeFromPalette(p Palette) *Theme {
	t := &Theme{
		Background: lipgloss.Color(p.Background),
		Panel:      lipgloss.Color(p.Panel),
		Text:       lipgloss.Color(p.Text),
		Muted:      lipgloss.Color(p.Muted),
		Accent:     lipgloss.Color(p.Accent),
		Border:     lipgloss.Color(p.Border),
		Error:      lipgloss.Color(p.Error),
		Success:    lipgloss.Color(p.Accent),
	}
	t.buildStyles()
	return t
}

func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	t.Normal = lipgloss.NewStyle().Foreground(t.Text)
	t.Subtle = lipgloss.NewStyle().Foreground(t.Muted)
	t.Highlight = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	t.ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)

	t.Badge = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 1)
	t.BadgeMuted = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Panel).
		Padding(0, 1)

	t.HelpKey = lipgloss.NewStyle().Foreground(t.Accent)
	t.HelpDesc = lipgloss.NewStyle().Foreground(t.Muted)

	t.StateKey = lipgloss.NewStyle().Foreground(t.Muted)
	t.StateValue = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)
}

// StateBox renders state entries as an aligned key/value list inside a box.
// It returns an empty string when there is nothing to show.
func (t *Theme) StateBox(entries []surface.Entry) string {
	if len(entries) == 0 {
		return ""
	}
	width := 0
	for _, e := range entries {
		width = max(width, lipgloss.Width(e.Key))
	}
	rows := make([]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, t.StateKey.Width(width).Render(e.Key)+"  "+t.StateValue.Render(e.Value))
	}
	return t.Box.Render(strings.Join(rows, "\n"))
}
