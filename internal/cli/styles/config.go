package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file path.
func (r *ConfigRenderer) RenderConfigInfo(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("\n  %s Config %s\n", iconStyle.Render(IconConfig), r.theme.Subtle.Render(path))
}

// RenderBindings lists key bindings as "key -> event", in the given order.
func (r *ConfigRenderer) RenderBindings(keys []string, bindings map[string]string) string {
	if len(keys) == 0 {
		return r.theme.Subtle.Render("  no key bindings") + "\n"
	}

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  Key bindings (%d):\n", len(keys)))
	for _, key := range keys {
		sb.WriteString(fmt.Sprintf("    %s %s %s\n",
			iconStyle.Render(IconCursor),
			r.theme.Highlight.Render(key),
			r.theme.Subtle.Render(bindings[key]),
		))
	}
	return sb.String()
}

// RenderSaved renders the confirmation after the config file was written.
func (r *ConfigRenderer) RenderSaved(what, path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s %s saved to %s\n", iconStyle.Render(IconCheck), what, r.theme.Subtle.Render(path))
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("\n  %s %s\n", iconStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}
