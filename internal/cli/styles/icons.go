// Package styles provides reusable lipgloss-based TUI components.
package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGithub    = "" // github
	IconGo        = "" // go gopher

	IconCheck    = "" // check
	IconX        = "" // x
	IconInfo     = "" // info
	IconTrash    = "" // trash
	IconConfig   = "" // config
	IconDatabase = "" // database
	IconCursor   = "" // chevron-right
	IconSession  = "" // window
	IconClock    = "" // clock
)
