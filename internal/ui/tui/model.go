// Package tui shows a session's window in the terminal with Bubble Tea.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/uibridge/internal/cli/styles"
	"github.com/bnema/uibridge/internal/ui/mainloop"
	"github.com/bnema/uibridge/internal/ui/surface"
)

// CloseEvent is sent to the session when the user quits the window.
const CloseEvent = "window.close"

// EventSender is the part of a forwarder the window needs.
type EventSender interface {
	SendEvent(name string)
}

// postedMsg carries a closure posted from the session onto the Bubble Tea loop.
type postedMsg func()

// Window is the terminal side of one session. Create it, hand Relay to the
// session as its action sink, Bind the session's forwarder, then run the
// Model.
type Window struct {
	surface *surface.Surface
	sender  EventSender
	sent    int
}

// NewWindow creates an unbound window.
func NewWindow() *Window {
	return &Window{surface: surface.New()}
}

// Bind sets the forwarder key presses are sent to. Call it before the
// program starts.
func (w *Window) Bind(sender EventSender) {
	w.sender = sender
}

// Surface exposes the window state, for tests and final reports.
func (w *Window) Surface() *surface.Surface {
	return w.surface
}

// Relay returns an action sink that replays session actions on the loop
// of the program whose Send is given.
func (w *Window) Relay(send func(tea.Msg)) *mainloop.Relay {
	return mainloop.NewRelay(
		func(fn func()) { send(postedMsg(fn)) },
		w.surface.Apply,
	)
}

func (w *Window) send(event string) {
	if w.sender == nil {
		return
	}
	w.sender.SendEvent(event)
	w.sent++
}

type keyMap struct {
	Help key.Binding
	Quit key.Binding

	bindings []key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return append(append([]key.Binding(nil), k.bindings...), k.Help, k.Quit)
}

// FullHelp returns keybindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.bindings, {k.Help, k.Quit}}
}

// Model is the Bubble Tea model rendering a Window.
type Model struct {
	win   *Window
	help  help.Model
	keys  keyMap
	theme *styles.Theme
	width int
}

// NewModel creates the model for win.
func NewModel(win *Window, theme *styles.Theme) Model {
	h := help.New()
	h.Styles.ShortKey = theme.HelpKey
	h.Styles.ShortDesc = theme.HelpDesc
	h.Styles.FullKey = theme.HelpKey
	h.Styles.FullDesc = theme.HelpDesc

	return Model{
		win:   win,
		help:  h,
		theme: theme,
		width: 80,
		keys: keyMap{
			Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
			Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case postedMsg:
		msg()
		m.syncBindings()
		if m.win.surface.Closed() {
			return m, tea.Quit
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.win.send(CloseEvent)
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if !m.win.surface.Ready() {
		return m, nil
	}
	if event, ok := m.win.surface.EventFor(strings.ToLower(msg.String())); ok {
		m.win.send(event)
	}
	return m, nil
}

// syncBindings rebuilds the help entries once the view model is known.
func (m *Model) syncBindings() {
	bindings := m.win.surface.Bindings()
	if len(bindings) == len(m.keys.bindings) {
		return
	}
	m.keys.bindings = make([]key.Binding, 0, len(bindings))
	for _, b := range bindings {
		m.keys.bindings = append(m.keys.bindings, key.NewBinding(key.WithKeys(b.Key), key.WithHelp(b.Key, b.Event)))
	}
}

// View implements tea.Model.
func (m Model) View() string {
	s := m.win.surface
	if !s.Ready() {
		return m.theme.Subtle.Render("opening window…") + "\n"
	}

	var b strings.Builder
	title := s.Title()
	if s.ViewName() != "" {
		title = fmt.Sprintf("%s %s", title, m.theme.MutedBadge(s.ViewName()))
	}
	b.WriteString(m.theme.Title.Render(title))
	b.WriteString("\n\n")

	if box := m.theme.StateBox(s.State()); box != "" {
		b.WriteString(box)
	} else {
		b.WriteString(m.theme.Subtle.Render("no state yet"))
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Subtle.Render(fmt.Sprintf("%d events sent", m.win.sent)))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}
