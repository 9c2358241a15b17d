// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/uibridge/internal/application/usecase"
	"github.com/bnema/uibridge/internal/cli/styles"
	"github.com/bnema/uibridge/internal/domain/entity"
	"github.com/bnema/uibridge/internal/logging"
)

const defaultListedSessions = 50

// JournalModel browses journaled sessions and their events.
type JournalModel struct {
	help    help.Model
	keys    journalKeyMap
	confirm *styles.ConfirmModel
	loading styles.LoadingModel
	loaded  bool

	sessions      []entity.SessionID
	events        map[entity.SessionID][]*entity.JournalRecord
	selectedIdx   int
	expandedIdx   int // -1 means none expanded
	width         int
	err           error
	statusMessage string

	maxListed int
	maxEvents int

	ctx     context.Context
	inspect *usecase.InspectJournalUseCase
	theme   *styles.Theme
}

type journalKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Expand  key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k journalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Expand, k.Delete, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k journalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Expand},
		{k.Delete, k.Refresh},
		{k.Help, k.Quit},
	}
}

func defaultJournalKeyMap() journalKeyMap {
	return journalKeyMap{
		Up:      key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		Expand:  key.NewBinding(key.WithKeys("enter", "tab"), key.WithHelp("enter", "events")),
		Delete:  key.NewBinding(key.WithKeys("x", "d"), key.WithHelp("x", "delete")),
		Refresh: key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "refresh")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// JournalModelConfig holds configuration for the journal model.
type JournalModelConfig struct {
	Inspect   *usecase.InspectJournalUseCase
	MaxListed int
	MaxEvents int
}

// NewJournalModel creates a new journal browser model.
func NewJournalModel(ctx context.Context, theme *styles.Theme, cfg JournalModelConfig) JournalModel {
	maxListed := cfg.MaxListed
	if maxListed <= 0 {
		maxListed = defaultListedSessions
	}
	h := help.New()
	h.Styles.ShortKey = theme.HelpKey
	h.Styles.ShortDesc = theme.HelpDesc
	h.Styles.FullKey = theme.HelpKey
	h.Styles.FullDesc = theme.HelpDesc

	return JournalModel{
		help:        h,
		loading:     styles.NewLoading(theme, "Loading journal..."),
		keys:        defaultJournalKeyMap(),
		events:      make(map[entity.SessionID][]*entity.JournalRecord),
		expandedIdx: -1,
		width:       80,
		maxListed:   maxListed,
		maxEvents:   cfg.MaxEvents,
		ctx:         ctx,
		inspect:     cfg.Inspect,
		theme:       theme,
	}
}

// Init implements tea.Model.
func (m JournalModel) Init() tea.Cmd {
	return tea.Batch(m.loadSessions, m.loading.Spinner.Tick)
}

type journalLoadedMsg struct {
	sessions []entity.SessionID
	err      error
}

type journalEventsMsg struct {
	sessionID entity.SessionID
	records   []*entity.JournalRecord
	err       error
}

type journalDeletedMsg struct {
	sessionID entity.SessionID
	deleted   int64
	err       error
}

func (m JournalModel) loadSessions() tea.Msg {
	if m.inspect == nil {
		return journalLoadedMsg{err: fmt.Errorf("journal not available")}
	}
	ids, err := m.inspect.ListSessions(m.ctx, m.maxListed)
	if err != nil {
		logging.FromContext(m.ctx).Error().Err(err).Msg("failed to list journaled sessions")
	}
	return journalLoadedMsg{sessions: ids, err: err}
}

func (m JournalModel) loadEvents(id entity.SessionID) tea.Cmd {
	return func() tea.Msg {
		_, records, err := m.inspect.Events(m.ctx, string(id), m.maxEvents)
		return journalEventsMsg{sessionID: id, records: records, err: err}
	}
}

func (m JournalModel) deleteSession(id entity.SessionID) tea.Cmd {
	return func() tea.Msg {
		logging.FromContext(m.ctx).Info().Str("session_id", string(id)).Msg("deleting journaled session")
		deleted, err := m.inspect.Delete(m.ctx, id)
		return journalDeletedMsg{sessionID: id, deleted: deleted, err: err}
	}
}

// Update implements tea.Model.
func (m JournalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		return m.handleConfirmModal(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case spinner.TickMsg:
		if m.loaded {
			return m, nil
		}
		var cmd tea.Cmd
		m.loading.Spinner, cmd = m.loading.Spinner.Update(msg)
		return m, cmd

	case journalLoadedMsg:
		m.loaded = true
		m.err = msg.err
		if msg.err == nil {
			m.sessions = msg.sessions
			if m.selectedIdx >= len(m.sessions) {
				m.selectedIdx = max(len(m.sessions)-1, 0)
			}
			m.expandedIdx = -1
		}
		return m, nil

	case journalEventsMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}
		m.events[msg.sessionID] = msg.records
		return m, nil

	case journalDeletedMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("Error: %v", msg.err)
		} else {
			delete(m.events, msg.sessionID)
			m.statusMessage = fmt.Sprintf("Session %s deleted (%d events)", msg.sessionID, msg.deleted)
		}
		return m, m.loadSessions
	}

	return m, nil
}

func (m JournalModel) handleConfirmModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	confirm, cmd := m.confirm.Update(msg)
	m.confirm = &confirm
	if !m.confirm.Done() {
		return m, cmd
	}
	if m.confirm.Result() && m.selectedIdx < len(m.sessions) {
		cmd = m.deleteSession(m.sessions[m.selectedIdx])
	}
	m.confirm = nil
	return m, cmd
}

func (m JournalModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.selectedIdx > 0 {
			m.selectedIdx--
		}

	case key.Matches(msg, m.keys.Down):
		if m.selectedIdx < len(m.sessions)-1 {
			m.selectedIdx++
		}

	case key.Matches(msg, m.keys.Expand):
		if len(m.sessions) == 0 {
			return m, nil
		}
		if m.expandedIdx == m.selectedIdx {
			m.expandedIdx = -1
			return m, nil
		}
		m.expandedIdx = m.selectedIdx
		id := m.sessions[m.selectedIdx]
		if _, loaded := m.events[id]; !loaded {
			return m, m.loadEvents(id)
		}

	case key.Matches(msg, m.keys.Delete):
		if len(m.sessions) > 0 {
			id := m.sessions[m.selectedIdx]
			confirm := styles.NewConfirm(m.theme, fmt.Sprintf("Delete journaled session %s?", id))
			if records, ok := m.events[id]; ok {
				confirm = confirm.WithDetail(fmt.Sprintf("%d loaded events will be removed", len(records)))
			}
			m.confirm = &confirm
		}

	case key.Matches(msg, m.keys.Refresh):
		m.events = make(map[entity.SessionID][]*entity.JournalRecord)
		return m, m.loadSessions

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// View implements tea.Model.
func (m JournalModel) View() string {
	if m.confirm != nil {
		return m.confirm.View()
	}

	t := m.theme
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(t.ErrorStyle.Render(fmt.Sprintf("%s Error: %v", styles.IconX, m.err)))
		b.WriteString("\n\n")
	}
	if m.statusMessage != "" {
		b.WriteString(t.Subtle.Render(m.statusMessage))
		b.WriteString("\n\n")
	}

	switch {
	case !m.loaded:
		b.WriteString("  " + m.loading.View())
		b.WriteString("\n")
	case len(m.sessions) == 0:
		b.WriteString(t.Subtle.Render("  No journaled sessions."))
		b.WriteString("\n")
	}
	for i, id := range m.sessions {
		b.WriteString(m.renderRow(id, i == m.selectedIdx))
		b.WriteString("\n")
		if i == m.expandedIdx {
			b.WriteString(m.renderEvents(id))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m JournalModel) renderHeader() string {
	t := m.theme
	icon := lipgloss.NewStyle().Foreground(t.Accent).Render(styles.IconDatabase)
	return icon + t.Title.MarginLeft(1).Render("Journal") + "  " + t.CountBadge(len(m.sessions), "session")
}

func (m JournalModel) renderRow(id entity.SessionID, selected bool) string {
	t := m.theme

	cursor := "  "
	idStyle := t.Normal
	if selected {
		cursor = t.Highlight.Render(styles.IconCursor + " ")
		idStyle = t.Highlight
	}

	count := ""
	if records, ok := m.events[id]; ok {
		count = "  " + t.Subtle.Render(fmt.Sprintf("%d events", len(records)))
	}
	return fmt.Sprintf("%s%s %s%s", cursor, idStyle.Render(string(id)), t.MutedBadge(id.Short()), count)
}

func (m JournalModel) renderEvents(id entity.SessionID) string {
	t := m.theme
	records, ok := m.events[id]
	if !ok {
		return t.Subtle.Render("      loading...") + "\n"
	}
	if len(records) == 0 {
		return t.Subtle.Render("      no events") + "\n"
	}

	treeStyle := lipgloss.NewStyle().Foreground(t.Border)
	var b strings.Builder
	for i, rec := range records {
		branch := "├── "
		if i == len(records)-1 {
			branch = "└── "
		}
		fmt.Fprintf(&b, "      %s%s %s %s\n",
			treeStyle.Render(branch),
			t.Subtle.Render(fmt.Sprintf("#%d", rec.Seq)),
			t.Normal.Render(string(rec.Name)),
			t.Subtle.Render(styles.RelativeTime(rec.ReceivedAt)),
		)
	}
	return b.String()
}

// Ensure interface compliance at compile time.
var _ tea.Model = (*JournalModel)(nil)
