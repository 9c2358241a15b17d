package styles

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/uibridge/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Cell.
		Foreground(theme.Text)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// JournalTableColumns returns columns for a session's journaled events.
func JournalTableColumns() []table.Column {
	return []table.Column{
		{Title: "Seq", Width: 6},
		{Title: "Event", Width: 32},
		{Title: "Received", Width: 26},
	}
}

// JournalRows converts journal records to table rows.
func JournalRows(records []*entity.JournalRecord) []table.Row {
	rows := make([]table.Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, table.Row{
			strconv.FormatUint(rec.Seq, 10),
			string(rec.Name),
			rec.ReceivedAt.Local().Format("2006-01-02 15:04:05.000"),
		})
	}
	return rows
}

// EventTableColumns returns columns for an in-memory session event log.
func EventTableColumns() []table.Column {
	return JournalTableColumns()
}

// EventRows converts recorded events to table rows.
func EventRows(events []entity.Event) []table.Row {
	rows := make([]table.Row, 0, len(events))
	for _, ev := range events {
		rows = append(rows, table.Row{
			strconv.FormatUint(ev.Seq, 10),
			string(ev.Name),
			ev.ReceivedAt.Local().Format("2006-01-02 15:04:05.000"),
		})
	}
	return rows
}
