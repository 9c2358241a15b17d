package model

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/uibridge/internal/application/usecase"
	"github.com/bnema/uibridge/internal/cli/styles"
	"github.com/bnema/uibridge/internal/domain/entity"
	repomocks "github.com/bnema/uibridge/internal/domain/repository/mocks"
)

func newJournalModel(t *testing.T) (JournalModel, *repomocks.MockJournalRepository) {
	t.Helper()
	journal := repomocks.NewMockJournalRepository(t)
	m := NewJournalModel(context.Background(), styles.NewTheme(), JournalModelConfig{
		Inspect:   usecase.NewInspectJournalUseCase(journal),
		MaxEvents: 20,
	})
	return m, journal
}

func update(t *testing.T, m JournalModel, msg tea.Msg) (JournalModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	jm, ok := next.(JournalModel)
	require.True(t, ok)
	return jm, cmd
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestJournalModel_LoadsAndExpandsSessions(t *testing.T) {
	m, journal := newJournalModel(t)

	first := entity.SessionID("20260310_120000_abcd")
	second := entity.SessionID("20260310_110000_wxyz")
	journal.EXPECT().ListSessions(mock.Anything, defaultListedSessions).Return([]entity.SessionID{first, second}, nil).Once()

	assert.Contains(t, m.View(), "Loading journal")
	m, _ = update(t, m, m.loadSessions())
	require.Len(t, m.sessions, 2)
	assert.Contains(t, m.View(), string(first))

	m, _ = update(t, m, keyMsg("down"))
	assert.Equal(t, 1, m.selectedIdx)

	journal.EXPECT().FindBySession(mock.Anything, second, 20).Return([]*entity.JournalRecord{
		{ID: "r1", SessionID: second, Seq: 1, Name: "counter.increment", ReceivedAt: time.Now()},
	}, nil).Once()

	m, cmd := update(t, m, keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, 1, m.expandedIdx)
	assert.Contains(t, m.View(), "loading")

	m, _ = update(t, m, cmd())
	view := m.View()
	assert.Contains(t, view, "counter.increment")
	assert.Contains(t, view, "1 events")

	m, cmd = update(t, m, keyMsg("enter"))
	assert.Nil(t, cmd)
	assert.Equal(t, -1, m.expandedIdx)
}

func TestJournalModel_DeleteAfterConfirm(t *testing.T) {
	m, journal := newJournalModel(t)

	id := entity.SessionID("20260310_120000_abcd")
	m, _ = update(t, m, journalLoadedMsg{sessions: []entity.SessionID{id}})

	m, _ = update(t, m, keyMsg("x"))
	require.NotNil(t, m.confirm)
	assert.Contains(t, m.View(), "Delete journaled session")

	journal.EXPECT().DeleteBySession(mock.Anything, id).Return(int64(4), nil).Once()
	m, _ = update(t, m, keyMsg("y"))
	m, cmd := update(t, m, keyMsg("enter"))
	require.Nil(t, m.confirm)
	require.NotNil(t, cmd)

	journal.EXPECT().ListSessions(mock.Anything, defaultListedSessions).Return(nil, nil).Once()
	m, reload := update(t, m, cmd())
	assert.Contains(t, m.statusMessage, "4 events")

	m, _ = update(t, m, reload())
	assert.Empty(t, m.sessions)
	assert.Contains(t, m.View(), "No journaled sessions")
}

func TestJournalModel_CancelDelete(t *testing.T) {
	m, _ := newJournalModel(t)
	m, _ = update(t, m, journalLoadedMsg{sessions: []entity.SessionID{"20260310_120000_abcd"}})

	m, _ = update(t, m, keyMsg("x"))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.confirm)
	assert.Nil(t, cmd)
}

func TestJournalModel_Quit(t *testing.T) {
	m, _ := newJournalModel(t)
	_, cmd := update(t, m, keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestJournalModel_SpinnerStopsAfterLoad(t *testing.T) {
	m, _ := newJournalModel(t)
	require.NotNil(t, m.Init())

	m, cmd := update(t, m, m.loading.Spinner.Tick())
	assert.NotNil(t, cmd)

	m, _ = update(t, m, journalLoadedMsg{})
	_, cmd = update(t, m, m.loading.Spinner.Tick())
	assert.Nil(t, cmd)
}
