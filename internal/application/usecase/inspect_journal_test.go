package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/uibridge/internal/domain/entity"
	repomocks "github.com/bnema/uibridge/internal/domain/repository/mocks"
)

func TestInspectJournalUseCase_EventsByFullID(t *testing.T) {
	ctx := testContext()

	id := entity.SessionID("20260310_120000_abcd")
	records := []*entity.JournalRecord{
		{ID: "r1", SessionID: id, Seq: 1, Name: "counter.increment"},
		{ID: "r2", SessionID: id, Seq: 2, Name: "save.clicked"},
	}

	journal := repomocks.NewMockJournalRepository(t)
	journal.EXPECT().FindBySession(mock.Anything, id, 50).Return(records, nil).Once()

	got, out, err := NewInspectJournalUseCase(journal).Events(ctx, string(id), 50)
	require.NoError(t, err)
	assert.Equal(t, id, got)
	assert.Equal(t, records, out)
}

func TestInspectJournalUseCase_EventsByShortID(t *testing.T) {
	ctx := testContext()

	id := entity.SessionID("20260310_120000_abcd")
	other := entity.SessionID("20260310_110000_wxyz")
	records := []*entity.JournalRecord{{ID: "r1", SessionID: id, Seq: 1, Name: "counter.reset"}}

	journal := repomocks.NewMockJournalRepository(t)
	journal.EXPECT().FindBySession(mock.Anything, entity.SessionID("abcd"), 10).Return(nil, nil).Once()
	journal.EXPECT().ListSessions(mock.Anything, mock.Anything).Return([]entity.SessionID{id, other}, nil).Once()
	journal.EXPECT().FindBySession(mock.Anything, id, 10).Return(records, nil).Once()

	got, out, err := NewInspectJournalUseCase(journal).Events(ctx, "abcd", 10)
	require.NoError(t, err)
	assert.Equal(t, id, got)
	assert.Len(t, out, 1)
}

func TestInspectJournalUseCase_AmbiguousPrefix(t *testing.T) {
	ctx := testContext()

	journal := repomocks.NewMockJournalRepository(t)
	journal.EXPECT().FindBySession(mock.Anything, entity.SessionID("2026"), 10).Return(nil, nil).Once()
	journal.EXPECT().ListSessions(mock.Anything, mock.Anything).
		Return([]entity.SessionID{"20260310_120000_abcd", "20260310_110000_wxyz"}, nil).Once()

	_, _, err := NewInspectJournalUseCase(journal).Events(ctx, "2026", 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")
}

func TestInspectJournalUseCase_UnknownSession(t *testing.T) {
	ctx := testContext()

	journal := repomocks.NewMockJournalRepository(t)
	journal.EXPECT().FindBySession(mock.Anything, entity.SessionID("nope"), 10).Return(nil, nil).Once()
	journal.EXPECT().ListSessions(mock.Anything, mock.Anything).Return(nil, nil).Once()

	_, _, err := NewInspectJournalUseCase(journal).Events(ctx, "nope", 10)
	assert.ErrorIs(t, err, ErrNoJournaledEvents)
}

func TestInspectJournalUseCase_EmptyID(t *testing.T) {
	journal := repomocks.NewMockJournalRepository(t)

	_, _, err := NewInspectJournalUseCase(journal).Events(testContext(), "", 10)
	assert.Error(t, err)
}

func TestInspectJournalUseCase_Delete(t *testing.T) {
	ctx := testContext()
	id := entity.SessionID("20260310_120000_abcd")

	journal := repomocks.NewMockJournalRepository(t)
	journal.EXPECT().DeleteBySession(mock.Anything, id).Return(int64(3), nil).Once()
	journal.EXPECT().DeleteBySession(mock.Anything, id).Return(int64(0), nil).Once()

	uc := NewInspectJournalUseCase(journal)
	deleted, err := uc.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	_, err = uc.Delete(ctx, id)
	assert.ErrorIs(t, err, ErrNoJournaledEvents)
}
