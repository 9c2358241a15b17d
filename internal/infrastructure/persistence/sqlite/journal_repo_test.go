package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/uibridge/internal/domain/entity"
	"github.com/bnema/uibridge/internal/domain/repository"
	"github.com/bnema/uibridge/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/uibridge/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newJournal(t *testing.T) repository.JournalRepository {
	t.Helper()
	db, err := sqlite.NewConnection(testCtx(), filepath.Join(t.TempDir(), "journal.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlite.NewJournalRepository(db)
}

func record(id string, session entity.SessionID, seq uint64, name string, at time.Time) *entity.JournalRecord {
	return &entity.JournalRecord{ID: id, SessionID: session, Seq: seq, Name: entity.EventName(name), ReceivedAt: at}
}

func TestJournalRepository_AppendAndFind(t *testing.T) {
	ctx := testCtx()
	repo := newJournal(t)

	base := time.Date(2026, 10, 19, 12, 0, 0, 500, time.UTC)
	require.NoError(t, repo.Append(ctx, record("01A", "s1", 2, "button.clicked.save", base.Add(time.Second))))
	require.NoError(t, repo.Append(ctx, record("01B", "s1", 1, "counter.increment", base)))
	require.NoError(t, repo.Append(ctx, record("01C", "s2", 1, "window.close", base)))

	got, err := repo.FindBySession(ctx, "s1", 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint64(1), got[0].Seq)
	assert.Equal(t, entity.EventName("counter.increment"), got[0].Name)
	assert.True(t, got[0].ReceivedAt.Equal(base))
	assert.Equal(t, "01A", got[1].ID)
	assert.Equal(t, entity.SessionID("s1"), got[1].SessionID)

	limited, err := repo.FindBySession(ctx, "s1", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	none, err := repo.FindBySession(ctx, "missing", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestJournalRepository_RejectsDuplicateSeq(t *testing.T) {
	ctx := testCtx()
	repo := newJournal(t)
	at := time.Now()

	require.NoError(t, repo.Append(ctx, record("01A", "s1", 1, "a", at)))
	require.Error(t, repo.Append(ctx, record("01B", "s1", 1, "b", at)))
	require.Error(t, repo.Append(ctx, nil))
	require.Error(t, repo.Append(ctx, record("", "s1", 2, "c", at)))
}

func TestJournalRepository_ListSessionsMostRecentFirst(t *testing.T) {
	ctx := testCtx()
	repo := newJournal(t)
	base := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Append(ctx, record("01A", "old", 1, "a", base)))
	require.NoError(t, repo.Append(ctx, record("01B", "new", 1, "a", base.Add(time.Minute))))
	require.NoError(t, repo.Append(ctx, record("01C", "old", 2, "b", base.Add(30*time.Second))))

	ids, err := repo.ListSessions(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []entity.SessionID{"new", "old"}, ids)
}

func TestJournalRepository_Delete(t *testing.T) {
	ctx := testCtx()
	repo := newJournal(t)
	base := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Append(ctx, record("01A", "s1", 1, "a", base)))
	require.NoError(t, repo.Append(ctx, record("01B", "s1", 2, "b", base.Add(time.Hour))))
	require.NoError(t, repo.Append(ctx, record("01C", "s2", 1, "a", base)))

	pruned, err := repo.DeleteBefore(ctx, base.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(2), pruned)

	deleted, err := repo.DeleteBySession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	ids, err := repo.ListSessions(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestLazyJournalRepository(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "journal.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })

	repo := sqlite.NewLazyJournalRepository(lazy)
	assert.False(t, lazy.IsInitialized())

	require.NoError(t, repo.Append(ctx, record("01A", "s1", 1, "a", time.Now())))
	assert.True(t, lazy.IsInitialized())

	got, err := repo.FindBySession(ctx, "s1", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestSchemaVersion(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "journal.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	version, err := sqlite.SchemaVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}
