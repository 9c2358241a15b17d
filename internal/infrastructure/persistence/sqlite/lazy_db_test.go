package sqlite_test

import (
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/uibridge/internal/infrastructure/persistence/sqlite"
)

func TestLazyDB_InitializesOnFirstAccess(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "journal.sqlite")
	lazy := sqlite.NewLazyDB(dbPath)
	assert.False(t, lazy.IsInitialized())
	assert.Equal(t, dbPath, lazy.Path())

	db, err := lazy.DB(ctx)
	require.NoError(t, err)
	require.NotNil(t, db)
	assert.True(t, lazy.IsInitialized())

	var result int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT 1").Scan(&result))
	assert.Equal(t, 1, result)

	require.NoError(t, lazy.Close())
}

func TestLazyDB_ConcurrentAccessSharesConnection(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "journal.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })

	const goroutines = 10
	dbs := make([]*sql.DB, goroutines)
	errs := make([]error, goroutines)

	var wg sync.WaitGroup
	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dbs[i], errs[i] = lazy.DB(ctx)
		}()
	}
	wg.Wait()

	for i := range goroutines {
		require.NoError(t, errs[i])
		assert.Same(t, dbs[0], dbs[i])
	}
}

func TestLazyDB_CloseBeforeInit(t *testing.T) {
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "journal.sqlite"))
	assert.NoError(t, lazy.Close())
}

func TestLazyDB_EmptyPathFails(t *testing.T) {
	lazy := sqlite.NewLazyDB("")

	_, err := lazy.DB(testCtx())
	require.Error(t, err)
	assert.False(t, lazy.IsInitialized())

	_, err = lazy.DB(testCtx())
	require.Error(t, err)
}
