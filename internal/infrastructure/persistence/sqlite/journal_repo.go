package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/uibridge/internal/application/port"
	"github.com/bnema/uibridge/internal/domain/entity"
	"github.com/bnema/uibridge/internal/domain/repository"
	"github.com/bnema/uibridge/internal/logging"
)

const defaultJournalLimit = 100

const (
	insertJournalRecord = `INSERT INTO event_journal (id, session_id, seq, name, received_at)
VALUES (?, ?, ?, ?, ?)`
	selectJournalBySession = `SELECT id, session_id, seq, name, received_at
FROM event_journal
WHERE session_id = ?
ORDER BY seq ASC
LIMIT ?`
	selectJournalSessions = `SELECT session_id
FROM event_journal
GROUP BY session_id
ORDER BY MAX(received_at) DESC
LIMIT ?`
	deleteJournalBySession = `DELETE FROM event_journal WHERE session_id = ?`
	deleteJournalBefore    = `DELETE FROM event_journal WHERE received_at < ?`
)

type journalRepo struct {
	db *sql.DB
}

// NewJournalRepository returns a journal repository backed by db.
func NewJournalRepository(db *sql.DB) repository.JournalRepository {
	return &journalRepo{db: db}
}

func (r *journalRepo) Append(ctx context.Context, record *entity.JournalRecord) error {
	if record == nil {
		return fmt.Errorf("journal record is nil")
	}
	if record.ID == "" || record.SessionID == "" {
		return fmt.Errorf("journal record needs an id and a session id")
	}

	logging.FromContext(ctx).Trace().
		Str("record", record.ID).
		Uint64("seq", record.Seq).
		Msg("journaling event")

	_, err := r.db.ExecContext(ctx, insertJournalRecord,
		record.ID,
		string(record.SessionID),
		int64(record.Seq),
		string(record.Name),
		record.ReceivedAt.UTC().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("append journal record: %w", err)
	}
	return nil
}

func (r *journalRepo) FindBySession(ctx context.Context, sessionID entity.SessionID, limit int) ([]*entity.JournalRecord, error) {
	if limit <= 0 {
		limit = defaultJournalLimit
	}

	rows, err := r.db.QueryContext(ctx, selectJournalBySession, string(sessionID), limit)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []*entity.JournalRecord
	for rows.Next() {
		var (
			rec        entity.JournalRecord
			session    string
			seq        int64
			name       string
			receivedAt int64
		)
		if err := rows.Scan(&rec.ID, &session, &seq, &name, &receivedAt); err != nil {
			return nil, fmt.Errorf("scan journal record: %w", err)
		}
		rec.SessionID = entity.SessionID(session)
		rec.Seq = uint64(seq)
		rec.Name = entity.EventName(name)
		rec.ReceivedAt = time.Unix(0, receivedAt).UTC()
		records = append(records, &rec)
	}
	return records, rows.Err()
}

func (r *journalRepo) ListSessions(ctx context.Context, limit int) ([]entity.SessionID, error) {
	if limit <= 0 {
		limit = defaultJournalLimit
	}

	rows, err := r.db.QueryContext(ctx, selectJournalSessions, limit)
	if err != nil {
		return nil, fmt.Errorf("query journal sessions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []entity.SessionID
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan journal session: %w", err)
		}
		ids = append(ids, entity.SessionID(id))
	}
	return ids, rows.Err()
}

func (r *journalRepo) DeleteBySession(ctx context.Context, sessionID entity.SessionID) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteJournalBySession, string(sessionID))
	if err != nil {
		return 0, fmt.Errorf("delete journal session: %w", err)
	}
	return res.RowsAffected()
}

func (r *journalRepo) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteJournalBefore, cutoff.UTC().UnixNano())
	if err != nil {
		return 0, fmt.Errorf("prune journal: %w", err)
	}
	return res.RowsAffected()
}

// LazyJournalRepository defers opening the database until the first call.
type LazyJournalRepository struct {
	provider port.DatabaseProvider
	repo     repository.JournalRepository
	once     sync.Once
	initErr  error
}

// NewLazyJournalRepository creates a journal repository on top of provider.
func NewLazyJournalRepository(provider port.DatabaseProvider) *LazyJournalRepository {
	return &LazyJournalRepository{provider: provider}
}

var _ repository.JournalRepository = (*LazyJournalRepository)(nil)

func (r *LazyJournalRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewJournalRepository(db)
	})
	return r.initErr
}

func (r *LazyJournalRepository) Append(ctx context.Context, record *entity.JournalRecord) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Append(ctx, record)
}

func (r *LazyJournalRepository) FindBySession(ctx context.Context, sessionID entity.SessionID, limit int) ([]*entity.JournalRecord, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.FindBySession(ctx, sessionID, limit)
}

func (r *LazyJournalRepository) ListSessions(ctx context.Context, limit int) ([]entity.SessionID, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.ListSessions(ctx, limit)
}

func (r *LazyJournalRepository) DeleteBySession(ctx context.Context, sessionID entity.SessionID) (int64, error) {
	if err := r.init(ctx); err != nil {
		return 0, err
	}
	return r.repo.DeleteBySession(ctx, sessionID)
}

func (r *LazyJournalRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if err := r.init(ctx); err != nil {
		return 0, err
	}
	return r.repo.DeleteBefore(ctx, cutoff)
}
