package repository

import (
	"context"
	"time"

	"github.com/bnema/uibridge/internal/domain/entity"
)

// JournalRepository persists events delivered to sessions.
type JournalRepository interface {
	Append(ctx context.Context, record *entity.JournalRecord) error

	// FindBySession returns a session's records in arrival order.
	FindBySession(ctx context.Context, sessionID entity.SessionID, limit int) ([]*entity.JournalRecord, error)

	// ListSessions returns the ids of sessions with journaled events, most recent first.
	ListSessions(ctx context.Context, limit int) ([]entity.SessionID, error)

	DeleteBySession(ctx context.Context, sessionID entity.SessionID) (int64, error)

	// DeleteBefore removes records received before the cutoff.
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
