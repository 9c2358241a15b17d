package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/uibridge/internal/domain/entity"
	"github.com/bnema/uibridge/internal/domain/repository"
)

// ErrNoJournaledEvents is returned when a session has nothing in the journal.
var ErrNoJournaledEvents = errors.New("no journaled events for session")

// InspectJournalUseCase reads the event journal.
type InspectJournalUseCase struct {
	journal repository.JournalRepository
}

// NewInspectJournalUseCase creates a new InspectJournalUseCase.
func NewInspectJournalUseCase(journal repository.JournalRepository) *InspectJournalUseCase {
	return &InspectJournalUseCase{journal: journal}
}

// ListSessions returns the most recently active journaled sessions.
func (uc *InspectJournalUseCase) ListSessions(ctx context.Context, limit int) ([]entity.SessionID, error) {
	ids, err := uc.journal.ListSessions(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list journaled sessions: %w", err)
	}
	return ids, nil
}

// Events returns a session's journaled events in arrival order. A short id
// prefix is accepted when it matches exactly one recent session.
func (uc *InspectJournalUseCase) Events(ctx context.Context, id string, limit int) (entity.SessionID, []*entity.JournalRecord, error) {
	if id == "" {
		return "", nil, errors.New("session id cannot be empty")
	}

	sessionID := entity.SessionID(id)
	records, err := uc.journal.FindBySession(ctx, sessionID, limit)
	if err != nil {
		return "", nil, fmt.Errorf("read journal: %w", err)
	}
	if len(records) > 0 {
		return sessionID, records, nil
	}

	resolved, err := uc.resolvePrefix(ctx, id)
	if err != nil {
		return "", nil, err
	}
	records, err = uc.journal.FindBySession(ctx, resolved, limit)
	if err != nil {
		return "", nil, fmt.Errorf("read journal: %w", err)
	}
	return resolved, records, nil
}

// Delete removes a session from the journal.
func (uc *InspectJournalUseCase) Delete(ctx context.Context, id entity.SessionID) (int64, error) {
	deleted, err := uc.journal.DeleteBySession(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete journaled session: %w", err)
	}
	if deleted == 0 {
		return 0, fmt.Errorf("%s: %w", id, ErrNoJournaledEvents)
	}
	return deleted, nil
}

func (uc *InspectJournalUseCase) resolvePrefix(ctx context.Context, prefix string) (entity.SessionID, error) {
	const searchLimit = 500

	ids, err := uc.journal.ListSessions(ctx, searchLimit)
	if err != nil {
		return "", fmt.Errorf("list journaled sessions: %w", err)
	}

	var match entity.SessionID
	for _, id := range ids {
		if !strings.HasPrefix(string(id), prefix) && id.Short() != prefix {
			continue
		}
		if match != "" {
			return "", fmt.Errorf("session id %q is ambiguous", prefix)
		}
		match = id
	}
	if match == "" {
		return "", fmt.Errorf("%s: %w", prefix, ErrNoJournaledEvents)
	}
	return match, nil
}
