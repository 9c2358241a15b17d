package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/uibridge/internal/domain/repository"
	"github.com/bnema/uibridge/internal/logging"
)

// PruneJournalUseCase drops journaled events past their retention.
type PruneJournalUseCase struct {
	journal repository.JournalRepository
	now     func() time.Time
}

// NewPruneJournalUseCase creates a new PruneJournalUseCase.
func NewPruneJournalUseCase(journal repository.JournalRepository) *PruneJournalUseCase {
	return &PruneJournalUseCase{journal: journal, now: time.Now}
}

// PruneJournalInput contains the retention settings.
type PruneJournalInput struct {
	// RetentionDays keeps events received in the last N days.
	// A value of 0 disables pruning.
	RetentionDays int
}

// PruneJournalOutput contains the pruning results.
type PruneJournalOutput struct {
	Deleted int64
	Cutoff  time.Time
}

// Execute deletes events older than the retention window.
func (uc *PruneJournalUseCase) Execute(ctx context.Context, input PruneJournalInput) (PruneJournalOutput, error) {
	if input.RetentionDays <= 0 {
		return PruneJournalOutput{}, nil
	}

	cutoff := uc.now().AddDate(0, 0, -input.RetentionDays)
	deleted, err := uc.journal.DeleteBefore(ctx, cutoff)
	if err != nil {
		return PruneJournalOutput{}, fmt.Errorf("prune journal: %w", err)
	}

	if deleted > 0 {
		logging.FromContext(ctx).Info().
			Int64("deleted", deleted).
			Int("retention_days", input.RetentionDays).
			Msg("pruned journal")
	}
	return PruneJournalOutput{Deleted: deleted, Cutoff: cutoff}, nil
}
