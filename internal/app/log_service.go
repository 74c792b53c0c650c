package app

import (
	"context"
	"fmt"

	"github.com/example/timeclock/internal/ports/primary"
	"github.com/example/timeclock/internal/ports/secondary"
)

// JournalServiceImpl implements the JournalService interface.
type JournalServiceImpl struct {
	journalRepo secondary.JournalRepository
}

// NewJournalService creates a new JournalService with injected dependencies.
func NewJournalService(journalRepo secondary.JournalRepository) *JournalServiceImpl {
	return &JournalServiceImpl{
		journalRepo: journalRepo,
	}
}

// ListEntries retrieves journal entries matching the given filters.
func (s *JournalServiceImpl) ListEntries(ctx context.Context, filters primary.JournalFilters) ([]*primary.JournalEntry, error) {
	records, err := s.journalRepo.List(ctx, secondary.JournalFilters{
		EmployeeID: filters.EmployeeID,
		Action:     filters.Action,
		Limit:      filters.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}

	entries := make([]*primary.JournalEntry, len(records))
	for i, r := range records {
		entries[i] = s.recordToEntry(r)
	}
	return entries, nil
}

// Helper methods

func (s *JournalServiceImpl) recordToEntry(r *secondary.JournalRecord) *primary.JournalEntry {
	return &primary.JournalEntry{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		ActorID:    r.ActorID,
		Action:     r.Action,
		WorkDate:   r.WorkDate,
		PunchTime:  r.PunchTime,
		Adjusted:   r.Adjusted,
		Detail:     r.Detail,
		RecordedAt: r.RecordedAt,
	}
}

// Ensure JournalServiceImpl implements the interface
var _ primary.JournalService = (*JournalServiceImpl)(nil)
