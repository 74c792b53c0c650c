package primary

import "context"

// JournalService defines the primary port for reading the punch journal.
type JournalService interface {
	// ListEntries retrieves journal entries matching the given filters.
	ListEntries(ctx context.Context, filters JournalFilters) ([]*JournalEntry, error)
}

// JournalFilters contains filter options for listing journal entries.
type JournalFilters struct {
	EmployeeID string
	Action     string
	Limit      int
}

// JournalEntry represents a journal entry at the port boundary.
type JournalEntry struct {
	ID         string
	EmployeeID string
	ActorID    string
	Action     string
	WorkDate   string
	PunchTime  string
	Adjusted   bool
	Detail     string
	RecordedAt string
}
