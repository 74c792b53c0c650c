package secondary

import "context"

// JournalRepository defines the secondary port for the punch journal.
type JournalRepository interface {
	// Append persists a new journal entry.
	Append(ctx context.Context, entry *JournalRecord) error

	// List retrieves journal entries matching the filters, newest first.
	List(ctx context.Context, filters JournalFilters) ([]*JournalRecord, error)
}

// JournalRecord represents a journal entry as stored in persistence.
type JournalRecord struct {
	ID         string
	EmployeeID string
	ActorID    string
	Action     string // punch action, "register" or "edit-profile"
	WorkDate   string
	PunchTime  string
	Adjusted   bool // recorded through an admin adjustment
	Detail     string
	RecordedAt string
}

// JournalFilters contains filter options for querying the journal.
type JournalFilters struct {
	EmployeeID string
	Action     string
	Limit      int
}

// ShiftExporter defines the secondary port for writing shift reports to files.
type ShiftExporter interface {
	// ExportShifts writes the employee's shifts to path.
	ExportShifts(ctx context.Context, path string, employee *EmployeeRecord, shifts []*ShiftRecord) error
}
