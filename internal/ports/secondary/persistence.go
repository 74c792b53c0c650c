// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"

	corepunch "github.com/example/timeclock/internal/core/punch"
)

// RecordStore defines the secondary port for the in-memory record set.
// Lookups compare ids by value so a rehydrated store behaves identically.
type RecordStore interface {
	// FindEmployee retrieves an employee by id.
	FindEmployee(id string) (*EmployeeRecord, error)

	// FindShift retrieves the shift for an employee on a date.
	FindShift(empID, date string) (*ShiftRecord, error)

	// AddEmployee appends a new employee.
	AddEmployee(e *EmployeeRecord) error

	// AddShift appends a new shift.
	AddShift(s *ShiftRecord) error

	// ShiftsFor returns an employee's shifts in insertion order.
	ShiftsFor(empID string) []*ShiftRecord

	// Employees returns all employees in insertion order.
	Employees() []*EmployeeRecord

	// Snapshot returns a deep copy of the whole record set.
	Snapshot() *Snapshot

	// Restore replaces the record set with a copy of the snapshot.
	Restore(s *Snapshot)
}

// SnapshotGateway defines the secondary port for the backing store.
type SnapshotGateway interface {
	// Load reads the backing store, seeding it first when absent or empty.
	Load(ctx context.Context) (*Snapshot, error)

	// Save overwrites the backing store with the snapshot.
	Save(ctx context.Context, s *Snapshot) error
}

// Snapshot is the full record set as exchanged with the backing store.
type Snapshot struct {
	Employees []*EmployeeRecord
	Shifts    []*ShiftRecord
}

// EmployeeRecord represents an employee as stored in persistence.
// Status flags are not kept here; they are derived from shifts.
type EmployeeRecord struct {
	ID        string
	FirstName string
	LastName  string
	IsAdmin   bool
}

// ShiftRecord represents a shift as stored in persistence.
// Empty ShiftEnd means the shift is open.
type ShiftRecord struct {
	EmpID      string
	Date       string
	ShiftStart string
	ShiftEnd   string
	Breaks     []*IntervalRecord
	Lunches    []*IntervalRecord
}

// PunchState reduces the shift to the view status derivation needs.
func (s *ShiftRecord) PunchState() corepunch.ShiftState {
	return corepunch.ShiftState{
		Date:        s.Date,
		Closed:      s.ShiftEnd != "",
		OpenBreaks:  countOpen(s.Breaks),
		OpenLunches: countOpen(s.Lunches),
	}
}

// StatusOf derives an employee's status from all of their shift records.
func StatusOf(shifts []*ShiftRecord) (corepunch.Status, error) {
	states := make([]corepunch.ShiftState, 0, len(shifts))
	for _, sh := range shifts {
		states = append(states, sh.PunchState())
	}
	return corepunch.DeriveStatus(states)
}

func countOpen(intervals []*IntervalRecord) int {
	n := 0
	for _, i := range intervals {
		if i.IsOpen() {
			n++
		}
	}
	return n
}

// IntervalRecord is a break or a lunch. Empty End means it is open.
type IntervalRecord struct {
	Start string
	End   string
}

// IsOpen reports whether the interval has started and not ended.
func (i *IntervalRecord) IsOpen() bool {
	return i.Start != "" && i.End == ""
}
