// Package memory contains the in-memory record store that owns all
// employee and shift records for the lifetime of the process.
package memory

import (
	"fmt"
	"sync"

	"github.com/example/timeclock/internal/clockerr"
	"github.com/example/timeclock/internal/ports/secondary"
)

// RecordStore implements secondary.RecordStore.
// Records are kept in insertion order; returned pointers refer to the
// stored records, so mutations through them are visible to later snapshots.
type RecordStore struct {
	mu        sync.RWMutex
	employees []*secondary.EmployeeRecord
	shifts    []*secondary.ShiftRecord
}

// NewRecordStore initializes a store from a loaded snapshot.
// The snapshot is copied; nil starts empty.
func NewRecordStore(initial *secondary.Snapshot) *RecordStore {
	s := &RecordStore{}
	if initial != nil {
		s.Restore(initial)
	}
	return s
}

// FindEmployee retrieves an employee by id.
func (s *RecordStore) FindEmployee(id string) (*secondary.EmployeeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: employee %s", clockerr.ErrNotFound, id)
}

// FindShift retrieves the shift for an employee on a date.
func (s *RecordStore) FindShift(empID, date string) (*secondary.ShiftRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sh := range s.shifts {
		if sh.EmpID == empID && sh.Date == date {
			return sh, nil
		}
	}
	return nil, fmt.Errorf("%w: shift for employee %s on %s", clockerr.ErrNotFound, empID, date)
}

// AddEmployee appends a new employee.
func (s *RecordStore) AddEmployee(e *secondary.EmployeeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.employees {
		if existing.ID == e.ID {
			return fmt.Errorf("%w: %s", clockerr.ErrDuplicateEmployee, e.ID)
		}
	}
	s.employees = append(s.employees, e)
	return nil
}

// AddShift appends a new shift.
func (s *RecordStore) AddShift(sh *secondary.ShiftRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.shifts {
		if existing.EmpID == sh.EmpID && existing.Date == sh.Date {
			return fmt.Errorf("%w: employee %s on %s", clockerr.ErrDuplicateShift, sh.EmpID, sh.Date)
		}
	}
	s.shifts = append(s.shifts, sh)
	return nil
}

// ShiftsFor returns an employee's shifts in insertion order.
func (s *RecordStore) ShiftsFor(empID string) []*secondary.ShiftRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*secondary.ShiftRecord
	for _, sh := range s.shifts {
		if sh.EmpID == empID {
			result = append(result, sh)
		}
	}
	return result
}

// Employees returns all employees in insertion order.
func (s *RecordStore) Employees() []*secondary.EmployeeRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*secondary.EmployeeRecord, len(s.employees))
	copy(list, s.employees)
	return list
}

// Snapshot returns a deep copy of the whole record set.
func (s *RecordStore) Snapshot() *secondary.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copySnapshot(&secondary.Snapshot{Employees: s.employees, Shifts: s.shifts})
}

// Restore replaces the record set with a copy of the snapshot.
func (s *RecordStore) Restore(snap *secondary.Snapshot) {
	c := copySnapshot(snap)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.employees = c.Employees
	s.shifts = c.Shifts
}

// copySnapshot creates a deep copy of a snapshot.
func copySnapshot(snap *secondary.Snapshot) *secondary.Snapshot {
	out := &secondary.Snapshot{
		Employees: make([]*secondary.EmployeeRecord, 0, len(snap.Employees)),
		Shifts:    make([]*secondary.ShiftRecord, 0, len(snap.Shifts)),
	}
	for _, e := range snap.Employees {
		ec := *e
		out.Employees = append(out.Employees, &ec)
	}
	for _, sh := range snap.Shifts {
		sc := *sh
		sc.Breaks = copyIntervals(sh.Breaks)
		sc.Lunches = copyIntervals(sh.Lunches)
		out.Shifts = append(out.Shifts, &sc)
	}
	return out
}

func copyIntervals(in []*secondary.IntervalRecord) []*secondary.IntervalRecord {
	out := make([]*secondary.IntervalRecord, 0, len(in))
	for _, i := range in {
		ic := *i
		out = append(out, &ic)
	}
	return out
}

// Ensure RecordStore implements the interface.
var _ secondary.RecordStore = (*RecordStore)(nil)
