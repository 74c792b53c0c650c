package jsonfile

import (
	"github.com/example/timeclock/internal/ports/secondary"
)

// SeedSnapshot returns the fixed dataset written on first run:
// two employees and closed shifts spanning three dates.
// Jane Doe is an admin so the admin tools are reachable on a fresh install.
func SeedSnapshot() *secondary.Snapshot {
	return &secondary.Snapshot{
		Employees: []*secondary.EmployeeRecord{
			{ID: "123456789", FirstName: "John", LastName: "Doe"},
			{ID: "234567890", FirstName: "Jane", LastName: "Doe", IsAdmin: true},
		},
		Shifts: []*secondary.ShiftRecord{
			{
				EmpID:      "123456789",
				Date:       "08/10/22",
				ShiftStart: "08:00:00",
				ShiftEnd:   "16:30:00",
				Breaks:     []*secondary.IntervalRecord{{Start: "10:00:00", End: "10:15:00"}},
				Lunches:    []*secondary.IntervalRecord{{Start: "12:00:00", End: "12:30:00"}},
			},
			{
				EmpID:      "123456789",
				Date:       "08/11/22",
				ShiftStart: "08:00:00",
				ShiftEnd:   "16:00:00",
				Breaks:     []*secondary.IntervalRecord{},
				Lunches:    []*secondary.IntervalRecord{{Start: "12:00:00", End: "12:30:00"}},
			},
			{
				EmpID:      "234567890",
				Date:       "08/12/22",
				ShiftStart: "08:00:00",
				ShiftEnd:   "16:00:00",
				Breaks:     []*secondary.IntervalRecord{{Start: "14:00:00", End: "14:15:00"}},
				Lunches:    []*secondary.IntervalRecord{},
			},
		},
	}
}
