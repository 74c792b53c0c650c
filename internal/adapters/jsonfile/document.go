package jsonfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/example/timeclock/internal/ports/secondary"
)

// document is the on-disk shape of the backing file.
type document struct {
	Employees []employeeDoc `json:"employees"`
	Shifts    []shiftDoc    `json:"shifts"`
}

type employeeDoc struct {
	ID          token  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	IsAdmin     bool   `json:"is_admin"`
	ShiftActive bool   `json:"shift_active"`
	OnBreak     bool   `json:"on_break"`
	AtLunch     bool   `json:"at_lunch"`
}

type shiftDoc struct {
	EmpID      token      `json:"emp_id"`
	Date       string     `json:"date"`
	ShiftStart string     `json:"shift_start"`
	ShiftEnd   *string    `json:"shift_end"`
	Breaks     []breakDoc `json:"breaks"`
	Lunches    []lunchDoc `json:"lunches"`
}

type breakDoc struct {
	Start *string `json:"break_start"`
	End   *string `json:"break_end"`
}

type lunchDoc struct {
	Start *string `json:"lunch_start"`
	End   *string `json:"lunch_end"`
}

// token is an opaque identifier. Numbers are accepted on read and kept
// verbatim; tokens are always written as strings.
type token string

func (t *token) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] != '"' {
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("id must be a string or a number: %w", err)
		}
		*t = token(n.String())
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = token(s)
	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// fromSnapshot builds the document, materialising the derived status flags.
func fromSnapshot(snap *secondary.Snapshot) (*document, error) {
	doc := &document{
		Employees: make([]employeeDoc, 0, len(snap.Employees)),
		Shifts:    make([]shiftDoc, 0, len(snap.Shifts)),
	}

	byEmployee := make(map[string][]*secondary.ShiftRecord)
	for _, sh := range snap.Shifts {
		byEmployee[sh.EmpID] = append(byEmployee[sh.EmpID], sh)

		sd := shiftDoc{
			EmpID:      token(sh.EmpID),
			Date:       sh.Date,
			ShiftStart: sh.ShiftStart,
			ShiftEnd:   nullable(sh.ShiftEnd),
			Breaks:     make([]breakDoc, 0, len(sh.Breaks)),
			Lunches:    make([]lunchDoc, 0, len(sh.Lunches)),
		}
		for _, b := range sh.Breaks {
			sd.Breaks = append(sd.Breaks, breakDoc{Start: nullable(b.Start), End: nullable(b.End)})
		}
		for _, l := range sh.Lunches {
			sd.Lunches = append(sd.Lunches, lunchDoc{Start: nullable(l.Start), End: nullable(l.End)})
		}
		doc.Shifts = append(doc.Shifts, sd)
	}

	for _, e := range snap.Employees {
		status, err := secondary.StatusOf(byEmployee[e.ID])
		if err != nil {
			return nil, fmt.Errorf("employee %s: %w", e.ID, err)
		}
		doc.Employees = append(doc.Employees, employeeDoc{
			ID:          token(e.ID),
			FirstName:   e.FirstName,
			LastName:    e.LastName,
			IsAdmin:     e.IsAdmin,
			ShiftActive: status.ShiftActive,
			OnBreak:     status.OnBreak,
			AtLunch:     status.AtLunch,
		})
	}
	return doc, nil
}

// toSnapshot validates the document and converts it to typed records.
// Rules:
// - Employee ids are non-blank and unique
// - Shifts reference a known employee, carry a date and a start, and are
//   unique per (emp_id, date)
// - Breaks and lunches carry a start
// - Stored status flags agree with the flags derived from the shifts
func (d *document) toSnapshot() (*secondary.Snapshot, error) {
	snap := &secondary.Snapshot{
		Employees: make([]*secondary.EmployeeRecord, 0, len(d.Employees)),
		Shifts:    make([]*secondary.ShiftRecord, 0, len(d.Shifts)),
	}

	known := make(map[string]bool, len(d.Employees))
	for i, e := range d.Employees {
		id := string(e.ID)
		if strings.TrimSpace(id) == "" {
			return nil, fmt.Errorf("employee #%d has no id", i+1)
		}
		if known[id] {
			return nil, fmt.Errorf("employee %s appears more than once", id)
		}
		known[id] = true
		snap.Employees = append(snap.Employees, &secondary.EmployeeRecord{
			ID:        id,
			FirstName: e.FirstName,
			LastName:  e.LastName,
			IsAdmin:   e.IsAdmin,
		})
	}

	type shiftKey struct{ emp, date string }
	seen := make(map[shiftKey]bool, len(d.Shifts))
	byEmployee := make(map[string][]*secondary.ShiftRecord)
	for i, s := range d.Shifts {
		empID := string(s.EmpID)
		switch {
		case !known[empID]:
			return nil, fmt.Errorf("shift #%d references unknown employee %q", i+1, s.EmpID)
		case strings.TrimSpace(s.Date) == "":
			return nil, fmt.Errorf("shift #%d for employee %s has no date", i+1, s.EmpID)
		case strings.TrimSpace(s.ShiftStart) == "":
			return nil, fmt.Errorf("shift on %s for employee %s has no start", s.Date, s.EmpID)
		}
		key := shiftKey{empID, s.Date}
		if seen[key] {
			return nil, fmt.Errorf("employee %s has more than one shift on %s", s.EmpID, s.Date)
		}
		seen[key] = true

		record := &secondary.ShiftRecord{
			EmpID:      empID,
			Date:       s.Date,
			ShiftStart: s.ShiftStart,
			ShiftEnd:   deref(s.ShiftEnd),
			Breaks:     make([]*secondary.IntervalRecord, 0, len(s.Breaks)),
			Lunches:    make([]*secondary.IntervalRecord, 0, len(s.Lunches)),
		}
		for _, b := range s.Breaks {
			if deref(b.Start) == "" {
				return nil, fmt.Errorf("break without a start in shift on %s for employee %s", s.Date, s.EmpID)
			}
			record.Breaks = append(record.Breaks, &secondary.IntervalRecord{Start: *b.Start, End: deref(b.End)})
		}
		for _, l := range s.Lunches {
			if deref(l.Start) == "" {
				return nil, fmt.Errorf("lunch without a start in shift on %s for employee %s", s.Date, s.EmpID)
			}
			record.Lunches = append(record.Lunches, &secondary.IntervalRecord{Start: *l.Start, End: deref(l.End)})
		}
		snap.Shifts = append(snap.Shifts, record)
		byEmployee[empID] = append(byEmployee[empID], record)
	}

	for _, e := range d.Employees {
		status, err := secondary.StatusOf(byEmployee[string(e.ID)])
		if err != nil {
			return nil, fmt.Errorf("employee %s: %w", e.ID, err)
		}
		if status.ShiftActive != e.ShiftActive || status.OnBreak != e.OnBreak || status.AtLunch != e.AtLunch {
			return nil, fmt.Errorf("employee %s status flags (shift_active=%t on_break=%t at_lunch=%t) disagree with recorded shifts",
				e.ID, e.ShiftActive, e.OnBreak, e.AtLunch)
		}
	}

	return snap, nil
}
