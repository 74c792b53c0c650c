package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/timeclock/internal/clockerr"
	"github.com/example/timeclock/internal/ports/secondary"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestGateway_LoadSeedsAbsentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "time_clock_data.json")
	g := NewGateway(path)

	snap, err := g.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(snap.Employees) != 2 {
		t.Fatalf("expected 2 seeded employees, got %d", len(snap.Employees))
	}
	if snap.Employees[0].ID != "123456789" || snap.Employees[1].ID != "234567890" {
		t.Errorf("unexpected seeded ids: %s, %s", snap.Employees[0].ID, snap.Employees[1].ID)
	}
	if len(snap.Shifts) != 3 {
		t.Errorf("expected 3 seeded shifts, got %d", len(snap.Shifts))
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected seed to be written to %s: %v", path, err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temporary file should not remain, stat err = %v", err)
	}
}

func TestGateway_LoadSeedsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "time_clock_data.json")
	writeFile(t, path, "  \n")

	snap, err := NewGateway(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(snap.Employees) != 2 {
		t.Errorf("expected seed data, got %d employees", len(snap.Employees))
	}
}

func TestGateway_SeedIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "time_clock_data.json")
	g := NewGateway(path)

	if _, err := g.Load(context.Background()); err != nil {
		t.Fatalf("first Load failed: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read seeded file: %v", err)
	}

	if _, err := g.Load(context.Background()); err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}

	if string(first) != string(second) {
		t.Error("loading an existing file must not rewrite it")
	}
}

func TestGateway_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "time_clock_data.json")
	g := NewGateway(path)

	want := &secondary.Snapshot{
		Employees: []*secondary.EmployeeRecord{
			{ID: "1", FirstName: "Ann", LastName: "Lee", IsAdmin: true},
			{ID: "2", FirstName: "Bo", LastName: "Kim"},
		},
		Shifts: []*secondary.ShiftRecord{
			{EmpID: "1", Date: "08/13/22", ShiftStart: "08:00:00", ShiftEnd: "16:00:00",
				Breaks:  []*secondary.IntervalRecord{{Start: "10:00:00", End: "10:15:00"}},
				Lunches: []*secondary.IntervalRecord{}},
			{EmpID: "2", Date: "08/13/22", ShiftStart: "09:00:00",
				Breaks:  []*secondary.IntervalRecord{},
				Lunches: []*secondary.IntervalRecord{{Start: "12:00:00"}}},
		},
	}

	if err := g.Save(context.Background(), want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := g.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(got.Employees) != 2 || *got.Employees[0] != *want.Employees[0] || *got.Employees[1] != *want.Employees[1] {
		t.Errorf("employees did not round-trip: %+v", got.Employees)
	}
	if len(got.Shifts) != 2 {
		t.Fatalf("expected 2 shifts, got %d", len(got.Shifts))
	}
	open := got.Shifts[1]
	if open.ShiftEnd != "" || len(open.Lunches) != 1 || open.Lunches[0].End != "" {
		t.Errorf("open shift did not round-trip: %+v", open)
	}
	if got.Shifts[0].Breaks[0].End != "10:15:00" {
		t.Errorf("closed break did not round-trip: %+v", got.Shifts[0].Breaks[0])
	}
}

func TestGateway_SaveWritesDerivedFlagsAndNulls(t *testing.T) {
	path := filepath.Join(t.TempDir(), "time_clock_data.json")
	g := NewGateway(path)

	snap := &secondary.Snapshot{
		Employees: []*secondary.EmployeeRecord{{ID: "1", FirstName: "Ann", LastName: "Lee"}},
		Shifts: []*secondary.ShiftRecord{
			{EmpID: "1", Date: "08/13/22", ShiftStart: "08:00:00",
				Breaks: []*secondary.IntervalRecord{{Start: "10:00:00"}}},
		},
	}
	if err := g.Save(context.Background(), snap); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}

	var raw map[string][]map[string]any
	if err := json.Unmarshal(content, &raw); err != nil {
		t.Fatalf("saved file is not valid JSON: %v", err)
	}

	emp := raw["employees"][0]
	if emp["shift_active"] != true || emp["on_break"] != true || emp["at_lunch"] != false {
		t.Errorf("expected derived flags on employee, got %v", emp)
	}

	shift := raw["shifts"][0]
	if v, ok := shift["shift_end"]; !ok || v != nil {
		t.Errorf("expected shift_end null, got %v (present=%v)", v, ok)
	}
	lunches, ok := shift["lunches"].([]any)
	if !ok || len(lunches) != 0 {
		t.Errorf("expected empty lunches array, got %v", shift["lunches"])
	}
	brk := shift["breaks"].([]any)[0].(map[string]any)
	if brk["break_start"] != "10:00:00" || brk["break_end"] != nil {
		t.Errorf("unexpected break document: %v", brk)
	}
}

func TestGateway_LoadAcceptsNumericIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "time_clock_data.json")
	writeFile(t, path, `{
    "employees": [
        {"id": 123456789, "first_name": "John", "last_name": "Doe", "shift_active": true, "on_break": false, "at_lunch": false, "shifts": []}
    ],
    "shifts": [
        {"emp_id": 123456789, "date": "08/13/22", "shift_start": "08:00:00", "shift_end": null, "breaks": [], "lunches": []}
    ]
}`)

	snap, err := NewGateway(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if snap.Employees[0].ID != "123456789" {
		t.Errorf("ID = %q, want 123456789", snap.Employees[0].ID)
	}
	if snap.Shifts[0].EmpID != "123456789" || snap.Shifts[0].ShiftEnd != "" {
		t.Errorf("unexpected shift: %+v", snap.Shifts[0])
	}
}

func TestGateway_LoadRejectsCorruptFiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
		reason  string
	}{
		{
			name:    "malformed json",
			content: `{"employees": [`,
			reason:  "failed to parse",
		},
		{
			name: "duplicate employee",
			content: `{"employees": [
				{"id": "1", "first_name": "A", "last_name": "B"},
				{"id": "1", "first_name": "C", "last_name": "D"}], "shifts": []}`,
			reason: "more than once",
		},
		{
			name: "shift for unknown employee",
			content: `{"employees": [{"id": "1", "first_name": "A", "last_name": "B"}],
				"shifts": [{"emp_id": "2", "date": "08/13/22", "shift_start": "08:00:00", "shift_end": "16:00:00", "breaks": [], "lunches": []}]}`,
			reason: "unknown employee",
		},
		{
			name: "two shifts on one date",
			content: `{"employees": [{"id": "1", "first_name": "A", "last_name": "B"}],
				"shifts": [
					{"emp_id": "1", "date": "08/13/22", "shift_start": "08:00:00", "shift_end": "09:00:00", "breaks": [], "lunches": []},
					{"emp_id": "1", "date": "08/13/22", "shift_start": "10:00:00", "shift_end": "11:00:00", "breaks": [], "lunches": []}]}`,
			reason: "more than one shift",
		},
		{
			name: "flags disagree with shifts",
			content: `{"employees": [{"id": "1", "first_name": "A", "last_name": "B", "shift_active": true}],
				"shifts": []}`,
			reason: "disagree",
		},
		{
			name: "two open breaks",
			content: `{"employees": [{"id": "1", "first_name": "A", "last_name": "B", "shift_active": true, "on_break": true}],
				"shifts": [{"emp_id": "1", "date": "08/13/22", "shift_start": "08:00:00", "shift_end": null,
					"breaks": [{"break_start": "09:00:00", "break_end": null}, {"break_start": "10:00:00", "break_end": null}], "lunches": []}]}`,
			reason: "open breaks",
		},
		{
			name: "break without a start",
			content: `{"employees": [{"id": "1", "first_name": "A", "last_name": "B"}],
				"shifts": [{"emp_id": "1", "date": "08/13/22", "shift_start": "08:00:00", "shift_end": "16:00:00",
					"breaks": [{"break_start": null, "break_end": "10:00:00"}], "lunches": []}]}`,
			reason: "break without a start",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "time_clock_data.json")
			writeFile(t, path, tt.content)

			_, err := NewGateway(path).Load(context.Background())
			if !errors.Is(err, clockerr.ErrCorruptStore) {
				t.Fatalf("expected ErrCorruptStore, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.reason) {
				t.Errorf("error %q should mention %q", err.Error(), tt.reason)
			}

			content, _ := os.ReadFile(path)
			if string(content) != tt.content {
				t.Error("a corrupt file must never be overwritten")
			}
		})
	}
}

func TestSeedSnapshot_IsConsistent(t *testing.T) {
	snap := SeedSnapshot()

	doc, err := fromSnapshot(snap)
	if err != nil {
		t.Fatalf("fromSnapshot failed: %v", err)
	}
	if _, err := doc.toSnapshot(); err != nil {
		t.Fatalf("seed data does not validate: %v", err)
	}

	for _, e := range doc.Employees {
		if e.ShiftActive || e.OnBreak || e.AtLunch {
			t.Errorf("seeded employee %s should be off shift", e.ID)
		}
	}
}
