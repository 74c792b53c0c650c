package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/timeclock/internal/adapters/memory"
	"github.com/example/timeclock/internal/ports/secondary"
)

const (
	johnID = "123456789" // regular employee
	janeID = "234567890" // admin
)

// Ensure mocks implement the interfaces
var (
	_ secondary.SnapshotGateway   = (*mockGateway)(nil)
	_ secondary.JournalRepository = (*mockJournalRepository)(nil)
	_ secondary.ShiftExporter     = (*mockShiftExporter)(nil)
)

// mockGateway implements secondary.SnapshotGateway for testing.
type mockGateway struct {
	saved   []*secondary.Snapshot
	saveErr error
}

func (m *mockGateway) Load(ctx context.Context) (*secondary.Snapshot, error) {
	if len(m.saved) == 0 {
		return &secondary.Snapshot{}, nil
	}
	return m.saved[len(m.saved)-1], nil
}

func (m *mockGateway) Save(ctx context.Context, snap *secondary.Snapshot) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, snap)
	return nil
}

// mockJournalRepository implements secondary.JournalRepository for testing.
type mockJournalRepository struct {
	entries   []*secondary.JournalRecord
	appendErr error
	listErr   error
}

func (m *mockJournalRepository) Append(ctx context.Context, entry *secondary.JournalRecord) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockJournalRepository) List(ctx context.Context, filters secondary.JournalFilters) ([]*secondary.JournalRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.JournalRecord
	for i := len(m.entries) - 1; i >= 0; i-- {
		e := m.entries[i]
		if filters.EmployeeID != "" && e.EmployeeID != filters.EmployeeID {
			continue
		}
		if filters.Action != "" && e.Action != filters.Action {
			continue
		}
		result = append(result, e)
	}
	if filters.Limit > 0 && len(result) > filters.Limit {
		result = result[:filters.Limit]
	}
	return result, nil
}

// mockShiftExporter implements secondary.ShiftExporter for testing.
type mockShiftExporter struct {
	path      string
	employee  *secondary.EmployeeRecord
	shifts    []*secondary.ShiftRecord
	exportErr error
}

func (m *mockShiftExporter) ExportShifts(ctx context.Context, path string, employee *secondary.EmployeeRecord, shifts []*secondary.ShiftRecord) error {
	if m.exportErr != nil {
		return m.exportErr
	}
	m.path = path
	m.employee = employee
	m.shifts = shifts
	return nil
}

// testFixture wires services over a real in-memory store and mock ports.
type testFixture struct {
	store     *memory.RecordStore
	gateway   *mockGateway
	journal   *mockJournalRepository
	exporter  *mockShiftExporter
	punches   *PunchServiceImpl
	employees *EmployeeServiceImpl
	reports   *ReportServiceImpl
}

func newTestFixture(t *testing.T) *testFixture {
	t.Helper()

	store := memory.NewRecordStore(&secondary.Snapshot{
		Employees: []*secondary.EmployeeRecord{
			{ID: johnID, FirstName: "John", LastName: "Doe"},
			{ID: janeID, FirstName: "Jane", LastName: "Doe", IsAdmin: true},
		},
		Shifts: []*secondary.ShiftRecord{
			{EmpID: johnID, Date: "08/10/22", ShiftStart: "08:00:00", ShiftEnd: "16:30:00",
				Breaks:  []*secondary.IntervalRecord{{Start: "10:00:00", End: "10:15:00"}},
				Lunches: []*secondary.IntervalRecord{{Start: "12:00:00", End: "12:30:00"}}},
		},
	})
	gateway := &mockGateway{}
	journal := &mockJournalRepository{}
	exporter := &mockShiftExporter{}
	ledger := NewLedger(store, gateway, journal)

	return &testFixture{
		store:     store,
		gateway:   gateway,
		journal:   journal,
		exporter:  exporter,
		punches:   NewPunchService(ledger),
		employees: NewEmployeeService(ledger),
		reports:   NewReportService(ledger, exporter),
	}
}

func assertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("expected error %v, got %v", target, err)
	}
}
