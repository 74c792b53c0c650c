package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/timeclock/internal/clockerr"
	"github.com/example/timeclock/internal/ports/primary"
)

func TestReportService_ShiftReport(t *testing.T) {
	f := newTestFixture(t)

	report, err := f.reports.ShiftReport(context.Background(), primary.ShiftReportRequest{
		ActorID:    johnID,
		EmployeeID: johnID,
	})
	if err != nil {
		t.Fatalf("ShiftReport failed: %v", err)
	}

	if report.Employee.ID != johnID {
		t.Errorf("Employee.ID = %q, want %q", report.Employee.ID, johnID)
	}
	if len(report.Shifts) != 1 {
		t.Fatalf("expected 1 shift, got %d", len(report.Shifts))
	}

	sh := report.Shifts[0]
	if sh.Date != "08/10/22" || sh.Start != "08:00:00" || sh.End != "16:30:00" {
		t.Errorf("unexpected shift: %+v", sh)
	}
	if len(sh.Breaks) != 1 || sh.Breaks[0] != (primary.Interval{Start: "10:00:00", End: "10:15:00"}) {
		t.Errorf("unexpected breaks: %+v", sh.Breaks)
	}
	if len(sh.Lunches) != 1 || sh.Lunches[0].End != "12:30:00" {
		t.Errorf("unexpected lunches: %+v", sh.Lunches)
	}
}

func TestReportService_ShiftReportAccess(t *testing.T) {
	tests := []struct {
		name     string
		actorID  string
		targetID string
		wantErr  error
	}{
		{"self", johnID, johnID, nil},
		{"admin views other", janeID, johnID, nil},
		{"non-admin views other", johnID, janeID, clockerr.ErrNotAdmin},
		{"unknown target", janeID, "999", clockerr.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFixture(t)

			_, err := f.reports.ShiftReport(context.Background(), primary.ShiftReportRequest{
				ActorID:    tt.actorID,
				EmployeeID: tt.targetID,
			})
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ShiftReport failed: %v", err)
				}
				return
			}
			assertErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReportService_ShiftReportWithoutShifts(t *testing.T) {
	f := newTestFixture(t)

	report, err := f.reports.ShiftReport(context.Background(), primary.ShiftReportRequest{
		ActorID:    janeID,
		EmployeeID: janeID,
	})
	if err != nil {
		t.Fatalf("ShiftReport failed: %v", err)
	}
	if len(report.Shifts) != 0 {
		t.Errorf("expected no shifts, got %d", len(report.Shifts))
	}
}

func TestReportService_ExportShiftReport(t *testing.T) {
	f := newTestFixture(t)

	err := f.reports.ExportShiftReport(context.Background(), primary.ShiftReportRequest{
		ActorID:    janeID,
		EmployeeID: johnID,
	}, "john.xlsx")
	if err != nil {
		t.Fatalf("ExportShiftReport failed: %v", err)
	}

	if f.exporter.path != "john.xlsx" {
		t.Errorf("path = %q, want john.xlsx", f.exporter.path)
	}
	if f.exporter.employee.ID != johnID || len(f.exporter.shifts) != 1 {
		t.Errorf("unexpected export: employee=%+v shifts=%d", f.exporter.employee, len(f.exporter.shifts))
	}
}

func TestReportService_ExportShiftReportErrors(t *testing.T) {
	t.Run("blank path", func(t *testing.T) {
		f := newTestFixture(t)
		err := f.reports.ExportShiftReport(context.Background(), primary.ShiftReportRequest{ActorID: johnID, EmployeeID: johnID}, " ")
		assertErrorIs(t, err, clockerr.ErrInvalidInput)
	})

	t.Run("access denied", func(t *testing.T) {
		f := newTestFixture(t)
		err := f.reports.ExportShiftReport(context.Background(), primary.ShiftReportRequest{ActorID: johnID, EmployeeID: janeID}, "jane.xlsx")
		assertErrorIs(t, err, clockerr.ErrNotAdmin)
		if f.exporter.path != "" {
			t.Error("exporter must not run when access is denied")
		}
	})

	t.Run("exporter failure", func(t *testing.T) {
		f := newTestFixture(t)
		boom := errors.New("permission denied")
		f.exporter.exportErr = boom
		err := f.reports.ExportShiftReport(context.Background(), primary.ShiftReportRequest{ActorID: johnID, EmployeeID: johnID}, "john.xlsx")
		assertErrorIs(t, err, boom)
	})
}
