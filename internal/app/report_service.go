package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/timeclock/internal/clockerr"
	coreemployee "github.com/example/timeclock/internal/core/employee"
	"github.com/example/timeclock/internal/ports/primary"
	"github.com/example/timeclock/internal/ports/secondary"
)

// ReportServiceImpl implements the ReportService interface.
type ReportServiceImpl struct {
	ledger   *Ledger
	exporter secondary.ShiftExporter
}

// NewReportService creates a new ReportService with injected dependencies.
func NewReportService(ledger *Ledger, exporter secondary.ShiftExporter) *ReportServiceImpl {
	return &ReportServiceImpl{
		ledger:   ledger,
		exporter: exporter,
	}
}

// ShiftReport retrieves every shift recorded for an employee.
func (s *ReportServiceImpl) ShiftReport(ctx context.Context, req primary.ShiftReportRequest) (*primary.ShiftReport, error) {
	var report *primary.ShiftReport
	err := s.ledger.read(func() error {
		record, shifts, err := s.collect(req)
		if err != nil {
			return err
		}
		status, err := secondary.StatusOf(shifts)
		if err != nil {
			return err
		}

		report = &primary.ShiftReport{
			Employee: recordToEmployee(record, status),
			Shifts:   make([]*primary.Shift, len(shifts)),
		}
		for i, sh := range shifts {
			report.Shifts[i] = recordToShift(sh)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// ExportShiftReport writes the shift report to a spreadsheet file.
func (s *ReportServiceImpl) ExportShiftReport(ctx context.Context, req primary.ShiftReportRequest, path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: export path must not be blank", clockerr.ErrInvalidInput)
	}
	if s.exporter == nil {
		return fmt.Errorf("no shift exporter configured")
	}

	return s.ledger.read(func() error {
		record, shifts, err := s.collect(req)
		if err != nil {
			return err
		}
		if err := s.exporter.ExportShifts(ctx, path, record, shifts); err != nil {
			return fmt.Errorf("failed to export shift report: %w", err)
		}
		return nil
	})
}

// collect resolves the target employee and their shifts after the view guard.
// Must be called while holding the ledger lock.
func (s *ReportServiceImpl) collect(req primary.ShiftReportRequest) (*secondary.EmployeeRecord, []*secondary.ShiftRecord, error) {
	store := s.ledger.store

	actor, actorErr := store.FindEmployee(req.ActorID)
	target, targetErr := store.FindEmployee(req.EmployeeID)
	guard := coreemployee.CanViewReport(coreemployee.ReportContext{
		ActorID:     req.ActorID,
		ActorAdmin:  actorErr == nil && actor.IsAdmin,
		TargetID:    req.EmployeeID,
		TargetFound: targetErr == nil,
	})
	if err := guard.Error(); err != nil {
		return nil, nil, err
	}

	return target, store.ShiftsFor(target.ID), nil
}

func recordToShift(sh *secondary.ShiftRecord) *primary.Shift {
	shift := &primary.Shift{
		Date:    sh.Date,
		Start:   sh.ShiftStart,
		End:     sh.ShiftEnd,
		Breaks:  make([]primary.Interval, len(sh.Breaks)),
		Lunches: make([]primary.Interval, len(sh.Lunches)),
	}
	for i, b := range sh.Breaks {
		shift.Breaks[i] = primary.Interval{Start: b.Start, End: b.End}
	}
	for i, l := range sh.Lunches {
		shift.Lunches[i] = primary.Interval{Start: l.Start, End: l.End}
	}
	return shift
}

// Ensure ReportServiceImpl implements the interface.
var _ primary.ReportService = (*ReportServiceImpl)(nil)
