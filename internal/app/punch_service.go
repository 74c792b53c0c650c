package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/timeclock/internal/clockerr"
	coreemployee "github.com/example/timeclock/internal/core/employee"
	corepunch "github.com/example/timeclock/internal/core/punch"
	"github.com/example/timeclock/internal/ctxutil"
	"github.com/example/timeclock/internal/ports/primary"
	"github.com/example/timeclock/internal/ports/secondary"
)

// PunchServiceImpl implements the PunchService interface.
type PunchServiceImpl struct {
	ledger *Ledger
}

// NewPunchService creates a new PunchService with injected dependencies.
func NewPunchService(ledger *Ledger) *PunchServiceImpl {
	return &PunchServiceImpl{ledger: ledger}
}

// StartShift opens a shift for the employee on the date.
func (s *PunchServiceImpl) StartShift(ctx context.Context, req primary.PunchRequest) (*primary.PunchResponse, error) {
	return s.apply(ctx, corepunch.ActionStartShift, req, "")
}

// EndShift closes the employee's shift on the date.
func (s *PunchServiceImpl) EndShift(ctx context.Context, req primary.PunchRequest) (*primary.PunchResponse, error) {
	return s.apply(ctx, corepunch.ActionEndShift, req, "")
}

// StartBreak opens a break within the shift on the date.
func (s *PunchServiceImpl) StartBreak(ctx context.Context, req primary.PunchRequest) (*primary.PunchResponse, error) {
	return s.apply(ctx, corepunch.ActionStartBreak, req, "")
}

// EndBreak closes the open break within the shift on the date.
func (s *PunchServiceImpl) EndBreak(ctx context.Context, req primary.PunchRequest) (*primary.PunchResponse, error) {
	return s.apply(ctx, corepunch.ActionEndBreak, req, "")
}

// StartLunch opens a lunch within the shift on the date.
func (s *PunchServiceImpl) StartLunch(ctx context.Context, req primary.PunchRequest) (*primary.PunchResponse, error) {
	return s.apply(ctx, corepunch.ActionStartLunch, req, "")
}

// EndLunch closes the open lunch within the shift on the date.
func (s *PunchServiceImpl) EndLunch(ctx context.Context, req primary.PunchRequest) (*primary.PunchResponse, error) {
	return s.apply(ctx, corepunch.ActionEndLunch, req, "")
}

// Punch dispatches to the operation named by action.
func (s *PunchServiceImpl) Punch(ctx context.Context, action string, req primary.PunchRequest) (*primary.PunchResponse, error) {
	a, err := corepunch.ParseAction(action)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, a, req, "")
}

// AdjustPunch applies a punch with a caller-supplied date and time on behalf
// of an admin. The punch goes through exactly the same guards.
func (s *PunchServiceImpl) AdjustPunch(ctx context.Context, req primary.AdjustPunchRequest) (*primary.PunchResponse, error) {
	a, err := corepunch.ParseAction(req.Action)
	if err != nil {
		return nil, err
	}
	if req.ActorID == "" {
		return nil, fmt.Errorf("%w: an admin must be named to adjust punches", clockerr.ErrNotAdmin)
	}

	ctx = ctxutil.WithActor(ctx, req.ActorID)
	return s.apply(ctx, a, primary.PunchRequest{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Time:       req.Time,
	}, req.ActorID)
}

// apply validates and applies one punch inside a single ledger commit.
// adminID is set for adjustments and must name an admin.
func (s *PunchServiceImpl) apply(ctx context.Context, action corepunch.Action, req primary.PunchRequest, adminID string) (*primary.PunchResponse, error) {
	store := s.ledger.store
	var employee *primary.Employee

	err := s.ledger.commit(ctx, func() error {
		if adminID != "" {
			actor, err := store.FindEmployee(adminID)
			guard := coreemployee.CanAdminister(coreemployee.AdminContext{
				ActorID:     adminID,
				ActorExists: err == nil,
				ActorAdmin:  err == nil && actor.IsAdmin,
				Operation:   "adjust punches",
			})
			if err := guard.Error(); err != nil {
				return err
			}
		}

		record, err := store.FindEmployee(req.EmployeeID)
		if err != nil {
			return err
		}

		status, err := s.ledger.statusOf(record.ID)
		if err != nil {
			return err
		}

		dayShift, err := store.FindShift(record.ID, req.Date)
		if err != nil && !errors.Is(err, clockerr.ErrNotFound) {
			return err
		}

		pctx := corepunch.PunchContext{
			EmployeeID:     record.ID,
			Date:           req.Date,
			Time:           req.Time,
			Status:         status,
			DayShiftExists: dayShift != nil,
		}
		if dayShift != nil {
			pctx.DayShift = dayShift.PunchState()
		}
		if err := corepunch.CanPunch(action, pctx).Error(); err != nil {
			return err
		}

		if err := s.mutate(action, record.ID, dayShift, req); err != nil {
			return err
		}

		after, err := s.ledger.statusOf(record.ID)
		if err != nil {
			return err
		}
		employee = recordToEmployee(record, after)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.ledger.record(ctx, &secondary.JournalRecord{
		EmployeeID: req.EmployeeID,
		Action:     string(action),
		WorkDate:   req.Date,
		PunchTime:  req.Time,
		Adjusted:   adminID != "",
	})

	return &primary.PunchResponse{
		Action:   string(action),
		Label:    action.Label(),
		Date:     req.Date,
		Time:     req.Time,
		Employee: employee,
	}, nil
}

// mutate writes an already-validated punch into the record store.
func (s *PunchServiceImpl) mutate(action corepunch.Action, empID string, dayShift *secondary.ShiftRecord, req primary.PunchRequest) error {
	switch action {
	case corepunch.ActionStartShift:
		return s.ledger.store.AddShift(&secondary.ShiftRecord{
			EmpID:      empID,
			Date:       req.Date,
			ShiftStart: req.Time,
			Breaks:     []*secondary.IntervalRecord{},
			Lunches:    []*secondary.IntervalRecord{},
		})
	case corepunch.ActionEndShift:
		dayShift.ShiftEnd = req.Time
	case corepunch.ActionStartBreak:
		dayShift.Breaks = append(dayShift.Breaks, &secondary.IntervalRecord{Start: req.Time})
	case corepunch.ActionEndBreak:
		open := findOpen(dayShift.Breaks)
		if open == nil {
			return fmt.Errorf("%w: employee %s is on break but the shift on %s has no open break",
				clockerr.ErrDataConsistency, empID, req.Date)
		}
		open.End = req.Time
	case corepunch.ActionStartLunch:
		dayShift.Lunches = append(dayShift.Lunches, &secondary.IntervalRecord{Start: req.Time})
	case corepunch.ActionEndLunch:
		open := findOpen(dayShift.Lunches)
		if open == nil {
			return fmt.Errorf("%w: employee %s is at lunch but the shift on %s has no open lunch",
				clockerr.ErrDataConsistency, empID, req.Date)
		}
		open.End = req.Time
	default:
		return fmt.Errorf("%w: unknown punch %q", clockerr.ErrInvalidInput, action)
	}
	return nil
}

// findOpen returns the single open interval, or nil.
func findOpen(intervals []*secondary.IntervalRecord) *secondary.IntervalRecord {
	for _, i := range intervals {
		if i.IsOpen() {
			return i
		}
	}
	return nil
}

// Ensure PunchServiceImpl implements the interface.
var _ primary.PunchService = (*PunchServiceImpl)(nil)
