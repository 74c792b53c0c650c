// Package punch contains the pure business logic for clock punches.
// This is part of the Functional Core - no I/O, only pure functions.
package punch

import (
	"fmt"

	"github.com/example/timeclock/internal/clockerr"
)

// ShiftState is the minimal view of a recorded shift needed to derive status.
type ShiftState struct {
	Date        string
	Closed      bool // shift_end is set
	OpenBreaks  int  // breaks with a start and no end
	OpenLunches int  // lunches with a start and no end
}

// Status is the position of an employee in the punch state machine.
// It is always derived from shift records, never stored on its own.
type Status struct {
	ShiftActive   bool
	OnBreak       bool
	AtLunch       bool
	OpenShiftDate string // date of the open shift, empty when none
}

// State names the state machine node the status corresponds to.
type State string

const (
	StateNoShift   State = "off_shift"
	StateShiftOpen State = "on_shift"
	StateOnBreak   State = "on_break"
	StateOnLunch   State = "at_lunch"
)

// State returns the state machine node for the status.
func (s Status) State() State {
	switch {
	case s.OnBreak:
		return StateOnBreak
	case s.AtLunch:
		return StateOnLunch
	case s.ShiftActive:
		return StateShiftOpen
	default:
		return StateNoShift
	}
}

// DeriveStatus computes an employee's status from all of their shifts.
// Rules:
// - At most one shift may be open
// - A shift holds at most one open break and one open lunch
// - Closed shifts hold no open break or lunch
func DeriveStatus(shifts []ShiftState) (Status, error) {
	var status Status
	for _, s := range shifts {
		if s.OpenBreaks > 1 || s.OpenLunches > 1 {
			return Status{}, fmt.Errorf("%w: shift on %s has %d open breaks and %d open lunches",
				clockerr.ErrDataConsistency, s.Date, s.OpenBreaks, s.OpenLunches)
		}
		if s.Closed {
			if s.OpenBreaks > 0 || s.OpenLunches > 0 {
				return Status{}, fmt.Errorf("%w: closed shift on %s has an open break or lunch",
					clockerr.ErrDataConsistency, s.Date)
			}
			continue
		}
		if status.ShiftActive {
			return Status{}, fmt.Errorf("%w: open shifts on both %s and %s",
				clockerr.ErrDataConsistency, status.OpenShiftDate, s.Date)
		}
		status = Status{
			ShiftActive:   true,
			OnBreak:       s.OpenBreaks == 1,
			AtLunch:       s.OpenLunches == 1,
			OpenShiftDate: s.Date,
		}
	}
	return status, nil
}
