package punch

import (
	"fmt"
	"strings"

	"github.com/example/timeclock/internal/clockerr"
)

// Action identifies a punch type.
type Action string

const (
	ActionStartShift Action = "start-shift"
	ActionEndShift   Action = "end-shift"
	ActionStartBreak Action = "start-break"
	ActionEndBreak   Action = "end-break"
	ActionStartLunch Action = "start-lunch"
	ActionEndLunch   Action = "end-lunch"
)

// Actions lists every punch action in menu order.
var Actions = []Action{
	ActionStartShift,
	ActionEndShift,
	ActionStartBreak,
	ActionEndBreak,
	ActionStartLunch,
	ActionEndLunch,
}

// ParseAction resolves a punch action from its name.
func ParseAction(name string) (Action, error) {
	for _, a := range Actions {
		if string(a) == strings.ToLower(strings.TrimSpace(name)) {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: unknown punch %q", clockerr.ErrInvalidInput, name)
}

var labels = map[Action]string{
	ActionStartShift: "SHIFT START",
	ActionEndShift:   "SHIFT END",
	ActionStartBreak: "BREAK START",
	ActionEndBreak:   "BREAK END",
	ActionStartLunch: "LUNCH START",
	ActionEndLunch:   "LUNCH END",
}

// Label returns the confirmation label printed after a punch.
func (a Action) Label() string {
	return labels[a]
}

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string // Human-readable reason (populated when not allowed)
	Err     error  // Sentinel from clockerr (populated when not allowed)
}

// Error returns the guard result as an error if not allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%w: %s", r.Err, r.Reason)
}

func deny(err error, format string, args ...any) GuardResult {
	return GuardResult{Allowed: false, Reason: fmt.Sprintf(format, args...), Err: err}
}

// PunchContext provides the context needed to evaluate a punch.
// Populated by the caller from the record store.
type PunchContext struct {
	EmployeeID     string
	Date           string
	Time           string
	Status         Status
	DayShiftExists bool
	DayShift       ShiftState // only meaningful when DayShiftExists
}

// dayShiftIsOpen reports whether the shift for the requested date is the
// employee's open shift.
func (c PunchContext) dayShiftIsOpen() bool {
	return c.DayShiftExists && !c.DayShift.Closed && c.Status.OpenShiftDate == c.Date
}

// CanPunch evaluates whether the action is legal in the given context.
func CanPunch(action Action, ctx PunchContext) GuardResult {
	if strings.TrimSpace(ctx.Date) == "" || strings.TrimSpace(ctx.Time) == "" {
		return deny(clockerr.ErrInvalidInput, "a punch needs both a date and a time")
	}

	switch action {
	case ActionStartShift:
		return CanStartShift(ctx)
	case ActionEndShift:
		return CanEndShift(ctx)
	case ActionStartBreak:
		return CanStartBreak(ctx)
	case ActionEndBreak:
		return CanEndBreak(ctx)
	case ActionStartLunch:
		return CanStartLunch(ctx)
	case ActionEndLunch:
		return CanEndLunch(ctx)
	default:
		return deny(clockerr.ErrInvalidInput, "unknown punch %q", action)
	}
}

// CanStartShift evaluates whether a shift can be started.
// Rules:
// - No shift may exist for the employee on the date
// - The employee may not already have an open shift
func CanStartShift(ctx PunchContext) GuardResult {
	if ctx.DayShiftExists {
		return deny(clockerr.ErrDuplicateShift, "employee %s already has a shift on %s", ctx.EmployeeID, ctx.Date)
	}
	if ctx.Status.ShiftActive {
		return deny(clockerr.ErrDuplicateShift, "employee %s already has an active shift (started %s)", ctx.EmployeeID, ctx.Status.OpenShiftDate)
	}
	return GuardResult{Allowed: true}
}

// CanEndShift evaluates whether a shift can be ended.
// Rules:
// - The employee must have an open shift
// - Break and lunch must be closed first
// - The shift for the date must exist and not already be ended
func CanEndShift(ctx PunchContext) GuardResult {
	if !ctx.Status.ShiftActive {
		return deny(clockerr.ErrNoActiveShift, "employee %s has no active shift", ctx.EmployeeID)
	}
	if ctx.Status.OnBreak {
		return deny(clockerr.ErrNoActiveShift, "employee %s is on break. End the break before ending the shift", ctx.EmployeeID)
	}
	if ctx.Status.AtLunch {
		return deny(clockerr.ErrNoActiveShift, "employee %s is at lunch. End the lunch before ending the shift", ctx.EmployeeID)
	}
	if !ctx.DayShiftExists {
		return deny(clockerr.ErrNoActiveShift, "employee %s has no shift on %s", ctx.EmployeeID, ctx.Date)
	}
	if ctx.DayShift.Closed {
		return deny(clockerr.ErrAlreadyEnded, "shift on %s for employee %s has already ended", ctx.Date, ctx.EmployeeID)
	}
	return GuardResult{Allowed: true}
}

// CanStartBreak evaluates whether a break can be started.
// Rules:
// - The employee may not already be on break or at lunch
// - The shift for the date must be the open shift
func CanStartBreak(ctx PunchContext) GuardResult {
	if ctx.Status.OnBreak {
		return deny(clockerr.ErrAlreadyOnBreak, "employee %s is already on break", ctx.EmployeeID)
	}
	if !ctx.Status.ShiftActive || !ctx.dayShiftIsOpen() {
		return deny(clockerr.ErrNoActiveShift, "employee %s has no active shift on %s", ctx.EmployeeID, ctx.Date)
	}
	if ctx.Status.AtLunch {
		return deny(clockerr.ErrAlreadyAtLunch, "employee %s is at lunch. End the lunch before starting a break", ctx.EmployeeID)
	}
	return GuardResult{Allowed: true}
}

// CanEndBreak evaluates whether a break can be ended.
// Rules:
// - The employee must be on break within the open shift for the date
func CanEndBreak(ctx PunchContext) GuardResult {
	if !ctx.Status.OnBreak || !ctx.Status.ShiftActive || !ctx.dayShiftIsOpen() {
		return deny(clockerr.ErrNoOpenBreak, "employee %s has no open break on %s", ctx.EmployeeID, ctx.Date)
	}
	return GuardResult{Allowed: true}
}

// CanStartLunch evaluates whether a lunch can be started.
// Rules:
// - The employee may not already be at lunch or on break
// - The shift for the date must be the open shift
func CanStartLunch(ctx PunchContext) GuardResult {
	if ctx.Status.AtLunch {
		return deny(clockerr.ErrAlreadyAtLunch, "employee %s is already at lunch", ctx.EmployeeID)
	}
	if !ctx.Status.ShiftActive || !ctx.dayShiftIsOpen() {
		return deny(clockerr.ErrNoActiveShift, "employee %s has no active shift on %s", ctx.EmployeeID, ctx.Date)
	}
	if ctx.Status.OnBreak {
		return deny(clockerr.ErrAlreadyOnBreak, "employee %s is on break. End the break before starting lunch", ctx.EmployeeID)
	}
	return GuardResult{Allowed: true}
}

// CanEndLunch evaluates whether a lunch can be ended.
// Rules:
// - The employee must be at lunch within the open shift for the date
func CanEndLunch(ctx PunchContext) GuardResult {
	if !ctx.Status.AtLunch || !ctx.Status.ShiftActive || !ctx.dayShiftIsOpen() {
		return deny(clockerr.ErrNoOpenLunch, "employee %s has no open lunch on %s", ctx.EmployeeID, ctx.Date)
	}
	return GuardResult{Allowed: true}
}

// AvailableActions returns the punches offered for a status, in menu order.
func AvailableActions(s Status) []Action {
	switch s.State() {
	case StateNoShift:
		return []Action{ActionStartShift}
	case StateOnBreak:
		return []Action{ActionEndBreak}
	case StateOnLunch:
		return []Action{ActionEndLunch}
	default:
		return []Action{ActionStartBreak, ActionStartLunch, ActionEndShift}
	}
}
