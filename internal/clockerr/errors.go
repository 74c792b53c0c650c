// Package clockerr defines the error taxonomy shared by the time clock.
// This package has no internal dependencies to avoid import cycles.
package clockerr

import "errors"

var (
	// ErrNotFound is returned for an unknown employee or shift.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateShift is returned when a shift already exists for the date
	// or the employee already has an open shift.
	ErrDuplicateShift = errors.New("duplicate shift")
	// ErrAlreadyEnded is returned when the shift for the date is already closed.
	ErrAlreadyEnded = errors.New("shift already ended")
	// ErrNoActiveShift is returned when a punch requires an open shift.
	ErrNoActiveShift = errors.New("no active shift")
	// ErrAlreadyOnBreak is returned when a break is already open.
	ErrAlreadyOnBreak = errors.New("already on break")
	// ErrAlreadyAtLunch is returned when a lunch is already open.
	ErrAlreadyAtLunch = errors.New("already at lunch")
	// ErrNoOpenBreak is returned when ending a break that was never started.
	ErrNoOpenBreak = errors.New("no open break")
	// ErrNoOpenLunch is returned when ending a lunch that was never started.
	ErrNoOpenLunch = errors.New("no open lunch")
	// ErrInvalidInput is returned for blank or unparseable fields.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDuplicateEmployee is returned when registering an id that is taken.
	ErrDuplicateEmployee = errors.New("employee already exists")
	// ErrNotAdmin is returned when a non-admin attempts an admin operation.
	ErrNotAdmin = errors.New("admin privileges required")
	// ErrDataConsistency is returned when status and shift records disagree.
	ErrDataConsistency = errors.New("data consistency fault")
	// ErrCorruptStore is returned when the backing file cannot be trusted.
	ErrCorruptStore = errors.New("corrupt backing store")
)
