// Package employee contains the pure business logic for employee profiles.
// Guards are pure functions that evaluate preconditions without side effects.
package employee

import (
	"fmt"
	"strings"

	"github.com/example/timeclock/internal/clockerr"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
	Err     error
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%w: %s", r.Err, r.Reason)
}

// RegisterContext provides context for registration guards.
type RegisterContext struct {
	EmployeeID  string
	FirstName   string
	LastName    string
	IDTaken     bool
	GrantAdmin  bool // requested admin flag on the new profile
	ActorID     string
	ActorExists bool
	ActorAdmin  bool
}

// ProfileContext provides context for profile edit guards.
type ProfileContext struct {
	EmployeeID     string
	EmployeeExists bool
	FirstName      *string
	LastName       *string
	ActorID        string
	ActorAdmin     bool
}

// AdminContext provides context for admin-only operations.
type AdminContext struct {
	ActorID     string
	ActorExists bool
	ActorAdmin  bool
	Operation   string
}

// ReportContext provides context for shift report guards.
type ReportContext struct {
	ActorID     string
	ActorAdmin  bool
	TargetID    string
	TargetFound bool
}

// CanRegister evaluates whether an employee can be registered.
// Rules:
// - ID, first name and last name must not be blank
// - ID must not already be registered
// - Only an admin actor may grant the admin flag
func CanRegister(ctx RegisterContext) GuardResult {
	switch {
	case strings.TrimSpace(ctx.EmployeeID) == "":
		return GuardResult{Reason: "employee id must not be blank", Err: clockerr.ErrInvalidInput}
	case strings.TrimSpace(ctx.FirstName) == "":
		return GuardResult{Reason: "first name must not be blank", Err: clockerr.ErrInvalidInput}
	case strings.TrimSpace(ctx.LastName) == "":
		return GuardResult{Reason: "last name must not be blank", Err: clockerr.ErrInvalidInput}
	}

	if ctx.IDTaken {
		return GuardResult{
			Reason: fmt.Sprintf("employee %s is already registered", ctx.EmployeeID),
			Err:    clockerr.ErrDuplicateEmployee,
		}
	}

	if ctx.GrantAdmin {
		if r := CanAdminister(AdminContext{
			ActorID:     ctx.ActorID,
			ActorExists: ctx.ActorExists,
			ActorAdmin:  ctx.ActorAdmin,
			Operation:   "register an admin",
		}); !r.Allowed {
			return r
		}
	}

	return GuardResult{Allowed: true}
}

// CanAdminister evaluates whether the actor may perform an admin operation.
func CanAdminister(ctx AdminContext) GuardResult {
	if ctx.ActorID == "" || !ctx.ActorExists {
		return GuardResult{
			Reason: fmt.Sprintf("an admin must be signed in to %s", ctx.Operation),
			Err:    clockerr.ErrNotAdmin,
		}
	}
	if !ctx.ActorAdmin {
		return GuardResult{
			Reason: fmt.Sprintf("employee %s cannot %s", ctx.ActorID, ctx.Operation),
			Err:    clockerr.ErrNotAdmin,
		}
	}
	return GuardResult{Allowed: true}
}

// CanEditProfile evaluates whether a profile edit is allowed.
// Rules:
// - Actor must be an admin
// - Employee must exist
// - Provided names must not be blank
func CanEditProfile(ctx ProfileContext) GuardResult {
	if !ctx.ActorAdmin {
		return GuardResult{
			Reason: fmt.Sprintf("employee %s cannot edit profiles", ctx.ActorID),
			Err:    clockerr.ErrNotAdmin,
		}
	}
	if !ctx.EmployeeExists {
		return GuardResult{
			Reason: fmt.Sprintf("employee %s not found", ctx.EmployeeID),
			Err:    clockerr.ErrNotFound,
		}
	}
	if ctx.FirstName != nil && strings.TrimSpace(*ctx.FirstName) == "" {
		return GuardResult{Reason: "first name must not be blank", Err: clockerr.ErrInvalidInput}
	}
	if ctx.LastName != nil && strings.TrimSpace(*ctx.LastName) == "" {
		return GuardResult{Reason: "last name must not be blank", Err: clockerr.ErrInvalidInput}
	}
	return GuardResult{Allowed: true}
}

// CanViewReport evaluates whether the actor may view a shift report.
// Rules:
// - Employees may view their own report
// - Admins may view any existing employee's report
func CanViewReport(ctx ReportContext) GuardResult {
	if ctx.ActorID != ctx.TargetID && !ctx.ActorAdmin {
		return GuardResult{
			Reason: fmt.Sprintf("employee %s cannot view the report of employee %s", ctx.ActorID, ctx.TargetID),
			Err:    clockerr.ErrNotAdmin,
		}
	}
	if !ctx.TargetFound {
		return GuardResult{
			Reason: fmt.Sprintf("employee %s not found", ctx.TargetID),
			Err:    clockerr.ErrNotFound,
		}
	}
	return GuardResult{Allowed: true}
}
