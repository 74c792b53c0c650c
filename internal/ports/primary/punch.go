package primary

import "context"

// PunchService defines the primary port for clock punches.
// Every operation validates, mutates and persists before returning.
type PunchService interface {
	// StartShift opens a shift for the employee on the date.
	StartShift(ctx context.Context, req PunchRequest) (*PunchResponse, error)

	// EndShift closes the employee's shift on the date.
	EndShift(ctx context.Context, req PunchRequest) (*PunchResponse, error)

	// StartBreak opens a break within the shift on the date.
	StartBreak(ctx context.Context, req PunchRequest) (*PunchResponse, error)

	// EndBreak closes the open break within the shift on the date.
	EndBreak(ctx context.Context, req PunchRequest) (*PunchResponse, error)

	// StartLunch opens a lunch within the shift on the date.
	StartLunch(ctx context.Context, req PunchRequest) (*PunchResponse, error)

	// EndLunch closes the open lunch within the shift on the date.
	EndLunch(ctx context.Context, req PunchRequest) (*PunchResponse, error)

	// Punch dispatches to the operation named by action.
	Punch(ctx context.Context, action string, req PunchRequest) (*PunchResponse, error)

	// AdjustPunch applies a punch with a caller-supplied date and time on
	// behalf of an admin actor. Validation is identical to a live punch.
	AdjustPunch(ctx context.Context, req AdjustPunchRequest) (*PunchResponse, error)
}

// PunchRequest contains parameters for a punch.
type PunchRequest struct {
	EmployeeID string
	Date       string
	Time       string
}

// AdjustPunchRequest contains parameters for an admin adjustment.
type AdjustPunchRequest struct {
	ActorID    string
	EmployeeID string
	Action     string
	Date       string
	Time       string
}

// PunchResponse contains the result of a punch.
type PunchResponse struct {
	Action   string
	Label    string // e.g. "SHIFT START"
	Date     string
	Time     string
	Employee *Employee // status after the punch
}
