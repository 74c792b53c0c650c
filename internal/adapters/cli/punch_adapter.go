// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle argument parsing and output
// formatting, but delegate business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/timeclock/internal/ports/primary"
)

// PunchAdapter is a thin adapter that translates CLI operations to PunchService calls.
type PunchAdapter struct {
	service primary.PunchService
	out     io.Writer
}

// NewPunchAdapter creates a new PunchAdapter with the given service.
func NewPunchAdapter(service primary.PunchService, out io.Writer) *PunchAdapter {
	return &PunchAdapter{
		service: service,
		out:     out,
	}
}

// Punch records a punch for the employee. A non-empty actorID makes it an
// admin adjustment.
func (a *PunchAdapter) Punch(ctx context.Context, action, employeeID, date, clock, actorID string) (*primary.PunchResponse, error) {
	var (
		resp *primary.PunchResponse
		err  error
	)
	if actorID != "" {
		resp, err = a.service.AdjustPunch(ctx, primary.AdjustPunchRequest{
			ActorID:    actorID,
			EmployeeID: employeeID,
			Action:     action,
			Date:       date,
			Time:       clock,
		})
	} else {
		resp, err = a.service.Punch(ctx, action, primary.PunchRequest{
			EmployeeID: employeeID,
			Date:       date,
			Time:       clock,
		})
	}
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "\n%s\n\n", Confirmation(resp))
	if actorID != "" {
		fmt.Fprintf(a.out, "  (adjusted by %s for employee %s)\n", actorID, employeeID)
	}
	return resp, nil
}

// Confirmation renders a punch as e.g. "SHIFT START: 08/10/22 at 08:00:00."
func Confirmation(resp *primary.PunchResponse) string {
	return fmt.Sprintf("%s: %s at %s.", color.New(color.FgHiGreen).Sprint(resp.Label), resp.Date, resp.Time)
}

// describeState renders an employee's derived status in words.
func describeState(e *primary.Employee) string {
	switch {
	case e.OnBreak:
		return color.New(color.FgYellow).Sprint("on break")
	case e.AtLunch:
		return color.New(color.FgYellow).Sprint("at lunch")
	case e.ShiftActive:
		return color.New(color.FgHiGreen).Sprintf("on shift since %s", e.OpenShiftDate)
	default:
		return color.New(color.FgHiBlack).Sprint("off shift")
	}
}
