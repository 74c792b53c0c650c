package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/timeclock/internal/ports/primary"
)

// EmployeeAdapter is a thin adapter that translates CLI operations to EmployeeService calls.
type EmployeeAdapter struct {
	service primary.EmployeeService
	out     io.Writer
}

// NewEmployeeAdapter creates a new EmployeeAdapter with the given service.
func NewEmployeeAdapter(service primary.EmployeeService, out io.Writer) *EmployeeAdapter {
	return &EmployeeAdapter{
		service: service,
		out:     out,
	}
}

// Register creates an employee and welcomes them.
func (a *EmployeeAdapter) Register(ctx context.Context, req primary.RegisterRequest) (*primary.Employee, error) {
	employee, err := a.service.Register(ctx, req)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "\nWelcome to the team, %s %s!\n\n", employee.FirstName, employee.LastName)
	if employee.IsAdmin {
		fmt.Fprintf(a.out, "  %s has admin rights\n", employee.ID)
	}
	return employee, nil
}

// Show displays one employee and their status.
func (a *EmployeeAdapter) Show(ctx context.Context, employeeID string) (*primary.Employee, error) {
	employee, err := a.service.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	fmt.Fprintf(a.out, "\nEmployee: %s\n", employee.ID)
	fmt.Fprintf(a.out, "Name:     %s %s\n", employee.FirstName, employee.LastName)
	fmt.Fprintf(a.out, "Status:   %s\n", describeState(employee))
	if employee.IsAdmin {
		fmt.Fprintf(a.out, "Role:     %s\n", color.New(color.FgHiMagenta).Sprint("admin"))
	}
	fmt.Fprintln(a.out)
	return employee, nil
}

// List lists all employees with their status.
func (a *EmployeeAdapter) List(ctx context.Context) error {
	employees, err := a.service.ListEmployees(ctx)
	if err != nil {
		return fmt.Errorf("failed to list employees: %w", err)
	}

	if len(employees) == 0 {
		fmt.Fprintln(a.out, "No employees found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-12s %-10s %-24s %s\n", "ID", "STATE", "NAME", "ROLE")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
	for _, e := range employees {
		role := ""
		if e.IsAdmin {
			role = "admin"
		}
		fmt.Fprintf(a.out, "%-12s %-10s %-24s %s\n", e.ID, e.State, e.FirstName+" "+e.LastName, role)
	}
	fmt.Fprintln(a.out)
	return nil
}

// Edit applies a profile update.
func (a *EmployeeAdapter) Edit(ctx context.Context, req primary.UpdateProfileRequest) (*primary.Employee, error) {
	employee, err := a.service.UpdateProfile(ctx, req)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "✓ Updated employee %s: %s %s (admin: %t)\n",
		employee.ID, employee.FirstName, employee.LastName, employee.IsAdmin)
	return employee, nil
}
