package primary

import "context"

// EmployeeService defines the primary port for employee operations.
type EmployeeService interface {
	// Register creates a new employee profile.
	Register(ctx context.Context, req RegisterRequest) (*Employee, error)

	// GetEmployee retrieves an employee and their derived status.
	GetEmployee(ctx context.Context, employeeID string) (*Employee, error)

	// ListEmployees retrieves all employees in registration order.
	ListEmployees(ctx context.Context) ([]*Employee, error)

	// UpdateProfile edits names and the admin flag. Admin only.
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*Employee, error)
}

// RegisterRequest contains parameters for registering an employee.
// ActorID is only required when IsAdmin is requested.
type RegisterRequest struct {
	EmployeeID string
	FirstName  string
	LastName   string
	IsAdmin    bool
	ActorID    string
}

// UpdateProfileRequest contains parameters for a profile edit.
// Nil fields are left unchanged.
type UpdateProfileRequest struct {
	ActorID    string
	EmployeeID string
	FirstName  *string
	LastName   *string
	IsAdmin    *bool
}

// Employee represents an employee at the port boundary.
type Employee struct {
	ID            string
	FirstName     string
	LastName      string
	IsAdmin       bool
	ShiftActive   bool
	OnBreak       bool
	AtLunch       bool
	OpenShiftDate string
	State         string
	Available     []string // punch actions legal in the current state
}
