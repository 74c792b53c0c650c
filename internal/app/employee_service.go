package app

import (
	"context"
	"fmt"
	"strings"

	coreemployee "github.com/example/timeclock/internal/core/employee"
	corepunch "github.com/example/timeclock/internal/core/punch"
	"github.com/example/timeclock/internal/ctxutil"
	"github.com/example/timeclock/internal/ports/primary"
	"github.com/example/timeclock/internal/ports/secondary"
)

// EmployeeServiceImpl implements the EmployeeService interface.
type EmployeeServiceImpl struct {
	ledger *Ledger
}

// NewEmployeeService creates a new EmployeeService with injected dependencies.
func NewEmployeeService(ledger *Ledger) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{ledger: ledger}
}

// Register creates a new employee profile.
func (s *EmployeeServiceImpl) Register(ctx context.Context, req primary.RegisterRequest) (*primary.Employee, error) {
	store := s.ledger.store
	record := &secondary.EmployeeRecord{
		ID:        strings.TrimSpace(req.EmployeeID),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		IsAdmin:   req.IsAdmin,
	}

	err := s.ledger.commit(ctx, func() error {
		_, lookupErr := store.FindEmployee(record.ID)
		gctx := coreemployee.RegisterContext{
			EmployeeID: record.ID,
			FirstName:  record.FirstName,
			LastName:   record.LastName,
			IDTaken:    lookupErr == nil,
			GrantAdmin: req.IsAdmin,
			ActorID:    req.ActorID,
		}
		if req.ActorID != "" {
			if actor, err := store.FindEmployee(req.ActorID); err == nil {
				gctx.ActorExists = true
				gctx.ActorAdmin = actor.IsAdmin
			}
		}
		if err := coreemployee.CanRegister(gctx).Error(); err != nil {
			return err
		}
		return store.AddEmployee(record)
	})
	if err != nil {
		return nil, err
	}

	actor := req.ActorID
	if actor == "" {
		actor = record.ID
	}
	s.ledger.record(ctxutil.WithActor(ctx, actor), &secondary.JournalRecord{
		EmployeeID: record.ID,
		Action:     "register",
		Detail:     fmt.Sprintf("%s %s admin=%t", record.FirstName, record.LastName, record.IsAdmin),
	})

	return recordToEmployee(record, corepunch.Status{}), nil
}

// GetEmployee retrieves an employee and their derived status.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, employeeID string) (*primary.Employee, error) {
	var employee *primary.Employee
	err := s.ledger.read(func() error {
		record, err := s.ledger.store.FindEmployee(employeeID)
		if err != nil {
			return err
		}
		status, err := s.ledger.statusOf(record.ID)
		if err != nil {
			return err
		}
		employee = recordToEmployee(record, status)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return employee, nil
}

// ListEmployees retrieves all employees in registration order.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]*primary.Employee, error) {
	var employees []*primary.Employee
	err := s.ledger.read(func() error {
		for _, record := range s.ledger.store.Employees() {
			status, err := s.ledger.statusOf(record.ID)
			if err != nil {
				return fmt.Errorf("employee %s: %w", record.ID, err)
			}
			employees = append(employees, recordToEmployee(record, status))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return employees, nil
}

// UpdateProfile edits names and the admin flag. Admin only.
func (s *EmployeeServiceImpl) UpdateProfile(ctx context.Context, req primary.UpdateProfileRequest) (*primary.Employee, error) {
	store := s.ledger.store
	var (
		employee *primary.Employee
		changes  []string
	)

	err := s.ledger.commit(ctx, func() error {
		actor, actorErr := store.FindEmployee(req.ActorID)
		record, err := store.FindEmployee(req.EmployeeID)

		guard := coreemployee.CanEditProfile(coreemployee.ProfileContext{
			EmployeeID:     req.EmployeeID,
			EmployeeExists: err == nil,
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			ActorID:        req.ActorID,
			ActorAdmin:     actorErr == nil && actor.IsAdmin,
		})
		if err := guard.Error(); err != nil {
			return err
		}

		if req.FirstName != nil {
			changes = append(changes, fmt.Sprintf("first_name %q -> %q", record.FirstName, *req.FirstName))
			record.FirstName = strings.TrimSpace(*req.FirstName)
		}
		if req.LastName != nil {
			changes = append(changes, fmt.Sprintf("last_name %q -> %q", record.LastName, *req.LastName))
			record.LastName = strings.TrimSpace(*req.LastName)
		}
		if req.IsAdmin != nil {
			changes = append(changes, fmt.Sprintf("is_admin %t -> %t", record.IsAdmin, *req.IsAdmin))
			record.IsAdmin = *req.IsAdmin
		}

		status, err := s.ledger.statusOf(record.ID)
		if err != nil {
			return err
		}
		employee = recordToEmployee(record, status)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.ledger.record(ctxutil.WithActor(ctx, req.ActorID), &secondary.JournalRecord{
		EmployeeID: req.EmployeeID,
		Action:     "edit-profile",
		Detail:     strings.Join(changes, "; "),
	})

	return employee, nil
}

// Ensure EmployeeServiceImpl implements the interface.
var _ primary.EmployeeService = (*EmployeeServiceImpl)(nil)
