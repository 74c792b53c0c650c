package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/example/timeclock/internal/clockerr"
	"github.com/example/timeclock/internal/ports/primary"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestEmployeeService_Register(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	employee, err := f.employees.Register(ctx, primary.RegisterRequest{
		EmployeeID: " 345678901 ",
		FirstName:  "Ann",
		LastName:   "Lee",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if employee.ID != "345678901" || employee.IsAdmin || employee.ShiftActive {
		t.Errorf("unexpected employee: %+v", employee)
	}
	if len(employee.Available) != 1 || employee.Available[0] != "start-shift" {
		t.Errorf("new employee should only be able to start a shift, got %v", employee.Available)
	}
	if _, err := f.store.FindEmployee("345678901"); err != nil {
		t.Errorf("employee not stored: %v", err)
	}
	if len(f.gateway.saved) != 1 {
		t.Errorf("expected 1 save, got %d", len(f.gateway.saved))
	}

	e := f.journal.entries[0]
	if e.Action != "register" || e.ActorID != "345678901" || !strings.Contains(e.Detail, "Ann Lee") {
		t.Errorf("unexpected journal entry: %+v", e)
	}
}

func TestEmployeeService_RegisterBlankLastName(t *testing.T) {
	f := newTestFixture(t)

	_, err := f.employees.Register(context.Background(), primary.RegisterRequest{
		EmployeeID: "345678901",
		FirstName:  "Ann",
		LastName:   "   ",
	})
	assertErrorIs(t, err, clockerr.ErrInvalidInput)

	if _, err := f.store.FindEmployee("345678901"); !errors.Is(err, clockerr.ErrNotFound) {
		t.Error("no employee may be added after a rejected registration")
	}
	if len(f.store.Employees()) != 2 {
		t.Errorf("expected 2 employees, got %d", len(f.store.Employees()))
	}
	if len(f.gateway.saved) != 0 {
		t.Error("a rejected registration must not save")
	}
}

func TestEmployeeService_RegisterDuplicate(t *testing.T) {
	f := newTestFixture(t)

	_, err := f.employees.Register(context.Background(), primary.RegisterRequest{
		EmployeeID: johnID,
		FirstName:  "Another",
		LastName:   "John",
	})
	assertErrorIs(t, err, clockerr.ErrDuplicateEmployee)

	john, _ := f.store.FindEmployee(johnID)
	if john.FirstName != "John" {
		t.Error("existing employee must not be overwritten")
	}
}

func TestEmployeeService_RegisterAdmin(t *testing.T) {
	tests := []struct {
		name    string
		actorID string
		wantErr error
	}{
		{"by admin", janeID, nil},
		{"by non-admin", johnID, clockerr.ErrNotAdmin},
		{"self-registration", "", clockerr.ErrNotAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFixture(t)

			employee, err := f.employees.Register(context.Background(), primary.RegisterRequest{
				EmployeeID: "345678901",
				FirstName:  "Ann",
				LastName:   "Lee",
				IsAdmin:    true,
				ActorID:    tt.actorID,
			})
			if tt.wantErr != nil {
				assertErrorIs(t, err, tt.wantErr)
				return
			}
			if err != nil {
				t.Fatalf("Register failed: %v", err)
			}
			if !employee.IsAdmin {
				t.Error("expected admin flag")
			}
			if got := f.journal.entries[0].ActorID; got != janeID {
				t.Errorf("journal actor = %q, want %q", got, janeID)
			}
		})
	}
}

func TestEmployeeService_GetEmployee(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	if _, err := f.punches.StartShift(ctx, primary.PunchRequest{EmployeeID: johnID, Date: "08/13/22", Time: "08:00:00"}); err != nil {
		t.Fatalf("StartShift failed: %v", err)
	}
	if _, err := f.punches.StartLunch(ctx, primary.PunchRequest{EmployeeID: johnID, Date: "08/13/22", Time: "12:00:00"}); err != nil {
		t.Fatalf("StartLunch failed: %v", err)
	}

	employee, err := f.employees.GetEmployee(ctx, johnID)
	if err != nil {
		t.Fatalf("GetEmployee failed: %v", err)
	}
	if !employee.ShiftActive || !employee.AtLunch || employee.OnBreak {
		t.Errorf("unexpected status: %+v", employee)
	}
	if employee.State != "at_lunch" {
		t.Errorf("State = %q, want at_lunch", employee.State)
	}
	if len(employee.Available) != 1 || employee.Available[0] != "end-lunch" {
		t.Errorf("Available = %v, want [end-lunch]", employee.Available)
	}

	_, err = f.employees.GetEmployee(ctx, "999")
	assertErrorIs(t, err, clockerr.ErrNotFound)
}

func TestEmployeeService_ListEmployees(t *testing.T) {
	f := newTestFixture(t)

	employees, err := f.employees.ListEmployees(context.Background())
	if err != nil {
		t.Fatalf("ListEmployees failed: %v", err)
	}
	if len(employees) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(employees))
	}
	if employees[0].ID != johnID || employees[1].ID != janeID {
		t.Errorf("employees out of registration order: %s, %s", employees[0].ID, employees[1].ID)
	}
}

func TestEmployeeService_UpdateProfile(t *testing.T) {
	f := newTestFixture(t)

	employee, err := f.employees.UpdateProfile(context.Background(), primary.UpdateProfileRequest{
		ActorID:    janeID,
		EmployeeID: johnID,
		FirstName:  strPtr("Jonathan"),
		IsAdmin:    boolPtr(true),
	})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}

	if employee.FirstName != "Jonathan" || employee.LastName != "Doe" || !employee.IsAdmin {
		t.Errorf("unexpected employee: %+v", employee)
	}
	stored, _ := f.store.FindEmployee(johnID)
	if stored.FirstName != "Jonathan" || !stored.IsAdmin {
		t.Errorf("edit not stored: %+v", stored)
	}

	e := f.journal.entries[0]
	if e.Action != "edit-profile" || e.ActorID != janeID || !strings.Contains(e.Detail, "Jonathan") {
		t.Errorf("unexpected journal entry: %+v", e)
	}
}

func TestEmployeeService_UpdateProfileRejections(t *testing.T) {
	tests := []struct {
		name    string
		req     primary.UpdateProfileRequest
		wantErr error
	}{
		{
			name:    "non-admin actor",
			req:     primary.UpdateProfileRequest{ActorID: johnID, EmployeeID: johnID, IsAdmin: boolPtr(true)},
			wantErr: clockerr.ErrNotAdmin,
		},
		{
			name:    "unknown employee",
			req:     primary.UpdateProfileRequest{ActorID: janeID, EmployeeID: "999", FirstName: strPtr("X")},
			wantErr: clockerr.ErrNotFound,
		},
		{
			name:    "blank last name",
			req:     primary.UpdateProfileRequest{ActorID: janeID, EmployeeID: johnID, LastName: strPtr("")},
			wantErr: clockerr.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFixture(t)

			_, err := f.employees.UpdateProfile(context.Background(), tt.req)
			assertErrorIs(t, err, tt.wantErr)

			john, _ := f.store.FindEmployee(johnID)
			if john.FirstName != "John" || john.LastName != "Doe" || john.IsAdmin {
				t.Errorf("profile changed by rejected edit: %+v", john)
			}
		})
	}
}

func TestEmployeeService_UpdateProfileSaveFailure(t *testing.T) {
	f := newTestFixture(t)
	f.gateway.saveErr = errors.New("read-only file system")

	_, err := f.employees.UpdateProfile(context.Background(), primary.UpdateProfileRequest{
		ActorID:    janeID,
		EmployeeID: johnID,
		LastName:   strPtr("Smith"),
	})
	if err == nil {
		t.Fatal("expected save error")
	}

	john, _ := f.store.FindEmployee(johnID)
	if john.LastName != "Doe" {
		t.Errorf("edit must be rolled back, got last name %q", john.LastName)
	}
}
