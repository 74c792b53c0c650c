package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/example/timeclock/internal/clockerr"
	"github.com/example/timeclock/internal/ports/primary"
)

// Services bundles the primary ports an interactive session drives.
type Services struct {
	Punch    primary.PunchService
	Employee primary.EmployeeService
	Report   primary.ReportService
	Journal  primary.JournalService
}

// Layouts are the time.Format layouts used for punch dates and times.
type Layouts struct {
	Date string
	Time string
}

// journalPageSize is how many journal entries the admin view shows.
const journalPageSize = 20

// menuActions maps punch menu keys to punch actions.
var menuActions = map[string]string{
	"1": "start-shift",
	"2": "end-break",
	"3": "end-lunch",
	"4": "start-break",
	"5": "start-lunch",
	"6": "end-shift",
}

// SessionAdapter runs the interactive terminal time clock: sign in or
// register, then punch from a menu that only offers the legal punches.
type SessionAdapter struct {
	in      *bufio.Scanner
	out     io.Writer
	layouts Layouts
	now     func() time.Time

	employees *EmployeeAdapter
	punches   *PunchAdapter
	reports   *ReportAdapter
	journal   *JournalAdapter

	current *primary.Employee
}

// NewSessionAdapter creates a session reading menu input from in.
func NewSessionAdapter(services Services, in io.Reader, out io.Writer, layouts Layouts) *SessionAdapter {
	return &SessionAdapter{
		in:        bufio.NewScanner(in),
		out:       out,
		layouts:   layouts,
		now:       time.Now,
		employees: NewEmployeeAdapter(services.Employee, out),
		punches:   NewPunchAdapter(services.Punch, out),
		reports:   NewReportAdapter(services.Report, out),
		journal:   NewJournalAdapter(services.Journal, out),
	}
}

// WithClock replaces the wall clock used to stamp live punches.
func (a *SessionAdapter) WithClock(now func() time.Time) *SessionAdapter {
	a.now = now
	return a
}

// Run shows the start menu until the user quits or input ends.
func (a *SessionAdapter) Run(ctx context.Context) error {
	fmt.Fprintf(a.out, "\n%s\n\n", color.New(color.Bold).Sprint("TIME CLOCK APPLICATION"))

	for {
		fmt.Fprintln(a.out, "Please choose from the following options:")
		fmt.Fprintln(a.out, "PRESS 1 to sign in")
		fmt.Fprintln(a.out, "PRESS 2 to register as a new user")
		fmt.Fprintln(a.out, "PRESS 0 to quit")

		option, ok := a.prompt("")
		if !ok {
			return nil
		}

		switch option {
		case "1":
			if !a.signIn(ctx) {
				return nil
			}
		case "2":
			if !a.register(ctx) {
				return nil
			}
		case "0":
			fmt.Fprintln(a.out, "\nExiting the Time Clock program. Goodbye!")
			return nil
		default:
			fmt.Fprintln(a.out, "You did not select a valid option.")
			continue
		}

		if a.current != nil && !a.punchMenu(ctx) {
			return nil
		}
	}
}

// signIn looks up an employee by id. It returns false when input ends.
func (a *SessionAdapter) signIn(ctx context.Context) bool {
	id, ok := a.prompt("Please enter Employee ID: ")
	if !ok {
		return false
	}

	employee, err := a.employees.service.GetEmployee(ctx, id)
	if err != nil {
		if errors.Is(err, clockerr.ErrNotFound) {
			fmt.Fprintln(a.out, "\n*** Employee ID not valid. ***")
		} else {
			a.printErr(err)
		}
		return true
	}

	fmt.Fprintf(a.out, "\nHello, %s.\n", employee.FirstName)
	a.current = employee
	return true
}

// register creates a profile and signs the new employee in.
func (a *SessionAdapter) register(ctx context.Context) bool {
	answers, ok := a.ask(
		"Please enter your Employee ID: ",
		"Please enter your first name: ",
		"Please enter your last name: ",
	)
	if !ok {
		return false
	}

	employee, err := a.employees.Register(ctx, primary.RegisterRequest{
		EmployeeID: answers[0],
		FirstName:  answers[1],
		LastName:   answers[2],
	})
	if err != nil {
		a.printErr(err)
		return true
	}

	a.current = employee
	return true
}

// punchMenu runs the signed-in menu until sign out. It returns false when
// input ends.
func (a *SessionAdapter) punchMenu(ctx context.Context) bool {
	for a.current != nil {
		employee, err := a.employees.service.GetEmployee(ctx, a.current.ID)
		if err != nil {
			a.printErr(err)
			a.current = nil
			return true
		}
		a.current = employee

		a.printPunchOptions(employee)
		option, ok := a.prompt("")
		if !ok {
			return false
		}

		if action, found := menuActions[option]; found {
			a.punch(ctx, action)
			continue
		}

		switch option {
		case "7":
			if err := a.reports.Show(ctx, employee.ID, employee.ID); err != nil {
				a.printErr(err)
			}
		case "8":
			if !employee.IsAdmin {
				fmt.Fprintln(a.out, "\nInvalid input. Try again.")
				continue
			}
			if !a.adminMenu(ctx) {
				return false
			}
		case "9":
			fmt.Fprintf(a.out, "\nSigning out. Goodbye, %s!\n\n", employee.FirstName)
			a.current = nil
		default:
			fmt.Fprintln(a.out, "\nInvalid input. Try again.")
		}
	}
	return true
}

func (a *SessionAdapter) printPunchOptions(e *primary.Employee) {
	fmt.Fprintf(a.out, "\nYou are %s. Please select an option:\n", describeState(e))
	switch {
	case e.OnBreak:
		fmt.Fprintln(a.out, "PRESS 2 to end your break")
	case e.AtLunch:
		fmt.Fprintln(a.out, "PRESS 3 to end your lunch")
	case e.ShiftActive:
		fmt.Fprintln(a.out, "PRESS 4 to start your break")
		fmt.Fprintln(a.out, "PRESS 5 to start your lunch")
		fmt.Fprintln(a.out, "PRESS 6 to end your shift")
	default:
		fmt.Fprintln(a.out, "PRESS 1 to start a shift")
	}
	fmt.Fprintln(a.out, "PRESS 7 to view your shifts")
	if e.IsAdmin {
		fmt.Fprintln(a.out, "PRESS 8 for admin tools")
	}
	fmt.Fprintln(a.out, "PRESS 9 to sign out")
}

// punch records a live punch stamped with the current time. A new shift
// takes today's date; every other punch lands on the open shift, which may
// have started on an earlier date.
func (a *SessionAdapter) punch(ctx context.Context, action string) {
	now := a.now()
	date := now.Format(a.layouts.Date)
	if action != "start-shift" && a.current.OpenShiftDate != "" {
		date = a.current.OpenShiftDate
	}
	_, err := a.punches.Punch(ctx, action, a.current.ID, date, now.Format(a.layouts.Time), "")
	if err != nil {
		a.printErr(err)
	}
}

// adminMenu runs the admin tools until the admin goes back. It returns
// false when input ends.
func (a *SessionAdapter) adminMenu(ctx context.Context) bool {
	for {
		fmt.Fprintln(a.out, "\nAdmin tools:")
		fmt.Fprintln(a.out, "PRESS 1 to adjust a punch")
		fmt.Fprintln(a.out, "PRESS 2 to view an employee's shifts")
		fmt.Fprintln(a.out, "PRESS 3 to export an employee's shifts")
		fmt.Fprintln(a.out, "PRESS 4 to edit a profile")
		fmt.Fprintln(a.out, "PRESS 5 to register an employee")
		fmt.Fprintln(a.out, "PRESS 6 to view the punch journal")
		fmt.Fprintln(a.out, "PRESS 0 to go back")

		option, ok := a.prompt("")
		if !ok {
			return false
		}

		var err error
		switch option {
		case "1":
			ok, err = a.adjustPunch(ctx)
		case "2":
			ok, err = a.viewShifts(ctx)
		case "3":
			ok, err = a.exportShifts(ctx)
		case "4":
			ok, err = a.editProfile(ctx)
		case "5":
			ok, err = a.registerEmployee(ctx)
		case "6":
			ok, err = a.viewJournal(ctx)
		case "0":
			return true
		default:
			fmt.Fprintln(a.out, "\nInvalid input. Try again.")
		}
		if !ok {
			return false
		}
		if err != nil {
			a.printErr(err)
		}
	}
}

func (a *SessionAdapter) adjustPunch(ctx context.Context) (bool, error) {
	answers, ok := a.ask(
		"Employee ID: ",
		"Punch (start-shift, end-shift, start-break, end-break, start-lunch, end-lunch): ",
		fmt.Sprintf("Date (%s): ", a.layouts.Date),
		fmt.Sprintf("Time (%s): ", a.layouts.Time),
	)
	if !ok {
		return false, nil
	}

	if err := a.validateStamp(answers[2], answers[3]); err != nil {
		return true, err
	}

	_, err := a.punches.Punch(ctx, answers[1], answers[0], answers[2], answers[3], a.current.ID)
	return true, err
}

// validateStamp checks an admin-entered date and time against the layouts.
func (a *SessionAdapter) validateStamp(date, clock string) error {
	if _, err := time.Parse(a.layouts.Date, date); err != nil {
		return fmt.Errorf("%w: date %q does not match %s", clockerr.ErrInvalidInput, date, a.layouts.Date)
	}
	if _, err := time.Parse(a.layouts.Time, clock); err != nil {
		return fmt.Errorf("%w: time %q does not match %s", clockerr.ErrInvalidInput, clock, a.layouts.Time)
	}
	return nil
}

func (a *SessionAdapter) viewShifts(ctx context.Context) (bool, error) {
	id, ok := a.prompt("Employee ID: ")
	if !ok {
		return false, nil
	}
	return true, a.reports.Show(ctx, a.current.ID, id)
}

func (a *SessionAdapter) exportShifts(ctx context.Context) (bool, error) {
	answers, ok := a.ask("Employee ID: ", "File path (.xlsx): ")
	if !ok {
		return false, nil
	}
	return true, a.reports.Export(ctx, a.current.ID, answers[0], answers[1])
}

func (a *SessionAdapter) editProfile(ctx context.Context) (bool, error) {
	answers, ok := a.ask(
		"Employee ID: ",
		"First name (blank to keep): ",
		"Last name (blank to keep): ",
		"Admin? (y/n, blank to keep): ",
	)
	if !ok {
		return false, nil
	}

	req := primary.UpdateProfileRequest{
		ActorID:    a.current.ID,
		EmployeeID: answers[0],
	}
	if answers[1] != "" {
		req.FirstName = &answers[1]
	}
	if answers[2] != "" {
		req.LastName = &answers[2]
	}
	if answers[3] != "" {
		admin, err := parseYesNo(answers[3])
		if err != nil {
			return true, err
		}
		req.IsAdmin = &admin
	}

	_, err := a.employees.Edit(ctx, req)
	return true, err
}

func (a *SessionAdapter) registerEmployee(ctx context.Context) (bool, error) {
	answers, ok := a.ask(
		"Employee ID: ",
		"First name: ",
		"Last name: ",
		"Admin? (y/n): ",
	)
	if !ok {
		return false, nil
	}

	admin := false
	if answers[3] != "" {
		var err error
		if admin, err = parseYesNo(answers[3]); err != nil {
			return true, err
		}
	}

	_, err := a.employees.Register(ctx, primary.RegisterRequest{
		EmployeeID: answers[0],
		FirstName:  answers[1],
		LastName:   answers[2],
		IsAdmin:    admin,
		ActorID:    a.current.ID,
	})
	return true, err
}

func (a *SessionAdapter) viewJournal(ctx context.Context) (bool, error) {
	id, ok := a.prompt("Employee ID (blank for all): ")
	if !ok {
		return false, nil
	}
	return true, a.journal.List(ctx, primary.JournalFilters{
		EmployeeID: id,
		Limit:      journalPageSize,
	})
}

// prompt prints label and reads one trimmed line. ok is false at end of input.
func (a *SessionAdapter) prompt(label string) (string, bool) {
	if label != "" {
		fmt.Fprint(a.out, label)
	}
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

// ask prompts for each label in turn.
func (a *SessionAdapter) ask(labels ...string) ([]string, bool) {
	answers := make([]string, len(labels))
	for i, label := range labels {
		answer, ok := a.prompt(label)
		if !ok {
			return nil, false
		}
		answers[i] = answer
	}
	return answers, true
}

func (a *SessionAdapter) printErr(err error) {
	fmt.Fprintf(a.out, "\n%s %v\n", color.New(color.FgRed).Sprint("✗"), err)
}

func parseYesNo(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b, nil
	}
	return false, fmt.Errorf("%w: expected y or n, got %q", clockerr.ErrInvalidInput, s)
}
