package primary

import "context"

// ReportService defines the primary port for shift reports.
type ReportService interface {
	// ShiftReport retrieves every shift recorded for an employee.
	ShiftReport(ctx context.Context, req ShiftReportRequest) (*ShiftReport, error)

	// ExportShiftReport writes the shift report to a spreadsheet file.
	ExportShiftReport(ctx context.Context, req ShiftReportRequest, path string) error
}

// ShiftReportRequest contains parameters for a shift report.
type ShiftReportRequest struct {
	ActorID    string
	EmployeeID string
}

// ShiftReport represents an employee's shifts at the port boundary.
type ShiftReport struct {
	Employee *Employee
	Shifts   []*Shift
}

// Shift represents a shift at the port boundary.
type Shift struct {
	Date    string
	Start   string
	End     string
	Breaks  []Interval
	Lunches []Interval
}

// Interval represents a break or lunch at the port boundary.
type Interval struct {
	Start string
	End   string
}
