package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/example/timeclock/internal/ports/primary"
)

// ReportAdapter renders shift reports.
type ReportAdapter struct {
	service primary.ReportService
	out     io.Writer
}

// NewReportAdapter creates a new ReportAdapter with the given service.
func NewReportAdapter(service primary.ReportService, out io.Writer) *ReportAdapter {
	return &ReportAdapter{
		service: service,
		out:     out,
	}
}

// Show prints every shift recorded for the employee.
func (a *ReportAdapter) Show(ctx context.Context, actorID, employeeID string) error {
	report, err := a.service.ShiftReport(ctx, primary.ShiftReportRequest{
		ActorID:    actorID,
		EmployeeID: employeeID,
	})
	if err != nil {
		return err
	}

	e := report.Employee
	fmt.Fprintf(a.out, "\nShifts for %s %s (%s), currently %s\n", e.FirstName, e.LastName, e.ID, describeState(e))
	if len(report.Shifts) == 0 {
		fmt.Fprintln(a.out, "No shifts recorded")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-10s %-10s %-10s %-24s %s\n", "DATE", "START", "END", "BREAKS", "LUNCHES")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
	for _, sh := range report.Shifts {
		end := sh.End
		if end == "" {
			end = "open"
		}
		fmt.Fprintf(a.out, "%-10s %-10s %-10s %-24s %s\n",
			sh.Date, sh.Start, end, formatIntervals(sh.Breaks), formatIntervals(sh.Lunches))
	}
	fmt.Fprintln(a.out)
	return nil
}

// Export writes the employee's shifts to a spreadsheet.
func (a *ReportAdapter) Export(ctx context.Context, actorID, employeeID, path string) error {
	err := a.service.ExportShiftReport(ctx, primary.ShiftReportRequest{
		ActorID:    actorID,
		EmployeeID: employeeID,
	}, path)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Exported shifts for %s to %s\n", employeeID, path)
	return nil
}

func formatIntervals(intervals []primary.Interval) string {
	if len(intervals) == 0 {
		return "-"
	}
	parts := make([]string, len(intervals))
	for i, iv := range intervals {
		end := iv.End
		if end == "" {
			end = "..."
		}
		parts[i] = iv.Start + "-" + end
	}
	return strings.Join(parts, ", ")
}
