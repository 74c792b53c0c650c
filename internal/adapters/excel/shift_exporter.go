// Package excel writes shift reports to spreadsheet files.
package excel

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/timeclock/internal/ports/secondary"
)

const sheet = "Shifts"

var headers = []string{"Employee ID", "First Name", "Last Name", "Date", "Shift Start", "Shift End", "Breaks", "Lunches"}

// ShiftExporter implements secondary.ShiftExporter with excelize.
type ShiftExporter struct{}

// NewShiftExporter creates a new spreadsheet exporter.
func NewShiftExporter() *ShiftExporter {
	return &ShiftExporter{}
}

// ExportShifts writes one row per shift to a new workbook at path,
// replacing any existing file.
func (e *ShiftExporter) ExportShifts(ctx context.Context, path string, employee *secondary.EmployeeRecord, shifts []*secondary.ShiftRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, sh := range shifts {
		row := []any{
			employee.ID,
			employee.FirstName,
			employee.LastName,
			sh.Date,
			sh.ShiftStart,
			sh.ShiftEnd,
			formatIntervals(sh.Breaks),
			formatIntervals(sh.Lunches),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write shift on %s: %w", sh.Date, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}

// formatIntervals renders intervals as "start-end" pairs; open ends show as "...".
func formatIntervals(intervals []*secondary.IntervalRecord) string {
	parts := make([]string, 0, len(intervals))
	for _, i := range intervals {
		end := i.End
		if end == "" {
			end = "..."
		}
		parts = append(parts, i.Start+"-"+end)
	}
	return strings.Join(parts, ", ")
}

// Ensure ShiftExporter implements the interface.
var _ secondary.ShiftExporter = (*ShiftExporter)(nil)
