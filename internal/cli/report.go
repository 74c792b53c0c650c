package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/timeclock/internal/wire"
)

var reportCmd = &cobra.Command{
	Use:   "report [employee-id]",
	Short: "Show an employee's shifts",
	Long: `Show every shift recorded for an employee, or export them to a
spreadsheet with --export.

The viewer is named by --as. Employees may view their own shifts;
viewing anyone else's requires an admin.`,
	Example: `  timeclock report 123456789 --as 123456789
  timeclock report 123456789 --as 234567890 --export john.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()
		employeeID := args[0]
		exportPath, _ := cmd.Flags().GetString("export")

		actorID, err := reportViewer(GetActorID())
		if err != nil {
			return err
		}

		if exportPath != "" {
			return wire.ReportAdapter().Export(ctx, actorID, employeeID, exportPath)
		}
		return wire.ReportAdapter().Show(ctx, actorID, employeeID)
	},
}

// reportViewer returns the employee viewing a report, who must be named.
func reportViewer(actorID string) (string, error) {
	if actorID == "" {
		return "", fmt.Errorf("report requires --as <employee-id> naming the viewer")
	}
	return actorID, nil
}

func init() {
	reportCmd.Flags().String("export", "", "Write the report to an .xlsx file")
}

// ReportCmd returns the report command.
func ReportCmd() *cobra.Command {
	return reportCmd
}
