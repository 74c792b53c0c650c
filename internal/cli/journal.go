package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/timeclock/internal/ports/primary"
	"github.com/example/timeclock/internal/wire"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "View the punch journal",
	Long:  "View recorded punches, registrations and profile edits, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		employeeID, _ := cmd.Flags().GetString("employee")
		action, _ := cmd.Flags().GetString("action")
		limit, _ := cmd.Flags().GetInt("limit")

		if limit <= 0 {
			limit = 50
		}

		return wire.JournalAdapter().List(NewContext(), primary.JournalFilters{
			EmployeeID: employeeID,
			Action:     action,
			Limit:      limit,
		})
	},
}

func init() {
	journalCmd.Flags().StringP("employee", "e", "", "Filter by employee ID")
	journalCmd.Flags().String("action", "", "Filter by action (e.g. start-shift, register)")
	journalCmd.Flags().IntP("limit", "n", 50, "Number of entries to show")
}

// JournalCmd returns the journal command.
func JournalCmd() *cobra.Command {
	return journalCmd
}
