package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/timeclock/internal/wire"
)

var punchCmd = &cobra.Command{
	Use:   "punch [action]",
	Short: "Record a punch for an employee",
	Long: `Record one punch: start-shift, end-shift, start-break, end-break,
start-lunch or end-lunch.

Live punches are stamped with the current date and time. An admin may
adjust a punch by passing --as with an explicit --date and --time.`,
	Example: `  timeclock punch start-shift -e 123456789
  timeclock punch end-shift -e 123456789 --as 234567890 --date 08/13/22 --time 17:00:00`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()
		employeeID, _ := cmd.Flags().GetString("employee")
		date, _ := cmd.Flags().GetString("date")
		clock, _ := cmd.Flags().GetString("time")
		actorID := GetActorID()
		cfg := wire.Config()

		if actorID == "" && (date != "" || clock != "") {
			return fmt.Errorf("--date and --time adjust a punch and require --as")
		}

		now := time.Now()
		if date == "" {
			date = now.Format(cfg.DateLayout)
		} else if _, err := time.Parse(cfg.DateLayout, date); err != nil {
			return fmt.Errorf("date %q does not match layout %s", date, cfg.DateLayout)
		}
		if clock == "" {
			clock = now.Format(cfg.TimeLayout)
		} else if _, err := time.Parse(cfg.TimeLayout, clock); err != nil {
			return fmt.Errorf("time %q does not match layout %s", clock, cfg.TimeLayout)
		}

		action := strings.ToLower(args[0])
		if _, err := wire.PunchAdapter().Punch(ctx, action, employeeID, date, clock, actorID); err != nil {
			return fmt.Errorf("failed to punch %s: %w", action, err)
		}
		return nil
	},
}

func init() {
	punchCmd.Flags().StringP("employee", "e", "", "Employee ID (required)")
	punchCmd.Flags().String("date", "", "Work date for an adjusted punch")
	punchCmd.Flags().String("time", "", "Time for an adjusted punch")
	punchCmd.MarkFlagRequired("employee")
}

// PunchCmd returns the punch command.
func PunchCmd() *cobra.Command {
	return punchCmd
}
