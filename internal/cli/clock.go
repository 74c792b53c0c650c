package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/timeclock/internal/wire"
)

// ClockCmd returns the interactive time clock command.
func ClockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clock",
		Short: "Run the interactive time clock",
		Long: `Sign in or register, then punch shifts, breaks and lunches from a menu
that only offers the punches legal right now. Admins also get the admin tools.`,
		Args: cobra.NoArgs,
		RunE: RunClock,
	}
}

// RunClock runs an interactive session on stdin and stdout.
func RunClock(cmd *cobra.Command, args []string) error {
	return wire.SessionAdapter().Run(NewContext())
}
