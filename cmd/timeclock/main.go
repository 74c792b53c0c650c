package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/timeclock/internal/cli"
	"github.com/example/timeclock/internal/version"
)

func main() {
	var dir, actor string

	rootCmd := &cobra.Command{
		Use:     "timeclock",
		Short:   "Employee time clock",
		Version: version.String(),
		Long: `timeclock records employee shifts, breaks and lunches in a JSON data file.
Run without a subcommand to start the interactive time clock.`,
		Args: cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cli.Bootstrap(dir, actor)
		},
		RunE:         cli.RunClock,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&dir, "dir", ".", "Directory holding the data file and .timeclock/")
	rootCmd.PersistentFlags().StringVar(&actor, "as", "", "Employee ID of the admin performing the command")

	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.ClockCmd())
	rootCmd.AddCommand(cli.PunchCmd())
	rootCmd.AddCommand(cli.EmployeeCmd())
	rootCmd.AddCommand(cli.ReportCmd())
	rootCmd.AddCommand(cli.JournalCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
