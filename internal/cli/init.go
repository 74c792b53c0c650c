package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/timeclock/internal/config"
	"github.com/example/timeclock/internal/wire"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the time clock in the working directory",
		Long: `Write .timeclock/config.yaml with default settings, create the punch
journal and seed the data file if it does not exist yet.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := wire.Dir()
			force, _ := cmd.Flags().GetBool("force")

			path := config.Path(dir)
			_, err := os.Stat(path)
			switch {
			case err == nil && !force:
				fmt.Printf("Config already exists at %s (use --force to overwrite)\n", path)
			case err == nil || errors.Is(err, os.ErrNotExist):
				if err := config.SaveConfig(dir, config.Default()); err != nil {
					return err
				}
				fmt.Printf("✓ Wrote config to %s\n", path)
			default:
				return fmt.Errorf("failed to check config: %w", err)
			}

			// Loading the services opens the journal and seeds the data file.
			cfg := wire.Config()
			employees, err := wire.EmployeeService().ListEmployees(NewContext())
			if err != nil {
				return fmt.Errorf("failed to read employees: %w", err)
			}

			fmt.Printf("✓ Data file %s holds %d employee(s)\n", config.Resolve(dir, cfg.DataFile), len(employees))
			fmt.Printf("✓ Journal at %s\n", config.Resolve(dir, cfg.JournalDB))
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  timeclock employee list")
			fmt.Println("  timeclock clock")
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "Overwrite an existing config")
	return cmd
}
