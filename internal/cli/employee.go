package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/timeclock/internal/ports/primary"
	"github.com/example/timeclock/internal/wire"
)

var employeeCmd = &cobra.Command{
	Use:   "employee",
	Short: "Manage employee profiles",
	Long:  "Register, show, list and edit employees",
}

var employeeRegisterCmd = &cobra.Command{
	Use:   "register [id] [first-name] [last-name]",
	Short: "Register a new employee",
	Long: `Register a new employee profile.

Granting admin rights with --admin requires an existing admin named by --as.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()
		admin, _ := cmd.Flags().GetBool("admin")

		_, err := wire.EmployeeAdapter().Register(ctx, primary.RegisterRequest{
			EmployeeID: args[0],
			FirstName:  args[1],
			LastName:   args[2],
			IsAdmin:    admin,
			ActorID:    GetActorID(),
		})
		if err != nil {
			return fmt.Errorf("failed to register employee: %w", err)
		}
		return nil
	},
}

var employeeShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show an employee and their current status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.EmployeeAdapter().Show(NewContext(), args[0])
		return err
	},
}

var employeeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all employees",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.EmployeeAdapter().List(NewContext())
	},
}

var employeeEditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit an employee profile (admin only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()
		req := primary.UpdateProfileRequest{
			ActorID:    GetActorID(),
			EmployeeID: args[0],
		}

		if cmd.Flags().Changed("first") {
			first, _ := cmd.Flags().GetString("first")
			req.FirstName = &first
		}
		if cmd.Flags().Changed("last") {
			last, _ := cmd.Flags().GetString("last")
			req.LastName = &last
		}
		if cmd.Flags().Changed("admin") {
			admin, _ := cmd.Flags().GetBool("admin")
			req.IsAdmin = &admin
		}
		if req.FirstName == nil && req.LastName == nil && req.IsAdmin == nil {
			return fmt.Errorf("must specify at least one of --first, --last or --admin")
		}

		if _, err := wire.EmployeeAdapter().Edit(ctx, req); err != nil {
			return fmt.Errorf("failed to edit employee: %w", err)
		}
		return nil
	},
}

func init() {
	employeeRegisterCmd.Flags().Bool("admin", false, "Grant admin rights (requires --as)")

	employeeEditCmd.Flags().String("first", "", "New first name")
	employeeEditCmd.Flags().String("last", "", "New last name")
	employeeEditCmd.Flags().Bool("admin", false, "Set or clear admin rights")

	employeeCmd.AddCommand(employeeRegisterCmd)
	employeeCmd.AddCommand(employeeShowCmd)
	employeeCmd.AddCommand(employeeListCmd)
	employeeCmd.AddCommand(employeeEditCmd)
}

// EmployeeCmd returns the employee command.
func EmployeeCmd() *cobra.Command {
	return employeeCmd
}
