package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rugbyops/zoneclips/internal/factory"
	"github.com/rugbyops/zoneclips/internal/model"
)

func newUsersCmd() *cobra.Command {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Administer accounts in the configured record store",
	}

	usersCmd.AddCommand(newUsersListCmd())
	usersCmd.AddCommand(newUsersCreateCmd())
	usersCmd.AddCommand(newUsersToggleCmd())
	usersCmd.AddCommand(newUsersPromoteCmd())

	return usersCmd
}

func newUsersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := factory.New(cfg, logger)
			if err != nil {
				return err
			}

			users, err := app.AccountService.ListUsers(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "EMAIL\tROLE\tSTATUS")
			for _, u := range users {
				fmt.Fprintf(w, "%s\t%s\t%s\n", u.Email, u.Role, u.Status)
			}
			return w.Flush()
		},
	}
}

func newUsersCreateCmd() *cobra.Command {
	var (
		email    string
		password string
		admin    bool
		active   bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account, optionally as an active admin",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := factory.New(cfg, logger)
			if err != nil {
				return err
			}

			role := model.RolePlayer
			if admin {
				role = model.RoleAdmin
			}
			status := model.StatusInactive
			if active {
				status = model.StatusActive
			}

			if err := app.AccountService.CreateUser(cmd.Context(), email, password, role, status); err != nil {
				return err
			}

			fmt.Printf("created %s (%s, %s)\n", email, role, status)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	cmd.Flags().BoolVar(&admin, "admin", false, "Create with the admin role")
	cmd.Flags().BoolVar(&active, "active", false, "Create already activated")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newUsersToggleCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "toggle",
		Short: "Flip an account between active and inactive",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := factory.New(cfg, logger)
			if err != nil {
				return err
			}

			status, err := app.AccountService.ToggleStatus(cmd.Context(), email)
			if err != nil {
				return err
			}

			fmt.Printf("%s is now %s\n", email, status)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newUsersPromoteCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Give an account the admin role",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := factory.New(cfg, logger)
			if err != nil {
				return err
			}

			if err := app.AccountService.SetRole(cmd.Context(), email, model.RoleAdmin); err != nil {
				return err
			}

			fmt.Printf("%s is now an admin\n", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
