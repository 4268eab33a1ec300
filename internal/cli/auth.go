package cli

import (
	"fmt"

	"github.com/okigami/repoctl/internal/app"
	"github.com/okigami/repoctl/internal/usecase"
	"github.com/spf13/cobra"
)

// newAuthCommand creates the auth command group. Auth commands work
// outside a git repository.
func newAuthCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage hosting-service credentials",
	}
	cmd.AddCommand(
		newAuthLoginCommand(c),
		newAuthStatusCommand(c),
	)
	return cmd
}

// newAuthLoginCommand creates the auth login command.
func newAuthLoginCommand(c *app.Container) *cobra.Command {
	var host string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the hosting service",
		Long: `Start the hosting CLI's interactive login flow. Credential
material is handled entirely by that CLI; repoctl never sees it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := usecase.NewLogin(hostingFor(c))
			return uc.Execute(cmd.Context(), usecase.LoginInput{Host: host})
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Hosting service hostname")

	return cmd
}

// newAuthStatusCommand creates the auth status command.
func newAuthStatusCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current credential state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := usecase.NewAuthStatus(hostingFor(c))
			out, err := uc.Execute(cmd.Context())
			if err != nil {
				return err
			}

			s := out.Session
			if !s.LoggedIn {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in to %s as %s\n", s.Host, s.User)
			return nil
		},
	}
	return cmd
}
