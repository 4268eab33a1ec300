package cli

import (
	"fmt"

	"github.com/okigami/repoctl/internal/app"
	"github.com/okigami/repoctl/internal/usecase"
	"github.com/spf13/cobra"
)

// newSecretCommand creates the secret command group.
func newSecretCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secret",
		Short: "Manage actions secrets",
	}
	cmd.AddCommand(
		newSecretSetCommand(c),
		newSecretDeleteCommand(c),
	)
	return cmd
}

// newSecretSetCommand creates the secret set command.
func newSecretSetCommand(c *app.Container) *cobra.Command {
	var value string

	cmd := &cobra.Command{
		Use:   "set <name>",
		Short: "Set an actions secret",
		Long: `Set an actions secret on the hosted repository.

Without --value the secret is read from a masked interactive prompt,
which keeps the plaintext out of shell history. The plaintext never
appears in repoctl output or logs either way.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireRepo(c)
			if err != nil {
				return err
			}

			if value == "" {
				value, err = askSecretFunc(fmt.Sprintf("Value for secret %s", args[0]))
				if err != nil {
					return err
				}
			}

			uc := c.SetSecretUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.SetSecretInput{
				Name:  args[0],
				Value: value,
			})
			if err != nil {
				return err
			}
			if out.Output != "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Output)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set secret %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "Secret value (omit to be prompted)")

	return cmd
}

// newSecretDeleteCommand creates the secret delete command.
func newSecretDeleteCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete an actions secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireRepo(c)
			if err != nil {
				return err
			}

			uc := c.DeleteSecretUseCase()
			if err := uc.Execute(cmd.Context(), usecase.DeleteSecretInput{Name: args[0]}); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted secret %s\n", args[0])
			return nil
		},
	}
	return cmd
}
