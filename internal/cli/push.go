package cli

import (
	"fmt"

	"github.com/okigami/repoctl/internal/app"
	"github.com/okigami/repoctl/internal/usecase"
	"github.com/spf13/cobra"
)

// newPushCommand creates the push command.
func newPushCommand(c *app.Container) *cobra.Command {
	var remote string
	var branch string
	var force bool
	var setUpstream bool

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Push a branch to a remote",
		Long: `Push a branch to a remote. Remote defaults to the configured
default, branch to the current branch.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := requireRepo(c)
			if err != nil {
				return err
			}

			uc := c.PushUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.PushInput{
				Remote:      remote,
				Branch:      branch,
				Force:       force,
				SetUpstream: setUpstream,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Pushed %s to %s\n", out.Branch, out.Remote)
			return nil
		},
	}

	cmd.Flags().StringVarP(&remote, "remote", "r", "", "Remote to push to")
	cmd.Flags().StringVarP(&branch, "branch", "b", "", "Branch to push")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Force push")
	cmd.Flags().BoolVarP(&setUpstream, "set-upstream", "u", false, "Set the upstream for the branch")

	return cmd
}
