package cli

import (
	"fmt"

	"github.com/okigami/repoctl/internal/app"
	"github.com/okigami/repoctl/internal/domain"
	"github.com/okigami/repoctl/internal/usecase"
	"github.com/spf13/cobra"
)

// confirmFunc is a function variable for the confirmation prompt,
// allowing it to be mocked in tests.
var confirmFunc = defaultConfirm

// newRevertCommand creates the revert command.
func newRevertCommand(c *app.Container) *cobra.Command {
	var keep []string
	var just []string
	var message string
	var yes bool

	cmd := &cobra.Command{
		Use:   "revert <commitish>",
		Short: "Revert the working tree to a commit",
		Long: `Revert the working tree to a commit.

Two mutually exclusive modes:

  --just FILE   restore only the listed files from the commit and
                record a new commit; everything else stays untouched
  --keep FILE   hard-reset the whole tree to the commit, but preserve
                the current content of the listed files across the reset

The keep mode discards local changes irreversibly; push anything you
need to keep first. Every listed file is validated before the first
destructive step runs.

Examples:
  # Restore just config.yaml from v1.2.0
  repoctl revert v1.2.0 --just config.yaml

  # Reset to abc123 but keep the current secrets.env
  repoctl revert abc123 --keep secrets.env -y`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireRepo(c)
			if err != nil {
				return err
			}

			req := domain.RevertRequest{
				Commit:  args[0],
				Message: message,
				Keep:    keep,
				Just:    just,
			}
			if err := req.Validate(); err != nil {
				return err
			}

			// Only the keep branch is destructive.
			if len(just) == 0 && !yes {
				ok, err := confirmFunc(fmt.Sprintf(
					"Hard-reset %s to %s? Local changes will be lost.",
					c.Config.RepoRoot, args[0]))
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
			}

			uc := c.RevertCommitUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.RevertCommitInput{Request: req})
			if err != nil {
				return err
			}

			if out.Committed {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Reverted to %s (new commit recorded)\n", out.Commit)
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Already at %s, nothing to commit\n", out.Commit)
			}
			for _, f := range out.Preserved {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  preserved %s\n", f)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&keep, "keep", nil, "Files to preserve across a full reset")
	cmd.Flags().StringSliceVar(&just, "just", nil, "Files to selectively restore from the commit")
	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message for the revert commit")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
