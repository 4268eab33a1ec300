package cli

import (
	"fmt"

	"github.com/okigami/repoctl/internal/app"
	"github.com/okigami/repoctl/internal/usecase"
	"github.com/spf13/cobra"
)

// newRepoCommand creates the repo command group. Repo commands work
// outside a git repository.
func newRepoCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repo",
		Short: "Manage hosted repositories",
	}
	cmd.AddCommand(
		newRepoCreateCommand(c),
		newRepoCloneCommand(c),
	)
	return cmd
}

// newRepoCreateCommand creates the repo create command.
func newRepoCreateCommand(c *app.Container) *cobra.Command {
	var description string
	var private bool
	var clone bool

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a hosted repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := usecase.NewCreateRepo(hostingFor(c))
			out, err := uc.Execute(cmd.Context(), usecase.CreateRepoInput{
				Name:        args[0],
				Description: description,
				Private:     private,
				Clone:       clone,
			})
			if err != nil {
				return err
			}
			if out.Output != "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Repository description")
	cmd.Flags().BoolVar(&private, "private", false, "Create a private repository")
	cmd.Flags().BoolVar(&clone, "clone", false, "Clone the new repository locally")

	return cmd
}

// newRepoCloneCommand creates the repo clone command.
func newRepoCloneCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clone <owner/repo> [directory]",
		Short: "Clone a hosted repository",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) == 2 {
				dir = args[1]
			}
			uc := usecase.NewCloneRepo(hostingFor(c))
			return uc.Execute(cmd.Context(), usecase.CloneRepoInput{
				NameWithOwner: args[0],
				Dir:           dir,
			})
		},
	}
	return cmd
}
