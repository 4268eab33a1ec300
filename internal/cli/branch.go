package cli

import (
	"fmt"

	"github.com/okigami/repoctl/internal/app"
	"github.com/okigami/repoctl/internal/usecase"
	"github.com/spf13/cobra"
)

// newBranchCommand creates the branch command group.
func newBranchCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "branch",
		Short: "Manage local branches",
	}
	cmd.AddCommand(
		newBranchCreateCommand(c),
		newBranchDeleteCommand(c),
		newBranchRenameCommand(c),
	)
	return cmd
}

// newBranchCreateCommand creates the branch create command.
func newBranchCreateCommand(c *app.Container) *cobra.Command {
	var start string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a branch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireRepo(c)
			if err != nil {
				return err
			}
			uc := c.ManageBranchUseCase()
			if err := uc.Create(cmd.Context(), usecase.BranchInput{Name: args[0], Start: start}); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created branch %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start point (defaults to HEAD)")

	return cmd
}

// newBranchDeleteCommand creates the branch delete command.
func newBranchDeleteCommand(c *app.Container) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a branch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireRepo(c)
			if err != nil {
				return err
			}
			uc := c.ManageBranchUseCase()
			if err := uc.Delete(cmd.Context(), usecase.BranchInput{Name: args[0], Force: force}); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted branch %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Delete even if unmerged")

	return cmd
}

// newBranchRenameCommand creates the branch rename command.
func newBranchRenameCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <old> <new>",
		Short: "Rename a branch",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireRepo(c)
			if err != nil {
				return err
			}
			uc := c.ManageBranchUseCase()
			if err := uc.Rename(cmd.Context(), usecase.BranchInput{Name: args[0], NewName: args[1]}); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Renamed branch %s to %s\n", args[0], args[1])
			return nil
		},
	}
	return cmd
}
