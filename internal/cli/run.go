package cli

import (
	"fmt"
	"strconv"

	"github.com/okigami/repoctl/internal/app"
	"github.com/okigami/repoctl/internal/usecase"
	"github.com/spf13/cobra"
)

// newRunCommand creates the run command group.
func newRunCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Manage workflow runs",
	}
	cmd.AddCommand(
		newRunListCommand(c),
		newRunDeleteCommand(c),
		newRunViewCommand(c),
	)
	return cmd
}

// newRunListCommand creates the run list command.
func newRunListCommand(c *app.Container) *cobra.Command {
	var workflow string
	var limit int
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List workflow runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := requireRepo(c)
			if err != nil {
				return err
			}

			uc := c.ListRunsUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListRunsInput{
				Workflow: workflow,
				Limit:    limit,
			})
			if err != nil {
				return err
			}
			return renderList(cmd.OutOrStdout(), format, out.Runs, func() string {
				return renderRuns(out.Runs)
			})
		},
	}

	cmd.Flags().StringVarP(&workflow, "workflow", "w", "", "Filter by workflow-name substring")
	cmd.Flags().IntVarP(&limit, "limit", "L", 0, "Maximum number of runs to list")
	cmd.Flags().StringVarP(&format, "output", "o", formatText, "Output format: text, json, or yaml")

	return cmd
}

// newRunDeleteCommand creates the run delete command.
func newRunDeleteCommand(c *app.Container) *cobra.Command {
	var workflow string
	var all bool
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete [run-id...]",
		Short: "Delete workflow runs",
		Long: `Delete workflow runs by ID, or in bulk with --all
(optionally narrowed to workflows whose name contains --workflow).

Bulk deletion asks for confirmation unless --yes is given.

Examples:
  # Delete two specific runs
  repoctl run delete 123456 123457

  # Delete every run of workflows matching "nightly"
  repoctl run delete --all --workflow nightly -y`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireRepo(c)
			if err != nil {
				return err
			}

			ids := make([]int64, 0, len(args))
			for _, arg := range args {
				id, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid run ID %q: %w", arg, err)
				}
				ids = append(ids, id)
			}

			if all && !yes {
				scope := "all workflow runs"
				if workflow != "" {
					scope = fmt.Sprintf("all runs of workflows matching %q", workflow)
				}
				ok, err := confirmFunc("Delete " + scope + "?")
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
			}

			uc := c.DeleteRunsUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.DeleteRunsInput{
				Workflow: workflow,
				IDs:      ids,
				All:      all,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d workflow run(s)\n", len(out.Deleted))
			return nil
		},
	}

	cmd.Flags().StringVarP(&workflow, "workflow", "w", "", "Workflow-name substring for bulk deletion")
	cmd.Flags().BoolVar(&all, "all", false, "Delete every matching run")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

// newRunViewCommand creates the run view command.
func newRunViewCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <run-id>",
		Short: "Show one workflow run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireRepo(c)
			if err != nil {
				return err
			}

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid run ID %q: %w", args[0], err)
			}

			out, err := c.Hosting.ViewRun(id)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	return cmd
}
