// Package cli provides the command-line interface for repoctl.
package cli

import (
	"github.com/okigami/repoctl/internal/app"
	"github.com/okigami/repoctl/internal/domain"
	"github.com/okigami/repoctl/internal/infra/executor"
	"github.com/okigami/repoctl/internal/infra/gh"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupRepo    = "repo"
	groupRelease = "release"
	groupRuns    = "runs"
	groupAuth    = "auth"
)

// NewRootCommand creates the root command for repoctl.
// It receives the container for dependency injection and version for display.
// The container may be nil when the current directory is not a git
// repository; only the auth and repo subcommands work in that case.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "repoctl",
		Short: "Script common repository-management tasks",
		Long: `repoctl scripts common repository-management tasks by driving the
git client and the gh CLI with validated, parameterized invocations:
creating releases with binary assets, cleaning up workflow runs,
setting actions secrets, and reverting commits.

Invocations are strictly sequential; never run two repoctl commands
against the same repository at the same time.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupRepo, Title: "Repository Operations:"},
		&cobra.Group{ID: groupRelease, Title: "Release Management:"},
		&cobra.Group{ID: groupRuns, Title: "Workflow Runs:"},
		&cobra.Group{ID: groupAuth, Title: "Hosting Service:"},
	)

	// Repository operations
	revertCmd := newRevertCommand(c)
	revertCmd.GroupID = groupRepo

	pushCmd := newPushCommand(c)
	pushCmd.GroupID = groupRepo

	branchCmd := newBranchCommand(c)
	branchCmd.GroupID = groupRepo

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupRepo

	// Release management
	releaseCmd := newReleaseCommand(c)
	releaseCmd.GroupID = groupRelease

	// Workflow runs
	runCmd := newRunCommand(c)
	runCmd.GroupID = groupRuns

	// Hosting service
	secretCmd := newSecretCommand(c)
	secretCmd.GroupID = groupAuth

	authCmd := newAuthCommand(c)
	authCmd.GroupID = groupAuth

	repoCmd := newRepoCommand(c)
	repoCmd.GroupID = groupAuth

	root.AddCommand(
		revertCmd,
		pushCmd,
		branchCmd,
		configCmd,
		releaseCmd,
		runCmd,
		secretCmd,
		authCmd,
		repoCmd,
	)

	return root
}

// hostingFor returns the container's hosting port, or a standalone gh
// client when running outside a git repository (auth and repo commands
// do not need one).
func hostingFor(c *app.Container) domain.Hosting {
	if c != nil {
		return c.Hosting
	}
	return gh.NewClient(executor.NewClient(), "")
}

// requireRepo returns the container, or ErrNotGitRepository for
// commands that cannot run outside a repository.
func requireRepo(c *app.Container) (*app.Container, error) {
	if c == nil {
		return nil, domain.ErrNotGitRepository
	}
	return c, nil
}
