package cli

import (
	"fmt"

	"github.com/okigami/repoctl/internal/app"
	"github.com/okigami/repoctl/internal/usecase"
	"github.com/spf13/cobra"
)

// newReleaseCommand creates the release command group.
func newReleaseCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "release",
		Short: "Manage releases",
	}
	cmd.AddCommand(
		newReleaseCreateCommand(c),
		newReleaseDeleteCommand(c),
		newReleaseListCommand(c),
	)
	return cmd
}

// newReleaseCreateCommand creates the release create command.
func newReleaseCreateCommand(c *app.Container) *cobra.Command {
	var title string
	var notes string
	var target string
	var draft bool
	var prerelease bool
	var generateNotes bool

	cmd := &cobra.Command{
		Use:   "create <tag> [asset...]",
		Short: "Create a release with optional binary assets",
		Long: `Create a release for a tag and upload any listed asset files.

Asset paths are checked locally before the hosting service is invoked,
so a typo in the list aborts the whole operation.

Examples:
  # Plain release
  repoctl release create v1.2.0

  # Draft release with two assets and generated notes
  repoctl release create v1.2.0 dist/tool-linux dist/tool-darwin --draft --generate-notes`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireRepo(c)
			if err != nil {
				return err
			}

			uc := c.CreateReleaseUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.CreateReleaseInput{
				Tag:           args[0],
				Title:         title,
				Notes:         notes,
				Target:        target,
				Assets:        args[1:],
				Draft:         draft,
				Prerelease:    prerelease,
				GenerateNotes: generateNotes,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.URL)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Release title (defaults to the tag)")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Release notes body")
	cmd.Flags().StringVar(&target, "target", "", "Target commitish for the tag")
	cmd.Flags().BoolVar(&draft, "draft", false, "Create the release as a draft")
	cmd.Flags().BoolVar(&prerelease, "prerelease", false, "Mark the release as a prerelease")
	cmd.Flags().BoolVar(&generateNotes, "generate-notes", false, "Let the hosting service generate notes")

	return cmd
}

// newReleaseDeleteCommand creates the release delete command.
func newReleaseDeleteCommand(c *app.Container) *cobra.Command {
	var keepTag bool

	cmd := &cobra.Command{
		Use:   "delete <tag>",
		Short: "Delete a release and its tag",
		Long: `Delete the release for a tag, then the tag itself.

When the release is already gone but the tag still exists, only the
tag is deleted. Use --keep-tag to leave the tag in place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireRepo(c)
			if err != nil {
				return err
			}

			uc := c.DeleteReleaseUseCase()
			if err := uc.Execute(cmd.Context(), usecase.DeleteReleaseInput{
				Tag:     args[0],
				KeepTag: keepTag,
			}); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted release %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&keepTag, "keep-tag", false, "Delete only the release, keep the tag")

	return cmd
}

// newReleaseListCommand creates the release list command.
func newReleaseListCommand(c *app.Container) *cobra.Command {
	var limit int
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List releases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := requireRepo(c)
			if err != nil {
				return err
			}

			uc := c.ListReleasesUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListReleasesInput{Limit: limit})
			if err != nil {
				return err
			}
			return renderList(cmd.OutOrStdout(), format, out.Releases, func() string {
				return renderReleases(out.Releases)
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "L", 0, "Maximum number of releases to list")
	cmd.Flags().StringVarP(&format, "output", "o", formatText, "Output format: text, json, or yaml")

	return cmd
}
