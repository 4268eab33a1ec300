package cli

import (
	"fmt"

	"github.com/okigami/repoctl/internal/app"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

// newConfigCommand creates the config command group.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage repoctl configuration",
	}
	cmd.AddCommand(
		newConfigInitCommand(c),
		newConfigShowCommand(c),
	)
	return cmd
}

// newConfigInitCommand creates the config init command.
func newConfigInitCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file for this repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := requireRepo(c)
			if err != nil {
				return err
			}
			path, err := c.ConfigManager.Init()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	return cmd
}

// newConfigShowCommand creates the config show command.
func newConfigShowCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Show the effective configuration: defaults overlaid with the
global config file and then this repository's config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := requireRepo(c)
			if err != nil {
				return err
			}
			cfg, err := c.ConfigLoader.Load()
			if err != nil {
				return err
			}
			data, err := toml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			_, _ = cmd.OutOrStdout().Write(data)
			return nil
		},
	}
	return cmd
}
