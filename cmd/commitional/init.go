package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/wannabewayno/commitional/internal/app"
	"github.com/wannabewayno/commitional/internal/storage"
)

// createInitCommand creates the init command.
func createInitCommand(d deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "init",
		Short:        "Write a starter configuration file",
		Long:         "Write the built-in conventional rules to .commitional.yaml in the project root, the user config directory with --global, or --config",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, err := cmd.Flags().GetBool("force")
			if err != nil {
				return fmt.Errorf("failed to get force flag: %w", err)
			}
			global, err := cmd.Flags().GetBool("global")
			if err != nil {
				return fmt.Errorf("failed to get global flag: %w", err)
			}
			target, err := cmd.Flags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}

			root, err := findProjectRoot(cmd, d.fs)
			if err != nil {
				return err
			}
			switch {
			case target != "":
			case global:
				dir := storage.New(d.fs).GetConfigDir()
				if err := d.fs.MkdirAll(dir, 0o750); err != nil {
					return fmt.Errorf("failed to create %s: %w", dir, err)
				}
				target = filepath.Join(dir, app.ConfigName+".yaml")
			default:
				target = filepath.Join(root, app.ConfigName+".yaml")
			}

			a := app.NewAppWithOptions(app.AppOptions{Fs: d.fs, ProjectRoot: root})
			if err := a.InitConfig(target, force); err != nil {
				return fmt.Errorf("init failed: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", target)
			return nil
		},
	}

	cmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
	cmd.Flags().Bool("global", false, "Write to the user config directory instead of the project root")
	return cmd
}
