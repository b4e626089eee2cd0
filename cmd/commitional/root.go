package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wannabewayno/commitional/internal/app"
	"github.com/wannabewayno/commitional/internal/config"
	"github.com/wannabewayno/commitional/internal/logging"
	"github.com/wannabewayno/commitional/internal/project"
)

// deps are the process-level resources commands run against.
type deps struct {
	fs afero.Fs
	// logWriter replaces the rotated log file when set
	logWriter io.Writer
}

// createNewRootCommand creates the main root command that shows help by default.
func createNewRootCommand() *cobra.Command {
	return newRootCommand(deps{fs: afero.NewOsFs()})
}

func newRootCommand(d deps) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "commitional",
		Short:         "Lint and repair commit messages",
		Long:          "Lint and repair conventional commit messages against a declarative rule set",
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Show help when run without subcommands
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to config file (default: discover .commitional.yaml)")
	rootCmd.PersistentFlags().String("root", "", "Project root (default: nearest directory with a config or .git)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: trace, debug, info, warn, error")

	rootCmd.AddCommand(
		createLintCommand(d),
		createFixCommand(d),
		createBreakingCommand(d),
		createDescribeCommand(d),
		createTemplateCommand(d),
		createValidateCommand(d),
		createNamespaceCommand(d),
		createInitCommand(d),
	)

	return rootCmd
}

// findProjectRoot returns the --root flag or the detected project root
func findProjectRoot(cmd *cobra.Command, fs afero.Fs) (string, error) {
	root, err := cmd.Flags().GetString("root")
	if err != nil {
		return "", fmt.Errorf("failed to get root flag: %w", err)
	}
	if root != "" {
		abs, err := filepath.Abs(root)
		if err != nil {
			return "", fmt.Errorf("invalid root %s: %w", root, err)
		}
		return abs, nil
	}

	root, err = project.FindRoot(fs)
	if err != nil {
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	return root, nil
}

// resolveConfigPath returns the --config flag, or a discovered config file, or "" for
// the built-in rules
func resolveConfigPath(cmd *cobra.Command, fs afero.Fs, root string) (string, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return "", fmt.Errorf("failed to get config flag: %w", err)
	}

	if configPath != "" {
		exists, err := afero.Exists(fs, configPath)
		if err != nil {
			return "", fmt.Errorf("failed to check config %s: %w", configPath, err)
		}
		if !exists {
			return "", fmt.Errorf("config file not found: %s", configPath)
		}
		return configPath, nil
	}

	path, found, _ := app.FindConfig(root, "")
	if !found {
		return "", nil
	}
	return path, nil
}

// initLogging attaches a logger writing to the rotated log file, or to d.logWriter
func initLogging(cmd *cobra.Command, d deps, root string) (context.Context, error) {
	levelName, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-level flag: %w", err)
	}

	ctx, err := logging.New(context.Background(), d.fs, logging.Config{
		Writer:    d.logWriter,
		ProjectID: project.ID(root),
		Command:   cmd.Name(),
		Level:     logging.ParseLevel(levelName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return ctx, nil
}

// createAppFromCommand resolves root, config and logging and creates an App
func createAppFromCommand(cmd *cobra.Command, d deps) (context.Context, *app.App, error) {
	root, err := findProjectRoot(cmd, d.fs)
	if err != nil {
		return nil, nil, err
	}

	ctx, err := initLogging(cmd, d, root)
	if err != nil {
		return nil, nil, err
	}

	configPath, err := resolveConfigPath(cmd, d.fs, root)
	if err != nil {
		return nil, nil, err
	}
	ctx = applyConfigLevel(ctx, cmd, d.fs, configPath)
	logging.Get(ctx).Debug().Str("root", root).Str("config_path", configPath).Msg("starting")

	return ctx, app.NewAppWithOptions(app.AppOptions{
		Fs:          d.fs,
		ConfigPath:  configPath,
		ProjectRoot: root,
	}), nil
}

// applyConfigLevel uses the config file's logging.level unless --log-level was given
func applyConfigLevel(ctx context.Context, cmd *cobra.Command, fs afero.Fs, configPath string) context.Context {
	if configPath == "" || cmd.Flags().Changed("log-level") {
		return ctx
	}
	partial, err := config.LoadPartialFile(fs, configPath)
	if err != nil || partial.Logging.Level == "" {
		return ctx
	}
	return logging.WithLevel(ctx, logging.ParseLevel(partial.Logging.Level))
}

// readInput reads a named file, or stdin for "-"
func readInput(cmd *cobra.Command, fs afero.Fs, name string) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("error reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := afero.ReadFile(fs, name)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	return string(data), nil
}

// writeMessage writes a message back to its file with a trailing newline
func writeMessage(fs afero.Fs, name, msg string) error {
	info, err := fs.Stat(name)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", name, err)
	}
	if err := afero.WriteFile(fs, name, []byte(msg+"\n"), info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
