package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createValidateCommand creates the validate command.
func createValidateCommand(d deps) *cobra.Command {
	return &cobra.Command{
		Use:          "validate",
		Short:        "Validate configuration file",
		Long:         "Validate configuration file. Exits non-zero when any rule is invalid.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, a, err := createAppFromCommand(cmd, d)
			if err != nil {
				return err
			}

			result, ok, err := a.ValidateConfig()
			if err != nil {
				return fmt.Errorf("validation error: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), result)
			if !ok {
				return &ExitError{Code: 1}
			}
			return nil
		},
	}
}
