package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wannabewayno/commitional/internal/app"
)

// createFixCommand creates the fix command.
func createFixCommand(d deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "fix FILE",
		Short:        "Repair a commit message in place",
		Long:         "Apply every fixable rule to a commit message and write it back. Unfixable violations are reported.",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			toStdout, err := cmd.Flags().GetBool("stdout")
			if err != nil {
				return fmt.Errorf("failed to get stdout flag: %w", err)
			}

			ctx, a, err := createAppFromCommand(cmd, d)
			if err != nil {
				return err
			}

			name := args[0]
			raw, err := readInput(cmd, d.fs, name)
			if err != nil {
				return err
			}

			report, err := a.Fix(ctx, app.Input{Raw: raw})
			if err != nil {
				return fmt.Errorf("fix failed: %w", err)
			}
			if report.Err != nil {
				app.WriteReport(cmd.ErrOrStderr(), report)
				return &ExitError{Code: 1}
			}

			fixed := report.Message.String()
			if toStdout || name == "-" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), fixed)
			} else if err := writeMessage(d.fs, name, fixed); err != nil {
				return err
			}

			if !report.Valid {
				app.WriteReport(cmd.ErrOrStderr(), report)
				return &ExitError{Code: 1}
			}
			return nil
		},
	}

	cmd.Flags().Bool("stdout", false, "Print the fixed message instead of rewriting the file")
	return cmd
}
