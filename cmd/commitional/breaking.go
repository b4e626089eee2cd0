package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createBreakingCommand creates the breaking command.
func createBreakingCommand(d deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "breaking FILE",
		Short:        "Toggle the breaking-change markers of a commit message",
		Long:         "Toggle the \"!\" marker, breaking emoji and BREAKING CHANGE footer of a commit message",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			reason, err := cmd.Flags().GetString("reason")
			if err != nil {
				return fmt.Errorf("failed to get reason flag: %w", err)
			}
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

			msg, breaking, err := a.ToggleBreaking(ctx, raw, reason)
			if err != nil {
				return fmt.Errorf("breaking toggle failed: %w", err)
			}

			if toStdout || name == "-" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), msg)
				return nil
			}
			if err := writeMessage(d.fs, name, msg); err != nil {
				return err
			}
			state := "not breaking"
			if breaking {
				state = "breaking"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", name, state)
			return nil
		},
	}

	cmd.Flags().StringP("reason", "r", "", "Text of the BREAKING CHANGE footer")
	cmd.Flags().Bool("stdout", false, "Print the message instead of rewriting the file")
	return cmd
}
