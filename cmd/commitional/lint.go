package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wannabewayno/commitional/internal/app"
)

// createLintCommand creates the lint command.
func createLintCommand(d deps) *cobra.Command {
	return &cobra.Command{
		Use:          "lint [FILE...]",
		Short:        "Check commit messages against the rules",
		Long:         "Check commit messages against the rules. Reads stdin when no file or \"-\" is given.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, a, err := createAppFromCommand(cmd, d)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				args = []string{"-"}
			}
			inputs := make([]app.Input, 0, len(args))
			for _, name := range args {
				raw, err := readInput(cmd, d.fs, name)
				if err != nil {
					return err
				}
				inputs = append(inputs, app.Input{Name: displayName(name, len(args)), Raw: raw})
			}

			reports, err := a.Lint(ctx, inputs)
			if err != nil {
				return fmt.Errorf("lint failed: %w", err)
			}

			failed := 0
			for i, r := range reports {
				if i > 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout())
				}
				app.WriteReport(cmd.OutOrStdout(), r)
				if r.Err != nil || !r.Valid {
					failed++
				}
			}
			if failed > 0 {
				return &ExitError{Code: 1}
			}
			return nil
		},
	}
}

// displayName labels reports only when more than one message is checked
func displayName(name string, total int) string {
	if total < 2 {
		return ""
	}
	if name == "-" {
		return "<stdin>"
	}
	return name
}
