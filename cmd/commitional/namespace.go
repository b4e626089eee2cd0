package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createNamespaceCommand creates the namespace command.
func createNamespaceCommand(d deps) *cobra.Command {
	return &cobra.Command{
		Use:          "namespace [PATH...]",
		Short:        "Show which namespace paths belong to",
		Long:         "Resolve paths against the configured namespaces. Without paths the staged files are used, or the files of HEAD.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, a, err := createAppFromCommand(cmd, d)
			if err != nil {
				return err
			}

			report, err := a.Namespaces(ctx, args)
			if err != nil {
				return fmt.Errorf("namespace lookup failed: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, f := range report.Files {
				m, ok := report.Matches[f]
				if !ok {
					_, _ = fmt.Fprintf(out, "%s -> (none)\n", f)
					continue
				}
				_, _ = fmt.Fprintf(out, "%s -> %s (%s)\n", f, m.Namespace, m.Dir)
			}

			if report.Err != nil {
				return &ExitError{Code: 1, Message: report.Err.Error()}
			}
			return nil
		},
	}
}
