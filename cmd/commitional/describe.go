package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// createDescribeCommand creates the describe command.
func createDescribeCommand(d deps) *cobra.Command {
	return &cobra.Command{
		Use:          "describe",
		Short:        "Explain the active rules",
		Long:         "Print the message template followed by a description of every active rule, grouped by part",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, a, err := createAppFromCommand(cmd, d)
			if err != nil {
				return err
			}

			out, err := a.Describe(ctx)
			if err != nil {
				return fmt.Errorf("describe failed: %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// createTemplateCommand creates the template command.
func createTemplateCommand(d deps) *cobra.Command {
	var choices bool

	cmd := &cobra.Command{
		Use:          "template",
		Short:        "Print the shape of a valid commit message",
		Long:         "Print the shape of a valid commit message. With --choices, also list the values each enum-bound part accepts",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, a, err := createAppFromCommand(cmd, d)
			if err != nil {
				return err
			}

			out, err := a.Template(ctx)
			if err != nil {
				return fmt.Errorf("template failed: %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
			if !choices {
				return nil
			}

			list, err := a.Choices(ctx)
			if err != nil {
				return fmt.Errorf("template failed: %w", err)
			}
			for _, c := range list {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\n<%s>: %s\n", c.Part, strings.Join(c.Values, " | "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&choices, "choices", false, "list the values enum rules allow for each part")
	return cmd
}
