package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/dexview/internal/app"
)

func newShowCmd(flags *rootFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Look up one species and print it",
		Long: `Look up one species and print the result to stdout. The name is
case-insensitive. Diagnostics are written to stderr.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Show(cmd.Context(), flags.options(), args[0], format, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text or html (default from config)")
	return cmd
}
