package commands

import (
	"github.com/crossgrade/crossgrade/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the installed inventory against a target distribution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fromFile, _ := cmd.Flags().GetString("from-file")
			target, _ := cmd.Flags().GetString("target")
			limit, _ := cmd.Flags().GetInt("limit")
			refresh, _ := cmd.Flags().GetBool("refresh")
			report, _ := cmd.Flags().GetString("report")
			output, _ := cmd.Flags().GetString("output")
			ci, _ := cmd.Flags().GetBool("ci")

			return c.app.Resolve(cmd.Context(), app.ResolveOptions{
				FromFile:   fromFile,
				Target:     target,
				Limit:      limit,
				Refresh:    refresh,
				ReportPath: report,
				OutputMode: output,
				CI:         ci,
			})
		},
	}
	cmd.Flags().StringP("from-file", "f", "", "Read the package inventory from a file instead of the host package manager")
	cmd.Flags().StringP("target", "t", "", "Target distribution ID (defaults to the configured target)")
	cmd.Flags().IntP("limit", "l", 0, "Resolve at most this many packages (0 means all)")
	cmd.Flags().Bool("refresh", false, "Discard the target's cached resolutions before resolving")
	cmd.Flags().StringP("report", "r", "", "Write a YAML mapping report to this path")
	cmd.Flags().StringP("output", "o", "auto", "Output mode: auto, linear, or quiet")
	cmd.Flags().Bool("ci", false, "Plain linear output without colors for pipeline logs")
	return cmd
}
