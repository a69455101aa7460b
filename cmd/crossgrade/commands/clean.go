package commands

import (
	"github.com/crossgrade/crossgrade/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Delete cached resolutions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target, _ := cmd.Flags().GetString("target")

			return c.app.Clean(cmd.Context(), app.CleanOptions{
				Target: target,
			})
		},
	}

	cmd.Flags().StringP("target", "t", "", "Clean only this target's resolutions (default: all targets)")

	return cmd
}
