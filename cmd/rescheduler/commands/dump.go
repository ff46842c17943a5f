package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the route cache after pre-seeding from the hub",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := c.app.BeginEpoch(cmd.Context(), c.world); err != nil {
				return err
			}
			return c.app.Dump(cmd.OutOrStdout())
		},
	}
}
