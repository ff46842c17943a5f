package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/rescheduler/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Start a new epoch every time the world file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			metricsAddr, _ := cmd.Flags().GetString("metrics-addr")
			debounce, _ := cmd.Flags().GetDuration("debounce")

			out := cmd.OutOrStdout()
			return c.app.Watch(cmd.Context(), c.world, app.WatchOptions{
				MetricsAddr: metricsAddr,
				Debounce:    debounce,
				Ready: func(addr string) {
					if addr != "" {
						_, _ = fmt.Fprintf(out, "serving metrics on http://%s/metrics\n", addr)
					}
				},
			})
		},
	}
	cmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address")
	cmd.Flags().Duration("debounce", 0, "Quiet period before reloading, 0 for the default")
	return cmd
}
