package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/rescheduler/internal/core/domain"
	"go.trai.ch/rescheduler/internal/ui/output"
	"go.trai.ch/zerr"
)

func (c *CLI) newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Resolve a file of route queries concurrently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, _ := cmd.Flags().GetInt("jobs")

			queries, err := c.app.LoadBatch(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if _, err := c.app.BeginEpoch(ctx, c.world); err != nil {
				return err
			}

			results, err := c.app.RouteBatch(ctx, queries, jobs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			r := output.Renderer(out)
			failed := 0
			for _, res := range results {
				if res.Err != nil {
					failed++
				}
				_, _ = fmt.Fprintf(out, "%s: %s\n", res.Query, output.FormatRoute(r, res.Path))
			}

			if failed > 0 {
				err := zerr.With(zerr.Wrap(domain.ErrNoRoute, "batch incomplete"), "failed", failed)
				return zerr.With(err, "total", len(results))
			}
			return nil
		},
	}
	cmd.Flags().IntP("jobs", "j", 0, "Number of concurrent queries, 0 for one per CPU")
	return cmd
}
