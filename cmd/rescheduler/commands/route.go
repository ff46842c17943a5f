package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/rescheduler/internal/app"
	"go.trai.ch/rescheduler/internal/core/domain"
	"go.trai.ch/rescheduler/internal/ui/output"
)

func (c *CLI) newRouteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route START END",
		Short: "Find a route between two nodes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			accessTag, _ := cmd.Flags().GetString("access")
			depth, _ := cmd.Flags().GetInt("depth")
			dump, _ := cmd.Flags().GetBool("dump")

			access, err := domain.ParseAccessClass(accessTag)
			if err != nil {
				return err
			}

			q := app.RouteQuery{
				Start:  args[0],
				End:    args[1],
				Access: access,
				Depth:  depth,
			}
			switch {
			case cmd.Flags().Changed("partial"):
				partial, _ := cmd.Flags().GetBool("partial")
				q.Partial = &partial
			case cmd.Flags().Changed("no-partial"):
				noPartial, _ := cmd.Flags().GetBool("no-partial")
				partial := !noPartial
				q.Partial = &partial
			}

			ctx := cmd.Context()
			if _, err := c.app.BeginEpoch(ctx, c.world); err != nil {
				return err
			}

			p, routeErr := c.app.Route(ctx, q)
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, output.FormatRoute(output.Renderer(out), p))

			if dump {
				if err := c.app.Dump(out); err != nil {
					return err
				}
			}
			return routeErr
		},
	}
	cmd.Flags().StringP("access", "a", "any", "Access class of the requester: a, b or any")
	cmd.Flags().Bool("partial", false, "Allow stitching cached partial routes")
	cmd.Flags().Bool("no-partial", false, "Disallow stitching cached partial routes")
	cmd.Flags().IntP("depth", "d", 0, "Maximum number of hops to search, 0 for unbounded")
	cmd.Flags().Bool("dump", false, "Print the route cache after the query")
	cmd.MarkFlagsMutuallyExclusive("partial", "no-partial")
	return cmd
}
