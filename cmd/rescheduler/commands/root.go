// Package commands implements the CLI commands for rescheduler.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/rescheduler/internal/app"
	"go.trai.ch/rescheduler/internal/build"
	"go.trai.ch/rescheduler/internal/core/domain"
)

// CLI represents the command line interface for rescheduler.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	world    string
	jsonLogs bool
	trace    bool
	shutdown func(context.Context) error
}

// Application represents the application logic interface.
type Application interface {
	BeginEpoch(ctx context.Context, path string) (app.EpochReport, error)
	Route(ctx context.Context, q app.RouteQuery) (domain.Path, error)
	LoadBatch(path string) ([]app.RouteQuery, error)
	RouteBatch(ctx context.Context, queries []app.RouteQuery, jobs int) ([]app.RouteResult, error)
	Dump(w io.Writer) error
	Watch(ctx context.Context, path string, opts app.WatchOptions) error
	SetJSONLogs(enable bool)
	EnableTracing(w io.Writer) (func(context.Context) error, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "rescheduler",
		Short:         "Route finding with an epoch-scoped path cache",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.world, "world", "w", ".", "World file, or a directory searched upwards for "+domain.WorldFileName)
	flags.BoolVar(&c.jsonLogs, "json-logs", false, "Write logs as JSON")
	flags.BoolVar(&c.trace, "trace", false, "Export trace spans to stderr")
	rootCmd.PersistentPreRunE = c.setup

	rootCmd.AddCommand(c.newRouteCmd())
	rootCmd.AddCommand(c.newBatchCmd())
	rootCmd.AddCommand(c.newDumpCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// setup applies the global flags before any subcommand runs.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	c.app.SetJSONLogs(c.jsonLogs)
	if !c.trace {
		return nil
	}
	shutdown, err := c.app.EnableTracing(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	c.shutdown = shutdown
	return nil
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	err := c.rootCmd.Execute()
	if c.shutdown != nil {
		err = errors.Join(err, c.shutdown(context.WithoutCancel(ctx)))
	}
	return err
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
