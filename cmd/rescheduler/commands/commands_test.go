package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rescheduler/cmd/rescheduler/commands"
	"go.trai.ch/rescheduler/internal/app"
	"go.trai.ch/rescheduler/internal/build"
	"go.trai.ch/rescheduler/internal/core/domain"
)

type mockApp struct {
	epochPaths []string
	queries    []app.RouteQuery
	jsonLogs   bool
	traced     bool
	shutdowns  int

	routeFunc func(q app.RouteQuery) (domain.Path, error)
	batch     []app.RouteQuery
	results   []app.RouteResult
	jobs      int
	watchOpts app.WatchOptions
	epochErr  error
}

func (m *mockApp) BeginEpoch(_ context.Context, path string) (app.EpochReport, error) {
	m.epochPaths = append(m.epochPaths, path)
	return app.EpochReport{Source: path}, m.epochErr
}

func (m *mockApp) Route(_ context.Context, q app.RouteQuery) (domain.Path, error) {
	m.queries = append(m.queries, q)
	if m.routeFunc != nil {
		return m.routeFunc(q)
	}
	return domain.NewNodes([]string{q.Start, q.End}), nil
}

func (m *mockApp) LoadBatch(string) ([]app.RouteQuery, error) {
	return m.batch, nil
}

func (m *mockApp) RouteBatch(_ context.Context, _ []app.RouteQuery, jobs int) ([]app.RouteResult, error) {
	m.jobs = jobs
	return m.results, nil
}

func (m *mockApp) Dump(w io.Writer) error {
	_, err := io.WriteString(w, "0 entries, 0 unreachable\n")
	return err
}

func (m *mockApp) Watch(_ context.Context, path string, opts app.WatchOptions) error {
	m.epochPaths = append(m.epochPaths, path)
	m.watchOpts = opts
	if opts.Ready != nil {
		opts.Ready("127.0.0.1:9090")
	}
	return nil
}

func (m *mockApp) SetJSONLogs(enable bool) {
	m.jsonLogs = enable
}

func (m *mockApp) EnableTracing(io.Writer) (func(context.Context) error, error) {
	m.traced = true
	return func(context.Context) error {
		m.shutdowns++
		return nil
	}, nil
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	cli := commands.New(a)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Route(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		mock := &mockApp{}
		out, err := execute(t, mock, "route", "Town", "Mine",
			"--world", "/tmp/w", "--access", "b", "--no-partial", "--depth", "3", "--json-logs")
		require.NoError(t, err)

		assert.Equal(t, []string{"/tmp/w"}, mock.epochPaths)
		require.Len(t, mock.queries, 1)
		q := mock.queries[0]
		assert.Equal(t, "Town", q.Start)
		assert.Equal(t, "Mine", q.End)
		assert.Equal(t, domain.ClassB, q.Access)
		assert.Equal(t, 3, q.Depth)
		require.NotNil(t, q.Partial)
		assert.False(t, *q.Partial)
		assert.True(t, mock.jsonLogs)
		assert.Equal(t, "Town → Mine\n", out)
	})

	t.Run("partial defaults to the world setting", func(t *testing.T) {
		mock := &mockApp{}
		_, err := execute(t, mock, "route", "Town", "Mine")
		require.NoError(t, err)
		require.Len(t, mock.queries, 1)
		assert.Nil(t, mock.queries[0].Partial)
		assert.Equal(t, []string{"."}, mock.epochPaths)
	})

	t.Run("conflicting partial flags", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "route", "Town", "Mine", "--partial", "--no-partial")
		require.Error(t, err)
	})

	t.Run("unknown access class", func(t *testing.T) {
		mock := &mockApp{}
		_, err := execute(t, mock, "route", "Town", "Mine", "--access", "c")
		require.ErrorIs(t, err, domain.ErrUnknownAccessClass)
		assert.Empty(t, mock.epochPaths)
	})

	t.Run("no route", func(t *testing.T) {
		mock := &mockApp{routeFunc: func(app.RouteQuery) (domain.Path, error) {
			return nil, domain.ErrNoRoute
		}}
		out, err := execute(t, mock, "route", "Town", "Island", "--dump")
		require.ErrorIs(t, err, domain.ErrNoRoute)
		assert.Equal(t, "✗ no route\n0 entries, 0 unreachable\n", out)
	})

	t.Run("epoch failure", func(t *testing.T) {
		mock := &mockApp{epochErr: domain.ErrWorldNotFound}
		_, err := execute(t, mock, "route", "Town", "Mine")
		require.ErrorIs(t, err, domain.ErrWorldNotFound)
		assert.Empty(t, mock.queries)
	})
}

func TestCommands_Batch(t *testing.T) {
	queries := []app.RouteQuery{{Start: "Town", End: "Mine"}, {Start: "Town", End: "Island"}}

	t.Run("prints results in order", func(t *testing.T) {
		mock := &mockApp{
			batch: queries[:1],
			results: []app.RouteResult{
				{Query: queries[0], Path: domain.NewNodes([]string{"Town", "Forest", "Mine"})},
			},
		}
		out, err := execute(t, mock, "batch", "queries.yaml", "--jobs", "4")
		require.NoError(t, err)
		assert.Equal(t, 4, mock.jobs)
		assert.Equal(t, "Town -> Mine [any]: Town → Forest → Mine\n", out)
	})

	t.Run("fails when a query has no route", func(t *testing.T) {
		mock := &mockApp{
			batch: queries,
			results: []app.RouteResult{
				{Query: queries[0], Path: domain.NewNodes([]string{"Town", "Mine"})},
				{Query: queries[1], Err: domain.ErrNoRoute},
			},
		}
		out, err := execute(t, mock, "batch", "queries.yaml")
		require.ErrorIs(t, err, domain.ErrNoRoute)
		assert.Contains(t, out, "Town -> Island [any]: ✗ no route")
	})
}

func TestCommands_Dump(t *testing.T) {
	mock := &mockApp{}
	out, err := execute(t, mock, "dump", "-w", "world.yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{"world.yaml"}, mock.epochPaths)
	assert.Equal(t, "0 entries, 0 unreachable\n", out)
}

func TestCommands_Watch(t *testing.T) {
	mock := &mockApp{}
	out, err := execute(t, mock, "watch", "--metrics-addr", ":9090", "--debounce", "1s")
	require.NoError(t, err)
	assert.Equal(t, ":9090", mock.watchOpts.MetricsAddr)
	assert.Equal(t, "1s", mock.watchOpts.Debounce.String())
	assert.Contains(t, out, "serving metrics on http://127.0.0.1:9090/metrics")
}

func TestCommands_Trace(t *testing.T) {
	mock := &mockApp{}
	_, err := execute(t, mock, "dump", "--trace")
	require.NoError(t, err)
	assert.True(t, mock.traced)
	assert.Equal(t, 1, mock.shutdowns)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{})
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")

	out, err = execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
}

func TestCommands_UnknownCommand(t *testing.T) {
	_, err := execute(t, &mockApp{}, "teleport")
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrNoRoute))
}
