package option_test

import (
	"io"
	"os"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/morekong/log"
	"github.com/ardnew/morekong/option"
	"github.com/ardnew/morekong/pkg"
)

// restoreRoot resets the root logger when t finishes.
func restoreRoot(t *testing.T) {
	t.Helper()
	t.Cleanup(func() { log.Config(log.WithDefaults(os.Stderr)) })
}

// parse builds a parser for grammar with [option.Setup] and parses args.
func parse(
	t *testing.T,
	grammar any,
	args []string,
	opts ...option.Option,
) error {
	t.Helper()

	parser, err := kong.New(grammar,
		kong.Name("test"),
		kong.Writers(io.Discard, io.Discard),
		kong.Exit(func(int) { t.Fatal("unexpected exit") }),
		option.Setup(opts...),
	)
	require.NoError(t, err)

	_, err = parser.Parse(option.Args(args))

	return err
}

type serve struct {
	option.Host         `embed:""`
	option.Port         `embed:""`
	option.WithGunicorn `embed:""`
	option.Workers      `embed:""`
	option.Force        `embed:""`
	option.Debug        `embed:""`
	option.LogLevel     `embed:""`
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	var cli serve

	require.NoError(t, parse(t, &cli, nil, option.WithCPUs(4)))

	require.Equal(t, "0.0.0.0", cli.Host.Value)
	require.Equal(t, 5000, cli.Port.Value)
	require.False(t, cli.WithGunicorn.Value)
	require.Equal(t, 9, cli.Workers.Value)
	require.False(t, cli.Force.Value)
	require.False(t, cli.Debug.Value)
	require.Equal(t, option.Level("INFO"), cli.LogLevel.Value)
}

func TestFlags(t *testing.T) {
	t.Parallel()

	var cli serve

	err := parse(t, &cli, []string{
		"--host", "127.0.0.1",
		"--port", "8080",
		"--with-gunicorn",
		"--workers", "3",
		"-f",
		"--debug",
		"--log-level", "error",
	})
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1", cli.Host.Value)
	require.Equal(t, 8080, cli.Port.Value)
	require.True(t, cli.WithGunicorn.Value)
	require.Equal(t, 3, cli.Workers.Value)
	require.True(t, cli.Force.Value)
	require.True(t, cli.Debug.Value)
	require.Equal(t, option.Level("ERROR"), cli.LogLevel.Value)
	require.Equal(t, log.LevelError, cli.LogLevel.Value.Level())
}

func TestPort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    int
		wantErr bool
	}{
		{"default", nil, 5000, false},
		{"explicit", []string{"--port", "8080"}, 8080, false},
		{"assigned", []string{"--port=1"}, 1, false},
		{"negative_accepted", []string{"--port=-1"}, -1, false},
		{"out_of_range_accepted", []string{"--port", "70000"}, 70000, false},
		{"not_a_number", []string{"--port", "notanumber"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var cli struct {
				option.Port `embed:""`
			}

			err := parse(t, &cli, tt.args)
			if tt.wantErr {
				require.ErrorContains(t, err, "--port")

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, cli.Port.Value)
		})
	}
}

func TestSetup_Workers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []option.Option
		want int
	}{
		{"four_cpus", []option.Option{option.WithCPUs(4)}, 9},
		{"one_cpu", []option.Option{option.WithCPUs(1)}, 3},
		{"ignores_zero_cpus", []option.Option{option.WithCPUs(0), option.WithCPUs(2)}, 5},
		{
			"custom_expr",
			[]option.Option{option.WithCPUs(8), option.WithWorkersExpr("cpu + 1")},
			9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var cli struct {
				option.Workers `embed:""`
			}

			require.NoError(t, parse(t, &cli, nil, tt.opts...))
			require.Equal(t, tt.want, cli.Workers.Value)
		})
	}
}

func TestSetup_WorkersExprError(t *testing.T) {
	t.Parallel()

	var cli struct {
		option.Workers `embed:""`
	}

	_, err := kong.New(&cli, option.Setup(option.WithWorkersExpr("cpu *")))
	require.ErrorContains(t, err, "invalid workers expression")
}

func TestDefaultWorkers(t *testing.T) {
	t.Parallel()

	for cpus := 1; cpus <= 64; cpus++ {
		got, err := option.EvalWorkers(option.DefaultWorkersExpr, cpus)
		require.NoError(t, err)
		require.Equal(t, option.DefaultWorkers(cpus), got)
		require.Equal(t, 2*cpus+1, got)
	}
}

func TestEvalWorkers_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{"syntax", "cpu *"},
		{"unknown_variable", "cores * 2"},
		{"string_result", `"many"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := option.EvalWorkers(tt.src, 4)
			require.ErrorIs(t, err, pkg.ErrWorkersExpr)
		})
	}
}
