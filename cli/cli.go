package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/morekong/cli/cmd"
	"github.com/ardnew/morekong/log"
	"github.com/ardnew/morekong/option"
	"github.com/ardnew/morekong/pkg"
)

// CLI is the top-level command-line interface for morekong.
type CLI struct {
	option.Verbose `embed:""`

	Version kong.VersionFlag `help:"Print version and exit."`

	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Show   cmd.Show   `cmd:"" default:"withargs" help:"Show the resolved server options"`
	Init   cmd.Init   `cmd:""                    help:"Write a configuration file with the default values"`
	Levels cmd.Levels `cmd:""                    help:"List log levels and log a sample message at each"`
}

// Run executes the morekong CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	return run(ctx, os.Stdout, os.Stderr, exit, args...)
}

func run(
	ctx context.Context,
	stdout, stderr io.Writer,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := configPath(baseConfig)

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  pkg.CacheDir(),
		"version":            strings.TrimSpace(pkg.Version),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log.Config(log.WithOutput(stderr))

	// The command logger writes to stdout. Its threshold is set by the
	// --log-level flag of the levels command.
	logger := log.Make(stdout,
		log.WithFormat(log.FormatBasic),
		log.WithTimeLayout(log.BasicTimeLayout),
	)

	// Parse command line
	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Writers(stdout, stderr),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.Bind(&logger),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(load, configFilePath),
		vars,
		option.Setup(option.WithLoggers(&logger)),
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(option.Args(args))
	if err != nil {
		return err
	}

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)

	// Apply the remaining logger flags. Thresholds were already set by the
	// hooks of --verbose and --log-level while parsing.
	cli.Log.start(ctx, &logger)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	// Execute the selected command
	return ktx.Run()
}
