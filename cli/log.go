package cli

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/morekong/log"
)

// logFormat is a custom type that configures the logger format as a side
// effect of parsing via encoding.TextUnmarshaler.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler.
// As Kong parses the --log-format flag, this method is called, allowing us
// to configure the logger early enough to affect error messages during parsing.
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

// logConfig holds the root logger flags other than its level, which is set
// by --verbose.
type logConfig struct {
	Format     logFormat `default:"basic"    enum:"${logFormats}" help:"Set log format (${enum})."`
	TimeLayout string    `default:"DateTime"                      help:"Set timestamp format."             name:"time"`
	Caller     bool      `default:"false"                         help:"Include caller information."       negatable:""`
	Pretty     bool      `default:"true"                          help:"Enable colorized pretty printing." negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{
		"logFormats": strings.Join(slices.Collect(log.Formats()), ","),
	}
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

// options returns the logger options selected by f.
func (f *logConfig) options() []log.Option {
	return []log.Option{
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	}
}

// start applies every parsed flag to the root logger and the command logger.
// The threshold of each logger is left unchanged.
func (f *logConfig) start(ctx context.Context, command *log.Logger) {
	log.Config(f.options()...)

	*command = command.Wrap(f.options()...)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", log.Default().Level().String()),
		slog.String("format", string(f.Format)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)
}
