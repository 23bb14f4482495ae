package log

import (
	"cmp"
	"io"
	"iter"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Level represents the severity of a log message.
type Level slog.Level

const (
	LevelTrace    Level = Level(slog.LevelDebug - 4)
	LevelDebug    Level = Level(slog.LevelDebug)
	LevelInfo     Level = Level(slog.LevelInfo)
	LevelWarning  Level = Level(slog.LevelWarn)
	LevelError    Level = Level(slog.LevelError)
	LevelCritical Level = Level(slog.LevelError + 4)
)

// DefaultLevel is the default log level.
const DefaultLevel = LevelInfo

// levelName is the registry of canonical level names.
// Each name maps to exactly one level and each level has exactly one name.
var levelName = map[string]Level{
	"TRACE":    LevelTrace,
	"DEBUG":    LevelDebug,
	"INFO":     LevelInfo,
	"WARNING":  LevelWarning,
	"ERROR":    LevelError,
	"CRITICAL": LevelCritical,
}

// levelAlias holds alternate spellings accepted by [ParseLevel] only.
var levelAlias = map[string]Level{
	"WARN":  LevelWarning,
	"FATAL": LevelCritical,
}

// LevelNames returns a copy of the registered mapping of canonical level
// names to their numeric severity.
func LevelNames() map[string]Level {
	return maps.Clone(levelName)
}

// Levels returns an iterator over the canonical level names in ascending
// order of severity.
func Levels() iter.Seq[string] {
	return func(yield func(string) bool) {
		names := slices.SortedFunc(maps.Keys(levelName), func(a, b string) int {
			return cmp.Compare(levelName[a], levelName[b])
		})

		for _, name := range names {
			if !yield(name) {
				return
			}
		}
	}
}

// String returns the canonical name of l.
// Levels without a registered name are formatted relative to the nearest
// [slog] level, e.g. "INFO+2".
func (l Level) String() string {
	for name, level := range levelName {
		if level == l {
			return name
		}
	}

	return slog.Level(l).String()
}

// LookupLevel returns the level registered under the given canonical name.
// The comparison is case-insensitive and ignores surrounding whitespace.
// Aliases are not recognized.
func LookupLevel(name string) (Level, bool) {
	level, ok := levelName[strings.ToUpper(strings.TrimSpace(name))]

	return level, ok
}

// ParseLevel parses a string representation of a log level.
//
// Canonical names and the aliases "WARN" and "FATAL" are matched
// case-insensitively. Otherwise the string is interpreted by
// [slog.Level.UnmarshalText], which accepts forms like "DEBUG+2".
// [DefaultLevel] is returned for anything else.
func ParseLevel(s string) Level {
	if level, ok := LookupLevel(s); ok {
		return level
	}

	if level, ok := levelAlias[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return level
	}

	l := new(slog.Level)

	err := l.UnmarshalText([]byte(strings.TrimSpace(s)))
	if err != nil {
		return DefaultLevel
	}

	return Level(*l)
}

// Format represents the output format for log messages.
type Format int

const (
	FormatText  Format = iota // text
	FormatJSON                // json
	FormatBasic               // basic
)

// DefaultFormat is the default log message format.
const DefaultFormat = FormatJSON

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatBasic:
		return "basic"
	default:
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
}

// Formats returns an iterator over all defined log formats.
func Formats() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, format := range []Format{
			FormatJSON,
			FormatText,
			FormatBasic,
		} {
			if !yield(format.String()) {
				return
			}
		}
	}
}

// ParseFormat parses a string representation of a log format.
// Valid format strings are "json", "text", and "basic".
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	case "text":
		return FormatText
	case "basic":
		return FormatBasic
	default:
		return DefaultFormat
	}
}

// FormatTime defines a function that formats a time.Time value as a string.
type FormatTime func(time.Time) string

// DefaultTimeLayout is the default used when no valid time layout is provided.
const DefaultTimeLayout = time.RFC3339

// BasicTimeLayout is the timestamp layout used by [BasicConfig].
const BasicTimeLayout = time.DateTime

// DefaultCaller is the default setting for including caller information
// in log output.
const DefaultCaller = false

// DefaultPretty is the default setting for pretty printing log output.
const DefaultPretty = true

// config holds the configuration options for a Logger.
//
// A config is a value: options return a modified copy. The level variable
// is the only state shared between copies; [config.clone] replaces it.
type config struct {
	output     io.Writer
	formatTime FormatTime
	level      *slog.LevelVar
	format     Format
	caller     bool
	pretty     bool
}

// makeConfig creates a new config with defaults applied, overridden by any
// provided options.
func makeConfig(w io.Writer, opts ...Option) config {
	var c config

	c.level = new(slog.LevelVar)

	return apply(apply(c, WithDefaults(w)), opts...)
}

// clone creates a copy of the config with its own level variable, initialized
// to the current level, and applies any provided options.
func (c config) clone(opts ...Option) config {
	level := new(slog.LevelVar)
	if c.level != nil {
		level.Set(c.level.Level())
	}

	c.level = level

	return apply(c, opts...)
}

// handler creates a slog.Handler based on the current configuration.
func (c config) handler() slog.Handler {
	opts := &slog.HandlerOptions{
		AddSource: c.caller,
		Level:     c.level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					formatted := c.formatTime(t)
					if formatted == "" {
						return slog.Attr{}
					}

					a.Value = slog.StringValue(formatted)
				}
			}

			// Show the registered name, e.g. "WARNING" instead of "WARN".
			if a.Key == slog.LevelKey {
				if level, ok := a.Value.Any().(slog.Level); ok {
					a.Value = slog.StringValue(Level(level).String())
				}
			}

			return a
		},
	}

	switch c.format {
	case FormatJSON:
		return slog.NewJSONHandler(c.output, opts)

	case FormatText:
		if c.pretty {
			return newConsoleHandler(c.output, opts, c.formatTime, layoutText, true)
		}

		return slog.NewTextHandler(c.output, opts)

	case FormatBasic:
		return newConsoleHandler(c.output, opts, c.formatTime, layoutBasic, c.pretty)

	default:
		return slog.DiscardHandler
	}
}

// WithDefaults returns a functional option that sets the default configuration.
// The default configuration is [DefaultTimeLayout], [DefaultLevel],
// [DefaultFormat], [DefaultPretty], and caller info disabled.
func WithDefaults(w io.Writer) Option {
	return func(c config) config {
		if w == nil {
			w = io.Discard
		}

		if c.level == nil {
			c.level = new(slog.LevelVar)
		}

		c.output = w
		c.formatTime = makeFormatTimeFunc(DefaultTimeLayout)
		c.level.Set(slog.Level(DefaultLevel))
		c.format = DefaultFormat
		c.caller = DefaultCaller
		c.pretty = DefaultPretty

		return c
	}
}

// WithOutput returns a functional option that sets the output [io.Writer]
// for log messages.
// If a nil writer is provided, [io.Discard] is used instead.
func WithOutput(w io.Writer) Option {
	return func(c config) config {
		if w == nil {
			w = io.Discard
		}

		c.output = w

		return c
	}
}

// WithLevel returns a functional option that sets the minimum log level.
// Messages below this level are discarded.
func WithLevel(level Level) Option {
	return func(c config) config {
		if c.level == nil {
			c.level = new(slog.LevelVar)
		}

		c.level.Set(slog.Level(level))

		return c
	}
}

// WithFormat returns a functional option that sets the output format
// for log messages.
func WithFormat(format Format) Option {
	return func(c config) config {
		c.format = format

		return c
	}
}

// WithTimeLayout returns a functional option that sets the layout used to
// format log timestamps.
//
// The layout string can be one of the named layouts from the [time] package
// (for example, "RFC3339" or "DateTime"). Otherwise, it is passed verbatim
// to [time.Time.Format] and must follow the standard specification.
//
// If an empty string (after trimming whitespace) is provided, timestamps are
// disabled and no time is included in log output.
func WithTimeLayout(layout string) Option {
	return func(c config) config {
		c.formatTime = makeFormatTimeFunc(layout)

		return c
	}
}

// WithCaller returns a functional option that controls whether caller
// information is included in log output.
func WithCaller(enable bool) Option {
	return func(c config) config {
		c.caller = enable

		return c
	}
}

// WithPretty returns a functional option that controls whether text and
// basic output is rendered with terminal styles.
// Styles are only emitted when the output is a terminal.
func WithPretty(enable bool) Option {
	return func(c config) config {
		c.pretty = enable

		return c
	}
}

// timeLayout maps named layouts to their corresponding time.Time constants.
var timeLayout = map[string]string{
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"ansic":       time.ANSIC,
	"unixdate":    time.UnixDate,
	"rubydate":    time.RubyDate,
	"rfc822":      time.RFC822,
	"rfc822z":     time.RFC822Z,
	"rfc850":      time.RFC850,
	"kitchen":     time.Kitchen,
	"datetime":    time.DateTime,
	"dateonly":    time.DateOnly,
	"timeonly":    time.TimeOnly,

	"stamp": time.Stamp,
	"none":  "",

	"stampmilli": time.StampMilli,
	"milli":      time.StampMilli,
	"ms":         time.StampMilli,

	"stampmicro": time.StampMicro,
	"micro":      time.StampMicro,
	"us":         time.StampMicro,

	"stampnano": time.StampNano,
	"nano":      time.StampNano,
	"ns":        time.StampNano,
}

func makeFormatTimeFunc(layout string) FormatTime {
	// Normalize only for lookup. Custom layouts are used verbatim.
	trimmed := strings.Map(
		func(r rune) rune {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
				return r
			}

			return -1
		},
		strings.ToLower(layout),
	)

	if trimmed == "" {
		return func(time.Time) string { return "" }
	}

	if std, ok := timeLayout[trimmed]; ok {
		layout = std
	}

	if layout == "" {
		return func(time.Time) string { return "" }
	}

	return func(t time.Time) string { return t.Format(layout) }
}
