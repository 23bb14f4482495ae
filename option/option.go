package option

import (
	"reflect"
	"runtime"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/morekong/log"
)

// Interpolation variables defined by [Setup].
const (
	WorkersVar   = "workers"
	LogLevelVar  = "logLevel"
	LogLevelsVar = "logLevels"
)

type config struct {
	level   string
	workers string
	loggers Loggers
	cpus    int
}

func makeConfig(opts ...Option) config {
	cfg := config{
		level:   log.DefaultLevel.String(),
		workers: DefaultWorkersExpr,
		cpus:    runtime.NumCPU(),
	}

	cfg = apply(cfg, opts...)

	if len(cfg.loggers) == 0 {
		cfg.loggers = Loggers{log.Default()}
	}

	return cfg
}

// Option configures [Setup].
type Option func(config) config

func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		if opt != nil {
			cfg = opt(cfg)
		}
	}

	return cfg
}

// Setup returns a [kong.Option] that prepares a grammar using the definitions
// of this package.
//
// It computes the default worker count and the default log level, defines
// them as kong variables, and binds the [Loggers] updated by [BoundLogLevel].
// The root logger is bound when [WithLoggers] is not given.
func Setup(opts ...Option) kong.Option {
	return kong.OptionFunc(func(k *kong.Kong) error {
		cfg := makeConfig(opts...)

		workers, err := EvalWorkers(cfg.workers, cfg.cpus)
		if err != nil {
			return err
		}

		err = kong.Vars{
			WorkersVar:   strconv.Itoa(workers),
			LogLevelVar:  cfg.level,
			LogLevelsVar: strings.Join(levelNames, ", "),
		}.Apply(k)
		if err != nil {
			return err
		}

		return kong.Bind(cfg.loggers).Apply(k)
	})
}

// WithLevel sets the default of [LogLevel] and [BoundLogLevel].
//
// The level may be a name, matched without regard to case, or a numeric
// severity such as [log.LevelWarning], which is converted to its canonical
// name. A name or number that is not one of [LevelNames] makes parsing fail
// when the default is applied.
func WithLevel[T ~int | ~string](level T) Option {
	return func(cfg config) config {
		v := reflect.ValueOf(level)

		switch v.Kind() {
		case reflect.String:
			cfg.level = v.String()
			if l, ok := log.LookupLevel(cfg.level); ok {
				cfg.level = l.String()
			}

		default:
			cfg.level = log.Level(v.Int()).String()
		}

		return cfg
	}
}

// WithLoggers sets the loggers updated by [BoundLogLevel].
// Nil loggers are ignored.
func WithLoggers(loggers ...*log.Logger) Option {
	return func(cfg config) config {
		cfg.loggers = nil

		for _, l := range loggers {
			if l != nil {
				cfg.loggers = append(cfg.loggers, l)
			}
		}

		return cfg
	}
}

// WithCPUs overrides the detected logical CPU count used to compute the
// default of [Workers]. Values less than 1 are ignored.
func WithCPUs(n int) Option {
	return func(cfg config) config {
		if n > 0 {
			cfg.cpus = n
		}

		return cfg
	}
}

// WithWorkersExpr replaces the formula used to compute the default of
// [Workers]. See [EvalWorkers] for the expression environment.
func WithWorkersExpr(src string) Option {
	return func(cfg config) config {
		if strings.TrimSpace(src) != "" {
			cfg.workers = src
		}

		return cfg
	}
}
