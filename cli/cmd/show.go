package cmd

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/morekong/log"
	"github.com/ardnew/morekong/option"
)

// defaultIndent is the number of spaces used to indent command output.
const defaultIndent = 2

// Show prints the resolved server options.
type Show struct {
	option.Host         `embed:""`
	option.Port         `embed:""`
	option.WithGunicorn `embed:""`
	option.Workers      `embed:""`
	option.Debug        `embed:""`
	option.LogLevel     `embed:""`

	Output string `default:"yaml" enum:"yaml,json" help:"Output format (${enum})." short:"o"`
	Indent int    `default:"2"                     help:"Indent width."            short:"i"`
}

// Settings is the set of server options resolved by [Show].
type Settings struct {
	Host         string `json:"host"          yaml:"host"`
	Port         int    `json:"port"          yaml:"port"`
	WithGunicorn bool   `json:"with-gunicorn" yaml:"with-gunicorn"`
	Workers      int    `json:"workers"       yaml:"workers"`
	Debug        bool   `json:"debug"         yaml:"debug"`
	LogLevel     string `json:"log-level"     yaml:"log-level"`
}

// Settings returns the option values parsed for s.
func (s *Show) Settings() Settings {
	return Settings{
		Host:         s.Host.Value,
		Port:         s.Port.Value,
		WithGunicorn: s.WithGunicorn.Value,
		Workers:      s.Workers.Value,
		Debug:        s.Debug.Value,
		LogLevel:     s.LogLevel.Value.String(),
	}
}

// Run executes the show command.
func (s *Show) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	settings := s.Settings()

	log.DebugContext(ctx, "resolved options",
		slog.String("host", settings.Host),
		slog.Int("port", settings.Port),
		slog.Bool("with-gunicorn", settings.WithGunicorn),
		slog.Int("workers", settings.Workers),
		slog.Bool("debug", settings.Debug),
		slog.String("log-level", settings.LogLevel),
	)

	indent := s.Indent
	if indent <= 0 {
		indent = defaultIndent
	}

	var data []byte

	switch s.Output {
	case "json":
		data, err = json.MarshalIndent(settings, "", strings.Repeat(" ", indent))
		if err != nil {
			return ErrJSONMarshal.Wrap(err)
		}

		data = append(data, '\n')

	default:
		data, err = yaml.MarshalContext(ctx, settings, yaml.Indent(indent))
		if err != nil {
			return ErrYAMLMarshal.Wrap(err)
		}
	}

	_, err = stdoutFrom(ctx).Write(data)
	if err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}
