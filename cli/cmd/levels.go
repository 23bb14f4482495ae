package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/morekong/log"
	"github.com/ardnew/morekong/option"
)

// Levels lists the log level names and writes one sample message per level
// through the command logger, whose threshold is set by --log-level.
type Levels struct {
	option.BoundLogLevel `embed:""`
}

// Run executes the levels command.
func (l *Levels) Run(ctx context.Context, logger *log.Logger) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	threshold := logger.Level()
	out := stdoutFrom(ctx)

	for _, name := range option.LevelNames() {
		level, _ := log.LookupLevel(name)

		mark := " "
		if level >= threshold {
			mark = "*"
		}

		_, err = fmt.Fprintf(out, "%s %-8s %d\n", mark, name, int(level))
		if err != nil {
			return ErrWriteOutput.Wrap(err)
		}
	}

	for _, name := range option.LevelNames() {
		level, _ := log.LookupLevel(name)
		logger.Log(ctx, level, "sample message", slog.String("level", name))
	}

	return nil
}
