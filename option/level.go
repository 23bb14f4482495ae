package option

import (
	"cmp"
	"maps"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/morekong/log"
	"github.com/ardnew/morekong/pkg"
)

// levelNames holds the accepted log level names in ascending order of
// severity. It is never modified after initialization.
//
//nolint:gochecknoglobals
var levelNames = func() []string {
	registry := log.LevelNames()

	return slices.SortedFunc(maps.Keys(registry), func(a, b string) int {
		return cmp.Compare(registry[a], registry[b])
	})
}()

// LevelNames returns the names accepted by [LogLevel] and [BoundLogLevel]
// in ascending order of severity.
func LevelNames() []string {
	return slices.Clone(levelNames)
}

// Loggers is the set of loggers updated by [BoundLogLevel].
//
// [Setup] binds it for use by kong hooks.
type Loggers []*log.Logger

// Level is a log level name chosen from [LevelNames].
type Level string

// UnmarshalText implements [encoding.TextUnmarshaler].
// The name is matched without regard to case and stored in canonical form.
func (l *Level) UnmarshalText(text []byte) error {
	name, err := parseLevelName(string(text))
	if err != nil {
		return err
	}

	*l = Level(name)

	return nil
}

// Level returns the severity named by l, or [log.DefaultLevel] if l is empty.
func (l Level) Level() log.Level {
	if level, ok := log.LookupLevel(string(l)); ok {
		return level
	}

	return log.DefaultLevel
}

// String returns the level name.
func (l Level) String() string { return string(l) }

// BoundLevel is a [Level] that sets the threshold of the bound [Loggers]
// once parsed.
type BoundLevel string

// UnmarshalText implements [encoding.TextUnmarshaler].
func (l *BoundLevel) UnmarshalText(text []byte) error {
	name, err := parseLevelName(string(text))
	if err != nil {
		return err
	}

	*l = BoundLevel(name)

	return nil
}

// Level returns the severity named by l, or [log.DefaultLevel] if l is empty.
func (l BoundLevel) Level() log.Level { return Level(l).Level() }

// String returns the level name.
func (l BoundLevel) String() string { return string(l) }

// AfterApply is a kong hook that sets the threshold of every bound logger.
func (l BoundLevel) AfterApply(loggers Loggers) error {
	level := l.Level()

	for _, logger := range loggers {
		logger.SetLevel(level)
	}

	return nil
}

// parseLevelName returns the canonical name matching s.
// The error wraps [pkg.ErrInvalidLevel] and lists the valid choices.
func parseLevelName(s string) (string, error) {
	want := strings.ToUpper(strings.TrimSpace(s))

	if slices.Contains(levelNames, want) {
		return want, nil
	}

	err := pkg.ErrInvalidLevel.Wrapf(
		"%q (choose from %s)", s, strings.Join(levelNames, ", "),
	)

	if want != "" {
		if matches := fuzzy.Find(want, levelNames); len(matches) > 0 {
			err = err.Wrapf("did you mean %q?", matches[0].Str)
		}
	}

	return "", err
}
