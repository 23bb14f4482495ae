package cmd

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/morekong/log"
	"github.com/ardnew/morekong/option"
	"github.com/ardnew/morekong/profile"
)

// configDirMode is the permission mode of a created configuration directory.
const configDirMode os.FileMode = 0o700

// Init generates a configuration file with the default value of every
// configurable flag.
type Init struct {
	option.Force `embed:""`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return ErrNoContext
	}

	confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok {
		panic("internal error: config path undefined")
	}

	// Check if file exists and force not set
	_, err = os.Stat(confPath)
	if err == nil && !i.Force.Value {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	data, err := yaml.MarshalContext(ctx, configEntries(ktx.Model.Node),
		yaml.Indent(defaultIndent))
	if err != nil {
		return ErrYAMLMarshal.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	err = os.MkdirAll(filepath.Dir(confPath), configDirMode)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	err = os.WriteFile(confPath, data, 0o600)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	log.DebugContext(
		ctx,
		"initialized configuration file",
		slog.String("path", confPath),
	)

	return nil
}

// ignoredFlags names flags that are never written to a configuration file.
//
//nolint:gochecknoglobals
var ignoredFlags = []string{"help", "version", "force", "verbose"}

// configEntries collects the current value of every flag reachable from node,
// in declaration order. A flag declared by several commands is written once.
func configEntries(node *kong.Node) yaml.MapSlice {
	var (
		entries yaml.MapSlice
		seen    = make(map[string]bool)
	)

	var walk func(n *kong.Node)

	walk = func(n *kong.Node) {
		for _, flag := range n.Flags {
			if seen[flag.Name] || !configurable(flag) {
				continue
			}

			seen[flag.Name] = true

			if value, ok := flagValue(flag); ok {
				entries = append(entries, yaml.MapItem{Key: flag.Name, Value: value})
			}
		}

		for _, child := range n.Children {
			walk(child)
		}
	}

	walk(node)

	return entries
}

func configurable(flag *kong.Flag) bool {
	if flag.Hidden || slices.Contains(ignoredFlags, flag.Name) {
		return false
	}

	return !strings.HasPrefix(flag.Name, profile.Tag)
}

// flagValue returns the value of flag converted to a plain YAML scalar.
// Empty strings and non-scalar values are omitted.
func flagValue(flag *kong.Flag) (any, bool) {
	v := flag.Target
	if !v.IsValid() {
		return nil, false
	}

	switch v.Kind() {
	case reflect.Bool:
		return v.Bool(), true

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), true

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint(), true

	case reflect.Float32, reflect.Float64:
		return v.Float(), true

	case reflect.String:
		return v.String(), v.String() != ""

	default:
		return nil, false
	}
}
