package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/morekong/pkg"
)

// load is a [kong.ConfigurationLoader] that parses YAML configuration files.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(load, "/path/to/config.yaml")
//
// The document must be a mapping of flag names to values:
//   - Flag names may use hyphens (e.g., "log-level") or underscores
//     (e.g., "log_level")
//   - Numbers are passed to kong as strings
//   - Sequences are passed as comma-separated strings
//
// Example config file:
//
//	host: 127.0.0.1
//	port: 8080
//	log-level: debug
//	log_format: text
//
// Command-line flags override config file values.
func load(r io.Reader) (kong.Resolver, error) {
	var doc map[string]any

	err := yaml.NewDecoder(r).Decode(&doc)
	if err != nil && err != io.EOF {
		return nil, pkg.ErrConfigParse.Wrap(err)
	}

	cfg := make(config, len(doc))
	for key, value := range doc {
		cfg[key] = scalar(value)
	}

	return cfg, nil
}

// config implements [kong.Resolver] for YAML configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	name := flag.Name

	if value, ok := r[name]; ok {
		return value, nil
	}

	if value, ok := r[strings.ReplaceAll(name, "-", "_")]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

// scalar converts a decoded YAML value into a form kong can parse.
func scalar(value any) any {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		parts := make([]string, len(v))
		for i, e := range v {
			s, ok := scalar(e).(string)
			if !ok {
				s = yamlString(e)
			}

			parts[i] = s
		}

		return strings.Join(parts, ",")
	default:
		return v
	}
}

func yamlString(v any) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return ""
	}

	return strings.TrimSpace(string(b))
}
