// Package cli contains the command line interface for morekong.
//
// The morekong command demonstrates the reusable options of package option
// composed into a kong application.
//
// # Commands
//
//   - show (default): print the resolved --host, --port, --with-gunicorn,
//     --workers, --debug, and --log-level values as YAML or JSON
//   - init: write a configuration file holding the default value of every
//     flag, refusing to overwrite an existing file without --force
//   - levels: list the log level names and log a sample message at each
//     level through a logger whose threshold is set by --log-level
//
// The root -v/--verbose flag sets the level of the process logger.
//
// # Configuration
//
// Flag values are also read from a YAML file in the user configuration
// directory, for example ~/.config/morekong/config.yaml:
//
//	port: 8080
//	log-level: debug
//	log_format: text
//
// Command-line flags override config file values.
//
// # Logging Options
//
//   - --log-format: Set log output format (json, text, basic)
//   - --log-time: Set timestamp format (DateTime, RFC3339, Kitchen, etc.)
//   - --log-caller: Include caller information in log output
//   - --[no-]log-pretty: Colorize text and basic output on terminals
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o morekong .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/morekong/pprof)
//
// # Examples
//
//	morekong -v --port 8080
//	morekong show --output json --log-level warning
//	morekong levels -ll error
//	morekong init --force
package cli
