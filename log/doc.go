// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("server started", slog.Int("port", 5000))
//
// # Configuration
//
// Configure a logger using functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatBasic),
//		log.WithTimeLayout("DateTime"))
//
// # Levels
//
// Six levels are registered, in ascending severity: [LevelTrace],
// [LevelDebug], [LevelInfo], [LevelWarning], [LevelError], and
// [LevelCritical]. [LevelNames] returns the registry of canonical names and
// [Levels] iterates them in order.
//
// A [Logger] and all of its copies share one threshold. [Logger.SetLevel]
// changes it in place, which lets a Logger be handed out as a handle whose
// level is decided later, for example while parsing command-line flags.
//
// # Root Logger
//
// The package keeps a root logger used by the package-level functions
// ([Info], [Warn], ...). [Default] returns a handle to it, [Config] replaces
// its configuration, and [BasicConfig] applies the fixed basic format at a
// given level. Both also install the root logger as the [slog] default.
//
// # Output Formats
//
// [FormatJSON] (default), [FormatText], and [FormatBasic]:
//
//	2024-05-01 12:00:00 WARNING  disk almost full free=1024
//
// With [WithPretty], text and basic output is colorized when written to a
// terminal.
package log
