package log_test

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/morekong/log"
)

func Example_basic() {
	logger := log.Make(os.Stdout)
	logger.Info("application started", slog.String("version", "1.0.0"))
}

func Example_basicFormat() {
	logger := log.Make(os.Stdout,
		log.WithFormat(log.FormatBasic),
		log.WithTimeLayout("none"),
		log.WithPretty(false))

	logger.Warn("disk almost full", slog.Int("free", 1024))
	// Output:
	// WARNING  disk almost full free=1024
}

func Example_setLevel() {
	logger := log.Make(os.Stdout,
		log.WithFormat(log.FormatBasic),
		log.WithTimeLayout("none"),
		log.WithLevel(log.LevelWarning),
		log.WithPretty(false))

	logger.Info("hidden")
	logger.SetLevel(log.LevelInfo)
	logger.Info("shown")
	// Output:
	// INFO     shown
}

func Example_withContext() {
	type requestIDKey struct{}

	ctx := context.WithValue(context.Background(), requestIDKey{}, "req-789")

	logger := log.Make(os.Stdout)
	logger.InfoContext(ctx, "processing request with context")
}
