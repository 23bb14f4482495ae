package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// saveDefault restores the root logger and its threshold when t finishes.
func saveDefault(t *testing.T) {
	t.Helper()

	original := defaultLog
	level := original.Level()

	t.Cleanup(func() {
		original.SetLevel(level)
		defaultLog = original
		slog.SetDefault(original.Logger)
	})
}

func TestPackage_LogFunctions_UseDefaultLogger(t *testing.T) {
	saveDefault(t)

	var buf bytes.Buffer
	Config(WithOutput(&buf), WithLevel(LevelTrace), WithFormat(FormatJSON))

	tests := []struct {
		name  string
		fn    func(string, ...slog.Attr)
		level string
		msg   string
	}{
		{"Trace", Trace, "TRACE", "trace message"},
		{"Debug", Debug, "DEBUG", "debug message"},
		{"Info", Info, "INFO", "info message"},
		{"Warn", Warn, "WARNING", "warn message"},
		{"Error", Error, "ERROR", "error message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn(tt.msg, slog.String("key", "value"))

			output := buf.String()
			if !strings.Contains(output, tt.msg) {
				t.Errorf("expected output to contain message %q, got: %s", tt.msg, output)
			}

			if !strings.Contains(output, `"level":"`+tt.level+`"`) {
				t.Errorf("expected output to contain level %q, got: %s", tt.level, output)
			}

			if !strings.Contains(output, `"key":"value"`) {
				t.Errorf("expected output to contain attribute, got: %s", output)
			}
		})
	}
}

func TestPackage_Default_HandleSurvivesConfig(t *testing.T) {
	saveDefault(t)

	root := Default()

	var buf bytes.Buffer
	Config(WithOutput(&buf), WithLevel(LevelError))

	if root.Level() != LevelError {
		t.Fatalf("expected root handle level %v, got %v", LevelError, root.Level())
	}

	root.SetLevel(LevelDebug)
	Debug("through package function")

	if !strings.Contains(buf.String(), "through package function") {
		t.Errorf("expected SetLevel on handle to affect root logger, got: %q", buf.String())
	}
}

func TestPackage_BasicConfig(t *testing.T) {
	saveDefault(t)

	var buf bytes.Buffer
	Config(WithOutput(&buf), WithPretty(false))
	BasicConfig(LevelWarning)

	if Default().Level() != LevelWarning {
		t.Errorf("expected level %v, got %v", LevelWarning, Default().Level())
	}

	if Default().Format() != FormatBasic {
		t.Errorf("expected format %v, got %v", FormatBasic, Default().Format())
	}

	Info("suppressed")
	Warn("emitted")

	output := buf.String()
	if strings.Contains(output, "suppressed") {
		t.Errorf("info message logged at warning level: %q", output)
	}

	if !strings.Contains(output, "WARNING  emitted") {
		t.Errorf("expected basic formatted warning, got: %q", output)
	}
}

func TestPackage_Config_SetsSlogDefault(t *testing.T) {
	saveDefault(t)

	var buf bytes.Buffer
	Config(WithOutput(&buf), WithFormat(FormatJSON), WithLevel(LevelInfo))

	slog.Info("via slog")

	if !strings.Contains(buf.String(), "via slog") {
		t.Errorf("expected slog default to write through root logger, got: %q", buf.String())
	}
}
