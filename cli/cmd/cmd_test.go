package cmd

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/ardnew/morekong/log"
)

// restoreRoot resets the root logger changed by the --verbose hook.
func restoreRoot() { log.Config(log.WithDefaults(os.Stderr)) }

// TestKongContextFrom tests storing and retrieving a kong.Context.
func TestKongContextFrom(t *testing.T) {
	t.Parallel()

	if got := kongContextFrom(context.Background()); got != nil {
		t.Errorf("kongContextFrom(empty) = %v, want nil", got)
	}

	var cli struct{}

	var buf bytes.Buffer

	parser, err := kong.New(&cli, kong.Writers(&buf, &buf))
	if err != nil {
		t.Fatal(err)
	}

	ktx, err := parser.Parse(nil)
	if err != nil {
		t.Fatal(err)
	}

	ctx := WithContext(context.Background(), ktx)
	if got := kongContextFrom(ctx); got != ktx {
		t.Errorf("kongContextFrom() = %p, want %p", got, ktx)
	}

	if got := stdoutFrom(ctx); got != &buf {
		t.Errorf("stdoutFrom() = %v, want kong stdout", got)
	}

	if got := stdoutFrom(context.Background()); got != os.Stdout {
		t.Errorf("stdoutFrom(empty) = %v, want os.Stdout", got)
	}
}

// TestError tests message formatting, wrapping, and matching.
func TestError(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk full")

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"empty", &Error{}, ""},
		{"message", NewError("write"), "write"},
		{"cause_only", (&Error{}).Wrap(cause), "disk full"},
		{"both", NewError("write").Wrap(cause), "write: disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}

	err := ErrWriteConfig.With(slog.String("file", "x")).Wrap(ErrFileExists)

	if !errors.Is(err, ErrWriteConfig) {
		t.Error("errors.Is(err, ErrWriteConfig) = false")
	}

	if !errors.Is(err, ErrFileExists) {
		t.Error("errors.Is(err, ErrFileExists) = false")
	}

	if errors.Is(err, ErrJSONMarshal) {
		t.Error("errors.Is(err, ErrJSONMarshal) = true")
	}

	if len(ErrWriteConfig.attrs) != 0 {
		t.Error("With modified the sentinel")
	}
}

// TestErrorLogValue tests the structured representation of an Error.
func TestErrorLogValue(t *testing.T) {
	t.Parallel()

	err := ErrWriteConfig.
		With(slog.String("file", "config.yaml")).
		Wrap(errors.New("denied"))

	got := map[string]string{}
	for _, a := range err.LogValue().Group() {
		got[a.Key] = a.Value.String()
	}

	want := map[string]string{
		"error": "write configuration file",
		"cause": "denied",
		"file":  "config.yaml",
	}

	for k, v := range want {
		if got[k] != v {
			t.Errorf("LogValue()[%q] = %q, want %q", k, got[k], v)
		}
	}
}
