package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/ardnew/morekong/log"
	"github.com/ardnew/morekong/option"
)

// TestLevelsRun tests that --log-level sets the command logger threshold.
func TestLevelsRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		logged  []string
		skipped []string
	}{
		{
			name:    "default_info",
			logged:  []string{"INFO", "WARNING", "ERROR", "CRITICAL"},
			skipped: []string{"TRACE", "DEBUG"},
		},
		{
			name:    "error",
			args:    []string{"--log-level", "error"},
			logged:  []string{"ERROR", "CRITICAL"},
			skipped: []string{"TRACE", "DEBUG", "INFO", "WARNING"},
		},
		{
			name:   "trace",
			args:   []string{"-ll", "trace"},
			logged: []string{"TRACE", "DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var (
				cli struct {
					Levels Levels `cmd:"" default:"withargs"`
				}
				out bytes.Buffer
			)

			logger := log.Make(&out,
				log.WithFormat(log.FormatBasic),
				log.WithTimeLayout(""),
				log.WithPretty(false),
			)

			parser, err := kong.New(&cli,
				kong.Writers(&out, &out),
				option.Setup(option.WithLoggers(&logger)),
			)
			if err != nil {
				t.Fatal(err)
			}

			ktx, err := parser.Parse(option.Args(tt.args))
			if err != nil {
				t.Fatal(err)
			}

			err = cli.Levels.Run(WithContext(context.Background(), ktx), &logger)
			if err != nil {
				t.Fatalf("Levels.Run() error = %v", err)
			}

			got := out.String()

			for _, name := range option.LevelNames() {
				if !strings.Contains(got, " "+name) {
					t.Errorf("level %s not listed:\n%s", name, got)
				}
			}

			for _, name := range tt.logged {
				if !strings.Contains(got, "sample message level="+name+"\n") {
					t.Errorf("level %s not logged:\n%s", name, got)
				}

				if !strings.Contains(got, "* "+name) {
					t.Errorf("level %s not marked enabled:\n%s", name, got)
				}
			}

			for _, name := range tt.skipped {
				if strings.Contains(got, "sample message level="+name+"\n") {
					t.Errorf("level %s logged below threshold:\n%s", name, got)
				}
			}
		})
	}
}
