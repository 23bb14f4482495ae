// Package profile provides optional runtime profiling for morekong.
//
// Profiling uses [github.com/pkg/profile] and is only compiled in with the
// "pprof" build tag. Without it, [Modes] is empty and [Profiler.Start]
// returns a no-op.
//
//	p := profile.Profiler{Mode: "cpu", Path: "/tmp/profiles"}
//	defer p.Start().Stop()
//
// Profile files are written to Path with names matching the mode, for
// example cpu.pprof. Analyze them with:
//
//	go tool pprof -http=: /tmp/profiles/cpu.pprof
//
// The morekong command exposes the profiler through --pprof-mode and
// --pprof-dir when built with the tag:
//
//	go build -tags pprof .
//	./morekong --pprof-mode heap show
//
// The default directory is the "pprof" subdirectory of the user cache
// directory.
//
// With the tag set, this package also imports [net/http/pprof], which
// registers HTTP handlers under /debug/pprof/ on the default mux.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
