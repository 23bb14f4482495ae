package option

// Verbose adds -v/--verbose. Each occurrence raises the verbosity of the root
// logger. See [Verbosity.Level].
type Verbose struct {
	Value Verbosity `default:"0" help:"Enable verbose mode. More -v's means more verbose." name:"verbose" short:"v" type:"counter"`
}

// Host adds --host, the interface to bind to.
type Host struct {
	Value string `default:"0.0.0.0" help:"Host address to bind to (default: ${default})." name:"host"`
}

// Port adds --port. Any integer is accepted.
type Port struct {
	Value int `default:"5000" help:"Port to listen on (default: ${default})." name:"port"`
}

// WithGunicorn adds --with-gunicorn.
type WithGunicorn struct {
	Value bool `help:"Serve with gunicorn." name:"with-gunicorn"`
}

// Workers adds --workers. The default is computed by [Setup].
type Workers struct {
	Value int `default:"${workers}" help:"Number of worker processes (default: ${default})." name:"workers"`
}

// Force adds -f/--force.
type Force struct {
	Value bool `help:"Force the operation." name:"force" short:"f"`
}

// Debug adds --debug.
type Debug struct {
	Value bool `help:"Enable debug mode." name:"debug"`
}

// LogLevel adds --log-level (alias --ll). The default is set by [Setup].
type LogLevel struct {
	Value Level `aliases:"ll" default:"${logLevel}" help:"Set the log level (${logLevels}). Default: ${default}." name:"log-level" placeholder:"LEVEL"`
}

// BoundLogLevel adds --log-level (alias --ll) and sets the threshold of the
// [Loggers] bound by [Setup] to the chosen level.
type BoundLogLevel struct {
	Value BoundLevel `aliases:"ll" default:"${logLevel}" help:"Set the log level (${logLevels}). Default: ${default}." name:"log-level" placeholder:"LEVEL"`
}
