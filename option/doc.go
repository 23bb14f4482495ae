// Package option provides reusable command-line option definitions for
// [github.com/alecthomas/kong] grammars.
//
// Each definition is a small struct carrying kong tags. Embed it into a
// command to add the flag, then read its Value field after parsing:
//
//	type Serve struct {
//		option.Verbose  `embed:""`
//		option.Host     `embed:""`
//		option.Port     `embed:""`
//		option.Workers  `embed:""`
//		option.LogLevel `embed:""`
//	}
//
//	func (s *Serve) Run() error {
//		fmt.Println(s.Host.Value, s.Port.Value, s.Workers.Value)
//		return nil
//	}
//
//	parser, err := kong.New(&cli, option.Setup(option.WithLevel(log.LevelWarning)))
//	ktx, err := parser.Parse(option.Args(os.Args[1:]))
//
// # Flags
//
//	-v, --verbose        counter, sets the root log level (WARNING, INFO, DEBUG)
//	    --host           string, default 0.0.0.0
//	    --port           int, default 5000
//	    --with-gunicorn  bool
//	    --workers        int, default 2*CPU+1
//	-f, --force          bool
//	    --debug          bool
//	    --log-level      case-insensitive choice of [LevelNames]
//
// [Verbose] and [BoundLogLevel] change logger thresholds while the command
// line is parsed, including when their flag is left at its default.
//
// # Setup
//
// [Setup] must be passed to [kong.New] whenever [Workers], [LogLevel], or
// [BoundLogLevel] is used. It defines the interpolation variables those
// definitions reference and binds the [Loggers] that [BoundLogLevel] updates.
//
// The single-dash spelling -ll cannot be expressed with kong short flags,
// which are one rune long. Pass the arguments through [Args] to accept it;
// --ll is always accepted as an alias.
package option
