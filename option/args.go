package option

import "strings"

// shortLogLevel is the single-dash spelling of --log-level.
const shortLogLevel = "-ll"

// Args returns a copy of args with the single-dash spelling of the log level
// flag ("-ll LEVEL" or "-ll=LEVEL") rewritten to "--log-level".
// Arguments following "--" are left untouched.
func Args(args []string) []string {
	out := make([]string, len(args))

	for i, arg := range args {
		if arg == "--" {
			copy(out[i:], args[i:])

			break
		}

		switch {
		case arg == shortLogLevel:
			out[i] = "--log-level"

		case strings.HasPrefix(arg, shortLogLevel+"="):
			out[i] = "--log-level" + strings.TrimPrefix(arg, shortLogLevel)

		default:
			out[i] = arg
		}
	}

	return out
}
