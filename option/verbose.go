package option

import "github.com/ardnew/morekong/log"

// Verbosity is the number of times the verbose flag was given.
type Verbosity int

// Level returns the root log level selected by v.
//
//	0   WARNING
//	1   INFO
//	2+  DEBUG
func (v Verbosity) Level() log.Level {
	switch {
	case v <= 0:
		return log.LevelWarning
	case v == 1:
		return log.LevelInfo
	default:
		return log.LevelDebug
	}
}

// AfterApply is a kong hook that configures the root logger with the level
// selected by v and the basic message format.
func (v Verbosity) AfterApply() error {
	log.BasicConfig(v.Level())

	return nil
}
