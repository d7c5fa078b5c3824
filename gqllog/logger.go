// Package gqllog wraps charm.land/log/v2 with the handful of calls the
// rest of this module needs: one structured logger, used by the CLI,
// instead of reaching for the standard library's log package directly.
package gqllog

import (
	"os"

	charmlog "charm.land/log/v2"
)

// Logger is the logging surface the rest of the module depends on.
// Implemented by *charmlog.Logger; a Nop implementation is available
// for tests that don't want log output on stderr.
type Logger interface {
	Debug(msg string, keyvals ...interface{})
	Info(msg string, keyvals ...interface{})
	Warn(msg string, keyvals ...interface{})
	Error(msg string, keyvals ...interface{})
}

// Default returns a Logger writing to stderr at info level, the same
// default charmlog.New gives a caller that passes no options.
func Default() Logger {
	return charmlog.New(os.Stderr)
}

// nop discards everything; useful in tests.
type nop struct{}

// Nop returns a Logger that discards every call.
func Nop() Logger { return nop{} }

func (nop) Debug(string, ...interface{}) {}
func (nop) Info(string, ...interface{})  {}
func (nop) Warn(string, ...interface{})  {}
func (nop) Error(string, ...interface{}) {}
