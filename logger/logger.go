// Package logger defines the logging surface the library reports through.
//
// The combinators only ever log, they never decide based on log output, so
// any implementation works: wrap your project's logger, use Std for quick
// diagnostics, or Noop to silence the library entirely.
package logger

// Logger receives diagnostic messages from the library.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
