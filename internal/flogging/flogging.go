// Package flogging centralizes the engines' diagnostic logging behind a
// single import of github.com/projectdiscovery/gologger, the way the
// teacher centralizes sentinel errors in one errors.go per package.
// Callers never import gologger directly.
package flogging

import "github.com/projectdiscovery/gologger"

// Verbosef logs a progress line at verbose level. Callers use it at the
// start or end of a run (seed counts, normalization start/finish, state
// counts); it is silent unless the caller's gologger output level has
// been raised (default level drops it).
func Verbosef(format string, args ...interface{}) {
	gologger.Verbose().Msgf(format, args...)
}

// Debugf logs finer-grained detail at debug level (per-stage production
// counts, round counts at convergence, result counts).
func Debugf(format string, args ...interface{}) {
	gologger.Debug().Msgf(format, args...)
}
