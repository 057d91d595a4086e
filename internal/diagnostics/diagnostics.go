// Package diagnostics centralizes how the driver reports failures: a
// single-line message on the error stream via logrus, with pkg/errors
// used throughout the rest of the module to attach context to plain
// errors as they cross package boundaries.
package diagnostics

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/CodeInCachemire/sat-solver-full-app/dpll"
)

// Logger is a logrus logger configured for the CLI: a plain text
// formatter with no timestamp, since a one-shot command-line tool's
// output is read by a human right after it runs, not grepped later.
func Logger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.Out = out
	l.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	return l
}

// Abort logs err as a fatal diagnostic and returns the process exit
// code the driver should use. It never calls os.Exit itself, so main
// stays the only place that terminates the process.
func Abort(log *logrus.Logger, err error) int {
	log.Error(err)
	return 1
}

// AsInvariant classifies a value obtained from recover(): if it is a
// dpll.InvariantViolation it is returned as an error, otherwise it is
// re-panicked. recover() itself must be called directly by the
// deferred function, so callers look like:
//
//	defer func() {
//	    if r := recover(); r != nil {
//	        err = diagnostics.AsInvariant(r)
//	    }
//	}()
//
// An invariant violation is the only panic this module's core is
// documented to produce; any other panic is a real bug that should
// not be silently swallowed.
func AsInvariant(r interface{}) error {
	if iv, ok := r.(dpll.InvariantViolation); ok {
		return iv
	}
	panic(r)
}
