// Package shutdown ties process termination signals to a context.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// Signals are the signals that cancel the context returned by WithSignals.
var Signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

// WithSignals returns a context cancelled on SIGINT or SIGTERM. Call stop
// to release the signal handler; a second signal after stop terminates
// the process with the default behaviour.
func WithSignals(parent context.Context) (ctx context.Context, stop context.CancelFunc) {
	return signal.NotifyContext(parent, Signals...)
}
