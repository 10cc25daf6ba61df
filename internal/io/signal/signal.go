// Package signal ties OS termination signals to context cancellation.
package signal

import (
	"context"
	"os"
	gosignal "os/signal"
	"syscall"
)

// WithInterrupt derives a context that is canceled on SIGINT, SIGTERM,
// SIGHUP or SIGQUIT, so a running test binary can be shut down gracefully.
func WithInterrupt(ctx context.Context) (context.Context, context.CancelFunc) {
	return gosignal.NotifyContext(ctx, os.Interrupt,
		syscall.SIGHUP, syscall.SIGTERM, syscall.SIGQUIT)
}
