package shutdown

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// NotifyContext returns a context cancelled on SIGINT or SIGTERM. The
// cancellation cause names the signal; see Signal.
func NotifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(parent)
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-ch:
			cancel(&signalError{sig: sig})
		case <-ctx.Done():
		}
		signal.Stop(ch)
	}()

	return ctx, func() { cancel(context.Canceled) }
}

type signalError struct{ sig os.Signal }

func (e *signalError) Error() string { return fmt.Sprintf("received %s", e.sig) }

// Signal reports the signal that cancelled ctx, if any.
func Signal(ctx context.Context) (os.Signal, bool) {
	if se, ok := context.Cause(ctx).(*signalError); ok {
		return se.sig, true
	}
	return nil, false
}
