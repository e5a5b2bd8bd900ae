package shutdown

import (
	"context"
	"syscall"
	"testing"
	"time"
)

func TestNotifyContextCancelsOnSignal(t *testing.T) {
	ctx, stop := NotifyContext(context.Background())
	defer stop()

	if err := syscall.Kill(syscall.Getpid(), syscall.SIGTERM); err != nil {
		t.Fatalf("kill: %v", err)
	}
	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("context not cancelled by SIGTERM")
	}
	sig, ok := Signal(ctx)
	if !ok || sig != syscall.SIGTERM {
		t.Fatalf("unexpected signal: %v %v", sig, ok)
	}
}

func TestStopIsNotASignal(t *testing.T) {
	ctx, stop := NotifyContext(context.Background())
	stop()
	<-ctx.Done()
	if _, ok := Signal(ctx); ok {
		t.Fatal("stop reported as a signal")
	}
}
