package app

import (
	"context"
	"testing"
	"time"
)

func TestSetupContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := SetupContext(context.Background(), time.Minute)
	defer cancel()

	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatal("expected a deadline on the context")
	}
	if remaining := time.Until(deadline); remaining > time.Minute || remaining < 50*time.Second {
		t.Errorf("deadline in %v; want about a minute", remaining)
	}
}

func TestSetupLifecycle(t *testing.T) {
	t.Parallel()
	ctx, cancels := SetupLifecycle(context.Background(), 10*time.Millisecond)
	defer cancels.Cleanup()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context did not expire with the timeout")
	}
	if ctx.Err() != context.DeadlineExceeded {
		t.Errorf("ctx.Err() = %v; want DeadlineExceeded", ctx.Err())
	}
}

func TestCancelFuncsCleanup(t *testing.T) {
	t.Parallel()
	ctx, cancels := SetupLifecycle(context.Background(), time.Minute)
	cancels.Cleanup()

	if ctx.Err() == nil {
		t.Error("expected the context to be canceled after Cleanup")
	}

	// Cleanup tolerates partially populated structs.
	(&CancelFuncs{}).Cleanup()
}
