package nativewindow

import "testing"

// These tests run against the "other" platform stub (this host is
// neither darwin nor windows), whose Init always fails. That failure is
// exactly what lets the lazy-pump state machine be exercised without a
// real platform backend: ensurePump's attempt to build one is
// deterministic and observable through the error it returns.

func TestPumpEventsBeforeInitIsAnError(t *testing.T) {
	if err := PumpEvents(); err != ErrNotInitialized {
		t.Fatalf("got %v, want ErrNotInitialized", err)
	}
}

func TestNewBeforeInitIsAnError(t *testing.T) {
	if _, err := New(WindowOptions{}); err != ErrNotInitialized {
		t.Fatalf("got %v, want ErrNotInitialized", err)
	}
}

func TestPumpStaysNilUntilFirstWindowAttempt(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer func() { global = app{} }()

	if global.pump != nil {
		t.Fatalf("pump should not exist before any Window.New call")
	}
	if err := PumpEvents(); err != nil {
		t.Fatalf("PumpEvents with no windows should no-op, got %v", err)
	}

	// New fails on this host (no native backend), but the failure comes
	// from ensurePump attempting to build one — not from the window
	// registry being unset.
	if _, err := New(WindowOptions{}); err == nil || err == ErrNotInitialized {
		t.Fatalf("New: got %v, want a platform-backend error", err)
	}
}
