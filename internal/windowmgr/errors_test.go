package windowmgr

import (
	"errors"
	"strings"
	"testing"
)

func TestCommandErrorMessage(t *testing.T) {
	err := &CommandError{WindowID: 7, Command: "LoadURL", Err: errors.New("engine refused")}

	msg := err.Error()
	for _, want := range []string{"LoadURL", "7", "engine refused"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("Error() = %q, want substring %q", msg, want)
		}
	}
}

func TestCommandErrorUnwrap(t *testing.T) {
	inner := errors.New("engine refused")
	err := &CommandError{WindowID: 1, Command: "CreateWindow", Err: inner}

	if !errors.Is(err, inner) {
		t.Fatalf("errors.Is(err, inner) = false, want true")
	}
}
