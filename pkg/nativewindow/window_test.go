package nativewindow

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/nwkit/nativewindow/internal/windowmgr"
)

// newTestWindow builds a Window bound to a fresh Manager without going
// through the package-global Init/New pair, so these tests do not depend
// on a real platform backend being available on the host OS. The
// windowmgr.Pump/platform.Platform half of the pipeline is exercised
// separately in internal/windowmgr's own tests via platformtest.
func newTestWindow(t *testing.T) (*Window, *windowmgr.Manager) {
	t.Helper()
	mgr := windowmgr.NewManager()

	id, err := mgr.AllocateID()
	if err != nil {
		t.Fatalf("AllocateID: %v", err)
	}

	w := &Window{id: id, mgr: mgr}
	mgr.SetHandlers(id, w.dispatch())
	return w, mgr
}

func TestWindowCloseIsIdempotent(t *testing.T) {
	w, _ := newTestWindow(t)

	if err := w.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := w.Close(); err != ErrWindowClosed {
		t.Fatalf("second Close: got %v want ErrWindowClosed", err)
	}
}

func TestWindowMutatorsRejectAfterClose(t *testing.T) {
	w, _ := newTestWindow(t)

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.LoadURL("https://example.com"); err != ErrWindowClosed {
		t.Fatalf("LoadURL after close: got %v want ErrWindowClosed", err)
	}
	if err := w.Show(); err != ErrWindowClosed {
		t.Fatalf("Show after close: got %v want ErrWindowClosed", err)
	}
	if err := w.Unsafe().EvaluateScript("1+1"); err != ErrWindowClosed {
		t.Fatalf("EvaluateScript after close: got %v want ErrWindowClosed", err)
	}
}

func TestWindowLoadURLRejectsDisallowedScheme(t *testing.T) {
	w, _ := newTestWindow(t)

	for _, url := range []string{"file:///etc/passwd", "data:text/html,<script>", "ftp://example.com"} {
		if err := w.LoadURL(url); err != ErrSchemeNotAllowed {
			t.Fatalf("LoadURL(%q): got %v want ErrSchemeNotAllowed", url, err)
		}
	}

	for _, url := range []string{"https://example.com", "http://example.com", "nativewindow://internal"} {
		if err := w.LoadURL(url); err != nil {
			t.Fatalf("LoadURL(%q): unexpected error %v", url, err)
		}
	}
}

func TestWindowSetHandlersWarnsOnOnCloseReplacement(t *testing.T) {
	w, _ := newTestWindow(t)

	orig := windowLog
	defer func() { windowLog = orig }()
	var buf bytes.Buffer
	windowLog = zerolog.New(&buf)

	w.SetHandlers(EventHandlers{OnClose: func() {}})
	if buf.Len() != 0 {
		t.Fatalf("first registration should not warn, got: %s", buf.String())
	}

	w.SetHandlers(EventHandlers{OnClose: func() {}})
	if !strings.Contains(buf.String(), "OnClose re-registered") {
		t.Fatalf("expected a re-registration warning, got: %s", buf.String())
	}
}

func TestWindowSetHandlersNoWarnWhenOnCloseUnchanged(t *testing.T) {
	w, _ := newTestWindow(t)

	orig := windowLog
	defer func() { windowLog = orig }()
	var buf bytes.Buffer
	windowLog = zerolog.New(&buf)

	onClose := func() {}
	w.SetHandlers(EventHandlers{OnClose: onClose})
	w.SetHandlers(EventHandlers{OnClose: onClose, OnResize: func(x, y int) {}})

	if buf.Len() != 0 {
		t.Fatalf("re-registering the same OnClose value should not warn, got: %s", buf.String())
	}
}

func TestWindowNativeCloseEventFiresOnCloseOnce(t *testing.T) {
	w, mgr := newTestWindow(t)

	fired := 0
	w.SetHandlers(EventHandlers{OnClose: func() { fired++ }})

	cb := mgr.Callbacks()
	cb.WindowClosed(w.id)
	cb.WindowClosed(w.id) // already removed from the registry, dropped silently

	if fired != 1 {
		t.Fatalf("OnClose fired %d times, want 1", fired)
	}
	if !w.closed.Load() {
		t.Fatalf("closed flag not set after native close event")
	}
}

func TestWindowGetCookiesResolvesFromCallback(t *testing.T) {
	w, mgr := newTestWindow(t)

	ch, err := w.GetCookies(nil)
	if err != nil {
		t.Fatalf("GetCookies: %v", err)
	}

	cb := mgr.Callbacks()
	cb.CookiesReady(w.id, `[{"name":"a","value":"b","domain":"x","path":"/","httpOnly":false,"secure":false,"sameSite":"lax","expires":-1}]`)

	result := <-ch
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if len(result.Cookies) != 1 || result.Cookies[0].Name != "a" {
		t.Fatalf("unexpected cookies: %+v", result.Cookies)
	}
}

func TestWindowGetCookiesResolvesWithErrorOnClose(t *testing.T) {
	w, mgr := newTestWindow(t)

	ch, err := w.GetCookies(nil)
	if err != nil {
		t.Fatalf("GetCookies: %v", err)
	}

	mgr.Callbacks().WindowClosed(w.id)

	result := <-ch
	if result.Err != ErrWindowClosed {
		t.Fatalf("got %v want ErrWindowClosed", result.Err)
	}
}

func TestWindowGetCookiesRejectsOnAlreadyClosedWindow(t *testing.T) {
	w, _ := newTestWindow(t)
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := w.GetCookies(nil); err != ErrWindowClosed {
		t.Fatalf("got %v want ErrWindowClosed", err)
	}
}
