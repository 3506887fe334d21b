package nativewindow

import (
	"testing"

	"github.com/nwkit/nativewindow/internal/config"
)

func TestApplyDefaultsFillsUnsetFields(t *testing.T) {
	d := config.WindowDefaults{
		Width: 800, Height: 600,
		Resizable: true, Decorations: true, Visible: true,
		Transparent: false, AlwaysOnTop: false, DevTools: false,
	}
	resolved := WindowOptions{Title: "hi"}.applyDefaults(d)

	if resolved.Width != 800 || resolved.Height != 600 {
		t.Fatalf("expected size defaults, got %dx%d", resolved.Width, resolved.Height)
	}
	if derefOr(resolved.Resizable, false) != true {
		t.Fatalf("expected Resizable default true")
	}
	if derefOr(resolved.DevTools, true) != false {
		t.Fatalf("expected DevTools default false")
	}
}

func TestApplyDefaultsPreservesExplicitFalse(t *testing.T) {
	f := false
	d := config.WindowDefaults{Resizable: true}
	resolved := WindowOptions{Resizable: &f}.applyDefaults(d)

	if derefOr(resolved.Resizable, true) != false {
		t.Fatalf("explicit false must survive default resolution")
	}
}

func TestApplyDefaultsPreservesExplicitSize(t *testing.T) {
	d := config.WindowDefaults{Width: 800, Height: 600}
	resolved := WindowOptions{Width: 1200, Height: 900}.applyDefaults(d)

	if resolved.Width != 1200 || resolved.Height != 900 {
		t.Fatalf("explicit size must not be overwritten by defaults, got %dx%d", resolved.Width, resolved.Height)
	}
}
