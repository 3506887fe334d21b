// Package nativewindow is the public façade over the window manager and
// typed IPC channel: WindowOptions/Window map directly onto spec.md §6's
// host API surface, generalized from the teacher's pkg/webkit public API
// shape (constructor-plus-handle) to this system's window-per-handle
// model.
package nativewindow

import "github.com/nwkit/nativewindow/internal/config"

// WindowOptions configures a new Window (spec.md §6). At construction
// time a zero Width or Height and each nil flag among Resizable,
// Decorations, Transparent, AlwaysOnTop, Visible and DevTools fall back
// to the window defaults Init loaded (config.DefaultDefaults() unless a
// config file or environment variable overrides them).
type WindowOptions struct {
	Title       string
	Width       int
	Height      int
	X, Y        *int
	MinWidth    *int
	MinHeight   *int
	MaxWidth    *int
	MaxHeight   *int
	Resizable   *bool
	Decorations *bool
	Transparent *bool
	AlwaysOnTop *bool
	Visible     *bool
	DevTools    *bool

	CSP            string
	TrustedOrigins []string
	AllowedHosts   []string

	AllowCamera      bool
	AllowMicrophone  bool
	AllowFileSystem  bool
	AllowGeolocation bool
}

// applyDefaults fills unset pointer/zero fields from d, returning a fully
// resolved copy.
func (o WindowOptions) applyDefaults(d config.WindowDefaults) WindowOptions {
	resolved := o
	if resolved.Width == 0 {
		resolved.Width = d.Width
	}
	if resolved.Height == 0 {
		resolved.Height = d.Height
	}
	resolved.Resizable = boolOrDefault(resolved.Resizable, d.Resizable)
	resolved.Decorations = boolOrDefault(resolved.Decorations, d.Decorations)
	resolved.Transparent = boolOrDefault(resolved.Transparent, d.Transparent)
	resolved.AlwaysOnTop = boolOrDefault(resolved.AlwaysOnTop, d.AlwaysOnTop)
	resolved.Visible = boolOrDefault(resolved.Visible, d.Visible)
	resolved.DevTools = boolOrDefault(resolved.DevTools, d.DevTools)
	return resolved
}

func boolOrDefault(v *bool, d bool) *bool {
	if v != nil {
		return v
	}
	return &d
}

func derefOr(v *bool, d bool) bool {
	if v == nil {
		return d
	}
	return *v
}
