// Package runtime implements the webview-engine detection and
// auto-install flow from spec.md §6, grounded on
// original_source/runtime.rs: CheckRuntime is a cheap presence probe,
// EnsureRuntime additionally installs the engine when missing (Windows
// only — WKWebView is always present on macOS).
package runtime

// Info describes the native webview engine available on this machine.
type Info struct {
	Available bool
	Version   string
	Platform  string
}
