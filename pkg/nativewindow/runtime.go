package nativewindow

import "github.com/nwkit/nativewindow/internal/runtime"

// RuntimeInfo reports whether the platform's embedded-webview runtime is
// present (spec.md §6): on Windows, whether the WebView2 Evergreen
// runtime is installed; on macOS, WebKit is always present as part of
// the OS and this always reports available.
type RuntimeInfo = runtime.Info

// CheckRuntime probes for the platform webview runtime without
// installing anything.
func CheckRuntime() RuntimeInfo { return runtime.CheckRuntime() }

// EnsureRuntime probes for the platform webview runtime and, on Windows,
// downloads and silently runs the Evergreen bootstrapper when it is
// missing. It is a no-op returning an already-available RuntimeInfo on
// macOS.
func EnsureRuntime() (RuntimeInfo, error) { return runtime.EnsureRuntime() }
