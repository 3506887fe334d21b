//go:build !darwin && !windows

package runtime

import "fmt"

// CheckRuntime reports no available engine on platforms this module does
// not target.
func CheckRuntime() Info {
	return Info{Available: false, Platform: "unsupported"}
}

// EnsureRuntime always fails: there is no known install path on this
// platform.
func EnsureRuntime() (Info, error) {
	return Info{}, fmt.Errorf("runtime: unsupported platform; only macOS and Windows are supported")
}
