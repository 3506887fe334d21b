package platform

import (
	"net/url"
	"strings"

	"github.com/nwkit/nativewindow/internal/ipc"
)

// blockedSchemes are always rejected on in-page navigation, regardless of
// allowedHosts, per spec.md §4.1.
var blockedSchemes = map[string]bool{"data": true, "file": true, "blob": true}

// loadURLAllowedSchemes gates the initial LoadURL call, per
// original_source/window.rs's load_url validation (SPEC_FULL.md §4);
// this is a distinct, stricter check from NavigationAllowed below, which
// governs in-page navigation once a page is already loaded.
var loadURLAllowedSchemes = map[string]bool{"http": true, "https": true, "nativewindow": true}

// IsLoadURLSchemeAllowed reports whether rawURL may be passed to LoadURL.
func IsLoadURLSchemeAllowed(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return loadURLAllowedSchemes[strings.ToLower(u.Scheme)]
}

// NavigationAllowed implements the navigation-gating policy from spec.md
// §4.1: internal URLs are always allowed; otherwise the scheme must not
// be blocked and the host must match allowedHosts (empty = unrestricted).
func NavigationAllowed(rawURL string, allowedHosts []string) bool {
	if ipc.IsInternalURL(rawURL) || rawURL == "about:blank" {
		return true
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if blockedSchemes[strings.ToLower(u.Scheme)] {
		return false
	}
	return ipc.HostAllowed(u.Hostname(), allowedHosts)
}
