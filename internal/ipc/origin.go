package ipc

import (
	"net/url"
	"strings"
)

// NormalizeOrigin implements the WHATWG URL-standard origin normalization
// described in spec.md §4.5 and grounded on original_source's
// extract_origin: lowercase scheme and host, strip default ports (80 for
// http, 443 for https), strip userinfo, reject opaque origins. Returns
// ok=false when raw does not parse or yields an origin the standard
// treats as opaque (no scheme, no host).
//
// net/url is used directly rather than a third-party URL library: no
// example repo in the corpus ships one, and origin normalization is a
// small, self-contained transform on top of what the standard library's
// parser already exposes.
func NormalizeOrigin(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	scheme := strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Hostname())
	if scheme == "" || host == "" {
		return "", false
	}

	port := u.Port()
	if (scheme == "http" && port == "80") || (scheme == "https" && port == "443") {
		port = ""
	}

	origin := scheme + "://" + host
	if port != "" {
		origin += ":" + port
	}
	return origin, true
}

// OriginSet is a normalized, case-insensitive set of trusted origins.
type OriginSet map[string]struct{}

// NewOriginSet normalizes every entry in raws, silently dropping any that
// fail to parse or are opaque, per spec.md §4.5 step 1.
func NewOriginSet(raws []string) OriginSet {
	set := make(OriginSet, len(raws))
	for _, r := range raws {
		if norm, ok := NormalizeOrigin(r); ok {
			set[norm] = struct{}{}
		}
	}
	return set
}

// Empty reports whether the set has no entries — an empty set means
// "trust every origin" per spec.md's initialization contract.
func (s OriginSet) Empty() bool { return len(s) == 0 }

// Contains reports whether sourceURL's normalized origin is trusted. A
// malformed or unparseable sourceURL is always untrusted.
func (s OriginSet) Contains(sourceURL string) bool {
	norm, ok := NormalizeOrigin(sourceURL)
	if !ok {
		return false
	}
	_, found := s[norm]
	return found
}

// HostAllowed implements the allowedHosts wildcard match from spec.md
// §4.1: an entry "*.example.com" matches "example.com" itself and any
// subdomain; a bare entry matches only that exact host. An empty
// patterns slice means unrestricted.
func HostAllowed(host string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	host = strings.ToLower(host)
	for _, p := range patterns {
		p = strings.ToLower(p)
		if suffix, ok := strings.CutPrefix(p, "*."); ok {
			if host == suffix || strings.HasSuffix(host, "."+suffix) {
				return true
			}
			continue
		}
		if host == p {
			return true
		}
	}
	return false
}

// internalURLPrefixes and internalURLSubstrings are always permitted for
// navigation regardless of allowedHosts, per original_source's
// is_host_allowed and spec.md §9's synthetic-origin resolution (see
// SPEC_FULL.md §4).
var (
	internalURLPrefixes = []string{"about:", "nativewindow:"}
	internalURLSubstrings = []string{"native-window.local", "nativewindow.localhost", "nativewindow.local"}
)

// IsInternalURL reports whether rawURL is one of the always-allowed
// internal navigation targets.
func IsInternalURL(rawURL string) bool {
	lower := strings.ToLower(rawURL)
	for _, p := range internalURLPrefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	for _, s := range internalURLSubstrings {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}
