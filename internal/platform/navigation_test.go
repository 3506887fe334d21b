package platform

import "testing"

func TestIsLoadURLSchemeAllowed(t *testing.T) {
	cases := map[string]bool{
		"https://example.com":     true,
		"http://example.com":      true,
		"nativewindow://internal": true,
		"file:///etc/passwd":      false,
		"data:text/html,hi":       false,
		"about:blank":             false,
		"not a url\x7f":           false,
	}
	for url, want := range cases {
		if got := IsLoadURLSchemeAllowed(url); got != want {
			t.Errorf("IsLoadURLSchemeAllowed(%q) = %v, want %v", url, got, want)
		}
	}
}

func TestNavigationAllowedInternal(t *testing.T) {
	if !NavigationAllowed("about:blank", nil) {
		t.Fatal("about:blank should always be allowed")
	}
	if !NavigationAllowed("nativewindow://foo", nil) {
		t.Fatal("nativewindow: scheme should always be allowed")
	}
	if !NavigationAllowed("https://native-window.local/index.html", nil) {
		t.Fatal("native-window.local should always be allowed")
	}
}

func TestNavigationAllowedBlockedScheme(t *testing.T) {
	if NavigationAllowed("file:///etc/passwd", nil) {
		t.Fatal("file: scheme must be blocked regardless of allowedHosts")
	}
	if NavigationAllowed("data:text/html,<script>", nil) {
		t.Fatal("data: scheme must be blocked")
	}
}

func TestNavigationAllowedHostFiltering(t *testing.T) {
	hosts := []string{"*.example.com", "trusted.dev"}
	if !NavigationAllowed("https://sub.example.com/page", hosts) {
		t.Fatal("wildcard subdomain should be allowed")
	}
	if !NavigationAllowed("https://trusted.dev/page", hosts) {
		t.Fatal("exact host should be allowed")
	}
	if NavigationAllowed("https://evil.com/page", hosts) {
		t.Fatal("unlisted host should be rejected")
	}
}

func TestNavigationAllowedEmptyHostsUnrestricted(t *testing.T) {
	if !NavigationAllowed("https://anywhere.example/page", nil) {
		t.Fatal("empty allowedHosts means unrestricted")
	}
}
