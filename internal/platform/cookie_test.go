package platform

import (
	"encoding/json"
	"testing"
)

func TestEncodeCookiesEmpty(t *testing.T) {
	got, err := EncodeCookies(nil)
	if err != nil {
		t.Fatalf("EncodeCookies: %v", err)
	}
	if got != "[]" {
		t.Fatalf("got %q, want []", got)
	}
}

func TestEncodeCookiesRoundtrip(t *testing.T) {
	cookies := []CookieInfo{
		{Name: "session", Value: "abc123", Domain: "example.com", Path: "/", HTTPOnly: true, Secure: true, SameSite: "Strict", Expires: -1},
	}
	raw, err := EncodeCookies(cookies)
	if err != nil {
		t.Fatalf("EncodeCookies: %v", err)
	}
	var decoded []CookieInfo
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Name != "session" || decoded[0].Expires != -1 {
		t.Fatalf("unexpected roundtrip result: %+v", decoded)
	}
}

func TestFilterCookiesByURLDomainMatch(t *testing.T) {
	cookies := []CookieInfo{
		{Name: "a", Domain: "example.com", Path: "/"},
		{Name: "b", Domain: ".example.com", Path: "/app"},
		{Name: "c", Domain: "other.com", Path: "/"},
	}
	got := FilterCookiesByURL(cookies, "example.com", "/app/settings")
	if len(got) != 2 {
		t.Fatalf("expected 2 matching cookies, got %d: %+v", len(got), got)
	}
}

func TestFilterCookiesByURLEmptyDomainPassthrough(t *testing.T) {
	cookies := []CookieInfo{{Name: "a", Domain: "example.com"}}
	got := FilterCookiesByURL(cookies, "", "/")
	if len(got) != 1 {
		t.Fatal("empty domain should return all cookies unfiltered")
	}
}

func TestFilterCookiesByURLPathMismatch(t *testing.T) {
	cookies := []CookieInfo{{Name: "a", Domain: "example.com", Path: "/admin"}}
	got := FilterCookiesByURL(cookies, "example.com", "/public")
	if len(got) != 0 {
		t.Fatalf("expected no cookies to match, got %+v", got)
	}
}

func TestFilterCookiesJSONByURLNarrowsToScope(t *testing.T) {
	raw, err := EncodeCookies([]CookieInfo{
		{Name: "a", Domain: "example.com", Path: "/"},
		{Name: "b", Domain: "other.com", Path: "/"},
	})
	if err != nil {
		t.Fatalf("EncodeCookies: %v", err)
	}

	got := FilterCookiesJSONByURL(raw, "https://example.com/dashboard")

	var decoded []CookieInfo
	if err := json.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatalf("unmarshal filtered result: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Name != "a" {
		t.Fatalf("expected only example.com cookie, got %+v", decoded)
	}
}

func TestFilterCookiesJSONByURLPassesThroughOnDecodeError(t *testing.T) {
	got := FilterCookiesJSONByURL("not json", "https://example.com/")
	if got != "not json" {
		t.Fatalf("expected passthrough on decode failure, got %q", got)
	}
}
