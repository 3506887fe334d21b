package platform

import (
	"encoding/json"
	"net/url"
	"strings"
)

// CookieInfo is the wire record from spec.md §6: Expires is -1 for
// session cookies.
type CookieInfo struct {
	Name     string  `json:"name"`
	Value    string  `json:"value"`
	Domain   string  `json:"domain"`
	Path     string  `json:"path"`
	HTTPOnly bool    `json:"httpOnly"`
	Secure   bool    `json:"secure"`
	SameSite string  `json:"sameSite"`
	Expires  float64 `json:"expires"`
}

// EncodeCookies serializes cookies to the JSON array format delivered via
// Callbacks.CookiesReady.
func EncodeCookies(cookies []CookieInfo) (string, error) {
	if cookies == nil {
		cookies = []CookieInfo{}
	}
	b, err := json.Marshal(cookies)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// FilterCookiesByURL applies exact-domain and path-prefix matching, for
// platform engines whose cookie API returns every cookie rather than
// accepting a URL scope (spec.md §4.1's cookie-access fallback rule).
func FilterCookiesByURL(cookies []CookieInfo, domain, path string) []CookieInfo {
	if domain == "" {
		return cookies
	}
	if path == "" {
		path = "/"
	}
	out := make([]CookieInfo, 0, len(cookies))
	for _, c := range cookies {
		cDomain := strings.TrimPrefix(c.Domain, ".")
		wantDomain := strings.TrimPrefix(domain, ".")
		if !strings.EqualFold(cDomain, wantDomain) {
			continue
		}
		cPath := c.Path
		if cPath == "" {
			cPath = "/"
		}
		if !strings.HasPrefix(path, cPath) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// FilterCookiesJSONByURL decodes a Callbacks.CookiesReady payload, applies
// FilterCookiesByURL against rawURL's host and path, and re-encodes the
// result — the shape a GetCookies backend that returns its whole cookie
// store needs to narrow the result to the requested scope before handing
// it to the caller. If rawJSON fails to decode, it is returned unchanged.
func FilterCookiesJSONByURL(rawJSON, rawURL string) string {
	var cookies []CookieInfo
	if err := json.Unmarshal([]byte(rawJSON), &cookies); err != nil {
		return rawJSON
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawJSON
	}
	filtered := FilterCookiesByURL(cookies, u.Hostname(), u.Path)
	encoded, err := EncodeCookies(filtered)
	if err != nil {
		return rawJSON
	}
	return encoded
}
