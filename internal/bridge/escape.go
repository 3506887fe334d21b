// Package bridge generates the injected client bundle described in
// spec.md §4.4: the frozen ipc/postMessage bridge, the CSP meta-tag
// installer, the permission shims, and the typed __channel__ dispatcher.
package bridge

import "strings"

// EscapeJSString hand-escapes s for splicing directly into a JavaScript
// string literal passed to evaluateJavaScript, mirroring
// original_source/window_manager.rs's json_escape: it is used instead of
// a generic JSON encoder at the call site so control characters are
// handled explicitly and the result can be embedded in a double-quoted
// literal without a second allocation. Single quotes are passed through
// unescaped, so the result is not safe inside a single-quoted literal.
func EscapeJSString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				b.WriteString(`\u00`)
				const hex = "0123456789abcdef"
				b.WriteByte(hex[(r>>4)&0xf])
				b.WriteByte(hex[r&0xf])
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
