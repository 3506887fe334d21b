// Package ipc implements the typed channel described in spec.md §4.5: the
// wire envelope, the schema adapter contract, origin/rate-limit policy,
// and the host-side dispatch pipeline. The client-side counterpart lives
// in internal/bridge.
package ipc

import (
	"encoding/json"
	"errors"
)

// MaxEnvelopeSize is the hard byte ceiling enforced ahead of any
// per-channel MaxMessageSize override — mirrors the client bridge's
// literal 1,048,576 constant in spec.md §4.4.
const MaxEnvelopeSize = 1 << 20

// Envelope is the two-field wire object carried over the raw IPC bridge.
type Envelope struct {
	Ch string          `json:"$ch"`
	P  json.RawMessage `json:"p,omitempty"`
}

var (
	// ErrEnvelopeTooLarge is returned when a raw message exceeds the
	// configured size cap.
	ErrEnvelopeTooLarge = errors.New("ipc: envelope exceeds maximum size")
	// ErrEnvelopeMalformed is returned when the raw message does not
	// parse into an object with a string $ch field.
	ErrEnvelopeMalformed = errors.New("ipc: envelope malformed")
)

// Encode builds the wire string for an outgoing message. A nil payload
// omits "p" entirely, matching spec.md §8 scenario 6 (void payload).
func Encode(channelType string, payload any) (string, error) {
	env := struct {
		Ch string `json:"$ch"`
		P  any    `json:"p,omitempty"`
	}{Ch: channelType, P: payload}
	b, err := json.Marshal(env)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Decode parses a raw incoming message, applying the size cap first, then
// requiring the result to be a JSON object with a string "$ch" field. A
// top-level "__proto__" sibling key on the envelope object causes the
// whole message to be rejected, per spec.md §3's invariant on the parsed
// envelope shape. It does not recurse into the payload: schema
// implementations only surface the fields they declare, so a "__proto__"
// key nested inside the payload is simply never copied into the
// delivered value (see spec.md §8 scenario 5).
func Decode(raw string, maxSize int) (*Envelope, error) {
	if maxSize <= 0 || maxSize > MaxEnvelopeSize {
		maxSize = MaxEnvelopeSize
	}
	if len(raw) > maxSize {
		return nil, ErrEnvelopeTooLarge
	}

	var generic map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &generic); err != nil {
		return nil, ErrEnvelopeMalformed
	}
	if _, hasProto := generic["__proto__"]; hasProto {
		return nil, ErrEnvelopeMalformed
	}

	chRaw, ok := generic["$ch"]
	if !ok {
		return nil, ErrEnvelopeMalformed
	}
	var ch string
	if err := json.Unmarshal(chRaw, &ch); err != nil {
		return nil, ErrEnvelopeMalformed
	}

	return &Envelope{Ch: ch, P: generic["p"]}, nil
}
