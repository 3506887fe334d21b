package ipc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeOmitsPayloadWhenNil(t *testing.T) {
	text, err := Encode("randomize", nil)
	require.NoError(t, err)
	assert.NotContains(t, text, `"p"`)
	assert.Contains(t, text, `"$ch":"randomize"`)
}

func TestDecodeRoundTrip(t *testing.T) {
	text, err := Encode("ping", "hi")
	require.NoError(t, err)

	env, err := Decode(text, 0)
	require.NoError(t, err)
	assert.Equal(t, "ping", env.Ch)
	assert.JSONEq(t, `"hi"`, string(env.P))
}

func TestDecodeRejectsOversized(t *testing.T) {
	big := `{"$ch":"ping","p":"` + strings.Repeat("x", 100) + `"}`
	_, err := Decode(big, 10)
	assert.ErrorIs(t, err, ErrEnvelopeTooLarge)
}

func TestDecodeRejectsMissingCh(t *testing.T) {
	_, err := Decode(`{"p":"hi"}`, 0)
	assert.ErrorIs(t, err, ErrEnvelopeMalformed)
}

func TestDecodeRejectsNonStringCh(t *testing.T) {
	_, err := Decode(`{"$ch":1,"p":"hi"}`, 0)
	assert.ErrorIs(t, err, ErrEnvelopeMalformed)
}

func TestDecodeRejectsTopLevelProto(t *testing.T) {
	_, err := Decode(`{"$ch":"ping","p":"hi","__proto__":{"polluted":true}}`, 0)
	assert.ErrorIs(t, err, ErrEnvelopeMalformed)
}
