package ipc

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type xPayload struct {
	X int `json:"x"`
}

func newTestChannel(t *testing.T, opts Options) (*Channel, *[]string) {
	t.Helper()
	var sent []string
	poster := PosterFunc(func(text string) error {
		sent = append(sent, text)
		return nil
	})
	return NewChannel(opts, poster), &sent
}

func TestBasicSendReceive(t *testing.T) {
	ch, sent := newTestChannel(t, Options{Schemas: SchemaMap{"ping": String}})

	require.NoError(t, ch.Send("ping", "hi"))
	require.Len(t, *sent, 1)
	assert.JSONEq(t, `{"$ch":"ping","p":"hi"}`, (*sent)[0])

	var got any
	ch.On("ping", func(p any) { got = p })
	ch.HandleIncoming((*sent)[0], "https://app.local/a")
	assert.Equal(t, "hi", got)
}

func TestNamespaceRejection(t *testing.T) {
	ch, _ := newTestChannel(t, Options{
		Schemas:   SchemaMap{"ping": String},
		ChannelID: "ns",
	})
	var calls int
	ch.On("ping", func(any) { calls++ })

	ch.HandleIncoming(`{"$ch":"ping","p":"x"}`, "https://app.local/")
	assert.Equal(t, 0, calls)

	ch.HandleIncoming(`{"$ch":"ns:ping","p":"x"}`, "https://app.local/")
	assert.Equal(t, 1, calls)
}

func TestOriginRejection(t *testing.T) {
	ch, _ := newTestChannel(t, Options{
		Schemas:        SchemaMap{"ping": String},
		TrustedOrigins: []string{"https://app.local"},
	})
	var calls int
	ch.On("ping", func(any) { calls++ })

	ch.HandleIncoming(`{"$ch":"ping","p":"x"}`, "https://evil.com/")
	assert.Equal(t, 0, calls)

	ch.HandleIncoming(`{"$ch":"ping","p":"x"}`, "https://app.local/page")
	assert.Equal(t, 1, calls)

	ch.HandleIncoming(`{"$ch":"ping","p":"x"}`, "HTTPS://APP.LOCAL")
	assert.Equal(t, 2, calls)
}

func TestRateLimit(t *testing.T) {
	ch, _ := newTestChannel(t, Options{
		Schemas:   SchemaMap{"ping": String},
		RateLimit: 3,
	})
	var calls int
	ch.On("ping", func(any) { calls++ })

	base := time.Now()
	for i := 0; i < 5; i++ {
		ch.handleIncomingAt(`{"$ch":"ping","p":"x"}`, "https://app.local/", base)
	}
	assert.Equal(t, 3, calls)

	ch.handleIncomingAt(`{"$ch":"ping","p":"x"}`, "https://app.local/", base.Add(1100*time.Millisecond))
	assert.Equal(t, 4, calls)
}

func TestPrototypePollutionPayload(t *testing.T) {
	ch, _ := newTestChannel(t, Options{Schemas: SchemaMap{"ping": Struct[xPayload]()}})

	var got xPayload
	ch.On("ping", func(p any) { got = p.(xPayload) })

	ch.HandleIncoming(`{"$ch":"ping","p":{"x":1,"__proto__":{"polluted":true}}}`, "https://app.local/")
	assert.Equal(t, xPayload{X: 1}, got)
}

func TestVoidPayload(t *testing.T) {
	ch, sent := newTestChannel(t, Options{Schemas: SchemaMap{"randomize": Void}})

	var called bool
	ch.On("randomize", func(p any) { called = true; assert.Nil(t, p) })

	require.NoError(t, ch.Send("randomize", nil))
	ch.HandleIncoming((*sent)[0], "https://app.local/")
	assert.True(t, called)
}

func TestListenerIdempotenceAndOff(t *testing.T) {
	ch, _ := newTestChannel(t, Options{Schemas: SchemaMap{"ping": String}})
	var calls int
	h := func(any) { calls++ }

	ch.On("ping", h)
	ch.On("ping", h)
	ch.HandleIncoming(`{"$ch":"ping","p":"x"}`, "")
	assert.Equal(t, 1, calls)

	ch.Off("ping", h)
	ch.HandleIncoming(`{"$ch":"ping","p":"x"}`, "")
	assert.Equal(t, 1, calls)
}

func TestMaxListenersPerEvent(t *testing.T) {
	ch, _ := newTestChannel(t, Options{
		Schemas:              SchemaMap{"ping": String},
		MaxListenersPerEvent: 1,
	})
	var a, b int
	ch.On("ping", func(any) { a++ })
	ch.On("ping", func(any) { b++ })

	ch.HandleIncoming(`{"$ch":"ping","p":"x"}`, "")
	assert.Equal(t, 1, a)
	assert.Equal(t, 0, b)
}

func TestHandlerIsolation(t *testing.T) {
	ch, _ := newTestChannel(t, Options{Schemas: SchemaMap{"ping": String}})
	var second bool
	ch.On("ping", func(any) { panic("boom") })
	ch.On("ping", func(any) { second = true })

	ch.HandleIncoming(`{"$ch":"ping","p":"x"}`, "")
	assert.True(t, second)
}

func TestValidationErrorCallback(t *testing.T) {
	var gotType string
	var gotRaw json.RawMessage
	ch, _ := newTestChannel(t, Options{
		Schemas: SchemaMap{"ping": Number},
		OnValidationError: func(eventType string, raw json.RawMessage) {
			gotType = eventType
			gotRaw = raw
		},
	})
	ch.On("ping", func(any) {})

	ch.HandleIncoming(`{"$ch":"ping","p":"not-a-number"}`, "")
	assert.Equal(t, "ping", gotType)
	assert.JSONEq(t, `"not-a-number"`, string(gotRaw))
}

func TestSendUnknownTypeDropped(t *testing.T) {
	ch, sent := newTestChannel(t, Options{Schemas: SchemaMap{"ping": String}})
	require.NoError(t, ch.Send("unknown", "x"))
	assert.Empty(t, *sent)
}

func TestUnknownIncomingTypeDropped(t *testing.T) {
	ch, _ := newTestChannel(t, Options{Schemas: SchemaMap{"ping": String}})
	var calls int
	ch.On("ping", func(any) { calls++ })

	ch.HandleIncoming(`{"$ch":"pong","p":"x"}`, "")
	assert.Equal(t, 0, calls)
}
