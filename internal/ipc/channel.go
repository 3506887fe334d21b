package ipc

import (
	"encoding/json"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/nwkit/nativewindow/internal/logging"
)

// HandlerFunc receives a validated, transformed payload for one event.
type HandlerFunc func(payload any)

// Poster delivers an encoded envelope string to the window's page, via
// the platform adapter's post_message operation.
type Poster interface {
	Post(text string) error
}

// PosterFunc adapts a plain function to Poster.
type PosterFunc func(text string) error

// Post implements Poster.
func (f PosterFunc) Post(text string) error { return f(text) }

// Options configures a Channel, mirroring spec.md §4.5's constructor
// options (all optional except Schemas).
type Options struct {
	Schemas              SchemaMap
	InjectClient         bool
	OnValidationError    func(eventType string, rawPayload json.RawMessage)
	TrustedOrigins       []string
	MaxMessageSize       int
	RateLimit            int
	MaxListenersPerEvent int
	ChannelID            string // "", "auto", or a literal id
}

type registeredHandler struct {
	ptr uintptr
	fn  HandlerFunc
}

// Channel is the host-side typed IPC channel wrapping one window (spec.md
// §4.5). It is safe for concurrent Send calls; On/Off/HandleIncoming are
// expected to run on the host thread per spec.md §5's ordering model.
type Channel struct {
	schemas              SchemaMap
	prefix               string
	maxMessageSize       int
	maxListenersPerEvent int
	origins              OriginSet
	limiter              *RateLimiter
	onValidationError    func(eventType string, rawPayload json.RawMessage)
	poster               Poster

	mu       sync.Mutex
	handlers map[string][]registeredHandler

	log zerolog.Logger
}

// NewChannel constructs a Channel per spec.md §4.5's initialization
// steps 1-2 (origin normalization, channel-id resolution). Steps 3-5
// (registering the underlying message handler and injecting/re-injecting
// the client script) are the caller's responsibility — they belong to
// the NativeWindow façade, which owns the platform adapter.
func NewChannel(opts Options, poster Poster) *Channel {
	maxSize := opts.MaxMessageSize
	if maxSize <= 0 {
		maxSize = MaxEnvelopeSize
	}

	return &Channel{
		schemas:              opts.Schemas,
		prefix:                ResolveChannelID(opts.ChannelID),
		maxMessageSize:       maxSize,
		maxListenersPerEvent: opts.MaxListenersPerEvent,
		origins:              NewOriginSet(opts.TrustedOrigins),
		limiter:              NewRateLimiter(opts.RateLimit),
		onValidationError:    opts.OnValidationError,
		poster:               poster,
		handlers:             make(map[string][]registeredHandler),
		log:                  logging.NewFromEnv().With().Str("component", "ipc.channel").Logger(),
	}
}

// ChannelID returns the resolved channel-id prefix ("" if none).
func (c *Channel) ChannelID() string { return c.prefix }

// ShouldInjectImmediately reports whether the client script should be
// injected at construction time (spec.md §4.5 step 4): true only when
// TrustedOrigins is empty — a channel restricted to specific origins must
// never expose the bridge before the page's origin is known to be safe.
func (c *Channel) ShouldInjectImmediately(injectClient bool) bool {
	return injectClient && c.origins.Empty()
}

// ShouldInjectOnLoad reports whether the client script should be
// re-injected for a page that finished loading at sourceURL (spec.md
// §4.5's page-load re-injection rule).
func (c *Channel) ShouldInjectOnLoad(injectClient bool, sourceURL string) bool {
	if !injectClient {
		return false
	}
	if c.origins.Empty() {
		return true
	}
	return c.origins.Contains(sourceURL)
}

func (c *Channel) qualify(eventType string) string {
	if c.prefix == "" {
		return eventType
	}
	return c.prefix + ":" + eventType
}

// Send encodes and posts an outgoing message. Unknown event types are
// dropped silently (spec.md §4.5's "send" contract); outgoing payloads
// are never validated against the schema — that is a documented
// defense-in-depth gap, not an oversight.
func (c *Channel) Send(eventType string, payload any) error {
	if _, ok := c.schemas[eventType]; !ok {
		c.log.Debug().Str("type", eventType).Msg("send: unknown event type, dropped")
		return nil
	}
	text, err := Encode(c.qualify(eventType), payload)
	if err != nil {
		return err
	}
	return c.poster.Post(text)
}

// On registers handler for eventType. Unknown types are rejected
// silently. Once the registered count for eventType equals
// MaxListenersPerEvent (when > 0), further additions are dropped
// silently. Re-registering the same function value is a no-op — Set
// semantics, matching spec.md §8's idempotence property, approximated in
// Go via function-pointer identity.
func (c *Channel) On(eventType string, h HandlerFunc) {
	if _, ok := c.schemas[eventType]; !ok {
		return
	}
	ptr := reflect.ValueOf(h).Pointer()

	c.mu.Lock()
	defer c.mu.Unlock()

	existing := c.handlers[eventType]
	for _, e := range existing {
		if e.ptr == ptr {
			return
		}
	}
	if c.maxListenersPerEvent > 0 && len(existing) >= c.maxListenersPerEvent {
		return
	}
	c.handlers[eventType] = append(existing, registeredHandler{ptr: ptr, fn: h})
}

// Off removes handler from eventType by identity.
func (c *Channel) Off(eventType string, h HandlerFunc) {
	ptr := reflect.ValueOf(h).Pointer()

	c.mu.Lock()
	defer c.mu.Unlock()

	existing := c.handlers[eventType]
	for i, e := range existing {
		if e.ptr == ptr {
			c.handlers[eventType] = append(existing[:i], existing[i+1:]...)
			return
		}
	}
}

// HandleIncoming runs the full incoming-message pipeline from spec.md
// §4.5: rate limit, size/parse, unprefix, origin check, listener lookup,
// schema allowlist, validation, dispatch. Every rejection short-circuits
// silently except a schema-validation failure, which invokes
// OnValidationError when configured.
func (c *Channel) HandleIncoming(raw string, sourceURL string) {
	c.handleIncomingAt(raw, sourceURL, time.Now())
}

func (c *Channel) handleIncomingAt(raw string, sourceURL string, now time.Time) {
	if !c.limiter.Allow(now) {
		c.log.Debug().Msg("incoming: rate limit exceeded, dropped")
		return
	}

	env, err := Decode(raw, c.maxMessageSize)
	if err != nil {
		c.log.Debug().Err(err).Msg("incoming: decode failed, dropped")
		return
	}

	eventType := env.Ch
	if c.prefix != "" {
		want := c.prefix + ":"
		rest, ok := strings.CutPrefix(eventType, want)
		if !ok {
			c.log.Debug().Str("ch", env.Ch).Msg("incoming: namespace mismatch, dropped")
			return
		}
		eventType = rest
	}

	if !c.origins.Empty() && !c.origins.Contains(sourceURL) {
		c.log.Debug().Str("source", sourceURL).Msg("incoming: origin not trusted, dropped")
		return
	}

	c.mu.Lock()
	handlers := append([]registeredHandler(nil), c.handlers[eventType]...)
	c.mu.Unlock()
	if len(handlers) == 0 {
		return
	}

	schema, ok := c.schemas[eventType]
	if !ok {
		return
	}

	result := schema.SafeParse(env.P)
	if !result.Success {
		if c.onValidationError != nil {
			c.onValidationError(eventType, env.P)
		}
		return
	}

	for _, h := range handlers {
		dispatchOne(h.fn, result.Data)
	}
}

// dispatchOne invokes a handler, recovering from a panic so one
// misbehaving handler cannot prevent its siblings from running (spec.md
// §4.4/§4.5/§7's handler-isolation contract).
func dispatchOne(h HandlerFunc, payload any) {
	defer func() {
		if r := recover(); r != nil {
			logger := logging.NewFromEnv()
			logger.Warn().Interface("panic", r).Msg("ipc: handler panicked, isolated")
		}
	}()
	h(payload)
}
