package windowmgr

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/nwkit/nativewindow/internal/logging"
)

// MaxCommandQueue is the high-water mark at which push logs a warning,
// grounded on original_source/window_manager.rs's MAX_COMMAND_QUEUE.
// Commands are still accepted past this point — a full queue is a sign
// of a runaway loop or a missing PumpEvents call, not a resource limit
// to enforce by dropping work.
const MaxCommandQueue = 10_000

var (
	// ErrIDSpaceExhausted mirrors original_source's checked_add overflow
	// guard on window id allocation.
	ErrIDSpaceExhausted = errors.New("windowmgr: window id space exhausted")
	// ErrWindowNotFound is returned by Manager lookups against an id that
	// was never allocated or has already been closed.
	ErrWindowNotFound = errors.New("windowmgr: window not found")
)

// windowEntry is the manager's per-window bookkeeping: the host-supplied
// event handlers plus the closed flag that guards against double-close.
type windowEntry struct {
	handlers     EventHandlers
	allowedHosts []string
	closed       bool
}

// Manager owns the process-wide window registry and command queue
// (spec.md §4.2). It is confined to a single goroutine — the same
// "UI thread" the platform.Platform backend expects — with the command
// queue as the only place work may cross from other goroutines.
type Manager struct {
	mu      sync.Mutex
	nextID  uint32
	entries map[uint32]*windowEntry
	queue   []Command
	log     zerolog.Logger

	warnedQueueDepth bool
}

// NewManager constructs an empty registry.
func NewManager() *Manager {
	return &Manager{
		nextID:  1,
		entries: make(map[uint32]*windowEntry),
		log:     logging.NewFromEnv().With().Str("component", "windowmgr").Logger(),
	}
}

// AllocateID reserves the next window id and registers an empty handler
// set for it. Returns ErrIDSpaceExhausted once every uint32 value has
// been used, matching original_source's checked_add guard.
func (m *Manager) AllocateID() (uint32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.nextID == 0 {
		return 0, ErrIDSpaceExhausted
	}
	id := m.nextID
	m.nextID++
	m.entries[id] = &windowEntry{}
	return id, nil
}

// SetHandlers replaces the event handler set for id.
func (m *Manager) SetHandlers(id uint32, h EventHandlers) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.entries[id]; ok {
		e.handlers = h
	}
}

// Handlers returns the event handler set for id, or the zero value if id
// is unknown or already closed.
func (m *Manager) Handlers(id uint32) EventHandlers {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.entries[id]; ok {
		return e.handlers
	}
	return EventHandlers{}
}

// SetAllowedHosts records the navigation host allowlist for id, consulted
// by NavigationRequested callbacks (spec.md §4.1).
func (m *Manager) SetAllowedHosts(id uint32, hosts []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.entries[id]; ok {
		e.allowedHosts = hosts
	}
}

func (m *Manager) allowedHosts(id uint32) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.entries[id]; ok {
		return e.allowedHosts
	}
	return nil
}

// IsClosed reports whether id has already been closed (or was never
// allocated).
func (m *Manager) IsClosed(id uint32) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	return !ok || e.closed
}

// MarkClosed flips the closed flag for id and reports whether this call
// is the one that transitioned it — callers use this to fire OnClose
// exactly once, per spec.md §4.2's "close fires once" invariant.
func (m *Manager) MarkClosed(id uint32) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	if !ok || e.closed {
		return false
	}
	e.closed = true
	return true
}

// RemoveEntry deletes id's registry entry entirely, releasing its event
// handlers, following original_source's remove_event_handlers cleanup
// (spec.md §4.2's "no leaked callbacks after close" invariant).
func (m *Manager) RemoveEntry(id uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, id)
}

// Push enqueues a command for the next PumpOnce call. It never blocks and
// never drops work; when the queue reaches MaxCommandQueue entries it logs
// one warning, and warns again only after a drain has found fewer than
// MaxCommandQueue queued commands.
func (m *Manager) Push(cmd Command) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, cmd)
	if len(m.queue) >= MaxCommandQueue && !m.warnedQueueDepth {
		m.warnedQueueDepth = true
		m.log.Warn().Int("depth", len(m.queue)).Msg("command queue depth exceeds high-water mark; is PumpEvents being called?")
	}
}

// drain empties the queue and returns its previous contents, resetting
// the high-water-mark warning latch once the backlog clears.
func (m *Manager) drain() []Command {
	m.mu.Lock()
	defer m.mu.Unlock()
	cmds := m.queue
	m.queue = nil
	if len(cmds) < MaxCommandQueue {
		m.warnedQueueDepth = false
	}
	return cmds
}

// Count returns the number of live (non-closed) windows, used by the
// runtime layer to decide whether the native event loop still needs
// pumping (spec.md §4.2's lazy-start-on-first-window / stop-on-last-close
// lifecycle).
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.entries {
		if !e.closed {
			n++
		}
	}
	return n
}
