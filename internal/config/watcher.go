package config

import (
	"github.com/fsnotify/fsnotify"

	"github.com/nwkit/nativewindow/internal/logging"
)

// Watch starts watching the config file for changes and reloads
// automatically, notifying registered callbacks. Safe to call more than
// once; subsequent calls are no-ops.
func (m *Manager) Watch() error {
	m.mu.Lock()
	if m.watching {
		m.mu.Unlock()
		return nil
	}
	m.watching = true
	m.mu.Unlock()

	m.v.WatchConfig()
	m.v.OnConfigChange(func(e fsnotify.Event) {
		log := logging.NewFromEnv()
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config change detected")

		m.mu.Lock()
		m.current = m.snapshotLocked()
		next := m.current
		callbacks := make([]func(Defaults), len(m.callbacks))
		copy(callbacks, m.callbacks)
		m.mu.Unlock()

		for _, cb := range callbacks {
			cb(next)
		}
	})
	return nil
}
