// Package config loads process-wide defaults for window and channel
// options, with optional hot reload of a config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// WindowDefaults mirrors the constructor defaults documented in
// spec.md §6 for WindowOptions.
type WindowDefaults struct {
	Width      int
	Height     int
	Resizable  bool
	Decorations bool
	Transparent bool
	AlwaysOnTop bool
	Visible    bool
	DevTools   bool
}

// ChannelDefaults mirrors the constructor defaults documented in
// spec.md §4.5 for channel options. They are loaded with the rest of
// Defaults; pkg/nativewindow.NewChannel does not read them and uses its
// ChannelOptions fields as given.
type ChannelDefaults struct {
	InjectClient         bool
	MaxMessageSize       int
	RateLimit            int // 0 = unlimited
	MaxListenersPerEvent int // 0 = unlimited
}

// Defaults is the full set of process-wide defaults.
type Defaults struct {
	Window  WindowDefaults
	Channel ChannelDefaults
	LogLevel  string
	LogFormat string
}

// DefaultDefaults returns the hard-coded fallback values, used before any
// config file is loaded and whenever no override is present.
func DefaultDefaults() Defaults {
	return Defaults{
		Window: WindowDefaults{
			Width:       800,
			Height:      600,
			Resizable:   true,
			Decorations: true,
			Transparent: false,
			AlwaysOnTop: false,
			Visible:     true,
			DevTools:    false,
		},
		Channel: ChannelDefaults{
			InjectClient:         true,
			MaxMessageSize:       1 << 20,
			RateLimit:            0,
			MaxListenersPerEvent: 0,
		},
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// Manager loads Defaults from an optional nativewindow.toml plus
// NATIVEWINDOW_-prefixed environment variables, and can watch the file
// for changes.
type Manager struct {
	mu        sync.RWMutex
	v         *viper.Viper
	current   Defaults
	callbacks []func(Defaults)
	watching  bool
}

// NewManager constructs a Manager seeded with DefaultDefaults and wires
// up viper the way the teacher's config loader does: named config file,
// TOML, current-directory search path, automatic env with a project
// prefix.
func NewManager() *Manager {
	v := viper.New()
	v.SetConfigName("nativewindow")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "nativewindow"))
	}
	v.SetEnvPrefix("NATIVEWINDOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	m := &Manager{v: v, current: DefaultDefaults()}
	m.bindDefaultsIntoViper()
	return m
}

func (m *Manager) bindDefaultsIntoViper() {
	d := DefaultDefaults()
	m.v.SetDefault("window.width", d.Window.Width)
	m.v.SetDefault("window.height", d.Window.Height)
	m.v.SetDefault("window.resizable", d.Window.Resizable)
	m.v.SetDefault("window.decorations", d.Window.Decorations)
	m.v.SetDefault("window.transparent", d.Window.Transparent)
	m.v.SetDefault("window.always_on_top", d.Window.AlwaysOnTop)
	m.v.SetDefault("window.visible", d.Window.Visible)
	m.v.SetDefault("window.devtools", d.Window.DevTools)
	m.v.SetDefault("channel.inject_client", d.Channel.InjectClient)
	m.v.SetDefault("channel.max_message_size", d.Channel.MaxMessageSize)
	m.v.SetDefault("channel.rate_limit", d.Channel.RateLimit)
	m.v.SetDefault("channel.max_listeners_per_event", d.Channel.MaxListenersPerEvent)
	m.v.SetDefault("log.level", d.LogLevel)
	m.v.SetDefault("log.format", d.LogFormat)
}

// Load reads the config file if present (a missing file is not an error;
// it just leaves the built-in defaults + env overrides in effect) and
// populates Current().
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return fmt.Errorf("nativewindow: reading config: %w", err)
		}
	}
	m.current = m.snapshotLocked()
	return nil
}

func (m *Manager) snapshotLocked() Defaults {
	return Defaults{
		Window: WindowDefaults{
			Width:       m.v.GetInt("window.width"),
			Height:      m.v.GetInt("window.height"),
			Resizable:   m.v.GetBool("window.resizable"),
			Decorations: m.v.GetBool("window.decorations"),
			Transparent: m.v.GetBool("window.transparent"),
			AlwaysOnTop: m.v.GetBool("window.always_on_top"),
			Visible:     m.v.GetBool("window.visible"),
			DevTools:    m.v.GetBool("window.devtools"),
		},
		Channel: ChannelDefaults{
			InjectClient:         m.v.GetBool("channel.inject_client"),
			MaxMessageSize:       m.v.GetInt("channel.max_message_size"),
			RateLimit:            m.v.GetInt("channel.rate_limit"),
			MaxListenersPerEvent: m.v.GetInt("channel.max_listeners_per_event"),
		},
		LogLevel:  m.v.GetString("log.level"),
		LogFormat: m.v.GetString("log.format"),
	}
}

// Current returns the most recently loaded defaults.
func (m *Manager) Current() Defaults {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// OnChange registers a callback invoked after a hot reload. Windows
// already constructed are unaffected; only windows created after the
// change observe the new defaults, matching the invariant that a
// window's security config is fixed at construction.
func (m *Manager) OnChange(fn func(Defaults)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, fn)
}
