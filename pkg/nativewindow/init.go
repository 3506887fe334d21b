package nativewindow

import (
	"sync"

	"github.com/nwkit/nativewindow/internal/config"
	"github.com/nwkit/nativewindow/internal/platform"
	"github.com/nwkit/nativewindow/internal/windowmgr"
)

// app is the process-wide window manager state: exactly one registry and
// command queue, matching spec.md §9's single-owner resolution of the
// source's thread-local globals. The platform backend itself is not part
// of this state until the first window needs it — see ensurePump.
type app struct {
	mu          sync.Mutex
	mgr         *windowmgr.Manager
	pump        *windowmgr.Pump
	cfg         *config.Manager
	initialized bool
}

var global app

// Init prepares the window registry and configuration. It must be called
// once, on the thread that will subsequently call PumpEvents, before any
// Window is constructed. It does not start the platform backend or its
// pump — spec.md §4.2 requires that to happen lazily, on first window
// creation, so a process that calls Init but never opens a window never
// touches the native event loop at all.
func Init() error {
	global.mu.Lock()
	defer global.mu.Unlock()
	if global.initialized {
		return nil
	}

	cfgMgr := config.NewManager()
	if err := cfgMgr.Load(); err != nil {
		return err
	}

	global.cfg = cfgMgr
	global.mgr = windowmgr.NewManager()
	global.initialized = true
	return nil
}

// ensurePump lazily starts the platform backend and its pump on first
// window creation, and restarts it after a prior stop-on-last-close
// (spec.md §4.2: "pump starts lazily on first window creation and stops
// when the last window closes, after which re-creation starts a fresh
// pump"). Called from Window.New before it enqueues CreateWindow.
func ensurePump() (*windowmgr.Manager, error) {
	global.mu.Lock()
	defer global.mu.Unlock()
	if !global.initialized {
		return nil, ErrNotInitialized
	}
	if global.pump == nil {
		pump, err := windowmgr.NewPump(global.mgr, platform.New(), global.mgr.Callbacks())
		if err != nil {
			return nil, err
		}
		global.pump = pump
	}
	return global.mgr, nil
}

// PumpEvents drains the command queue and runs one iteration of the
// native event loop (spec.md §4.2). The host is responsible for calling
// this at a small fixed cadence (target 16ms) for as long as any window
// is open. Calling it before any window exists, or after the last one
// has closed, is a harmless no-op rather than an error — the pump only
// exists while it has work to do.
func PumpEvents() error {
	global.mu.Lock()
	if !global.initialized {
		global.mu.Unlock()
		return ErrNotInitialized
	}
	pump, mgr := global.pump, global.mgr
	global.mu.Unlock()

	if pump == nil {
		return nil
	}
	pump.Tick()

	global.mu.Lock()
	defer global.mu.Unlock()
	if global.pump == pump && mgr.Count() == 0 {
		global.pump = nil
	}
	return nil
}

func currentDefaults() config.Defaults {
	global.mu.Lock()
	defer global.mu.Unlock()
	if global.cfg == nil {
		return config.DefaultDefaults()
	}
	return global.cfg.Current()
}
