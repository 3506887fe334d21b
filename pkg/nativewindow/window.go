package nativewindow

import (
	"reflect"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/nwkit/nativewindow/internal/bridge"
	"github.com/nwkit/nativewindow/internal/logging"
	"github.com/nwkit/nativewindow/internal/platform"
	"github.com/nwkit/nativewindow/internal/windowmgr"
)

var windowLog = logging.NewFromEnv().With().Str("component", "nativewindow").Logger()

// EventHandlers mirrors internal/windowmgr.EventHandlers at the public
// surface (spec.md §3), kept as a distinct type so callers do not import
// internal packages.
type EventHandlers struct {
	OnMessage           func(message, sourceURL string)
	OnClose             func()
	OnResize            func(w, h int)
	OnMove              func(x, y int)
	OnFocus             func()
	OnBlur              func()
	OnPageLoad          func(started bool, url string)
	OnTitleChanged      func(title string)
	OnReload            func()
	OnNavigationBlocked func(url string)
	OnCookies           func(json string)
}

// Window is a handle to one native window (spec.md §4.3). It is safe to
// call from any goroutine; mutating calls enqueue commands rather than
// touching platform state directly, and every mutating call rechecks the
// closed flag first.
type Window struct {
	id     uint32
	mgr    *windowmgr.Manager
	closed atomic.Bool
	opts   WindowOptions

	handlersMu     sync.Mutex
	handlers       EventHandlers
	pendingCookies []chan cookieFutureResult
}

type cookieFutureResult struct {
	cookies []platform.CookieInfo
	err     error
}

// New constructs a window and enqueues its creation. The underlying
// native window is realized on the next PumpEvents call — the cooperative
// pump this module builds on has no thread of its own to block on for a
// synchronous first drain, so callers that need the window visible before
// proceeding should call PumpEvents once immediately after New.
func New(opts WindowOptions) (*Window, error) {
	mgr, err := ensurePump()
	if err != nil {
		return nil, err
	}

	resolved := opts.applyDefaults(currentDefaults().Window)

	id, err := mgr.AllocateID()
	if err != nil {
		return nil, err
	}
	mgr.SetAllowedHosts(id, resolved.AllowedHosts)

	w := &Window{id: id, mgr: mgr, opts: resolved}

	spec := platform.WindowSpec{
		Title:       resolved.Title,
		Width:       resolved.Width,
		Height:      resolved.Height,
		X:           resolved.X,
		Y:           resolved.Y,
		MinWidth:    resolved.MinWidth,
		MinHeight:   resolved.MinHeight,
		MaxWidth:    resolved.MaxWidth,
		MaxHeight:   resolved.MaxHeight,
		Resizable:   derefOr(resolved.Resizable, true),
		Decorations: derefOr(resolved.Decorations, true),
		Transparent: derefOr(resolved.Transparent, false),
		AlwaysOnTop: derefOr(resolved.AlwaysOnTop, false),
		Visible:     derefOr(resolved.Visible, true),
		DevTools:    derefOr(resolved.DevTools, false),
	}
	mgr.Push(windowmgr.Command{Kind: windowmgr.CreateWindow, ID: id, Spec: spec})
	mgr.SetHandlers(id, w.dispatch())

	// spec.md §4.1 items a-d — frozen window.ipc, CSP injection,
	// permission shims, window.open override — are unconditional at
	// window creation, independent of whether the host ever attaches a
	// Channel. NewChannel later replaces this with the full bundle that
	// also carries item (e), the typed-channel dispatch machinery.
	baseline := bridge.GenerateBaseline(bridge.Options{
		NativeCallJS:     nativeCallJS,
		CSP:              resolved.CSP,
		AllowCamera:      resolved.AllowCamera,
		AllowMicrophone:  resolved.AllowMicrophone,
		AllowFileSystem:  resolved.AllowFileSystem,
		AllowGeolocation: resolved.AllowGeolocation,
	})
	mgr.Push(windowmgr.Command{Kind: windowmgr.InstallDocumentStartScript, ID: id, Script: baseline})

	runtime.SetFinalizer(w, finalizeWindow)
	return w, nil
}

// finalizeWindow is a safety net for host code that lets a Window go out
// of scope without calling Close (SPEC_FULL.md §4's "drop-triggers-close"
// carry-forward): it closes the window and logs at Warn, since a
// finalizer-triggered close means host code leaked a handle rather than
// releasing it explicitly.
func finalizeWindow(w *Window) {
	if w.closed.Load() {
		return
	}
	windowLog.Warn().Uint32("window_id", w.id).Msg("window finalized without an explicit Close; leaked handle")
	_ = w.Close()
}

// dispatch builds the windowmgr-facing handler record that always runs,
// regardless of what the host has registered via SetHandlers: it settles
// outstanding cookie futures and services close bookkeeping before
// forwarding to whatever the host last set.
func (w *Window) dispatch() windowmgr.EventHandlers {
	return windowmgr.EventHandlers{
		OnMessage: func(message, sourceURL string) {
			if h := w.current().OnMessage; h != nil {
				h(message, sourceURL)
			}
		},
		OnClose: w.onCloseInternal,
		OnResize: func(x, y int) {
			if h := w.current().OnResize; h != nil {
				h(x, y)
			}
		},
		OnMove: func(x, y int) {
			if h := w.current().OnMove; h != nil {
				h(x, y)
			}
		},
		OnFocus: func() {
			if h := w.current().OnFocus; h != nil {
				h()
			}
		},
		OnBlur: func() {
			if h := w.current().OnBlur; h != nil {
				h()
			}
		},
		OnPageLoad: func(started bool, url string) {
			if h := w.current().OnPageLoad; h != nil {
				h(started, url)
			}
		},
		OnTitleChanged: func(title string) {
			if h := w.current().OnTitleChanged; h != nil {
				h(title)
			}
		},
		OnReload: func() {
			if h := w.current().OnReload; h != nil {
				h()
			}
		},
		OnNavigationBlocked: func(url string) {
			if h := w.current().OnNavigationBlocked; h != nil {
				h(url)
			}
		},
		OnCookies: w.onCookiesInternal,
	}
}

func (w *Window) current() EventHandlers {
	w.handlersMu.Lock()
	defer w.handlersMu.Unlock()
	return w.handlers
}

func (w *Window) onCloseInternal() {
	w.closed.Store(true)

	w.handlersMu.Lock()
	pending := w.pendingCookies
	w.pendingCookies = nil
	userOnClose := w.handlers.OnClose
	w.handlersMu.Unlock()

	for _, ch := range pending {
		ch <- cookieFutureResult{err: ErrWindowClosed}
		close(ch)
	}
	if userOnClose != nil {
		userOnClose()
	}
}

func (w *Window) onCookiesInternal(cookiesJSON string) {
	cookies, err := decodeCookiesJSON(cookiesJSON)

	w.handlersMu.Lock()
	pending := w.pendingCookies
	w.pendingCookies = nil
	userOnCookies := w.handlers.OnCookies
	w.handlersMu.Unlock()

	for _, ch := range pending {
		ch <- cookieFutureResult{cookies: cookies, err: err}
		close(ch)
	}
	if userOnCookies != nil {
		userOnCookies(cookiesJSON)
	}
}

// ID returns the process-unique window id.
func (w *Window) ID() uint32 { return w.id }

func (w *Window) checkOpen() error {
	if w.closed.Load() {
		return ErrWindowClosed
	}
	return nil
}

func (w *Window) push(cmd windowmgr.Command) error {
	if err := w.checkOpen(); err != nil {
		return err
	}
	cmd.ID = w.id
	w.mgr.Push(cmd)
	return nil
}

// LoadURL navigates the window to url. The scheme must be http, https, or
// the internal nativewindow: scheme (SPEC_FULL.md §4's host-scheme
// allowlist, distinct from the allowedHosts check applied to in-page
// navigation once the page is already loaded).
func (w *Window) LoadURL(url string) error {
	if !platform.IsLoadURLSchemeAllowed(url) {
		return ErrSchemeNotAllowed
	}
	return w.push(windowmgr.Command{Kind: windowmgr.LoadURL, URL: url})
}

func (w *Window) LoadHTML(html string) error {
	return w.push(windowmgr.Command{Kind: windowmgr.LoadHTML, HTML: html})
}

// PostMessage delivers text to the page's injected dispatcher. Prefer
// Channel.Send for typed traffic; this is the raw primitive it builds on.
func (w *Window) PostMessage(text string) error {
	return w.push(windowmgr.Command{Kind: windowmgr.PostMessage, Text: text})
}

func (w *Window) SetTitle(title string) error {
	return w.push(windowmgr.Command{Kind: windowmgr.SetTitle, Title: title})
}

func (w *Window) SetSize(width, height int) error {
	return w.push(windowmgr.Command{Kind: windowmgr.SetSize, Size: windowmgr.Size{Width: width, Height: height}})
}

func (w *Window) SetMinSize(width, height int) error {
	return w.push(windowmgr.Command{Kind: windowmgr.SetMinSize, Size: windowmgr.Size{Width: width, Height: height}})
}

func (w *Window) SetMaxSize(width, height int) error {
	return w.push(windowmgr.Command{Kind: windowmgr.SetMaxSize, Size: windowmgr.Size{Width: width, Height: height}})
}

func (w *Window) SetPosition(x, y int) error {
	return w.push(windowmgr.Command{Kind: windowmgr.SetPosition, Pos: windowmgr.Position{X: x, Y: y}})
}

func (w *Window) SetResizable(v bool) error {
	return w.push(windowmgr.Command{Kind: windowmgr.SetResizable, Bool: v})
}

func (w *Window) SetDecorations(v bool) error {
	return w.push(windowmgr.Command{Kind: windowmgr.SetDecorations, Bool: v})
}

func (w *Window) SetAlwaysOnTop(v bool) error {
	return w.push(windowmgr.Command{Kind: windowmgr.SetAlwaysOnTop, Bool: v})
}

// SetIcon sets the window icon on platforms where an icon is a per-window
// concept (Windows); it is a documented no-op on macOS (SPEC_FULL.md §4).
func (w *Window) SetIcon(path string) error {
	return w.push(windowmgr.Command{Kind: windowmgr.SetIcon, Path: path})
}

func (w *Window) Show() error { return w.push(windowmgr.Command{Kind: windowmgr.Show}) }
func (w *Window) Hide() error { return w.push(windowmgr.Command{Kind: windowmgr.Hide}) }

// Close sets the local closed flag before enqueueing the close command,
// per spec.md §4.3: subsequent calls fail fast without waiting on the
// pump.
func (w *Window) Close() error {
	if !w.closed.CompareAndSwap(false, true) {
		return ErrWindowClosed
	}
	runtime.SetFinalizer(w, nil)
	w.mgr.Push(windowmgr.Command{Kind: windowmgr.Close, ID: w.id})
	return nil
}

func (w *Window) Focus() error      { return w.push(windowmgr.Command{Kind: windowmgr.Focus}) }
func (w *Window) Maximize() error   { return w.push(windowmgr.Command{Kind: windowmgr.Maximize}) }
func (w *Window) Minimize() error   { return w.push(windowmgr.Command{Kind: windowmgr.Minimize}) }
func (w *Window) Unmaximize() error { return w.push(windowmgr.Command{Kind: windowmgr.Unmaximize}) }
func (w *Window) Reload() error     { return w.push(windowmgr.Command{Kind: windowmgr.Reload}) }

// SetHandlers registers the per-window callbacks (spec.md §4.3),
// replacing the whole record atomically;
// replacing an already-set OnClose with a different one is legal but
// usually a bug (the pump's own close bookkeeping does not depend on it,
// but a host that silently drops its close handler will leak whatever
// cleanup it was relying on), so that specific change is logged at Warn.
func (w *Window) SetHandlers(h EventHandlers) {
	w.handlersMu.Lock()
	old := w.handlers.OnClose
	w.handlers = h
	w.handlersMu.Unlock()

	if old != nil && funcPointer(old) != funcPointer(h.OnClose) {
		windowLog.Warn().Uint32("window_id", w.id).Msg("OnClose re-registered with a different handler; the previous handler will not run")
	}
}

// funcPointer returns fn's entry point for identity comparison across
// two SetHandlers calls; reflect is the only way to compare func values,
// which Go otherwise forbids comparing except to nil.
func funcPointer(fn func()) uintptr {
	if fn == nil {
		return 0
	}
	return reflect.ValueOf(fn).Pointer()
}

// Unsafe returns the accessor for operations spec.md §4.3 keeps off the
// main handle. Each call re-checks the closed flag; a reference obtained
// before Close becomes inert afterward rather than panicking.
func (w *Window) Unsafe() UnsafeWindow {
	return UnsafeWindow{w: w}
}
