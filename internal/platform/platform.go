// Package platform declares the capability set every OS backend
// implements (spec.md §4.1). Selection between backends is static, by
// build tag, per spec.md §9's "polymorphism over platforms" note — there
// is no runtime dispatch table.
package platform

// WindowSpec is the value-only description of a window to create,
// derived from spec.md §6's WindowOptions.
type WindowSpec struct {
	Title       string
	Width       int
	Height      int
	X, Y        *int
	MinWidth    *int
	MinHeight   *int
	MaxWidth    *int
	MaxHeight   *int
	Resizable   bool
	Decorations bool
	Transparent bool
	AlwaysOnTop bool
	Visible     bool
	DevTools    bool
}

// Callbacks are the host-bound calls the adapter invokes (spec.md §4.1's
// "operations it consumes from the Window Manager"). All fields are
// optional; a nil callback means the manager has not wired that event.
type Callbacks struct {
	PageLoadingStarted  func(id uint32, url string)
	PageLoadingFinished func(id uint32, url string)
	// NavigationRequested is consulted synchronously and must return
	// true to allow the navigation.
	NavigationRequested func(id uint32, url string) bool
	WindowMessage       func(id uint32, text string, sourceURL string)
	WindowClosed        func(id uint32)
	WindowResized       func(id uint32, w, h int)
	WindowMoved         func(id uint32, x, y int)
	FocusChanged        func(id uint32, focused bool)
	TitleChanged        func(id uint32, title string)
	ReloadTriggered     func(id uint32)
	CookiesReady        func(id uint32, cookiesJSON string)
}

// Platform is the capability set from spec.md §4.1. Every method targets
// one window by id and is expected to run on, or be safely callable from,
// the UI thread the caller (windowmgr.Pump) confines itself to.
// Operations against a destroyed window id are dropped silently.
type Platform interface {
	// Init registers the callback set. Called once, before any window
	// is created.
	Init(cb Callbacks) error

	Create(id uint32, spec WindowSpec) error
	LoadURL(id uint32, url string) error
	LoadHTML(id uint32, html string) error
	EvaluateScript(id uint32, source string)
	PostMessage(id uint32, text string)
	InstallDocumentStartScript(id uint32, source string)

	SetTitle(id uint32, title string)
	SetSize(id uint32, w, h int)
	SetMinSize(id uint32, w, h int)
	SetMaxSize(id uint32, w, h int)
	SetPosition(id uint32, x, y int)
	SetResizable(id uint32, v bool)
	SetDecorations(id uint32, v bool)
	SetAlwaysOnTop(id uint32, v bool)
	SetIcon(id uint32, path string)

	Show(id uint32)
	Hide(id uint32)
	Close(id uint32)
	Focus(id uint32)
	Maximize(id uint32)
	Minimize(id uint32)
	Unmaximize(id uint32)
	Reload(id uint32)

	// GetCookies requests cookies asynchronously; the result arrives via
	// Callbacks.CookiesReady. A nil url requests every cookie visible to
	// the window's store.
	GetCookies(id uint32, url *string)

	// PumpNativeEvents runs one non-blocking iteration of the OS event
	// loop so queued engine callbacks fire (spec.md §4.2 step 3).
	PumpNativeEvents()
}
