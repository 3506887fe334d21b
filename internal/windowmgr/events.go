package windowmgr

// EventHandlers is the per-window record of optional callbacks (spec.md
// §3), grounded on original_source/events.rs's WindowEventHandlers.
// Ownership: the record is owned by the NativeWindow façade and mutated
// only on the host thread; the pump only reads it while dispatching.
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
