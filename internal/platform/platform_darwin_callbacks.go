//go:build darwin

package platform

/*
typedef unsigned int nw_window_id;
*/
import "C"

import "sync"

// registeredCbs holds the single Cocoa backend's callback set, guarded by
// registeredMu. cgo's //export functions must be package-level, not
// methods, and the window manager owns exactly one Platform instance per
// process (spec.md §9's single-owner model), so a package-level value is
// sufficient
// rather than a per-window registry.
var (
	registeredMu  sync.RWMutex
	registeredCbs Callbacks
)

func registerCallbacks(p *Cocoa) {
	registeredMu.Lock()
	registeredCbs = p.cb
	registeredMu.Unlock()
}

func callbacks() Callbacks {
	registeredMu.RLock()
	defer registeredMu.RUnlock()
	return registeredCbs
}

// pendingCookieURLs remembers the url argument each in-flight GetCookies
// call was scoped to, keyed by window id, since WKHTTPCookieStore's
// getAllCookies has no per-request handle to thread it through to the
// completion callback (spec.md §4.1: engines whose API returns every
// cookie must be filtered by the adapter after the fact).
var (
	pendingCookiesMu  sync.Mutex
	pendingCookieURLs = map[uint32]string{}
)

func setPendingCookieURL(id uint32, url *string) {
	pendingCookiesMu.Lock()
	defer pendingCookiesMu.Unlock()
	if url == nil {
		delete(pendingCookieURLs, id)
		return
	}
	pendingCookieURLs[id] = *url
}

func takePendingCookieURL(id uint32) string {
	pendingCookiesMu.Lock()
	defer pendingCookiesMu.Unlock()
	url := pendingCookieURLs[id]
	delete(pendingCookieURLs, id)
	return url
}

//export goOnWindowMessage
func goOnWindowMessage(id C.nw_window_id, text *C.char, sourceURL *C.char) {
	if cb := callbacks().WindowMessage; cb != nil {
		cb(uint32(id), C.GoString(text), C.GoString(sourceURL))
	}
}

//export goOnNavigationRequested
func goOnNavigationRequested(id C.nw_window_id, url *C.char) C.int {
	cb := callbacks().NavigationRequested
	if cb == nil {
		return 1
	}
	if cb(uint32(id), C.GoString(url)) {
		return 1
	}
	return 0
}

//export goOnPageLoadingStarted
func goOnPageLoadingStarted(id C.nw_window_id, url *C.char) {
	if cb := callbacks().PageLoadingStarted; cb != nil {
		cb(uint32(id), C.GoString(url))
	}
}

//export goOnPageLoadingFinished
func goOnPageLoadingFinished(id C.nw_window_id, url *C.char) {
	if cb := callbacks().PageLoadingFinished; cb != nil {
		cb(uint32(id), C.GoString(url))
	}
}

//export goOnWindowClosed
func goOnWindowClosed(id C.nw_window_id) {
	if cb := callbacks().WindowClosed; cb != nil {
		cb(uint32(id))
	}
}

//export goOnWindowResized
func goOnWindowResized(id C.nw_window_id, w C.int, h C.int) {
	if cb := callbacks().WindowResized; cb != nil {
		cb(uint32(id), int(w), int(h))
	}
}

//export goOnWindowMoved
func goOnWindowMoved(id C.nw_window_id, x C.int, y C.int) {
	if cb := callbacks().WindowMoved; cb != nil {
		cb(uint32(id), int(x), int(y))
	}
}

//export goOnFocusChanged
func goOnFocusChanged(id C.nw_window_id, focused C.int) {
	if cb := callbacks().FocusChanged; cb != nil {
		cb(uint32(id), focused != 0)
	}
}

//export goOnTitleChanged
func goOnTitleChanged(id C.nw_window_id, title *C.char) {
	if cb := callbacks().TitleChanged; cb != nil {
		cb(uint32(id), C.GoString(title))
	}
}

//export goOnReloadTriggered
func goOnReloadTriggered(id C.nw_window_id) {
	if cb := callbacks().ReloadTriggered; cb != nil {
		cb(uint32(id))
	}
}

//export goOnCookiesReady
func goOnCookiesReady(id C.nw_window_id, json *C.char) {
	cb := callbacks().CookiesReady
	if cb == nil {
		return
	}
	windowID := uint32(id)
	raw := C.GoString(json)
	scopeURL := takePendingCookieURL(windowID)
	if scopeURL == "" {
		cb(windowID, raw)
		return
	}
	cb(windowID, FilterCookiesJSONByURL(raw, scopeURL))
}
