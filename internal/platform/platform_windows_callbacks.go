//go:build windows

package platform

/*
typedef unsigned int nw_window_id;
*/
import "C"

import "sync"

// registeredCbs mirrors the darwin backend's approach: cgo export
// functions are package-level, and the window manager owns exactly one
// Platform instance per process.
var (
	registeredMu  sync.RWMutex
	registeredCbs Callbacks
)

func registerCallbacks(p *WebView2) {
	registeredMu.Lock()
	registeredCbs = p.cb
	registeredMu.Unlock()
}

func callbacks() Callbacks {
	registeredMu.RLock()
	defer registeredMu.RUnlock()
	return registeredCbs
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
	if cb := callbacks().CookiesReady; cb != nil {
		cb(uint32(id), C.GoString(json))
	}
}
