package windowmgr

import "github.com/nwkit/nativewindow/internal/platform"

// Callbacks builds the platform.Callbacks set that routes every native
// engine event to the target window's registered EventHandlers, applying
// the navigation-gating policy from spec.md §4.1 before allowing a
// navigation to proceed. This is the single place native callbacks cross
// from the platform adapter into per-window host handlers; a window
// closed in the interim is simply not found in the registry and the
// event is dropped, per spec.md §4.2's "no callbacks after close"
// invariant.
func (m *Manager) Callbacks() platform.Callbacks {
	return platform.Callbacks{
		PageLoadingStarted: func(id uint32, url string) {
			if h := m.Handlers(id).OnPageLoad; h != nil {
				h(true, url)
			}
		},
		PageLoadingFinished: func(id uint32, url string) {
			if h := m.Handlers(id).OnPageLoad; h != nil {
				h(false, url)
			}
		},
		NavigationRequested: func(id uint32, url string) bool {
			if platform.NavigationAllowed(url, m.allowedHosts(id)) {
				return true
			}
			if h := m.Handlers(id).OnNavigationBlocked; h != nil {
				h(url)
			}
			return false
		},
		WindowMessage: func(id uint32, text, sourceURL string) {
			if h := m.Handlers(id).OnMessage; h != nil {
				h(text, sourceURL)
			}
		},
		WindowClosed: func(id uint32) {
			if !m.MarkClosed(id) {
				return
			}
			h := m.Handlers(id).OnClose
			m.RemoveEntry(id)
			if h != nil {
				h()
			}
		},
		WindowResized: func(id uint32, w, h int) {
			if cb := m.Handlers(id).OnResize; cb != nil {
				cb(w, h)
			}
		},
		WindowMoved: func(id uint32, x, y int) {
			if cb := m.Handlers(id).OnMove; cb != nil {
				cb(x, y)
			}
		},
		FocusChanged: func(id uint32, focused bool) {
			handlers := m.Handlers(id)
			if focused {
				if handlers.OnFocus != nil {
					handlers.OnFocus()
				}
				return
			}
			if handlers.OnBlur != nil {
				handlers.OnBlur()
			}
		},
		TitleChanged: func(id uint32, title string) {
			if h := m.Handlers(id).OnTitleChanged; h != nil {
				h(title)
			}
		},
		ReloadTriggered: func(id uint32) {
			if h := m.Handlers(id).OnReload; h != nil {
				h()
			}
		},
		CookiesReady: func(id uint32, cookiesJSON string) {
			if h := m.Handlers(id).OnCookies; h != nil {
				h(cookiesJSON)
			}
		},
	}
}
