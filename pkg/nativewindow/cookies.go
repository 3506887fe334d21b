package nativewindow

import (
	"encoding/json"
	"fmt"

	"github.com/nwkit/nativewindow/internal/platform"
	"github.com/nwkit/nativewindow/internal/windowmgr"
)

// CookieInfo is the decoded record from spec.md §6; Expires is -1 for
// session cookies.
type CookieInfo = platform.CookieInfo

// GetCookies requests every cookie visible to the window (or scoped to
// url, if non-nil) and returns a channel that receives exactly one result
// once the next onCookies delivery arrives, per spec.md §4.3's future
// contract. The channel is closed after sending. If the window closes
// while the request is outstanding, the result carries ErrWindowClosed.
func (w *Window) GetCookies(url *string) (<-chan CookiesResult, error) {
	if err := w.checkOpen(); err != nil {
		return nil, err
	}

	ch := make(chan cookieFutureResult, 1)
	w.handlersMu.Lock()
	w.pendingCookies = append(w.pendingCookies, ch)
	w.handlersMu.Unlock()

	w.mgr.Push(windowmgr.Command{Kind: windowmgr.GetCookies, ID: w.id, CookieURL: url})

	out := make(chan CookiesResult, 1)
	go func() {
		r := <-ch
		out <- CookiesResult{Cookies: r.cookies, Err: r.err}
		close(out)
	}()
	return out, nil
}

// CookiesResult is the resolved value of a GetCookies future.
type CookiesResult struct {
	Cookies []CookieInfo
	Err     error
}

func decodeCookiesJSON(raw string) ([]CookieInfo, error) {
	var cookies []CookieInfo
	if err := json.Unmarshal([]byte(raw), &cookies); err != nil {
		return nil, fmt.Errorf("nativewindow: parsing cookies payload: %w", err)
	}
	return cookies, nil
}
