//go:build windows

package platform

/*
#cgo LDFLAGS: -lole32 -loleaut32 -luser32 -lgdi32
#include <stdlib.h>

typedef unsigned int nw_window_id;

int  nw_init(void);
nw_window_id nw_create_window(const char* title, int width, int height,
	int has_pos, int x, int y, int resizable, int decorations,
	int transparent, int always_on_top, int visible, int devtools);
void nw_load_url(nw_window_id id, const char* url);
void nw_load_html(nw_window_id id, const char* html, const char* base_url);
void nw_evaluate_script(nw_window_id id, const char* source);
void nw_install_document_start_script(nw_window_id id, const char* source);
void nw_set_title(nw_window_id id, const char* title);
void nw_set_size(nw_window_id id, int w, int h);
void nw_set_min_size(nw_window_id id, int w, int h);
void nw_set_max_size(nw_window_id id, int w, int h);
void nw_set_position(nw_window_id id, int x, int y);
void nw_set_resizable(nw_window_id id, int v);
void nw_set_decorations(nw_window_id id, int v);
void nw_set_always_on_top(nw_window_id id, int v);
void nw_set_icon(nw_window_id id, const char* path);
void nw_show(nw_window_id id);
void nw_hide(nw_window_id id);
void nw_close(nw_window_id id);
void nw_focus(nw_window_id id);
void nw_maximize(nw_window_id id);
void nw_minimize(nw_window_id id);
void nw_unmaximize(nw_window_id id);
void nw_reload(nw_window_id id);
void nw_get_cookies(nw_window_id id, const char* url);
void nw_pump_native_events(void);

extern void goOnWindowMessage(nw_window_id id, char* text, char* sourceURL);
extern int  goOnNavigationRequested(nw_window_id id, char* url);
extern void goOnPageLoadingStarted(nw_window_id id, char* url);
extern void goOnPageLoadingFinished(nw_window_id id, char* url);
extern void goOnWindowClosed(nw_window_id id);
extern void goOnWindowResized(nw_window_id id, int w, int h);
extern void goOnWindowMoved(nw_window_id id, int x, int y);
extern void goOnFocusChanged(nw_window_id id, int focused);
extern void goOnTitleChanged(nw_window_id id, char* title);
extern void goOnReloadTriggered(nw_window_id id);
extern void goOnCookiesReady(nw_window_id id, char* json);
*/
import "C"

import (
	"errors"
	"sync"
	"unsafe"

	"github.com/rs/zerolog"

	"github.com/nwkit/nativewindow/internal/bridge"
	"github.com/nwkit/nativewindow/internal/logging"
)

// synthetic base URL for LoadHTML content, shared with the darwin backend
// (SPEC_FULL.md §4).
const loadHTMLBaseURLWindows = "https://nativewindow.local/"

// WebView2 is the Windows backend: a raw Win32 window (CreateWindowExW,
// via platform_windows.c) with WebView2 COM calls, translated from
// original_source/platform/windows.rs's windows-rs bindings into direct
// C/COM calls, following the same cgo-preamble-plus-exported-callback
// idiom as the darwin backend rather than the teacher's GTK preamble.
// platform_windows.c does not create the WebView2 environment or
// controller, so no CoreWebView2 is attached to the window: LoadURL,
// LoadHTML, EvaluateScript, PostMessage, InstallDocumentStartScript and
// Reload return without effect, and GetCookies reports an empty list.
type WebView2 struct {
	mu  sync.Mutex
	cb  Callbacks
	log zerolog.Logger
}

var _ Platform = (*WebView2)(nil)

func newBackend() Platform {
	return &WebView2{log: logging.NewFromEnv().With().Str("component", "platform.windows").Logger()}
}

func (p *WebView2) Init(cb Callbacks) error {
	p.mu.Lock()
	p.cb = cb
	p.mu.Unlock()
	registerCallbacks(p)
	if C.nw_init() == 0 {
		return errors.New("platform: windows backend initialization failed")
	}
	return nil
}

func (p *WebView2) Create(id uint32, spec WindowSpec) error {
	title := C.CString(spec.Title)
	defer C.free(unsafe.Pointer(title))

	hasPos, x, y := 0, 0, 0
	if spec.X != nil && spec.Y != nil {
		hasPos, x, y = 1, *spec.X, *spec.Y
	}

	got := C.nw_create_window(title, C.int(spec.Width), C.int(spec.Height),
		C.int(hasPos), C.int(x), C.int(y),
		boolToInt(spec.Resizable), boolToInt(spec.Decorations),
		boolToInt(spec.Transparent), boolToInt(spec.AlwaysOnTop),
		boolToInt(spec.Visible), boolToInt(spec.DevTools))
	if uint32(got) != id {
		return errors.New("platform: windows backend window id mismatch")
	}
	return nil
}

func (p *WebView2) LoadURL(id uint32, url string) error {
	cs := C.CString(url)
	defer C.free(unsafe.Pointer(cs))
	C.nw_load_url(C.nw_window_id(id), cs)
	return nil
}

func (p *WebView2) LoadHTML(id uint32, html string) error {
	ch := C.CString(html)
	defer C.free(unsafe.Pointer(ch))
	base := C.CString(loadHTMLBaseURLWindows)
	defer C.free(unsafe.Pointer(base))
	C.nw_load_html(C.nw_window_id(id), ch, base)
	return nil
}

func (p *WebView2) EvaluateScript(id uint32, source string) {
	cs := C.CString(source)
	defer C.free(unsafe.Pointer(cs))
	C.nw_evaluate_script(C.nw_window_id(id), cs)
}

func (p *WebView2) PostMessage(id uint32, text string) {
	escaped := bridge.EscapeJSString(text)
	p.EvaluateScript(id, `window.__native_message__ && window.__native_message__("`+escaped+`");`)
}

func (p *WebView2) InstallDocumentStartScript(id uint32, source string) {
	cs := C.CString(source)
	defer C.free(unsafe.Pointer(cs))
	C.nw_install_document_start_script(C.nw_window_id(id), cs)
}

func (p *WebView2) SetTitle(id uint32, title string) {
	cs := C.CString(title)
	defer C.free(unsafe.Pointer(cs))
	C.nw_set_title(C.nw_window_id(id), cs)
}

func (p *WebView2) SetSize(id uint32, w, h int) { C.nw_set_size(C.nw_window_id(id), C.int(w), C.int(h)) }
func (p *WebView2) SetMinSize(id uint32, w, h int) {
	C.nw_set_min_size(C.nw_window_id(id), C.int(w), C.int(h))
}
func (p *WebView2) SetMaxSize(id uint32, w, h int) {
	C.nw_set_max_size(C.nw_window_id(id), C.int(w), C.int(h))
}
func (p *WebView2) SetPosition(id uint32, x, y int) {
	C.nw_set_position(C.nw_window_id(id), C.int(x), C.int(y))
}
func (p *WebView2) SetResizable(id uint32, v bool) {
	C.nw_set_resizable(C.nw_window_id(id), boolToInt(v))
}
func (p *WebView2) SetDecorations(id uint32, v bool) {
	C.nw_set_decorations(C.nw_window_id(id), boolToInt(v))
}
func (p *WebView2) SetAlwaysOnTop(id uint32, v bool) {
	C.nw_set_always_on_top(C.nw_window_id(id), boolToInt(v))
}

// SetIcon loads an .ico file and applies it as both the small and large
// window icon via WM_SETICON, matching original_source/window.rs's
// Windows set_icon behavior (SPEC_FULL.md §4) — unlike macOS, this is a
// genuine per-window operation.
func (p *WebView2) SetIcon(id uint32, path string) {
	cs := C.CString(path)
	defer C.free(unsafe.Pointer(cs))
	C.nw_set_icon(C.nw_window_id(id), cs)
}

func (p *WebView2) Show(id uint32)       { C.nw_show(C.nw_window_id(id)) }
func (p *WebView2) Hide(id uint32)       { C.nw_hide(C.nw_window_id(id)) }
func (p *WebView2) Close(id uint32)      { C.nw_close(C.nw_window_id(id)) }
func (p *WebView2) Focus(id uint32)      { C.nw_focus(C.nw_window_id(id)) }
func (p *WebView2) Maximize(id uint32)   { C.nw_maximize(C.nw_window_id(id)) }
func (p *WebView2) Minimize(id uint32)   { C.nw_minimize(C.nw_window_id(id)) }
func (p *WebView2) Unmaximize(id uint32) { C.nw_unmaximize(C.nw_window_id(id)) }
func (p *WebView2) Reload(id uint32)     { C.nw_reload(C.nw_window_id(id)) }

func (p *WebView2) GetCookies(id uint32, url *string) {
	var cs *C.char
	if url != nil {
		cs = C.CString(*url)
		defer C.free(unsafe.Pointer(cs))
	}
	C.nw_get_cookies(C.nw_window_id(id), cs)
}

func (p *WebView2) PumpNativeEvents() { C.nw_pump_native_events() }
