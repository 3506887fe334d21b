//go:build darwin

package platform

/*
#cgo LDFLAGS: -framework Cocoa -framework WebKit
#include <stdlib.h>

typedef unsigned int nw_window_id;

void nw_init(void);
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

// synthetic base URL for load_html content, fixed rather than
// per-platform, per SPEC_FULL.md §4's resolution of spec.md §9's open
// question.
const loadHTMLBaseURL = "https://nativewindow.local/"

// Cocoa is the macOS backend: NSWindow + WKWebView driven from Go via
// cgo, message-send calls into the ObjC runtime, and a bridged
// WKScriptMessageHandler for incoming postMessage traffic. The C helper
// functions declared above are implemented in platform_darwin.m,
// following the teacher's #cgo-preamble-plus-exported-callback idiom
// from pkg/webkit/webview_cgo.go, generalized from GTK/WebKitGTK to
// Cocoa/WebKit.
type Cocoa struct {
	mu  sync.Mutex
	cb  Callbacks
	log zerolog.Logger
}

var _ Platform = (*Cocoa)(nil)

func newBackend() Platform {
	return &Cocoa{log: logging.NewFromEnv().With().Str("component", "platform.darwin").Logger()}
}

func (p *Cocoa) Init(cb Callbacks) error {
	p.mu.Lock()
	p.cb = cb
	p.mu.Unlock()
	registerCallbacks(p)
	C.nw_init()
	return nil
}

func (p *Cocoa) Create(id uint32, spec WindowSpec) error {
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
		return errors.New("platform: darwin backend window id mismatch")
	}
	return nil
}

func (p *Cocoa) LoadURL(id uint32, url string) error {
	cs := C.CString(url)
	defer C.free(unsafe.Pointer(cs))
	C.nw_load_url(C.nw_window_id(id), cs)
	return nil
}

func (p *Cocoa) LoadHTML(id uint32, html string) error {
	ch := C.CString(html)
	defer C.free(unsafe.Pointer(ch))
	base := C.CString(loadHTMLBaseURL)
	defer C.free(unsafe.Pointer(base))
	C.nw_load_html(C.nw_window_id(id), ch, base)
	return nil
}

func (p *Cocoa) EvaluateScript(id uint32, source string) {
	cs := C.CString(source)
	defer C.free(unsafe.Pointer(cs))
	C.nw_evaluate_script(C.nw_window_id(id), cs)
}

func (p *Cocoa) PostMessage(id uint32, text string) {
	// __native_message__ is installed by the document-start script;
	// evaluate_js is the only delivery mechanism, per spec.md §9's
	// "fire-and-forget script evaluation" note. bridge.EscapeJSString
	// mirrors original_source's json_escape-then-splice approach.
	escaped := bridge.EscapeJSString(text)
	p.EvaluateScript(id, `window.__native_message__ && window.__native_message__("`+escaped+`");`)
}

func (p *Cocoa) InstallDocumentStartScript(id uint32, source string) {
	cs := C.CString(source)
	defer C.free(unsafe.Pointer(cs))
	C.nw_install_document_start_script(C.nw_window_id(id), cs)
}

func (p *Cocoa) SetTitle(id uint32, title string) {
	cs := C.CString(title)
	defer C.free(unsafe.Pointer(cs))
	C.nw_set_title(C.nw_window_id(id), cs)
}

func (p *Cocoa) SetSize(id uint32, w, h int)    { C.nw_set_size(C.nw_window_id(id), C.int(w), C.int(h)) }
func (p *Cocoa) SetMinSize(id uint32, w, h int) { C.nw_set_min_size(C.nw_window_id(id), C.int(w), C.int(h)) }
func (p *Cocoa) SetMaxSize(id uint32, w, h int) { C.nw_set_max_size(C.nw_window_id(id), C.int(w), C.int(h)) }
func (p *Cocoa) SetPosition(id uint32, x, y int) {
	C.nw_set_position(C.nw_window_id(id), C.int(x), C.int(y))
}
func (p *Cocoa) SetResizable(id uint32, v bool)   { C.nw_set_resizable(C.nw_window_id(id), boolToInt(v)) }
func (p *Cocoa) SetDecorations(id uint32, v bool) { C.nw_set_decorations(C.nw_window_id(id), boolToInt(v)) }
func (p *Cocoa) SetAlwaysOnTop(id uint32, v bool) {
	C.nw_set_always_on_top(C.nw_window_id(id), boolToInt(v))
}

// SetIcon is a no-op on macOS: app icons are set at the bundle level, not
// per-window, matching original_source/window.rs's set_icon doc comment
// (SPEC_FULL.md §4).
func (p *Cocoa) SetIcon(id uint32, path string) {}

func (p *Cocoa) Show(id uint32)       { C.nw_show(C.nw_window_id(id)) }
func (p *Cocoa) Hide(id uint32)       { C.nw_hide(C.nw_window_id(id)) }
func (p *Cocoa) Close(id uint32)      { C.nw_close(C.nw_window_id(id)) }
func (p *Cocoa) Focus(id uint32)      { C.nw_focus(C.nw_window_id(id)) }
func (p *Cocoa) Maximize(id uint32)   { C.nw_maximize(C.nw_window_id(id)) }
func (p *Cocoa) Minimize(id uint32)   { C.nw_minimize(C.nw_window_id(id)) }
func (p *Cocoa) Unmaximize(id uint32) { C.nw_unmaximize(C.nw_window_id(id)) }
func (p *Cocoa) Reload(id uint32)     { C.nw_reload(C.nw_window_id(id)) }

// GetCookies asks WKHTTPCookieStore for every cookie visible to the
// window; getAllCookies has no URL-scoped variant, so the requested
// scope is remembered here and applied to the result in
// goOnCookiesReady via FilterCookiesJSONByURL before it reaches
// Callbacks.CookiesReady (spec.md §4.1's cookie-access fallback rule).
func (p *Cocoa) GetCookies(id uint32, url *string) {
	setPendingCookieURL(id, url)

	var cs *C.char
	if url != nil {
		cs = C.CString(*url)
		defer C.free(unsafe.Pointer(cs))
	}
	C.nw_get_cookies(C.nw_window_id(id), cs)
}

func (p *Cocoa) PumpNativeEvents() { C.nw_pump_native_events() }

func boolToInt(v bool) C.int {
	if v {
		return 1
	}
	return 0
}
