// Package windowmgr owns the process-wide window registry and the
// command queue/event pump described in spec.md §4.2, generalized from
// original_source/window_manager.rs's Command enum and lib.rs's
// pump_events three-phase loop.
package windowmgr

import "github.com/nwkit/nativewindow/internal/platform"

// Kind tags a Command's variant.
type Kind int

const (
	CreateWindow Kind = iota
	LoadURL
	LoadHTML
	EvaluateScript
	InstallDocumentStartScript
	PostMessage
	SetTitle
	SetSize
	SetMinSize
	SetMaxSize
	SetPosition
	SetResizable
	SetDecorations
	SetAlwaysOnTop
	SetIcon
	Show
	Hide
	Close
	Focus
	Maximize
	Minimize
	Unmaximize
	Reload
	GetCookies
)

// Size is a width/height pair used by SetSize/SetMinSize/SetMaxSize.
type Size struct{ Width, Height int }

// Position is an x/y pair used by SetPosition.
type Position struct{ X, Y int }

// Command is a tagged variant describing one intent against one window
// (spec.md §3's Command data model). It carries only value data — never
// a reference to a host callback, so the queue itself stays free of
// closures capturing arbitrary host state.
type Command struct {
	Kind Kind
	ID   uint32

	Spec      platform.WindowSpec // used only by CreateWindow
	URL       string
	HTML      string
	Script    string
	Text      string
	Title     string
	Size      Size
	Pos       Position
	Bool      bool
	Path      string
	CookieURL *string // nil means "all cookies for this window"
}
