package nativewindow

import "github.com/nwkit/nativewindow/internal/windowmgr"

// UnsafeWindow groups the operations spec.md §4.3 keeps off Window's main
// surface: arbitrary script evaluation bypasses every schema and origin
// guarantee the typed channel provides, so it is reachable only through
// this explicitly named accessor rather than a top-level method.
type UnsafeWindow struct {
	w *Window
}

// EvaluateScript runs source in the page's top-level JavaScript context
// and discards any result. The closed flag is rechecked on every call, so
// an UnsafeWindow obtained before Close becomes inert rather than acting
// on a since-recycled window id.
func (u UnsafeWindow) EvaluateScript(source string) error {
	return u.w.push(windowmgr.Command{Kind: windowmgr.EvaluateScript, Script: source})
}
