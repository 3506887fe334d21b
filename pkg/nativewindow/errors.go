package nativewindow

import "errors"

// Error kinds from spec.md §7: fatal-at-creation and closed-window
// errors surface through these sentinels. Adapter-command errors (kind
// 3) are logged internally by internal/windowmgr's pump and never
// returned here; validation and security rejections are silent by
// design.
var (
	ErrNotInitialized   = errors.New("nativewindow: Init has not been called")
	ErrWindowClosed     = errors.New("nativewindow: window is closed")
	ErrWindowNotFound   = errors.New("nativewindow: window not found")
	ErrSchemaUnknown    = errors.New("nativewindow: unknown schema type")
	ErrSchemeNotAllowed = errors.New("nativewindow: URL scheme not allowed for LoadURL")
)
