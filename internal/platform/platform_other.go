//go:build !darwin && !windows

package platform

import "fmt"

// unsupported is the stub backend for platforms without a native adapter,
// following the teacher's cgo/stub split idiom (pkg/webkit/build_flags_stub.go)
// generalized from "no libwebkitgtk" to "no native-window backend".
type unsupported struct{}

var _ Platform = (*unsupported)(nil)

func newBackend() Platform { return &unsupported{} }

func errUnsupported() error {
	return fmt.Errorf("platform: no native window backend is available on this operating system")
}

func (u *unsupported) Init(cb Callbacks) error                       { return errUnsupported() }
func (u *unsupported) Create(id uint32, spec WindowSpec) error       { return errUnsupported() }
func (u *unsupported) LoadURL(id uint32, url string) error           { return errUnsupported() }
func (u *unsupported) LoadHTML(id uint32, html string) error         { return errUnsupported() }
func (u *unsupported) EvaluateScript(id uint32, source string)       {}
func (u *unsupported) PostMessage(id uint32, text string)            {}
func (u *unsupported) InstallDocumentStartScript(id uint32, s string) {}
func (u *unsupported) SetTitle(id uint32, title string)              {}
func (u *unsupported) SetSize(id uint32, w, h int)                   {}
func (u *unsupported) SetMinSize(id uint32, w, h int)                {}
func (u *unsupported) SetMaxSize(id uint32, w, h int)                {}
func (u *unsupported) SetPosition(id uint32, x, y int)               {}
func (u *unsupported) SetResizable(id uint32, v bool)                {}
func (u *unsupported) SetDecorations(id uint32, v bool)              {}
func (u *unsupported) SetAlwaysOnTop(id uint32, v bool)              {}
func (u *unsupported) SetIcon(id uint32, path string)                {}
func (u *unsupported) Show(id uint32)                                {}
func (u *unsupported) Hide(id uint32)                                {}
func (u *unsupported) Close(id uint32)                               {}
func (u *unsupported) Focus(id uint32)                               {}
func (u *unsupported) Maximize(id uint32)                            {}
func (u *unsupported) Minimize(id uint32)                            {}
func (u *unsupported) Unmaximize(id uint32)                          {}
func (u *unsupported) Reload(id uint32)                              {}
func (u *unsupported) GetCookies(id uint32, url *string)             {}
func (u *unsupported) PumpNativeEvents()                             {}
