// Package platformtest provides a gomock-based test double for
// platform.Platform, hand-written in the shape mockgen would generate
// (mockgen itself needs the Go toolchain, which this tree cannot
// invoke). Grounded on the teacher's use of go.uber.org/mock/gomock in
// tests/contract/browser_controls_test.go, generalized from a database
// querier interface to the window-manager's platform capability.
package platformtest

import (
	"reflect"

	"go.uber.org/mock/gomock"

	"github.com/nwkit/nativewindow/internal/platform"
)

// MockPlatform is a mock of the platform.Platform interface.
type MockPlatform struct {
	ctrl     *gomock.Controller
	recorder *MockPlatformMockRecorder
}

// MockPlatformMockRecorder is the mock recorder for MockPlatform.
type MockPlatformMockRecorder struct {
	mock *MockPlatform
}

// NewMockPlatform creates a new mock instance.
func NewMockPlatform(ctrl *gomock.Controller) *MockPlatform {
	mock := &MockPlatform{ctrl: ctrl}
	mock.recorder = &MockPlatformMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPlatform) EXPECT() *MockPlatformMockRecorder {
	return m.recorder
}

func (m *MockPlatform) Init(cb platform.Callbacks) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Init", cb)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockPlatformMockRecorder) Init(cb any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Init", reflect.TypeOf((*MockPlatform)(nil).Init), cb)
}

func (m *MockPlatform) Create(id uint32, spec platform.WindowSpec) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", id, spec)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockPlatformMockRecorder) Create(id, spec any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockPlatform)(nil).Create), id, spec)
}

func (m *MockPlatform) LoadURL(id uint32, url string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LoadURL", id, url)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockPlatformMockRecorder) LoadURL(id, url any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LoadURL", reflect.TypeOf((*MockPlatform)(nil).LoadURL), id, url)
}

func (m *MockPlatform) LoadHTML(id uint32, html string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LoadHTML", id, html)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockPlatformMockRecorder) LoadHTML(id, html any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LoadHTML", reflect.TypeOf((*MockPlatform)(nil).LoadHTML), id, html)
}

func (m *MockPlatform) EvaluateScript(id uint32, source string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "EvaluateScript", id, source)
}

func (mr *MockPlatformMockRecorder) EvaluateScript(id, source any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EvaluateScript", reflect.TypeOf((*MockPlatform)(nil).EvaluateScript), id, source)
}

func (m *MockPlatform) PostMessage(id uint32, text string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "PostMessage", id, text)
}

func (mr *MockPlatformMockRecorder) PostMessage(id, text any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PostMessage", reflect.TypeOf((*MockPlatform)(nil).PostMessage), id, text)
}

func (m *MockPlatform) InstallDocumentStartScript(id uint32, source string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "InstallDocumentStartScript", id, source)
}

func (mr *MockPlatformMockRecorder) InstallDocumentStartScript(id, source any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InstallDocumentStartScript", reflect.TypeOf((*MockPlatform)(nil).InstallDocumentStartScript), id, source)
}

func (m *MockPlatform) SetTitle(id uint32, title string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetTitle", id, title)
}

func (mr *MockPlatformMockRecorder) SetTitle(id, title any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetTitle", reflect.TypeOf((*MockPlatform)(nil).SetTitle), id, title)
}

func (m *MockPlatform) SetSize(id uint32, w, h int) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetSize", id, w, h)
}

func (mr *MockPlatformMockRecorder) SetSize(id, w, h any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetSize", reflect.TypeOf((*MockPlatform)(nil).SetSize), id, w, h)
}

func (m *MockPlatform) SetMinSize(id uint32, w, h int) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetMinSize", id, w, h)
}

func (mr *MockPlatformMockRecorder) SetMinSize(id, w, h any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetMinSize", reflect.TypeOf((*MockPlatform)(nil).SetMinSize), id, w, h)
}

func (m *MockPlatform) SetMaxSize(id uint32, w, h int) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetMaxSize", id, w, h)
}

func (mr *MockPlatformMockRecorder) SetMaxSize(id, w, h any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetMaxSize", reflect.TypeOf((*MockPlatform)(nil).SetMaxSize), id, w, h)
}

func (m *MockPlatform) SetPosition(id uint32, x, y int) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetPosition", id, x, y)
}

func (mr *MockPlatformMockRecorder) SetPosition(id, x, y any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetPosition", reflect.TypeOf((*MockPlatform)(nil).SetPosition), id, x, y)
}

func (m *MockPlatform) SetResizable(id uint32, v bool) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetResizable", id, v)
}

func (mr *MockPlatformMockRecorder) SetResizable(id, v any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetResizable", reflect.TypeOf((*MockPlatform)(nil).SetResizable), id, v)
}

func (m *MockPlatform) SetDecorations(id uint32, v bool) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetDecorations", id, v)
}

func (mr *MockPlatformMockRecorder) SetDecorations(id, v any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetDecorations", reflect.TypeOf((*MockPlatform)(nil).SetDecorations), id, v)
}

func (m *MockPlatform) SetAlwaysOnTop(id uint32, v bool) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetAlwaysOnTop", id, v)
}

func (mr *MockPlatformMockRecorder) SetAlwaysOnTop(id, v any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetAlwaysOnTop", reflect.TypeOf((*MockPlatform)(nil).SetAlwaysOnTop), id, v)
}

func (m *MockPlatform) SetIcon(id uint32, path string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetIcon", id, path)
}

func (mr *MockPlatformMockRecorder) SetIcon(id, path any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetIcon", reflect.TypeOf((*MockPlatform)(nil).SetIcon), id, path)
}

func (m *MockPlatform) Show(id uint32) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Show", id)
}

func (mr *MockPlatformMockRecorder) Show(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Show", reflect.TypeOf((*MockPlatform)(nil).Show), id)
}

func (m *MockPlatform) Hide(id uint32) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Hide", id)
}

func (mr *MockPlatformMockRecorder) Hide(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Hide", reflect.TypeOf((*MockPlatform)(nil).Hide), id)
}

func (m *MockPlatform) Close(id uint32) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Close", id)
}

func (mr *MockPlatformMockRecorder) Close(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Close", reflect.TypeOf((*MockPlatform)(nil).Close), id)
}

func (m *MockPlatform) Focus(id uint32) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Focus", id)
}

func (mr *MockPlatformMockRecorder) Focus(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Focus", reflect.TypeOf((*MockPlatform)(nil).Focus), id)
}

func (m *MockPlatform) Maximize(id uint32) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Maximize", id)
}

func (mr *MockPlatformMockRecorder) Maximize(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Maximize", reflect.TypeOf((*MockPlatform)(nil).Maximize), id)
}

func (m *MockPlatform) Minimize(id uint32) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Minimize", id)
}

func (mr *MockPlatformMockRecorder) Minimize(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Minimize", reflect.TypeOf((*MockPlatform)(nil).Minimize), id)
}

func (m *MockPlatform) Unmaximize(id uint32) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Unmaximize", id)
}

func (mr *MockPlatformMockRecorder) Unmaximize(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Unmaximize", reflect.TypeOf((*MockPlatform)(nil).Unmaximize), id)
}

func (m *MockPlatform) Reload(id uint32) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Reload", id)
}

func (mr *MockPlatformMockRecorder) Reload(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Reload", reflect.TypeOf((*MockPlatform)(nil).Reload), id)
}

func (m *MockPlatform) GetCookies(id uint32, url *string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "GetCookies", id, url)
}

func (mr *MockPlatformMockRecorder) GetCookies(id, url any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCookies", reflect.TypeOf((*MockPlatform)(nil).GetCookies), id, url)
}

func (m *MockPlatform) PumpNativeEvents() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "PumpNativeEvents")
}

func (mr *MockPlatformMockRecorder) PumpNativeEvents() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PumpNativeEvents", reflect.TypeOf((*MockPlatform)(nil).PumpNativeEvents))
}

var _ platform.Platform = (*MockPlatform)(nil)
