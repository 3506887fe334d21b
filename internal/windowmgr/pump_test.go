package windowmgr

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/nwkit/nativewindow/internal/platform"
	"github.com/nwkit/nativewindow/internal/platform/platformtest"
)

func TestPumpTickAppliesQueuedCommands(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlatform := platformtest.NewMockPlatform(ctrl)
	mockPlatform.EXPECT().Init(gomock.Any()).Return(nil)

	mgr := NewManager()
	pump, err := NewPump(mgr, mockPlatform, mgr.Callbacks())
	if err != nil {
		t.Fatalf("NewPump: %v", err)
	}

	id, _ := mgr.AllocateID()
	mockPlatform.EXPECT().Create(id, gomock.Any()).Return(nil)
	mockPlatform.EXPECT().Show(id)
	mockPlatform.EXPECT().PumpNativeEvents()

	mgr.Push(Command{Kind: CreateWindow, ID: id, Spec: platform.WindowSpec{Title: "t", Width: 100, Height: 100}})
	mgr.Push(Command{Kind: Show, ID: id})

	pump.Tick()
}

func TestPumpTickSkipsCommandsForClosedWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlatform := platformtest.NewMockPlatform(ctrl)
	mockPlatform.EXPECT().Init(gomock.Any()).Return(nil)
	mockPlatform.EXPECT().PumpNativeEvents()

	mgr := NewManager()
	pump, err := NewPump(mgr, mockPlatform, mgr.Callbacks())
	if err != nil {
		t.Fatalf("NewPump: %v", err)
	}

	id, _ := mgr.AllocateID()
	mgr.MarkClosed(id)

	// Show must never be called on the mock because the window is closed;
	// gomock.Controller.Finish would fail this test if it were.
	mgr.Push(Command{Kind: Show, ID: id})

	pump.Tick()
}

func TestCallbacksNavigationRequestedBlocksDisallowedHost(t *testing.T) {
	mgr := NewManager()
	id, _ := mgr.AllocateID()
	mgr.SetAllowedHosts(id, []string{"trusted.dev"})

	var blockedURL string
	mgr.SetHandlers(id, EventHandlers{OnNavigationBlocked: func(url string) { blockedURL = url }})

	cbs := mgr.Callbacks()
	if cbs.NavigationRequested(id, "https://evil.example/page") {
		t.Fatal("navigation to an untrusted host should be denied")
	}
	if blockedURL != "https://evil.example/page" {
		t.Fatalf("expected OnNavigationBlocked to fire with the blocked url, got %q", blockedURL)
	}
}

func TestCallbacksWindowClosedFiresOnceAndCleansUp(t *testing.T) {
	mgr := NewManager()
	id, _ := mgr.AllocateID()

	calls := 0
	mgr.SetHandlers(id, EventHandlers{OnClose: func() { calls++ }})

	cbs := mgr.Callbacks()
	cbs.WindowClosed(id)
	cbs.WindowClosed(id)

	if calls != 1 {
		t.Fatalf("expected OnClose to fire exactly once, fired %d times", calls)
	}
	if !mgr.IsClosed(id) {
		t.Fatal("window should be closed")
	}
}
