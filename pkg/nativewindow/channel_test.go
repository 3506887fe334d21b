package nativewindow

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/nwkit/nativewindow/internal/platform"
	"github.com/nwkit/nativewindow/internal/platform/platformtest"
	"github.com/nwkit/nativewindow/internal/windowmgr"
)

func TestChannelIncomingMessageDispatchesToRegisteredHandler(t *testing.T) {
	w, mgr := newTestWindow(t)

	c, err := w.NewChannel(ChannelOptions{Schemas: SchemaMap{"ping": Void}})
	if err != nil {
		t.Fatalf("NewChannel: %v", err)
	}

	got := 0
	c.On("ping", func(payload any) { got++ })

	mgr.Callbacks().WindowMessage(w.id, `{"$ch":"ping"}`, "https://trusted.example")

	if got != 1 {
		t.Fatalf("handler invoked %d times, want 1", got)
	}
}

func TestChannelSendUnknownEventTypeDropped(t *testing.T) {
	w, _ := newTestWindow(t)

	c, err := w.NewChannel(ChannelOptions{Schemas: SchemaMap{"ping": Void}})
	if err != nil {
		t.Fatalf("NewChannel: %v", err)
	}

	if err := c.Send("unregistered", nil); err != nil {
		t.Fatalf("Send for unknown type should be a silent no-op, got %v", err)
	}
}

func TestChannelInjectsScriptImmediatelyWithoutTrustedOrigins(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := platformtest.NewMockPlatform(ctrl)

	mock.EXPECT().Init(gomock.Any()).Return(nil)
	mock.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	mock.EXPECT().InstallDocumentStartScript(gomock.Any(), gomock.Any())
	mock.EXPECT().PumpNativeEvents().AnyTimes()

	w, mgr := newTestWindow(t)
	mgr.Push(windowmgr.Command{Kind: windowmgr.CreateWindow, ID: w.id, Spec: platform.WindowSpec{}})

	if _, err := w.NewChannel(ChannelOptions{
		Schemas:      SchemaMap{"ping": Void},
		InjectClient: true,
	}); err != nil {
		t.Fatalf("NewChannel: %v", err)
	}

	pump, err := windowmgr.NewPump(mgr, mock, mgr.Callbacks())
	if err != nil {
		t.Fatalf("NewPump: %v", err)
	}
	pump.Tick()
}
