package windowmgr

import (
	"github.com/nwkit/nativewindow/internal/platform"
)

// Pump wires a Manager's command queue to a platform.Platform backend,
// implementing the three-phase cooperative tick from
// original_source/lib.rs's pump_events: drain queued commands, apply
// each to the backend, then let the backend's native event loop run one
// non-blocking iteration so its own queued callbacks fire. Both halves
// run on the single goroutine the caller confines itself to — there is
// no locking inside Tick beyond what Manager.Push already does for
// cross-goroutine enqueueing.
type Pump struct {
	Manager  *Manager
	Platform platform.Platform
}

// NewPump binds a Manager to a Platform backend and initializes it.
func NewPump(mgr *Manager, p platform.Platform, cb platform.Callbacks) (*Pump, error) {
	if err := p.Init(cb); err != nil {
		return nil, err
	}
	return &Pump{Manager: mgr, Platform: p}, nil
}

// Tick drains the command queue, applies each command to the backend,
// then pumps one iteration of the native event loop. A command against
// an id that Manager already considers closed is skipped; a platform
// error for one command is logged and does not stop the remaining
// commands from being applied, mirroring original_source's per-command
// error handling in process_command.
func (p *Pump) Tick() {
	cmds := p.Manager.drain()
	for _, cmd := range cmds {
		p.apply(cmd)
	}
	p.Platform.PumpNativeEvents()
}

func (p *Pump) apply(cmd Command) {
	if cmd.Kind != CreateWindow && p.Manager.IsClosed(cmd.ID) {
		return
	}

	switch cmd.Kind {
	case CreateWindow:
		if err := p.Platform.Create(cmd.ID, cmd.Spec); err != nil {
			p.logCommandError(cmd.ID, "CreateWindow", err)
		}
	case LoadURL:
		if err := p.Platform.LoadURL(cmd.ID, cmd.URL); err != nil {
			p.logCommandError(cmd.ID, "LoadURL", err)
		}
	case LoadHTML:
		if err := p.Platform.LoadHTML(cmd.ID, cmd.HTML); err != nil {
			p.logCommandError(cmd.ID, "LoadHTML", err)
		}
	case EvaluateScript:
		p.Platform.EvaluateScript(cmd.ID, cmd.Script)
	case InstallDocumentStartScript:
		p.Platform.InstallDocumentStartScript(cmd.ID, cmd.Script)
	case PostMessage:
		p.Platform.PostMessage(cmd.ID, cmd.Text)
	case SetTitle:
		p.Platform.SetTitle(cmd.ID, cmd.Title)
	case SetSize:
		p.Platform.SetSize(cmd.ID, cmd.Size.Width, cmd.Size.Height)
	case SetMinSize:
		p.Platform.SetMinSize(cmd.ID, cmd.Size.Width, cmd.Size.Height)
	case SetMaxSize:
		p.Platform.SetMaxSize(cmd.ID, cmd.Size.Width, cmd.Size.Height)
	case SetPosition:
		p.Platform.SetPosition(cmd.ID, cmd.Pos.X, cmd.Pos.Y)
	case SetResizable:
		p.Platform.SetResizable(cmd.ID, cmd.Bool)
	case SetDecorations:
		p.Platform.SetDecorations(cmd.ID, cmd.Bool)
	case SetAlwaysOnTop:
		p.Platform.SetAlwaysOnTop(cmd.ID, cmd.Bool)
	case SetIcon:
		p.Platform.SetIcon(cmd.ID, cmd.Path)
	case Show:
		p.Platform.Show(cmd.ID)
	case Hide:
		p.Platform.Hide(cmd.ID)
	case Close:
		p.Platform.Close(cmd.ID)
	case Focus:
		p.Platform.Focus(cmd.ID)
	case Maximize:
		p.Platform.Maximize(cmd.ID)
	case Minimize:
		p.Platform.Minimize(cmd.ID)
	case Unmaximize:
		p.Platform.Unmaximize(cmd.ID)
	case Reload:
		p.Platform.Reload(cmd.ID)
	case GetCookies:
		p.Platform.GetCookies(cmd.ID, cmd.CookieURL)
	}
}

// logCommandError records a kind-3 adapter-command error (spec.md §7):
// logged, never returned, the pump continues to the next command.
func (p *Pump) logCommandError(id uint32, command string, err error) {
	p.Manager.log.Error().Err(&CommandError{WindowID: id, Command: command, Err: err}).Msg("adapter command failed")
}
