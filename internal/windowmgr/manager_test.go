package windowmgr

import "testing"

func TestAllocateIDIncrements(t *testing.T) {
	m := NewManager()
	a, err := m.AllocateID()
	if err != nil {
		t.Fatalf("AllocateID: %v", err)
	}
	b, err := m.AllocateID()
	if err != nil {
		t.Fatalf("AllocateID: %v", err)
	}
	if a == b {
		t.Fatalf("expected distinct ids, got %d twice", a)
	}
}

func TestAllocateIDExhaustion(t *testing.T) {
	m := NewManager()
	m.nextID = 0
	if _, err := m.AllocateID(); err != ErrIDSpaceExhausted {
		t.Fatalf("expected ErrIDSpaceExhausted, got %v", err)
	}
}

func TestMarkClosedFiresOnce(t *testing.T) {
	m := NewManager()
	id, _ := m.AllocateID()
	if !m.MarkClosed(id) {
		t.Fatal("first MarkClosed should succeed")
	}
	if m.MarkClosed(id) {
		t.Fatal("second MarkClosed should report already-closed")
	}
}

func TestRemoveEntryDropsHandlers(t *testing.T) {
	m := NewManager()
	id, _ := m.AllocateID()
	called := false
	m.SetHandlers(id, EventHandlers{OnClose: func() { called = true }})
	m.RemoveEntry(id)
	if h := m.Handlers(id).OnClose; h != nil {
		h()
	}
	if called {
		t.Fatal("handler should be gone after RemoveEntry")
	}
}

func TestPushDrainRoundtrip(t *testing.T) {
	m := NewManager()
	id, _ := m.AllocateID()
	m.Push(Command{Kind: Show, ID: id})
	m.Push(Command{Kind: Hide, ID: id})
	cmds := m.drain()
	if len(cmds) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(cmds))
	}
	if remaining := m.drain(); len(remaining) != 0 {
		t.Fatalf("queue should be empty after drain, got %d", len(remaining))
	}
}

func TestCountExcludesClosedWindows(t *testing.T) {
	m := NewManager()
	a, _ := m.AllocateID()
	_, _ = m.AllocateID()
	if got := m.Count(); got != 2 {
		t.Fatalf("expected 2 live windows, got %d", got)
	}
	m.MarkClosed(a)
	if got := m.Count(); got != 1 {
		t.Fatalf("expected 1 live window after close, got %d", got)
	}
}
