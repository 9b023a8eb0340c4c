package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mviorel/learninghub/internal/screen"
)

// stubScreen counts lifecycle events so tests can observe routing.
type stubScreen struct {
	title     string
	initRan   bool
	refreshes int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(screen.RefreshMsg); ok {
		s.refreshes++
	}
	return s, nil
}

func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestPushRunsInit(t *testing.T) {
	root := &stubScreen{title: "root"}
	r := New(root)

	top := &stubScreen{title: "top"}
	r.Update(PushScreenMsg{Screen: top})

	if r.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "top" {
		t.Errorf("active = %q, want top", r.Active().Title())
	}
	if !top.initRan {
		t.Error("pushed screen's Init did not run")
	}
}

func TestPopRefreshesRevealedScreen(t *testing.T) {
	root := &stubScreen{title: "root"}
	r := New(root)
	r.Push(&stubScreen{title: "top"})

	r.Update(PopScreenMsg{})

	if r.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", r.Depth())
	}
	if root.refreshes != 1 {
		t.Errorf("revealed screen got %d refreshes, want 1", root.refreshes)
	}
}

func TestPopNoopAtRoot(t *testing.T) {
	root := &stubScreen{title: "root"}
	r := New(root)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth = %d after pop at root, want 1", r.Depth())
	}
	if root.refreshes != 0 {
		t.Errorf("root refreshed %d times by a no-op pop", root.refreshes)
	}
}

func TestReplaceKeepsDepth(t *testing.T) {
	r := New(&stubScreen{title: "root"})
	r.Push(&stubScreen{title: "second"})

	third := &stubScreen{title: "third"}
	r.Update(ReplaceScreenMsg{Screen: third})

	if r.Depth() != 2 {
		t.Errorf("depth = %d after replace, want 2", r.Depth())
	}
	if r.Active().Title() != "third" {
		t.Errorf("active = %q, want third", r.Active().Title())
	}
	if !third.initRan {
		t.Error("replacement screen's Init did not run")
	}
}

func TestOtherMessagesReachActiveScreenOnly(t *testing.T) {
	root := &stubScreen{title: "root"}
	r := New(root)
	top := &stubScreen{title: "top"}
	r.Push(top)

	r.Update(screen.RefreshMsg{})

	if top.refreshes != 1 {
		t.Errorf("active screen got %d refreshes, want 1", top.refreshes)
	}
	if root.refreshes != 0 {
		t.Errorf("buried screen got %d refreshes, want 0", root.refreshes)
	}
}
