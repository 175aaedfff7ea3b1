package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/resiliq/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title    string
	initRuns int
	gotMsgs  []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRuns++
	return nil
}
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.gotMsgs = append(s.gotMsgs, msg)
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if s2.initRuns != 1 {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	r.Push(&stubScreen{title: "second"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "first" {
		t.Errorf("expected active 'first', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "first"})

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	r := New(&stubScreen{title: "first"})

	s2 := &stubScreen{title: "second"}
	r.Replace(s2)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if s2.initRuns != 1 {
		t.Error("expected Init() to run on replacement screen")
	}
}

func TestPopToRoot(t *testing.T) {
	root := &stubScreen{title: "root"}
	r := New(root)
	r.Push(&stubScreen{title: "second"})
	r.Push(&stubScreen{title: "third"})

	r.PopToRoot()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "root" {
		t.Errorf("expected active 'root', got %q", r.Active().Title())
	}
	if root.initRuns != 1 {
		t.Errorf("expected root Init() to re-run once, ran %d times", root.initRuns)
	}
}

func TestNavigationMessages(t *testing.T) {
	r := New(&stubScreen{title: "first"})

	r.Update(PushScreenMsg{Screen: &stubScreen{title: "second"}})
	if r.Depth() != 2 {
		t.Fatalf("expected depth 2 after PushScreenMsg, got %d", r.Depth())
	}

	r.Update(ReplaceScreenMsg{Screen: &stubScreen{title: "swapped"}})
	if r.Active().Title() != "swapped" {
		t.Errorf("expected 'swapped' after ReplaceScreenMsg, got %q", r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after PopScreenMsg, got %d", r.Depth())
	}

	r.Update(PushScreenMsg{Screen: &stubScreen{title: "a"}})
	r.Update(PushScreenMsg{Screen: &stubScreen{title: "b"}})
	r.Update(PopToRootMsg{})
	if r.Depth() != 1 || r.Active().Title() != "first" {
		t.Errorf("expected root 'first' after PopToRootMsg, got depth %d active %q",
			r.Depth(), r.Active().Title())
	}
}

func TestOnlyActiveScreenReceivesMessages(t *testing.T) {
	buried := &stubScreen{title: "buried"}
	r := New(buried)
	active := &stubScreen{title: "active"}
	r.Push(active)

	r.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	if len(buried.gotMsgs) != 0 {
		t.Errorf("buried screen received %d messages, want 0", len(buried.gotMsgs))
	}
	if len(active.gotMsgs) != 1 {
		t.Errorf("active screen received %d messages, want 1", len(active.gotMsgs))
	}
}
