package state

import (
	"testing"

	"github.com/atomicstack/tmux-deck/internal/tmux"
)

func sessions(names ...string) []tmux.Session {
	out := make([]tmux.Session, len(names))
	for i, name := range names {
		out[i] = tmux.Session{ID: "$" + name, Name: name}
	}
	return out
}

func TestSetSessionsSelectsFirst(t *testing.T) {
	s := NewStore()
	s.SetSessions(sessions("a", "b"))
	if s.SessionIndex() != 0 {
		t.Fatalf("expected first session selected, got %d", s.SessionIndex())
	}
	sel, ok := s.SelectedSession()
	if !ok || sel.Name != "a" {
		t.Fatalf("expected session a, got %+v ok=%v", sel, ok)
	}
}

func TestReconcileKeepsIDAcrossReorder(t *testing.T) {
	s := NewStore()
	s.SetSessions(sessions("a", "b", "c"))
	s.MoveSession(1) // select b
	s.SetSessions(sessions("c", "a", "b"))
	sel, ok := s.SelectedSession()
	if !ok || sel.Name != "b" {
		t.Fatalf("expected selection to follow b, got %+v", sel)
	}
	if s.SessionIndex() != 2 {
		t.Fatalf("expected index 2 after reorder, got %d", s.SessionIndex())
	}
}

func TestReconcileClampsWhenIDGone(t *testing.T) {
	s := NewStore()
	s.SetSessions(sessions("a", "b", "c"))
	s.MoveSession(2) // select c
	s.SetSessions(sessions("a", "b"))
	sel, ok := s.SelectedSession()
	if !ok || sel.Name != "b" {
		t.Fatalf("expected clamp to last entry, got %+v", sel)
	}
}

func TestReconcilePrefersSamePositionOverLast(t *testing.T) {
	s := NewStore()
	s.SetSessions(sessions("a", "b", "c"))
	s.MoveSession(1) // select b at index 1
	s.SetSessions(sessions("x", "y", "z"))
	sel, _ := s.SelectedSession()
	if sel.Name != "y" {
		t.Fatalf("expected positional fallback to index 1, got %+v", sel)
	}
}

func TestReconcileEmptyClearsSelection(t *testing.T) {
	s := NewStore()
	s.SetSessions(sessions("a"))
	s.SetSessions(nil)
	if s.SessionIndex() != -1 {
		t.Fatalf("expected -1 for empty collection, got %d", s.SessionIndex())
	}
	if _, ok := s.SelectedSession(); ok {
		t.Fatalf("expected no selection")
	}
}

func TestMoveSessionClampsAtBounds(t *testing.T) {
	s := NewStore()
	s.SetSessions(sessions("a", "b"))
	if s.MoveSession(-1) {
		t.Fatalf("expected no change moving up from first")
	}
	if s.SessionIndex() != 0 {
		t.Fatalf("expected clamp at 0, got %d", s.SessionIndex())
	}
	if !s.MoveSession(1) {
		t.Fatalf("expected selection change moving down")
	}
	if s.MoveSession(1) {
		t.Fatalf("expected no change moving past last")
	}
	if s.SessionIndex() != 1 {
		t.Fatalf("expected clamp at last index, got %d", s.SessionIndex())
	}
}

func TestMoveOnEmptyCollection(t *testing.T) {
	s := NewStore()
	if s.MoveSession(1) {
		t.Fatalf("expected no change on empty store")
	}
	if s.SessionIndex() != -1 {
		t.Fatalf("expected -1, got %d", s.SessionIndex())
	}
}

func TestSelectionIndexAlwaysInBounds(t *testing.T) {
	s := NewStore()
	steps := []func(){
		func() { s.SetSessions(sessions("a", "b", "c")) },
		func() { s.MoveSession(1) },
		func() { s.MoveSession(1) },
		func() { s.MoveSession(1) },
		func() { s.SetSessions(sessions("a")) },
		func() { s.MoveSession(-1) },
		func() { s.SetSessions(nil) },
		func() { s.MoveSession(1) },
		func() { s.SetSessions(sessions("x", "y")) },
	}
	for i, step := range steps {
		step()
		idx := s.SessionIndex()
		n := len(s.Sessions())
		if n == 0 && idx != -1 {
			t.Fatalf("step %d: expected -1 on empty, got %d", i, idx)
		}
		if n > 0 && (idx < 0 || idx >= n) {
			t.Fatalf("step %d: index %d out of bounds for %d entries", i, idx, n)
		}
	}
}

func TestWindowsAndPanesScoping(t *testing.T) {
	s := NewStore()
	s.SetSessions(sessions("a"))
	s.SetWindows([]tmux.Window{{ID: "@1", Name: "one"}, {ID: "@2", Name: "two"}})
	s.SetPanes([]tmux.Pane{{ID: "%1"}, {ID: "%2"}})
	if s.WindowIndex() != 0 || s.PaneIndex() != 0 {
		t.Fatalf("expected initial selections, got window=%d pane=%d", s.WindowIndex(), s.PaneIndex())
	}
	s.ClearWindows()
	if len(s.Windows()) != 0 || len(s.Panes()) != 0 {
		t.Fatalf("expected windows and panes cleared")
	}
	if s.WindowIndex() != -1 || s.PaneIndex() != -1 {
		t.Fatalf("expected selections cleared, got window=%d pane=%d", s.WindowIndex(), s.PaneIndex())
	}
}

func TestMoveWindowReportsChange(t *testing.T) {
	s := NewStore()
	s.SetWindows([]tmux.Window{{ID: "@1"}, {ID: "@2"}})
	if !s.MoveWindow(1) {
		t.Fatalf("expected window change")
	}
	if s.MoveWindow(1) {
		t.Fatalf("expected clamp, no change")
	}
}
