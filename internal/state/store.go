// Package state owns the three entity collections mirrored from tmux and the
// selection in each. Collections preserve tmux's reported order; refreshes
// replace a collection wholesale and reconcile the selection so it survives
// when the same entity is still present.
package state

import "github.com/atomicstack/tmux-deck/internal/tmux"

// Store holds sessions, the windows of the selected session, and the panes of
// the selected window. It performs no I/O; the controller feeds it freshly
// listed entities.
type Store struct {
	sessions []tmux.Session
	windows  []tmux.Window
	panes    []tmux.Pane

	sessionSel selection
	windowSel  selection
	paneSel    selection
}

func NewStore() *Store {
	return &Store{
		sessionSel: noSelection(),
		windowSel:  noSelection(),
		paneSel:    noSelection(),
	}
}

func (s *Store) Sessions() []tmux.Session { return s.sessions }
func (s *Store) Windows() []tmux.Window   { return s.windows }
func (s *Store) Panes() []tmux.Pane       { return s.panes }

func (s *Store) SessionIndex() int { return s.sessionSel.index }
func (s *Store) WindowIndex() int  { return s.windowSel.index }
func (s *Store) PaneIndex() int    { return s.paneSel.index }

// SetSessions replaces the sessions collection and reconciles the selection.
func (s *Store) SetSessions(sessions []tmux.Session) {
	s.sessions = sessions
	s.sessionSel = s.sessionSel.reconcile(sessionIDs(sessions))
}

// SetWindows replaces the windows collection; entries must belong to the
// currently selected session.
func (s *Store) SetWindows(windows []tmux.Window) {
	s.windows = windows
	s.windowSel = s.windowSel.reconcile(windowIDs(windows))
}

// SetPanes replaces the panes collection; entries must belong to the
// currently selected window.
func (s *Store) SetPanes(panes []tmux.Pane) {
	s.panes = panes
	s.paneSel = s.paneSel.reconcile(paneIDs(panes))
}

// ClearWindows drops the windows collection (and transitively panes), used
// when no session is selected.
func (s *Store) ClearWindows() {
	s.windows = nil
	s.windowSel = noSelection()
	s.ClearPanes()
}

// ClearPanes drops the panes collection, used when no window is selected.
func (s *Store) ClearPanes() {
	s.panes = nil
	s.paneSel = noSelection()
}

// MoveSession shifts the session selection by delta, clamped. Reports whether
// the selected session changed, in which case the caller must reload windows.
func (s *Store) MoveSession(delta int) bool {
	prev := s.sessionSel.id
	s.sessionSel = s.sessionSel.move(delta, sessionIDs(s.sessions))
	return s.sessionSel.id != prev
}

// MoveWindow shifts the window selection by delta, clamped. Reports whether
// the selected window changed, in which case the caller must reload panes.
func (s *Store) MoveWindow(delta int) bool {
	prev := s.windowSel.id
	s.windowSel = s.windowSel.move(delta, windowIDs(s.windows))
	return s.windowSel.id != prev
}

// MovePane shifts the pane selection by delta, clamped.
func (s *Store) MovePane(delta int) {
	s.paneSel = s.paneSel.move(delta, paneIDs(s.panes))
}

// SelectedSession returns the selected session, if any.
func (s *Store) SelectedSession() (tmux.Session, bool) {
	if s.sessionSel.index < 0 || s.sessionSel.index >= len(s.sessions) {
		return tmux.Session{}, false
	}
	return s.sessions[s.sessionSel.index], true
}

// SelectedWindow returns the selected window, if any.
func (s *Store) SelectedWindow() (tmux.Window, bool) {
	if s.windowSel.index < 0 || s.windowSel.index >= len(s.windows) {
		return tmux.Window{}, false
	}
	return s.windows[s.windowSel.index], true
}

// SelectedPane returns the selected pane, if any.
func (s *Store) SelectedPane() (tmux.Pane, bool) {
	if s.paneSel.index < 0 || s.paneSel.index >= len(s.panes) {
		return tmux.Pane{}, false
	}
	return s.panes[s.paneSel.index], true
}

func sessionIDs(sessions []tmux.Session) []string {
	ids := make([]string, len(sessions))
	for i, s := range sessions {
		ids[i] = s.ID
	}
	return ids
}

func windowIDs(windows []tmux.Window) []string {
	ids := make([]string, len(windows))
	for i, w := range windows {
		ids[i] = w.ID
	}
	return ids
}

func paneIDs(panes []tmux.Pane) []string {
	ids := make([]string, len(panes))
	for i, p := range panes {
		ids[i] = p.ID
	}
	return ids
}
