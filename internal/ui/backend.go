package ui

import "github.com/atomicstack/tmux-deck/internal/tmux"

// Backend is the slice of the tmux control surface the controller invokes.
// *tmux.Client satisfies it; tests substitute a recording fake.
type Backend interface {
	ListSessions() ([]tmux.Session, error)
	ListWindows(sessionID string) ([]tmux.Window, error)
	ListPanes(windowID string) ([]tmux.Pane, error)

	NewSession(name string) error
	RenameSession(target, name string) error
	KillSession(target string) error
	NewWindow(sessionID, name string) error
	RenameWindow(target, name string) error
	KillWindow(target string) error
	SplitPane(target string) error
	KillPane(target string) error
}
