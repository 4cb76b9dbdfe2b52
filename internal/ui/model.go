package ui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-deck/internal/logging/events"
	"github.com/atomicstack/tmux-deck/internal/state"
	"github.com/atomicstack/tmux-deck/internal/theme"
	"github.com/atomicstack/tmux-deck/internal/tmux"
)

// Model is the single source of truth for the UI: the mirrored tmux state,
// the focused column, the interaction mode, and the transient status line.
// Every event is processed fully before the next one, so backend calls happen
// synchronously inside Update.
type Model struct {
	backend Backend
	store   *state.Store
	styles  *theme.Styles

	focus  Column
	mode   mode
	status statusLine

	width  int
	height int

	verbose    bool
	serverDown bool
	attach     *tmux.AttachTarget
}

// New builds the model and performs the initial refresh so the first render
// already shows live tmux state. With verbose set, successful actions post a
// confirmation on the status line; errors are always shown.
func New(backend Backend, verbose bool) *Model {
	m := &Model{
		backend: backend,
		store:   state.NewStore(),
		styles:  theme.Default(),
		focus:   ColumnSessions,
		mode:    normalMode{},
		verbose: verbose,
	}
	m.refreshAll()
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// AttachTarget reports the attach request recorded before quitting, if any.
// The handoff itself happens after the program has released the terminal.
func (m *Model) AttachTarget() (tmux.AttachTarget, bool) {
	if m.attach == nil {
		return tmux.AttachTarget{}, false
	}
	return *m.attach, true
}

// refreshAll re-queries sessions and cascades into the windows and panes of
// the current selection. An unreachable server empties every column rather
// than failing: the server may simply not be started yet.
func (m *Model) refreshAll() {
	sessions, err := m.backend.ListSessions()
	switch {
	case errors.Is(err, tmux.ErrServerUnreachable):
		m.serverDown = true
		m.store.SetSessions(nil)
		m.store.ClearWindows()
		m.status = infoStatus("no tmux server running")
		return
	case err != nil:
		m.serverDown = false
		m.fail(err)
		return
	}
	m.serverDown = false
	m.store.SetSessions(sessions)
	events.Session.Refresh(len(sessions), sessionLines(sessions))
	m.refreshWindows()
}

// refreshWindows reloads the windows of the selected session, then cascades
// into panes.
func (m *Model) refreshWindows() {
	session, ok := m.store.SelectedSession()
	if !ok {
		m.store.ClearWindows()
		return
	}
	windows, err := m.backend.ListWindows(session.ID)
	if err != nil {
		m.store.ClearWindows()
		m.fail(err)
		return
	}
	m.store.SetWindows(windows)
	events.Window.Refresh(session.Name, len(windows))
	m.refreshPanes()
}

// refreshPanes reloads the panes of the selected window.
func (m *Model) refreshPanes() {
	window, ok := m.store.SelectedWindow()
	if !ok {
		m.store.ClearPanes()
		return
	}
	panes, err := m.backend.ListPanes(window.ID)
	if err != nil {
		m.store.ClearPanes()
		m.fail(err)
		return
	}
	m.store.SetPanes(panes)
	events.Pane.Refresh(window.Name, len(panes))
}

// fail records an operation error on the status line. The application keeps
// running: a failed tmux command never tears down the UI.
func (m *Model) fail(err error) {
	events.UI.Error(err)
	m.status = errorStatus(err.Error())
}

// notify posts a success message, shown only in verbose runs. An error
// already on the status line is never overwritten by a confirmation.
func (m *Model) notify(text string) {
	if m.verbose && !m.status.isError {
		m.status = infoStatus(text)
	}
}

func sessionLines(sessions []tmux.Session) []string {
	lines := make([]string, len(sessions))
	for i, s := range sessions {
		lines[i] = s.MarshalLine()
	}
	return lines
}
