package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-deck/internal/logging/events"
	"github.com/atomicstack/tmux-deck/internal/tmux"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.status.expired(time.Now()) {
			m.status = statusLine{}
		}
		switch mode := m.mode.(type) {
		case normalMode:
			return m.updateNormal(msg)
		case inputMode:
			return m.updateInput(mode, msg)
		case confirmMode:
			return m.updateConfirm(mode, msg)
		}
	}
	return m, nil
}

func (m *Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		events.App.Quit()
		return m, tea.Quit
	case "r":
		m.status = statusLine{}
		m.refreshAll()
		if !m.serverDown {
			m.notify("refreshed")
		}
	case "tab", "right":
		m.setFocus(m.focus.Next())
	case "shift+tab", "left":
		m.setFocus(m.focus.Prev())
	case "up", "k":
		m.moveSelection(-1)
	case "down", "j":
		m.moveSelection(1)
	case "enter":
		return m.attachSelected()
	case "n":
		m.startCreate()
	case "R":
		m.startRename()
	case "d":
		m.startDelete()
	}
	return m, nil
}

func (m *Model) updateInput(mode inputMode, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.cancelInput(mode, events.ReasonEscape)
		return m, nil
	case "enter":
		name := strings.TrimSpace(mode.field.Value())
		if name == "" {
			m.cancelInput(mode, events.ReasonEmpty)
			return m, nil
		}
		m.commitInput(mode, name)
		return m, nil
	}
	var cmd tea.Cmd
	mode.field, cmd = mode.field.Update(msg)
	m.mode = mode
	return m, cmd
}

func (m *Model) updateConfirm(mode confirmMode, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.commitAction(mode.action)
	case "n", "N", "esc":
		m.cancelConfirm(mode.action)
	}
	return m, nil
}

func (m *Model) setFocus(focus Column) {
	m.focus = focus
	events.UI.Focus(focus.String())
}

func (m *Model) setMode(mode mode) {
	m.mode = mode
	events.UI.Mode(mode.modeName())
}

// moveSelection shifts the cursor in the focused column. Changing the
// selected session reloads its windows; changing the selected window reloads
// its panes.
func (m *Model) moveSelection(delta int) {
	switch m.focus {
	case ColumnSessions:
		if m.store.MoveSession(delta) {
			m.refreshWindows()
		}
		events.UI.Cursor(m.focus.String(), m.store.SessionIndex())
	case ColumnWindows:
		if m.store.MoveWindow(delta) {
			m.refreshPanes()
		}
		events.UI.Cursor(m.focus.String(), m.store.WindowIndex())
	case ColumnPanes:
		m.store.MovePane(delta)
		events.UI.Cursor(m.focus.String(), m.store.PaneIndex())
	}
}

// attachSelected records the attach target and quits the event loop. The
// terminal handoff to tmux happens after the program has shut down. Panes
// are not attachable; Enter there only posts a notice.
func (m *Model) attachSelected() (tea.Model, tea.Cmd) {
	if m.focus == ColumnPanes {
		m.status = infoStatus("panes cannot be attached")
		return m, nil
	}
	session, ok := m.store.SelectedSession()
	if !ok {
		m.status = errorStatus("no session selected")
		return m, nil
	}
	target := tmux.AttachTarget{Session: session.ID}
	if m.focus != ColumnSessions {
		window, ok := m.store.SelectedWindow()
		if !ok {
			m.status = errorStatus("no window selected")
			return m, nil
		}
		target.Window = window.ID
		events.Window.Attach(session.Name, window.Name)
	} else {
		events.Session.Attach(session.Name)
	}
	m.attach = &target
	return m, tea.Quit
}

// startCreate opens the name prompt for sessions and windows. Panes have no
// name: splitting acts immediately on the selected pane.
func (m *Model) startCreate() {
	switch m.focus {
	case ColumnSessions:
		m.setMode(newInputMode(purposeNewSession, "", ""))
	case ColumnWindows:
		session, ok := m.store.SelectedSession()
		if !ok {
			m.status = errorStatus("no session selected")
			return
		}
		m.setMode(newInputMode(purposeNewWindow, session.ID, ""))
	case ColumnPanes:
		pane, ok := m.store.SelectedPane()
		if !ok {
			m.status = errorStatus("no pane selected")
			return
		}
		m.status = statusLine{}
		events.Pane.Split(pane.ID)
		if err := m.backend.SplitPane(pane.ID); err != nil {
			m.fail(err)
			return
		}
		m.refreshAll()
		m.notify("pane split")
	}
}

func (m *Model) startRename() {
	switch m.focus {
	case ColumnSessions:
		session, ok := m.store.SelectedSession()
		if !ok {
			m.status = errorStatus("no session selected")
			return
		}
		m.setMode(newInputMode(purposeRenameSession, session.ID, session.Name))
	case ColumnWindows:
		window, ok := m.store.SelectedWindow()
		if !ok {
			m.status = errorStatus("no window selected")
			return
		}
		m.setMode(newInputMode(purposeRenameWindow, window.ID, window.Name))
	case ColumnPanes:
		m.status = infoStatus("panes cannot be renamed")
	}
}

func (m *Model) startDelete() {
	switch m.focus {
	case ColumnSessions:
		session, ok := m.store.SelectedSession()
		if !ok {
			m.status = errorStatus("no session selected")
			return
		}
		m.setMode(confirmMode{action: pendingAction{
			kind:   actionKillSession,
			target: session.ID,
			label:  session.Name,
		}})
	case ColumnWindows:
		window, ok := m.store.SelectedWindow()
		if !ok {
			m.status = errorStatus("no window selected")
			return
		}
		m.setMode(confirmMode{action: pendingAction{
			kind:   actionKillWindow,
			target: window.ID,
			label:  window.Name,
		}})
	case ColumnPanes:
		pane, ok := m.store.SelectedPane()
		if !ok {
			m.status = errorStatus("no pane selected")
			return
		}
		m.setMode(confirmMode{action: pendingAction{
			kind:   actionKillPane,
			target: pane.ID,
			label:  fmt.Sprintf("pane %d (%s)", pane.Index, pane.Command),
		}})
	}
}

func (m *Model) cancelInput(mode inputMode, reason events.CancelReason) {
	switch mode.purpose {
	case purposeNewSession, purposeRenameSession:
		events.Session.Cancel(mode.purpose.trace(), reason)
	default:
		events.Window.Cancel(mode.purpose.trace(), reason)
	}
	m.setMode(normalMode{})
}

// commitInput runs the create or rename the prompt was opened for, then
// re-queries tmux so the UI reflects the authoritative result. Failure or
// success, the UI returns to normal mode.
func (m *Model) commitInput(mode inputMode, name string) {
	m.status = statusLine{}
	var err error
	switch mode.purpose {
	case purposeNewSession:
		events.Session.Create(name)
		err = m.backend.NewSession(name)
	case purposeRenameSession:
		events.Session.Rename(mode.target, name)
		err = m.backend.RenameSession(mode.target, name)
	case purposeNewWindow:
		events.Window.Create(mode.target, name)
		err = m.backend.NewWindow(mode.target, name)
	case purposeRenameWindow:
		events.Window.Rename(mode.target, name)
		err = m.backend.RenameWindow(mode.target, name)
	}
	m.setMode(normalMode{})
	if err != nil {
		m.fail(err)
		return
	}
	m.refreshAll()
	m.notify(fmt.Sprintf("%s: %s", mode.purpose.title(), name))
}

func (m *Model) commitAction(action pendingAction) {
	m.status = statusLine{}
	var err error
	switch action.kind {
	case actionKillSession:
		events.Session.Kill(action.target)
		err = m.backend.KillSession(action.target)
	case actionKillWindow:
		events.Window.Kill(action.target)
		err = m.backend.KillWindow(action.target)
	case actionKillPane:
		events.Pane.Kill(action.target)
		err = m.backend.KillPane(action.target)
	}
	m.setMode(normalMode{})
	if err != nil {
		m.fail(err)
		return
	}
	m.refreshAll()
	m.notify(fmt.Sprintf("killed %s %s", action.kind.noun(), action.label))
}

func (m *Model) cancelConfirm(action pendingAction) {
	switch action.kind {
	case actionKillSession:
		events.Session.Cancel("session:kill", events.ReasonDecline)
	case actionKillWindow:
		events.Window.Cancel("window:kill", events.ReasonDecline)
	case actionKillPane:
		events.Pane.Cancel("pane:kill", events.ReasonDecline)
	}
	m.setMode(normalMode{})
}
