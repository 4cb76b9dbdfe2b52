package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// mode is the tagged variant for the interaction protocol. Each variant
// carries exactly the data its mode needs, so an input buffer cannot exist
// while confirming and a pending action cannot exist while typing.
type mode interface {
	modeName() string
}

type normalMode struct{}

func (normalMode) modeName() string { return "normal" }

type inputPurpose int

const (
	purposeNewSession inputPurpose = iota
	purposeRenameSession
	purposeNewWindow
	purposeRenameWindow
)

func (p inputPurpose) title() string {
	switch p {
	case purposeNewSession:
		return "New Session Name"
	case purposeRenameSession:
		return "Rename Session"
	case purposeNewWindow:
		return "New Window Name"
	case purposeRenameWindow:
		return "Rename Window"
	}
	return ""
}

func (p inputPurpose) trace() string {
	switch p {
	case purposeNewSession:
		return "session:new"
	case purposeRenameSession:
		return "session:rename"
	case purposeNewWindow:
		return "window:new"
	case purposeRenameWindow:
		return "window:rename"
	}
	return ""
}

// inputMode collects a name for a create or rename operation. target is the
// entity being renamed, or the parent session for a new window.
type inputMode struct {
	purpose inputPurpose
	target  string
	field   textinput.Model
}

func (inputMode) modeName() string { return "input" }

func newInputMode(purpose inputPurpose, target, prefill string) inputMode {
	ti := textinput.New()
	ti.Placeholder = "name"
	ti.CharLimit = 64
	ti.Focus()
	if prefill != "" {
		ti.SetValue(prefill)
		ti.CursorEnd()
	}
	return inputMode{purpose: purpose, target: target, field: ti}
}

type actionKind int

const (
	actionKillSession actionKind = iota
	actionKillWindow
	actionKillPane
)

func (k actionKind) noun() string {
	switch k {
	case actionKillSession:
		return "session"
	case actionKillWindow:
		return "window"
	case actionKillPane:
		return "pane"
	}
	return ""
}

// pendingAction is a destructive operation awaiting explicit confirmation.
type pendingAction struct {
	kind   actionKind
	target string
	label  string
}

// confirmMode gates a destructive operation behind y/Enter.
type confirmMode struct {
	action pendingAction
}

func (confirmMode) modeName() string { return "confirm" }
