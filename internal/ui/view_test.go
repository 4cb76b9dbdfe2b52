package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func sizedModel(t *testing.T, b *fakeBackend) *Model {
	t.Helper()
	m := New(b, false)
	press(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})
	return m
}

func TestViewShowsAllThreeColumns(t *testing.T) {
	m := sizedModel(t, twoSessionBackend())

	out := m.View()
	for _, want := range []string{"Sessions", "Windows", "Panes", "main", "editor", "vim"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
}

func TestViewEmptyStates(t *testing.T) {
	m := sizedModel(t, &fakeBackend{})

	out := m.View()
	if !strings.Contains(out, "(no sessions)") {
		t.Fatalf("view missing empty-session placeholder:\n%s", out)
	}
	if !strings.Contains(out, "(no windows)") || !strings.Contains(out, "(no panes)") {
		t.Fatalf("view missing dependent empty placeholders:\n%s", out)
	}
}

func TestViewInputDialogReplacesColumns(t *testing.T) {
	m := sizedModel(t, twoSessionBackend())

	press(t, m, keyRune('n'))
	out := m.View()
	if !strings.Contains(out, "New Session Name") {
		t.Fatalf("view missing input dialog title:\n%s", out)
	}
	if strings.Contains(out, "Sessions") {
		t.Fatalf("columns should be hidden behind the dialog:\n%s", out)
	}
}

func TestViewConfirmDialogNamesTarget(t *testing.T) {
	m := sizedModel(t, twoSessionBackend())

	press(t, m, keyRune('d'))
	out := m.View()
	if !strings.Contains(out, `Kill session "main"?`) {
		t.Fatalf("view missing confirm question:\n%s", out)
	}
}

func TestViewFooterFollowsFocus(t *testing.T) {
	m := sizedModel(t, twoSessionBackend())

	if out := m.View(); !strings.Contains(out, "n: new session") {
		t.Fatalf("footer missing session help:\n%s", out)
	}
	press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if out := m.View(); !strings.Contains(out, "n: split") {
		t.Fatalf("footer missing pane help:\n%s", out)
	}
}

func TestViewTooSmall(t *testing.T) {
	m := New(twoSessionBackend(), false)
	press(t, m, tea.WindowSizeMsg{Width: 20, Height: 5})

	if out := m.View(); out != "terminal too small" {
		t.Fatalf("view = %q, want size warning", out)
	}
}
