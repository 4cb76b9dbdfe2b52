package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-deck/internal/logging/events"
	"github.com/atomicstack/tmux-deck/internal/tmux"
	"github.com/atomicstack/tmux-deck/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	SocketPath string
	Verbose    bool
}

// Run bootstraps and executes the Bubble Tea program. When the user selected
// an attach target, the terminal is handed over to tmux only after the
// program has shut down and released the alternate screen.
func Run(cfg Config) error {
	if err := tmux.Available(); err != nil {
		return err
	}
	client := tmux.NewClient(cfg.SocketPath)
	model := ui.New(client, cfg.Verbose)
	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	}
	m, ok := final.(*ui.Model)
	if !ok {
		return nil
	}
	target, ok := m.AttachTarget()
	if !ok {
		return nil
	}
	events.App.Attach(target.Session, target.Window)
	return client.Handoff(target)
}
