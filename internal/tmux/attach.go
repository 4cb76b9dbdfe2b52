package tmux

import (
	"os"
	"syscall"
)

// AttachTarget names the session (and optionally the window within it) the
// user asked to attach to when the TUI exited.
type AttachTarget struct {
	Session string
	Window  string
}

// Seams swapped out by tests; execReplace never returns on success.
var (
	execReplace = syscall.Exec
	getenv      = os.Getenv
)

// Handoff cedes the terminal to tmux for the given target. Inside an existing
// tmux client it issues switch-client and returns; outside it replaces this
// process image with `tmux attach-session`, so on success no code after the
// call runs. When the target names a window, that window is selected first so
// the attach lands on it.
func (c *Client) Handoff(target AttachTarget) error {
	if err := requireTarget("session", target.Session); err != nil {
		return err
	}
	if target.Window != "" {
		if err := c.SelectWindow(target.Window); err != nil {
			return err
		}
	}
	if getenv("TMUX") != "" {
		return c.run("switch-client", "-t", target.Session)
	}
	path, err := lookPath("tmux")
	if err != nil {
		return ErrToolUnavailable
	}
	argv := append([]string{"tmux"}, baseArgs(c.socketPath)...)
	argv = append(argv, "attach-session", "-t", target.Session)
	return execReplace(path, argv, os.Environ())
}
