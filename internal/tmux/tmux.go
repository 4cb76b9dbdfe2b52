package tmux

import (
	"fmt"
	"strings"
)

// Client issues tmux control commands over an optional socket path. It holds
// no cache: every list call re-queries the server, and every mutator changes
// shared out-of-process state that other clients may also be changing.
type Client struct {
	socketPath string
}

// NewClient returns a client for the given socket path. An empty path uses
// tmux's default socket resolution.
func NewClient(socketPath string) *Client {
	return &Client{socketPath: strings.TrimSpace(socketPath)}
}

// ListSessions queries all sessions. A missing server surfaces as
// ErrServerUnreachable rather than an empty result so the caller can tell
// "no server" apart from "no sessions".
func (c *Client) ListSessions() ([]Session, error) {
	out, err := c.output("list-sessions", "-F", sessionFormat)
	if err != nil {
		return nil, err
	}
	return parseSessions(out)
}

// ListWindows queries the windows of one session.
func (c *Client) ListWindows(sessionID string) ([]Window, error) {
	if err := requireTarget("session", sessionID); err != nil {
		return nil, err
	}
	out, err := c.output("list-windows", "-t", sessionID, "-F", windowFormat)
	if err != nil {
		return nil, err
	}
	return parseWindows(out)
}

// ListPanes queries the panes of one window.
func (c *Client) ListPanes(windowID string) ([]Pane, error) {
	if err := requireTarget("window", windowID); err != nil {
		return nil, err
	}
	out, err := c.output("list-panes", "-t", windowID, "-F", paneFormat)
	if err != nil {
		return nil, err
	}
	return parsePanes(out)
}

// NewSession creates a detached session with the given name.
func (c *Client) NewSession(name string) error {
	if err := requireName("session", name); err != nil {
		return err
	}
	return c.run("new-session", "-d", "-s", name)
}

// RenameSession renames the target session.
func (c *Client) RenameSession(target, name string) error {
	if err := requireTarget("session", target); err != nil {
		return err
	}
	if err := requireName("session", name); err != nil {
		return err
	}
	return c.run("rename-session", "-t", target, name)
}

// KillSession destroys the target session and every window in it.
func (c *Client) KillSession(target string) error {
	if err := requireTarget("session", target); err != nil {
		return err
	}
	return c.run("kill-session", "-t", target)
}

// NewWindow creates a named window in the target session.
func (c *Client) NewWindow(sessionID, name string) error {
	if err := requireTarget("session", sessionID); err != nil {
		return err
	}
	if err := requireName("window", name); err != nil {
		return err
	}
	return c.run("new-window", "-t", sessionID, "-n", name)
}

// RenameWindow renames the target window.
func (c *Client) RenameWindow(target, name string) error {
	if err := requireTarget("window", target); err != nil {
		return err
	}
	if err := requireName("window", name); err != nil {
		return err
	}
	return c.run("rename-window", "-t", target, name)
}

// KillWindow destroys the target window.
func (c *Client) KillWindow(target string) error {
	if err := requireTarget("window", target); err != nil {
		return err
	}
	return c.run("kill-window", "-t", target)
}

// SplitPane splits the target pane, keeping tmux's default direction.
func (c *Client) SplitPane(target string) error {
	if err := requireTarget("pane", target); err != nil {
		return err
	}
	return c.run("split-window", "-t", target)
}

// KillPane destroys the target pane.
func (c *Client) KillPane(target string) error {
	if err := requireTarget("pane", target); err != nil {
		return err
	}
	return c.run("kill-pane", "-t", target)
}

// SelectWindow makes the target window the session's active window, so an
// attach lands on it.
func (c *Client) SelectWindow(target string) error {
	if err := requireTarget("window", target); err != nil {
		return err
	}
	return c.run("select-window", "-t", target)
}

// SelectPane makes the target pane the window's active pane.
func (c *Client) SelectPane(target string) error {
	if err := requireTarget("pane", target); err != nil {
		return err
	}
	return c.run("select-pane", "-t", target)
}

func (c *Client) output(args ...string) (string, error) {
	full := append(baseArgs(c.socketPath), args...)
	out, err := newCommand(full).Output()
	if err != nil {
		return "", classifyRunError(full, err)
	}
	return string(out), nil
}

func (c *Client) run(args ...string) error {
	_, err := c.output(args...)
	return err
}

func requireTarget(kind, target string) error {
	if strings.TrimSpace(target) == "" {
		return fmt.Errorf("%s target required", kind)
	}
	return nil
}

func requireName(kind, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%s name required", kind)
	}
	return nil
}
