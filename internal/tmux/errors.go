package tmux

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

var (
	// ErrToolUnavailable reports that the tmux binary could not be found or
	// executed. Fatal at startup; callers should not retry.
	ErrToolUnavailable = errors.New("tmux binary not available")

	// ErrServerUnreachable reports that no tmux server is running behind the
	// configured socket. Distinct from a reachable server with zero sessions.
	ErrServerUnreachable = errors.New("no tmux server running")
)

// ParseError describes a malformed line in a list command's output.
type ParseError struct {
	Kind   string
	Line   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s line %q: %s", e.Kind, e.Line, e.Reason)
}

// CommandError carries the failure of a tmux invocation, including whatever
// tmux wrote to stderr so the message can be surfaced verbatim.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("tmux %s: %s", strings.Join(e.Args, " "), msg)
}

func (e *CommandError) Unwrap() error { return e.Err }

// classifyRunError maps raw exec failures onto the package error taxonomy.
func classifyRunError(args []string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("%w: %v", ErrToolUnavailable, err)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.TrimSpace(string(exitErr.Stderr))
		if isServerDown(stderr) {
			return fmt.Errorf("%w: %s", ErrServerUnreachable, stderr)
		}
		return &CommandError{Args: args, Stderr: stderr, Err: err}
	}
	return &CommandError{Args: args, Err: err}
}

// isServerDown matches the stderr tmux emits when no server answers on the
// socket. The wording varies across tmux releases.
func isServerDown(stderr string) bool {
	low := strings.ToLower(stderr)
	return strings.Contains(low, "no server running") ||
		strings.Contains(low, "error connecting to")
}
