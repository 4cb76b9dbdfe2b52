package tmux

import (
	"os/exec"
	"strings"
)

type commander interface {
	Output() ([]byte, error)
}

// Seams swapped out by tests.
var (
	newCommand = func(args []string) commander {
		return realCommand{cmd: exec.Command("tmux", args...)} //nolint:gosec
	}

	lookPath = exec.LookPath
)

type realCommand struct {
	cmd *exec.Cmd
}

// Output leaves cmd.Stderr unset so a non-zero exit surfaces tmux's own
// message through exec.ExitError.Stderr.
func (r realCommand) Output() ([]byte, error) {
	return r.cmd.Output()
}

// Available reports whether the tmux binary can be resolved on PATH.
func Available() error {
	if _, err := lookPath("tmux"); err != nil {
		return ErrToolUnavailable
	}
	return nil
}

func baseArgs(socketPath string) []string {
	if strings.TrimSpace(socketPath) == "" {
		return []string{}
	}
	return []string{"-S", socketPath}
}
