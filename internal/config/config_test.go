package config

import "testing"

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.SocketPath != "" || cfg.App.Verbose || cfg.Logging.Trace || cfg.Logging.FilePath != "" {
		t.Fatalf("expected quiet defaults, got %+v", cfg)
	}
}

func TestLoadArgsEnvFallback(t *testing.T) {
	environ := []string{
		"TMUX_DECK_SOCKET=/tmp/deck.sock",
		"TMUX_DECK_TRACE=1",
		"TMUX_DECK_LOG_FILE=/tmp/deck.log",
	}
	cfg, err := LoadArgs(nil, environ)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.SocketPath != "/tmp/deck.sock" {
		t.Fatalf("expected socket from environment, got %q", cfg.App.SocketPath)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace enabled from environment")
	}
	if cfg.Logging.FilePath != "/tmp/deck.log" {
		t.Fatalf("expected log file from environment, got %q", cfg.Logging.FilePath)
	}
}

func TestLoadArgsFlagOverridesEnv(t *testing.T) {
	environ := []string{"TMUX_DECK_SOCKET=/tmp/env.sock"}
	cfg, err := LoadArgs([]string{"-socket", "/tmp/flag.sock"}, environ)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.SocketPath != "/tmp/flag.sock" {
		t.Fatalf("expected flag to win, got %q", cfg.App.SocketPath)
	}
}

func TestLoadArgsBadBoolFallsBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"TMUX_DECK_TRACE=banana"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Logging.Trace {
		t.Fatalf("expected unparseable bool to fall back to default")
	}
}

func TestLoadArgsUnknownFlag(t *testing.T) {
	if _, err := LoadArgs([]string{"-bogus"}, nil); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}
