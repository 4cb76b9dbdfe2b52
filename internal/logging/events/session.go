package events

import "github.com/atomicstack/tmux-deck/internal/logging"

type SessionTracer struct{}

// CancelReason explains why an in-flight prompt or confirmation was
// abandoned without running its operation.
type CancelReason string

const (
	ReasonEscape  CancelReason = "escape"
	ReasonEmpty   CancelReason = "empty"
	ReasonDecline CancelReason = "decline"
)

var Session = SessionTracer{}

func (SessionTracer) Refresh(count int, lines []string) {
	logging.Trace("session.refresh", map[string]interface{}{"count": count, "entries": lines})
}

func (SessionTracer) Create(name string) {
	logging.Trace("session.create", map[string]interface{}{"name": name})
}

func (SessionTracer) Rename(target, name string) {
	logging.Trace("session.rename", map[string]interface{}{"target": target, "name": name})
}

func (SessionTracer) Kill(target string) {
	logging.Trace("session.kill", map[string]interface{}{"target": target})
}

func (SessionTracer) Attach(target string) {
	logging.Trace("session.attach", map[string]interface{}{"target": target})
}

func (SessionTracer) Cancel(action string, reason CancelReason) {
	logging.Trace("session.cancel", map[string]interface{}{"action": action, "reason": string(reason)})
}
