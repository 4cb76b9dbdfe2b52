package events

import "github.com/atomicstack/tmux-deck/internal/logging"

type WindowTracer struct{}

var Window = WindowTracer{}

func (WindowTracer) Refresh(session string, count int) {
	logging.Trace("window.refresh", map[string]interface{}{"session": session, "count": count})
}

func (WindowTracer) Create(session, name string) {
	logging.Trace("window.create", map[string]interface{}{"session": session, "name": name})
}

func (WindowTracer) Rename(target, name string) {
	logging.Trace("window.rename", map[string]interface{}{"target": target, "name": name})
}

func (WindowTracer) Kill(target string) {
	logging.Trace("window.kill", map[string]interface{}{"target": target})
}

func (WindowTracer) Attach(session, window string) {
	logging.Trace("window.attach", map[string]interface{}{"session": session, "window": window})
}

func (WindowTracer) Cancel(action string, reason CancelReason) {
	logging.Trace("window.cancel", map[string]interface{}{"action": action, "reason": string(reason)})
}
