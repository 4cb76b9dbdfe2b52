package events

import "github.com/atomicstack/tmux-deck/internal/logging"

type PaneTracer struct{}

var Pane = PaneTracer{}

func (PaneTracer) Refresh(window string, count int) {
	logging.Trace("pane.refresh", map[string]interface{}{"window": window, "count": count})
}

func (PaneTracer) Split(target string) {
	logging.Trace("pane.split", map[string]interface{}{"target": target})
}

func (PaneTracer) Kill(target string) {
	logging.Trace("pane.kill", map[string]interface{}{"target": target})
}

func (PaneTracer) Cancel(action string, reason CancelReason) {
	logging.Trace("pane.cancel", map[string]interface{}{"action": action, "reason": string(reason)})
}
