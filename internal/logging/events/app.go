package events

import "github.com/atomicstack/tmux-deck/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Quit() {
	logging.Trace("app.quit", nil)
}

func (AppTracer) Attach(session, window string) {
	logging.Trace("app.attach", map[string]interface{}{"session": session, "window": window})
}
