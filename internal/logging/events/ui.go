package events

import "github.com/atomicstack/tmux-deck/internal/logging"

type UITracer struct{}

var UI = UITracer{}

func (UITracer) Focus(column string) {
	logging.Trace("ui.focus", map[string]interface{}{"column": column})
}

func (UITracer) Cursor(column string, index int) {
	logging.Trace("ui.cursor", map[string]interface{}{"column": column, "index": index})
}

func (UITracer) Mode(mode string) {
	logging.Trace("ui.mode", map[string]interface{}{"mode": mode})
}

func (UITracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("ui.error", map[string]interface{}{"error": err.Error()})
}
