package events

import "github.com/ispmail/userctl/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Resize(lines, cols int) {
	logging.Trace("app.resize", map[string]interface{}{"lines": lines, "cols": cols})
}

func (AppTracer) Exit(committed bool) {
	logging.Trace("app.exit", map[string]interface{}{"committed": committed})
}

func (AppTracer) Fatal(err error) {
	if err == nil {
		return
	}
	logging.Trace("app.fatal", map[string]interface{}{"error": err.Error()})
}
