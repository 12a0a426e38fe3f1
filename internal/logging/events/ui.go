package events

import "github.com/ispmail/userctl/internal/logging"

type UITracer struct{}

var UI = UITracer{}

func (UITracer) WidgetPush(title, breadcrumb string) {
	logging.Trace("widget.push", map[string]interface{}{
		"title":      title,
		"breadcrumb": breadcrumb,
	})
}

func (UITracer) WidgetDone(title string) {
	logging.Trace("widget.done", map[string]interface{}{"title": title})
}

func (UITracer) MenuEnter(menu, item string) {
	logging.Trace("menu.enter", map[string]interface{}{"menu": menu, "item": item})
}

func (UITracer) MenuCursor(menu string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"menu": menu, "cursor": cursor})
}
