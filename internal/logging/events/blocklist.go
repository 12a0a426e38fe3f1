package events

import "github.com/ispmail/userctl/internal/logging"

type BlocklistTracer struct{}

var Blocklist = BlocklistTracer{}

func (BlocklistTracer) Blocked(address string) {
	logging.Trace("blocklist.add", map[string]interface{}{"address": address})
}

func (BlocklistTracer) Unblocked(address string) {
	logging.Trace("blocklist.remove", map[string]interface{}{"address": address})
}

func (BlocklistTracer) Rebuild(command string, err error) {
	payload := map[string]interface{}{"command": command}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("blocklist.rebuild", payload)
}
