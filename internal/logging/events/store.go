package events

import "github.com/ispmail/userctl/internal/logging"

type StoreTracer struct{}

var Store = StoreTracer{}

func (StoreTracer) Open(path string) {
	logging.Trace("store.open", map[string]interface{}{"path": path})
}

func (StoreTracer) Mutation(op, target string) {
	logging.Trace("store.mutation", map[string]interface{}{"op": op, "target": target})
}

func (StoreTracer) Commit() {
	logging.Trace("store.commit", nil)
}

func (StoreTracer) Discard() {
	logging.Trace("store.discard", nil)
}

func (StoreTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("store.error", map[string]interface{}{"error": err.Error()})
}
