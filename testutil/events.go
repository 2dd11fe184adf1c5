package testutil

import "sync"

// Events records published events in order.
type Events struct {
	mu    sync.Mutex
	Types []string
	Data  []interface{}
}

func (e *Events) Publish(eventType string, data interface{}) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Types = append(e.Types, eventType)
	e.Data = append(e.Data, data)
}
