package ws

import (
	"encoding/json"
	"time"
)

type Event struct {
	Type      string `json:"type"`
	Data      any    `json:"data,omitempty"`
	Timestamp string `json:"timestamp"`
}

// Publish broadcasts a workspace change to every connected client.
func (h *Hub) Publish(eventType string, data any) {
	if h == nil {
		return
	}
	b, err := json.Marshal(Event{
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		if h.logger != nil {
			h.logger.Printf("WS encode error | type=%s error=%v", eventType, err)
		}
		return
	}
	h.Broadcast(b)
}
