package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func TestHub_PublishReachesRegisteredClient(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHub(nil)
	go h.Run(ctx)

	c := &Client{hub: h, send: make(chan []byte, 1)}
	h.Register(c)

	deadline := time.Now().Add(time.Second)
	for h.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("client never registered")
		}
		time.Sleep(time.Millisecond)
	}

	h.Publish("job_added", map[string]string{"id": "job-1"})

	select {
	case msg := <-c.send:
		var evt Event
		if err := json.Unmarshal(msg, &evt); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if evt.Type != "job_added" {
			t.Fatalf("unexpected type: %s", evt.Type)
		}
	case <-time.After(time.Second):
		t.Fatalf("no message delivered")
	}
}

func TestHub_NilIsSafe(t *testing.T) {
	var h *Hub
	h.Publish("job_added", nil)
	if h.ClientCount() != 0 {
		t.Fatalf("expected 0 clients")
	}
}
