package ws

import (
	"log"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
)

// Handler upgrades GET /ws to a websocket and subscribes the connection to
// workspace change events (job_added, matches_created, ...).
type Handler struct {
	hub    *Hub
	logger *log.Logger
}

func NewHandler(hub *Hub, logger *log.Logger) *Handler {
	return &Handler{hub: hub, logger: logger}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleFeed is read-only for the client: incoming messages are discarded
// and the connection only receives events published by the workspace.
func (h *Handler) HandleFeed(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}

	fiberHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			if h.logger != nil {
				h.logger.Printf("WS feed upgrade error | remote=%s error=%v", r.RemoteAddr, err)
			}
			return
		}

		client := NewClient(h.hub, conn)
		h.hub.Register(client)
		if h.logger != nil {
			h.logger.Printf("WS feed subscribed | remote=%s", r.RemoteAddr)
		}
		go client.WritePump()
		go client.ReadPump()
	})

	return fiberHandler(c)
}
