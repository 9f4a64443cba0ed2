package handler

import (
	"context"
	"time"

	"smart-hire/internal/delivery/http/dto"
	"smart-hire/internal/delivery/http/middleware"
	"smart-hire/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

const healthPingTimeout = 2 * time.Second

type HealthChecker interface {
	Ready() bool
	Ping(ctx context.Context) error
	Strategy() string
}

type ClientCounter interface {
	ClientCount() int
}

type HealthHandler struct {
	ws    HealthChecker
	feeds ClientCounter
}

func NewHealthHandler(ws HealthChecker, feeds ClientCounter) *HealthHandler {
	return &HealthHandler{ws: ws, feeds: feeds}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	if h.ws == nil || !h.ws.Ready() {
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Workspace not ready", nil, nil)
	}

	ctx, cancel := context.WithTimeout(c.Context(), healthPingTimeout)
	defer cancel()
	if err := h.ws.Ping(ctx); err != nil {
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Store unavailable", nil, err)
	}

	clients := 0
	if h.feeds != nil {
		clients = h.feeds.ClientCount()
	}
	return response.OK(c, dto.HealthResponse{
		Status:   "ok",
		Store:    "up",
		Strategy: h.ws.Strategy(),
		Clients:  clients,
	})
}
