package routes

import (
	v1 "smart-hire/internal/delivery/http/routes/v1"
	"smart-hire/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	v1   v1.Handlers
	feed *ws.Handler
}

func NewRegistry(handlers v1.Handlers, feed *ws.Handler) *Registry {
	return &Registry{v1: handlers, feed: feed}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
	r.registerFeed(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.v1.Health != nil {
		r.v1.Health.RegisterRoutes(app)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.v1)
}

func (r *Registry) registerFeed(app *fiber.App) {
	if r.feed == nil {
		return
	}
	app.Get("/ws", r.feed.HandleFeed)
}
