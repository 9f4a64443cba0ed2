package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"smart-hire/internal/config"
	"smart-hire/internal/delivery/http/middleware"
	"smart-hire/internal/delivery/http/routes"
	v1 "smart-hire/internal/delivery/http/routes/v1"
	"smart-hire/internal/ws"

	"github.com/gofiber/fiber/v3"
)

const startupTimeout = 30 * time.Second

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(cfg config.Config, c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName:   cfg.App.AppName,
		BodyLimit: cfg.App.BodyLimit,
	})

	registerGlobalMiddleware(f, c.Logger)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap wires the container and the HTTP app. The returned cleanup
// releases the store, cache and websocket hub.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	logger := log.Default()
	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	app := New(cfg, c)
	logger.Printf("app name=%s env=%s store=%s strategy=%s status=ready",
		cfg.App.AppName, cfg.App.Environment, cfg.Store.Driver, c.Workspace.Strategy())
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	accessMw := middleware.NewAccessLogMiddleware(logger)
	app.Use(accessMw.Middleware())

	errMw := middleware.NewErrorMiddleware(logger)
	app.Use(errMw.Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil || c == nil {
		return
	}

	handlers := v1.NewHandlers(c.Workspace, c.Hub)
	feed := ws.NewHandler(c.Hub, c.Logger)
	routes.NewRegistry(handlers, feed).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
