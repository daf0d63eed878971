package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/avetrov/contentpulse/internal/handler"
	"github.com/avetrov/contentpulse/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Sync   *handler.SyncHandler
	Chat   *handler.ChatHandler
	Stats  *handler.StatsHandler
	Health *handler.HealthHandler
}

// Setup configures the middleware stack and all routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(handler.MetricsMiddleware())
	app.Use(middleware.NewCORS(corsOrigins))

	// Chat page and liveness
	app.Get("/", handler.Index)
	app.Get("/ping", h.Health.Ping)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)

	// Core endpoints
	app.Post("/sync", h.Sync.Sync, middleware.NewSyncRateLimiter().Handler())
	app.Post("/chat", h.Chat.Chat, middleware.NewChatRateLimiter().Handler())

	// API routes
	api := app.Group("/api")
	api.Get("/stats", h.Stats.GetStats, middleware.NewStatsRateLimiter().Handler())

	// Prometheus
	app.Get("/metrics", handler.MetricsHandler())
}
