package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	cacheBackend string
	startAt      time.Time
}

func NewHealthHandler(cacheBackend string) *HealthHandler {
	return &HealthHandler{
		cacheBackend: cacheBackend,
		startAt:      time.Now(),
	}
}

// Live handles GET /health/live — liveness probe.
func (h *HealthHandler) Live(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Ready handles GET /health/ready. The service holds no database of its
// own; readiness reports uptime and which cache backend was wired.
func (h *HealthHandler) Ready(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":         "healthy",
		"cache_backend":  h.cacheBackend,
		"uptime_seconds": int(time.Since(h.startAt).Seconds()),
	})
}

// Ping handles GET /ping — the "is the server alive" check.
func (h *HealthHandler) Ping(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "message": "pong"})
}
