package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/avetrov/contentpulse/internal/model"
	"github.com/avetrov/contentpulse/internal/service"
)

type StatsHandler struct {
	svc            *service.ContentService
	defaultChannel string
	llmConfigured  bool
}

func NewStatsHandler(svc *service.ContentService, defaultChannel string, llmConfigured bool) *StatsHandler {
	return &StatsHandler{svc: svc, defaultChannel: defaultChannel, llmConfigured: llmConfigured}
}

// GetStats handles GET /api/stats
func (h *StatsHandler) GetStats(c fiber.Ctx) error {
	return c.JSON(model.StatsResponse{
		StoredItems:    h.svc.StoredCount(c.Context()),
		DefaultChannel: h.defaultChannel,
		LLMConfigured:  h.llmConfigured,
		CacheBackend:   h.svc.CacheBackend(),
	})
}
