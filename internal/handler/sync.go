package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/avetrov/contentpulse/internal/resolver"
	"github.com/avetrov/contentpulse/internal/service"
)

const (
	defaultSyncCount = 5
	maxSyncCount     = 20
)

type SyncHandler struct {
	svc *service.ContentService
	res *resolver.Resolver
}

func NewSyncHandler(svc *service.ContentService, res *resolver.Resolver) *SyncHandler {
	return &SyncHandler{svc: svc, res: res}
}

// Sync handles POST /sync?channel=REF&count=N.
// Fetches the channel's recent videos and persists the unseen ones to the
// table store. channel accepts any reference shape (ID, @handle, URL, name)
// and defaults to the configured channel.
func (h *SyncHandler) Sync(c fiber.Ctx) error {
	count := fiber.Query[int](c, "count", defaultSyncCount)
	if count < 1 || count > maxSyncCount {
		return errorResponse(c, fiber.StatusBadRequest, "INVALID_COUNT",
			"count must be between 1 and 20")
	}

	channelID, err := h.res.Resolve(c.Context(), fiber.Query[string](c, "channel"))
	if err != nil {
		return resolveErrorResponse(c, err)
	}

	result, err := h.svc.Sync(c.Context(), channelID, count)
	if err != nil {
		return errorResponse(c, fiber.StatusBadGateway, "UPSTREAM_ERROR",
			"Failed to sync channel content")
	}
	return c.JSON(result)
}

// errorResponse writes the standard error envelope.
func errorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// resolveErrorResponse maps resolver failures onto the error envelope:
// missing configuration and unknown channels are the caller's problem,
// anything else is an upstream failure.
func resolveErrorResponse(c fiber.Ctx, err error) error {
	var resErr *resolver.ResolutionError
	switch {
	case errors.Is(err, resolver.ErrNoDefault):
		return errorResponse(c, fiber.StatusBadRequest, "NO_DEFAULT_CHANNEL",
			"No channel reference given and no default channel configured")
	case errors.As(err, &resErr):
		return errorResponse(c, fiber.StatusNotFound, "CHANNEL_NOT_FOUND",
			"Channel not found: "+resErr.Reference)
	default:
		return errorResponse(c, fiber.StatusBadGateway, "UPSTREAM_ERROR",
			"Channel lookup failed")
	}
}
