package handler

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/avetrov/contentpulse/internal/model"
	"github.com/avetrov/contentpulse/internal/service"
)

type ChatHandler struct {
	svc *service.ChatService
}

func NewChatHandler(svc *service.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// Chat handles POST /chat. Answers an analytics question over the collected
// content, optionally scoped to a channel reference.
func (h *ChatHandler) Chat(c fiber.Ctx) error {
	var req model.ChatRequest
	if err := c.Bind().Body(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "INVALID_BODY",
			"Request body must be JSON with a question field")
	}
	if strings.TrimSpace(req.Question) == "" {
		return errorResponse(c, fiber.StatusBadRequest, "MISSING_QUESTION",
			"question is required")
	}

	answer, err := h.svc.Answer(c.Context(), req.Question, req.Channel)
	if err != nil {
		return resolveErrorResponse(c, err)
	}
	return c.JSON(model.ChatResponse{Answer: answer})
}
