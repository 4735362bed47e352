package handlers

import (
	"lumen/internal/dto"
	"lumen/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ChatHandler struct {
	docService *service.DocumentService
	assistant  *service.AssistantService
	logger     *zap.Logger
}

func NewChatHandler(docService *service.DocumentService, assistant *service.AssistantService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		docService: docService,
		assistant:  assistant,
		logger:     logger,
	}
}

// SendMessage godoc
// @Summary Ask the assistant about your spending
// @Description Resolve a free-text question against the caller's uploaded documents. Always answers; unmatched messages get guidance.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat message"
// @Security Bearer
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/chat [post]
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	docs, err := h.docService.List(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to load documents for chat", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process message",
		})
	}

	reply := h.assistant.Reply(req.Message, docs)
	return c.JSON(dto.ChatResponse{Reply: reply})
}
