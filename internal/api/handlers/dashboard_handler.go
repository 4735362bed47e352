package handlers

import (
	"lumen/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	dashService *service.DashboardService
	logger      *zap.Logger
}

func NewDashboardHandler(dashService *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashService: dashService,
		logger:      logger,
	}
}

// GetDashboard godoc
// @Summary Dashboard summary
// @Description Transactions, category and daily aggregates, insights and reminders for the caller
// @Tags dashboard
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.dashService.Summary(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to build dashboard", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build dashboard",
		})
	}

	return c.JSON(resp)
}

// SummarizeWeek godoc
// @Summary Summarize my week
// @Description Generate the weekly-summary insight and prepend it to the feed
// @Tags dashboard
// @Produce json
// @Security Bearer
// @Success 201 {object} dto.InsightResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/insights/summarize [post]
func (h *DashboardHandler) SummarizeWeek(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	insight, err := h.dashService.SummarizeWeek(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to summarize week", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to summarize week",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(insight)
}
