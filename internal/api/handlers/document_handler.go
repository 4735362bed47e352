package handlers

import (
	"time"

	"lumen/internal/dto"
	"lumen/internal/models"
	"lumen/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DocumentHandler struct {
	docService *service.DocumentService
	logger     *zap.Logger
}

func NewDocumentHandler(docService *service.DocumentService, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{
		docService: docService,
		logger:     logger,
	}
}

// UploadDocument godoc
// @Summary Upload a bill or receipt
// @Description Upload a receipt or invoice for simulated extraction. Only the filename is used.
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Receipt or invoice file"
// @Security Bearer
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/documents/upload [post]
func (h *DocumentHandler) UploadDocument(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File is required",
		})
	}

	doc, err := h.docService.Upload(c.Context(), userID, file.Filename)
	if err != nil {
		h.logger.Error("Failed to upload document", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload document",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(toDocumentResponse(doc))
}

// ListDocuments godoc
// @Summary List uploaded documents
// @Description Get the caller's extracted documents in upload order
// @Tags documents
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.DocumentResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/documents [get]
func (h *DocumentHandler) ListDocuments(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	docs, err := h.docService.List(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list documents", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list documents",
		})
	}

	out := make([]dto.DocumentResponse, len(docs))
	for i, doc := range docs {
		out[i] = toDocumentResponse(doc)
	}
	return c.JSON(out)
}

func toDocumentResponse(doc *models.Document) dto.DocumentResponse {
	items := make([]dto.ItemResponse, len(doc.Items))
	for i, item := range doc.Items {
		items[i] = dto.ItemResponse{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
			Category: item.Category,
		}
	}
	return dto.DocumentResponse{
		ID:         doc.ID.String(),
		Filename:   doc.Filename,
		Merchant:   doc.Merchant,
		Date:       doc.Date,
		Total:      doc.Total,
		Items:      items,
		UploadedAt: doc.UploadedAt.Format(time.RFC3339),
	}
}

func getUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, ok := c.Locals("userID").(string)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, err
	}

	return userID, nil
}
