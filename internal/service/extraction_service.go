package service

import (
	"context"
	"math/rand"
	"time"

	"lumen/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Selector picks a catalog index. The production implementation is
// uniformly random; tests inject a deterministic one.
type Selector interface {
	Pick(n int) int
}

type randomSelector struct{}

func (randomSelector) Pick(n int) int { return rand.Intn(n) }

// NewRandomSelector returns the production catalog selector.
func NewRandomSelector() Selector { return randomSelector{} }

// ExtractionService simulates OCR extraction of an uploaded receipt:
// after a fixed delay it yields one catalog template as a fresh document.
type ExtractionService struct {
	selector Selector
	delay    time.Duration
	logger   *zap.Logger
}

func NewExtractionService(selector Selector, delay time.Duration, logger *zap.Logger) *ExtractionService {
	return &ExtractionService{
		selector: selector,
		delay:    delay,
		logger:   logger,
	}
}

// Extract produces a document for the uploaded file. Only the filename is
// read; file validity is the upload layer's concern. The returned items
// are copies, so consumers can never mutate the catalog.
func (s *ExtractionService) Extract(ctx context.Context, userID uuid.UUID, filename string) (*models.Document, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	template := extractionCatalog[s.selector.Pick(len(extractionCatalog))]

	items := make([]models.Item, len(template.Items))
	copy(items, template.Items)

	var total float64
	for _, item := range items {
		total += item.Price
	}

	now := time.Now()
	doc := &models.Document{
		ID:         uuid.New(),
		UserID:     userID,
		Filename:   filename,
		Merchant:   template.Merchant,
		Date:       now.Format("1/2/2006"),
		Total:      total,
		Items:      items,
		UploadedAt: now,
	}

	s.logger.Info("Document extracted",
		zap.String("document_id", doc.ID.String()),
		zap.String("merchant", doc.Merchant),
		zap.Int("items", len(doc.Items)),
		zap.Float64("total", doc.Total),
	)

	return doc, nil
}
