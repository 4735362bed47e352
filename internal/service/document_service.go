package service

import (
	"context"
	"fmt"

	"lumen/internal/models"
	"lumen/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DocumentService runs the upload pipeline: simulated extraction, then
// appending the document to the user's collection and deriving the
// dashboard artifacts (a transaction row and a sparkle insight).
type DocumentService struct {
	docRepo    *repository.DocumentRepository
	feedRepo   *repository.FeedRepository
	extraction *ExtractionService
	logger     *zap.Logger
}

func NewDocumentService(
	docRepo *repository.DocumentRepository,
	feedRepo *repository.FeedRepository,
	extraction *ExtractionService,
	logger *zap.Logger,
) *DocumentService {
	return &DocumentService{
		docRepo:    docRepo,
		feedRepo:   feedRepo,
		extraction: extraction,
		logger:     logger,
	}
}

// Upload extracts the file and records the result. Only the filename
// matters; content validity is out of scope.
func (s *DocumentService) Upload(ctx context.Context, userID uuid.UUID, filename string) (*models.Document, error) {
	doc, err := s.extraction.Extract(ctx, userID, filename)
	if err != nil {
		return nil, err
	}

	if err := s.docRepo.Append(ctx, doc); err != nil {
		return nil, err
	}

	category := "Uncategorized"
	if len(doc.Items) > 0 {
		category = doc.Items[0].Category
	}

	tx := models.Transaction{
		ID:       doc.ID,
		Merchant: doc.Merchant,
		Category: category,
		Amount:   doc.Total,
		Date:     doc.Date,
	}
	if err := s.feedRepo.PrependTransaction(ctx, userID, tx); err != nil {
		return nil, err
	}

	insight := models.Insight{
		ID:   uuid.New(),
		Type: models.InsightSparkle,
		Message: fmt.Sprintf("✨ Processed %s! Found %d items from %s totaling $%.2f. Ask the AI assistant for detailed analysis!",
			doc.Filename, len(doc.Items), doc.Merchant, doc.Total),
	}
	if err := s.feedRepo.PrependInsight(ctx, userID, insight); err != nil {
		return nil, err
	}

	s.logger.Info("Document uploaded",
		zap.String("user_id", userID.String()),
		zap.String("document_id", doc.ID.String()),
		zap.String("filename", doc.Filename),
	)

	return doc, nil
}

// List returns the user's documents in upload-completion order.
func (s *DocumentService) List(ctx context.Context, userID uuid.UUID) ([]*models.Document, error) {
	return s.docRepo.ListByUserID(ctx, userID)
}
