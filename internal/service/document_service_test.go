package service

import (
	"context"
	"strings"
	"testing"

	"lumen/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newTestDocumentService(index int) (*DocumentService, *repository.FeedRepository) {
	logger := zap.NewNop()
	docRepo := repository.NewDocumentRepository(logger)
	feedRepo := repository.NewFeedRepository(logger)
	extractor := NewExtractionService(fixedSelector{index: index}, 0, logger)
	return NewDocumentService(docRepo, feedRepo, extractor, logger), feedRepo
}

func TestDocumentServiceUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("upload appends the extracted document", func(t *testing.T) {
		svc, _ := newTestDocumentService(2)
		userID := uuid.New()

		doc, err := svc.Upload(ctx, userID, "amazon-invoice.pdf")
		if err != nil {
			t.Fatalf("Upload returned error: %v", err)
		}
		if doc.Merchant != "Amazon" {
			t.Errorf("Merchant = %q, want Amazon", doc.Merchant)
		}

		docs, err := svc.List(ctx, userID)
		if err != nil {
			t.Fatalf("List returned error: %v", err)
		}
		if len(docs) != 1 || docs[0].ID != doc.ID {
			t.Errorf("expected the uploaded document in the collection, got %v", docs)
		}
	})

	t.Run("upload derives a transaction from the first item", func(t *testing.T) {
		svc, feedRepo := newTestDocumentService(3)
		userID := uuid.New()

		doc, err := svc.Upload(ctx, userID, "shell.pdf")
		if err != nil {
			t.Fatalf("Upload returned error: %v", err)
		}

		transactions, _ := feedRepo.Transactions(ctx, userID)
		if transactions[0].ID != doc.ID {
			t.Errorf("newest transaction ID = %v, want %v", transactions[0].ID, doc.ID)
		}
		if transactions[0].Category != "Transportation" {
			t.Errorf("Category = %q, want Transportation", transactions[0].Category)
		}
		if transactions[0].Amount != doc.Total {
			t.Errorf("Amount = %v, want %v", transactions[0].Amount, doc.Total)
		}
	})

	t.Run("upload prepends a sparkle insight", func(t *testing.T) {
		svc, feedRepo := newTestDocumentService(4)
		userID := uuid.New()

		if _, err := svc.Upload(ctx, userID, "starbucks.jpg"); err != nil {
			t.Fatalf("Upload returned error: %v", err)
		}

		insights, _ := feedRepo.Insights(ctx, userID)
		first := insights[0]
		if first.Type != "sparkle" {
			t.Errorf("insight type = %q, want sparkle", first.Type)
		}
		if !strings.Contains(first.Message, "starbucks.jpg") || !strings.Contains(first.Message, "Starbucks") {
			t.Errorf("insight message missing upload details: %q", first.Message)
		}
	})

	t.Run("uploads accumulate in completion order", func(t *testing.T) {
		svc, _ := newTestDocumentService(0)
		userID := uuid.New()

		for i := 0; i < 3; i++ {
			if _, err := svc.Upload(ctx, userID, "receipt.pdf"); err != nil {
				t.Fatalf("Upload returned error: %v", err)
			}
		}

		docs, _ := svc.List(ctx, userID)
		if len(docs) != 3 {
			t.Errorf("expected 3 documents, got %d", len(docs))
		}
	})
}
