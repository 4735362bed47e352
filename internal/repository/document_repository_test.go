package repository

import (
	"context"
	"testing"

	"lumen/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestDocumentRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("append preserves insertion order", func(t *testing.T) {
		repo := NewDocumentRepository(zap.NewNop())
		userID := uuid.New()

		merchants := []string{"Starbucks", "Target", "Amazon"}
		for _, merchant := range merchants {
			doc := &models.Document{ID: uuid.New(), UserID: userID, Merchant: merchant}
			if err := repo.Append(ctx, doc); err != nil {
				t.Fatalf("Append returned error: %v", err)
			}
		}

		docs, err := repo.ListByUserID(ctx, userID)
		if err != nil {
			t.Fatalf("ListByUserID returned error: %v", err)
		}
		if len(docs) != len(merchants) {
			t.Fatalf("expected %d documents, got %d", len(merchants), len(docs))
		}
		for i, merchant := range merchants {
			if docs[i].Merchant != merchant {
				t.Errorf("position %d = %q, want %q", i, docs[i].Merchant, merchant)
			}
		}
	})

	t.Run("users are isolated", func(t *testing.T) {
		repo := NewDocumentRepository(zap.NewNop())
		alice, bob := uuid.New(), uuid.New()

		if err := repo.Append(ctx, &models.Document{ID: uuid.New(), UserID: alice, Merchant: "Target"}); err != nil {
			t.Fatalf("Append returned error: %v", err)
		}

		docs, err := repo.ListByUserID(ctx, bob)
		if err != nil {
			t.Fatalf("ListByUserID returned error: %v", err)
		}
		if len(docs) != 0 {
			t.Errorf("expected no documents for bob, got %d", len(docs))
		}
	})

	t.Run("duplicate content is kept", func(t *testing.T) {
		// Two uploads of unrelated files may coincidentally extract the same
		// catalog entry; both stay.
		repo := NewDocumentRepository(zap.NewNop())
		userID := uuid.New()

		for i := 0; i < 2; i++ {
			if err := repo.Append(ctx, &models.Document{ID: uuid.New(), UserID: userID, Merchant: "Starbucks", Total: 13.25}); err != nil {
				t.Fatalf("Append returned error: %v", err)
			}
		}

		docs, _ := repo.ListByUserID(ctx, userID)
		if len(docs) != 2 {
			t.Errorf("expected 2 documents, got %d", len(docs))
		}
	})
}
