package repository

import (
	"context"
	"testing"

	"lumen/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestFeedRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh user gets the demo seed", func(t *testing.T) {
		repo := NewFeedRepository(zap.NewNop())
		userID := uuid.New()

		transactions, err := repo.Transactions(ctx, userID)
		if err != nil {
			t.Fatalf("Transactions returned error: %v", err)
		}
		if len(transactions) != 5 {
			t.Errorf("expected 5 seeded transactions, got %d", len(transactions))
		}
		if transactions[0].Merchant != "Whole Foods" {
			t.Errorf("first seeded transaction = %q, want Whole Foods", transactions[0].Merchant)
		}

		insights, _ := repo.Insights(ctx, userID)
		if len(insights) != 3 {
			t.Errorf("expected 3 seeded insights, got %d", len(insights))
		}

		reminders, _ := repo.Reminders(ctx, userID)
		if len(reminders) != 3 {
			t.Errorf("expected 3 seeded reminders, got %d", len(reminders))
		}
		if reminders[0].Merchant != "Edison Electric" {
			t.Errorf("first reminder = %q, want Edison Electric", reminders[0].Merchant)
		}
	})

	t.Run("prepended transaction comes first", func(t *testing.T) {
		repo := NewFeedRepository(zap.NewNop())
		userID := uuid.New()

		tx := models.Transaction{ID: uuid.New(), Merchant: "Amazon", Category: "Electronics", Amount: 110.95, Date: "11/14/2025"}
		if err := repo.PrependTransaction(ctx, userID, tx); err != nil {
			t.Fatalf("PrependTransaction returned error: %v", err)
		}

		transactions, _ := repo.Transactions(ctx, userID)
		if len(transactions) != 6 {
			t.Fatalf("expected 6 transactions, got %d", len(transactions))
		}
		if transactions[0].Merchant != "Amazon" {
			t.Errorf("first transaction = %q, want Amazon", transactions[0].Merchant)
		}
	})

	t.Run("prepended insight comes first", func(t *testing.T) {
		repo := NewFeedRepository(zap.NewNop())
		userID := uuid.New()

		insight := models.Insight{ID: uuid.New(), Type: models.InsightSparkle, Message: "new"}
		if err := repo.PrependInsight(ctx, userID, insight); err != nil {
			t.Fatalf("PrependInsight returned error: %v", err)
		}

		insights, _ := repo.Insights(ctx, userID)
		if insights[0].Message != "new" {
			t.Errorf("first insight = %q, want new", insights[0].Message)
		}
	})

	t.Run("feeds are per-user", func(t *testing.T) {
		repo := NewFeedRepository(zap.NewNop())
		alice, bob := uuid.New(), uuid.New()

		if err := repo.PrependInsight(ctx, alice, models.Insight{ID: uuid.New(), Type: models.InsightSparkle, Message: "alice only"}); err != nil {
			t.Fatalf("PrependInsight returned error: %v", err)
		}

		insights, _ := repo.Insights(ctx, bob)
		for _, insight := range insights {
			if insight.Message == "alice only" {
				t.Error("bob sees alice's insight")
			}
		}
	})
}
