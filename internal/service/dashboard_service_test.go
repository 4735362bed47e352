package service

import (
	"context"
	"math"
	"strings"
	"testing"

	"lumen/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestDashboardSummary(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("aggregates the seeded table", func(t *testing.T) {
		feedRepo := repository.NewFeedRepository(logger)
		svc := NewDashboardService(feedRepo, logger)
		userID := uuid.New()

		resp, err := svc.Summary(ctx, userID)
		if err != nil {
			t.Fatalf("Summary returned error: %v", err)
		}
		if resp.TransactionCount != 5 {
			t.Errorf("TransactionCount = %d, want 5", resp.TransactionCount)
		}
		want := 127.43 + 45.20 + 15.99 + 6.75 + 89.32
		if math.Abs(resp.TotalSpending-want) > 1e-9 {
			t.Errorf("TotalSpending = %v, want %v", resp.TotalSpending, want)
		}
		if len(resp.ByCategory) != 5 {
			t.Errorf("expected 5 categories, got %d", len(resp.ByCategory))
		}
		if resp.ByCategory[0].Category != "Groceries" {
			t.Errorf("top category = %q, want Groceries", resp.ByCategory[0].Category)
		}
		if len(resp.Reminders) != 3 {
			t.Errorf("expected 3 reminders, got %d", len(resp.Reminders))
		}
	})

	t.Run("daily buckets merge same-day transactions", func(t *testing.T) {
		feedRepo := repository.NewFeedRepository(logger)
		svc := NewDashboardService(feedRepo, logger)
		userID := uuid.New()

		resp, err := svc.Summary(ctx, userID)
		if err != nil {
			t.Fatalf("Summary returned error: %v", err)
		}
		// Netflix and Starbucks both fall on Nov 10.
		if len(resp.Daily) != 4 {
			t.Fatalf("expected 4 daily buckets, got %d", len(resp.Daily))
		}
		for _, bucket := range resp.Daily {
			if bucket.Date == "Nov 10" && math.Abs(bucket.Amount-(15.99+6.75)) > 1e-9 {
				t.Errorf("Nov 10 bucket = %v, want %v", bucket.Amount, 15.99+6.75)
			}
		}
	})

	t.Run("summarize week prepends the insight", func(t *testing.T) {
		feedRepo := repository.NewFeedRepository(logger)
		svc := NewDashboardService(feedRepo, logger)
		userID := uuid.New()

		insight, err := svc.SummarizeWeek(ctx, userID)
		if err != nil {
			t.Fatalf("SummarizeWeek returned error: %v", err)
		}
		if insight.Type != "sparkle" {
			t.Errorf("insight type = %q, want sparkle", insight.Type)
		}
		if !strings.Contains(insight.Message, "This week you spent") {
			t.Errorf("unexpected summary message: %q", insight.Message)
		}

		resp, _ := svc.Summary(ctx, userID)
		if resp.Insights[0].ID != insight.ID {
			t.Errorf("expected summary insight first in feed")
		}
	})
}
