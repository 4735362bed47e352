package service

import (
	"context"

	"lumen/internal/dto"
	"lumen/internal/models"
	"lumen/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DashboardService assembles the dashboard view: the transaction table,
// chart aggregates, insights, and reminders.
type DashboardService struct {
	feedRepo *repository.FeedRepository
	logger   *zap.Logger
}

func NewDashboardService(feedRepo *repository.FeedRepository, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		feedRepo: feedRepo,
		logger:   logger,
	}
}

// Summary recomputes all aggregates from the current transaction table.
func (s *DashboardService) Summary(ctx context.Context, userID uuid.UUID) (*dto.DashboardResponse, error) {
	transactions, err := s.feedRepo.Transactions(ctx, userID)
	if err != nil {
		return nil, err
	}
	insights, err := s.feedRepo.Insights(ctx, userID)
	if err != nil {
		return nil, err
	}
	reminders, err := s.feedRepo.Reminders(ctx, userID)
	if err != nil {
		return nil, err
	}

	var total float64
	catIndex := make(map[string]int)
	var byCategory []CategoryAmount
	byDate := make(map[string]float64)
	var dateOrder []string
	for _, tx := range transactions {
		total += tx.Amount
		i, seen := catIndex[tx.Category]
		if !seen {
			i = len(byCategory)
			catIndex[tx.Category] = i
			byCategory = append(byCategory, CategoryAmount{Category: tx.Category})
		}
		byCategory[i].Amount += tx.Amount
		if _, seen := byDate[tx.Date]; !seen {
			dateOrder = append(dateOrder, tx.Date)
		}
		byDate[tx.Date] += tx.Amount
	}

	categories := SortedCategories(byCategory)
	categoryResp := make([]dto.CategorySpendingResponse, len(categories))
	for i, c := range categories {
		categoryResp[i] = dto.CategorySpendingResponse{Category: c.Category, Amount: c.Amount}
	}

	// Daily buckets keep table encounter order: newest uploads first,
	// then the seeded history.
	dailyResp := make([]dto.DailySpendingResponse, len(dateOrder))
	for i, date := range dateOrder {
		dailyResp[i] = dto.DailySpendingResponse{Date: date, Amount: byDate[date]}
	}

	return &dto.DashboardResponse{
		TotalSpending:    total,
		TransactionCount: len(transactions),
		Transactions:     toTransactionResponses(transactions),
		ByCategory:       categoryResp,
		Daily:            dailyResp,
		Insights:         toInsightResponses(insights),
		Reminders:        toReminderResponses(reminders),
	}, nil
}

// SummarizeWeek prepends the canned weekly-summary insight and returns it.
func (s *DashboardService) SummarizeWeek(ctx context.Context, userID uuid.UUID) (*dto.InsightResponse, error) {
	insight := models.Insight{
		ID:      uuid.New(),
		Type:    models.InsightSparkle,
		Message: "📊 This week you spent $284.69 across 8 transactions. Your top category was Groceries ($127.43). You're on track with your budget!",
	}
	if err := s.feedRepo.PrependInsight(ctx, userID, insight); err != nil {
		return nil, err
	}

	resp := toInsightResponse(insight)
	return &resp, nil
}

func toTransactionResponses(transactions []models.Transaction) []dto.TransactionResponse {
	out := make([]dto.TransactionResponse, len(transactions))
	for i, tx := range transactions {
		out[i] = dto.TransactionResponse{
			ID:       tx.ID.String(),
			Merchant: tx.Merchant,
			Category: tx.Category,
			Amount:   tx.Amount,
			Date:     tx.Date,
		}
	}
	return out
}

func toInsightResponse(insight models.Insight) dto.InsightResponse {
	return dto.InsightResponse{
		ID:      insight.ID.String(),
		Type:    string(insight.Type),
		Message: insight.Message,
	}
}

func toInsightResponses(insights []models.Insight) []dto.InsightResponse {
	out := make([]dto.InsightResponse, len(insights))
	for i, insight := range insights {
		out[i] = toInsightResponse(insight)
	}
	return out
}

func toReminderResponses(reminders []models.Reminder) []dto.ReminderResponse {
	out := make([]dto.ReminderResponse, len(reminders))
	for i, r := range reminders {
		out[i] = dto.ReminderResponse{
			ID:       r.ID.String(),
			Icon:     r.Icon,
			Merchant: r.Merchant,
			Amount:   r.Amount,
			DueDate:  r.DueDate,
		}
	}
	return out
}
