package repository

import (
	"context"
	"sync"

	"lumen/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// feed is one user's dashboard state: the recent-transactions table, the
// AI Insights column, and the smart-reminder cards.
type feed struct {
	transactions []models.Transaction
	insights     []models.Insight
	reminders    []models.Reminder
}

// FeedRepository keeps per-user dashboard feeds in memory. Every user
// starts from the same demo seed; uploads and summaries prepend entries.
type FeedRepository struct {
	mu     sync.Mutex
	byUser map[uuid.UUID]*feed
	logger *zap.Logger
}

func NewFeedRepository(logger *zap.Logger) *FeedRepository {
	return &FeedRepository{
		byUser: make(map[uuid.UUID]*feed),
		logger: logger,
	}
}

// ensure returns the user's feed, seeding the demo state on first access.
// Caller must hold r.mu.
func (r *FeedRepository) ensure(userID uuid.UUID) *feed {
	f, ok := r.byUser[userID]
	if !ok {
		f = seedFeed()
		r.byUser[userID] = f
	}
	return f
}

func (r *FeedRepository) Transactions(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f := r.ensure(userID)
	out := make([]models.Transaction, len(f.transactions))
	copy(out, f.transactions)
	return out, nil
}

func (r *FeedRepository) Insights(ctx context.Context, userID uuid.UUID) ([]models.Insight, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f := r.ensure(userID)
	out := make([]models.Insight, len(f.insights))
	copy(out, f.insights)
	return out, nil
}

func (r *FeedRepository) Reminders(ctx context.Context, userID uuid.UUID) ([]models.Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f := r.ensure(userID)
	out := make([]models.Reminder, len(f.reminders))
	copy(out, f.reminders)
	return out, nil
}

// PrependTransaction puts a new transaction at the top of the table.
func (r *FeedRepository) PrependTransaction(ctx context.Context, userID uuid.UUID, tx models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f := r.ensure(userID)
	f.transactions = append([]models.Transaction{tx}, f.transactions...)
	return nil
}

// PrependInsight puts a new insight at the top of the feed.
func (r *FeedRepository) PrependInsight(ctx context.Context, userID uuid.UUID, insight models.Insight) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f := r.ensure(userID)
	f.insights = append([]models.Insight{insight}, f.insights...)
	return nil
}

// seedFeed builds the demo dashboard state a fresh session starts with.
func seedFeed() *feed {
	return &feed{
		transactions: []models.Transaction{
			{ID: uuid.New(), Merchant: "Whole Foods", Category: "Groceries", Amount: 127.43, Date: "Nov 12"},
			{ID: uuid.New(), Merchant: "Shell Gas Station", Category: "Transportation", Amount: 45.20, Date: "Nov 11"},
			{ID: uuid.New(), Merchant: "Netflix", Category: "Entertainment", Amount: 15.99, Date: "Nov 10"},
			{ID: uuid.New(), Merchant: "Starbucks", Category: "Dining", Amount: 6.75, Date: "Nov 10"},
			{ID: uuid.New(), Merchant: "Target", Category: "Shopping", Amount: 89.32, Date: "Nov 9"},
		},
		insights: []models.Insight{
			{ID: uuid.New(), Type: models.InsightWarning, Message: "Heads Up: Your grocery spending is 20% higher than last month."},
			{ID: uuid.New(), Type: models.InsightPositive, Message: "Great job! You've saved $150 on dining out this month."},
			{ID: uuid.New(), Type: models.InsightNeutral, Message: "Your utility bills average $164/month over the last 3 months."},
		},
		reminders: []models.Reminder{
			{ID: uuid.New(), Icon: "zap", Merchant: "Edison Electric", Amount: 85.00, DueDate: "Nov 20th"},
			{ID: uuid.New(), Icon: "wifi", Merchant: "Comcast Internet", Amount: 79.99, DueDate: "Nov 22nd"},
			{ID: uuid.New(), Icon: "card", Merchant: "Chase Credit Card", Amount: 250.00, DueDate: "Nov 25th"},
		},
	}
}
