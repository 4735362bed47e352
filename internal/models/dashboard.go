package models

import "github.com/google/uuid"

// Transaction is one row in the dashboard's recent-transactions table.
// Derived from an uploaded document or seeded for a new session.
type Transaction struct {
	ID       uuid.UUID `json:"id"`
	Merchant string    `json:"merchant"`
	Category string    `json:"category"`
	Amount   float64   `json:"amount"`
	Date     string    `json:"date"`
}

type InsightType string

const (
	InsightWarning  InsightType = "warning"
	InsightPositive InsightType = "positive"
	InsightNeutral  InsightType = "neutral"
	InsightSparkle  InsightType = "sparkle"
)

// Insight is one card in the AI Insights feed.
type Insight struct {
	ID      uuid.UUID   `json:"id"`
	Type    InsightType `json:"type"`
	Message string      `json:"message"`
}

// Reminder is one upcoming-bill card.
type Reminder struct {
	ID       uuid.UUID `json:"id"`
	Icon     string    `json:"icon"`
	Merchant string    `json:"merchant"`
	Amount   float64   `json:"amount"`
	DueDate  string    `json:"due_date"`
}
