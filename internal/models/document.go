package models

import (
	"time"

	"github.com/google/uuid"
)

// Item is one line entry on an extracted receipt. Price is the line cost,
// not a unit price: Quantity is descriptive only and must never be
// multiplied back in.
type Item struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// Document is one simulated extracted receipt. Immutable after creation;
// Total always equals the sum of item prices.
type Document struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Filename   string    `json:"filename"`
	Merchant   string    `json:"merchant"`
	Date       string    `json:"date"`
	Total      float64   `json:"total"`
	Items      []Item    `json:"items"`
	UploadedAt time.Time `json:"uploaded_at"`
}
