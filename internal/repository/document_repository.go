package repository

import (
	"context"
	"sync"

	"lumen/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DocumentRepository holds each user's extracted documents for the
// lifetime of the session. Append-only: no deletion, edit, or expiry.
// Documents land in completion order when uploads interleave.
type DocumentRepository struct {
	mu     sync.RWMutex
	byUser map[uuid.UUID][]*models.Document
	logger *zap.Logger
}

func NewDocumentRepository(logger *zap.Logger) *DocumentRepository {
	return &DocumentRepository{
		byUser: make(map[uuid.UUID][]*models.Document),
		logger: logger,
	}
}

func (r *DocumentRepository) Append(ctx context.Context, doc *models.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byUser[doc.UserID] = append(r.byUser[doc.UserID], doc)
	return nil
}

// ListByUserID returns the user's documents in insertion order. The
// returned slice is a copy; the stored order never changes.
func (r *DocumentRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	docs := r.byUser[userID]
	out := make([]*models.Document, len(docs))
	copy(out, docs)
	return out, nil
}
