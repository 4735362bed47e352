package repository

import (
	"context"
	"errors"
	"testing"

	"lumen/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create then look up by email and id", func(t *testing.T) {
		repo := NewUserRepository(zap.NewNop())
		user := &models.User{ID: uuid.New(), Username: "alice", Email: "alice@example.com"}

		if err := repo.Create(ctx, user); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}

		byEmail, err := repo.GetByEmail(ctx, "alice@example.com")
		if err != nil {
			t.Fatalf("GetByEmail returned error: %v", err)
		}
		if byEmail.ID != user.ID {
			t.Errorf("GetByEmail returned user %s, want %s", byEmail.ID, user.ID)
		}

		byID, err := repo.GetByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetByID returned error: %v", err)
		}
		if byID.Email != user.Email {
			t.Errorf("GetByID returned email %q, want %q", byID.Email, user.Email)
		}
	})

	t.Run("duplicate email returns sentinel", func(t *testing.T) {
		repo := NewUserRepository(zap.NewNop())
		email := "bob@example.com"

		if err := repo.Create(ctx, &models.User{ID: uuid.New(), Username: "bob", Email: email}); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}

		err := repo.Create(ctx, &models.User{ID: uuid.New(), Username: "bobby", Email: email})
		if !errors.Is(err, ErrEmailExists) {
			t.Errorf("expected ErrEmailExists, got %v", err)
		}
	})

	t.Run("unknown user returns ErrNotFound", func(t *testing.T) {
		repo := NewUserRepository(zap.NewNop())

		if _, err := repo.GetByEmail(ctx, "nobody@example.com"); !errors.Is(err, ErrNotFound) {
			t.Errorf("GetByEmail: expected ErrNotFound, got %v", err)
		}
		if _, err := repo.GetByID(ctx, uuid.New()); !errors.Is(err, ErrNotFound) {
			t.Errorf("GetByID: expected ErrNotFound, got %v", err)
		}
	})
}
