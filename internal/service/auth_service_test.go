package service

import (
	"context"
	"testing"
	"time"

	"lumen/internal/dto"
	"lumen/internal/repository"
	"lumen/pkg/auth"

	"go.uber.org/zap"
)

func newTestAuthService() *AuthService {
	userRepo := repository.NewUserRepository(zap.NewNop())
	jwtManager := auth.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(userRepo, jwtManager, zap.NewNop())
}

func TestAuthService(t *testing.T) {
	ctx := context.Background()

	registerReq := &dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hunter22",
	}

	t.Run("register issues tokens", func(t *testing.T) {
		svc := newTestAuthService()
		resp, err := svc.Register(ctx, registerReq)
		if err != nil {
			t.Fatalf("Register returned error: %v", err)
		}
		if resp.AccessToken == "" || resp.RefreshToken == "" {
			t.Error("expected non-empty token pair")
		}
		if resp.TokenType != "Bearer" {
			t.Errorf("TokenType = %q, want Bearer", resp.TokenType)
		}
		if resp.User.Email != registerReq.Email {
			t.Errorf("User.Email = %q, want %q", resp.User.Email, registerReq.Email)
		}
	})

	t.Run("duplicate register is rejected", func(t *testing.T) {
		svc := newTestAuthService()
		if _, err := svc.Register(ctx, registerReq); err != nil {
			t.Fatalf("first Register returned error: %v", err)
		}
		if _, err := svc.Register(ctx, registerReq); err != ErrUserExists {
			t.Errorf("second Register error = %v, want ErrUserExists", err)
		}
	})

	t.Run("login with correct credentials", func(t *testing.T) {
		svc := newTestAuthService()
		if _, err := svc.Register(ctx, registerReq); err != nil {
			t.Fatalf("Register returned error: %v", err)
		}
		resp, err := svc.Login(ctx, &dto.LoginRequest{Email: registerReq.Email, Password: registerReq.Password})
		if err != nil {
			t.Fatalf("Login returned error: %v", err)
		}
		if resp.User.Username != registerReq.Username {
			t.Errorf("User.Username = %q, want %q", resp.User.Username, registerReq.Username)
		}
	})

	t.Run("login with wrong password", func(t *testing.T) {
		svc := newTestAuthService()
		if _, err := svc.Register(ctx, registerReq); err != nil {
			t.Fatalf("Register returned error: %v", err)
		}
		if _, err := svc.Login(ctx, &dto.LoginRequest{Email: registerReq.Email, Password: "wrong"}); err != ErrInvalidCredentials {
			t.Errorf("Login error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("login with unknown email", func(t *testing.T) {
		svc := newTestAuthService()
		if _, err := svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "x"}); err != ErrInvalidCredentials {
			t.Errorf("Login error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("refresh rotates tokens", func(t *testing.T) {
		svc := newTestAuthService()
		reg, err := svc.Register(ctx, registerReq)
		if err != nil {
			t.Fatalf("Register returned error: %v", err)
		}
		resp, err := svc.RefreshToken(ctx, reg.RefreshToken)
		if err != nil {
			t.Fatalf("RefreshToken returned error: %v", err)
		}
		if resp.AccessToken == "" || resp.RefreshToken == "" {
			t.Error("expected refreshed token pair")
		}
	})

	t.Run("refresh with garbage token", func(t *testing.T) {
		svc := newTestAuthService()
		if _, err := svc.RefreshToken(ctx, "not-a-token"); err != ErrInvalidCredentials {
			t.Errorf("RefreshToken error = %v, want ErrInvalidCredentials", err)
		}
	})
}
