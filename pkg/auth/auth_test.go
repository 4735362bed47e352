package auth

import (
	"testing"
	"time"
)

func TestJWTManager(t *testing.T) {
	manager := NewJWTManager("secret", time.Hour, 24*time.Hour)

	t.Run("round trip", func(t *testing.T) {
		token, err := manager.GenerateToken("user-1", "alice", "alice@example.com")
		if err != nil {
			t.Fatalf("GenerateToken returned error: %v", err)
		}

		claims, err := manager.ValidateToken(token)
		if err != nil {
			t.Fatalf("ValidateToken returned error: %v", err)
		}
		if claims.UserID != "user-1" || claims.Username != "alice" || claims.Email != "alice@example.com" {
			t.Errorf("unexpected claims: %+v", claims)
		}
	})

	t.Run("refresh token carries only the user id", func(t *testing.T) {
		token, err := manager.GenerateRefreshToken("user-1")
		if err != nil {
			t.Fatalf("GenerateRefreshToken returned error: %v", err)
		}

		claims, err := manager.ValidateToken(token)
		if err != nil {
			t.Fatalf("ValidateToken returned error: %v", err)
		}
		if claims.UserID != "user-1" || claims.Username != "" {
			t.Errorf("unexpected claims: %+v", claims)
		}
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		token, _ := manager.GenerateToken("user-1", "alice", "alice@example.com")

		other := NewJWTManager("different", time.Hour, 24*time.Hour)
		if _, err := other.ValidateToken(token); err == nil {
			t.Error("expected validation to fail with a different secret")
		}
	})

	t.Run("expired token rejected", func(t *testing.T) {
		short := NewJWTManager("secret", -time.Minute, 24*time.Hour)
		token, _ := short.GenerateToken("user-1", "alice", "alice@example.com")
		if _, err := short.ValidateToken(token); err == nil {
			t.Error("expected validation to fail for expired token")
		}
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "hunter22" {
		t.Error("hash equals plaintext")
	}
	if !CheckPasswordHash("hunter22", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("wrong password accepted")
	}
}
