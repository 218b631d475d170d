package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/campdoc/campdoc-api/internal/config"
	"github.com/campdoc/campdoc-api/internal/database"
	"github.com/campdoc/campdoc-api/internal/models"
)

func TestIssueAndVerifyToken(t *testing.T) {
	cfg := &config.Config{AccessTokenSecret: "test-secret"}
	handler := NewAuthHandler(cfg, database.NewMemoryStore())

	token, err := handler.IssueToken("a@x.com")
	if err != nil {
		t.Fatalf("IssueToken returned error: %v", err)
	}

	claims, err := handler.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken returned error: %v", err)
	}
	if claims.Email != "a@x.com" {
		t.Errorf("expected email a@x.com, got %q", claims.Email)
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 0 || remaining > TokenDuration {
		t.Errorf("expected expiry within %v, got %v", TokenDuration, remaining)
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	cfg := &config.Config{AccessTokenSecret: "test-secret"}
	handler := NewAuthHandler(cfg, database.NewMemoryStore())

	// Craft a token that expired an hour ago.
	claims := Claims{
		Email: "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, _ := token.SignedString([]byte(cfg.AccessTokenSecret))

	if _, err := handler.VerifyToken(tokenString); err != ErrExpiredToken {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestVerifyToken_Invalid(t *testing.T) {
	cfg := &config.Config{AccessTokenSecret: "test-secret"}
	handler := NewAuthHandler(cfg, database.NewMemoryStore())

	t.Run("WrongSecret", func(t *testing.T) {
		other := NewAuthHandler(&config.Config{AccessTokenSecret: "other-secret"}, nil)
		tokenString, _ := other.IssueToken("a@x.com")

		if _, err := handler.VerifyToken(tokenString); err != ErrInvalidToken {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("Malformed", func(t *testing.T) {
		if _, err := handler.VerifyToken("not.a.token"); err != ErrInvalidToken {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}

func TestIsAdmin(t *testing.T) {
	cfg := &config.Config{AccessTokenSecret: "test-secret"}
	store := database.NewMemoryStore()
	handler := NewAuthHandler(cfg, store)
	ctx := context.Background()

	store.Users.InsertOne(ctx, models.User{
		ID:    primitive.NewObjectID(),
		Email: "admin@x.com",
		Role:  models.RoleAdmin,
	})
	store.Users.InsertOne(ctx, models.User{
		ID:    primitive.NewObjectID(),
		Email: "user@x.com",
	})

	cases := []struct {
		email string
		want  bool
	}{
		{"admin@x.com", true},
		{"user@x.com", false},
		{"missing@x.com", false},
	}
	for _, tc := range cases {
		got, err := handler.IsAdmin(ctx, tc.email)
		if err != nil {
			t.Fatalf("IsAdmin(%s) returned error: %v", tc.email, err)
		}
		if got != tc.want {
			t.Errorf("IsAdmin(%s) = %v, want %v", tc.email, got, tc.want)
		}
	}
}
