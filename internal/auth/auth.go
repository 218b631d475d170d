package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/campdoc/campdoc-api/internal/config"
	"github.com/campdoc/campdoc-api/internal/database"
	"github.com/campdoc/campdoc-api/internal/models"
)

// TokenDuration is the fixed lifetime of an issued token. There is no
// refresh; an expired token requires a new POST /identity/token.
const TokenDuration = time.Hour

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims is the identity payload embedded in a token. Role is looked up in
// the users collection on every request, never carried in the token.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type AuthHandler struct {
	cfg   *config.Config
	store *database.Store
}

func NewAuthHandler(cfg *config.Config, store *database.Store) *AuthHandler {
	return &AuthHandler{cfg: cfg, store: store}
}

// IssueToken signs a token for the given email with the configured secret.
func (h *AuthHandler) IssueToken(email string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenDuration)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.AccessTokenSecret))
}

// VerifyToken checks signature and expiry and returns the embedded claims.
func (h *AuthHandler) VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(h.cfg.AccessTokenSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// IsAdmin resolves the email against the users collection. The lookup runs
// per request so a role change takes effect on the next call, not when the
// token expires.
func (h *AuthHandler) IsAdmin(ctx context.Context, email string) (bool, error) {
	var user models.User
	err := h.store.Users.FindOne(ctx, bson.M{"email": email}, &user)
	if err == database.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.Role == models.RoleAdmin, nil
}

type IssueTokenInput struct {
	Body struct {
		Email string `json:"email" doc:"Identity to embed in the token"`
	}
}

type IssueTokenOutput struct {
	Body struct {
		Token string `json:"token"`
	}
}

// HandleIssueToken serves POST /identity/token.
func (h *AuthHandler) HandleIssueToken(ctx context.Context, input *IssueTokenInput) (*IssueTokenOutput, error) {
	token, err := h.IssueToken(input.Body.Email)
	if err != nil {
		return nil, err
	}
	resp := &IssueTokenOutput{}
	resp.Body.Token = token
	return resp, nil
}
