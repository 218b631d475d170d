package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

type contextKey string

const claimsKey contextKey = "claims"

// ClaimsFromContext returns the identity attached by the Authenticated gate.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	return claims, ok
}

// ContextWithClaims attaches an identity the way the Authenticated gate does.
func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// Authenticated is an operation middleware requiring a valid bearer token.
// On success the decoded claims are attached to the request context.
func (h *AuthHandler) Authenticated(ctx huma.Context, next func(huma.Context)) {
	authHeader := ctx.Header("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		writeMessage(ctx, http.StatusUnauthorized, "unauthorized access.")
		return
	}

	claims, err := h.VerifyToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		writeMessage(ctx, http.StatusUnauthorized, "unauthorized access.")
		return
	}

	next(huma.WithValue(ctx, claimsKey, claims))
}

// AdminOnly requires Authenticated to have run first; it re-checks the
// caller's role in the users collection on every request.
func (h *AuthHandler) AdminOnly(ctx huma.Context, next func(huma.Context)) {
	claims, ok := ClaimsFromContext(ctx.Context())
	if !ok {
		writeMessage(ctx, http.StatusUnauthorized, "unauthorized access.")
		return
	}

	admin, err := h.IsAdmin(ctx.Context(), claims.Email)
	if err != nil {
		log.Printf("admin lookup for %s failed: %v", claims.Email, err)
		writeMessage(ctx, http.StatusInternalServerError, "internal server error")
		return
	}
	if !admin {
		writeMessage(ctx, http.StatusForbidden, "forbidden access")
		return
	}

	next(ctx)
}

func writeMessage(ctx huma.Context, status int, message string) {
	ctx.SetHeader("Content-Type", "application/json")
	ctx.SetStatus(status)
	json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{"message": message})
}
