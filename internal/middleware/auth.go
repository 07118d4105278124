package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/tinysteps/backend/internal/auth"
	"github.com/tinysteps/backend/internal/model"
)

type contextKey string

const ClaimsContextKey contextKey = "claims"

// AuthMiddleware verifies bearer device tokens.
type AuthMiddleware struct {
	tokens *auth.Service
}

func NewAuthMiddleware(tokens *auth.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate rejects requests without a valid, unexpired token and places
// the verified claims in the request context for handlers.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorized(w)
			return
		}

		claims, err := m.tokens.Verify(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"success":false,"error":"Unauthorized"}`))
}

// GetClaimsFromContext extracts verified token claims from the context.
func GetClaimsFromContext(ctx context.Context) *model.TokenClaims {
	claims, ok := ctx.Value(ClaimsContextKey).(*model.TokenClaims)
	if !ok {
		return nil
	}
	return claims
}
