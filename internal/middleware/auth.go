package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mverdier/coinsplit/internal/auth"
	"github.com/mverdier/coinsplit/internal/domain"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// userIDKey is the context key for storing the authenticated user ID.
const userIDKey contextKey = "user_id"

// GetUserID extracts the authenticated user ID from the context.
func GetUserID(ctx context.Context) (domain.UserID, bool) {
	userID, ok := ctx.Value(userIDKey).(domain.UserID)
	return userID, ok
}

// WithUserID returns a context carrying the given user ID. Intended for
// handler tests that bypass the HTTP layer.
func WithUserID(ctx context.Context, id domain.UserID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// RequireAuth validates the bearer token on every request and stores the
// authenticated user ID in the request context. Requests without a valid
// token are rejected with 401 before reaching the handler.
func RequireAuth(jwtManager *auth.JWTManager, reject func(w http.ResponseWriter, err error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				reject(w, auth.ErrMissingToken)
				return
			}

			parts := strings.Split(header, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				reject(w, auth.ErrInvalidToken)
				return
			}

			userID, err := jwtManager.Validate(parts[1])
			if err != nil {
				reject(w, err)
				return
			}

			ctx := WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
