// Package middleware provides HTTP middlewares for authentication and logging.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

type ctxKey string

const (
	userKey  ctxKey = "user"
	adminKey ctxKey = "admin"
)

// TokenValidator resolves a bearer token to an identity.
type TokenValidator interface {
	// LookupToken returns the username and admin flag the token belongs to.
	// ok is false when the token is unknown.
	LookupToken(ctx context.Context, token string) (username string, isAdmin bool, ok bool, err error)
}

// TokenAuth enforces bearer-token authentication on the routes it wraps.
//
// It reads the Authorization header, validates the token against the token
// store, and on success places the username and admin flag in the request
// context for downstream handlers. Requests without a valid token get a
// 401 with the API's JSON failure shape.
func TokenAuth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				failJSON(w, http.StatusUnauthorized, "missing bearer token")
				return
			}
			username, isAdmin, ok, err := validator.LookupToken(r.Context(), token)
			if err != nil {
				failJSON(w, http.StatusInternalServerError, "internal error")
				return
			}
			if !ok {
				failJSON(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			ctx := context.WithValue(r.Context(), userKey, username)
			ctx = context.WithValue(ctx, adminKey, isAdmin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects authenticated requests whose identity lacks the admin
// flag. It must run after TokenAuth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAdminFromContext(r.Context()) {
			failJSON(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserFromContext extracts the authenticated username from the request
// context. Returns an empty string if not found.
func GetUserFromContext(ctx context.Context) string {
	if s, ok := ctx.Value(userKey).(string); ok {
		return s
	}
	return ""
}

// IsAdminFromContext reports whether the authenticated identity carries the
// admin flag.
func IsAdminFromContext(ctx context.Context) bool {
	if b, ok := ctx.Value(adminKey).(bool); ok {
		return b
	}
	return false
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}

func failJSON(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": message,
	})
}
