package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mosorio19/Lomito/internal/services"
)

type contextKey string

const (
	accountIDKey contextKey = "account_id"
	sessionIDKey contextKey = "session_id"
)

// AuthMiddleware creates a middleware that requires a valid token bound
// to a live session.
func AuthMiddleware(accountService *services.AccountService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := BearerToken(r)
			if !ok {
				respondError(w, "Authorization header required", http.StatusUnauthorized)
				return
			}

			accountID, sessionID, err := accountService.Authenticate(r.Context(), token)
			if err != nil {
				respondError(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), accountIDKey, accountID)
			ctx = context.WithValue(ctx, sessionIDKey, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken extracts the bearer token from the Authorization header.
func BearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// GetAccountID extracts the authenticated account ID from context
func GetAccountID(ctx context.Context) string {
	accountID, ok := ctx.Value(accountIDKey).(string)
	if !ok {
		return ""
	}
	return accountID
}

// GetSessionID extracts the session ID from context
func GetSessionID(ctx context.Context) string {
	sessionID, ok := ctx.Value(sessionIDKey).(string)
	if !ok {
		return ""
	}
	return sessionID
}

// respondError sends an error response
func respondError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write([]byte(`{"error":"` + message + `"}`))
}
