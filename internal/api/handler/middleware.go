// internal/api/handler/middleware.go
package handler

import (
	"context"
	"net/http"
	"strings"

	"nilebank/internal/auth"
	"nilebank/internal/domain"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the authenticated caller extracted from the session token.
type Identity struct {
	UserID int64
	Role   domain.Role
}

// IdentityFromContext returns the caller identity set by Authenticator.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// Authenticator validates the Bearer token and stores the caller identity
// in the request context.
func Authenticator(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, "missing or invalid Authorization header", http.StatusUnauthorized)
				return
			}
			claims, err := tokens.Parse(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}
			identity := Identity{UserID: claims.UserID, Role: domain.Role(claims.Role)}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), identityKey, identity)))
		})
	}
}

// RequireAdmin rejects callers whose token does not carry the admin role.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok || identity.Role != domain.RoleAdmin {
			http.Error(w, "admin access required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
