package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"cargo-tracking-service/internal/model"
	"cargo-tracking-service/internal/repo"
)

type contextKey struct{}

var userKey contextKey

// UserFrom returns the authenticated user stored by the middleware, if any.
func UserFrom(ctx context.Context) (*model.User, bool) {
	u, ok := ctx.Value(userKey).(*model.User)
	return u, ok
}

// Middleware gates routes behind a bearer token and a role check. Handlers
// never see unauthenticated requests.
type Middleware struct {
	issuer *TokenIssuer
	users  repo.UserRepository
}

func NewMiddleware(issuer *TokenIssuer, users repo.UserRepository) *Middleware {
	return &Middleware{issuer: issuer, users: users}
}

// Require wraps a handler so that only active users with one of the given
// roles may reach it.
func (m *Middleware) Require(roles ...string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if raw == "" || raw == r.Header.Get("Authorization") {
				unauthorized(w, "missing bearer token")
				return
			}

			userID, err := m.issuer.Verify(raw)
			if err != nil {
				unauthorized(w, "invalid token")
				return
			}

			user, err := m.users.FindByID(r.Context(), userID)
			if err != nil || !user.Active {
				unauthorized(w, "user not found or disabled")
				return
			}

			if !roleAllowed(user.Role, roles) {
				slog.Warn("role denied", "user_id", user.ID, "role", user.Role, "path", r.URL.Path)
				forbidden(w, "insufficient role")
				return
			}

			next(w, r.WithContext(context.WithValue(r.Context(), userKey, user)))
		}
	}
}

func roleAllowed(role string, allowed []string) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

func unauthorized(w http.ResponseWriter, msg string) {
	writeError(w, http.StatusUnauthorized, msg)
}

func forbidden(w http.ResponseWriter, msg string) {
	writeError(w, http.StatusForbidden, msg)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
