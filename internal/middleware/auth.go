package middleware

import (
	"context"
	"net/http"

	"horplus-console/internal/auth"
	"horplus-console/internal/web"
)

type contextKey string

const UsernameKey contextKey = "username"
const ElevatedKey contextKey = "elevated"

type AuthMiddleware struct {
	jwtManager *auth.JWTManager
	sessions   *web.SessionManager
}

func NewAuthMiddleware(jwtManager *auth.JWTManager, sessions *web.SessionManager) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		sessions:   sessions,
	}
}

// RequireSession redirects anonymous or expired visitors to the welcome
// page; valid sessions get their claims put on the request context.
func (m *AuthMiddleware) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := m.sessions.Token(r)
		if token == "" {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		claims, err := m.jwtManager.ValidateToken(token)
		if err != nil {
			m.sessions.Clear(w, r)
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		ctx := context.WithValue(r.Context(), UsernameKey, claims.Username)
		ctx = context.WithValue(ctx, ElevatedKey, claims.Elevated)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireElevated additionally demands the server-granted elevation claim;
// without it the visitor lands back on the dashboard to enter the code.
func (m *AuthMiddleware) RequireElevated(next http.Handler) http.Handler {
	return m.RequireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if elevated, ok := r.Context().Value(ElevatedKey).(bool); !ok || !elevated {
			http.Redirect(w, r, "/home", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	}))
}

// GetUsernameFromContext extracts the logged-in username from the request context
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok
}

// IsElevated reports whether the request's session passed the code check
func IsElevated(ctx context.Context) bool {
	elevated, ok := ctx.Value(ElevatedKey).(bool)
	return ok && elevated
}
