// filepath: internal/services/auth/middleware.go
package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"hcsl_site/internal/logging"
)

type contextKey string

// SessionKey is the request context key holding the authenticated session.
const SessionKey contextKey = "session"

// writeError sends a JSON error response.
func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// Middleware guards the admin API behind the session cookie.
type Middleware struct {
	Sessions SessionService
}

// NewMiddleware creates a new instance of Middleware.
func NewMiddleware(sessions SessionService) *Middleware {
	return &Middleware{Sessions: sessions}
}

// RequireSession rejects requests without a valid session cookie. The public
// site never passes through here; only /api/admin routes are wrapped.
func (m *Middleware) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CookieName)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		session, err := m.Sessions.Validate(cookie.Value)
		if err != nil {
			logging.Log.Warnf("RequireSession: invalid session cookie: %v", err)
			writeError(w, http.StatusUnauthorized, "Invalid or expired session")
			return
		}

		ctx := context.WithValue(r.Context(), SessionKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionFromContext returns the session stored by RequireSession, if any.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(SessionKey).(*Session)
	return session, ok
}
