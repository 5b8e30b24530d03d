// filepath: internal/services/auth/auth_test.go
package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hcsl_site/internal/config"
	"hcsl_site/internal/services/auth"
	"hcsl_site/internal/shared"
)

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			AdminDomain:          "hscgroup.org",
			SessionDurationHours: 1,
		},
		AdminPassword: "password",
		SessionSecret: "test-secret-for-auth-tests",
	}
}

func TestLogin(t *testing.T) {
	sessions, err := auth.NewSessionService(newTestConfig())
	require.NoError(t, err)

	t.Run("accepts admin domain email with correct password", func(t *testing.T) {
		token, session, err := sessions.Login("jane@hscgroup.org", "password")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "jane@hscgroup.org", session.Email)
		assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, time.Minute)
	})

	t.Run("normalizes email case and whitespace", func(t *testing.T) {
		_, session, err := sessions.Login("  Jane@HSCGroup.org ", "password")
		require.NoError(t, err)
		assert.Equal(t, "jane@hscgroup.org", session.Email)
	})

	t.Run("rejects wrong domain", func(t *testing.T) {
		_, _, err := sessions.Login("jane@example.com", "password")
		assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		_, _, err := sessions.Login("jane@hscgroup.org", "nope")
		assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
	})
}

func TestValidateAndLogout(t *testing.T) {
	sessions, err := auth.NewSessionService(newTestConfig())
	require.NoError(t, err)

	token, _, err := sessions.Login("jane@hscgroup.org", "password")
	require.NoError(t, err)

	session, err := sessions.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "jane@hscgroup.org", session.Email)

	// A token signed with a different secret must not validate.
	otherCfg := newTestConfig()
	otherCfg.SessionSecret = "a-different-secret"
	otherSessions, err := auth.NewSessionService(otherCfg)
	require.NoError(t, err)
	forged, _, err := otherSessions.Login("jane@hscgroup.org", "password")
	require.NoError(t, err)
	_, err = sessions.Validate(forged)
	assert.Error(t, err)

	// Logout revokes the session even though the signature still checks.
	sessions.Logout(token)
	_, err = sessions.Validate(token)
	assert.Error(t, err)

	// Logging out garbage must not panic.
	sessions.Logout("not-a-token")
}

func TestRequireSession(t *testing.T) {
	sessions, err := auth.NewSessionService(newTestConfig())
	require.NoError(t, err)
	middleware := auth.NewMiddleware(sessions)

	r := mux.NewRouter()
	protected := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := auth.SessionFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, "jane@hscgroup.org", session.Email)
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/api/admin/ping", middleware.RequireSession(protected))

	t.Run("no cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	})

	t.Run("invalid cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "garbage"})
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("valid cookie", func(t *testing.T) {
		token, _, err := sessions.Login("jane@hscgroup.org", "password")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("logged out cookie", func(t *testing.T) {
		token, _, err := sessions.Login("jane@hscgroup.org", "password")
		require.NoError(t, err)
		sessions.Logout(token)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
