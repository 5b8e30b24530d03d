// filepath: internal/api/handlers/main_test.go
package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hcsl_site/internal/api"
	"hcsl_site/internal/api/handlers"
	"hcsl_site/internal/config"
	"hcsl_site/internal/revalidate"
	"hcsl_site/internal/services/auth"
	"hcsl_site/internal/services/mocks"
)

// testMocks bundles the mocked services behind a test server. Views is the
// real cache shared with the handlers, so tests can invalidate it the way
// the services do.
type testMocks struct {
	Content *mocks.MockContentService
	Careers *mocks.MockCareersService
	Team    *mocks.MockTeamService
	Events  *mocks.MockEventService
	Stats   *mocks.MockStatsService
	Schema  *mocks.MockSchemaService
	Uploads *mocks.MockUploader
	Views   *revalidate.Cache
}

// setupHandlerTest builds a server over the production router with mocked
// services and a real session service, and returns a cookie that passes the
// admin gate.
func setupHandlerTest(t *testing.T) (*httptest.Server, *testMocks, *http.Cookie) {
	t.Helper()

	cfg := &config.Config{
		Auth: config.AuthConfig{
			AdminDomain:          "hscgroup.org",
			SessionDurationHours: 1,
		},
		AdminPassword: "password",
		SessionSecret: "handler-test-secret",
	}

	m := &testMocks{
		Content: new(mocks.MockContentService),
		Careers: new(mocks.MockCareersService),
		Team:    new(mocks.MockTeamService),
		Events:  new(mocks.MockEventService),
		Stats:   new(mocks.MockStatsService),
		Schema:  new(mocks.MockSchemaService),
		Uploads: new(mocks.MockUploader),
		Views:   revalidate.New(time.Minute),
	}

	sessions, err := auth.NewSessionService(cfg)
	require.NoError(t, err)

	h := handlers.NewHandlers(m.Content, m.Careers, m.Team, m.Events, m.Stats, m.Schema, m.Uploads, sessions, m.Views, cfg)
	router := api.SetupRouter(h, auth.NewMiddleware(sessions), t.TempDir())

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	token, _, err := sessions.Login("admin@hscgroup.org", "password")
	require.NoError(t, err)
	cookie := &http.Cookie{Name: auth.CookieName, Value: token}

	return server, m, cookie
}

// doJSON sends a request with an optional body and cookie.
func doJSON(t *testing.T, method, url, body string, cookie *http.Cookie) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}
