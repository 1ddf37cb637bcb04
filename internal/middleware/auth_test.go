package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"horplus-console/internal/auth"
	"horplus-console/internal/config"
	"horplus-console/internal/web"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (*AuthMiddleware, *web.SessionManager, *auth.JWTManager) {
	t.Helper()
	cfg := &config.Config{}
	cfg.Session.Secret = "test-session-secret"
	cfg.Session.ExpirationHours = 1
	cfg.Session.Issuer = "horplus-console"

	jwt := auth.NewJWTManager(cfg)
	sessions := web.NewSessionManager(cfg.Session.Secret)
	return NewAuthMiddleware(jwt, sessions), sessions, jwt
}

func requestWithToken(t *testing.T, sessions *web.SessionManager, token string) *http.Request {
	t.Helper()
	rec := httptest.NewRecorder()
	sessions.SetToken(rec, httptest.NewRequest(http.MethodPost, "/login", nil), token)

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestRequireSessionRedirectsAnonymous(t *testing.T) {
	mw, _, _ := newAuthFixture(t)

	called := false
	handler := mw.RequireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/home", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestRequireSessionPutsClaimsOnContext(t *testing.T) {
	mw, sessions, jwt := newAuthFixture(t)
	token, err := jwt.GenerateToken("admin", true)
	require.NoError(t, err)

	var gotUsername string
	var gotElevated bool
	handler := mw.RequireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUsername, _ = GetUsernameFromContext(r.Context())
		gotElevated = IsElevated(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithToken(t, sessions, token))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", gotUsername)
	assert.True(t, gotElevated)
}

func TestRequireSessionClearsInvalidToken(t *testing.T) {
	mw, sessions, _ := newAuthFixture(t)

	called := false
	handler := mw.RequireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithToken(t, sessions, "expired-or-forged"))

	assert.False(t, called)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestRequireElevatedBlocksPlainSession(t *testing.T) {
	mw, sessions, jwt := newAuthFixture(t)
	token, err := jwt.GenerateToken("admin", false)
	require.NoError(t, err)

	called := false
	handler := mw.RequireElevated(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithToken(t, sessions, token))

	assert.False(t, called)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/home", rec.Header().Get("Location"))
}

func TestRequireElevatedPassesElevatedSession(t *testing.T) {
	mw, sessions, jwt := newAuthFixture(t)
	token, err := jwt.GenerateToken("admin", true)
	require.NoError(t, err)

	called := false
	handler := mw.RequireElevated(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithToken(t, sessions, token))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}
