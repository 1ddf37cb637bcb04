package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withCookies copies the cookies a previous response set onto a new request,
// the way a browser would.
func withCookies(t *testing.T, rec *httptest.ResponseRecorder, method, target string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	// A later Set-Cookie for the same name replaces the earlier one, the way
	// a browser stores them.
	latest := map[string]*http.Cookie{}
	var order []string
	for _, c := range rec.Result().Cookies() {
		if _, seen := latest[c.Name]; !seen {
			order = append(order, c.Name)
		}
		latest[c.Name] = c
	}
	for _, name := range order {
		req.AddCookie(latest[name])
	}
	return req
}

func TestTokenRoundTrip(t *testing.T) {
	m := NewSessionManager("test-session-secret")

	rec := httptest.NewRecorder()
	m.SetToken(rec, httptest.NewRequest(http.MethodPost, "/login", nil), "jwt-token")

	req := withCookies(t, rec, http.MethodGet, "/home")
	assert.Equal(t, "jwt-token", m.Token(req))
}

func TestTokenMissingForAnonymousVisitor(t *testing.T) {
	m := NewSessionManager("test-session-secret")
	assert.Empty(t, m.Token(httptest.NewRequest(http.MethodGet, "/home", nil)))
}

func TestClearDropsToken(t *testing.T) {
	m := NewSessionManager("test-session-secret")

	rec := httptest.NewRecorder()
	m.SetToken(rec, httptest.NewRequest(http.MethodPost, "/login", nil), "jwt-token")

	req := withCookies(t, rec, http.MethodPost, "/logout")
	rec2 := httptest.NewRecorder()
	m.Clear(rec2, req)

	// The cleared cookie must be expired
	cookies := rec2.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestFlashesArePoppedOnce(t *testing.T) {
	m := NewSessionManager("test-session-secret")

	rec := httptest.NewRecorder()
	m.AddFlash(rec, httptest.NewRequest(http.MethodPost, "/room/save", nil), Flash{
		Level: "success", Title: "Room added", Text: "The room has been saved",
	})

	req := withCookies(t, rec, http.MethodGet, "/room")
	rec2 := httptest.NewRecorder()
	flashes := m.Flashes(rec2, req)

	require.Len(t, flashes, 1)
	assert.Equal(t, "Room added", flashes[0].Title)

	// The pop was saved back; a later request sees nothing
	req2 := withCookies(t, rec2, http.MethodGet, "/room")
	assert.Empty(t, m.Flashes(httptest.NewRecorder(), req2))
}

func TestFlashQueuedAfterClearSurvives(t *testing.T) {
	m := NewSessionManager("test-session-secret")

	login := httptest.NewRecorder()
	m.SetToken(login, httptest.NewRequest(http.MethodPost, "/login", nil), "stale-token")

	req := withCookies(t, login, http.MethodGet, "/")
	rec := httptest.NewRecorder()
	m.Clear(rec, req)
	m.AddFlash(rec, req, Flash{Level: "info", Title: "Session expired", Text: "Please sign in again"})

	// The expiry from the clear must not swallow the queued notice
	next := withCookies(t, rec, http.MethodGet, "/")
	flashes := m.Flashes(httptest.NewRecorder(), next)
	require.Len(t, flashes, 1)
	assert.Equal(t, "Session expired", flashes[0].Title)
	assert.Empty(t, m.Token(next))
}

func TestTamperedCookieYieldsFreshSession(t *testing.T) {
	m := NewSessionManager("test-session-secret")

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.AddCookie(&http.Cookie{Name: "horplus_console", Value: "tampered-value"})
	assert.Empty(t, m.Token(req))
}

func TestFormConfirmer(t *testing.T) {
	confirmed := httptest.NewRequest(http.MethodPost, "/room/delete", nil)
	confirmed.PostForm = map[string][]string{"confirm": {"true"}}
	assert.True(t, (&FormConfirmer{R: confirmed}).Confirm("t", "x"))

	declined := httptest.NewRequest(http.MethodPost, "/room/delete", nil)
	declined.PostForm = map[string][]string{"confirm": {""}}
	assert.False(t, (&FormConfirmer{R: declined}).Confirm("t", "x"))

	absent := httptest.NewRequest(http.MethodPost, "/room/delete", nil)
	absent.PostForm = map[string][]string{}
	assert.False(t, (&FormConfirmer{R: absent}).Confirm("t", "x"))
}
