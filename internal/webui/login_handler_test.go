package webui

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmadash.molview.org/internal/auth"
)

func protectedTestUI(t *testing.T) *http.ServeMux {
	t.Helper()

	mux := http.NewServeMux()
	sessions := auth.NewSessions("test-secret", "admin", "hunter2")
	NewProtectedWebUI(createTestApp(t), sessions).SetRoutes(mux)
	return mux
}

func postLogin(t *testing.T, mux *http.ServeMux, username, password string) *httptest.ResponseRecorder {
	t.Helper()

	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestLoginFormRenders(t *testing.T) {
	mux := protectedTestUI(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Pharmaceutical Molecule Dashboard")
}

func TestLoginWithValidCredentialsSetsSessionAndRedirects(t *testing.T) {
	mux := protectedTestUI(t)

	rec := postLogin(t, mux, "admin", "hunter2")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	var session *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.SessionCookie {
			session = c
		}
	}
	require.NotNil(t, session, "a successful login must set the session cookie")
	assert.NotEmpty(t, session.Value)
	assert.True(t, session.HttpOnly)

	// The issued cookie unlocks the dashboard.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(session)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginWithBadCredentialsIsRejected(t *testing.T) {
	mux := protectedTestUI(t)

	rec := postLogin(t, mux, "admin", "wrong")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid username or password")
	assert.Empty(t, rec.Result().Cookies())
}

func TestLogoutClearsSessionCookie(t *testing.T) {
	mux := protectedTestUI(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/logout", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, auth.SessionCookie, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
