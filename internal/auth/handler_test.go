package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puneethk/portfolio-backend/internal/telemetry/metrics"
)

func setupAuthRouterForTests(t *testing.T, store *credentialStoreMock) *mux.Router {
	t.Helper()

	r := mux.NewRouter()
	handler := NewHandler(
		NewService(store),
		NewCookieIssuer(false),
		metrics.NewTestManager(),
	)
	handler.SetupRoutes(r)
	return r
}

func doJSONRequest(t *testing.T, r *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestAuthHandler_Login(t *testing.T) {
	store := NewCredentialStoreMock()
	r := setupAuthRouterForTests(t, store)

	// default password works on a fresh deployment
	rr := doJSONRequest(t, r, "POST", "/api/auth/login", `{"password":"admin123"}`)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success": true}`, rr.Body.String())

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.Equal(t, "true", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	// wrong password: 401, no cookie
	rr = doJSONRequest(t, r, "POST", "/api/auth/login", `{"password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error": "Invalid password"}`, rr.Body.String())
	assert.Empty(t, rr.Result().Cookies())
}

func TestAuthHandler_Login_MalformedRequest(t *testing.T) {
	store := NewCredentialStoreMock()
	r := setupAuthRouterForTests(t, store)

	// missing password field fails fast, before the store is touched
	rr := doJSONRequest(t, r, "POST", "/api/auth/login", `{}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, 0, store.ensures)

	rr = doJSONRequest(t, r, "POST", "/api/auth/login", `{invalid json`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, 0, store.ensures)
}

func TestAuthHandler_Login_StorageUnavailable(t *testing.T) {
	store := NewCredentialStoreMock()
	store.SetFailing(true)
	r := setupAuthRouterForTests(t, store)

	rr := doJSONRequest(t, r, "POST", "/api/auth/login", `{"password":"admin123"}`)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error": "An error occurred"}`, rr.Body.String())
}

func TestAuthHandler_Login_FormFallback(t *testing.T) {
	store := NewCredentialStoreMock()
	r := setupAuthRouterForTests(t, store)

	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader("password=admin123"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success": true}`, rr.Body.String())
}

func TestAuthHandler_Logout_Idempotent(t *testing.T) {
	store := NewCredentialStoreMock()
	r := setupAuthRouterForTests(t, store)

	// no active session: still a success, cookie expired on the response
	for i := 0; i < 2; i++ {
		rr := doJSONRequest(t, r, "GET", "/api/auth/logout", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"success": true}`, rr.Body.String())

		cookies := rr.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, SessionCookieName, cookies[0].Name)
		assert.Empty(t, cookies[0].Value)
		assert.Negative(t, cookies[0].MaxAge)
	}
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	store := NewCredentialStoreMock()
	r := setupAuthRouterForTests(t, store)

	// wrong current password: rejected, nothing mutated
	rr := doJSONRequest(t, r, "POST", "/api/auth/change-password",
		`{"currentPassword":"wrong","newPassword":"x"}`)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error": "Current password is incorrect"}`, rr.Body.String())

	rr = doJSONRequest(t, r, "POST", "/api/auth/login", `{"password":"admin123"}`)
	assert.Equal(t, http.StatusOK, rr.Code)

	// correct current password: round trip
	rr = doJSONRequest(t, r, "POST", "/api/auth/change-password",
		`{"currentPassword":"admin123","newPassword":"newpass1"}`)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success": true}`, rr.Body.String())

	rr = doJSONRequest(t, r, "POST", "/api/auth/login", `{"password":"newpass1"}`)
	assert.Equal(t, http.StatusOK, rr.Code)
	rr = doJSONRequest(t, r, "POST", "/api/auth/login", `{"password":"admin123"}`)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthHandler_ChangePassword_MalformedRequest(t *testing.T) {
	store := NewCredentialStoreMock()
	r := setupAuthRouterForTests(t, store)

	for name, body := range map[string]string{
		"missing current": `{"newPassword":"x"}`,
		"missing new":     `{"currentPassword":"admin123"}`,
		"empty new":       `{"currentPassword":"admin123","newPassword":""}`,
		"invalid json":    `{nope`,
	} {
		t.Run(name, func(t *testing.T) {
			rr := doJSONRequest(t, r, "POST", "/api/auth/change-password", body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
	assert.Equal(t, 0, store.ensures)
}
