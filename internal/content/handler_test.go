package content

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puneethk/portfolio-backend/internal/telemetry/metrics"
)

func setupContentRouterForTests(t *testing.T, repo *repoMock) *mux.Router {
	t.Helper()

	r := mux.NewRouter()
	handler := NewHandler(repo, metrics.NewTestManager())
	handler.SetupRoutes(r)
	return r
}

func doContentRequest(t *testing.T, r *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestContentHandler_Get_DefaultWhenNeverSaved(t *testing.T) {
	repo := NewMockSectionsRepo()
	r := setupContentRouterForTests(t, repo)

	rr := doContentRequest(t, r, "GET", "/api/hero", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var hero Hero
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &hero))
	assert.Equal(t, "Puneeth K", hero.Name)
	assert.Equal(t, "I build things for the Web", hero.MainPhrase)

	// serving the default must not create a row
	_, err := repo.Get(t.Context(), "hero")
	assert.ErrorIs(t, err, ErrSectionNotFound)
}

func TestContentHandler_Get_AllSectionsHaveDefaults(t *testing.T) {
	repo := NewMockSectionsRepo()
	r := setupContentRouterForTests(t, repo)

	for _, s := range sections() {
		rr := doContentRequest(t, r, "GET", "/api/"+s.name, "")
		assert.Equal(t, http.StatusOK, rr.Code, "section %s", s.name)
		assert.True(t, json.Valid(rr.Body.Bytes()), "section %s", s.name)
	}
}

func TestContentHandler_UpdateThenGet(t *testing.T) {
	repo := NewMockSectionsRepo()
	r := setupContentRouterForTests(t, repo)

	updated := `{
		"name": "Puneeth K",
		"description": "Builder of web things.",
		"location": "Bengaluru, India",
		"email": "reachout.puneeth@gmail.com",
		"experience": "2 Years"
	}`
	rr := doContentRequest(t, r, "PUT", "/api/about", updated)
	require.Equal(t, http.StatusOK, rr.Code)

	var echoed About
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &echoed))
	assert.Equal(t, "Bengaluru, India", echoed.Location)

	rr = doContentRequest(t, r, "GET", "/api/about", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var stored About
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stored))
	assert.Equal(t, "Bengaluru, India", stored.Location)
	assert.Equal(t, "2 Years", stored.Experience)
}

func TestContentHandler_Update_ReplacesWholeDocument(t *testing.T) {
	repo := NewMockSectionsRepo()
	r := setupContentRouterForTests(t, repo)

	first := `{"rotatingTexts": ["Hiring", "Web Development"], "formActionUrl": "https://formspree.io/f/abc"}`
	rr := doContentRequest(t, r, "PUT", "/api/contact", first)
	require.Equal(t, http.StatusOK, rr.Code)

	// second update drops a rotating text; the old value must not survive
	second := `{"rotatingTexts": ["Hiring"], "formActionUrl": "https://formspree.io/f/abc"}`
	rr = doContentRequest(t, r, "PUT", "/api/contact", second)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doContentRequest(t, r, "GET", "/api/contact", "")
	var contact Contact
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &contact))
	assert.Equal(t, []string{"Hiring"}, contact.RotatingTexts)
}

func TestContentHandler_Update_MalformedBody(t *testing.T) {
	repo := NewMockSectionsRepo()
	r := setupContentRouterForTests(t, repo)

	rr := doContentRequest(t, r, "PUT", "/api/skills", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// nothing stored, the default still serves
	rr = doContentRequest(t, r, "GET", "/api/skills", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var skills Skills
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &skills))
	assert.Len(t, skills.Skills, 8)
}

func TestContentHandler_StorageUnavailable(t *testing.T) {
	repo := NewMockSectionsRepo()
	repo.SetFailing(true)
	r := setupContentRouterForTests(t, repo)

	rr := doContentRequest(t, r, "GET", "/api/projects", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error": "An error occurred"}`, rr.Body.String())

	rr = doContentRequest(t, r, "PUT", "/api/projects", `{"sectionTitle": "Projects", "sectionDescription": "x", "projects": []}`)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestContentHandler_UnknownSectionNotRouted(t *testing.T) {
	repo := NewMockSectionsRepo()
	r := setupContentRouterForTests(t, repo)

	rr := doContentRequest(t, r, "GET", "/api/sidebar", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
