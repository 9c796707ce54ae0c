package media

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puneethk/portfolio-backend/internal/telemetry/metrics"
)

func setupMediaRouterForTests(t *testing.T) *mux.Router {
	t.Helper()

	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	r := mux.NewRouter()
	NewHandler(store, metrics.NewTestManager()).SetupRoutes(r)
	return r
}

func newUploadRequest(t *testing.T, fieldName, fileName, content string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(fieldName, fileName)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestMediaHandler_UploadAndServe(t *testing.T) {
	r := setupMediaRouterForTests(t)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, newUploadRequest(t, "file", "banner.jpg", "jpeg-bytes"))
	require.Equal(t, http.StatusOK, rr.Code)

	var uploadResp struct {
		URL string `json:"url"`
		ID  string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &uploadResp))
	assert.Equal(t, fmt.Sprintf("/api/media/%s", uploadResp.ID), uploadResp.URL)

	// the returned url serves the uploaded bytes back
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", uploadResp.URL, nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "jpeg-bytes", rr.Body.String())
}

func TestMediaHandler_Upload_MissingFile(t *testing.T) {
	r := setupMediaRouterForTests(t)

	// wrong field name: the handler only reads "file"
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, newUploadRequest(t, "attachment", "banner.jpg", "jpeg-bytes"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error": "No file provided"}`, rr.Body.String())
}

func TestMediaHandler_Get_Errors(t *testing.T) {
	r := setupMediaRouterForTests(t)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/api/media/98765", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/api/media/not-a-number", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
