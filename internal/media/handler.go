package media

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/puneethk/portfolio-backend/internal/telemetry/metrics"
	"github.com/puneethk/portfolio-backend/internal/telemetry/tracing"
	"github.com/puneethk/portfolio-backend/pkg"
)

// 50 MB
const maxUploadedFileSize = 50 << 20

type Store interface {
	Save(ctx context.Context, params SaveFileParams) (int64, error)
	Get(ctx context.Context, id int64) (*File, error)
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	store   Store
	metrics *metrics.Manager
}

func NewHandler(store Store, metrics *metrics.Manager) *Handler {
	return &Handler{
		store:   store,
		metrics: metrics,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/upload", handler.handleUpload).Methods("POST", "OPTIONS").Name("upload")
	router.HandleFunc("/api/media/{id}", handler.handleGet).Methods("GET").Name("get-media")
}

func (handler *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "mediaHandler.upload")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	if err := r.ParseMultipartForm(maxUploadedFileSize); err != nil {
		log.Errorf("upload, parse multipart form: %s", err)
		http.Error(w, "internal error or file too big", http.StatusInternalServerError)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		pkg.WriteResponse(w, pkg.ContentType.JSON, `{"error": "No file provided"}`, http.StatusBadRequest)
		return
	}
	defer file.Close()

	fileType := "unknown"
	if t, ok := fileHeader.Header["Content-Type"]; ok && len(t) > 0 {
		fileType = t[0]
	}

	log.Tracef("new upload incoming: %s [%d bytes]", fileHeader.Filename, fileHeader.Size)

	newFileId, err := handler.store.Save(ctx, SaveFileParams{
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		FileType: fileType,
		File:     file,
	})
	if err != nil {
		log.Errorf("upload, save file: %s", err)
		span.RecordError(err)
		pkg.WriteResponse(w, pkg.ContentType.JSON, `{"error": "An error occurred"}`, http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterUploads.Inc()

	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"url": "/api/media/%d", "id": "%d"}`, newFileId, newFileId))
}

func (handler *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "mediaHandler.get")
	defer span.End()

	vars := mux.Vars(r)

	idParam := vars["id"]
	if idParam == "" {
		http.Error(w, "error, file ID empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		http.Error(w, "error, file ID invalid", http.StatusBadRequest)
		return
	}

	fileInfo, err := handler.store.Get(ctx, id)
	if errors.Is(err, ErrMediaNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		log.Errorf("read file [%d]: %s", id, err)
		span.RecordError(err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	file, err := os.Open(fileInfo.Path)
	if err != nil {
		log.Errorf("open file [%s]: %s", fileInfo.Path, err)
		span.RecordError(err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	defer file.Close()

	http.ServeContent(w, r, fileInfo.Name, fileInfo.CreatedAt, file)
}
