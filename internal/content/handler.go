package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/puneethk/portfolio-backend/internal/telemetry/metrics"
	"github.com/puneethk/portfolio-backend/internal/telemetry/tracing"
	"github.com/puneethk/portfolio-backend/pkg"
)

// section binds a URL path segment to its typed payload and the
// default served before anything was ever saved.
type section struct {
	name       string
	newPayload func() any
	defaultDoc func() any
}

func sections() []section {
	return []section{
		{"hero", func() any { return &Hero{} }, defaultHero},
		{"about", func() any { return &About{} }, defaultAbout},
		{"skills", func() any { return &Skills{} }, defaultSkills},
		{"experience", func() any { return &Experience{} }, defaultExperience},
		{"education", func() any { return &Education{} }, defaultEducation},
		{"projects", func() any { return &Projects{} }, defaultProjects},
		{"footer", func() any { return &Footer{} }, defaultFooter},
		{"contact", func() any { return &Contact{} }, defaultContact},
	}
}

type Handler struct {
	repo    sectionStore
	metrics *metrics.Manager
}

func NewHandler(repo sectionStore, metrics *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metrics,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	for _, s := range sections() {
		router.HandleFunc("/api/"+s.name, handler.getSection(s)).Methods("GET", "OPTIONS").Name("get-" + s.name)
		router.HandleFunc("/api/"+s.name, handler.updateSection(s)).Methods("PUT", "OPTIONS").Name("update-" + s.name)
	}
}

// getSection serves the stored document, or the built-in default when
// the section was never saved. The default is not written back, the
// first PUT is what creates the row.
func (handler *Handler) getSection(s section) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracing.GlobalTracer.Start(r.Context(), "contentHandler.get")
		span.SetAttributes(attribute.String("section", s.name))
		defer span.End()

		if r.Method == http.MethodOptions {
			w.Header().Add("Allow", "GET, PUT, OPTIONS")
			w.WriteHeader(http.StatusOK)
			return
		}

		doc, err := handler.repo.Get(ctx, s.name)
		if errors.Is(err, ErrSectionNotFound) {
			docBytes, err := json.Marshal(s.defaultDoc())
			if err != nil {
				log.Errorf("get %s, marshal default: %s", s.name, err)
				span.RecordError(err)
				pkg.WriteResponse(w, pkg.ContentType.JSON, `{"error": "An error occurred"}`, http.StatusInternalServerError)
				return
			}
			pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, docBytes)
			return
		}
		if err != nil {
			log.Errorf("get %s failed: %s", s.name, err)
			span.RecordError(err)
			pkg.WriteResponse(w, pkg.ContentType.JSON, `{"error": "An error occurred"}`, http.StatusInternalServerError)
			return
		}

		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, doc)
	}
}

// updateSection replaces the whole section document and echoes the
// stored payload back.
func (handler *Handler) updateSection(s section) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracing.GlobalTracer.Start(r.Context(), "contentHandler.update")
		span.SetAttributes(attribute.String("section", s.name))
		defer span.End()

		if r.Method == http.MethodOptions {
			w.Header().Add("Allow", "GET, PUT, OPTIONS")
			w.WriteHeader(http.StatusOK)
			return
		}

		payload := s.newPayload()
		if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
			log.Errorf("update %s, unmarshal json params: %s", s.name, err)
			http.Error(w, fmt.Sprintf("update %s failed", s.name), http.StatusBadRequest)
			return
		}

		docBytes, err := json.Marshal(payload)
		if err != nil {
			log.Errorf("update %s, marshal payload: %s", s.name, err)
			span.RecordError(err)
			pkg.WriteResponse(w, pkg.ContentType.JSON, `{"error": "An error occurred"}`, http.StatusInternalServerError)
			return
		}

		if err := handler.repo.Upsert(ctx, s.name, docBytes); err != nil {
			log.Errorf("update %s failed: %s", s.name, err)
			span.RecordError(err)
			pkg.WriteResponse(w, pkg.ContentType.JSON, `{"error": "An error occurred"}`, http.StatusInternalServerError)
			return
		}

		handler.metrics.CounterContentUpdates.WithLabelValues(s.name).Inc()
		log.Tracef("section %s updated", s.name)
		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, docBytes)
	}
}
