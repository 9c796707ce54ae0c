package middleware

import (
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"

	"github.com/puneethk/portfolio-backend/internal/auth"
	"github.com/puneethk/portfolio-backend/internal/telemetry/tracing"
)

const (
	AdminPathPrefix = "/admin"
	LoginPagePath   = "/admin/login"
)

// AdminGateHandler guards the admin panel routes. Only paths under the
// admin prefix are evaluated; without a session the request is bounced
// to the login page, which itself stays reachable.
type AdminGateHandler struct {
	validator auth.SessionValidator
}

func NewAdminGateHandler(validator auth.SessionValidator) *AdminGateHandler {
	return &AdminGateHandler{
		validator: validator,
	}
}

func isAdminPath(path string) bool {
	return path == AdminPathPrefix || strings.HasPrefix(path, AdminPathPrefix+"/")
}

func (h *AdminGateHandler) Gate() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isAdminPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.adminGate")
			defer span.End()

			// the login page must not loop back into the gate
			if r.URL.Path == LoginPagePath {
				span.SetStatus(codes.Ok, "login-page")
				next.ServeHTTP(w, r)
				return
			}

			isAuthenticated, err := h.validator.IsAuthenticated(ctx, r)
			if err != nil {
				// fail closed
				log.Errorf("[admin gate] session check for %s: %s", r.URL.Path, err)
				span.RecordError(err)
				isAuthenticated = false
			}

			if !isAuthenticated {
				log.Tracef("[admin gate] unauthenticated => %s", r.URL.Path)
				span.SetStatus(codes.Error, "unauthenticated")
				http.Redirect(w, r, LoginPagePath, http.StatusFound)
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}
