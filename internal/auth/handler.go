package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"

	"github.com/puneethk/portfolio-backend/internal/telemetry/metrics"
	"github.com/puneethk/portfolio-backend/internal/telemetry/tracing"
	"github.com/puneethk/portfolio-backend/pkg"
)

type loginRequest struct {
	Password string `json:"password"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type Handler struct {
	service *Service
	issuer  SessionIssuer
	metrics *metrics.Manager
}

func NewHandler(
	service *Service,
	issuer SessionIssuer,
	metrics *metrics.Manager,
) *Handler {
	return &Handler{
		service: service,
		issuer:  issuer,
		metrics: metrics,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	authRouter := router.PathPrefix("/api/auth").Subrouter()
	authRouter.HandleFunc("/login", handler.handleLogin).Methods("POST", "OPTIONS").Name("login")
	authRouter.HandleFunc("/logout", handler.handleLogout).Methods("GET", "POST", "OPTIONS").Name("logout")
	authRouter.HandleFunc("/change-password", handler.handleChangePassword).Methods("POST", "OPTIONS").Name("change-password")
}

func (handler *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.login")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	var loginReq loginRequest
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
			log.Errorf("login, unmarshal json params: %s", err)
			http.Error(w, "login failed", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			log.Errorf("login failed, parse form error: %s", err)
			http.Error(w, "parse form error", http.StatusInternalServerError)
			return
		}
		loginReq = loginRequest{
			Password: r.Form.Get("password"),
		}
	}

	if loginReq.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}

	if err := handler.service.Login(ctx, loginReq.Password); err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			handler.metrics.CounterFailedLogins.Inc()
			span.SetStatus(codes.Error, "invalid-password")
			pkg.WriteResponse(w, pkg.ContentType.JSON, `{"error": "Invalid password"}`, http.StatusUnauthorized)
			return
		}
		log.Errorf("login failed: %s", err)
		span.RecordError(err)
		pkg.WriteResponse(w, pkg.ContentType.JSON, `{"error": "An error occurred"}`, http.StatusInternalServerError)
		return
	}

	if err := handler.issuer.Issue(ctx, w); err != nil {
		log.Errorf("login failed, issue session: %s", err)
		span.RecordError(err)
		pkg.WriteResponse(w, pkg.ContentType.JSON, `{"error": "An error occurred"}`, http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterLogins.Inc()
	log.Trace("new admin login")
	pkg.WriteJSONResponseOK(w, `{"success": true}`)
}

// handleLogout clears the session cookie. Calling it without an active
// session is fine, the response is a success either way.
func (handler *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.logout")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "GET, POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	if err := handler.issuer.Revoke(ctx, r, w); err != nil {
		// the cookie is still expired on the response; nothing for the
		// client to do about a session-store hiccup
		log.Errorf("logout, revoke session: %s", err)
		span.RecordError(err)
	}

	pkg.WriteJSONResponseOK(w, `{"success": true}`)
}

func (handler *Handler) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.changePassword")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	var changeReq changePasswordRequest
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&changeReq); err != nil {
			log.Errorf("change password, unmarshal json params: %s", err)
			http.Error(w, "change password failed", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			log.Errorf("change password failed, parse form error: %s", err)
			http.Error(w, "parse form error", http.StatusInternalServerError)
			return
		}
		changeReq = changePasswordRequest{
			CurrentPassword: r.Form.Get("currentPassword"),
			NewPassword:     r.Form.Get("newPassword"),
		}
	}

	if changeReq.CurrentPassword == "" {
		http.Error(w, "error, current password empty", http.StatusBadRequest)
		return
	}
	if changeReq.NewPassword == "" {
		http.Error(w, "error, new password empty", http.StatusBadRequest)
		return
	}

	if err := handler.service.ChangePassword(ctx, changeReq.CurrentPassword, changeReq.NewPassword); err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			span.SetStatus(codes.Error, "invalid-current-password")
			pkg.WriteResponse(w, pkg.ContentType.JSON, `{"error": "Current password is incorrect"}`, http.StatusUnauthorized)
			return
		}
		log.Errorf("change password failed: %s", err)
		span.RecordError(err)
		pkg.WriteResponse(w, pkg.ContentType.JSON, `{"error": "An error occurred"}`, http.StatusInternalServerError)
		return
	}

	// a no-op unless tracked sessions are on
	if err := handler.issuer.RevokeAll(ctx); err != nil {
		log.Errorf("change password, revoke sessions: %s", err)
		span.RecordError(err)
	}

	handler.metrics.CounterPasswordChanges.Inc()
	log.Trace("admin password changed")
	pkg.WriteJSONResponseOK(w, `{"success": true}`)
}
