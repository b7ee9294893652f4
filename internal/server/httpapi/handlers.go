package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/smartfridge/internal/common"
	"github.com/dmitrijs2005/smartfridge/internal/logging"
	"github.com/dmitrijs2005/smartfridge/internal/server/auth"
	"github.com/dmitrijs2005/smartfridge/internal/server/metrics"
	"github.com/dmitrijs2005/smartfridge/internal/server/models"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	msgInvalidPayload     = "invalid payload"
	msgInternal           = "internal error"
	msgUserExists         = "user already exists"
	msgInvalidCredentials = "invalid username or password"
)

func (s *HTTPServer) requestLogger(r *http.Request) logging.Logger {
	return s.logger.With("request_id", middleware.GetReqID(r.Context()), "route", r.URL.Path)
}

func (s *HTTPServer) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	log := s.requestLogger(r)

	user, err := s.users.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			writeError(w, http.StatusConflict, msgUserExists)
			return
		}
		log.Error(r.Context(), "registration failed", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	log.Info(r.Context(), "Registered", "user_id", user.ID)
	writeJSON(w, http.StatusCreated, emptyResponse{})
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	token, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			s.metrics.RecordLogin(metrics.LoginUnauthorized)
			writeError(w, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}
		s.metrics.RecordLogin(metrics.LoginError)
		s.requestLogger(r).Error(r.Context(), "login failed", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	s.metrics.RecordLogin(metrics.LoginSuccess)
	writeJSON(w, http.StatusOK, loginResponse{Token: token})
}

// authenticate resolves token to claims for a protected route. On failure it
// writes the response chosen by auth.StatusFor and returns false.
func (s *HTTPServer) authenticate(w http.ResponseWriter, r *http.Request, token string) (auth.Claims, bool) {
	claims, err := s.users.Authenticate(r.Context(), token)
	s.metrics.RecordAuthOutcome(err)
	if err != nil {
		s.writeAuthFailure(w, r, err)
		return auth.Claims{}, false
	}
	return claims, true
}

func (s *HTTPServer) writeAuthFailure(w http.ResponseWriter, r *http.Request, err error) {
	kind, ok := auth.KindOf(err)
	if !ok {
		kind = auth.FailureInternalStore
	}

	log := s.requestLogger(r)
	if kind == auth.FailureInternalStore {
		log.Error(r.Context(), "session store failure", "error", err)
	} else {
		log.Warn(r.Context(), "authentication rejected", "outcome", kind.String())
	}

	writeError(w, auth.StatusFor(kind), auth.PublicMessage(kind))
}

func (s *HTTPServer) handleLogout(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	claims, ok := s.authenticate(w, r, req.Token)
	if !ok {
		return
	}

	if err := s.users.Logout(r.Context(), claims); err != nil {
		s.writeAuthFailure(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, emptyResponse{})
}

func (s *HTTPServer) handleSession(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	claims, ok := s.authenticate(w, r, req.Token)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, newSessionResponse(claims.Username, claims.ExpiresAt))
}

func (s *HTTPServer) handleSaveSettings(w http.ResponseWriter, r *http.Request) {
	var req saveSettingsRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	claims, ok := s.authenticate(w, r, req.Token)
	if !ok {
		return
	}

	// Validate already checked the theme.
	theme, _ := models.ParseTheme(req.Settings.Theme)
	if err := s.settings.Save(r.Context(), &models.Settings{UserID: claims.UserID, Theme: theme}); err != nil {
		s.requestLogger(r).Error(r.Context(), "saving settings failed", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	writeJSON(w, http.StatusOK, emptyResponse{})
}

func (s *HTTPServer) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	claims, ok := s.authenticate(w, r, req.Token)
	if !ok {
		return
	}

	st, err := s.settings.Get(r.Context(), claims.UserID)
	if err != nil {
		s.requestLogger(r).Error(r.Context(), "loading settings failed", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	writeJSON(w, http.StatusOK, settingsResponse{Theme: string(st.Theme)})
}
