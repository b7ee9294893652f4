package httpapi

import (
	"encoding/json"
	"net/http"
	"time"
)

type errorResponse struct {
	Error string `json:"error"`
}

type emptyResponse struct{}

type loginResponse struct {
	Token string `json:"token"`
}

type sessionResponse struct {
	Username   string `json:"username"`
	ExpireDate string `json:"expire_date"`
}

type settingsResponse struct {
	Theme string `json:"Theme"`
}

func newSessionResponse(username string, exp time.Time) sessionResponse {
	return sessionResponse{Username: username, ExpireDate: exp.UTC().Format(time.RFC3339)}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
