package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/smartfridge/internal/common"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Router builds the route table. All API routes are POST with JSON bodies.
func (s *HTTPServer) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	if s.opts.DevCORS {
		r.Use(devCORS)
	}

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("OK"))
	})
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Post(common.RouteRegister, s.handleRegister)
	r.Post(common.RouteLogin, s.handleLogin)
	r.Post(common.RouteLogout, s.handleLogout)
	r.Post(common.RouteSession, s.handleSession)
	r.Post(common.RouteSaveSettings, s.handleSaveSettings)
	r.Post(common.RouteSettings, s.handleGetSettings)

	return r
}

// devCORS lets a browser client served from any origin call the API.
// Preflight requests are answered here and never reach a handler.
func devCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
