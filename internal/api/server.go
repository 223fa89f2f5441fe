// Package api exposes the HTTP interface for the catalog service.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"flixapi/internal/catalog"
	"flixapi/internal/config"
	"flixapi/internal/metrics"
)

const (
	serviceName    = "Flixable Unofficial Api"
	serviceVersion = "1.0.0"
)

// RefreshTrigger requests an on-demand catalog refresh.
type RefreshTrigger interface {
	Trigger()
}

// Server wires HTTP handlers to the catalog store and the scheduler.
type Server struct {
	router  chi.Router
	store   catalog.Store
	trigger RefreshTrigger
	locales []catalog.Locale
	cfg     config.Config
	logger  *zap.Logger
}

// NewServer constructs a Server with middleware and routes. The access
// logger receives one entry per request.
func NewServer(
	store catalog.Store,
	trigger RefreshTrigger,
	cfg config.Config,
	accessLogger *zap.Logger,
) *Server {
	if accessLogger == nil {
		accessLogger = zap.NewNop()
	}
	s := &Server{
		store:   store,
		trigger: trigger,
		locales: cfg.Locales,
		cfg:     cfg,
		logger:  accessLogger,
	}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(s.accessLogMiddleware)
	r.Use(recoverMiddleware(accessLogger))
	r.Use(timeoutMiddleware(30 * time.Second))
	r.Use(corsMiddleware)
	r.Use(chimiddleware.Compress(5))
	r.Use(metrics.Middleware)

	r.Get("/healthz", s.healthz)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Get("/refresh", s.refresh)
	r.Get("/", s.root)

	r.Group(func(r chi.Router) {
		r.Use(cacheControlMiddleware(cfg.Server.CacheMaxAgeSecs))
		r.Get("/langs", s.langs)
		r.Route("/{lang}", func(r chi.Router) {
			r.Use(s.checkLang)
			r.Get("/popular", s.popular)
			r.Get("/coming-soon", s.comingSoon)
		})
	})

	s.router = r
	return s
}

// Handler returns the Router for use with http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) root(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"name":    serviceName,
		"version": serviceVersion,
	})
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) langs(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.locales)
}

func (s *Server) popular(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.store.Trending(chi.URLParam(r, "lang")))
}

func (s *Server) comingSoon(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.store.Upcoming(chi.URLParam(r, "lang")))
}

func (s *Server) refresh(w http.ResponseWriter, _ *http.Request) {
	s.trigger.Trigger()
	s.writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// checkLang rejects unsupported locale codes before the store is queried.
func (s *Server) checkLang(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		code := chi.URLParam(r, "lang")
		if _, ok := catalog.FindLocale(s.locales, code); !ok {
			s.writeError(w, http.StatusNotFound, "Invalid lang")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("write JSON failed", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
