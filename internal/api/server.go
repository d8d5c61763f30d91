// Package api provides the local REST server for the aura engine.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aura-labs/aura/internal/app/habit"
	"github.com/aura-labs/aura/internal/app/reward"
	"github.com/aura-labs/aura/internal/domain"
	"github.com/aura-labs/aura/internal/health"
)

// Server is the aura HTTP API server.
type Server struct {
	habits         *habit.Service
	rewards        *reward.Service
	checker        *health.Checker
	version        string
	metricsEnabled bool
}

// NewServer creates a new API server.
func NewServer(habits *habit.Service, rewards *reward.Service, checker *health.Checker, version string) *Server {
	return &Server{habits: habits, rewards: rewards, checker: checker, version: version}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(corsMiddleware)

	r.Get("/health", s.handleHealth)

	r.Get("/api/version", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
	})

	r.Route("/api/habit", func(r chi.Router) {
		r.Get("/", s.handleHabitData)
		r.Post("/mark", s.handleHabitMark)
		r.Post("/reset", s.handleHabitReset)
		r.Get("/export", s.handleHabitExport)
		r.Post("/import", s.handleHabitImport)
	})

	r.Route("/api/activities", func(r chi.Router) {
		r.Get("/", s.handleListActivities)
		r.Post("/", s.handleAddActivity)
		r.Post("/{id}/toggle", s.handleToggleActivity)
		r.Delete("/{id}", s.handleDeleteActivity)
	})

	r.Get("/api/stats", s.handleStats)
	r.Get("/api/categories", s.handleCategories)

	r.Route("/api/challenges", func(r chi.Router) {
		r.Get("/", s.handleChallenges)
		r.Post("/{id}/claim", s.handleClaimChallenge)
	})

	r.Get("/api/achievements", s.handleAchievements)

	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	code := http.StatusOK
	if s.checker != nil && !s.checker.IsHealthy() {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}
	var checks []health.Status
	if s.checker != nil {
		checks = s.checker.Statuses()
	}
	writeJSON(w, code, map[string]interface{}{
		"status": status,
		"checks": checks,
	})
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}

// writeDomainError maps engine errors onto HTTP status codes.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidationError(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrActivityNotFound),
		errors.Is(err, domain.ErrChallengeNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrEmptyTitle),
		errors.Is(err, domain.ErrUnknownCategory):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrChallengeNotCompleted),
		errors.Is(err, domain.ErrChallengeExpired):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// corsMiddleware adds CORS headers for local development.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
