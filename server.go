package main

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/kidandcat/promanager/internal/auth"
	"github.com/kidandcat/promanager/internal/db"
	"github.com/kidandcat/promanager/internal/logger"
)

type server struct {
	store   *db.Store
	issuer  *auth.Issuer
	uploads string
	admins  []string
	log     *logger.Logger
}

func newServer(store *db.Store, issuer *auth.Issuer, uploads string, log *logger.Logger) *server {
	return &server{store: store, issuer: issuer, uploads: uploads, log: log}
}

func (s *server) routes(origins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Handle("/uploads/*", http.StripPrefix("/uploads/", s.serveUploads()))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	})

	r.Route("/api", func(r chi.Router) {
		// Auth (public)
		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/register", s.handleRegister)
		r.Get("/auth/stats", s.handleStats)
		r.Get("/projects", s.handleListProjects)

		r.Group(func(r chi.Router) {
			r.Use(s.authMiddleware)
			r.Put("/auth/profile", s.handleUpdateProfile)
			r.Post("/projects", s.handleCreateProject)
			r.Get("/projects/my-projects", s.handleMyProjects)
			r.Put("/projects/{id}", s.handleUpdateProject)
			r.Delete("/projects/{id}", s.handleDeleteProject)

			// Admin
			r.Group(func(r chi.Router) {
				r.Use(requireAdmin)
				r.Get("/auth/users", s.handleListUsers)
				r.Delete("/auth/users/{id}", s.handleDeleteUser)
				r.Put("/auth/users/{id}/toggle", s.handleToggleUser)
				r.Get("/auth/activities", s.handleActivities)
			})
		})

		r.Get("/projects/{id}", s.handleGetProject)
	})
	return r
}

func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("request")
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"success": false, "message": msg})
}

func (s *server) isAdminEmail(email string) bool {
	for _, a := range s.admins {
		if strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(email)) {
			return true
		}
	}
	return false
}
