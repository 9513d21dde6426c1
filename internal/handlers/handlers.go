package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"misakif.uk/internal/config"
	"misakif.uk/internal/middleware"
	"misakif.uk/internal/services"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, logger *zap.Logger, projectService *services.ProjectService) http.Handler {
	r := chi.NewRouter()

	// Logger wraps Recovery so recovered panics are logged with status 500
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))

	projectHandler := NewProjectHandler(projectService, logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{slug}", projectHandler.GetProject)

		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, logger, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Server-rendered listing
	r.Get("/", projectHandler.ProjectsPage)
	r.Get("/projects", projectHandler.ProjectsPage)

	fileServer := http.FileServer(http.Dir(cfg.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, logger *zap.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil && logger != nil {
		logger.Error("encode JSON response", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, logger *zap.Logger, status int, message string) {
	respondJSON(w, logger, status, map[string]string{"error": message})
}
