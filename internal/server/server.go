package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/racecoach/internal/coach"
	"github.com/claude/racecoach/internal/storage"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db     *storage.DB
	coach  *coach.Coach
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(db *storage.DB, c *coach.Coach, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		db:     db,
		coach:  c,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))

		// Pre-generation gate
		r.Post("/conflicts/check", s.handleConflictCheck)

		// Validation of an externally supplied candidate
		r.Post("/plans/validate", s.handleValidatePlan)

		// Full orchestrated generation
		r.Post("/plans/generate", s.handleGeneratePlan)

		// Stored artifacts
		r.Get("/plans", s.handleListPlans)
		r.Get("/plans/{id}", s.handleGetPlan)
		r.Get("/validations", s.handleListValidations)

		// Athlete profiles
		r.Post("/athletes", s.handleCreateAthlete)
		r.Get("/athletes/{id}", s.handleGetAthlete)
		r.Put("/athletes/{id}/constraints", s.handleUpdateConstraints)

		// Static catalog
		r.Get("/stations", s.handleListStations)
	})
}
