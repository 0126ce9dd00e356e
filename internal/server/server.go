package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/liftplan/internal/tracker"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	svc    *tracker.Service
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(svc *tracker.Service, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		svc:    svc,
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

// Mount attaches an extra handler subtree, e.g. the MCP endpoint.
func (s *Server) Mount(pattern string, h http.Handler) {
	s.router.Mount(pattern, h)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Mutations (API key required)
	s.router.Group(func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/api/v1/program", s.handleSaveProgram)
		r.Delete("/api/v1/program", s.handleDeleteProgram)
		r.Post("/api/v1/schedule/regenerate", s.handleRegenerateSchedule)
		r.Post("/api/v1/sessions", s.handleSaveSession)
	})

	// Reads (no auth; single-user deployment behind tsnet)
	s.router.Get("/api/v1/program", s.handleGetProgram)
	s.router.Get("/api/v1/schedule", s.handleGetSchedule)
	s.router.Get("/api/v1/workouts/today", s.handleTodayWorkout)
	s.router.Get("/api/v1/sessions", s.handleHistory)
	s.router.Get("/api/v1/stats/weekly", s.handleWeeklyStats)
	s.router.Get("/api/v1/stats", s.handleStats)
	s.router.Get("/api/v1/exercises", s.handleListExercises)
	s.router.Get("/api/v1/exercises/{id}", s.handleGetExercise)
}
