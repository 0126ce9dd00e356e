package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/claude/liftplan/internal/catalog"
	"github.com/claude/liftplan/internal/models"
	"github.com/claude/liftplan/internal/tracker"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleSaveProgram(w http.ResponseWriter, r *http.Request) {
	var program models.Program
	if err := json.NewDecoder(r.Body).Decode(&program); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	if err := s.svc.SaveProgram(r.Context(), &program); err != nil {
		s.log.Error("save program failed", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, program)
}

func (s *Server) handleGetProgram(w http.ResponseWriter, r *http.Request) {
	// nil encodes as JSON null: "no program configured" is a legitimate
	// absent state, not an error.
	writeJSON(w, http.StatusOK, s.svc.Program(r.Context()))
}

func (s *Server) handleDeleteProgram(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.DeleteProgram(r.Context()); err != nil {
		s.log.Error("delete program failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleRegenerateSchedule(w http.ResponseWriter, r *http.Request) {
	program := s.svc.Program(r.Context())
	if program == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "no program configured"})
		return
	}
	schedule, err := s.svc.GenerateSchedule(r.Context(), program)
	if err != nil {
		s.log.Error("regenerate schedule failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, schedule)
}

func (s *Server) handleGetSchedule(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Schedule(r.Context()))
}

// todayResponse decorates the resolved workout with a duration estimate.
type todayResponse struct {
	*models.DailyWorkout
	EstimatedDuration int `json:"estimatedDuration"`
}

func (s *Server) handleTodayWorkout(w http.ResponseWriter, r *http.Request) {
	workout := s.svc.TodayWorkout(r.Context())
	if workout == nil {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, todayResponse{
		DailyWorkout:      workout,
		EstimatedDuration: tracker.EstimateDuration(workout.Exercises),
	})
}

func (s *Server) handleSaveSession(w http.ResponseWriter, r *http.Request) {
	var session models.WorkoutSession
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	if err := s.svc.SaveSession(r.Context(), session); err != nil {
		s.log.Error("save session failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	history := s.svc.History(r.Context())
	if history == nil {
		history = []models.WorkoutSession{}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid limit"})
			return
		}
		if limit < len(history) {
			history = history[:limit]
		}
	}
	writeJSON(w, http.StatusOK, history)
}

func (s *Server) handleWeeklyStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.WeeklyStats(r.Context()))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Stats(r.Context()))
}

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	if category := r.URL.Query().Get("category"); category != "" {
		writeJSON(w, http.StatusOK, catalog.ByCategory(category))
		return
	}
	writeJSON(w, http.StatusOK, catalog.All())
}

func (s *Server) handleGetExercise(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid exercise ID"})
		return
	}
	ex, ok := catalog.ByID(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "exercise not found"})
		return
	}
	writeJSON(w, http.StatusOK, ex)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
