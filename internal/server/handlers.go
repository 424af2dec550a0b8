package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/claude/racecoach/internal/athlete"
	"github.com/claude/racecoach/internal/coach"
	"github.com/claude/racecoach/internal/conflict"
	"github.com/claude/racecoach/internal/plan"
	"github.com/claude/racecoach/internal/taxonomy"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// handleConflictCheck runs the pre-generation constraint gate.
func (s *Server) handleConflictCheck(w http.ResponseWriter, r *http.Request) {
	var cons athlete.Constraints
	if err := json.NewDecoder(r.Body).Decode(&cons); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	conflicts := conflict.Detect(cons)
	writeJSON(w, http.StatusOK, map[string]any{
		"conflicts": conflicts,
		"summary":   conflict.Summarize(conflicts),
	})
}

type validateRequest struct {
	Plan        *plan.Plan          `json:"plan"`
	Constraints athlete.Constraints `json:"constraints"`
	AthleteID   *uuid.UUID          `json:"athlete_id,omitempty"`
}

// handleValidatePlan validates (and where possible repairs) a candidate the
// caller already holds. When an athlete ID is supplied the run is recorded
// in the audit log.
func (s *Server) handleValidatePlan(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if req.Plan == nil {
		writeError(w, http.StatusBadRequest, "plan is required")
		return
	}

	attempt := coach.ValidateAndFix(req.Plan, req.Constraints, s.log)

	if req.AthleteID != nil {
		if _, err := s.db.RecordValidation(r.Context(), *req.AthleteID, req.Plan.WeekNumber, attempt.Result); err != nil {
			s.log.Error("recording validation run", "error", err)
		}
	}

	writeJSON(w, http.StatusOK, attempt)
}

type generateRequest struct {
	AthleteID  uuid.UUID `json:"athlete_id"`
	WeekNumber int       `json:"week_number"`
	Phase      string    `json:"phase,omitempty"`

	// Constraints override the stored profile when present.
	Constraints *athlete.Constraints `json:"constraints,omitempty"`
}

// handleGeneratePlan runs the full pipeline: conflict gate, bounded
// generation loop, persistence of the accepted plan.
func (s *Server) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if req.WeekNumber < 1 {
		writeError(w, http.StatusBadRequest, "week_number must be >= 1")
		return
	}

	cons := athlete.Constraints{}
	if req.Constraints != nil {
		cons = *req.Constraints
	} else {
		row, err := s.db.GetAthlete(r.Context(), req.AthleteID)
		if err != nil {
			writeError(w, http.StatusNotFound, "athlete not found: "+err.Error())
			return
		}
		cons = row.Constraints
	}

	conflicts := conflict.Detect(cons)
	if !conflict.CanProceed(conflicts) {
		writeJSON(w, http.StatusConflict, map[string]any{
			"error":     "generation blocked by constraint conflicts",
			"conflicts": conflicts,
			"summary":   conflict.Summarize(conflicts),
		})
		return
	}

	outcome, err := s.coach.GenerateWeek(r.Context(), cons, req.WeekNumber, req.Phase)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	if outcome.Validation != nil {
		if _, err := s.db.RecordValidation(r.Context(), req.AthleteID, req.WeekNumber, *outcome.Validation); err != nil {
			s.log.Error("recording validation run", "error", err)
		}
	}

	if outcome.Success {
		id, err := s.db.SavePlan(r.Context(), req.AthleteID, outcome.Plan, *outcome.Validation)
		if err != nil {
			s.log.Error("saving accepted plan", "error", err)
			writeError(w, http.StatusInternalServerError, "plan accepted but could not be saved: "+err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"plan_id": id,
			"outcome": outcome,
		})
		return
	}

	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"outcome": outcome})
}

func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	athleteID, err := uuid.Parse(r.URL.Query().Get("athlete_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "athlete_id parameter required")
		return
	}
	rows, err := s.db.ListPlans(r.Context(), athleteID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid plan id")
		return
	}
	row, err := s.db.GetPlan(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (s *Server) handleListValidations(w http.ResponseWriter, r *http.Request) {
	athleteID, err := uuid.Parse(r.URL.Query().Get("athlete_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "athlete_id parameter required")
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	runs, err := s.db.ListValidations(r.Context(), athleteID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, runs)
}

type createAthleteRequest struct {
	Name        string              `json:"name"`
	Constraints athlete.Constraints `json:"constraints"`
}

func (s *Server) handleCreateAthlete(w http.ResponseWriter, r *http.Request) {
	var req createAthleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	id, err := s.db.CreateAthlete(r.Context(), req.Name, req.Constraints)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": id})
}

func (s *Server) handleGetAthlete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid athlete id")
		return
	}
	row, err := s.db.GetAthlete(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (s *Server) handleUpdateConstraints(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid athlete id")
		return
	}
	var cons athlete.Constraints
	if err := json.NewDecoder(r.Body).Decode(&cons); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if err := s.db.UpdateConstraints(r.Context(), id, cons); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// handleListStations returns the fixed station catalog.
func (s *Server) handleListStations(w http.ResponseWriter, _ *http.Request) {
	type stationInfo struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	out := make([]stationInfo, 0, len(taxonomy.AllStations))
	for _, st := range taxonomy.AllStations {
		out = append(out, stationInfo{ID: string(st), Name: st.DisplayName()})
	}
	writeJSON(w, http.StatusOK, out)
}
