package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/claude/racecoach/internal/storage"
	"github.com/google/uuid"
)

// newTestServer creates an httptest server that routes requests to handler functions
// keyed by path. Verifies the HTTP client sends correct paths and query params.
func newTestServer(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			t.Errorf("unexpected request path: %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
}

func writeTestJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatal(err)
	}
}

// TestListPlans verifies the HTTP client sends the athlete_id query param,
// attaches the API key header, and parses the JSON array response.
func TestListPlans(t *testing.T) {
	athleteID := uuid.New()
	planID := uuid.New()

	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/plans": func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("X-API-Key"); got != "test-key" {
				t.Errorf("X-API-Key = %q, want %q", got, "test-key")
			}
			if got := r.URL.Query().Get("athlete_id"); got != athleteID.String() {
				t.Errorf("athlete_id = %q, want %q", got, athleteID)
			}
			writeTestJSON(t, w, []storage.PlanRow{
				{ID: planID, AthleteID: athleteID, WeekNumber: 3, Score: 95},
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL, "test-key")
	rows, err := client.ListPlans(context.Background(), athleteID)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d plans, want 1", len(rows))
	}
	if rows[0].ID != planID {
		t.Errorf("id = %s, want %s", rows[0].ID, planID)
	}
	if rows[0].WeekNumber != 3 {
		t.Errorf("week_number = %d, want 3", rows[0].WeekNumber)
	}
}

// TestGetPlan verifies the plan ID is embedded in the path and the single
// struct response is parsed.
func TestGetPlan(t *testing.T) {
	planID := uuid.New()

	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/plans/" + planID.String(): func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(t, w, storage.PlanRow{ID: planID, WeekNumber: 1, Score: 80})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL, "test-key")
	row, err := client.GetPlan(context.Background(), planID)
	if err != nil {
		t.Fatal(err)
	}
	if row.ID != planID {
		t.Errorf("id = %s, want %s", row.ID, planID)
	}
	if row.Score != 80 {
		t.Errorf("score = %d, want 80", row.Score)
	}
}

// TestListValidations verifies the limit query param is only sent when positive.
func TestListValidations(t *testing.T) {
	athleteID := uuid.New()

	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/validations": func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("limit"); got != "5" {
				t.Errorf("limit = %q, want %q", got, "5")
			}
			writeTestJSON(t, w, []storage.ValidationRun{
				{ID: uuid.New(), AthleteID: athleteID, Valid: false, Score: 60, Errors: 2},
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL, "test-key")
	runs, err := client.ListValidations(context.Background(), athleteID, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	if runs[0].Errors != 2 {
		t.Errorf("error_count = %d, want 2", runs[0].Errors)
	}
}

// TestGetAthlete verifies athlete lookups parse constraint fields.
func TestGetAthlete(t *testing.T) {
	athleteID := uuid.New()

	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/athletes/" + athleteID.String(): func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(t, w, map[string]any{
				"id":   athleteID.String(),
				"name": "Kim",
				"constraints": map[string]any{
					"experience":    "intermediate",
					"training_days": 4,
				},
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL, "test-key")
	row, err := client.GetAthlete(context.Background(), athleteID)
	if err != nil {
		t.Fatal(err)
	}
	if row.Name != "Kim" {
		t.Errorf("name = %q, want %q", row.Name, "Kim")
	}
	if row.Constraints.TrainingDays != 4 {
		t.Errorf("training_days = %d, want 4", row.Constraints.TrainingDays)
	}
}

// TestHTTPClientServerError verifies the client returns an error on non-200 responses.
func TestHTTPClientServerError(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/plans": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"database down"}`))
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL, "test-key")
	_, err := client.ListPlans(context.Background(), uuid.New())
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
}
