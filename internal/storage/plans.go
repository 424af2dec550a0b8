package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/claude/racecoach/internal/plan"
	"github.com/claude/racecoach/internal/validate"
	"github.com/google/uuid"
)

// PlanRow is one accepted training plan with the validation result it was
// accepted under.
type PlanRow struct {
	ID         uuid.UUID       `json:"id"`
	AthleteID  uuid.UUID       `json:"athlete_id"`
	WeekNumber int             `json:"week_number"`
	Phase      string          `json:"phase,omitempty"`
	Score      int             `json:"score"`
	Plan       json.RawMessage `json:"plan"`
	Validation json.RawMessage `json:"validation_result"`
	CreatedAt  time.Time       `json:"created_at"`
}

// SavePlan stores an accepted plan and its validation result, returning the
// new plan ID. Only validated plans reach this call; the orchestrator never
// hands an error-carrying plan to storage.
func (db *DB) SavePlan(ctx context.Context, athleteID uuid.UUID, p *plan.Plan, result validate.Result) (uuid.UUID, error) {
	planJSON, err := json.Marshal(p)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encoding plan: %w", err)
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encoding validation result: %w", err)
	}

	id := uuid.New()
	_, err = db.Pool.Exec(ctx,
		`INSERT INTO plans (id, athlete_id, week_number, phase, score, plan, validation_result)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, athleteID, p.WeekNumber, p.Phase, result.Score, planJSON, resultJSON,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("inserting plan: %w", err)
	}
	return id, nil
}

// GetPlan fetches one stored plan by ID.
func (db *DB) GetPlan(ctx context.Context, id uuid.UUID) (*PlanRow, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT id, athlete_id, week_number, phase, score, plan, validation_result, created_at
		 FROM plans WHERE id = $1`, id)

	var p PlanRow
	if err := row.Scan(&p.ID, &p.AthleteID, &p.WeekNumber, &p.Phase, &p.Score, &p.Plan, &p.Validation, &p.CreatedAt); err != nil {
		return nil, fmt.Errorf("fetching plan %s: %w", id, err)
	}
	return &p, nil
}

// ListPlans returns an athlete's stored plans, newest week first.
func (db *DB) ListPlans(ctx context.Context, athleteID uuid.UUID) ([]PlanRow, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, athlete_id, week_number, phase, score, plan, validation_result, created_at
		 FROM plans WHERE athlete_id = $1 ORDER BY week_number DESC, created_at DESC`, athleteID)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var out []PlanRow
	for rows.Next() {
		var p PlanRow
		if err := rows.Scan(&p.ID, &p.AthleteID, &p.WeekNumber, &p.Phase, &p.Score, &p.Plan, &p.Validation, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning plan row: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
