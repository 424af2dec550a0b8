package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/claude/racecoach/internal/validate"
	"github.com/google/uuid"
)

// ValidationRun is one audit-log entry: every validation pass is recorded,
// accepted or not, so rejected generations stay inspectable.
type ValidationRun struct {
	ID         uuid.UUID       `json:"id"`
	AthleteID  uuid.UUID       `json:"athlete_id"`
	WeekNumber int             `json:"week_number"`
	Valid      bool            `json:"valid"`
	Score      int             `json:"score"`
	Errors     int             `json:"error_count"`
	Warnings   int             `json:"warning_count"`
	Issues     json.RawMessage `json:"issues"`
	CreatedAt  time.Time       `json:"created_at"`
}

// RecordValidation appends one validation result to the audit log.
func (db *DB) RecordValidation(ctx context.Context, athleteID uuid.UUID, weekNumber int, result validate.Result) (uuid.UUID, error) {
	issuesJSON, err := json.Marshal(result.Issues)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encoding issues: %w", err)
	}

	id := uuid.New()
	_, err = db.Pool.Exec(ctx,
		`INSERT INTO validation_runs (id, athlete_id, week_number, valid, score, error_count, warning_count, issues)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, athleteID, weekNumber, result.Valid, result.Score, result.Errors, result.Warnings, issuesJSON,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("inserting validation run: %w", err)
	}
	return id, nil
}

// ListValidations returns an athlete's validation history, newest first.
func (db *DB) ListValidations(ctx context.Context, athleteID uuid.UUID, limit int) ([]ValidationRun, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Pool.Query(ctx,
		`SELECT id, athlete_id, week_number, valid, score, error_count, warning_count, issues, created_at
		 FROM validation_runs WHERE athlete_id = $1 ORDER BY created_at DESC LIMIT $2`,
		athleteID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing validation runs: %w", err)
	}
	defer rows.Close()

	var out []ValidationRun
	for rows.Next() {
		var v ValidationRun
		if err := rows.Scan(&v.ID, &v.AthleteID, &v.WeekNumber, &v.Valid, &v.Score, &v.Errors, &v.Warnings, &v.Issues, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning validation run: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
