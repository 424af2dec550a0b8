package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/claude/racecoach/internal/athlete"
	"github.com/google/uuid"
)

// AthleteRow is one stored athlete profile. Constraints are kept as a JSONB
// document: they are read back whole for every generation call, never
// queried field by field.
type AthleteRow struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Constraints athlete.Constraints `json:"constraints"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// CreateAthlete stores a new athlete profile and returns its ID.
func (db *DB) CreateAthlete(ctx context.Context, name string, cons athlete.Constraints) (uuid.UUID, error) {
	consJSON, err := json.Marshal(cons)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encoding constraints: %w", err)
	}

	id := uuid.New()
	_, err = db.Pool.Exec(ctx,
		`INSERT INTO athletes (id, name, constraints) VALUES ($1, $2, $3)`,
		id, name, consJSON,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("inserting athlete: %w", err)
	}
	return id, nil
}

// GetAthlete fetches one athlete profile by ID.
func (db *DB) GetAthlete(ctx context.Context, id uuid.UUID) (*AthleteRow, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT id, name, constraints, created_at, updated_at FROM athletes WHERE id = $1`, id)

	var a AthleteRow
	var consJSON []byte
	if err := row.Scan(&a.ID, &a.Name, &consJSON, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, fmt.Errorf("fetching athlete %s: %w", id, err)
	}
	if err := json.Unmarshal(consJSON, &a.Constraints); err != nil {
		return nil, fmt.Errorf("decoding constraints: %w", err)
	}
	return &a, nil
}

// UpdateConstraints replaces an athlete's constraint profile.
func (db *DB) UpdateConstraints(ctx context.Context, id uuid.UUID, cons athlete.Constraints) error {
	consJSON, err := json.Marshal(cons)
	if err != nil {
		return fmt.Errorf("encoding constraints: %w", err)
	}
	tag, err := db.Pool.Exec(ctx,
		`UPDATE athletes SET constraints = $2, updated_at = now() WHERE id = $1`,
		id, consJSON,
	)
	if err != nil {
		return fmt.Errorf("updating athlete %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("athlete %s not found", id)
	}
	return nil
}
