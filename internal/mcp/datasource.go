package mcp

import (
	"context"

	"github.com/claude/racecoach/internal/storage"
	"github.com/google/uuid"
)

// DataSource abstracts the stored-artifact layer for MCP tools. Both
// *storage.DB (local) and HTTPClient (remote via REST API) satisfy it. The
// validation and conflict tools need no data source at all — they are pure
// functions over their arguments.
type DataSource interface {
	ListPlans(ctx context.Context, athleteID uuid.UUID) ([]storage.PlanRow, error)
	GetPlan(ctx context.Context, id uuid.UUID) (*storage.PlanRow, error)
	ListValidations(ctx context.Context, athleteID uuid.UUID, limit int) ([]storage.ValidationRun, error)
	GetAthlete(ctx context.Context, id uuid.UUID) (*storage.AthleteRow, error)
}

// Compile-time check: *storage.DB satisfies DataSource.
var _ DataSource = (*storage.DB)(nil)
