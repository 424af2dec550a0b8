package validate

import (
	"github.com/claude/racecoach/internal/athlete"
	"github.com/claude/racecoach/internal/plan"
	"github.com/claude/racecoach/internal/volume"
)

// Result is the computed outcome of one validation pass. Never persisted as
// truth — recomputed on every pass, including after auto-fix.
type Result struct {
	Valid    bool          `json:"valid"`
	Score    int           `json:"score"`
	Issues   []Issue       `json:"issues"`
	Volumes  volume.Weekly `json:"calculated_volumes"`
	Errors   int           `json:"error_count"`
	Warnings int           `json:"warning_count"`
}

// Score weighting. Errors dominate: one error costs four warnings.
const (
	errorPenalty   = 20
	warningPenalty = 5
)

// Evaluate runs the hard safety pass and the soft target pass over a plan
// and assembles the result. Issues are collected exhaustively, never
// fail-fast, so regeneration feedback can address everything at once.
// Valid is strictly "zero errors"; warnings alone never block.
func Evaluate(p *plan.Plan, c athlete.Constraints) Result {
	vols := volume.Compute(p)

	var issues []Issue
	issues = append(issues, checkSafety(p, c, vols)...)
	issues = append(issues, checkTargets(p, c, vols)...)

	errs, warns := CountByType(issues)
	score := 100 - errs*errorPenalty - warns*warningPenalty
	if score < 0 {
		score = 0
	}

	return Result{
		Valid:    errs == 0,
		Score:    score,
		Issues:   issues,
		Volumes:  vols,
		Errors:   errs,
		Warnings: warns,
	}
}
