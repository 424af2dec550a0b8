package coach

import (
	"context"
	"log/slog"

	"github.com/claude/racecoach/internal/athlete"
	"github.com/claude/racecoach/internal/autofix"
	"github.com/claude/racecoach/internal/plan"
	"github.com/claude/racecoach/internal/validate"
)

// DefaultMaxAttempts bounds the regeneration loop. Three attempts in
// practice separates "the generator had a bad draw" from "the constraints
// cannot be satisfied".
const DefaultMaxAttempts = 3

// FailureType classifies a terminal orchestration failure.
type FailureType string

const (
	FailureGeneration FailureType = "generation_failed"
	FailureParse      FailureType = "parse_failed"
	FailureValidation FailureType = "validation_failed"
)

// Failure describes why the orchestrator gave up.
type Failure struct {
	Type                 FailureType `json:"type"`
	Message              string      `json:"message"`
	RegenerationFeedback string      `json:"regeneration_feedback,omitempty"`
}

// Outcome is the orchestrator's result. On failure, Plan and Validation
// still carry the best candidate seen across all attempts — work is never
// silently discarded.
type Outcome struct {
	Success    bool             `json:"success"`
	Plan       *plan.Plan       `json:"plan,omitempty"`
	Validation *validate.Result `json:"validation_result,omitempty"`
	Attempts   int              `json:"attempts"`
	Failure    *Failure         `json:"error,omitempty"`
}

// Coach drives the generate → validate → repair → regenerate loop.
type Coach struct {
	gen         Generator
	maxAttempts int
	log         *slog.Logger
}

// New creates a Coach with the default attempt budget.
func New(gen Generator, log *slog.Logger) *Coach {
	return &Coach{gen: gen, maxAttempts: DefaultMaxAttempts, log: log}
}

// WithMaxAttempts overrides the attempt budget (minimum 1).
func (c *Coach) WithMaxAttempts(n int) *Coach {
	if n >= 1 {
		c.maxAttempts = n
	}
	return c
}

// Attempt is one candidate's validate-and-fix outcome. Success means zero
// errors (warnings never block); on failure RegenerationFeedback carries the
// full issue digest for the next generation attempt.
type Attempt struct {
	Plan                 *plan.Plan      `json:"plan"`
	Result               validate.Result `json:"validation_result"`
	Success              bool            `json:"success"`
	FixApplied           bool            `json:"fix_applied"`
	RegenerationFeedback string          `json:"regeneration_feedback,omitempty"`
}

// ValidateAndFix runs one candidate through validation and, when anything is
// auto-fixable, through exactly one repair pass followed by re-validation.
// A still-invalid plan after the repair pass is a regeneration case, never
// an auto-fix loop.
func ValidateAndFix(p *plan.Plan, cons athlete.Constraints, log *slog.Logger) Attempt {
	result := validate.Evaluate(p, cons)
	if result.Valid {
		return Attempt{Plan: p, Result: result, Success: true}
	}

	if validate.HasFixable(result.Issues) {
		fixed := autofix.Fix(p, result.Issues, log)
		refixed := validate.Evaluate(fixed, cons)
		if refixed.Valid {
			return Attempt{Plan: fixed, Result: refixed, Success: true, FixApplied: true}
		}
		// The repaired plan is still the better candidate when it scores
		// higher, even though it failed.
		if refixed.Score >= result.Score {
			return Attempt{
				Plan: fixed, Result: refixed, FixApplied: true,
				RegenerationFeedback: BuildFeedback(refixed.Issues),
			}
		}
	}

	return Attempt{Plan: p, Result: result, RegenerationFeedback: BuildFeedback(result.Issues)}
}

// GenerateWeek runs the bounded generation loop for one training week.
// Attempts are sequential: each retry's feedback derives from the previous
// attempt's validation, so there is nothing to parallelize. The returned
// error is non-nil only for context cancellation; every domain failure is
// encoded in the Outcome.
func (c *Coach) GenerateWeek(ctx context.Context, cons athlete.Constraints, weekNumber int, phase string) (*Outcome, error) {
	var (
		feedback    string
		best        *Attempt
		lastFailure *Failure
	)

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, err := c.gen.Generate(ctx, GenerationRequest{
			Constraints: cons,
			WeekNumber:  weekNumber,
			Phase:       phase,
			Feedback:    feedback,
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.log.Warn("generation attempt failed", "attempt", attempt, "error", err)
			lastFailure = &Failure{Type: FailureGeneration, Message: err.Error(), RegenerationFeedback: feedback}
			continue
		}

		candidate, err := plan.Parse(raw)
		if err != nil {
			c.log.Warn("candidate did not parse", "attempt", attempt, "error", err)
			feedback = ParseFeedback
			lastFailure = &Failure{Type: FailureParse, Message: err.Error(), RegenerationFeedback: feedback}
			continue
		}

		a := ValidateAndFix(candidate, cons, c.log)
		if best == nil || a.Result.Score > best.Result.Score {
			best = &a
		}

		if a.Success {
			c.log.Info("plan accepted", "attempt", attempt, "score", a.Result.Score, "fix_applied", a.FixApplied)
			return &Outcome{
				Success:    true,
				Plan:       a.Plan,
				Validation: &a.Result,
				Attempts:   attempt,
			}, nil
		}

		feedback = a.RegenerationFeedback
		lastFailure = &Failure{
			Type:                 FailureValidation,
			Message:              "plan failed validation after auto-fix",
			RegenerationFeedback: feedback,
		}
		c.log.Info("attempt rejected", "attempt", attempt, "score", a.Result.Score, "errors", a.Result.Errors)
	}

	out := &Outcome{Success: false, Attempts: c.maxAttempts, Failure: lastFailure}
	if best != nil {
		out.Plan = best.Plan
		out.Validation = &best.Result
	}
	return out, nil
}
