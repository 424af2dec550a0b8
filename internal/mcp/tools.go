package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/claude/racecoach/internal/athlete"
	"github.com/claude/racecoach/internal/coach"
	"github.com/claude/racecoach/internal/conflict"
	"github.com/claude/racecoach/internal/plan"
	"github.com/claude/racecoach/internal/validate"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolDetectConflicts = mcp.NewTool("detect_conflicts",
	mcp.WithDescription("Check athlete constraints (injuries, equipment, time budget) against race demands before generating a plan. Returns conflicts graded blocking/warning/info and whether generation can proceed."),
	mcp.WithString("constraints", mcp.Required(), mcp.Description("Athlete constraints as a JSON object (experience, training_days, session_minutes, pain_points, missing_equipment, ...)")),
)

var toolValidatePlan = mcp.NewTool("validate_plan",
	mcp.WithDescription("Validate a generated training week against hard safety caps and soft targets. Auto-fixable violations are repaired and the plan re-validated; the response includes the (possibly repaired) plan, the full issue list, and regeneration feedback if still invalid."),
	mcp.WithString("plan", mcp.Required(), mcp.Description("The training week as a JSON object (week_number, days[].exercises[])")),
	mcp.WithString("constraints", mcp.Required(), mcp.Description("Athlete constraints as a JSON object")),
)

var toolGeneratePlan = mcp.NewTool("generate_plan",
	mcp.WithDescription("Run the full generation pipeline for one training week: conflict gate, bounded generate/validate/repair loop. Only available when the MCP server runs with a configured generator."),
	mcp.WithString("constraints", mcp.Required(), mcp.Description("Athlete constraints as a JSON object")),
	mcp.WithNumber("week_number", mcp.Required(), mcp.Description("Training week number, starting at 1")),
	mcp.WithString("phase", mcp.Description("Periodization phase label (base, build, peak, taper)")),
)

var toolGetSavedPlans = mcp.NewTool("get_saved_plans",
	mcp.WithDescription("List an athlete's accepted training plans with their validation scores."),
	mcp.WithString("athlete_id", mcp.Required(), mcp.Description("Athlete UUID")),
)

var toolGetValidationHistory = mcp.NewTool("get_validation_history",
	mcp.WithDescription("List an athlete's validation audit log, newest first, including rejected candidates."),
	mcp.WithString("athlete_id", mcp.Required(), mcp.Description("Athlete UUID")),
	mcp.WithNumber("limit", mcp.Description("Maximum rows to return. Defaults to 50.")),
)

// --- Handlers ---

func textResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

func decodeConstraints(req mcp.CallToolRequest) (athlete.Constraints, error) {
	raw, err := req.RequireString("constraints")
	if err != nil {
		return athlete.Constraints{}, err
	}
	var cons athlete.Constraints
	if err := json.Unmarshal([]byte(raw), &cons); err != nil {
		return athlete.Constraints{}, fmt.Errorf("constraints is not valid JSON: %w", err)
	}
	return cons, nil
}

func (h *handlers) detectConflicts(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cons, err := decodeConstraints(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	conflicts := conflict.Detect(cons)
	return textResult(map[string]any{
		"conflicts": conflicts,
		"summary":   conflict.Summarize(conflicts),
	})
}

func (h *handlers) validatePlan(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rawPlan, err := req.RequireString("plan")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	cons, err := decodeConstraints(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	p, err := plan.Parse(rawPlan)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("plan does not parse: %v", err)), nil
	}

	return textResult(coach.ValidateAndFix(p, cons, h.log))
}

func (h *handlers) generatePlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.coach == nil {
		return mcp.NewToolResultError("generate_plan is not available: no generator configured"), nil
	}
	cons, err := decodeConstraints(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	week := req.GetInt("week_number", 0)
	if week < 1 {
		return mcp.NewToolResultError("week_number must be >= 1"), nil
	}

	conflicts := conflict.Detect(cons)
	if !conflict.CanProceed(conflicts) {
		return textResult(map[string]any{
			"error":     "generation blocked by constraint conflicts",
			"conflicts": conflicts,
		})
	}

	outcome, err := h.coach.GenerateWeek(ctx, cons, week, req.GetString("phase", ""))
	if err != nil {
		return nil, err
	}
	return textResult(outcome)
}

func (h *handlers) getSavedPlans(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("athlete_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return mcp.NewToolResultError("athlete_id is not a UUID"), nil
	}
	rows, err := h.ds.ListPlans(ctx, id)
	if err != nil {
		return nil, err
	}
	return textResult(rows)
}

func (h *handlers) getValidationHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("athlete_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return mcp.NewToolResultError("athlete_id is not a UUID"), nil
	}
	runs, err := h.ds.ListValidations(ctx, id, req.GetInt("limit", 50))
	if err != nil {
		return nil, err
	}
	return textResult(runs)
}

// --- Resource handlers ---

func (h *handlers) stationCatalog(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(req.Params.URI, stationCatalogDoc())
}

func (h *handlers) safetyCaps(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(req.Params.URI, validate.AllCaps())
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding resource: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{URI: uri, MIMEType: "application/json", Text: string(data)},
	}, nil
}
