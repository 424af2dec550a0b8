// Package autofix repairs auto-fixable validation issues on a cloned plan.
// Fixers are deterministic mutations dispatched by issue category. The
// engine guarantees no fixed point: a fix can shrink one violation into a
// smaller new one, so callers must always re-validate afterwards.
package autofix

import (
	"log/slog"

	"github.com/claude/racecoach/internal/plan"
	"github.com/claude/racecoach/internal/validate"
)

// fixer mutates the plan in place to resolve one issue.
type fixer func(p *plan.Plan, issue validate.Issue, log *slog.Logger)

// fixers dispatches by issue category. Categories absent here are not
// repairable regardless of the issue's AutoFixable flag.
var fixers = map[validate.IssueCategory]fixer{
	validate.CatRunningProgression:    fixRunningProgression,
	validate.CatRunningVolumeHigh:     fixRunningVolumeHigh,
	validate.CatSingleSessionDistance: fixSingleSessionDistance,
	validate.CatHighIntensityCount:    fixHighIntensityCount,
	validate.CatConsecutiveHardDays:   fixConsecutiveHardDays,
	validate.CatStationVolume:         fixStationVolume,
	validate.CatStationCoverage:       fixStationCoverage,
	validate.CatSessionDuration:       fixSessionDuration,
	validate.CatEasyDays:              fixEasyDays,
}

// Fix applies every applicable repair to a deep clone of the plan and
// returns the clone. The input plan is never mutated. Only issues flagged
// AutoFixable are processed.
func Fix(p *plan.Plan, issues []validate.Issue, log *slog.Logger) *plan.Plan {
	fixed := p.Clone()
	for _, issue := range issues {
		if !issue.AutoFixable {
			continue
		}
		f, ok := fixers[issue.Category]
		if !ok {
			log.Warn("no fixer for auto-fixable issue", "category", string(issue.Category))
			continue
		}
		f(fixed, issue, log)
		log.Info("applied auto-fix", "category", string(issue.Category))
	}
	return fixed
}

// detFloat reads a numeric detail value regardless of its concrete type.
// Details built in-process carry int or float64; details revived from JSON
// are always float64.
func detFloat(details map[string]any, key string) float64 {
	switch v := details[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func detInt(details map[string]any, key string) int {
	return int(detFloat(details, key))
}

func detString(details map[string]any, key string) string {
	if s, ok := details[key].(string); ok {
		return s
	}
	return ""
}

func detStrings(details map[string]any, key string) []string {
	switch v := details[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
