package coach

import (
	"fmt"
	"strings"

	"github.com/claude/racecoach/internal/validate"
)

// ParseFeedback instructs the generator after an unparseable candidate.
const ParseFeedback = "Your previous response could not be parsed. " +
	"Respond with a single JSON object only: no prose, no markdown fences, no commentary before or after the JSON."

// BuildFeedback renders an issue list into deterministic regeneration
// feedback: one prefixed line per issue, then category-specific guidance so
// the generator knows what concretely to change, not just what was wrong.
func BuildFeedback(issues []validate.Issue) string {
	if len(issues) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("The previous plan failed validation. Fix every item below and regenerate the full week.\n")

	for _, issue := range issues {
		prefix := "WARNING"
		if issue.Type == validate.TypeError {
			prefix = "ERROR"
		}
		fmt.Fprintf(&b, "%s [%s]: %s\n", prefix, issue.Category, issue.Message)
	}

	for _, g := range guidance(issues) {
		b.WriteString(g)
		b.WriteString("\n")
	}
	return b.String()
}

// guidance adds one concrete instruction per problem category present.
func guidance(issues []validate.Issue) []string {
	seen := make(map[validate.IssueCategory]bool)
	var out []string

	for _, issue := range issues {
		if seen[issue.Category] {
			continue
		}
		seen[issue.Category] = true

		switch issue.Category {
		case validate.CatStationCoverage:
			if missing, ok := issue.Details["missing"]; ok {
				out = append(out, fmt.Sprintf("Add these missing stations to the week: %v.", missing))
			}
		case validate.CatTrainingDays:
			out = append(out, fmt.Sprintf(
				"Schedule exactly %v training days, no more, no fewer.", issue.Details["expected"]))
		case validate.CatRunningVolumeLow:
			out = append(out, fmt.Sprintf(
				"Raise total weekly running to at least %v km.", issue.Details["min_km"]))
		case validate.CatRunningProgression:
			out = append(out, fmt.Sprintf(
				"Keep total weekly running at or below %.1f km (10%% over last week).",
				floatDetail(issue, "allowed_km")))
		case validate.CatHighIntensityCount:
			out = append(out, fmt.Sprintf(
				"Include at most %v high-intensity sessions; make the rest easy efforts.", issue.Details["max"]))
		case validate.CatConsecutiveHardDays:
			out = append(out, "Never place two high-intensity days back to back; separate them with an easy or rest day.")
		case validate.CatRestDays:
			out = append(out, fmt.Sprintf(
				"Leave at least %v full rest day(s) with no scheduled session.", issue.Details["min"]))
		case validate.CatSessionDuration:
			out = append(out, "Keep every session between 30 and 120 minutes.")
		}
	}
	return out
}

func floatDetail(issue validate.Issue, key string) float64 {
	if v, ok := issue.Details[key].(float64); ok {
		return v
	}
	return 0
}
