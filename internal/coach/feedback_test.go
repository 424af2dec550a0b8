package coach

import (
	"strings"
	"testing"

	"github.com/claude/racecoach/internal/validate"
)

// TestBuildFeedback verifies the digest lists every issue with its severity
// prefix and appends concrete per-category guidance.
func TestBuildFeedback(t *testing.T) {
	issues := []validate.Issue{
		{
			Type: validate.TypeError, Category: validate.CatTrainingDays,
			Message: "plan schedules 6 training days, expected: 4",
			Details: map[string]any{"actual": 6, "expected": 4},
		},
		{
			Type: validate.TypeError, Category: validate.CatRunningProgression,
			Message: "weekly running 30.0 km exceeds 10% progression",
			Details: map[string]any{"allowed_km": 22.0},
		},
		{
			Type: validate.TypeWarning, Category: validate.CatSecondaryVolumeLow,
			Message: "only 500 m of erg work scheduled",
		},
	}

	fb := BuildFeedback(issues)

	for _, want := range []string{
		"ERROR [training_days]: plan schedules 6 training days, expected: 4",
		"ERROR [safety_running_progression]",
		"WARNING [secondary_volume_low]",
		"Schedule exactly 4 training days",
		"at or below 22.0 km",
	} {
		if !strings.Contains(fb, want) {
			t.Errorf("feedback missing %q:\n%s", want, fb)
		}
	}

	// Deterministic: same issues, same text.
	if again := BuildFeedback(issues); again != fb {
		t.Error("BuildFeedback is not deterministic for identical input")
	}
}

// TestBuildFeedback_Empty verifies no issues means no feedback.
func TestBuildFeedback_Empty(t *testing.T) {
	if fb := BuildFeedback(nil); fb != "" {
		t.Errorf("BuildFeedback(nil) = %q, want empty", fb)
	}
}

// TestBuildFeedback_GuidanceDeduplication verifies repeated categories add
// their guidance line once.
func TestBuildFeedback_GuidanceDeduplication(t *testing.T) {
	issues := []validate.Issue{
		{Type: validate.TypeError, Category: validate.CatConsecutiveHardDays, Message: "days 1 and 2"},
		{Type: validate.TypeError, Category: validate.CatConsecutiveHardDays, Message: "days 4 and 5"},
	}
	fb := BuildFeedback(issues)
	guidance := "Never place two high-intensity days back to back"
	if got := strings.Count(fb, guidance); got != 1 {
		t.Errorf("guidance appears %d times, want 1:\n%s", got, fb)
	}
	if got := strings.Count(fb, "ERROR ["); got != 2 {
		t.Errorf("issue lines = %d, want 2", got)
	}
}
