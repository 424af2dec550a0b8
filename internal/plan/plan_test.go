package plan

import (
	"strings"
	"testing"
)

const minimalPlanJSON = `{
	"week_number": 1,
	"phase": "base",
	"days": [
		{
			"day": 1,
			"session_type": "easy run",
			"duration_min": 60,
			"exercises": [
				{"name": "Easy Run", "distance_km": 5, "pace": "conversational"}
			]
		}
	]
}`

// TestParse_CleanJSON verifies a well-formed plan decodes with all fields.
func TestParse_CleanJSON(t *testing.T) {
	p, err := Parse(minimalPlanJSON)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.WeekNumber != 1 {
		t.Errorf("WeekNumber = %d, want 1", p.WeekNumber)
	}
	if p.Phase != "base" {
		t.Errorf("Phase = %q, want %q", p.Phase, "base")
	}
	if len(p.Days) != 1 || len(p.Days[0].Exercises) != 1 {
		t.Fatalf("unexpected shape: %d days", len(p.Days))
	}
	if p.Days[0].Exercises[0].DistanceKm != 5 {
		t.Errorf("DistanceKm = %v, want 5", p.Days[0].Exercises[0].DistanceKm)
	}
}

// TestParse_MarkdownFences verifies JSON wrapped in a markdown code fence
// still parses; generators do this despite instructions not to.
func TestParse_MarkdownFences(t *testing.T) {
	raw := "Here is your plan:\n```json\n" + minimalPlanJSON + "\n```\nHope it helps!"
	p, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse with fences: %v", err)
	}
	if p.WeekNumber != 1 {
		t.Errorf("WeekNumber = %d, want 1", p.WeekNumber)
	}
}

// TestParse_BracesInsideStrings verifies brace matching skips string
// literals so notes containing braces don't truncate the extracted object.
func TestParse_BracesInsideStrings(t *testing.T) {
	raw := `{"week_number": 2, "days": [{"day": 1, "session_type": "strength",
		"exercises": [{"name": "Squat", "sets": 3, "reps": 5, "notes": "pyramid {60,70,80}%"}]}]}`
	p, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := p.Days[0].Exercises[0].Notes; !strings.Contains(got, "{60,70,80}") {
		t.Errorf("Notes = %q, braces lost", got)
	}
}

// TestParse_Rejections verifies the shape checks fire with useful messages.
func TestParse_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		wantErr string
	}{
		{"no JSON", "sorry, I cannot produce a plan", "no JSON object"},
		{"unbalanced", `{"week_number": 1, "days": [`, "no JSON object"},
		{"week zero", `{"week_number": 0, "days": [{"day": 1, "session_type": "x", "exercises": [{"name": "Run"}]}]}`, "week_number"},
		{"no days", `{"week_number": 1, "days": []}`, "no training days"},
		{"day out of range", `{"week_number": 1, "days": [{"day": 8, "session_type": "x", "exercises": [{"name": "Run"}]}]}`, "out of range"},
		{"empty exercises", `{"week_number": 1, "days": [{"day": 3, "session_type": "x", "exercises": []}]}`, "no exercises"},
		{"blank name", `{"week_number": 1, "days": [{"day": 3, "session_type": "x", "exercises": [{"name": "  "}]}]}`, "empty name"},
	}
	for _, tc := range cases {
		_, err := Parse(tc.raw)
		if err == nil {
			t.Errorf("%s: Parse succeeded, want error containing %q", tc.name, tc.wantErr)
			continue
		}
		if !strings.Contains(err.Error(), tc.wantErr) {
			t.Errorf("%s: error = %q, want substring %q", tc.name, err, tc.wantErr)
		}
	}
}

// TestClone_Independence verifies mutating a clone never reaches the
// original, the guarantee the auto-fix engine relies on.
func TestClone_Independence(t *testing.T) {
	p, err := Parse(minimalPlanJSON)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	c := p.Clone()
	c.Days[0].Exercises[0].DistanceKm = 99
	c.Days[0].Exercises = append(c.Days[0].Exercises, Exercise{Name: "Wall Balls", Reps: 20})
	c.Days[0].SessionType = "changed"

	if p.Days[0].Exercises[0].DistanceKm != 5 {
		t.Errorf("original exercise mutated through clone: DistanceKm = %v", p.Days[0].Exercises[0].DistanceKm)
	}
	if len(p.Days[0].Exercises) != 1 {
		t.Errorf("original gained exercises through clone: %d", len(p.Days[0].Exercises))
	}
	if p.Days[0].SessionType != "easy run" {
		t.Errorf("original session type mutated: %q", p.Days[0].SessionType)
	}
}

// TestDayNumbers verifies the helper used by the recovery-structure checks.
func TestDayNumbers(t *testing.T) {
	p := &Plan{Days: []TrainingDay{{Day: 2}, {Day: 4}, {Day: 6}}}
	got := p.DayNumbers()
	want := []int{2, 4, 6}
	if len(got) != len(want) {
		t.Fatalf("DayNumbers = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("DayNumbers[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	if p.TrainingDayCount() != 3 {
		t.Errorf("TrainingDayCount = %d, want 3", p.TrainingDayCount())
	}
}
