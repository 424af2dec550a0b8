package validate

import (
	"strings"
	"testing"

	"github.com/claude/racecoach/internal/athlete"
	"github.com/claude/racecoach/internal/plan"
	"github.com/claude/racecoach/internal/taxonomy"
	"github.com/claude/racecoach/internal/volume"
)

// TestTrainingDayCount verifies the exact-day-count rule and its message
// shape, which downstream feedback relies on.
func TestTrainingDayCount(t *testing.T) {
	p := &plan.Plan{WeekNumber: 1, Days: make([]plan.TrainingDay, 6)}
	c := athlete.Constraints{TrainingDays: 4}

	issues := checkTrainingDayCount(p, c)
	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1", len(issues))
	}
	is := issues[0]
	if is.Type != TypeError || is.Category != CatTrainingDays {
		t.Errorf("issue = %s/%s, want error/%s", is.Type, is.Category, CatTrainingDays)
	}
	if is.AutoFixable {
		t.Error("day-count mismatch must not be auto-fixable")
	}
	if !strings.Contains(is.Message, "expected: 4") {
		t.Errorf("message %q should name the expected day count", is.Message)
	}

	match := &plan.Plan{WeekNumber: 1, Days: make([]plan.TrainingDay, 4)}
	if issues := checkTrainingDayCount(match, c); len(issues) != 0 {
		t.Errorf("matching day count flagged: %v", issues)
	}
	if issues := checkTrainingDayCount(p, athlete.Constraints{}); len(issues) != 0 {
		t.Errorf("unset day target flagged: %v", issues)
	}
}

// TestRunningTargets verifies under-target blocks and over-target warns.
func TestRunningTargets(t *testing.T) {
	c := athlete.Constraints{TargetRunningKmMin: 15, TargetRunningKmMax: 25}

	low := checkRunningTargets(c, volume.Weekly{RunningKm: 10})
	if len(low) != 1 || low[0].Type != TypeError || low[0].Category != CatRunningVolumeLow {
		t.Errorf("10 km under a 15 km floor: got %v", low)
	}
	if low[0].AutoFixable {
		t.Error("under-target volume must not be auto-fixable")
	}

	high := checkRunningTargets(c, volume.Weekly{RunningKm: 30})
	if len(high) != 1 || high[0].Type != TypeWarning || high[0].Category != CatRunningVolumeHigh {
		t.Errorf("30 km over a 25 km ceiling: got %v", high)
	}
	if !high[0].AutoFixable {
		t.Error("over-target volume should be fixable by scaling down")
	}

	if issues := checkRunningTargets(c, volume.Weekly{RunningKm: 20}); len(issues) != 0 {
		t.Errorf("in-range volume flagged: %v", issues)
	}
}

func coveragePlan(week int, stations ...taxonomy.Station) (*plan.Plan, volume.Weekly) {
	p := &plan.Plan{WeekNumber: week, Days: []plan.TrainingDay{{Day: 1, SessionType: "hybrid"}}}
	return p, volume.Weekly{StationsSeen: stations}
}

// TestStationCoverage_FirstRaceWindow walks the two-week coverage state
// machine: week 1 gaps warn, week 2 gaps against the cross-week union
// error, week 3 is inert.
func TestStationCoverage_FirstRaceWindow(t *testing.T) {
	c := athlete.Constraints{FirstRace: true}

	// Week 1, six of eight stations seen: warning, fixable (gap of 2).
	p, vols := coveragePlan(1, taxonomy.AllStations[:6]...)
	issues := checkStationCoverage(p, c, vols)
	if len(issues) != 1 {
		t.Fatalf("week 1: got %d issues, want 1", len(issues))
	}
	if issues[0].Type != TypeWarning {
		t.Errorf("week 1 gap = %s, want warning", issues[0].Type)
	}
	if !issues[0].AutoFixable {
		t.Error("two missing stations should be patchable by templates")
	}

	// Week 1, only three seen: still a warning but too wide to auto-fix.
	p, vols = coveragePlan(1, taxonomy.AllStations[:3]...)
	issues = checkStationCoverage(p, c, vols)
	if len(issues) != 1 || issues[0].AutoFixable {
		t.Errorf("week 1 with 5 missing: got %v, want one unfixable warning", issues)
	}

	// Week 2 with the union still missing one station: error.
	c2 := athlete.Constraints{FirstRace: true, PriorStationsCovered: taxonomy.AllStations[:6]}
	p, vols = coveragePlan(2, taxonomy.AllStations[6])
	issues = checkStationCoverage(p, c2, vols)
	if len(issues) != 1 || issues[0].Type != TypeError {
		t.Fatalf("week 2 with residual gap: got %v, want one error", issues)
	}
	missing, _ := issues[0].Details["missing"].([]string)
	if len(missing) != 1 || missing[0] != string(taxonomy.AllStations[7]) {
		t.Errorf("missing = %v, want [%s]", missing, taxonomy.AllStations[7])
	}

	// Week 2 where this week's stations complete the union: clean.
	p, vols = coveragePlan(2, taxonomy.AllStations[6], taxonomy.AllStations[7])
	if issues := checkStationCoverage(p, c2, vols); len(issues) != 0 {
		t.Errorf("completed union flagged: %v", issues)
	}

	// Week 3: inert regardless of coverage.
	p, vols = coveragePlan(3)
	if issues := checkStationCoverage(p, c, vols); len(issues) != 0 {
		t.Errorf("week 3 coverage fired: %v", issues)
	}

	// Not a first race: never fires.
	p, vols = coveragePlan(1)
	if issues := checkStationCoverage(p, athlete.Constraints{}, vols); len(issues) != 0 {
		t.Errorf("experienced athlete coverage fired: %v", issues)
	}
}

// TestWeakStationFrequency verifies the twice-a-week exposure target for
// declared weak stations, counting days not exercises.
func TestWeakStationFrequency(t *testing.T) {
	p := &plan.Plan{
		WeekNumber: 1,
		Days: []plan.TrainingDay{
			{Day: 1, Exercises: []plan.Exercise{
				{Name: "Wall Balls", Reps: 20},
				{Name: "Wall Balls", Reps: 20}, // same day, counts once
			}},
			{Day: 3, Exercises: []plan.Exercise{{Name: "SkiErg", DistanceM: 500}}},
			{Day: 5, Exercises: []plan.Exercise{{Name: "SkiErg", DistanceM: 500}}},
		},
	}
	c := athlete.Constraints{WeakStations: []taxonomy.Station{taxonomy.StationWallBalls, taxonomy.StationSkiErg}}

	issues := checkWeakStationFrequency(p, c)
	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1", len(issues))
	}
	if got := issues[0].Details["station"]; got != string(taxonomy.StationWallBalls) {
		t.Errorf("flagged station = %v, want wall_balls", got)
	}
	if issues[0].Type != TypeWarning {
		t.Errorf("weak-station gap = %s, want warning", issues[0].Type)
	}
}

// TestSecondaryVolume verifies the combined SkiErg+Rowing floor.
func TestSecondaryVolume(t *testing.T) {
	low := volume.Weekly{StationMeters: map[taxonomy.Station]float64{
		taxonomy.StationSkiErg: 500,
		taxonomy.StationRowing: 1000,
	}}
	issues := checkSecondaryVolume(low)
	if len(issues) != 1 || issues[0].Category != CatSecondaryVolumeLow {
		t.Fatalf("1500 m of erg work: got %v, want one warning", issues)
	}

	enough := volume.Weekly{StationMeters: map[taxonomy.Station]float64{
		taxonomy.StationSkiErg: 1000,
		taxonomy.StationRowing: 1000,
	}}
	if issues := checkSecondaryVolume(enough); len(issues) != 0 {
		t.Errorf("2000 m of erg work flagged: %v", issues)
	}
}

// TestAnnotations verifies the missing-weight and missing-pace warnings,
// including the bodyweight exemption.
func TestAnnotations(t *testing.T) {
	p := &plan.Plan{
		WeekNumber: 1,
		Days: []plan.TrainingDay{
			{Day: 1, Exercises: []plan.Exercise{
				{Name: "Back Squat", Sets: 5, Reps: 5},              // missing weight
				{Name: "Push Ups", Sets: 3, Reps: 15},               // bodyweight, exempt
				{Name: "Deadlift", Sets: 3, Reps: 5, WeightKg: 100}, // fine
				{Name: "Easy Run", DistanceKm: 5},                   // missing pace
				{Name: "Tempo Run", DistanceKm: 4, Pace: "4:50/km"}, // fine
			}},
		},
	}

	issues := checkAnnotations(p)
	byCat := map[IssueCategory]Issue{}
	for _, is := range issues {
		byCat[is.Category] = is
	}

	weight, ok := byCat[CatMissingWeight]
	if !ok {
		t.Fatal("unweighted squat not flagged")
	}
	if exs, _ := weight.Details["exercises"].([]string); len(exs) != 1 {
		t.Errorf("missing-weight exercises = %v, want exactly the squat", weight.Details["exercises"])
	}

	pace, ok := byCat[CatMissingPace]
	if !ok {
		t.Fatal("paceless run not flagged")
	}
	if exs, _ := pace.Details["exercises"].([]string); len(exs) != 1 {
		t.Errorf("missing-pace exercises = %v, want exactly the easy run", pace.Details["exercises"])
	}
}

// TestEvaluate_ScoreAndValidity exercises the full pass on one flawed week:
// the score drops 20 per error and 5 per warning, floored at zero, and
// validity is exactly "no errors".
func TestEvaluate_ScoreAndValidity(t *testing.T) {
	p := &plan.Plan{
		WeekNumber: 5,
		Days: []plan.TrainingDay{
			{Day: 1, SessionType: "easy run", DurationMin: 60, Exercises: []plan.Exercise{
				{Name: "Easy Run", DistanceKm: 5, Pace: "conversational"},
			}},
			{Day: 3, SessionType: "hybrid", DurationMin: 75, Exercises: []plan.Exercise{
				{Name: "SkiErg", DistanceM: 1500},
				{Name: "Rowing", DistanceM: 1500},
				{Name: "Run", DistanceKm: 4, Pace: "steady"},
			}},
			{Day: 5, SessionType: "easy run", DurationMin: 45, Exercises: []plan.Exercise{
				{Name: "Easy Run", DistanceKm: 4, Pace: "conversational"},
			}},
		},
	}
	c := athlete.Constraints{
		Experience:   athlete.ExperienceIntermediate,
		TrainingDays: 3,
	}

	res := Evaluate(p, c)
	if !res.Valid {
		t.Fatalf("clean week invalid: %+v", res.Issues)
	}
	if res.Score != 100 {
		t.Errorf("Score = %d, want 100", res.Score)
	}

	// Break it: wrong day count (error) and an over-target week (warning).
	c.TrainingDays = 4
	c.TargetRunningKmMax = 10
	res = Evaluate(p, c)
	if res.Valid {
		t.Error("week with an error reported valid")
	}
	if res.Errors != 1 || res.Warnings != 1 {
		t.Fatalf("Errors=%d Warnings=%d, want 1 and 1: %+v", res.Errors, res.Warnings, res.Issues)
	}
	if res.Score != 75 {
		t.Errorf("Score = %d, want 75", res.Score)
	}
}
