package volume

import (
	"math"
	"testing"

	"github.com/claude/racecoach/internal/plan"
	"github.com/claude/racecoach/internal/taxonomy"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

// TestRunningKm_DirectDistance verifies explicit distances win and sets
// multiply per-set distances.
func TestRunningKm_DirectDistance(t *testing.T) {
	cases := []struct {
		name string
		ex   plan.Exercise
		want float64
	}{
		{"km field", plan.Exercise{Name: "Easy Run", DistanceKm: 8}, 8},
		{"meter field", plan.Exercise{Name: "Tempo Run", DistanceM: 5000}, 5},
		{"interval sets", plan.Exercise{Name: "Interval Run", Sets: 6, DistanceM: 800}, 4.8},
		{"distance beats duration", plan.Exercise{Name: "Easy Run", DistanceKm: 6, DurationM: 90}, 6},
	}
	for _, tc := range cases {
		got := RunningKm(tc.ex)
		if !almostEqual(got, tc.want) {
			t.Errorf("%s: RunningKm = %v, want %v", tc.name, got, tc.want)
		}
	}
}

// TestRunningKm_DurationEstimate verifies the duration path uses the
// subtype pace table: 65 easy minutes at 6.5 min/km is 10 km, 30 tempo
// minutes at 5.5 min/km is 5.45 km.
func TestRunningKm_DurationEstimate(t *testing.T) {
	cases := []struct {
		name string
		ex   plan.Exercise
		want float64
	}{
		{"easy pace", plan.Exercise{Name: "Easy Run", DurationM: 65}, 10},
		{"tempo pace", plan.Exercise{Name: "Tempo Run", DurationM: 30}, 30.0 / 5.5},
		{"interval pace", plan.Exercise{Name: "Interval Run", DurationM: 25}, 5},
		{"long run pace", plan.Exercise{Name: "Long Run", DurationM: 130}, 20},
		{"default pace", plan.Exercise{Name: "Run", DurationM: 60}, 10},
	}
	for _, tc := range cases {
		got := RunningKm(tc.ex)
		if !almostEqual(got, tc.want) {
			t.Errorf("%s: RunningKm = %v, want %v", tc.name, got, tc.want)
		}
	}
}

// TestRunningKm_NonRunningIsZero verifies the defined-zero contract for
// exercises outside the running bucket, whatever numbers they carry.
func TestRunningKm_NonRunningIsZero(t *testing.T) {
	cases := []plan.Exercise{
		{Name: "SkiErg", DistanceM: 1000},
		{Name: "Back Squat", Sets: 5, Reps: 5},
		{Name: "Sled Push", DistanceM: 100, DurationM: 10},
		{Name: "Assault Bike", DurationM: 20},
	}
	for _, ex := range cases {
		if got := RunningKm(ex); got != 0 {
			t.Errorf("RunningKm(%q) = %v, want 0", ex.Name, got)
		}
	}
}

// TestStationMeters verifies per-station attribution and the 2 m/rep
// burpee broad jump conversion.
func TestStationMeters(t *testing.T) {
	cases := []struct {
		name    string
		ex      plan.Exercise
		station taxonomy.Station
		want    float64
	}{
		{"direct meters", plan.Exercise{Name: "Sled Push", DistanceM: 50}, taxonomy.StationSledPush, 50},
		{"sets multiply", plan.Exercise{Name: "Sled Push", Sets: 4, DistanceM: 25}, taxonomy.StationSledPush, 100},
		{"km converts", plan.Exercise{Name: "Rowing", DistanceKm: 2}, taxonomy.StationRowing, 2000},
		{"bbj reps to meters", plan.Exercise{Name: "Burpee Broad Jump", Reps: 30}, taxonomy.StationBurpeeBroadJump, 60},
		{"wrong station", plan.Exercise{Name: "Sled Push", DistanceM: 50}, taxonomy.StationSledPull, 0},
		{"not a station", plan.Exercise{Name: "Easy Run", DistanceKm: 5}, taxonomy.StationRowing, 0},
	}
	for _, tc := range cases {
		got := StationMeters(tc.ex, tc.station)
		if !almostEqual(got, tc.want) {
			t.Errorf("%s: StationMeters = %v, want %v", tc.name, got, tc.want)
		}
	}
}

// TestStationReps verifies rep attribution and the reverse distance-to-rep
// conversion for burpee broad jumps.
func TestStationReps(t *testing.T) {
	cases := []struct {
		name    string
		ex      plan.Exercise
		station taxonomy.Station
		want    int
	}{
		{"direct reps", plan.Exercise{Name: "Wall Balls", Reps: 25}, taxonomy.StationWallBalls, 25},
		{"sets multiply", plan.Exercise{Name: "Wall Balls", Sets: 3, Reps: 25}, taxonomy.StationWallBalls, 75},
		{"bbj meters to reps", plan.Exercise{Name: "Burpee Broad Jump", DistanceM: 40}, taxonomy.StationBurpeeBroadJump, 20},
		{"no numbers", plan.Exercise{Name: "Wall Balls"}, taxonomy.StationWallBalls, 0},
	}
	for _, tc := range cases {
		got := StationReps(tc.ex, tc.station)
		if got != tc.want {
			t.Errorf("%s: StationReps = %d, want %d", tc.name, got, tc.want)
		}
	}
}

// TestCompute_Aggregation verifies the weekly rollup: per-day running,
// station meters and reps, and coverage tracking in race order.
func TestCompute_Aggregation(t *testing.T) {
	p := &plan.Plan{
		WeekNumber: 1,
		Days: []plan.TrainingDay{
			{
				Day: 1, SessionType: "easy run",
				Exercises: []plan.Exercise{
					{Name: "Easy Run", DistanceKm: 6},
				},
			},
			{
				Day: 3, SessionType: "hybrid",
				Exercises: []plan.Exercise{
					{Name: "Run", DistanceKm: 4},
					{Name: "SkiErg", DistanceM: 1000},
					{Name: "Wall Balls", Sets: 3, Reps: 20},
				},
			},
			{
				Day: 5, SessionType: "strength",
				Exercises: []plan.Exercise{
					{Name: "Rowing", DistanceM: 1500},
					{Name: "Back Squat", Sets: 5, Reps: 5, WeightKg: 80},
					{Name: "Sled Push"},
				},
			},
		},
	}

	w := Compute(p)

	if !almostEqual(w.RunningKm, 10) {
		t.Errorf("RunningKm = %v, want 10", w.RunningKm)
	}
	if !almostEqual(w.DayRunningKm[1], 6) || !almostEqual(w.DayRunningKm[3], 4) {
		t.Errorf("DayRunningKm = %v, want day1=6 day3=4", w.DayRunningKm)
	}
	if !almostEqual(w.StationMeters[taxonomy.StationSkiErg], 1000) {
		t.Errorf("SkiErg meters = %v, want 1000", w.StationMeters[taxonomy.StationSkiErg])
	}
	if w.StationReps[taxonomy.StationWallBalls] != 60 {
		t.Errorf("Wall Balls reps = %d, want 60", w.StationReps[taxonomy.StationWallBalls])
	}

	// A station exercise with no numbers still counts as seen.
	want := []taxonomy.Station{
		taxonomy.StationSkiErg,
		taxonomy.StationSledPush,
		taxonomy.StationRowing,
		taxonomy.StationWallBalls,
	}
	if len(w.StationsSeen) != len(want) {
		t.Fatalf("StationsSeen = %v, want %v", w.StationsSeen, want)
	}
	for i := range want {
		if w.StationsSeen[i] != want[i] {
			t.Errorf("StationsSeen[%d] = %s, want %s (race order)", i, w.StationsSeen[i], want[i])
		}
	}
}
