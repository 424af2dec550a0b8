package plan

// Exercise is a single prescribed exercise inside a training day. All fields
// except Name are optional — the generator fills in whatever makes sense for
// the movement (a run has distance, a strength lift has sets/reps/weight).
type Exercise struct {
	Name       string  `json:"name"`
	Sets       int     `json:"sets,omitempty"`
	Reps       int     `json:"reps,omitempty"`
	WeightKg   float64 `json:"weight_kg,omitempty"`
	DistanceM  float64 `json:"distance_m,omitempty"`
	DistanceKm float64 `json:"distance_km,omitempty"`
	DurationM  float64 `json:"duration_min,omitempty"`
	RestSec    int     `json:"rest_sec,omitempty"`
	Pace       string  `json:"pace,omitempty"`
	Notes      string  `json:"notes,omitempty"`
}

// TrainingDay is one scheduled session. Day numbers run 1..7 within the week;
// rest days are simply absent from Days.
type TrainingDay struct {
	Day         int        `json:"day"`
	SessionType string     `json:"session_type"`
	DurationMin float64    `json:"duration_min,omitempty"`
	Focus       string     `json:"focus,omitempty"`
	Exercises   []Exercise `json:"exercises"`
}

// WeeklyTotals are the generator's own claimed aggregates. They are advisory
// only — validators always recompute volumes from the exercises themselves.
type WeeklyTotals struct {
	RunningKm      float64 `json:"running_km,omitempty"`
	SessionCount   int     `json:"session_count,omitempty"`
	TotalDuration  float64 `json:"total_duration_min,omitempty"`
	StationVisited int     `json:"stations_visited,omitempty"`
}

// Plan is one generated training week, the mutable subject of validation.
// It is created by the external generator, cloned and repaired by the
// auto-fix engine, and either accepted or discarded.
type Plan struct {
	WeekNumber int           `json:"week_number"`
	Phase      string        `json:"phase,omitempty"`
	Days       []TrainingDay `json:"days"`
	Totals     WeeklyTotals  `json:"weekly_totals,omitempty"`
}

// Clone returns a deep copy. Fixers mutate clones only, never the candidate
// the orchestrator might still need to return as best-seen.
func (p *Plan) Clone() *Plan {
	if p == nil {
		return nil
	}
	out := *p
	out.Days = make([]TrainingDay, len(p.Days))
	for i, d := range p.Days {
		out.Days[i] = d
		out.Days[i].Exercises = make([]Exercise, len(d.Exercises))
		copy(out.Days[i].Exercises, d.Exercises)
	}
	return &out
}

// TrainingDayCount returns the number of non-rest days in the week.
func (p *Plan) TrainingDayCount() int {
	return len(p.Days)
}

// DayNumbers returns the sorted-as-given day numbers of all training days.
func (p *Plan) DayNumbers() []int {
	nums := make([]int, 0, len(p.Days))
	for _, d := range p.Days {
		nums = append(nums, d.Day)
	}
	return nums
}
