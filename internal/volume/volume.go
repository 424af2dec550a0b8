// Package volume derives weekly quantitative training load from a plan's raw
// numeric fields. Non-matching exercises are a defined zero, never an error:
// callers sum extractor output over whole days without filtering first.
package volume

import (
	"github.com/claude/racecoach/internal/plan"
	"github.com/claude/racecoach/internal/taxonomy"
)

// paceMinPerKm estimates running pace by subtype, in minutes per kilometer.
// These are deliberate approximations for converting duration-only
// prescriptions into distance; they are not measured truth and the safety
// caps are calibrated against exactly these constants. Do not tune them
// without recalibrating the caps.
var paceMinPerKm = map[taxonomy.RunType]float64{
	taxonomy.RunEasy:     6.5,
	taxonomy.RunTempo:    5.5,
	taxonomy.RunInterval: 5.0,
	taxonomy.RunLong:     6.5,
}

const defaultPaceMinPerKm = 6.0

// repFactor multiplies a per-set quantity by the set count, treating a
// missing set count as a single round.
func repFactor(sets int) float64 {
	if sets > 1 {
		return float64(sets)
	}
	return 1
}

// directKm returns the prescribed distance in kilometers when the exercise
// carries an explicit distance field, 0 otherwise.
func directKm(ex plan.Exercise) float64 {
	switch {
	case ex.DistanceKm > 0:
		return ex.DistanceKm * repFactor(ex.Sets)
	case ex.DistanceM > 0:
		return ex.DistanceM / 1000 * repFactor(ex.Sets)
	}
	return 0
}

// estimateKmFromDuration converts a duration-only running prescription into
// kilometers via the subtype pace table. Kept separate from directKm so the
// heuristic path stays visible in tests and call sites.
func estimateKmFromDuration(durationMin float64, rt taxonomy.RunType) float64 {
	pace, ok := paceMinPerKm[rt]
	if !ok || pace == 0 {
		pace = defaultPaceMinPerKm
	}
	return durationMin / pace
}

// RunningKm returns the weekly running contribution of one exercise in
// kilometers. Zero for anything that is not running. Direct distance wins;
// duration is only estimated when no distance is given.
func RunningKm(ex plan.Exercise) float64 {
	cat := taxonomy.Categorize(ex.Name)
	if cat.Kind != taxonomy.KindRunning {
		return 0
	}
	if km := directKm(ex); km > 0 {
		return km
	}
	if ex.DurationM > 0 {
		return estimateKmFromDuration(ex.DurationM, cat.RunType)
	}
	return 0
}

// burpeeJumpMetersPerRep converts between burpee broad jump reps and covered
// distance. Roughly two meters of ground per repetition.
const burpeeJumpMetersPerRep = 2.0

// StationMeters returns the meters of work one exercise contributes to the
// given station. Zero when the exercise is a different station or no station
// at all. Rep-specified burpee broad jumps convert at 2 m per rep.
func StationMeters(ex plan.Exercise, s taxonomy.Station) float64 {
	if !taxonomy.Categorize(ex.Name).IsStation(s) {
		return 0
	}
	if ex.DistanceM > 0 {
		return ex.DistanceM * repFactor(ex.Sets)
	}
	if ex.DistanceKm > 0 {
		return ex.DistanceKm * 1000 * repFactor(ex.Sets)
	}
	if s == taxonomy.StationBurpeeBroadJump && ex.Reps > 0 {
		return float64(ex.Reps) * repFactor(ex.Sets) * burpeeJumpMetersPerRep
	}
	return 0
}

// StationReps returns the repetitions one exercise contributes to the given
// station. Distance-specified burpee broad jumps convert back at 2 m per rep.
func StationReps(ex plan.Exercise, s taxonomy.Station) int {
	if !taxonomy.Categorize(ex.Name).IsStation(s) {
		return 0
	}
	if ex.Reps > 0 {
		return int(float64(ex.Reps) * repFactor(ex.Sets))
	}
	if s == taxonomy.StationBurpeeBroadJump {
		meters := ex.DistanceM + ex.DistanceKm*1000
		if meters > 0 {
			return int(meters * repFactor(ex.Sets) / burpeeJumpMetersPerRep)
		}
	}
	return 0
}

// Weekly is the recomputed load summary of one plan week.
type Weekly struct {
	RunningKm     float64                      `json:"running_km"`
	DayRunningKm  map[int]float64              `json:"day_running_km"`
	StationMeters map[taxonomy.Station]float64 `json:"station_meters"`
	StationReps   map[taxonomy.Station]int     `json:"station_reps"`
	StationsSeen  []taxonomy.Station           `json:"stations_seen"`
}

// Compute aggregates all tracked modalities over one plan week. The
// generator's own weekly_totals block is ignored; everything is re-derived
// from the exercises.
func Compute(p *plan.Plan) Weekly {
	w := Weekly{
		DayRunningKm:  make(map[int]float64),
		StationMeters: make(map[taxonomy.Station]float64),
		StationReps:   make(map[taxonomy.Station]int),
	}
	seen := make(map[taxonomy.Station]bool)

	for _, day := range p.Days {
		for _, ex := range day.Exercises {
			cat := taxonomy.Categorize(ex.Name)
			switch cat.Kind {
			case taxonomy.KindRunning:
				if km := RunningKm(ex); km > 0 {
					w.RunningKm += km
					w.DayRunningKm[day.Day] += km
				}
			case taxonomy.KindStation:
				s := cat.Station
				// A station exercise with no numbers still counts as
				// coverage for the week.
				seen[s] = true
				if m := StationMeters(ex, s); m > 0 {
					w.StationMeters[s] += m
				}
				if r := StationReps(ex, s); r > 0 {
					w.StationReps[s] += r
				}
			}
		}
	}

	for _, s := range taxonomy.AllStations {
		if seen[s] {
			w.StationsSeen = append(w.StationsSeen, s)
		}
	}
	return w
}
