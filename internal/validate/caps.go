package validate

import (
	"github.com/claude/racecoach/internal/athlete"
	"github.com/claude/racecoach/internal/taxonomy"
)

// SafetyCaps are the hard, non-negotiable ceilings for one experience level.
// The table below is static and versioned with the code: nothing varies at
// runtime except the experience-level lookup. Soft target ranges always
// operate above this floor.
type SafetyCaps struct {
	// MaxWeeklyIncreasePct caps week-over-week running volume growth.
	MaxWeeklyIncreasePct float64

	// MaxSingleRunKm caps any single session's running distance.
	MaxSingleRunKm float64

	// MaxHighIntensityRuns caps hard running sessions per week.
	MaxHighIntensityRuns int

	// MinRestDays is the minimum number of full non-training days per week.
	MinRestDays int

	// MaxConsecutiveTrainingDays caps the longest streak of back-to-back
	// training days.
	MaxConsecutiveTrainingDays int

	// MinEasyDays applies once the week has four or more training days.
	MinEasyDays int

	// SessionMinMinutes / SessionMaxMinutes bound each session's duration.
	SessionMinMinutes float64
	SessionMaxMinutes float64

	// StationMaxMeters caps weekly distance-measured station work.
	StationMaxMeters map[taxonomy.Station]float64

	// StationMaxReps caps weekly rep-measured station work.
	StationMaxReps map[taxonomy.Station]int
}

// hardSafetyCaps is keyed by experience level. Version: v1, calibrated
// against the duration-to-distance pace estimates in internal/volume.
var hardSafetyCaps = map[athlete.Experience]SafetyCaps{
	athlete.ExperienceBeginner: {
		MaxWeeklyIncreasePct:       10,
		MaxSingleRunKm:             8,
		MaxHighIntensityRuns:       2,
		MinRestDays:                2,
		MaxConsecutiveTrainingDays: 5,
		MinEasyDays:                2,
		SessionMinMinutes:          30,
		SessionMaxMinutes:          120,
		StationMaxMeters: map[taxonomy.Station]float64{
			taxonomy.StationSledPush:        200,
			taxonomy.StationSledPull:        200,
			taxonomy.StationBurpeeBroadJump: 200,
		},
		StationMaxReps: map[taxonomy.Station]int{
			taxonomy.StationWallBalls:       300,
			taxonomy.StationBurpeeBroadJump: 100,
		},
	},
	athlete.ExperienceIntermediate: {
		MaxWeeklyIncreasePct:       10,
		MaxSingleRunKm:             12,
		MaxHighIntensityRuns:       2,
		MinRestDays:                1,
		MaxConsecutiveTrainingDays: 5,
		MinEasyDays:                2,
		SessionMinMinutes:          30,
		SessionMaxMinutes:          120,
		StationMaxMeters: map[taxonomy.Station]float64{
			taxonomy.StationSledPush:        400,
			taxonomy.StationSledPull:        400,
			taxonomy.StationBurpeeBroadJump: 300,
		},
		StationMaxReps: map[taxonomy.Station]int{
			taxonomy.StationWallBalls:       450,
			taxonomy.StationBurpeeBroadJump: 150,
		},
	},
	athlete.ExperienceAdvanced: {
		MaxWeeklyIncreasePct:       10,
		MaxSingleRunKm:             16,
		MaxHighIntensityRuns:       2,
		MinRestDays:                1,
		MaxConsecutiveTrainingDays: 5,
		MinEasyDays:                2,
		SessionMinMinutes:          30,
		SessionMaxMinutes:          120,
		StationMaxMeters: map[taxonomy.Station]float64{
			taxonomy.StationSledPush:        600,
			taxonomy.StationSledPull:        600,
			taxonomy.StationBurpeeBroadJump: 400,
		},
		StationMaxReps: map[taxonomy.Station]int{
			taxonomy.StationWallBalls:       600,
			taxonomy.StationBurpeeBroadJump: 200,
		},
	},
}

// AllCaps returns the full per-level cap table, for read-only display
// surfaces. The returned map is a shallow copy; the table itself is never
// mutated.
func AllCaps() map[athlete.Experience]SafetyCaps {
	out := make(map[athlete.Experience]SafetyCaps, len(hardSafetyCaps))
	for level, caps := range hardSafetyCaps {
		out[level] = caps
	}
	return out
}

// CapsFor returns the safety cap table for the given level. Unknown levels
// resolve to the beginner (most conservative) table.
func CapsFor(level athlete.Experience) SafetyCaps {
	if caps, ok := hardSafetyCaps[level]; ok {
		return caps
	}
	return hardSafetyCaps[athlete.ExperienceBeginner]
}
