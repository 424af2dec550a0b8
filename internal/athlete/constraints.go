// Package athlete holds the declarative athlete profile consumed by the
// conflict detector, the validators, and the generation orchestrator.
package athlete

import "github.com/claude/racecoach/internal/taxonomy"

// Experience is the athlete's self-reported training level. It keys the hard
// safety cap table.
type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

// Valid reports whether e is a known experience level.
func (e Experience) Valid() bool {
	switch e {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced:
		return true
	}
	return false
}

// Constraints is the flat declarative profile the caller supplies per
// validation or generation call. Nothing here is derived from a plan.
type Constraints struct {
	Experience      Experience `json:"experience" yaml:"experience"`
	TrainingDays    int        `json:"training_days" yaml:"training_days"`
	SessionMinutes  int        `json:"session_minutes" yaml:"session_minutes"`
	WeeksUntilEvent int        `json:"weeks_until_event" yaml:"weeks_until_event"`
	FirstRace       bool       `json:"first_race" yaml:"first_race"`

	// PainPoints are current injury areas ("knee", "shoulder", ...). They
	// feed the pre-generation conflict rules.
	PainPoints []string `json:"pain_points,omitempty" yaml:"pain_points,omitempty"`

	// MissingEquipment lists gear the athlete trains without ("sled",
	// "ski_erg", ...).
	MissingEquipment []string `json:"missing_equipment,omitempty" yaml:"missing_equipment,omitempty"`

	// WeakStations the athlete wants extra exposure to; under-frequency is
	// flagged as a soft warning.
	WeakStations []taxonomy.Station `json:"weak_stations,omitempty" yaml:"weak_stations,omitempty"`

	// Volume targets computed upstream from the athlete's history and the
	// periodization phase.
	TargetRunningKmMin float64 `json:"target_running_km_min,omitempty" yaml:"target_running_km_min,omitempty"`
	TargetRunningKmMax float64 `json:"target_running_km_max,omitempty" yaml:"target_running_km_max,omitempty"`

	// PreviousWeekKm is last week's actual running volume, the baseline for
	// the 10% progression cap. Zero means no history (progression check is
	// skipped).
	PreviousWeekKm float64 `json:"previous_week_km,omitempty" yaml:"previous_week_km,omitempty"`

	// PriorStationsCovered is the explicit cross-week memory for the
	// first-timer coverage rule: every station already practiced in earlier
	// weeks. The validator itself stays stateless.
	PriorStationsCovered []taxonomy.Station `json:"prior_stations_covered,omitempty" yaml:"prior_stations_covered,omitempty"`
}

// Level returns the experience level, defaulting unknown values to beginner
// so cap lookups always resolve to the most conservative table.
func (c Constraints) Level() Experience {
	if c.Experience.Valid() {
		return c.Experience
	}
	return ExperienceBeginner
}
