// Package conflict detects contradictions between an athlete's declared
// constraints and the demands of the race format, before any plan is
// generated. Detection is a pure function over declarative rule tables.
package conflict

import (
	"strings"

	"github.com/claude/racecoach/internal/athlete"
	"github.com/claude/racecoach/internal/taxonomy"
)

// Severity grades a conflict. Blocking conflicts stop generation outright;
// warnings and infos are surfaced to the athlete but do not gate.
type Severity string

const (
	SeverityBlocking Severity = "blocking"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Category groups conflicts by their source constraint.
type Category string

const (
	CategoryInjury     Category = "injury"
	CategoryEquipment  Category = "equipment"
	CategoryTime       Category = "time"
	CategoryExperience Category = "experience"
)

// Conflict is one detected contradiction. Computed once per request from
// constraints alone, never from plan content, and not mutated afterwards.
type Conflict struct {
	ID                string             `json:"id"`
	Severity          Severity           `json:"severity"`
	Category          Category           `json:"category"`
	Title             string             `json:"title"`
	Description       string             `json:"description"`
	AffectedStations  []taxonomy.Station `json:"affected_stations,omitempty"`
	ResolutionOptions []string           `json:"resolution_options,omitempty"`
}

// injuryRule maps a reported pain area onto the stations it compromises.
type injuryRule struct {
	id          string
	match       []string // substrings matched against the athlete's pain points
	severity    Severity
	title       string
	description string
	stations    []taxonomy.Station
	resolutions []string
}

var injuryRules = []injuryRule{
	{
		id:       "injury_acl",
		match:    []string{"acl", "cruciate"},
		severity: SeverityBlocking,
		title:    "ACL injury vs. jump and lunge stations",
		description: "Burpee broad jumps and loaded lunges put shear load on the ACL; " +
			"training them on an unhealed ACL risks re-rupture.",
		stations: []taxonomy.Station{
			taxonomy.StationBurpeeBroadJump,
			taxonomy.StationSandbagLunges,
			taxonomy.StationWallBalls,
		},
		resolutions: []string{
			"get medical clearance before plan generation",
			"postpone the race and train non-impact modalities",
		},
	},
	{
		id:       "injury_knee",
		match:    []string{"knee", "meniscus", "patella"},
		severity: SeverityWarning,
		title:    "Knee pain vs. squat-pattern stations",
		description: "Wall balls, sandbag lunges, and burpee broad jumps are all deep " +
			"knee-flexion movements; expect substituted variations and reduced volume.",
		stations: []taxonomy.Station{
			taxonomy.StationWallBalls,
			taxonomy.StationSandbagLunges,
			taxonomy.StationBurpeeBroadJump,
		},
		resolutions: []string{
			"substitute box squats and reverse lunges at reduced depth",
			"cap weekly jump volume at half the normal progression",
		},
	},
	{
		id:       "injury_shoulder",
		match:    []string{"shoulder", "rotator"},
		severity: SeverityWarning,
		title:    "Shoulder pain vs. overhead and pulling stations",
		description: "SkiErg, wall balls, and sled pulling load the shoulder girdle " +
			"through a long range of motion.",
		stations: []taxonomy.Station{
			taxonomy.StationSkiErg,
			taxonomy.StationWallBalls,
			taxonomy.StationSledPull,
		},
		resolutions: []string{
			"keep wall ball targets below overhead height initially",
			"replace SkiErg intervals with rowing until pain-free",
		},
	},
	{
		id:       "injury_lower_back",
		match:    []string{"back", "lumbar", "disc"},
		severity: SeverityWarning,
		title:    "Lower-back pain vs. loaded carries and sled work",
		description: "Farmers carries, sandbag lunges, and heavy sled pushes compress " +
			"the lumbar spine under fatigue.",
		stations: []taxonomy.Station{
			taxonomy.StationFarmersCarry,
			taxonomy.StationSandbagLunges,
			taxonomy.StationSledPush,
		},
		resolutions: []string{
			"start carries at half race weight and progress weekly",
			"add daily core stability work before loaded training",
		},
	},
	{
		id:       "injury_ankle",
		match:    []string{"ankle", "achilles", "plantar"},
		severity: SeverityWarning,
		title:    "Ankle trouble vs. running and jump volume",
		description: "The race is run-dominant; ankle issues compound across " +
			"eight run segments plus burpee broad jumps.",
		stations: []taxonomy.Station{
			taxonomy.StationBurpeeBroadJump,
		},
		resolutions: []string{
			"shift early-block running volume onto the SkiErg and rower",
			"introduce jump work only after pain-free running",
		},
	},
}

// equipmentRule maps a missing piece of gear onto the stations that need it.
type equipmentRule struct {
	id          string
	match       []string
	severity    Severity
	title       string
	description string
	stations    []taxonomy.Station
	resolutions []string
}

var equipmentRules = []equipmentRule{
	{
		id:          "equipment_sled",
		match:       []string{"sled", "prowler"},
		severity:    SeverityWarning,
		title:       "No sled available",
		description: "Sled push and sled pull are the heaviest stations; they cannot be fully simulated without a sled.",
		stations:    []taxonomy.Station{taxonomy.StationSledPush, taxonomy.StationSledPull},
		resolutions: []string{
			"substitute heavy leg press, treadmill pushes, and rope rows",
			"schedule occasional sessions at a gym with a sled",
		},
	},
	{
		id:          "equipment_skierg",
		match:       []string{"ski"},
		severity:    SeverityWarning,
		title:       "No SkiErg available",
		description: "SkiErg pacing needs to be rehearsed; substitutes train the muscles but not the rhythm.",
		stations:    []taxonomy.Station{taxonomy.StationSkiErg},
		resolutions: []string{
			"substitute rope pull-downs and rowing intervals",
			"book SkiErg sessions in the final four race-prep weeks",
		},
	},
	{
		id:          "equipment_rower",
		match:       []string{"rower", "rowing"},
		severity:    SeverityWarning,
		title:       "No rowing machine available",
		description: "Rowing is a full pacing station; replace it with equivalent erg work where possible.",
		stations:    []taxonomy.Station{taxonomy.StationRowing},
		resolutions: []string{
			"substitute SkiErg or bike erg intervals at matched effort",
		},
	},
	{
		id:          "equipment_wall_ball",
		match:       []string{"wall ball", "wallball", "med ball", "medicine ball"},
		severity:    SeverityInfo,
		title:       "No wall ball available",
		description: "Wall ball endurance is trainable with thrusters at light weight.",
		stations:    []taxonomy.Station{taxonomy.StationWallBalls},
		resolutions: []string{
			"substitute light dumbbell thrusters at matching rep counts",
		},
	},
	{
		id:          "equipment_sandbag",
		match:       []string{"sandbag"},
		severity:    SeverityInfo,
		title:       "No sandbag available",
		description: "Any awkward front-loaded implement reproduces the lunge stimulus.",
		stations:    []taxonomy.Station{taxonomy.StationSandbagLunges},
		resolutions: []string{
			"substitute a loaded backpack or front-racked dumbbells",
		},
	},
	{
		id:          "equipment_kettlebells",
		match:       []string{"kettlebell", "farmers handle"},
		severity:    SeverityInfo,
		title:       "No carry implements available",
		description: "Farmers carry grip demand needs heavy handles; dumbbells are an acceptable stand-in.",
		stations:    []taxonomy.Station{taxonomy.StationFarmersCarry},
		resolutions: []string{
			"substitute heavy dumbbells or trap-bar carries",
		},
	},
}

// Detect evaluates the rule tables against the constraints and returns all
// conflicts, blocking first. Safe to call with a zero-value constraints
// struct.
func Detect(c athlete.Constraints) []Conflict {
	var conflicts []Conflict

	for _, r := range injuryRules {
		if matchesAny(c.PainPoints, r.match) {
			conflicts = append(conflicts, Conflict{
				ID: r.id, Severity: r.severity, Category: CategoryInjury,
				Title: r.title, Description: r.description,
				AffectedStations: r.stations, ResolutionOptions: r.resolutions,
			})
		}
	}

	for _, r := range equipmentRules {
		if matchesAny(c.MissingEquipment, r.match) {
			conflicts = append(conflicts, Conflict{
				ID: r.id, Severity: r.severity, Category: CategoryEquipment,
				Title: r.title, Description: r.description,
				AffectedStations: r.stations, ResolutionOptions: r.resolutions,
			})
		}
	}

	conflicts = append(conflicts, timeConflicts(c)...)
	conflicts = append(conflicts, experienceConflicts(c)...)

	sortBySeverity(conflicts)
	return conflicts
}

func matchesAny(declared []string, patterns []string) bool {
	for _, d := range declared {
		d = strings.ToLower(strings.TrimSpace(d))
		for _, p := range patterns {
			if strings.Contains(d, p) {
				return true
			}
		}
	}
	return false
}

func timeConflicts(c athlete.Constraints) []Conflict {
	var conflicts []Conflict

	if c.TrainingDays > 0 && c.TrainingDays < 2 {
		conflicts = append(conflicts, Conflict{
			ID: "time_training_days", Severity: SeverityBlocking, Category: CategoryTime,
			Title:       "Too few training days",
			Description: "One session per week cannot cover eight stations plus running; no safe plan exists at this frequency.",
			ResolutionOptions: []string{
				"commit to at least 2 training days per week",
				"push the race back until schedule allows",
			},
		})
	} else if c.TrainingDays == 2 {
		conflicts = append(conflicts, Conflict{
			ID: "time_training_days_low", Severity: SeverityWarning, Category: CategoryTime,
			Title:       "Low training frequency",
			Description: "Two days per week forces combined sessions and slow station rotation.",
			ResolutionOptions: []string{
				"add a third short session if possible",
			},
		})
	}

	if c.SessionMinutes > 0 && c.SessionMinutes < 45 {
		conflicts = append(conflicts, Conflict{
			ID: "time_session_length", Severity: SeverityWarning, Category: CategoryTime,
			Title:       "Short sessions",
			Description: "Under 45 minutes per session, compound run-plus-station work barely fits after a warmup.",
			ResolutionOptions: []string{
				"extend at least one weekly session to 60+ minutes",
			},
		})
	}

	if c.WeeksUntilEvent > 0 && c.WeeksUntilEvent < 6 {
		conflicts = append(conflicts, Conflict{
			ID: "time_short_runway", Severity: SeverityWarning, Category: CategoryTime,
			Title:       "Short runway to race day",
			Description: "Fewer than six weeks leaves no room for a progressive build; the plan will be maintenance-plus-taper.",
			ResolutionOptions: []string{
				"treat this event as a benchmark race and target a later one for a full build",
			},
		})
	}

	return conflicts
}

func experienceConflicts(c athlete.Constraints) []Conflict {
	if !c.FirstRace || c.WeeksUntilEvent == 0 || c.WeeksUntilEvent >= 8 {
		return nil
	}
	return []Conflict{{
		ID: "experience_first_race_runway", Severity: SeverityInfo, Category: CategoryExperience,
		Title:       "First race on a short runway",
		Description: "First-timers need all eight stations rehearsed within two weeks; a short runway compresses that window further.",
		ResolutionOptions: []string{
			"prioritize station familiarization over volume in week 1",
		},
	}}
}

var severityRank = map[Severity]int{
	SeverityBlocking: 0,
	SeverityWarning:  1,
	SeverityInfo:     2,
}

func sortBySeverity(conflicts []Conflict) {
	// Stable insertion keeps rule-table order within a severity band.
	for i := 1; i < len(conflicts); i++ {
		for j := i; j > 0 && severityRank[conflicts[j].Severity] < severityRank[conflicts[j-1].Severity]; j-- {
			conflicts[j], conflicts[j-1] = conflicts[j-1], conflicts[j]
		}
	}
}

// CanProceed reports whether generation may run: true exactly when no
// conflict is blocking.
func CanProceed(conflicts []Conflict) bool {
	for _, c := range conflicts {
		if c.Severity == SeverityBlocking {
			return false
		}
	}
	return true
}
