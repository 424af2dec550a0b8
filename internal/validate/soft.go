package validate

import (
	"fmt"

	"github.com/claude/racecoach/internal/athlete"
	"github.com/claude/racecoach/internal/plan"
	"github.com/claude/racecoach/internal/taxonomy"
	"github.com/claude/racecoach/internal/volume"
)

// secondaryModalityMinMeters is the weekly floor of machine-cardio station
// work (SkiErg + Rowing) below which a soft warning fires. Race pacing is
// built on these two ergs; a week that barely touches them is flagged.
const secondaryModalityMinMeters = 2000

// CheckTargets evaluates the soft target ranges, structural expectations,
// and station coverage. Under-target findings block (errors); over-target
// and advisory findings warn.
func CheckTargets(p *plan.Plan, c athlete.Constraints) []Issue {
	return checkTargets(p, c, volume.Compute(p))
}

func checkTargets(p *plan.Plan, c athlete.Constraints, vols volume.Weekly) []Issue {
	var issues []Issue

	issues = append(issues, checkTrainingDayCount(p, c)...)
	issues = append(issues, checkRunningTargets(c, vols)...)
	issues = append(issues, checkStationCoverage(p, c, vols)...)
	issues = append(issues, checkWeakStationFrequency(p, c)...)
	issues = append(issues, checkSecondaryVolume(vols)...)
	issues = append(issues, checkAnnotations(p)...)

	return issues
}

// checkTrainingDayCount requires the plan to schedule exactly the number of
// days the athlete committed to. Not fixable: rebuilding whole days is
// generator work.
func checkTrainingDayCount(p *plan.Plan, c athlete.Constraints) []Issue {
	if c.TrainingDays <= 0 || len(p.Days) == c.TrainingDays {
		return nil
	}
	return []Issue{errorIssue(CatTrainingDays,
		fmt.Sprintf("plan schedules %d training days, expected: %d", len(p.Days), c.TrainingDays),
		false,
		map[string]any{
			"actual":   len(p.Days),
			"expected": c.TrainingDays,
		})}
}

// checkRunningTargets compares weekly running volume against the target
// range. Below minimum is an error (the week undertrains the race's dominant
// modality); above maximum is a warning, fixable by proportional scaling.
func checkRunningTargets(c athlete.Constraints, vols volume.Weekly) []Issue {
	var issues []Issue
	if c.TargetRunningKmMin > 0 && vols.RunningKm < c.TargetRunningKmMin {
		issues = append(issues, errorIssue(CatRunningVolumeLow,
			fmt.Sprintf("weekly running %.1f km is below the %.1f km minimum target", vols.RunningKm, c.TargetRunningKmMin),
			false,
			map[string]any{
				"actual_km": vols.RunningKm,
				"min_km":    c.TargetRunningKmMin,
			}))
	}
	if c.TargetRunningKmMax > 0 && vols.RunningKm > c.TargetRunningKmMax {
		issues = append(issues, warningIssue(CatRunningVolumeHigh,
			fmt.Sprintf("weekly running %.1f km is above the %.1f km maximum target", vols.RunningKm, c.TargetRunningKmMax),
			true,
			map[string]any{
				"actual_km": vols.RunningKm,
				"max_km":    c.TargetRunningKmMax,
			}))
	}
	return issues
}

// checkStationCoverage implements the first-timer coverage window: a novice
// must practice all eight stations within the first two training weeks.
//
// Coverage is the union of this week's stations and everything the caller
// reports as already covered in prior weeks — the cross-week memory is an
// explicit input, the check itself is stateless. Week 1 with residual gaps
// warns; week 2 with residual gaps (against the union) errors; from week 3
// the check is inert.
func checkStationCoverage(p *plan.Plan, c athlete.Constraints, vols volume.Weekly) []Issue {
	if !c.FirstRace || p.WeekNumber > 2 {
		return nil
	}

	covered := make(map[taxonomy.Station]bool)
	for _, s := range c.PriorStationsCovered {
		covered[s] = true
	}
	for _, s := range vols.StationsSeen {
		covered[s] = true
	}

	var missing []string
	for _, s := range taxonomy.AllStations {
		if !covered[s] {
			missing = append(missing, string(s))
		}
	}
	if len(missing) == 0 {
		return nil
	}

	// Up to two missing stations can be patched in via template exercises;
	// a larger gap needs a regenerated week.
	fixable := len(missing) <= 2
	details := map[string]any{
		"missing":  missing,
		"week":     p.WeekNumber,
		"required": len(taxonomy.AllStations),
	}

	if p.WeekNumber == 1 {
		return []Issue{warningIssue(CatStationCoverage,
			fmt.Sprintf("first-race athlete has not yet seen %d station(s): %v — must be covered by week 2", len(missing), missing),
			fixable, details)}
	}
	return []Issue{errorIssue(CatStationCoverage,
		fmt.Sprintf("first-race athlete still missing %d station(s) after week 2: %v", len(missing), missing),
		fixable, details)}
}

// checkWeakStationFrequency warns when a station the athlete flagged as weak
// appears fewer than twice in the week.
func checkWeakStationFrequency(p *plan.Plan, c athlete.Constraints) []Issue {
	if len(c.WeakStations) == 0 {
		return nil
	}

	freq := make(map[taxonomy.Station]int)
	for _, d := range p.Days {
		seenToday := make(map[taxonomy.Station]bool)
		for _, ex := range d.Exercises {
			cat := taxonomy.Categorize(ex.Name)
			if cat.Kind == taxonomy.KindStation && !seenToday[cat.Station] {
				seenToday[cat.Station] = true
				freq[cat.Station]++
			}
		}
	}

	var issues []Issue
	for _, s := range c.WeakStations {
		if freq[s] < 2 {
			issues = append(issues, warningIssue(CatWeakStationFrequency,
				fmt.Sprintf("weak station %s appears on %d day(s), aim for at least 2", s.DisplayName(), freq[s]),
				false,
				map[string]any{
					"station": string(s),
					"actual":  freq[s],
					"min":     2,
				}))
		}
	}
	return issues
}

// checkSecondaryVolume warns when combined SkiErg and Rowing volume is under
// the weekly floor.
func checkSecondaryVolume(vols volume.Weekly) []Issue {
	total := vols.StationMeters[taxonomy.StationSkiErg] + vols.StationMeters[taxonomy.StationRowing]
	if total >= secondaryModalityMinMeters {
		return nil
	}
	return []Issue{warningIssue(CatSecondaryVolumeLow,
		fmt.Sprintf("only %.0f m of erg work (SkiErg + Rowing) scheduled, target is %d m per week", total, secondaryModalityMinMeters),
		false,
		map[string]any{
			"actual_meters": total,
			"min_meters":    secondaryModalityMinMeters,
		})}
}

// checkAnnotations warns about strength work without weights and runs
// without pace guidance. Aggregated into one warning per kind so a sloppy
// plan doesn't drown real findings.
func checkAnnotations(p *plan.Plan) []Issue {
	var noWeight, noPace []string

	for _, d := range p.Days {
		for _, ex := range d.Exercises {
			cat := taxonomy.Categorize(ex.Name)
			switch cat.Kind {
			case taxonomy.KindStrength:
				if ex.WeightKg == 0 && ex.Sets > 0 && !isBodyweight(ex.Name) {
					noWeight = append(noWeight, fmt.Sprintf("day %d: %s", d.Day, ex.Name))
				}
			case taxonomy.KindRunning:
				if ex.Pace == "" && ex.Notes == "" {
					noPace = append(noPace, fmt.Sprintf("day %d: %s", d.Day, ex.Name))
				}
			}
		}
	}

	var issues []Issue
	if len(noWeight) > 0 {
		issues = append(issues, warningIssue(CatMissingWeight,
			fmt.Sprintf("%d strength exercise(s) have no weight prescription", len(noWeight)),
			false,
			map[string]any{"exercises": noWeight}))
	}
	if len(noPace) > 0 {
		issues = append(issues, warningIssue(CatMissingPace,
			fmt.Sprintf("%d running segment(s) have no pace or notes", len(noPace)),
			false,
			map[string]any{"exercises": noPace}))
	}
	return issues
}

// bodyweightMovements are strength exercises where a missing weight field is
// expected, not an omission.
var bodyweightMovements = map[string]bool{
	"push up":      true,
	"pull up":      true,
	"dip":          true,
	"inverted row": true,
	"wall sit":     true,
	"pistol":       true,
}

func isBodyweight(name string) bool {
	return bodyweightMovements[taxonomy.Normalize(name)]
}
