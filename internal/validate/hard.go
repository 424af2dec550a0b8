package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/claude/racecoach/internal/athlete"
	"github.com/claude/racecoach/internal/plan"
	"github.com/claude/racecoach/internal/taxonomy"
	"github.com/claude/racecoach/internal/volume"
)

// highIntensityKeywords flag a session or exercise as hard running work.
// Scanned over session type, exercise names, notes, and pace text.
var highIntensityKeywords = []string{
	"tempo", "threshold", "interval", "race pace", "hard", "max", "vo2", "sprint",
}

// easyKeywords flag a recovery-oriented session.
var easyKeywords = []string{
	"easy", "recovery", "mobility", "technique", "zone 2", "regeneration",
}

// IsHighIntensityDay reports whether a training day counts against the
// weekly high-intensity budget, detected by keyword scan of the session type
// and every exercise's name, notes, and pace text.
func IsHighIntensityDay(d plan.TrainingDay) bool {
	if containsAny(d.SessionType, highIntensityKeywords) || containsAny(d.Focus, highIntensityKeywords) {
		return true
	}
	for _, ex := range d.Exercises {
		if containsAny(ex.Name, highIntensityKeywords) ||
			containsAny(ex.Notes, highIntensityKeywords) ||
			containsAny(ex.Pace, highIntensityKeywords) {
			return true
		}
	}
	return false
}

// isEasyDay reports whether a training day is recovery-oriented. A day that
// scans as high intensity is never easy regardless of labeling.
func isEasyDay(d plan.TrainingDay) bool {
	if IsHighIntensityDay(d) {
		return false
	}
	return containsAny(d.SessionType, easyKeywords) || containsAny(d.Focus, easyKeywords)
}

func containsAny(s string, keywords []string) bool {
	if s == "" {
		return false
	}
	s = strings.ToLower(s)
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// CheckSafety evaluates the hard safety caps. Every finding is an error:
// these encode injury-prevention limits and are never downgraded to
// warnings. Each rule group is evaluated independently so one violation
// never masks another.
func CheckSafety(p *plan.Plan, c athlete.Constraints) []Issue {
	return checkSafety(p, c, volume.Compute(p))
}

func checkSafety(p *plan.Plan, c athlete.Constraints, vols volume.Weekly) []Issue {
	caps := CapsFor(c.Level())
	var issues []Issue

	issues = append(issues, checkRunningProgression(c, caps, vols)...)
	issues = append(issues, checkSingleSessionDistance(c, caps, vols)...)
	issues = append(issues, checkHighIntensity(p, caps)...)
	issues = append(issues, checkStationVolumes(c, caps, vols)...)
	issues = append(issues, checkRecoveryStructure(p, c, caps)...)
	issues = append(issues, checkSessionDurations(p, caps)...)

	return issues
}

// checkRunningProgression enforces the ≤10% week-over-week running increase.
// Skipped when there is no previous-week baseline.
func checkRunningProgression(c athlete.Constraints, caps SafetyCaps, vols volume.Weekly) []Issue {
	if c.PreviousWeekKm <= 0 {
		return nil
	}
	allowed := c.PreviousWeekKm * (1 + caps.MaxWeeklyIncreasePct/100)
	if vols.RunningKm <= allowed+0.001 {
		return nil
	}
	return []Issue{errorIssue(CatRunningProgression,
		fmt.Sprintf("weekly running %.1f km exceeds %.0f%% progression over last week's %.1f km (allowed %.1f km)",
			vols.RunningKm, caps.MaxWeeklyIncreasePct, c.PreviousWeekKm, allowed),
		true,
		map[string]any{
			"actual_km":    vols.RunningKm,
			"allowed_km":   allowed,
			"previous_km":  c.PreviousWeekKm,
			"increase_pct": caps.MaxWeeklyIncreasePct,
			"level":        string(c.Level()),
		})}
}

// checkSingleSessionDistance enforces the per-level single-session running
// ceiling.
func checkSingleSessionDistance(c athlete.Constraints, caps SafetyCaps, vols volume.Weekly) []Issue {
	var issues []Issue
	days := make([]int, 0, len(vols.DayRunningKm))
	for day := range vols.DayRunningKm {
		days = append(days, day)
	}
	sort.Ints(days)

	for _, day := range days {
		km := vols.DayRunningKm[day]
		if km <= caps.MaxSingleRunKm+0.001 {
			continue
		}
		issues = append(issues, errorIssue(CatSingleSessionDistance,
			fmt.Sprintf("day %d runs %.1f km, above the %.0f km single-session limit for %s athletes",
				day, km, caps.MaxSingleRunKm, c.Level()),
			true,
			map[string]any{
				"day":       day,
				"actual_km": km,
				"max_km":    caps.MaxSingleRunKm,
				"level":     string(c.Level()),
			}))
	}
	return issues
}

// checkHighIntensity enforces both the weekly high-intensity session count
// and the no-consecutive-hard-days rule.
func checkHighIntensity(p *plan.Plan, caps SafetyCaps) []Issue {
	var issues []Issue
	var hardDays []int
	for _, d := range p.Days {
		if IsHighIntensityDay(d) {
			hardDays = append(hardDays, d.Day)
		}
	}
	sort.Ints(hardDays)

	if len(hardDays) > caps.MaxHighIntensityRuns {
		issues = append(issues, errorIssue(CatHighIntensityCount,
			fmt.Sprintf("%d high-intensity days scheduled, maximum is %d per week",
				len(hardDays), caps.MaxHighIntensityRuns),
			true,
			map[string]any{
				"actual": len(hardDays),
				"max":    caps.MaxHighIntensityRuns,
				"days":   hardDays,
			}))
	}

	for i := 1; i < len(hardDays); i++ {
		if hardDays[i]-hardDays[i-1] == 1 {
			issues = append(issues, errorIssue(CatConsecutiveHardDays,
				fmt.Sprintf("high-intensity sessions on consecutive days %d and %d", hardDays[i-1], hardDays[i]),
				true,
				map[string]any{
					"first_day":  hardDays[i-1],
					"second_day": hardDays[i],
				}))
		}
	}
	return issues
}

// checkStationVolumes enforces the per-station weekly ceilings (reps for
// wall balls and burpee broad jumps, meters for sled work).
func checkStationVolumes(c athlete.Constraints, caps SafetyCaps, vols volume.Weekly) []Issue {
	var issues []Issue

	for _, s := range taxonomy.AllStations {
		if maxM, ok := caps.StationMaxMeters[s]; ok {
			if actual := vols.StationMeters[s]; actual > maxM {
				issues = append(issues, errorIssue(CatStationVolume,
					fmt.Sprintf("%s weekly volume %.0f m exceeds the %.0f m cap for %s athletes",
						s.DisplayName(), actual, maxM, c.Level()),
					true,
					map[string]any{
						"station":       string(s),
						"actual_meters": actual,
						"max_meters":    maxM,
						"unit":          "meters",
						"level":         string(c.Level()),
					}))
				continue
			}
		}
		if maxR, ok := caps.StationMaxReps[s]; ok {
			if actual := vols.StationReps[s]; actual > maxR {
				issues = append(issues, errorIssue(CatStationVolume,
					fmt.Sprintf("%s weekly volume %d reps exceeds the %d rep cap for %s athletes",
						s.DisplayName(), actual, maxR, c.Level()),
					true,
					map[string]any{
						"station":     string(s),
						"actual_reps": actual,
						"max_reps":    maxR,
						"unit":        "reps",
						"level":       string(c.Level()),
					}))
			}
		}
	}
	return issues
}

// checkRecoveryStructure enforces rest days, the consecutive-training-day
// streak limit, and the easy-day minimum for 4+ day weeks.
func checkRecoveryStructure(p *plan.Plan, c athlete.Constraints, caps SafetyCaps) []Issue {
	var issues []Issue

	restDays := 7 - len(p.Days)
	if restDays < caps.MinRestDays {
		issues = append(issues, errorIssue(CatRestDays,
			fmt.Sprintf("only %d rest day(s) in the week, %s athletes need at least %d",
				restDays, c.Level(), caps.MinRestDays),
			false,
			map[string]any{
				"actual": restDays,
				"min":    caps.MinRestDays,
				"level":  string(c.Level()),
			}))
	}

	if streak := longestConsecutiveRun(p.DayNumbers()); streak > caps.MaxConsecutiveTrainingDays {
		issues = append(issues, errorIssue(CatConsecutiveTrainingDays,
			fmt.Sprintf("%d consecutive training days scheduled, maximum is %d", streak, caps.MaxConsecutiveTrainingDays),
			false,
			map[string]any{
				"actual": streak,
				"max":    caps.MaxConsecutiveTrainingDays,
			}))
	}

	if len(p.Days) >= 4 {
		easy := 0
		for _, d := range p.Days {
			if isEasyDay(d) {
				easy++
			}
		}
		if easy < caps.MinEasyDays {
			issues = append(issues, errorIssue(CatEasyDays,
				fmt.Sprintf("only %d easy day(s) in a %d-day week, at least %d required", easy, len(p.Days), caps.MinEasyDays),
				true,
				map[string]any{
					"actual":        easy,
					"min":           caps.MinEasyDays,
					"training_days": len(p.Days),
				}))
		}
	}
	return issues
}

// longestConsecutiveRun finds the longest streak of day numbers that
// increment by exactly 1.
func longestConsecutiveRun(days []int) int {
	if len(days) == 0 {
		return 0
	}
	sorted := append([]int(nil), days...)
	sort.Ints(sorted)

	longest, current := 1, 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1]+1 {
			current++
			if current > longest {
				longest = current
			}
		} else if sorted[i] != sorted[i-1] {
			current = 1
		}
	}
	return longest
}

// checkSessionDurations bounds each session inside [min, max] minutes.
// Over-long sessions are fixable by trimming accessories; too-short ones
// need regeneration.
func checkSessionDurations(p *plan.Plan, caps SafetyCaps) []Issue {
	var issues []Issue
	for _, d := range p.Days {
		if d.DurationMin <= 0 {
			continue
		}
		if d.DurationMin > caps.SessionMaxMinutes {
			issues = append(issues, errorIssue(CatSessionDuration,
				fmt.Sprintf("day %d session is %.0f minutes, above the %.0f minute maximum", d.Day, d.DurationMin, caps.SessionMaxMinutes),
				true,
				map[string]any{
					"day":    d.Day,
					"actual": d.DurationMin,
					"max":    caps.SessionMaxMinutes,
					"bound":  "max",
				}))
		} else if d.DurationMin < caps.SessionMinMinutes {
			issues = append(issues, errorIssue(CatSessionDuration,
				fmt.Sprintf("day %d session is %.0f minutes, below the %.0f minute minimum", d.Day, d.DurationMin, caps.SessionMinMinutes),
				false,
				map[string]any{
					"day":    d.Day,
					"actual": d.DurationMin,
					"min":    caps.SessionMinMinutes,
					"bound":  "min",
				}))
		}
	}
	return issues
}
