package autofix

import (
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/claude/racecoach/internal/plan"
	"github.com/claude/racecoach/internal/taxonomy"
	"github.com/claude/racecoach/internal/validate"
	"github.com/claude/racecoach/internal/volume"
)

// minStationReps is the floor below which station rep counts are never
// scaled — fewer reps than this stops being meaningful practice.
const minStationReps = 5

// defaultExerciseMinutes estimates the session-time cost of an exercise with
// no duration of its own, used when trimming over-long sessions.
const defaultExerciseMinutes = 8

// scaleRunningExercise multiplies every quantitative field of a running
// exercise by factor. Duration-only prescriptions scale their duration so
// the estimated distance shrinks by the same proportion.
func scaleRunningExercise(ex *plan.Exercise, factor float64) {
	if ex.DistanceM > 0 {
		ex.DistanceM = math.Round(ex.DistanceM * factor)
	}
	if ex.DistanceKm > 0 {
		ex.DistanceKm = math.Round(ex.DistanceKm*factor*10) / 10
	}
	if ex.DistanceM == 0 && ex.DistanceKm == 0 && ex.DurationM > 0 {
		ex.DurationM = math.Round(ex.DurationM * factor)
	}
}

func scaleRunning(p *plan.Plan, factor float64, onlyDay int) {
	for di := range p.Days {
		d := &p.Days[di]
		if onlyDay > 0 && d.Day != onlyDay {
			continue
		}
		for ei := range d.Exercises {
			if taxonomy.Categorize(d.Exercises[ei].Name).Kind == taxonomy.KindRunning {
				scaleRunningExercise(&d.Exercises[ei], factor)
			}
		}
	}
}

// fixRunningProgression scales all running distances proportionally so the
// weekly total lands on the allowed progression ceiling.
func fixRunningProgression(p *plan.Plan, issue validate.Issue, log *slog.Logger) {
	allowed := detFloat(issue.Details, "allowed_km")
	scaleWeeklyRunningTo(p, allowed, log)
}

// fixRunningVolumeHigh scales running down to the soft maximum target.
func fixRunningVolumeHigh(p *plan.Plan, issue validate.Issue, log *slog.Logger) {
	maxKm := detFloat(issue.Details, "max_km")
	scaleWeeklyRunningTo(p, maxKm, log)
}

func scaleWeeklyRunningTo(p *plan.Plan, targetKm float64, log *slog.Logger) {
	if targetKm <= 0 {
		return
	}
	current := volume.Compute(p).RunningKm
	if current <= targetKm {
		return
	}
	// Scaled distances round to 0.1 km per exercise; shave the factor so
	// rounding cannot push the recomputed total back over the target.
	factor := targetKm / current * 0.98
	scaleRunning(p, factor, 0)
	log.Info("scaled weekly running", "from_km", current, "to_km", targetKm)
}

// fixSingleSessionDistance caps one day's running at the per-session limit.
func fixSingleSessionDistance(p *plan.Plan, issue validate.Issue, log *slog.Logger) {
	day := detInt(issue.Details, "day")
	maxKm := detFloat(issue.Details, "max_km")
	actual := detFloat(issue.Details, "actual_km")
	if day == 0 || maxKm <= 0 || actual <= maxKm {
		return
	}
	// Same rounding headroom as the weekly scaler.
	scaleRunning(p, maxKm/actual*0.98, day)
	log.Info("capped single-session run", "day", day, "to_km", maxKm)
}

// hardDayNumbers returns the high-intensity day numbers, ascending.
func hardDayNumbers(p *plan.Plan) []int {
	var days []int
	for _, d := range p.Days {
		if validate.IsHighIntensityDay(d) {
			days = append(days, d.Day)
		}
	}
	sort.Ints(days)
	return days
}

// highIntensityScrub removes hard-session vocabulary from a free-text field.
var highIntensityScrub = strings.NewReplacer(
	"tempo", "easy", "threshold", "easy", "interval", "steady",
	"race pace", "easy pace", "sprint", "stride",
	"vo2", "aerobic", "hard", "relaxed", "max", "moderate",
	"Tempo", "Easy", "Threshold", "Easy", "Interval", "Steady",
	"Sprint", "Stride", "Hard", "Relaxed", "Max", "Moderate",
)

// convertToEasyDay rewrites a day's session type and every exercise's hard
// vocabulary so the day no longer scans as high intensity.
func convertToEasyDay(d *plan.TrainingDay) {
	d.SessionType = "easy run"
	d.Focus = "recovery"
	for i := range d.Exercises {
		ex := &d.Exercises[i]
		ex.Name = highIntensityScrub.Replace(ex.Name)
		ex.Notes = highIntensityScrub.Replace(ex.Notes)
		if taxonomy.Categorize(ex.Name).Kind == taxonomy.KindRunning {
			ex.Pace = "easy, conversational"
		} else if ex.Pace != "" {
			ex.Pace = highIntensityScrub.Replace(ex.Pace)
		}
	}
}

// fixHighIntensityCount keeps the first allowed hard days and converts the
// rest to easy sessions.
func fixHighIntensityCount(p *plan.Plan, issue validate.Issue, log *slog.Logger) {
	max := detInt(issue.Details, "max")
	if max <= 0 {
		return
	}
	hard := hardDayNumbers(p)
	if len(hard) <= max {
		return
	}
	demote := make(map[int]bool)
	for _, day := range hard[max:] {
		demote[day] = true
	}
	for di := range p.Days {
		if demote[p.Days[di].Day] {
			convertToEasyDay(&p.Days[di])
			log.Info("converted hard day to easy", "day", p.Days[di].Day)
		}
	}
}

// fixConsecutiveHardDays converts the second of two back-to-back hard days
// into a recovery session.
func fixConsecutiveHardDays(p *plan.Plan, issue validate.Issue, log *slog.Logger) {
	second := detInt(issue.Details, "second_day")
	for di := range p.Days {
		if p.Days[di].Day == second && validate.IsHighIntensityDay(p.Days[di]) {
			convertToEasyDay(&p.Days[di])
			log.Info("converted consecutive hard day to recovery", "day", second)
			return
		}
	}
}

// fixStationVolume scales one station's weekly work down to its cap —
// distances proportionally, rep counts proportionally but never below the
// rep floor.
func fixStationVolume(p *plan.Plan, issue validate.Issue, log *slog.Logger) {
	station := taxonomy.Station(detString(issue.Details, "station"))
	unit := detString(issue.Details, "unit")

	var factor float64
	switch unit {
	case "meters":
		actual, max := detFloat(issue.Details, "actual_meters"), detFloat(issue.Details, "max_meters")
		if actual <= 0 || actual <= max {
			return
		}
		factor = max / actual
	case "reps":
		actual, max := detFloat(issue.Details, "actual_reps"), detFloat(issue.Details, "max_reps")
		if actual <= 0 || actual <= max {
			return
		}
		factor = max / actual
	default:
		return
	}

	for di := range p.Days {
		for ei := range p.Days[di].Exercises {
			ex := &p.Days[di].Exercises[ei]
			if !taxonomy.Categorize(ex.Name).IsStation(station) {
				continue
			}
			if ex.DistanceM > 0 {
				ex.DistanceM = math.Round(ex.DistanceM * factor)
			}
			if ex.DistanceKm > 0 {
				ex.DistanceKm = math.Round(ex.DistanceKm*factor*100) / 100
			}
			if ex.Reps > 0 {
				scaled := int(math.Round(float64(ex.Reps) * factor))
				if scaled < minStationReps {
					scaled = minStationReps
				}
				ex.Reps = scaled
			}
		}
	}
	log.Info("scaled station volume", "station", string(station), "factor", factor)
}

// fixStationCoverage inserts template exercises for missing stations,
// round-robin across the week's training days so no single session absorbs
// the whole gap.
func fixStationCoverage(p *plan.Plan, issue validate.Issue, log *slog.Logger) {
	missing := detStrings(issue.Details, "missing")
	if len(missing) == 0 || len(p.Days) == 0 {
		return
	}

	order := make([]int, len(p.Days))
	for i := range p.Days {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return p.Days[order[a]].Day < p.Days[order[b]].Day })

	for i, name := range missing {
		tmpl, ok := stationTemplates[taxonomy.Station(name)]
		if !ok {
			continue
		}
		di := order[i%len(order)]
		p.Days[di].Exercises = append(p.Days[di].Exercises, tmpl)
		log.Info("inserted missing station", "station", name, "day", p.Days[di].Day)
	}
}

// trimOrder ranks exercise kinds from most to least expendable when a
// session runs long. Running and station work are the race — they go last
// and in practice never, because the loop stops at the duration target.
var trimOrder = map[taxonomy.Kind]int{
	taxonomy.KindStrength: 0, // accessory handled separately below
	taxonomy.KindCore:     2,
	taxonomy.KindMobility: 3,
	taxonomy.KindCardio:   4,
	taxonomy.KindOther:    1,
	taxonomy.KindWarmup:   5,
	taxonomy.KindRunning:  6,
	taxonomy.KindStation:  6,
}

func trimRank(ex plan.Exercise) int {
	cat := taxonomy.Categorize(ex.Name)
	if cat.Kind == taxonomy.KindStrength {
		if cat.Strength == taxonomy.StrengthAccessory {
			return -1 // isolation work goes first
		}
		return trimOrder[taxonomy.KindStrength]
	}
	return trimOrder[cat.Kind]
}

func exerciseMinutes(ex plan.Exercise) float64 {
	if ex.DurationM > 0 {
		return ex.DurationM
	}
	return defaultExerciseMinutes
}

// fixSessionDuration trims the least-valuable exercises from an over-long
// session until it fits under the maximum, never dropping below the session
// minimum and never touching running or station work.
func fixSessionDuration(p *plan.Plan, issue validate.Issue, log *slog.Logger) {
	if detString(issue.Details, "bound") != "max" {
		return // under-minimum sessions need regeneration, not trimming
	}
	day := detInt(issue.Details, "day")
	max := detFloat(issue.Details, "max")
	const minFloor = 30

	for di := range p.Days {
		d := &p.Days[di]
		if d.Day != day {
			continue
		}
		for d.DurationMin > max {
			idx, rank := -1, int(math.MaxInt32)
			for ei, ex := range d.Exercises {
				if r := trimRank(ex); r < rank && r < trimOrder[taxonomy.KindRunning] {
					idx, rank = ei, r
				}
			}
			if idx < 0 {
				break // nothing expendable left
			}
			cost := exerciseMinutes(d.Exercises[idx])
			if d.DurationMin-cost < minFloor {
				break
			}
			log.Info("trimmed exercise from over-long session", "day", day, "exercise", d.Exercises[idx].Name)
			d.Exercises = append(d.Exercises[:idx], d.Exercises[idx+1:]...)
			d.DurationMin -= cost
		}
		return
	}
}

// fixEasyDays relabels the lowest-intensity remaining days as easy until the
// week carries the required recovery count.
func fixEasyDays(p *plan.Plan, issue validate.Issue, log *slog.Logger) {
	min := detInt(issue.Details, "min")
	have := detInt(issue.Details, "actual")

	for di := range p.Days {
		if have >= min {
			return
		}
		d := &p.Days[di]
		if validate.IsHighIntensityDay(*d) {
			continue
		}
		if strings.Contains(strings.ToLower(d.SessionType), "easy") {
			continue
		}
		d.SessionType = "easy " + d.SessionType
		if d.Focus == "" {
			d.Focus = "recovery"
		}
		have++
		log.Info("relabeled day as easy", "day", d.Day)
	}
}
