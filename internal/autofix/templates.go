package autofix

import (
	"github.com/claude/racecoach/internal/plan"
	"github.com/claude/racecoach/internal/taxonomy"
)

// stationTemplates are the exercises inserted for missing station coverage.
// Quantities mirror race-day demands scaled to a training dose; weights are
// deliberately unset — the athlete loads to ability and the soft annotation
// check does not fire for station work.
var stationTemplates = map[taxonomy.Station]plan.Exercise{
	taxonomy.StationSkiErg: {
		Name:      "SkiErg",
		DistanceM: 1000,
		Notes:     "steady race-pace effort, focus on hip drive",
	},
	taxonomy.StationSledPush: {
		Name:      "Sled Push",
		Sets:      4,
		DistanceM: 25,
		Notes:     "moderate load, low body position, full rest between sets",
	},
	taxonomy.StationSledPull: {
		Name:      "Sled Pull",
		Sets:      4,
		DistanceM: 25,
		Notes:     "hand-over-hand or backward drag, keep tension on the rope",
	},
	taxonomy.StationBurpeeBroadJump: {
		Name:  "Burpee Broad Jump",
		Reps:  20,
		Notes: "steady rhythm, land soft, stand tall between reps",
	},
	taxonomy.StationRowing: {
		Name:      "Rowing",
		DistanceM: 1000,
		Notes:     "negative split, drive with the legs",
	},
	taxonomy.StationFarmersCarry: {
		Name:      "Farmers Carry",
		Sets:      4,
		DistanceM: 50,
		Notes:     "heavy but unbroken, upright posture",
	},
	taxonomy.StationSandbagLunges: {
		Name:      "Sandbag Lunges",
		DistanceM: 100,
		Notes:     "bag on shoulders, knee kisses the floor each step",
	},
	taxonomy.StationWallBalls: {
		Name:  "Wall Balls",
		Sets:  3,
		Reps:  25,
		Notes: "full-depth squat, hit the target every rep",
	},
}
