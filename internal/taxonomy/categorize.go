package taxonomy

import "strings"

// Kind is the top-level exercise classification.
type Kind string

const (
	KindWarmup   Kind = "warmup"
	KindStation  Kind = "station"
	KindRunning  Kind = "running"
	KindCore     Kind = "core"
	KindMobility Kind = "mobility"
	KindStrength Kind = "strength"
	KindCardio   Kind = "cardio"
	KindOther    Kind = "other"
)

// RunType is the running-session subtype, used by the pace estimator and the
// high-intensity detection in the safety validator.
type RunType string

const (
	RunEasy     RunType = "easy"
	RunTempo    RunType = "tempo"
	RunInterval RunType = "interval"
	RunLong     RunType = "long"
	RunGeneral  RunType = ""
)

// StrengthGroup is the movement-pattern bucket for strength work.
type StrengthGroup string

const (
	StrengthSquat          StrengthGroup = "squat"
	StrengthHinge          StrengthGroup = "hinge"
	StrengthHorizontalPush StrengthGroup = "horizontal_push"
	StrengthVerticalPush   StrengthGroup = "vertical_push"
	StrengthHorizontalPull StrengthGroup = "horizontal_pull"
	StrengthVerticalPull   StrengthGroup = "vertical_pull"
	StrengthCarry          StrengthGroup = "carry"
	StrengthAccessory      StrengthGroup = "accessory"
)

// CardioType is the non-running cardio modality.
type CardioType string

const (
	CardioCycling     CardioType = "cycling"
	CardioAssaultBike CardioType = "assault_bike"
	CardioSwimming    CardioType = "swimming"
	CardioJumpRope    CardioType = "jump_rope"
	CardioStairs      CardioType = "stairs"
	CardioElliptical  CardioType = "elliptical"
	CardioMixed       CardioType = "mixed"
)

// Category is the full classification of one exercise. Exactly one Kind is
// set; the subtype fields are populated only for their matching Kind.
// Categories are derived from the name on every call, never stored.
type Category struct {
	Kind     Kind
	Station  Station
	RunType  RunType
	Strength StrengthGroup
	Cardio   CardioType
}

// IsStation reports whether the category is the given race station.
func (c Category) IsStation(s Station) bool {
	return c.Kind == KindStation && c.Station == s
}

// rule is one entry in the ordered classification table. A name matches when
// any include pattern is a substring AND no exclude pattern is. Exclusions
// resolve real vocabulary collisions ("bent over row" vs the rowing station,
// "sled pull" vs "sled push") and are as much a part of the taxonomy as the
// inclusions.
type rule struct {
	include []string
	exclude []string
	cat     Category
}

func (r rule) matches(name string) bool {
	matched := false
	for _, p := range r.include {
		if strings.Contains(name, p) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}
	for _, p := range r.exclude {
		if strings.Contains(name, p) {
			return false
		}
	}
	return true
}

// classificationRules is evaluated in order, first match wins. Earlier
// categories take precedence for the same name: warmup before stations,
// stations before running, running before strength, strength before cardio.
var classificationRules = []rule{
	// Warmup / cooldown
	{include: []string{"warm up", "cooldown", "activation", "drills", "strides"}, cat: Category{Kind: KindWarmup}},

	// Stations
	{include: []string{"ski erg"}, cat: Category{Kind: KindStation, Station: StationSkiErg}},
	{include: []string{"sled push"}, exclude: []string{"pull"}, cat: Category{Kind: KindStation, Station: StationSledPush}},
	{include: []string{"sled pull", "sled drag"}, exclude: []string{"push"}, cat: Category{Kind: KindStation, Station: StationSledPull}},
	{include: []string{"burpee broad jump"}, cat: Category{Kind: KindStation, Station: StationBurpeeBroadJump}},
	{include: []string{"rowing", "row erg"}, exclude: []string{"bent over", "dumbbell", "cable", "inverted", "upright", "barbell"}, cat: Category{Kind: KindStation, Station: StationRowing}},
	{include: []string{"farmers carry"}, cat: Category{Kind: KindStation, Station: StationFarmersCarry}},
	{include: []string{"sandbag lunges"}, cat: Category{Kind: KindStation, Station: StationSandbagLunges}},
	{include: []string{"wall balls"}, cat: Category{Kind: KindStation, Station: StationWallBalls}},

	// Running. Exclusions keep burpee/jump/sled/bike phrases containing
	// "run"-adjacent words (sprint variants mostly) out of the bucket.
	// Both "bike" and its canonical "cycling" are listed: exclusions are
	// matched against normalized names, where "bike" may already have been
	// rewritten.
	{include: []string{"run", "sprint"}, exclude: []string{"burpee", "jump", "sled", "bike", "cycling", "bear crawl", "swimming"}, cat: Category{Kind: KindRunning}},

	// Core
	{include: []string{"plank", "crunch", "sit up", "russian twist", "leg raise", "hollow", "dead bug", "bird dog", "ab rollout", "mountain climbers", "v up", "flutter kick"}, cat: Category{Kind: KindCore}},

	// Mobility
	{include: []string{"stretch", "mobility", "foam roll", "yoga", "hips opener", "couch"}, cat: Category{Kind: KindMobility}},

	// Strength by movement pattern
	{include: []string{"squat", "lunge", "leg press", "wall sit", "step up", "pistol"}, exclude: []string{"sandbag"}, cat: Category{Kind: KindStrength, Strength: StrengthSquat}},
	{include: []string{"deadlift", "hip thrust", "kettlebell swing", "good morning", "back extension", "hamstring curl"}, cat: Category{Kind: KindStrength, Strength: StrengthHinge}},
	{include: []string{"bench press", "push up", "dip", "chest press", "fly"}, cat: Category{Kind: KindStrength, Strength: StrengthHorizontalPush}},
	{include: []string{"overhead press", "push press", "thruster", "lateral raise", "devils press", "man maker"}, cat: Category{Kind: KindStrength, Strength: StrengthVerticalPush}},
	// "row" here is the strength sense; the rowing station already matched
	// above on its canonical "rowing" vocabulary, never on bare "row".
	{include: []string{"bent over row", "dumbbell row", "seated cable row", "inverted row", "face pull", "upright row", "pendlay"}, cat: Category{Kind: KindStrength, Strength: StrengthHorizontalPull}},
	{include: []string{"pull up", "lat pulldown", "muscle up"}, cat: Category{Kind: KindStrength, Strength: StrengthVerticalPull}},
	{include: []string{"carry", "suitcase", "yoke", "sandbag over shoulder"}, cat: Category{Kind: KindStrength, Strength: StrengthCarry}},
	{include: []string{"curl", "extension", "raise", "shrug", "calf", "pullover"}, cat: Category{Kind: KindStrength, Strength: StrengthAccessory}},

	// Remaining cardio modalities
	{include: []string{"assault bike"}, cat: Category{Kind: KindCardio, Cardio: CardioAssaultBike}},
	{include: []string{"cycling", "bike"}, cat: Category{Kind: KindCardio, Cardio: CardioCycling}},
	{include: []string{"swimming"}, cat: Category{Kind: KindCardio, Cardio: CardioSwimming}},
	{include: []string{"jump rope"}, cat: Category{Kind: KindCardio, Cardio: CardioJumpRope}},
	{include: []string{"stair climber", "stairs"}, cat: Category{Kind: KindCardio, Cardio: CardioStairs}},
	{include: []string{"elliptical"}, cat: Category{Kind: KindCardio, Cardio: CardioElliptical}},
	{include: []string{"burpee", "box jump", "broad jump", "bear crawl", "amrap", "emom", "circuit", "metcon", "wod"}, cat: Category{Kind: KindCardio, Cardio: CardioMixed}},
}

// runTypeRules is the secondary subtype pass for names that classified as
// running.
var runTypeRules = []struct {
	patterns []string
	rt       RunType
}{
	{patterns: []string{"interval", "repeat", "fartlek", "sprint", "track", "vo2"}, rt: RunInterval},
	{patterns: []string{"tempo", "threshold", "race pace"}, rt: RunTempo},
	{patterns: []string{"long"}, rt: RunLong},
	{patterns: []string{"easy", "recovery", "shakeout", "zone"}, rt: RunEasy},
}

// Categorize classifies a raw exercise name. Pure and total: unrecognized
// names land in KindOther rather than failing.
func Categorize(raw string) Category {
	name := Normalize(raw)

	for _, r := range classificationRules {
		if !r.matches(name) {
			continue
		}
		cat := r.cat
		if cat.Kind == KindRunning {
			cat.RunType = runTypeOf(name)
		}
		return cat
	}
	return Category{Kind: KindOther}
}

func runTypeOf(name string) RunType {
	for _, r := range runTypeRules {
		for _, p := range r.patterns {
			if strings.Contains(name, p) {
				return r.rt
			}
		}
	}
	return RunGeneral
}
