package taxonomy

// aliases maps lowercase free-text exercise names to their canonical form.
// Covers abbreviations, German variants (generators trained on mixed-language
// race content emit them regularly), and machine brand names. Lookup is
// exact-match first; Normalize falls back to longest-alias-first substring
// replacement so "concept2 row intervals" still canonicalizes.
var aliases = map[string]string{
	// Station: SkiErg
	"ski":           "ski erg",
	"skierg":        "ski erg",
	"ski ergo":      "ski erg",
	"ski ergometer": "ski erg",
	"concept2 ski":  "ski erg",
	"concept 2 ski": "ski erg",
	"c2 ski":        "ski erg",
	"skiergometer":  "ski erg",
	"ski machine":   "ski erg",
	"ski pulls":     "ski erg",

	// Station: Sled Push
	"sledpush":           "sled push",
	"sled pushes":        "sled push",
	"sled pushing":       "sled push",
	"prowler":            "sled push",
	"prowler push":       "sled push",
	"schlitten schieben": "sled push",
	"schlittenschieben":  "sled push",
	"push sled":          "sled push",
	"torque sled push":   "sled push",

	// Station: Sled Pull
	"sledpull":           "sled pull",
	"sled pulls":         "sled pull",
	"sled pulling":       "sled pull",
	"sled drag":          "sled pull",
	"sled drags":         "sled pull",
	"backward sled drag": "sled pull",
	"schlitten ziehen":   "sled pull",
	"schlittenziehen":    "sled pull",
	"rope sled pull":     "sled pull",

	// Station: Burpee Broad Jump
	"burpee broad jumps": "burpee broad jump",
	"burpee broadjump":   "burpee broad jump",
	"bbj":                "burpee broad jump",
	"bbjs":               "burpee broad jump",
	"burpee jump":        "burpee broad jump",
	"burpee jumps":       "burpee broad jump",
	"burpee weitsprung":  "burpee broad jump",

	// Station: Rowing
	"row erg":        "rowing",
	"rowerg":         "rowing",
	"erg row":        "rowing",
	"ergometer row":  "rowing",
	"concept2 row":   "rowing",
	"concept 2 row":  "rowing",
	"c2 row":         "rowing",
	"c2 rowing":      "rowing",
	"rower":          "rowing",
	"row machine":    "rowing",
	"rowing machine": "rowing",
	"indoor rowing":  "rowing",
	"rudern":         "rowing",
	"ruderergometer": "rowing",

	// Station: Farmers Carry
	"farmers carries":  "farmers carry",
	"farmer carry":     "farmers carry",
	"farmer's carry":   "farmers carry",
	"farmers walk":     "farmers carry",
	"farmer's walk":    "farmers carry",
	"farmer walk":      "farmers carry",
	"kettlebell carry": "farmers carry",
	"kb carry":         "farmers carry",
	"farmers hold":     "farmers carry",
	"koffertragen":     "farmers carry",

	// Station: Sandbag Lunges. The canonical plural maps to itself so the
	// exact-match path wins before the substring fallback can see "lunges".
	"sandbag lunges":           "sandbag lunges",
	"sandbag lunge":            "sandbag lunges",
	"sandbag walking lunge":    "sandbag lunges",
	"sandbag walking lunges":   "sandbag lunges",
	"sandbag lunge walk":       "sandbag lunges",
	"weighted lunge walk":      "sandbag lunges",
	"sandsack ausfallschritte": "sandbag lunges",

	// Station: Wall Balls
	"wall ball":            "wall balls",
	"wallball":             "wall balls",
	"wallballs":            "wall balls",
	"wall ball shots":      "wall balls",
	"wall-ball":            "wall balls",
	"med ball wall throw":  "wall balls",
	"medicine ball throws": "wall balls",

	// Running
	"laufen":                "run",
	"lauf":                  "run",
	"dauerlauf":             "easy run",
	"run easy":              "easy run",
	"easy jog":              "easy run",
	"jog":                   "easy run",
	"jogging":               "easy run",
	"recovery run":          "easy run",
	"recovery jog":          "easy run",
	"z2 run":                "easy run",
	"zone run":              "easy run", // "zone 2 run" after metric stripping
	"tempolauf":             "tempo run",
	"threshold run":         "tempo run",
	"lt run":                "tempo run",
	"lactate threshold run": "tempo run",
	"intervalle":            "interval run",
	"intervals":             "interval run",
	"track intervals":       "interval run",
	"interval training":     "interval run",
	"repeats":               "interval run", // "400m repeats" after metric stripping
	"longrun":               "long run",
	"long slow run":         "long run",
	"lsd run":               "long run",
	"langer lauf":           "long run",
	"treadmill":             "run",
	"treadmill run":         "run",
	"laufband":              "run",
	"compromised running":   "run",
	"brick run":             "run",

	// Strength: lower push
	"squats":                 "squat",
	"back squat":             "squat",
	"back squats":            "squat",
	"front squat":            "squat",
	"front squats":           "squat",
	"kniebeuge":              "squat",
	"kniebeugen":             "squat",
	"goblet squats":          "goblet squat",
	"bulgarian split squats": "bulgarian split squat",
	"bss":                    "bulgarian split squat",
	"leg press":              "leg press",
	"beinpresse":             "leg press",
	"step ups":               "step up",
	"step-ups":               "step up",
	"box step ups":           "step up",
	"lunges":                 "lunge",
	"walking lunges":         "lunge",
	"ausfallschritte":        "lunge",
	"reverse lunges":         "lunge",
	"wall sit":               "wall sit",

	// Strength: hinge
	"deadlifts":          "deadlift",
	"kreuzheben":         "deadlift",
	"dl":                 "deadlift",
	"rdl":                "romanian deadlift",
	"rdls":               "romanian deadlift",
	"romanian deadlifts": "romanian deadlift",
	"stiff leg deadlift": "romanian deadlift",
	"hip thrusts":        "hip thrust",
	"glute bridge":       "hip thrust",
	"glute bridges":      "hip thrust",
	"kb swing":           "kettlebell swing",
	"kb swings":          "kettlebell swing",
	"kettlebell swings":  "kettlebell swing",
	"russian swings":     "kettlebell swing",
	"good mornings":      "good morning",
	"hyperextensions":    "back extension",
	"back extensions":    "back extension",

	// Strength: upper push
	"bench":                "bench press",
	"bench presses":        "bench press",
	"bankdrücken":          "bench press",
	"db bench":             "bench press",
	"dumbbell bench press": "bench press",
	"incline bench":        "bench press",
	"ohp":                  "overhead press",
	"shoulder press":       "overhead press",
	"military press":       "overhead press",
	"strict press":         "overhead press",
	"schulterdrücken":      "overhead press",
	"push ups":             "push up",
	"push-ups":             "push up",
	"pushups":              "push up",
	"liegestütze":          "push up",
	"dips":                 "dip",
	"landmine press":       "overhead press",

	// Strength: upper pull
	"pull ups":       "pull up",
	"pull-ups":       "pull up",
	"pullups":        "pull up",
	"klimmzüge":      "pull up",
	"chin ups":       "pull up",
	"chin-ups":       "pull up",
	"chinups":        "pull up",
	"lat pulldowns":  "lat pulldown",
	"lat pull down":  "lat pulldown",
	"latzug":         "lat pulldown",
	"bent over rows": "bent over row",
	"bent-over row":  "bent over row",
	"barbell row":    "bent over row",
	"barbell rows":   "bent over row",
	"bb row":         "bent over row",
	"db row":         "dumbbell row",
	"db rows":        "dumbbell row",
	"dumbbell rows":  "dumbbell row",
	"single arm row": "dumbbell row",
	"cable row":      "seated cable row",
	"cable rows":     "seated cable row",
	"seated row":     "seated cable row",
	"seal row":       "bent over row",
	"inverted rows":  "inverted row",
	"ring rows":      "inverted row",
	"face pulls":     "face pull",

	// Core
	"sit ups":            "sit up",
	"sit-ups":            "sit up",
	"situps":             "sit up",
	"crunches":           "crunch",
	"planks":             "plank",
	"plank hold":         "plank",
	"unterarmstütz":      "plank",
	"side planks":        "side plank",
	"russian twists":     "russian twist",
	"leg raises":         "leg raise",
	"hanging leg raises": "hanging leg raise",
	"toes to bar":        "hanging leg raise",
	"t2b":                "hanging leg raise",
	"hollow holds":       "hollow hold",
	"dead bugs":          "dead bug",
	"bird dogs":          "bird dog",
	"ab wheel rollout":   "ab rollout",
	"mountain climber":   "mountain climbers",

	// Cardio (non-running modalities)
	"bike":                 "cycling",
	"biking":               "cycling",
	"spin bike":            "cycling",
	"radfahren":            "cycling",
	"assault bike":         "assault bike",
	"air bike":             "assault bike",
	"airbike":              "assault bike",
	"echo bike":            "assault bike",
	"assault bike sprints": "assault bike",
	"swim":                 "swimming",
	"schwimmen":            "swimming",
	"jump rope":            "jump rope",
	"skipping rope":        "jump rope",
	"seilspringen":         "jump rope",
	"double unders":        "jump rope",
	"stairmaster":          "stair climber",
	"stair master":         "stair climber",
	"elliptical":           "elliptical",
	"crosstrainer":         "elliptical",

	// Warmup / mobility
	"warmup":             "warm up",
	"warm-up":            "warm up",
	"aufwärmen":          "warm up",
	"einlaufen":          "warm up",
	"dynamic stretching": "dynamic stretch",
	"static stretching":  "stretching",
	"dehnen":             "stretching",
	"foam rolling":       "foam roll",
	"foam roller":        "foam roll",
	"faszienrolle":       "foam roll",
	"mobility work":      "mobility",
	"mobility flow":      "mobility",
	"yoga flow":          "yoga",
	"cool down":          "cooldown",
	"cool-down":          "cooldown",
	"auslaufen":          "cooldown",

	// Misc race-specific
	"burpees":               "burpee",
	"box jumps":             "box jump",
	"broad jumps":           "broad jump",
	"bear crawls":           "bear crawl",
	"sandbag carry":         "sandbag carry",
	"sandbag over shoulder": "sandbag over shoulder",
	"devil press":           "devils press",
	"devil's press":         "devils press",
	"thrusters":             "thruster",
	"man makers":            "man maker",
}
