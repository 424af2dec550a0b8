package taxonomy

// Station identifies one of the eight fixed race stations. The set is closed:
// the race format defines exactly these stations and categorization,
// validation, and auto-fix all enumerate over AllStations.
type Station string

const (
	StationSkiErg          Station = "ski_erg"
	StationSledPush        Station = "sled_push"
	StationSledPull        Station = "sled_pull"
	StationBurpeeBroadJump Station = "burpee_broad_jump"
	StationRowing          Station = "rowing"
	StationFarmersCarry    Station = "farmers_carry"
	StationSandbagLunges   Station = "sandbag_lunges"
	StationWallBalls       Station = "wall_balls"
)

// AllStations lists every station in race order.
var AllStations = []Station{
	StationSkiErg,
	StationSledPush,
	StationSledPull,
	StationBurpeeBroadJump,
	StationRowing,
	StationFarmersCarry,
	StationSandbagLunges,
	StationWallBalls,
}

// stationNames maps each station to a display name for messages and
// inserted template exercises.
var stationNames = map[Station]string{
	StationSkiErg:          "SkiErg",
	StationSledPush:        "Sled Push",
	StationSledPull:        "Sled Pull",
	StationBurpeeBroadJump: "Burpee Broad Jump",
	StationRowing:          "Rowing",
	StationFarmersCarry:    "Farmers Carry",
	StationSandbagLunges:   "Sandbag Lunges",
	StationWallBalls:       "Wall Balls",
}

// DisplayName returns the human-readable station name.
func (s Station) DisplayName() string {
	if n, ok := stationNames[s]; ok {
		return n
	}
	return string(s)
}
