package rating

// Rating is a single video-game attribute score for an athlete.
// One athlete carries one value per rating type.
type Rating struct {
	AthleteID int64
	Type      string
	Value     float64
}
