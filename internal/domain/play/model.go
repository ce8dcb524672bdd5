package play

// Play is a single snap keyed by its upstream API id. DriveID is nil for
// plays the feed does not attribute to a drive (kickoffs in some seasons).
type Play struct {
	ID                  int64
	DriveID             *int64
	SequenceNumber      int64
	Type                string
	Description         string
	AwayScore           int64
	HomeScore           int64
	Quarter             int64
	IsScoringPlay       bool
	ScoreValue          int64
	StartDown           int64
	EndDown             int64
	StartDistance       int64
	EndDistance         int64
	StartYardLine       int64
	EndYardLine         int64
	StartYardsToEndzone int64
	EndYardsToEndzone   int64
}

// Participant is one athlete's involvement in a play, deduplicated by
// (play, athlete, order) with a generated id.
type Participant struct {
	ID        int64
	PlayID    int64
	AthleteID int64
	Order     int64
	Type      string
}

// Stat is a single measured value attached to a participant.
type Stat struct {
	ParticipantID int64
	Name          string
	Description   string
	Abbreviation  string
	Value         float64
}
