package drive

// Drive is a possession within a competition, keyed by its upstream API id.
type Drive struct {
	ID             int64
	CompetitionID  int64
	Description    string
	Yards          int64
	IsScore        bool
	OffensivePlays int64
	StartQuarter   int64
	StartClock     int64
	StartYardLine  int64
	EndQuarter     int64
	EndClock       int64
	EndYardLine    int64
}
