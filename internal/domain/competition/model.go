package competition

import (
	"fmt"
	"time"
)

// Competition is the played instance of an event. For this league the
// upstream API keys competitions with the same id as their parent event.
type Competition struct {
	ID       int64
	EventID  int64
	Date     time.Time
	VenueID  *int64
	StatusID *int64
}

// Competitor is one team's side of a competition.
type Competitor struct {
	EventID       int64
	CompetitionID int64
	TeamID        int64
	IsHome        bool
	IsWinner      bool
	Score         int64
}

func (c Competitor) Validate() error {
	if c.TeamID <= 0 {
		return fmt.Errorf("competitor team id is required")
	}
	if c.EventID != c.CompetitionID {
		return fmt.Errorf("competitor event id %d does not match competition id %d", c.EventID, c.CompetitionID)
	}
	return nil
}

// Status is a competition's game clock snapshot. Its id is generated at
// insert time; TypeID references the shared StatusType catalog.
type Status struct {
	ID           int64
	Clock        int64
	DisplayClock string
	Period       int64
	TypeID       int64
}

// StatusType is an upstream-keyed catalog entry ("STATUS_FINAL", ...).
type StatusType struct {
	ID          int64
	Name        string
	State       string
	Completed   bool
	Description string
	Detail      string
}
