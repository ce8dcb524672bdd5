package team

import "fmt"

// Team is an NFL franchise keyed by its upstream API id.
type Team struct {
	ID      int64
	Name    string
	CapRoom float64
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	return nil
}

// History records that an athlete appeared for a team during a season.
type History struct {
	AthleteID int64
	TeamID    int64
	Season    int64
}
