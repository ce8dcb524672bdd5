package athlete

import "fmt"

// Athlete is a player keyed by its upstream API id. TeamID is nil for
// free agents and retired players.
type Athlete struct {
	ID              int64
	FirstName       string
	LastName        string
	Age             int64
	Height          int64
	Weight          int64
	Salary          float64
	IsPracticeSquad bool
	TeamID          *int64
	PositionID      int64
}

func (a Athlete) Validate() error {
	if a.ID <= 0 {
		return fmt.Errorf("athlete id is required")
	}
	if a.FirstName == "" && a.LastName == "" {
		return fmt.Errorf("athlete name is required")
	}
	return nil
}

// FullName joins the split name back for display and external lookups.
func (a Athlete) FullName() string {
	if a.FirstName == "" {
		return a.LastName
	}
	if a.LastName == "" {
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}

// Position is a playing position, deduplicated by name.
type Position struct {
	ID   int64
	Name string
}
