package official

// Official is a game referee keyed by its upstream API id.
type Official struct {
	ID         int64
	FirstName  string
	LastName   string
	Order      int64
	PositionID int64
}

// Position is an officiating role ("Referee", "Umpire"), keyed by its
// upstream API id.
type Position struct {
	ID   int64
	Name string
}
