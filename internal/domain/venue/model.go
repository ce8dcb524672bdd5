package venue

// Venue is a stadium keyed by its upstream API id.
type Venue struct {
	ID     int64
	Name   string
	Grass  bool
	Indoor bool
	City   string
	State  string
	Zip    int64
}
