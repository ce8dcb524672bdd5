package draft

// Pick is one selection of an NFL draft, keyed by (year, round, pick).
type Pick struct {
	Year       int64
	Round      int64
	PickNumber int64
	TeamID     int64
}
