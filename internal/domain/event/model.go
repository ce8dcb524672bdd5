package event

import "fmt"

// Event is a scheduled game keyed by its upstream API id. Season, Week
// and SeasonType are parsed out of the event's own $ref URL.
type Event struct {
	ID         int64
	Name       string
	Season     int64
	Week       int64
	SeasonType int64
	WeatherID  *int64
}

func (e Event) Validate() error {
	if e.ID <= 0 {
		return fmt.Errorf("event id is required")
	}
	if e.Season <= 0 {
		return fmt.Errorf("event season is required")
	}
	if e.SeasonType <= 0 {
		return fmt.Errorf("event season type is required")
	}
	return nil
}

// Weather is the forecast fragment attached to an event. Its id is
// generated at insert time.
type Weather struct {
	ID            int64
	Display       string
	WindSpeed     int64
	Temperature   int64
	Gust          int64
	Precipitation int64
}
