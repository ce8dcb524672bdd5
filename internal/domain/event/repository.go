package event

import "context"

// Repository describes event persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Event, bool, error)
	Insert(ctx context.Context, e Event) error

	// InsertWeather stores a forecast fragment and returns its generated id.
	InsertWeather(ctx context.Context, w Weather) (int64, error)
}
