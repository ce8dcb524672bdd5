package venue

import "context"

// Repository describes venue persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Venue, bool, error)
	Insert(ctx context.Context, v Venue) error
}
