package rating

import "context"

// Repository describes rating persistence needs from use cases.
type Repository interface {
	Exists(ctx context.Context, athleteID int64, ratingType string) (bool, error)
	Insert(ctx context.Context, r Rating) error
}
