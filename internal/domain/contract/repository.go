package contract

import "context"

// Repository describes contract persistence needs from use cases.
type Repository interface {
	Exists(ctx context.Context, athleteID int64, teamName string, year int64) (bool, error)
	Insert(ctx context.Context, c Contract) error
}
