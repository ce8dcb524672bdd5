package draft

import "context"

// Repository describes draft pick persistence needs from use cases.
type Repository interface {
	Exists(ctx context.Context, year, round, pickNumber int64) (bool, error)
	Insert(ctx context.Context, p Pick) error
}
