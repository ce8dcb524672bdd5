package drive

import "context"

// Repository describes drive persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Drive, bool, error)
	Insert(ctx context.Context, d Drive) error
}
