package official

import "context"

// Repository describes official persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Official, bool, error)
	Insert(ctx context.Context, o Official) error

	GetPositionByID(ctx context.Context, id int64) (Position, bool, error)
	InsertPosition(ctx context.Context, p Position) error
}
