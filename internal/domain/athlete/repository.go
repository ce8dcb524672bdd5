package athlete

import "context"

// Repository describes athlete persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Athlete, bool, error)
	Insert(ctx context.Context, a Athlete) error
}

// PositionRepository deduplicates playing positions by name. Insert
// returns the generated id.
type PositionRepository interface {
	FindPositionByName(ctx context.Context, name string) (Position, bool, error)
	InsertPosition(ctx context.Context, name string) (int64, error)
}
