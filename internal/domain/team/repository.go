package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Team, bool, error)
	Insert(ctx context.Context, t Team) error

	HistoryExists(ctx context.Context, athleteID, teamID, season int64) (bool, error)
	InsertHistory(ctx context.Context, h History) error
}
