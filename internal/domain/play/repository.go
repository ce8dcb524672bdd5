package play

import "context"

// Repository describes play persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Play, bool, error)
	Insert(ctx context.Context, p Play) error

	FindParticipant(ctx context.Context, playID, athleteID, order int64) (Participant, bool, error)
	// InsertParticipant stores an involvement row and returns its generated id.
	InsertParticipant(ctx context.Context, p Participant) (int64, error)

	StatExists(ctx context.Context, s Stat) (bool, error)
	InsertStat(ctx context.Context, s Stat) error
}
