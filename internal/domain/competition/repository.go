package competition

import "context"

// Repository describes competition persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Competition, bool, error)
	Insert(ctx context.Context, c Competition) error

	CompetitorExists(ctx context.Context, c Competitor) (bool, error)
	InsertCompetitor(ctx context.Context, c Competitor) error

	// FindStatus matches on the (clock, display_clock, period, type)
	// tuple; InsertStatus stores a snapshot and returns its generated id.
	FindStatus(ctx context.Context, s Status) (Status, bool, error)
	InsertStatus(ctx context.Context, s Status) (int64, error)
	GetStatusType(ctx context.Context, id int64) (StatusType, bool, error)
	InsertStatusType(ctx context.Context, t StatusType) error

	// LinkReferee attaches an official to a competition; duplicate links
	// are ignored.
	LinkReferee(ctx context.Context, competitionID, officialID int64) error
}
