package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridstats/gridiron/internal/domain/rating"
	qb "github.com/gridstats/gridiron/internal/platform/querybuilder"
)

type RatingRepository struct {
	db *sqlx.DB
}

func NewRatingRepository(db *sqlx.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

func (r *RatingRepository) Exists(ctx context.Context, athleteID int64, ratingType string) (bool, error) {
	query, args, err := qb.Select("1").From("ratings").
		Where(
			qb.Eq("athlete_id", athleteID),
			qb.Eq("rating_type", ratingType),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build select rating query: %w", err)
	}

	var one int
	if err := r.db.GetContext(ctx, &one, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("select rating: %w", err)
	}
	return true, nil
}

func (r *RatingRepository) Insert(ctx context.Context, rt rating.Rating) error {
	model := ratingInsertModel{
		AthleteID: rt.AthleteID,
		Type:      rt.Type,
		Value:     rt.Value,
	}
	query, args, err := qb.InsertModel("ratings", model, "ON CONFLICT (athlete_id, rating_type) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build insert rating query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert rating athlete=%d type=%s: %w", rt.AthleteID, rt.Type, err)
	}
	return nil
}
