package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridstats/gridiron/internal/domain/draft"
	qb "github.com/gridstats/gridiron/internal/platform/querybuilder"
)

type DraftRepository struct {
	db *sqlx.DB
}

func NewDraftRepository(db *sqlx.DB) *DraftRepository {
	return &DraftRepository{db: db}
}

func (r *DraftRepository) Exists(ctx context.Context, year, round, pickNumber int64) (bool, error) {
	query, args, err := qb.Select("1").From("draft_picks").
		Where(
			qb.Eq("year", year),
			qb.Eq("round", round),
			qb.Eq("pick_number", pickNumber),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build select draft pick query: %w", err)
	}

	var one int
	if err := r.db.GetContext(ctx, &one, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("select draft pick: %w", err)
	}
	return true, nil
}

func (r *DraftRepository) Insert(ctx context.Context, p draft.Pick) error {
	model := draftPickInsertModel{
		Year:       p.Year,
		Round:      p.Round,
		PickNumber: p.PickNumber,
		TeamID:     p.TeamID,
	}
	query, args, err := qb.InsertModel("draft_picks", model, "ON CONFLICT (year, round, pick_number) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build insert draft pick query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert draft pick year=%d round=%d pick=%d: %w", p.Year, p.Round, p.PickNumber, err)
	}
	return nil
}
