package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridstats/gridiron/internal/domain/athlete"
	qb "github.com/gridstats/gridiron/internal/platform/querybuilder"
)

type AthleteRepository struct {
	db *sqlx.DB
}

func NewAthleteRepository(db *sqlx.DB) *AthleteRepository {
	return &AthleteRepository{db: db}
}

func (r *AthleteRepository) GetByID(ctx context.Context, id int64) (athlete.Athlete, bool, error) {
	query, args, err := qb.Select("*").From("athletes").
		Where(qb.Eq("id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return athlete.Athlete{}, false, fmt.Errorf("build select athlete query: %w", err)
	}

	var row athleteTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return athlete.Athlete{}, false, nil
		}
		return athlete.Athlete{}, false, fmt.Errorf("select athlete %d: %w", id, err)
	}
	return row.toDomain(), true, nil
}

func (r *AthleteRepository) Insert(ctx context.Context, a athlete.Athlete) error {
	model := athleteTableModel{
		ID:              a.ID,
		FirstName:       a.FirstName,
		LastName:        a.LastName,
		Age:             a.Age,
		Height:          a.Height,
		Weight:          a.Weight,
		Salary:          a.Salary,
		IsPracticeSquad: a.IsPracticeSquad,
		TeamID:          ptrToNullInt64(a.TeamID),
		PositionID:      a.PositionID,
	}
	query, args, err := qb.InsertModel("athletes", model, "ON CONFLICT (id) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build insert athlete query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert athlete %d: %w", a.ID, err)
	}
	return nil
}

type PositionRepository struct {
	db *sqlx.DB
}

func NewPositionRepository(db *sqlx.DB) *PositionRepository {
	return &PositionRepository{db: db}
}

func (r *PositionRepository) FindPositionByName(ctx context.Context, name string) (athlete.Position, bool, error) {
	query, args, err := qb.Select("*").From("positions").
		Where(qb.Eq("name", name)).
		Limit(1).
		ToSQL()
	if err != nil {
		return athlete.Position{}, false, fmt.Errorf("build select position query: %w", err)
	}

	var row positionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return athlete.Position{}, false, nil
		}
		return athlete.Position{}, false, fmt.Errorf("select position %q: %w", name, err)
	}
	return athlete.Position{ID: row.ID, Name: row.Name}, true, nil
}

func (r *PositionRepository) InsertPosition(ctx context.Context, name string) (int64, error) {
	query, args, err := qb.InsertModel("positions", positionInsertModel{Name: name}, "RETURNING id")
	if err != nil {
		return 0, fmt.Errorf("build insert position query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("insert position %q: %w", name, err)
	}
	return id, nil
}
