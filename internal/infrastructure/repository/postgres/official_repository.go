package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridstats/gridiron/internal/domain/official"
	qb "github.com/gridstats/gridiron/internal/platform/querybuilder"
)

type officialTableModel struct {
	ID         int64  `db:"id"`
	FirstName  string `db:"first_name"`
	LastName   string `db:"last_name"`
	Order      int64  `db:"display_order"`
	PositionID int64  `db:"position_id"`
}

type officialPositionTableModel struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type OfficialRepository struct {
	db *sqlx.DB
}

func NewOfficialRepository(db *sqlx.DB) *OfficialRepository {
	return &OfficialRepository{db: db}
}

func (r *OfficialRepository) GetByID(ctx context.Context, id int64) (official.Official, bool, error) {
	query, args, err := qb.Select("*").From("officials").
		Where(qb.Eq("id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return official.Official{}, false, fmt.Errorf("build select official query: %w", err)
	}

	var row officialTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return official.Official{}, false, nil
		}
		return official.Official{}, false, fmt.Errorf("select official %d: %w", id, err)
	}
	return official.Official{
		ID:         row.ID,
		FirstName:  row.FirstName,
		LastName:   row.LastName,
		Order:      row.Order,
		PositionID: row.PositionID,
	}, true, nil
}

func (r *OfficialRepository) Insert(ctx context.Context, o official.Official) error {
	model := officialTableModel{
		ID:         o.ID,
		FirstName:  o.FirstName,
		LastName:   o.LastName,
		Order:      o.Order,
		PositionID: o.PositionID,
	}
	query, args, err := qb.InsertModel("officials", model, "ON CONFLICT (id) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build insert official query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert official %d: %w", o.ID, err)
	}
	return nil
}

func (r *OfficialRepository) GetPositionByID(ctx context.Context, id int64) (official.Position, bool, error) {
	query, args, err := qb.Select("*").From("official_positions").
		Where(qb.Eq("id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return official.Position{}, false, fmt.Errorf("build select official position query: %w", err)
	}

	var row officialPositionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return official.Position{}, false, nil
		}
		return official.Position{}, false, fmt.Errorf("select official position %d: %w", id, err)
	}
	return official.Position{ID: row.ID, Name: row.Name}, true, nil
}

func (r *OfficialRepository) InsertPosition(ctx context.Context, p official.Position) error {
	model := officialPositionTableModel{ID: p.ID, Name: p.Name}
	query, args, err := qb.InsertModel("official_positions", model, "ON CONFLICT (id) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build insert official position query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert official position %d: %w", p.ID, err)
	}
	return nil
}
