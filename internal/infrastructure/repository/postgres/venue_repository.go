package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridstats/gridiron/internal/domain/venue"
	qb "github.com/gridstats/gridiron/internal/platform/querybuilder"
)

type venueTableModel struct {
	ID     int64  `db:"id"`
	Name   string `db:"name"`
	Grass  bool   `db:"grass"`
	Indoor bool   `db:"indoor"`
	City   string `db:"city"`
	State  string `db:"state"`
	Zip    int64  `db:"zip"`
}

type VenueRepository struct {
	db *sqlx.DB
}

func NewVenueRepository(db *sqlx.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

func (r *VenueRepository) GetByID(ctx context.Context, id int64) (venue.Venue, bool, error) {
	query, args, err := qb.Select("*").From("venues").
		Where(qb.Eq("id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return venue.Venue{}, false, fmt.Errorf("build select venue query: %w", err)
	}

	var row venueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return venue.Venue{}, false, nil
		}
		return venue.Venue{}, false, fmt.Errorf("select venue %d: %w", id, err)
	}
	return venue.Venue{
		ID:     row.ID,
		Name:   row.Name,
		Grass:  row.Grass,
		Indoor: row.Indoor,
		City:   row.City,
		State:  row.State,
		Zip:    row.Zip,
	}, true, nil
}

func (r *VenueRepository) Insert(ctx context.Context, v venue.Venue) error {
	model := venueTableModel{
		ID:     v.ID,
		Name:   v.Name,
		Grass:  v.Grass,
		Indoor: v.Indoor,
		City:   v.City,
		State:  v.State,
		Zip:    v.Zip,
	}
	query, args, err := qb.InsertModel("venues", model, "ON CONFLICT (id) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build insert venue query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert venue %d: %w", v.ID, err)
	}
	return nil
}
