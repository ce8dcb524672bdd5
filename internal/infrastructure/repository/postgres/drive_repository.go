package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridstats/gridiron/internal/domain/drive"
	qb "github.com/gridstats/gridiron/internal/platform/querybuilder"
)

type driveTableModel struct {
	ID             int64  `db:"id"`
	CompetitionID  int64  `db:"competition_id"`
	Description    string `db:"description"`
	Yards          int64  `db:"yards"`
	IsScore        bool   `db:"is_score"`
	OffensivePlays int64  `db:"offensive_plays"`
	StartQuarter   int64  `db:"start_quarter"`
	StartClock     int64  `db:"start_clock"`
	StartYardLine  int64  `db:"start_yard_line"`
	EndQuarter     int64  `db:"end_quarter"`
	EndClock       int64  `db:"end_clock"`
	EndYardLine    int64  `db:"end_yard_line"`
}

func (m driveTableModel) toDomain() drive.Drive {
	return drive.Drive{
		ID:             m.ID,
		CompetitionID:  m.CompetitionID,
		Description:    m.Description,
		Yards:          m.Yards,
		IsScore:        m.IsScore,
		OffensivePlays: m.OffensivePlays,
		StartQuarter:   m.StartQuarter,
		StartClock:     m.StartClock,
		StartYardLine:  m.StartYardLine,
		EndQuarter:     m.EndQuarter,
		EndClock:       m.EndClock,
		EndYardLine:    m.EndYardLine,
	}
}

type DriveRepository struct {
	db *sqlx.DB
}

func NewDriveRepository(db *sqlx.DB) *DriveRepository {
	return &DriveRepository{db: db}
}

func (r *DriveRepository) GetByID(ctx context.Context, id int64) (drive.Drive, bool, error) {
	query, args, err := qb.Select("*").From("drives").
		Where(qb.Eq("id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return drive.Drive{}, false, fmt.Errorf("build select drive query: %w", err)
	}

	var row driveTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return drive.Drive{}, false, nil
		}
		return drive.Drive{}, false, fmt.Errorf("select drive %d: %w", id, err)
	}
	return row.toDomain(), true, nil
}

func (r *DriveRepository) Insert(ctx context.Context, d drive.Drive) error {
	model := driveTableModel{
		ID:             d.ID,
		CompetitionID:  d.CompetitionID,
		Description:    d.Description,
		Yards:          d.Yards,
		IsScore:        d.IsScore,
		OffensivePlays: d.OffensivePlays,
		StartQuarter:   d.StartQuarter,
		StartClock:     d.StartClock,
		StartYardLine:  d.StartYardLine,
		EndQuarter:     d.EndQuarter,
		EndClock:       d.EndClock,
		EndYardLine:    d.EndYardLine,
	}
	query, args, err := qb.InsertModel("drives", model, "ON CONFLICT (id) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build insert drive query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert drive %d: %w", d.ID, err)
	}
	return nil
}
