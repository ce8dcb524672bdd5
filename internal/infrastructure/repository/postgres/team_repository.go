package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridstats/gridiron/internal/domain/team"
	qb "github.com/gridstats/gridiron/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) GetByID(ctx context.Context, id int64) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build select team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("select team %d: %w", id, err)
	}
	return row.toDomain(), true, nil
}

func (r *TeamRepository) Insert(ctx context.Context, t team.Team) error {
	model := teamTableModel{
		ID:      t.ID,
		Name:    t.Name,
		CapRoom: t.CapRoom,
	}
	query, args, err := qb.InsertModel("teams", model, "ON CONFLICT (id) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build insert team query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert team %d: %w", t.ID, err)
	}
	return nil
}

func (r *TeamRepository) HistoryExists(ctx context.Context, athleteID, teamID, season int64) (bool, error) {
	query, args, err := qb.Select("1").From("team_histories").
		Where(
			qb.Eq("athlete_id", athleteID),
			qb.Eq("team_id", teamID),
			qb.Eq("season", season),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build select team history query: %w", err)
	}

	var one int
	if err := r.db.GetContext(ctx, &one, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("select team history: %w", err)
	}
	return true, nil
}

func (r *TeamRepository) InsertHistory(ctx context.Context, h team.History) error {
	model := teamHistoryInsertModel{
		AthleteID: h.AthleteID,
		TeamID:    h.TeamID,
		Season:    h.Season,
	}
	query, args, err := qb.InsertModel("team_histories", model, "ON CONFLICT (athlete_id, team_id, season) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build insert team history query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert team history athlete=%d team=%d season=%d: %w", h.AthleteID, h.TeamID, h.Season, err)
	}
	return nil
}
