package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridstats/gridiron/internal/domain/competition"
	qb "github.com/gridstats/gridiron/internal/platform/querybuilder"
)

type CompetitionRepository struct {
	db *sqlx.DB
}

func NewCompetitionRepository(db *sqlx.DB) *CompetitionRepository {
	return &CompetitionRepository{db: db}
}

func (r *CompetitionRepository) GetByID(ctx context.Context, id int64) (competition.Competition, bool, error) {
	query, args, err := qb.Select("*").From("competitions").
		Where(qb.Eq("id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return competition.Competition{}, false, fmt.Errorf("build select competition query: %w", err)
	}

	var row competitionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return competition.Competition{}, false, nil
		}
		return competition.Competition{}, false, fmt.Errorf("select competition %d: %w", id, err)
	}
	return row.toDomain(), true, nil
}

func (r *CompetitionRepository) Insert(ctx context.Context, c competition.Competition) error {
	model := competitionTableModel{
		ID:       c.ID,
		EventID:  c.EventID,
		Date:     c.Date,
		VenueID:  ptrToNullInt64(c.VenueID),
		StatusID: ptrToNullInt64(c.StatusID),
	}
	query, args, err := qb.InsertModel("competitions", model, "ON CONFLICT (id) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build insert competition query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert competition %d: %w", c.ID, err)
	}
	return nil
}

func (r *CompetitionRepository) CompetitorExists(ctx context.Context, c competition.Competitor) (bool, error) {
	query, args, err := qb.Select("1").From("competitors").
		Where(
			qb.Eq("event_id", c.EventID),
			qb.Eq("competition_id", c.CompetitionID),
			qb.Eq("team_id", c.TeamID),
			qb.Eq("is_home", c.IsHome),
			qb.Eq("is_winner", c.IsWinner),
			qb.Eq("score", c.Score),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build select competitor query: %w", err)
	}

	var one int
	if err := r.db.GetContext(ctx, &one, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("select competitor: %w", err)
	}
	return true, nil
}

func (r *CompetitionRepository) InsertCompetitor(ctx context.Context, c competition.Competitor) error {
	model := competitorInsertModel{
		EventID:       c.EventID,
		CompetitionID: c.CompetitionID,
		TeamID:        c.TeamID,
		IsHome:        c.IsHome,
		IsWinner:      c.IsWinner,
		Score:         c.Score,
	}
	query, args, err := qb.InsertModel("competitors", model,
		"ON CONFLICT (event_id, competition_id, team_id, is_home, is_winner, score) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build insert competitor query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert competitor competition=%d team=%d: %w", c.CompetitionID, c.TeamID, err)
	}
	return nil
}

func (r *CompetitionRepository) FindStatus(ctx context.Context, s competition.Status) (competition.Status, bool, error) {
	query, args, err := qb.Select("*").From("statuses").
		Where(
			qb.Eq("clock", s.Clock),
			qb.Eq("display_clock", s.DisplayClock),
			qb.Eq("period", s.Period),
			qb.Eq("type_id", s.TypeID),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return competition.Status{}, false, fmt.Errorf("build select status query: %w", err)
	}

	var row statusTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return competition.Status{}, false, nil
		}
		return competition.Status{}, false, fmt.Errorf("select status: %w", err)
	}
	return competition.Status{
		ID:           row.ID,
		Clock:        row.Clock,
		DisplayClock: row.DisplayClock,
		Period:       row.Period,
		TypeID:       row.TypeID,
	}, true, nil
}

func (r *CompetitionRepository) InsertStatus(ctx context.Context, s competition.Status) (int64, error) {
	model := statusInsertModel{
		Clock:        s.Clock,
		DisplayClock: s.DisplayClock,
		Period:       s.Period,
		TypeID:       s.TypeID,
	}
	query, args, err := qb.InsertModel("statuses", model, "RETURNING id")
	if err != nil {
		return 0, fmt.Errorf("build insert status query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("insert status: %w", err)
	}
	return id, nil
}

func (r *CompetitionRepository) GetStatusType(ctx context.Context, id int64) (competition.StatusType, bool, error) {
	query, args, err := qb.Select("*").From("status_types").
		Where(qb.Eq("id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return competition.StatusType{}, false, fmt.Errorf("build select status type query: %w", err)
	}

	var row statusTypeTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return competition.StatusType{}, false, nil
		}
		return competition.StatusType{}, false, fmt.Errorf("select status type %d: %w", id, err)
	}
	return competition.StatusType{
		ID:          row.ID,
		Name:        row.Name,
		State:       row.State,
		Completed:   row.Completed,
		Description: row.Description,
		Detail:      row.Detail,
	}, true, nil
}

func (r *CompetitionRepository) InsertStatusType(ctx context.Context, t competition.StatusType) error {
	model := statusTypeTableModel{
		ID:          t.ID,
		Name:        t.Name,
		State:       t.State,
		Completed:   t.Completed,
		Description: t.Description,
		Detail:      t.Detail,
	}
	query, args, err := qb.InsertModel("status_types", model, "ON CONFLICT (id) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build insert status type query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert status type %d: %w", t.ID, err)
	}
	return nil
}

func (r *CompetitionRepository) LinkReferee(ctx context.Context, competitionID, officialID int64) error {
	model := refereeInsertModel{
		CompetitionID: competitionID,
		OfficialID:    officialID,
	}
	query, args, err := qb.InsertModel("competition_referees", model,
		"ON CONFLICT (competition_id, official_id) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build insert referee link query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("link referee competition=%d official=%d: %w", competitionID, officialID, err)
	}
	return nil
}
