package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridstats/gridiron/internal/domain/play"
	qb "github.com/gridstats/gridiron/internal/platform/querybuilder"
)

type PlayRepository struct {
	db *sqlx.DB
}

func NewPlayRepository(db *sqlx.DB) *PlayRepository {
	return &PlayRepository{db: db}
}

func (r *PlayRepository) GetByID(ctx context.Context, id int64) (play.Play, bool, error) {
	query, args, err := qb.Select("*").From("plays").
		Where(qb.Eq("id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return play.Play{}, false, fmt.Errorf("build select play query: %w", err)
	}

	var row playTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return play.Play{}, false, nil
		}
		return play.Play{}, false, fmt.Errorf("select play %d: %w", id, err)
	}
	return row.toDomain(), true, nil
}

func (r *PlayRepository) Insert(ctx context.Context, p play.Play) error {
	model := playTableModel{
		ID:                  p.ID,
		DriveID:             ptrToNullInt64(p.DriveID),
		SequenceNumber:      p.SequenceNumber,
		Type:                p.Type,
		Description:         p.Description,
		AwayScore:           p.AwayScore,
		HomeScore:           p.HomeScore,
		Quarter:             p.Quarter,
		IsScoringPlay:       p.IsScoringPlay,
		ScoreValue:          p.ScoreValue,
		StartDown:           p.StartDown,
		EndDown:             p.EndDown,
		StartDistance:       p.StartDistance,
		EndDistance:         p.EndDistance,
		StartYardLine:       p.StartYardLine,
		EndYardLine:         p.EndYardLine,
		StartYardsToEndzone: p.StartYardsToEndzone,
		EndYardsToEndzone:   p.EndYardsToEndzone,
	}
	query, args, err := qb.InsertModel("plays", model, "ON CONFLICT (id) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build insert play query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert play %d: %w", p.ID, err)
	}
	return nil
}

func (r *PlayRepository) FindParticipant(ctx context.Context, playID, athleteID, order int64) (play.Participant, bool, error) {
	query, args, err := qb.Select("*").From("play_participants").
		Where(
			qb.Eq("play_id", playID),
			qb.Eq("athlete_id", athleteID),
			qb.Eq("display_order", order),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return play.Participant{}, false, fmt.Errorf("build select participant query: %w", err)
	}

	var row participantTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return play.Participant{}, false, nil
		}
		return play.Participant{}, false, fmt.Errorf("select participant: %w", err)
	}
	return play.Participant{
		ID:        row.ID,
		PlayID:    row.PlayID,
		AthleteID: row.AthleteID,
		Order:     row.Order,
		Type:      row.Type,
	}, true, nil
}

func (r *PlayRepository) InsertParticipant(ctx context.Context, p play.Participant) (int64, error) {
	model := participantInsertModel{
		PlayID:    p.PlayID,
		AthleteID: p.AthleteID,
		Order:     p.Order,
		Type:      p.Type,
	}
	query, args, err := qb.InsertModel("play_participants", model, "RETURNING id")
	if err != nil {
		return 0, fmt.Errorf("build insert participant query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("insert participant play=%d athlete=%d: %w", p.PlayID, p.AthleteID, err)
	}
	return id, nil
}

func (r *PlayRepository) StatExists(ctx context.Context, s play.Stat) (bool, error) {
	query, args, err := qb.Select("1").From("participant_stats").
		Where(
			qb.Eq("participant_id", s.ParticipantID),
			qb.Eq("name", s.Name),
			qb.Eq("description", s.Description),
			qb.Eq("abbreviation", s.Abbreviation),
			qb.Eq("value", s.Value),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build select stat query: %w", err)
	}

	var one int
	if err := r.db.GetContext(ctx, &one, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("select stat: %w", err)
	}
	return true, nil
}

func (r *PlayRepository) InsertStat(ctx context.Context, s play.Stat) error {
	model := statInsertModel{
		ParticipantID: s.ParticipantID,
		Name:          s.Name,
		Description:   s.Description,
		Abbreviation:  s.Abbreviation,
		Value:         s.Value,
	}
	query, args, err := qb.InsertModel("participant_stats", model,
		"ON CONFLICT (participant_id, name, description, abbreviation, value) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build insert stat query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert stat participant=%d name=%s: %w", s.ParticipantID, s.Name, err)
	}
	return nil
}
