package postgres

import (
	"database/sql"

	"github.com/gridstats/gridiron/internal/domain/play"
)

type playTableModel struct {
	ID                  int64         `db:"id"`
	DriveID             sql.NullInt64 `db:"drive_id"`
	SequenceNumber      int64         `db:"sequence_number"`
	Type                string        `db:"play_type"`
	Description         string        `db:"description"`
	AwayScore           int64         `db:"away_score"`
	HomeScore           int64         `db:"home_score"`
	Quarter             int64         `db:"quarter"`
	IsScoringPlay       bool          `db:"is_scoring_play"`
	ScoreValue          int64         `db:"score_value"`
	StartDown           int64         `db:"start_down"`
	EndDown             int64         `db:"end_down"`
	StartDistance       int64         `db:"start_distance"`
	EndDistance         int64         `db:"end_distance"`
	StartYardLine       int64         `db:"start_yard_line"`
	EndYardLine         int64         `db:"end_yard_line"`
	StartYardsToEndzone int64         `db:"start_yards_to_endzone"`
	EndYardsToEndzone   int64         `db:"end_yards_to_endzone"`
}

func (m playTableModel) toDomain() play.Play {
	return play.Play{
		ID:                  m.ID,
		DriveID:             nullInt64ToPtr(m.DriveID),
		SequenceNumber:      m.SequenceNumber,
		Type:                m.Type,
		Description:         m.Description,
		AwayScore:           m.AwayScore,
		HomeScore:           m.HomeScore,
		Quarter:             m.Quarter,
		IsScoringPlay:       m.IsScoringPlay,
		ScoreValue:          m.ScoreValue,
		StartDown:           m.StartDown,
		EndDown:             m.EndDown,
		StartDistance:       m.StartDistance,
		EndDistance:         m.EndDistance,
		StartYardLine:       m.StartYardLine,
		EndYardLine:         m.EndYardLine,
		StartYardsToEndzone: m.StartYardsToEndzone,
		EndYardsToEndzone:   m.EndYardsToEndzone,
	}
}

type participantTableModel struct {
	ID        int64  `db:"id"`
	PlayID    int64  `db:"play_id"`
	AthleteID int64  `db:"athlete_id"`
	Order     int64  `db:"display_order"`
	Type      string `db:"participant_type"`
}

type participantInsertModel struct {
	PlayID    int64  `db:"play_id"`
	AthleteID int64  `db:"athlete_id"`
	Order     int64  `db:"display_order"`
	Type      string `db:"participant_type"`
}

type statInsertModel struct {
	ParticipantID int64   `db:"participant_id"`
	Name          string  `db:"name"`
	Description   string  `db:"description"`
	Abbreviation  string  `db:"abbreviation"`
	Value         float64 `db:"value"`
}
