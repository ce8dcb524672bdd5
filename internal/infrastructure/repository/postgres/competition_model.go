package postgres

import (
	"database/sql"
	"time"

	"github.com/gridstats/gridiron/internal/domain/competition"
)

type competitionTableModel struct {
	ID       int64         `db:"id"`
	EventID  int64         `db:"event_id"`
	Date     time.Time     `db:"date"`
	VenueID  sql.NullInt64 `db:"venue_id"`
	StatusID sql.NullInt64 `db:"status_id"`
}

func (m competitionTableModel) toDomain() competition.Competition {
	return competition.Competition{
		ID:       m.ID,
		EventID:  m.EventID,
		Date:     m.Date,
		VenueID:  nullInt64ToPtr(m.VenueID),
		StatusID: nullInt64ToPtr(m.StatusID),
	}
}

type competitorInsertModel struct {
	EventID       int64 `db:"event_id"`
	CompetitionID int64 `db:"competition_id"`
	TeamID        int64 `db:"team_id"`
	IsHome        bool  `db:"is_home"`
	IsWinner      bool  `db:"is_winner"`
	Score         int64 `db:"score"`
}

type statusTableModel struct {
	ID           int64  `db:"id"`
	Clock        int64  `db:"clock"`
	DisplayClock string `db:"display_clock"`
	Period       int64  `db:"period"`
	TypeID       int64  `db:"type_id"`
}

type statusInsertModel struct {
	Clock        int64  `db:"clock"`
	DisplayClock string `db:"display_clock"`
	Period       int64  `db:"period"`
	TypeID       int64  `db:"type_id"`
}

type statusTypeTableModel struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	State       string `db:"state"`
	Completed   bool   `db:"completed"`
	Description string `db:"description"`
	Detail      string `db:"detail"`
}

type refereeInsertModel struct {
	CompetitionID int64 `db:"competition_id"`
	OfficialID    int64 `db:"official_id"`
}
