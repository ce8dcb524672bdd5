package postgres

import "github.com/gridstats/gridiron/internal/domain/team"

type teamTableModel struct {
	ID      int64   `db:"id"`
	Name    string  `db:"name"`
	CapRoom float64 `db:"cap_room"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:      m.ID,
		Name:    m.Name,
		CapRoom: m.CapRoom,
	}
}

type teamHistoryInsertModel struct {
	AthleteID int64 `db:"athlete_id"`
	TeamID    int64 `db:"team_id"`
	Season    int64 `db:"season"`
}
