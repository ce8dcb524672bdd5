package postgres

import (
	"database/sql"

	"github.com/gridstats/gridiron/internal/domain/athlete"
)

type athleteTableModel struct {
	ID              int64         `db:"id"`
	FirstName       string        `db:"first_name"`
	LastName        string        `db:"last_name"`
	Age             int64         `db:"age"`
	Height          int64         `db:"height"`
	Weight          int64         `db:"weight"`
	Salary          float64       `db:"salary"`
	IsPracticeSquad bool          `db:"is_practice_squad"`
	TeamID          sql.NullInt64 `db:"team_id"`
	PositionID      int64         `db:"position_id"`
}

func (m athleteTableModel) toDomain() athlete.Athlete {
	return athlete.Athlete{
		ID:              m.ID,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		Age:             m.Age,
		Height:          m.Height,
		Weight:          m.Weight,
		Salary:          m.Salary,
		IsPracticeSquad: m.IsPracticeSquad,
		TeamID:          nullInt64ToPtr(m.TeamID),
		PositionID:      m.PositionID,
	}
}

type positionTableModel struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type positionInsertModel struct {
	Name string `db:"name"`
}
