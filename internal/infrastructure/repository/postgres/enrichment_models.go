package postgres

type ratingInsertModel struct {
	AthleteID int64   `db:"athlete_id"`
	Type      string  `db:"rating_type"`
	Value     float64 `db:"value"`
}

type contractInsertModel struct {
	AthleteID        int64  `db:"athlete_id"`
	TeamName         string `db:"team_name"`
	Year             int64  `db:"year"`
	ApyHitPct        string `db:"apy_hit_pct"`
	DeadCap          string `db:"dead_cap"`
	BaseSalary       string `db:"base_salary"`
	SigningBonus     string `db:"signing_bonus"`
	PerGameBonus     string `db:"per_game_bonus"`
	RosterBonus      string `db:"roster_bonus"`
	OptionBonus      string `db:"option_bonus"`
	WorkoutBonus     string `db:"workout_bonus"`
	RestructureBonus string `db:"restructure_bonus"`
	Incentives       string `db:"incentives"`
}

type draftPickInsertModel struct {
	Year       int64 `db:"year"`
	Round      int64 `db:"round"`
	PickNumber int64 `db:"pick_number"`
	TeamID     int64 `db:"team_id"`
}
