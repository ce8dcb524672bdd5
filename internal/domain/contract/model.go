package contract

// Contract is one season row of an athlete's contract table. Monetary
// columns keep the source formatting ("$1,250,000", "-") untouched.
type Contract struct {
	AthleteID int64
	TeamName  string
	Year      int64

	ApyHitPct        string
	DeadCap          string
	BaseSalary       string
	SigningBonus     string
	PerGameBonus     string
	RosterBonus      string
	OptionBonus      string
	WorkoutBonus     string
	RestructureBonus string
	Incentives       string
}
