package usecase

import "strings"

// Franchise names and abbreviations keyed by the league feed's team ids.
// The feed skips ids 31 and 32.
var teamNameByID = map[int64]string{
	1:  "Atlanta Falcons",
	2:  "Buffalo Bills",
	3:  "Chicago Bears",
	4:  "Cincinnati Bengals",
	5:  "Cleveland Browns",
	6:  "Dallas Cowboys",
	7:  "Denver Broncos",
	8:  "Detroit Lions",
	9:  "Green Bay Packers",
	10: "Tennessee Titans",
	11: "Indianapolis Colts",
	12: "Kansas City Chiefs",
	13: "Las Vegas Raiders",
	14: "Los Angeles Rams",
	15: "Miami Dolphins",
	16: "Minnesota Vikings",
	17: "New England Patriots",
	18: "New Orleans Saints",
	19: "New York Giants",
	20: "New York Jets",
	21: "Philadelphia Eagles",
	22: "Arizona Cardinals",
	23: "Pittsburgh Steelers",
	24: "Los Angeles Chargers",
	25: "San Francisco 49ers",
	26: "Seattle Seahawks",
	27: "Tampa Bay Buccaneers",
	28: "Washington Commanders",
	29: "Carolina Panthers",
	30: "Jacksonville Jaguars",
	33: "Baltimore Ravens",
	34: "Houston Texans",
}

var teamAbbreviationByID = map[int64]string{
	1:  "ATL",
	2:  "BUF",
	3:  "CHI",
	4:  "CIN",
	5:  "CLE",
	6:  "DAL",
	7:  "DEN",
	8:  "DET",
	9:  "GB",
	10: "TEN",
	11: "IND",
	12: "KC",
	13: "LV",
	14: "LAR",
	15: "MIA",
	16: "MIN",
	17: "NE",
	18: "NO",
	19: "NYG",
	20: "NYJ",
	21: "PHI",
	22: "ARI",
	23: "PIT",
	24: "LAC",
	25: "SF",
	26: "SEA",
	27: "TB",
	28: "WAS",
	29: "CAR",
	30: "JAX",
	33: "BAL",
	34: "HOU",
}

// TeamName returns the franchise display name for a feed team id.
func TeamName(id int64) (string, bool) {
	name, ok := teamNameByID[id]
	return name, ok
}

// TeamAbbreviation returns the franchise abbreviation for a feed team id.
func TeamAbbreviation(id int64) (string, bool) {
	abbr, ok := teamAbbreviationByID[id]
	return abbr, ok
}

// TeamIDs returns every known feed team id.
func TeamIDs() []int64 {
	out := make([]int64, 0, len(teamNameByID))
	for id := int64(1); id <= 34; id++ {
		if _, ok := teamNameByID[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// teamNameSlug turns "Green Bay Packers" into "Green-Bay-Packers" for
// contract page URLs.
func teamNameSlug(name string) string {
	return strings.Join(strings.Fields(name), "-")
}
