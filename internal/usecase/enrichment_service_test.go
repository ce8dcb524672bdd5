package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/gridstats/gridiron/internal/platform/jsondoc"
)

func ratingsItem(firstName string, stats map[string]float64) jsondoc.Doc {
	statDocs := make(map[string]any, len(stats))
	for name, value := range stats {
		statDocs[name] = map[string]any{"value": value}
	}
	return jsondoc.Doc{
		"firstName": firstName,
		"stats":     statDocs,
	}
}

func TestPlayerRatingsSingleCandidate(t *testing.T) {
	t.Parallel()

	ratings := newStubRatings()
	ratings.items["Patrick Mahomes"] = []jsondoc.Doc{
		ratingsItem("Patrick", map[string]float64{"overall": 99, "throwPower": 97}),
	}
	svc := NewEnrichmentService(ratings, newStubTables(), "https://contracts.test/nfl", nil)

	got, err := svc.PlayerRatings(context.Background(), "Patrick Mahomes")
	if err != nil {
		t.Fatalf("PlayerRatings: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d ratings, want 2", len(got))
	}
	byType := make(map[string]float64, len(got))
	for _, r := range got {
		byType[r.Type] = r.Value
	}
	if byType["overall"] != 99 || byType["throwPower"] != 97 {
		t.Fatalf("ratings = %v", byType)
	}
}

func TestPlayerRatingsInitialSearchesLastName(t *testing.T) {
	t.Parallel()

	ratings := newStubRatings()
	ratings.items["Brown"] = []jsondoc.Doc{
		ratingsItem("Antonio", map[string]float64{"overall": 80}),
		ratingsItem("A.J.", map[string]float64{"overall": 93}),
	}
	svc := NewEnrichmentService(ratings, newStubTables(), "https://contracts.test/nfl", nil)

	got, err := svc.PlayerRatings(context.Background(), "A.J. Brown")
	if err != nil {
		t.Fatalf("PlayerRatings: %v", err)
	}
	if len(ratings.queries) != 1 || ratings.queries[0] != "Brown" {
		t.Fatalf("searched %v, want the bare last name", ratings.queries)
	}
	if len(got) != 1 || got[0].Value != 93 {
		t.Fatalf("got %v, want the A.J. candidate's rating", got)
	}
}

func TestPlayerRatingsAmbiguousWithoutFirstNameMatch(t *testing.T) {
	t.Parallel()

	ratings := newStubRatings()
	ratings.items["Smith"] = []jsondoc.Doc{
		ratingsItem("Geno", map[string]float64{"overall": 78}),
		ratingsItem("Roquan", map[string]float64{"overall": 92}),
	}
	svc := NewEnrichmentService(ratings, newStubTables(), "https://contracts.test/nfl", nil)

	got, err := svc.PlayerRatings(context.Background(), "Smith")
	if err != nil {
		t.Fatalf("PlayerRatings: %v", err)
	}
	if got != nil {
		t.Fatalf("got %v, want nil for an ambiguous name", got)
	}
}

func TestPlayerRatingsRejectsEmptyName(t *testing.T) {
	t.Parallel()

	svc := NewEnrichmentService(newStubRatings(), newStubTables(), "https://contracts.test/nfl", nil)
	if _, err := svc.PlayerRatings(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestAthleteContractsFiltersAndCaches(t *testing.T) {
	t.Parallel()

	tableURL := "https://contracts.test/nfl/Kansas-City-Chiefs/cap/2023"
	tables := newStubTables()
	tables.rows[tableURL] = [][]string{
		{"Player (75)"}, // summary row, too short
		{"Patrick Mahomes QB", "27", "-", "-", "17.2%", "$64.3M", "$1.2M", "$39.8M", "$0", "$0", "$0", "$0", "$0", "$0"},
		{"Travis Kelce TE", "33", "-", "-", "6.3%", "$19.1M", "$11.3M", "$2.5M", "$0", "$1.0M", "$0", "$0", "$0", "$500K"},
	}
	svc := NewEnrichmentService(newStubRatings(), tables, "https://contracts.test/nfl", nil)

	got, err := svc.AthleteContracts(context.Background(), "Travis Kelce", "Kansas City Chiefs", 2023)
	if err != nil {
		t.Fatalf("AthleteContracts: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d contracts, want 1", len(got))
	}
	c := got[0]
	if c.TeamName != "Kansas City Chiefs" || c.Year != 2023 {
		t.Fatalf("contract scoped to %q/%d", c.TeamName, c.Year)
	}
	if c.ApyHitPct != "6.3%" || c.BaseSalary != "$11.3M" || c.Incentives != "$500K" {
		t.Fatalf("contract cells = %+v", c)
	}

	// Second lookup for the same team/year reuses the cached table.
	if _, err := svc.AthleteContracts(context.Background(), "Patrick Mahomes", "Kansas City Chiefs", 2023); err != nil {
		t.Fatalf("AthleteContracts second lookup: %v", err)
	}
	if n := tables.callCount(tableURL); n != 1 {
		t.Fatalf("table fetched %d times, want 1", n)
	}
}

func TestAthleteContractsEmptyTeamIsNoop(t *testing.T) {
	t.Parallel()

	tables := newStubTables()
	svc := NewEnrichmentService(newStubRatings(), tables, "https://contracts.test/nfl", nil)

	got, err := svc.AthleteContracts(context.Background(), "Somebody", "", 2023)
	if err != nil || got != nil {
		t.Fatalf("got %v, %v; want no lookup for an unknown team", got, err)
	}
}

func TestTeamDraftPicks(t *testing.T) {
	t.Parallel()

	tableURL := "https://contracts.test/nfl/draft/_/year/2023"
	tables := newStubTables()
	tables.rows[tableURL] = [][]string{
		{"RD", "PK", "TEAM", "PLAYER"},
		{"1", "1", "CAR Carolina Panthers", "Bryce Young"},
		{"1", "10", "PHI Philadelphia Eagles", "Jalen Carter"},
		{"2", "40", "car Carolina Panthers", "Jonathan Mingo"},
	}
	svc := NewEnrichmentService(newStubRatings(), tables, "https://contracts.test/nfl", nil)

	got, err := svc.TeamDraftPicks(context.Background(), 2023, 29)
	if err != nil {
		t.Fatalf("TeamDraftPicks: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d picks, want 2", len(got))
	}
	if got[0].Round != 1 || got[0].PickNumber != 1 || got[0].TeamID != 29 || got[0].Year != 2023 {
		t.Fatalf("first pick = %+v", got[0])
	}
	if got[1].Round != 2 || got[1].PickNumber != 40 {
		t.Fatalf("second pick = %+v", got[1])
	}
}

func TestTeamDraftPicksUnknownTeam(t *testing.T) {
	t.Parallel()

	tables := newStubTables()
	svc := NewEnrichmentService(newStubRatings(), tables, "https://contracts.test/nfl", nil)

	got, err := svc.TeamDraftPicks(context.Background(), 2023, 31)
	if err != nil || got != nil {
		t.Fatalf("got %v, %v; want nothing for a skipped feed id", got, err)
	}
}
