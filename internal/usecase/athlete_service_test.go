package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gridstats/gridiron/internal/infrastructure/repository/memory"
	"github.com/gridstats/gridiron/internal/platform/jsondoc"
)

const testFeedBaseURL = "https://feed.test/v2/leagues/nfl"

type athleteFixture struct {
	fetcher      *stubFetcher
	ratings      *stubRatings
	tables       *stubTables
	athleteRepo  *memory.AthleteRepository
	positionRepo *memory.PositionRepository
	teamRepo     *memory.TeamRepository
	ratingRepo   *memory.RatingRepository
	contractRepo *memory.ContractRepository
	service      *AthleteService
}

func newAthleteFixture() *athleteFixture {
	f := &athleteFixture{
		fetcher:      newStubFetcher(),
		ratings:      newStubRatings(),
		tables:       newStubTables(),
		athleteRepo:  memory.NewAthleteRepository(),
		positionRepo: memory.NewPositionRepository(),
		teamRepo:     memory.NewTeamRepository(),
		ratingRepo:   memory.NewRatingRepository(),
		contractRepo: memory.NewContractRepository(),
	}
	enrichment := NewEnrichmentService(f.ratings, f.tables, "https://contracts.test/nfl", nil)
	f.service = NewAthleteService(
		f.fetcher, testFeedBaseURL,
		f.athleteRepo, f.positionRepo, f.teamRepo, f.ratingRepo, f.contractRepo,
		enrichment, NewEntities(time.Minute), nil,
	)
	return f
}

func TestEnsureAthleteCreatesWithEnrichment(t *testing.T) {
	t.Parallel()

	f := newAthleteFixture()
	ref := testFeedBaseURL + "/athletes/3139477"
	f.fetcher.docs[ref] = jsondoc.Doc{
		"fullName": "Patrick Mahomes",
		"age":      float64(27),
		"height":   float64(74),
		"weight":   float64(225),
		"salary":   float64(45000000),
		"status":   map[string]any{"name": "Active"},
		"team":     map[string]any{"$ref": testFeedBaseURL + "/teams/12?lang=en"},
		"position": map[string]any{"abbreviation": "QB"},
	}
	f.fetcher.docs[testFeedBaseURL+"/athletes/3139477/statisticslog"] = jsondoc.Doc{
		"entries": []any{
			map[string]any{
				"season": map[string]any{"$ref": testFeedBaseURL + "/seasons/2023"},
				"statistics": []any{
					map[string]any{"type": "total"},
					map[string]any{
						"type": "team",
						"team": map[string]any{"$ref": testFeedBaseURL + "/teams/12"},
					},
				},
			},
		},
	}
	f.ratings.items["Patrick Mahomes"] = []jsondoc.Doc{
		ratingsItem("Patrick", map[string]float64{"overall": 99}),
	}
	f.tables.rows["https://contracts.test/nfl/Kansas-City-Chiefs/cap/2023"] = [][]string{
		{"Patrick Mahomes QB", "27", "-", "-", "17.2%", "$64.3M", "$1.2M", "$39.8M", "$0", "$0", "$0", "$0", "$0", "$0"},
	}

	a, err := f.service.EnsureAthlete(context.Background(), ref)
	if err != nil {
		t.Fatalf("EnsureAthlete: %v", err)
	}
	if a.ID != 3139477 || a.FirstName != "Patrick" || a.LastName != "Mahomes" {
		t.Fatalf("athlete = %+v", a)
	}
	if a.TeamID == nil || *a.TeamID != 12 {
		t.Fatalf("team id = %v, want 12", a.TeamID)
	}
	if a.IsPracticeSquad {
		t.Fatal("active athlete flagged as practice squad")
	}
	if a.Height != 74 || a.Weight != 225 || a.Salary != 45000000 {
		t.Fatalf("athlete measurements = %+v", a)
	}

	if _, ok, _ := f.positionRepo.FindPositionByName(context.Background(), "QB"); !ok {
		t.Fatal("position QB was not persisted")
	}
	if n := f.teamRepo.HistoryCount(); n != 1 {
		t.Fatalf("team history rows = %d, want 1", n)
	}
	ratings := f.ratingRepo.All()
	if len(ratings) != 1 || ratings[0].AthleteID != 3139477 || ratings[0].Type != "overall" || ratings[0].Value != 99 {
		t.Fatalf("ratings = %+v", ratings)
	}
	contracts := f.contractRepo.All()
	if len(contracts) != 1 || contracts[0].AthleteID != 3139477 || contracts[0].TeamName != "Kansas City Chiefs" || contracts[0].Year != 2023 {
		t.Fatalf("contracts = %+v", contracts)
	}
}

func TestEnsureAthleteCachesAcrossCalls(t *testing.T) {
	t.Parallel()

	f := newAthleteFixture()
	ref := testFeedBaseURL + "/athletes/101"
	f.fetcher.docs[ref] = jsondoc.Doc{
		"fullName": "Test Player",
		"position": map[string]any{"abbreviation": "WR"},
	}

	if _, err := f.service.EnsureAthlete(context.Background(), ref); err != nil {
		t.Fatalf("first EnsureAthlete: %v", err)
	}
	if _, err := f.service.EnsureAthlete(context.Background(), ref); err != nil {
		t.Fatalf("second EnsureAthlete: %v", err)
	}

	if n := f.fetcher.callCount(ref); n != 1 {
		t.Fatalf("athlete document fetched %d times, want 1", n)
	}
}

func TestEnsureAthletePracticeSquad(t *testing.T) {
	t.Parallel()

	f := newAthleteFixture()
	ref := testFeedBaseURL + "/athletes/202"
	f.fetcher.docs[ref] = jsondoc.Doc{
		"fullName": "Practice Guy",
		"status":   map[string]any{"name": "Practice Squad"},
		"position": map[string]any{"abbreviation": "TE"},
	}

	a, err := f.service.EnsureAthlete(context.Background(), ref)
	if err != nil {
		t.Fatalf("EnsureAthlete: %v", err)
	}
	if !a.IsPracticeSquad {
		t.Fatal("practice squad status not detected")
	}
}

func TestEnsureAthleteSplitsCompoundLastName(t *testing.T) {
	t.Parallel()

	f := newAthleteFixture()
	ref := testFeedBaseURL + "/athletes/303"
	f.fetcher.docs[ref] = jsondoc.Doc{
		"fullName": "Amon-Ra St. Brown",
		"position": map[string]any{"abbreviation": "WR"},
	}

	a, err := f.service.EnsureAthlete(context.Background(), ref)
	if err != nil {
		t.Fatalf("EnsureAthlete: %v", err)
	}
	if a.FirstName != "Amon-Ra" || a.LastName != "St. Brown" {
		t.Fatalf("name split = %q / %q", a.FirstName, a.LastName)
	}
}

func TestEnsureAthleteMissingDocument(t *testing.T) {
	t.Parallel()

	f := newAthleteFixture()
	ref := testFeedBaseURL + "/athletes/404"

	if _, err := f.service.EnsureAthlete(context.Background(), ref); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestEnsureAthleteMalformedRef(t *testing.T) {
	t.Parallel()

	f := newAthleteFixture()
	if _, err := f.service.EnsureAthlete(context.Background(), testFeedBaseURL+"/athletes/latest"); !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestSplitName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, first, last string
	}{
		{"Patrick Mahomes", "Patrick", "Mahomes"},
		{"Patrick Lavon Mahomes II", "Patrick", "Lavon Mahomes II"},
		{"Cher", "Cher", ""},
		{"", "", ""},
	}
	for _, tc := range cases {
		first, last := splitName(tc.in)
		if first != tc.first || last != tc.last {
			t.Fatalf("splitName(%q) = %q/%q, want %q/%q", tc.in, first, last, tc.first, tc.last)
		}
	}
}
