package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/gridstats/gridiron/internal/infrastructure/repository/memory"
	"github.com/gridstats/gridiron/internal/platform/jsondoc"
)

type teamFixture struct {
	fetcher   *stubFetcher
	tables    *stubTables
	teamRepo  *memory.TeamRepository
	draftRepo *memory.DraftRepository
	service   *TeamSyncService
}

func newTeamFixture() *teamFixture {
	f := &teamFixture{
		fetcher:   newStubFetcher(),
		tables:    newStubTables(),
		teamRepo:  memory.NewTeamRepository(),
		draftRepo: memory.NewDraftRepository(),
	}
	enrichment := NewEnrichmentService(newStubRatings(), f.tables, "https://contracts.test/nfl", nil)
	f.service = NewTeamSyncService(f.fetcher, testFeedBaseURL, f.teamRepo, f.draftRepo, enrichment, NewEntities(time.Minute), nil)
	return f
}

func TestSyncTeams(t *testing.T) {
	t.Parallel()

	f := newTeamFixture()
	chiefsRef := testFeedBaseURL + "/teams/12"
	texansRef := testFeedBaseURL + "/teams/34"
	f.fetcher.refs[testFeedBaseURL+"/teams"] = []string{chiefsRef, texansRef}
	f.fetcher.docs[chiefsRef] = jsondoc.Doc{"displayName": "Kansas City Chiefs"}
	f.fetcher.docs[texansRef] = jsondoc.Doc{"displayName": "Houston Texans"}

	teams, err := f.service.SyncTeams(context.Background())
	if err != nil {
		t.Fatalf("SyncTeams: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("synced %d teams, want 2", len(teams))
	}

	got, ok, _ := f.teamRepo.GetByID(context.Background(), 12)
	if !ok || got.Name != "Kansas City Chiefs" {
		t.Fatalf("team 12 = %+v, ok=%v", got, ok)
	}
}

func TestSyncTeamsSkipsBrokenRefs(t *testing.T) {
	t.Parallel()

	f := newTeamFixture()
	goodRef := testFeedBaseURL + "/teams/12"
	f.fetcher.refs[testFeedBaseURL+"/teams"] = []string{
		testFeedBaseURL + "/teams/unknown", // malformed id
		testFeedBaseURL + "/teams/99",      // no document
		goodRef,
	}
	f.fetcher.docs[goodRef] = jsondoc.Doc{"displayName": "Kansas City Chiefs"}

	teams, err := f.service.SyncTeams(context.Background())
	if err != nil {
		t.Fatalf("SyncTeams: %v", err)
	}
	if len(teams) != 1 || teams[0].ID != 12 {
		t.Fatalf("teams = %+v, want the resolvable one only", teams)
	}
}

func TestSyncTeamsReusesKnownTeams(t *testing.T) {
	t.Parallel()

	f := newTeamFixture()
	ref := testFeedBaseURL + "/teams/12"
	f.fetcher.refs[testFeedBaseURL+"/teams"] = []string{ref}
	f.fetcher.docs[ref] = jsondoc.Doc{"displayName": "Kansas City Chiefs"}

	for i := 0; i < 2; i++ {
		if _, err := f.service.SyncTeams(context.Background()); err != nil {
			t.Fatalf("SyncTeams run %d: %v", i+1, err)
		}
	}

	if n := f.fetcher.callCount(ref); n != 1 {
		t.Fatalf("team document fetched %d times, want 1", n)
	}
}

func TestImportDraft(t *testing.T) {
	t.Parallel()

	f := newTeamFixture()
	f.tables.rows["https://contracts.test/nfl/draft/_/year/2023"] = [][]string{
		{"RD", "PK", "TEAM", "PLAYER"},
		{"1", "1", "CAR Carolina Panthers", "Bryce Young"},
		{"1", "31", "KC Kansas City Chiefs", "Felix Anudike-Uzomah"},
	}

	if err := f.service.ImportDraft(context.Background(), 2023); err != nil {
		t.Fatalf("ImportDraft: %v", err)
	}

	picks := f.draftRepo.All()
	if len(picks) != 2 {
		t.Fatalf("picks = %d, want 2", len(picks))
	}
	if ok, _ := f.draftRepo.Exists(context.Background(), 2023, 1, 31); !ok {
		t.Fatal("pick (2023, 1, 31) not persisted")
	}

	// Rerun must not duplicate picks.
	if err := f.service.ImportDraft(context.Background(), 2023); err != nil {
		t.Fatalf("ImportDraft rerun: %v", err)
	}
	if n := len(f.draftRepo.All()); n != 2 {
		t.Fatalf("picks after rerun = %d, want 2", n)
	}
}
