package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gridstats/gridiron/internal/domain/event"
	"github.com/gridstats/gridiron/internal/infrastructure/repository/memory"
	"github.com/gridstats/gridiron/internal/platform/jsondoc"
)

type eventFixture struct {
	fetcher      *stubFetcher
	venueRepo    *memory.VenueRepository
	eventRepo    *memory.EventRepository
	compRepo     *memory.CompetitionRepository
	officialRepo *memory.OfficialRepository
	driveRepo    *memory.DriveRepository
	playRepo     *memory.PlayRepository
	service      *EventIngestService
}

func newEventFixture(ignoresEvent func(int64) bool) *eventFixture {
	f := &eventFixture{
		fetcher:      newStubFetcher(),
		venueRepo:    memory.NewVenueRepository(),
		eventRepo:    memory.NewEventRepository(),
		compRepo:     memory.NewCompetitionRepository(),
		officialRepo: memory.NewOfficialRepository(),
		driveRepo:    memory.NewDriveRepository(),
		playRepo:     memory.NewPlayRepository(),
	}
	entities := NewEntities(time.Minute)
	enrichment := NewEnrichmentService(newStubRatings(), newStubTables(), "https://contracts.test/nfl", nil)
	athletes := NewAthleteService(
		f.fetcher, testFeedBaseURL,
		memory.NewAthleteRepository(), memory.NewPositionRepository(), memory.NewTeamRepository(),
		memory.NewRatingRepository(), memory.NewContractRepository(),
		enrichment, entities, nil,
	)
	drives := NewDriveIngestService(f.fetcher, athletes, f.driveRepo, f.playRepo, entities, nil)
	f.service = NewEventIngestService(
		f.fetcher, athletes,
		f.venueRepo, f.eventRepo, f.compRepo, f.officialRepo,
		drives, entities, ignoresEvent, nil,
	)
	return f
}

// seedEvent loads a complete event subgraph into the stub feed and
// returns the event URL.
func (f *eventFixture) seedEvent(eventID string) string {
	eventURL := testFeedBaseURL + "/events/" + eventID
	drivesRef := eventURL + "/competitions/" + eventID + "/drives"
	officialsRef := eventURL + "/competitions/" + eventID + "/officials"
	statusRef := eventURL + "/competitions/" + eventID + "/status"
	homeScoreRef := eventURL + "/competitions/" + eventID + "/competitors/12/score"
	awayScoreRef := eventURL + "/competitions/" + eventID + "/competitors/34/score"

	f.fetcher.docs[eventURL] = jsondoc.Doc{
		"name":       "Houston Texans at Kansas City Chiefs",
		"season":     map[string]any{"$ref": testFeedBaseURL + "/seasons/2020"},
		"week":       map[string]any{"$ref": testFeedBaseURL + "/seasons/2020/types/2/weeks/1"},
		"seasonType": map[string]any{"$ref": testFeedBaseURL + "/seasons/2020/types/2"},
		"weather": map[string]any{
			"displayValue":  "Clear",
			"windSpeed":     float64(6),
			"temperature":   float64(64),
			"gust":          float64(11),
			"precipitation": float64(0),
		},
		"competitions": []any{
			map[string]any{
				"id":   eventID,
				"date": "2020-09-10T00:20Z",
				"venue": map[string]any{
					"id":       "3622",
					"fullName": "GEHA Field at Arrowhead Stadium",
					"grass":    true,
					"indoor":   false,
					"address": map[string]any{
						"city": "Kansas City", "state": "MO", "zipCode": float64(64129),
					},
				},
				"competitors": []any{
					map[string]any{
						"id":       "12",
						"homeAway": "home",
						"winner":   true,
						"score":    map[string]any{"$ref": homeScoreRef},
					},
					map[string]any{
						"id":       "34",
						"homeAway": "away",
						"winner":   false,
						"score":    map[string]any{"$ref": awayScoreRef},
					},
				},
				"drives":    map[string]any{"$ref": drivesRef},
				"officials": map[string]any{"$ref": officialsRef},
				"status":    map[string]any{"$ref": statusRef},
			},
		},
	}
	f.fetcher.docs[homeScoreRef] = jsondoc.Doc{"value": float64(34)}
	f.fetcher.docs[awayScoreRef] = jsondoc.Doc{"value": float64(20)}
	f.fetcher.items[drivesRef] = nil
	f.fetcher.items[officialsRef] = []jsondoc.Doc{
		{
			"id":        "1037",
			"firstName": "Clete",
			"lastName":  "Blakeman",
			"order":     float64(1),
			"position":  map[string]any{"id": float64(15), "name": "Referee"},
		},
	}
	f.fetcher.docs[statusRef] = jsondoc.Doc{
		"clock":        float64(0),
		"displayClock": "0:00",
		"period":       float64(4),
		"type": map[string]any{
			"id": "3", "name": "STATUS_FINAL", "state": "post",
			"completed": true, "description": "Final", "detail": "Final",
		},
	}
	return eventURL
}

func TestIngestEventFullGraph(t *testing.T) {
	t.Parallel()

	f := newEventFixture(nil)
	eventURL := f.seedEvent("401220403")
	ctx := context.Background()

	if err := f.service.IngestEvent(ctx, eventURL); err != nil {
		t.Fatalf("IngestEvent: %v", err)
	}

	e, ok, _ := f.eventRepo.GetByID(ctx, 401220403)
	if !ok {
		t.Fatal("event not persisted")
	}
	if e.Season != 2020 || e.Week != 1 || e.SeasonType != 2 {
		t.Fatalf("event = %+v", e)
	}
	if e.WeatherID == nil {
		t.Fatal("event has no weather id")
	}

	c, ok, _ := f.compRepo.GetByID(ctx, 401220403)
	if !ok {
		t.Fatal("competition not persisted")
	}
	if c.EventID != 401220403 {
		t.Fatalf("competition event id = %d", c.EventID)
	}
	if c.VenueID == nil || *c.VenueID != 3622 {
		t.Fatalf("competition venue id = %v", c.VenueID)
	}
	if c.StatusID == nil {
		t.Fatal("competition has no status id")
	}
	if want := time.Date(2020, 9, 10, 0, 20, 0, 0, time.UTC); !c.Date.Equal(want) {
		t.Fatalf("competition date = %v, want %v", c.Date, want)
	}

	v, ok, _ := f.venueRepo.GetByID(ctx, 3622)
	if !ok || v.City != "Kansas City" || !v.Grass || v.Zip != 64129 {
		t.Fatalf("venue = %+v, ok=%v", v, ok)
	}

	competitors := f.compRepo.Competitors()
	if len(competitors) != 2 {
		t.Fatalf("competitors = %d, want 2", len(competitors))
	}
	for _, c := range competitors {
		switch c.TeamID {
		case 12:
			if !c.IsHome || !c.IsWinner || c.Score != 34 {
				t.Fatalf("home competitor = %+v", c)
			}
		case 34:
			if c.IsHome || c.IsWinner || c.Score != 20 {
				t.Fatalf("away competitor = %+v", c)
			}
		default:
			t.Fatalf("unexpected competitor team %d", c.TeamID)
		}
	}

	if _, ok, _ := f.officialRepo.GetByID(ctx, 1037); !ok {
		t.Fatal("official not persisted")
	}
	if f.compRepo.RefereeCount() != 1 {
		t.Fatalf("referee links = %d, want 1", f.compRepo.RefereeCount())
	}

	st, ok, _ := f.compRepo.GetStatusType(ctx, 3)
	if !ok || st.Name != "STATUS_FINAL" || !st.Completed {
		t.Fatalf("status type = %+v, ok=%v", st, ok)
	}
}

func TestIngestEventExcludedSkipsAllFetches(t *testing.T) {
	t.Parallel()

	f := newEventFixture(func(id int64) bool { return id == 401220373 })
	eventURL := f.seedEvent("401220373")

	if err := f.service.IngestEvent(context.Background(), eventURL); err != nil {
		t.Fatalf("IngestEvent: %v", err)
	}
	if n := f.fetcher.totalCalls(); n != 0 {
		t.Fatalf("excluded event triggered %d fetches", n)
	}
	if _, ok, _ := f.eventRepo.GetByID(context.Background(), 401220373); ok {
		t.Fatal("excluded event was persisted")
	}
}

func TestIngestEventAlreadyIngestedSkipsFetches(t *testing.T) {
	t.Parallel()

	f := newEventFixture(nil)
	eventURL := f.seedEvent("401220404")
	ctx := context.Background()

	if err := f.eventRepo.Insert(ctx, event.Event{ID: 401220404, Season: 2020, Week: 1, SeasonType: 2}); err != nil {
		t.Fatalf("seed event: %v", err)
	}

	if err := f.service.IngestEvent(ctx, eventURL); err != nil {
		t.Fatalf("IngestEvent: %v", err)
	}
	if n := f.fetcher.totalCalls(); n != 0 {
		t.Fatalf("known event triggered %d fetches", n)
	}
}

func TestIngestEventRerunIsIdempotent(t *testing.T) {
	t.Parallel()

	f := newEventFixture(nil)
	eventURL := f.seedEvent("401220405")
	ctx := context.Background()

	if err := f.service.IngestEvent(ctx, eventURL); err != nil {
		t.Fatalf("first IngestEvent: %v", err)
	}
	fetchesAfterFirst := f.fetcher.totalCalls()

	if err := f.service.IngestEvent(ctx, eventURL); err != nil {
		t.Fatalf("second IngestEvent: %v", err)
	}
	if n := f.fetcher.totalCalls(); n != fetchesAfterFirst {
		t.Fatalf("rerun fetched %d more documents", n-fetchesAfterFirst)
	}
	if len(f.compRepo.Competitors()) != 2 {
		t.Fatalf("competitors = %d after rerun, want 2", len(f.compRepo.Competitors()))
	}
}

func TestIngestEventsSharingVenue(t *testing.T) {
	t.Parallel()

	f := newEventFixture(nil)
	firstURL := f.seedEvent("401220403")
	secondURL := f.seedEvent("401220404")
	ctx := context.Background()

	if err := f.service.IngestEvent(ctx, firstURL); err != nil {
		t.Fatalf("IngestEvent first: %v", err)
	}
	if err := f.service.IngestEvent(ctx, secondURL); err != nil {
		t.Fatalf("IngestEvent second: %v", err)
	}

	if got := f.venueRepo.Count(); got != 1 {
		t.Fatalf("venue rows = %d, want the shared venue stored once", got)
	}
	for _, id := range []int64{401220403, 401220404} {
		c, ok, _ := f.compRepo.GetByID(ctx, id)
		if !ok {
			t.Fatalf("competition %d not persisted", id)
		}
		if c.VenueID == nil || *c.VenueID != 3622 {
			t.Fatalf("competition %d venue id = %v, want 3622", id, c.VenueID)
		}
	}
}

func TestIngestEventCompetitionIDMismatch(t *testing.T) {
	t.Parallel()

	f := newEventFixture(nil)
	eventURL := testFeedBaseURL + "/events/500"
	f.fetcher.docs[eventURL] = jsondoc.Doc{
		"name":       "Mismatched",
		"season":     map[string]any{"$ref": testFeedBaseURL + "/seasons/2020"},
		"week":       map[string]any{"$ref": testFeedBaseURL + "/seasons/2020/types/2/weeks/1"},
		"seasonType": map[string]any{"$ref": testFeedBaseURL + "/seasons/2020/types/2"},
		"competitions": []any{
			map[string]any{"id": "501", "date": "2020-09-10T00:20Z"},
		},
	}

	err := f.service.IngestEvent(context.Background(), eventURL)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if _, ok, _ := f.eventRepo.GetByID(context.Background(), 500); ok {
		t.Fatal("event with mismatched competition was persisted")
	}
}

func TestIngestEventMissingSeasonRefs(t *testing.T) {
	t.Parallel()

	f := newEventFixture(nil)
	eventURL := testFeedBaseURL + "/events/600"
	f.fetcher.docs[eventURL] = jsondoc.Doc{
		"name":   "No season",
		"season": map[string]any{"$ref": testFeedBaseURL + "/seasons/2020"},
	}

	if err := f.service.IngestEvent(context.Background(), eventURL); !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestIngestEventMissingDocumentIsSkipped(t *testing.T) {
	t.Parallel()

	f := newEventFixture(nil)
	eventURL := testFeedBaseURL + "/events/700"

	if err := f.service.IngestEvent(context.Background(), eventURL); err != nil {
		t.Fatalf("IngestEvent: %v", err)
	}
	if _, ok, _ := f.eventRepo.GetByID(context.Background(), 700); ok {
		t.Fatal("vanished event was persisted")
	}
}

func TestIngestEventMalformedURL(t *testing.T) {
	t.Parallel()

	f := newEventFixture(nil)
	if err := f.service.IngestEvent(context.Background(), testFeedBaseURL+"/events/latest"); !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}
