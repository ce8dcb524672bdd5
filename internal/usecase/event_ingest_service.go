package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gridstats/gridiron/internal/domain/competition"
	"github.com/gridstats/gridiron/internal/domain/event"
	"github.com/gridstats/gridiron/internal/domain/official"
	"github.com/gridstats/gridiron/internal/domain/venue"
	"github.com/gridstats/gridiron/internal/platform/jsondoc"
	"github.com/gridstats/gridiron/internal/platform/logging"
	"github.com/gridstats/gridiron/internal/platform/refurl"
)

// Feed timestamps carry minute precision and a literal Z.
const feedTimeLayout = "2006-01-02T15:04Z"

// EventIngestService assembles the full entity graph for one event:
// venue, competitors, drives with plays and stats, officials, and the
// competition status, then the competition and event rows themselves.
// Children are persisted before the rows that reference them.
type EventIngestService struct {
	fetcher      DocumentFetcher
	athletes     *AthleteService
	venueRepo    venue.Repository
	eventRepo    event.Repository
	compRepo     competition.Repository
	officialRepo official.Repository
	drives       *DriveIngestService
	entities     *Entities
	ignoresEvent func(int64) bool
	logger       *logging.Logger
}

func NewEventIngestService(
	fetcher DocumentFetcher,
	athletes *AthleteService,
	venueRepo venue.Repository,
	eventRepo event.Repository,
	compRepo competition.Repository,
	officialRepo official.Repository,
	drives *DriveIngestService,
	entities *Entities,
	ignoresEvent func(int64) bool,
	logger *logging.Logger,
) *EventIngestService {
	if logger == nil {
		logger = logging.Default()
	}
	if ignoresEvent == nil {
		ignoresEvent = func(int64) bool { return false }
	}
	return &EventIngestService{
		fetcher:      fetcher,
		athletes:     athletes,
		venueRepo:    venueRepo,
		eventRepo:    eventRepo,
		compRepo:     compRepo,
		officialRepo: officialRepo,
		drives:       drives,
		entities:     entities,
		ignoresEvent: ignoresEvent,
		logger:       logger,
	}
}

// IngestEvent fetches and persists one event subgraph. Excluded and
// already-ingested events are skipped without fetching children. A
// returned error means this event was abandoned; the caller decides
// whether to continue the batch.
func (s *EventIngestService) IngestEvent(ctx context.Context, eventURL string) error {
	ctx, span := startUsecaseSpan(ctx, "event.IngestEvent")
	defer span.End()

	eventID, err := refurl.ID(eventURL)
	if err != nil {
		return fmt.Errorf("%w: event ref %q: %v", ErrValidation, eventURL, err)
	}

	if s.ignoresEvent(eventID) {
		s.logger.InfoContext(ctx, "event excluded from ingestion", "event_id", eventID)
		return nil
	}

	if _, ok, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return fmt.Errorf("event lookup %d: %w", eventID, err)
	} else if ok {
		return nil
	}

	doc, err := s.fetcher.Document(ctx, eventURL)
	if err != nil {
		return fmt.Errorf("fetch event %d: %w", eventID, err)
	}
	if doc.IsEmpty() {
		s.logger.WarnContext(ctx, "event has no document", "event_id", eventID, "url", eventURL)
		return nil
	}

	season, week, seasonType, err := parseSeasonRefs(doc)
	if err != nil {
		return fmt.Errorf("%w: event %d: %v", ErrValidation, eventID, err)
	}

	if competitions := doc.List("competitions"); len(competitions) > 0 {
		if err := s.ingestCompetition(ctx, competitions[0], eventID); err != nil {
			return err
		}
	}

	var weatherID *int64
	if doc.Has("weather") {
		id, err := s.eventRepo.InsertWeather(ctx, event.Weather{
			Display:       doc.Str("weather", "displayValue"),
			WindSpeed:     doc.Int("weather", "windSpeed"),
			Temperature:   doc.Int("weather", "temperature"),
			Gust:          doc.Int("weather", "gust"),
			Precipitation: doc.Int("weather", "precipitation"),
		})
		if err != nil {
			s.logger.WarnContext(ctx, "insert weather failed", "event_id", eventID, "error", err)
		} else {
			weatherID = &id
		}
	}

	e := event.Event{
		ID:         eventID,
		Name:       doc.Str("name"),
		Season:     season,
		Week:       week,
		SeasonType: seasonType,
		WeatherID:  weatherID,
	}
	if err := e.Validate(); err != nil {
		return fmt.Errorf("%w: event %d: %v", ErrValidation, eventID, err)
	}
	if err := s.eventRepo.Insert(ctx, e); err != nil {
		return fmt.Errorf("insert event %d: %w", eventID, err)
	}
	return nil
}

// parseSeasonRefs extracts season, week, and season type from the event's
// cross-reference URLs. All three are required; an event without them is
// unusable.
func parseSeasonRefs(doc jsondoc.Doc) (season, week, seasonType int64, err error) {
	season, err = refurl.ID(doc.Ref("season"))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("season ref: %v", err)
	}
	week, err = refurl.ID(doc.Ref("week"))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("week ref: %v", err)
	}
	seasonType, err = refurl.ID(doc.Ref("seasonType"))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("season type ref: %v", err)
	}
	return season, week, seasonType, nil
}

func (s *EventIngestService) ingestCompetition(ctx context.Context, doc jsondoc.Doc, eventID int64) error {
	compID, err := doc.RequiredInt("id")
	if err != nil {
		return fmt.Errorf("%w: competition of event %d: %v", ErrValidation, eventID, err)
	}

	// One embedded competition per event; the feed reuses the event id.
	if eventID != compID {
		return fmt.Errorf("%w: event id %d does not match competition id %d", ErrValidation, eventID, compID)
	}

	// Already-ingested competitions must not trigger child fetches.
	if _, ok, err := s.compRepo.GetByID(ctx, compID); err != nil {
		return fmt.Errorf("competition lookup %d: %w", compID, err)
	} else if ok {
		return nil
	}

	var venueID *int64
	if doc.Has("venue") {
		id, err := s.ensureVenue(ctx, doc.Doc("venue"))
		if err != nil {
			s.logger.WarnContext(ctx, "venue ingestion failed", "competition_id", compID, "error", err)
		} else {
			venueID = &id
		}
	}

	if err := s.ingestCompetitors(ctx, doc.List("competitors"), eventID, compID); err != nil {
		return err
	}

	if drivesRef := doc.Ref("drives"); drivesRef != "" {
		if err := s.drives.IngestDrives(ctx, drivesRef, compID); err != nil {
			s.logger.WarnContext(ctx, "drive ingestion failed", "competition_id", compID, "error", err)
		}
	}

	var refereeIDs []int64
	if officialsRef := doc.Ref("officials"); officialsRef != "" {
		refereeIDs = s.ingestOfficials(ctx, officialsRef, compID)
	}

	var statusID *int64
	if statusRef := doc.Ref("status"); statusRef != "" {
		if id, err := s.ingestStatus(ctx, statusRef); err != nil {
			s.logger.WarnContext(ctx, "status ingestion failed", "competition_id", compID, "error", err)
		} else if id != 0 {
			statusID = &id
		}
	}

	date, err := time.Parse(feedTimeLayout, doc.Str("date"))
	if err != nil {
		return fmt.Errorf("%w: competition %d date %q: %v", ErrValidation, compID, doc.Str("date"), err)
	}

	c := competition.Competition{
		ID:       compID,
		EventID:  eventID,
		Date:     date,
		VenueID:  venueID,
		StatusID: statusID,
	}
	if err := s.compRepo.Insert(ctx, c); err != nil {
		return fmt.Errorf("insert competition %d: %w", compID, err)
	}

	for _, officialID := range refereeIDs {
		if err := s.compRepo.LinkReferee(ctx, compID, officialID); err != nil {
			s.logger.WarnContext(ctx, "link referee failed", "competition_id", compID, "official_id", officialID, "error", err)
		}
	}
	return nil
}

func (s *EventIngestService) ensureVenue(ctx context.Context, doc jsondoc.Doc) (int64, error) {
	id, err := doc.RequiredInt("id")
	if err != nil {
		return 0, fmt.Errorf("%w: venue: %v", ErrValidation, err)
	}

	v, err := lookupOrCreate(ctx, s.entities, entityKey("venue", id),
		func(ctx context.Context) (venue.Venue, bool, error) {
			return s.venueRepo.GetByID(ctx, id)
		},
		func(ctx context.Context) (venue.Venue, error) {
			v := venue.Venue{
				ID:     id,
				Name:   doc.Str("fullName"),
				Grass:  doc.Bool("grass"),
				Indoor: doc.Bool("indoor"),
				City:   doc.Str("address", "city"),
				State:  doc.Str("address", "state"),
				Zip:    doc.Int("address", "zipCode"),
			}
			if err := s.venueRepo.Insert(ctx, v); err != nil {
				return venue.Venue{}, fmt.Errorf("insert venue %d: %w", id, err)
			}
			return v, nil
		},
	)
	if err != nil {
		return 0, err
	}
	return v.ID, nil
}

func (s *EventIngestService) ingestCompetitors(ctx context.Context, docs []jsondoc.Doc, eventID, compID int64) error {
	for _, doc := range docs {
		teamID, err := doc.RequiredInt("id")
		if err != nil {
			s.logger.WarnContext(ctx, "competitor without team id", "competition_id", compID, "error", err)
			continue
		}

		c := competition.Competitor{
			EventID:       eventID,
			CompetitionID: compID,
			TeamID:        teamID,
			IsHome:        strings.EqualFold(doc.Str("homeAway"), "home"),
			IsWinner:      doc.Bool("winner"),
			Score:         s.fetchScore(ctx, doc),
		}
		if err := c.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}

		key := entityKey("competitor", c.EventID, c.CompetitionID, c.TeamID, c.IsHome, c.IsWinner, c.Score)
		_, err = lookupOrCreate(ctx, s.entities, key,
			func(ctx context.Context) (competition.Competitor, bool, error) {
				ok, err := s.compRepo.CompetitorExists(ctx, c)
				return c, ok, err
			},
			func(ctx context.Context) (competition.Competitor, error) {
				if err := s.compRepo.InsertCompetitor(ctx, c); err != nil {
					return competition.Competitor{}, fmt.Errorf("insert competitor team=%d: %w", c.TeamID, err)
				}
				return c, nil
			},
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// fetchScore resolves the competitor's score side document. A missing or
// unreadable score degrades to 0.
func (s *EventIngestService) fetchScore(ctx context.Context, doc jsondoc.Doc) int64 {
	scoreRef := doc.Ref("score")
	if scoreRef == "" {
		return 0
	}
	scoreDoc, err := s.fetcher.Document(ctx, scoreRef)
	if err != nil {
		s.logger.WarnContext(ctx, "fetch score failed", "url", scoreRef, "error", err)
		return 0
	}
	return scoreDoc.Int("value")
}

// ingestOfficials persists every official in the listing and returns the
// distinct ids to link as this competition's referees, deduplicated by id
// within the list.
func (s *EventIngestService) ingestOfficials(ctx context.Context, officialsRef string, compID int64) []int64 {
	items, err := s.fetcher.AllItems(ctx, officialsRef)
	if err != nil {
		s.logger.WarnContext(ctx, "fetch officials failed", "competition_id", compID, "error", err)
		return nil
	}

	seen := make(map[int64]struct{}, len(items))
	out := make([]int64, 0, len(items))
	for _, item := range items {
		o, err := s.ensureOfficial(ctx, item)
		if err != nil {
			s.logger.WarnContext(ctx, "official ingestion failed", "competition_id", compID, "error", err)
			continue
		}
		if _, ok := seen[o.ID]; ok {
			continue
		}
		seen[o.ID] = struct{}{}
		out = append(out, o.ID)
	}
	return out
}

func (s *EventIngestService) ensureOfficial(ctx context.Context, doc jsondoc.Doc) (official.Official, error) {
	id, err := doc.RequiredInt("id")
	if err != nil {
		return official.Official{}, fmt.Errorf("%w: official: %v", ErrValidation, err)
	}

	positionID, err := s.ensureOfficialPosition(ctx, doc.Doc("position"))
	if err != nil {
		return official.Official{}, err
	}

	return lookupOrCreate(ctx, s.entities, entityKey("official", id),
		func(ctx context.Context) (official.Official, bool, error) {
			return s.officialRepo.GetByID(ctx, id)
		},
		func(ctx context.Context) (official.Official, error) {
			o := official.Official{
				ID:         id,
				FirstName:  doc.Str("firstName"),
				LastName:   doc.Str("lastName"),
				Order:      doc.Int("order"),
				PositionID: positionID,
			}
			if err := s.officialRepo.Insert(ctx, o); err != nil {
				return official.Official{}, fmt.Errorf("insert official %d: %w", id, err)
			}
			return o, nil
		},
	)
}

func (s *EventIngestService) ensureOfficialPosition(ctx context.Context, doc jsondoc.Doc) (int64, error) {
	id := doc.Int("id")
	name := doc.Str("name")
	if name == "" {
		name = "Unknown"
	}

	p, err := lookupOrCreate(ctx, s.entities, entityKey("officialposition", id),
		func(ctx context.Context) (official.Position, bool, error) {
			return s.officialRepo.GetPositionByID(ctx, id)
		},
		func(ctx context.Context) (official.Position, error) {
			p := official.Position{ID: id, Name: name}
			if err := s.officialRepo.InsertPosition(ctx, p); err != nil {
				return official.Position{}, fmt.Errorf("insert official position %d: %w", id, err)
			}
			return p, nil
		},
	)
	if err != nil {
		return 0, err
	}
	return p.ID, nil
}

func (s *EventIngestService) ingestStatus(ctx context.Context, statusRef string) (int64, error) {
	doc, err := s.fetcher.Document(ctx, statusRef)
	if err != nil {
		return 0, fmt.Errorf("fetch status: %w", err)
	}
	if doc.IsEmpty() {
		return 0, nil
	}

	typeDoc := doc.Doc("type")
	typeID := typeDoc.Int("id")
	_, err = lookupOrCreate(ctx, s.entities, entityKey("statustype", typeID),
		func(ctx context.Context) (competition.StatusType, bool, error) {
			return s.compRepo.GetStatusType(ctx, typeID)
		},
		func(ctx context.Context) (competition.StatusType, error) {
			t := competition.StatusType{
				ID:          typeID,
				Name:        typeDoc.Str("name"),
				State:       typeDoc.Str("state"),
				Completed:   typeDoc.Bool("completed"),
				Description: typeDoc.Str("description"),
				Detail:      typeDoc.Str("detail"),
			}
			if err := s.compRepo.InsertStatusType(ctx, t); err != nil {
				return competition.StatusType{}, fmt.Errorf("insert status type %d: %w", typeID, err)
			}
			return t, nil
		},
	)
	if err != nil {
		return 0, err
	}

	status := competition.Status{
		Clock:        doc.Int("clock"),
		DisplayClock: doc.Str("displayClock"),
		Period:       doc.Int("period"),
		TypeID:       typeID,
	}
	key := entityKey("status", status.Clock, status.DisplayClock, status.Period, status.TypeID)
	persisted, err := lookupOrCreate(ctx, s.entities, key,
		func(ctx context.Context) (competition.Status, bool, error) {
			return s.compRepo.FindStatus(ctx, status)
		},
		func(ctx context.Context) (competition.Status, error) {
			id, err := s.compRepo.InsertStatus(ctx, status)
			if err != nil {
				return competition.Status{}, fmt.Errorf("insert status: %w", err)
			}
			status.ID = id
			return status, nil
		},
	)
	if err != nil {
		return 0, err
	}
	return persisted.ID, nil
}
