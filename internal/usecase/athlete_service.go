package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/gridstats/gridiron/internal/domain/athlete"
	"github.com/gridstats/gridiron/internal/domain/contract"
	"github.com/gridstats/gridiron/internal/domain/rating"
	"github.com/gridstats/gridiron/internal/domain/team"
	"github.com/gridstats/gridiron/internal/platform/logging"
	"github.com/gridstats/gridiron/internal/platform/refurl"
)

const practiceSquadStatus = "Practice Squad"

// AthleteService creates athletes lazily the first time a play references
// them, pulling team history, ratings, and contracts along with the core
// roster document. Enrichment failures degrade to warnings; they never
// block athlete creation.
type AthleteService struct {
	fetcher      DocumentFetcher
	feedBaseURL  string
	athleteRepo  athlete.Repository
	positionRepo athlete.PositionRepository
	teamRepo     team.Repository
	ratingRepo   rating.Repository
	contractRepo contract.Repository
	enrichment   *EnrichmentService
	entities     *Entities
	logger       *logging.Logger
}

func NewAthleteService(
	fetcher DocumentFetcher,
	feedBaseURL string,
	athleteRepo athlete.Repository,
	positionRepo athlete.PositionRepository,
	teamRepo team.Repository,
	ratingRepo rating.Repository,
	contractRepo contract.Repository,
	enrichment *EnrichmentService,
	entities *Entities,
	logger *logging.Logger,
) *AthleteService {
	if logger == nil {
		logger = logging.Default()
	}
	return &AthleteService{
		fetcher:      fetcher,
		feedBaseURL:  strings.TrimRight(feedBaseURL, "/"),
		athleteRepo:  athleteRepo,
		positionRepo: positionRepo,
		teamRepo:     teamRepo,
		ratingRepo:   ratingRepo,
		contractRepo: contractRepo,
		enrichment:   enrichment,
		entities:     entities,
		logger:       logger,
	}
}

// EnsureAthlete resolves an athlete $ref to a persisted athlete, creating
// it on first sight.
func (s *AthleteService) EnsureAthlete(ctx context.Context, ref string) (athlete.Athlete, error) {
	ctx, span := startUsecaseSpan(ctx, "athlete.EnsureAthlete")
	defer span.End()

	id, err := refurl.ID(ref)
	if err != nil {
		return athlete.Athlete{}, fmt.Errorf("%w: athlete ref %q: %v", ErrValidation, ref, err)
	}

	return lookupOrCreate(ctx, s.entities, entityKey("athlete", id),
		func(ctx context.Context) (athlete.Athlete, bool, error) {
			return s.athleteRepo.GetByID(ctx, id)
		},
		func(ctx context.Context) (athlete.Athlete, error) {
			return s.createAthlete(ctx, id, ref)
		},
	)
}

func (s *AthleteService) createAthlete(ctx context.Context, id int64, ref string) (athlete.Athlete, error) {
	doc, err := s.fetcher.Document(ctx, ref)
	if err != nil {
		return athlete.Athlete{}, fmt.Errorf("fetch athlete %d: %w", id, err)
	}
	if doc.IsEmpty() {
		return athlete.Athlete{}, fmt.Errorf("%w: athlete %d has no document at %s", ErrNotFound, id, ref)
	}

	fullName := strings.TrimSpace(doc.Str("fullName"))
	firstName, lastName := splitName(fullName)

	positionID, err := s.ensurePosition(ctx, doc.Str("position", "abbreviation"))
	if err != nil {
		return athlete.Athlete{}, err
	}

	var teamID *int64
	if tid, ok, err := refurl.MaybeID(doc.Ref("team")); err == nil && ok {
		teamID = &tid
	}

	a := athlete.Athlete{
		ID:              id,
		FirstName:       firstName,
		LastName:        lastName,
		Age:             doc.Int("age"),
		Height:          doc.Int("height"),
		Weight:          doc.Int("weight"),
		Salary:          doc.Float("salary"),
		IsPracticeSquad: doc.Str("status", "name") == practiceSquadStatus,
		TeamID:          teamID,
		PositionID:      positionID,
	}
	if err := a.Validate(); err != nil {
		return athlete.Athlete{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := s.athleteRepo.Insert(ctx, a); err != nil {
		return athlete.Athlete{}, fmt.Errorf("insert athlete %d: %w", id, err)
	}

	s.applyRatings(ctx, id, fullName)
	history := s.recordTeamHistory(ctx, id)
	s.applyContracts(ctx, id, fullName, history)

	return a, nil
}

func (s *AthleteService) ensurePosition(ctx context.Context, name string) (int64, error) {
	p, err := lookupOrCreate(ctx, s.entities, entityKey("position", name),
		func(ctx context.Context) (athlete.Position, bool, error) {
			return s.positionRepo.FindPositionByName(ctx, name)
		},
		func(ctx context.Context) (athlete.Position, error) {
			id, err := s.positionRepo.InsertPosition(ctx, name)
			if err != nil {
				return athlete.Position{}, fmt.Errorf("insert position %q: %w", name, err)
			}
			return athlete.Position{ID: id, Name: name}, nil
		},
	)
	if err != nil {
		return 0, err
	}
	return p.ID, nil
}

// recordTeamHistory walks the athlete's statistics log and records one
// (athlete, team, season) row per season played. Returns what it saw so
// contract enrichment can follow the same team/season pairs.
func (s *AthleteService) recordTeamHistory(ctx context.Context, athleteID int64) []team.History {
	logURL := fmt.Sprintf("%s/athletes/%d/statisticslog", s.feedBaseURL, athleteID)
	doc, err := s.fetcher.Document(ctx, logURL)
	if err != nil {
		s.logger.WarnContext(ctx, "fetch statistics log failed", "athlete_id", athleteID, "error", err)
		return nil
	}

	var history []team.History
	for _, entry := range doc.List("entries") {
		season, err := refurl.ID(entry.Ref("season"))
		if err != nil {
			s.logger.WarnContext(ctx, "statistics log entry has malformed season ref", "athlete_id", athleteID, "error", err)
			continue
		}
		for _, stat := range entry.List("statistics") {
			if stat.Str("type") != "team" || !stat.Has("team") {
				continue
			}
			teamID, err := refurl.ID(stat.Ref("team"))
			if err != nil {
				continue
			}

			h := team.History{AthleteID: athleteID, TeamID: teamID, Season: season}
			exists, err := s.teamRepo.HistoryExists(ctx, athleteID, teamID, season)
			if err != nil {
				s.logger.WarnContext(ctx, "team history lookup failed", "athlete_id", athleteID, "error", err)
				continue
			}
			if !exists {
				if err := s.teamRepo.InsertHistory(ctx, h); err != nil {
					s.logger.WarnContext(ctx, "insert team history failed", "athlete_id", athleteID, "team_id", teamID, "error", err)
					continue
				}
			}
			history = append(history, h)
		}
	}
	return history
}

func (s *AthleteService) applyRatings(ctx context.Context, athleteID int64, fullName string) {
	ratings, err := s.enrichment.PlayerRatings(ctx, fullName)
	if err != nil {
		s.logger.WarnContext(ctx, "ratings lookup failed", "athlete_id", athleteID, "player", fullName, "error", err)
		return
	}

	for _, r := range ratings {
		r.AthleteID = athleteID
		exists, err := s.ratingRepo.Exists(ctx, athleteID, r.Type)
		if err != nil {
			s.logger.WarnContext(ctx, "rating lookup failed", "athlete_id", athleteID, "rating_type", r.Type, "error", err)
			continue
		}
		if exists {
			continue
		}
		if err := s.ratingRepo.Insert(ctx, r); err != nil {
			s.logger.WarnContext(ctx, "insert rating failed", "athlete_id", athleteID, "rating_type", r.Type, "error", err)
		}
	}
}

func (s *AthleteService) applyContracts(ctx context.Context, athleteID int64, fullName string, history []team.History) {
	for _, h := range history {
		teamName, ok := TeamName(h.TeamID)
		if !ok {
			continue
		}

		contracts, err := s.enrichment.AthleteContracts(ctx, fullName, teamName, h.Season)
		if err != nil {
			s.logger.WarnContext(ctx, "contract lookup failed", "athlete_id", athleteID, "team", teamName, "year", h.Season, "error", err)
			continue
		}

		for _, c := range contracts {
			c.AthleteID = athleteID
			exists, err := s.contractRepo.Exists(ctx, athleteID, c.TeamName, c.Year)
			if err != nil {
				s.logger.WarnContext(ctx, "contract dedup lookup failed", "athlete_id", athleteID, "error", err)
				continue
			}
			if exists {
				continue
			}
			if err := s.contractRepo.Insert(ctx, c); err != nil {
				s.logger.WarnContext(ctx, "insert contract failed", "athlete_id", athleteID, "team", c.TeamName, "year", c.Year, "error", err)
			}
		}
	}
}

func splitName(fullName string) (string, string) {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
