package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/gridstats/gridiron/internal/domain/draft"
	"github.com/gridstats/gridiron/internal/domain/team"
	"github.com/gridstats/gridiron/internal/platform/logging"
	"github.com/gridstats/gridiron/internal/platform/refurl"
)

// TeamSyncService loads the franchise roster from the feed and imports
// draft picks from the scraped draft tables.
type TeamSyncService struct {
	fetcher     DocumentFetcher
	feedBaseURL string
	teamRepo    team.Repository
	draftRepo   draft.Repository
	enrichment  *EnrichmentService
	entities    *Entities
	logger      *logging.Logger
}

func NewTeamSyncService(
	fetcher DocumentFetcher,
	feedBaseURL string,
	teamRepo team.Repository,
	draftRepo draft.Repository,
	enrichment *EnrichmentService,
	entities *Entities,
	logger *logging.Logger,
) *TeamSyncService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamSyncService{
		fetcher:     fetcher,
		feedBaseURL: strings.TrimRight(feedBaseURL, "/"),
		teamRepo:    teamRepo,
		draftRepo:   draftRepo,
		enrichment:  enrichment,
		entities:    entities,
		logger:      logger,
	}
}

// SyncTeams walks the team listing and persists every franchise not yet
// known. Returns all synced teams.
func (s *TeamSyncService) SyncTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "team.SyncTeams")
	defer span.End()

	refs, err := s.fetcher.AllRefs(ctx, s.feedBaseURL+"/teams")
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	teams := make([]team.Team, 0, len(refs))
	for _, ref := range refs {
		t, err := s.ensureTeam(ctx, ref)
		if err != nil {
			s.logger.WarnContext(ctx, "team sync failed", "url", ref, "error", err)
			continue
		}
		teams = append(teams, t)
	}
	return teams, nil
}

// PrefetchContracts warms every franchise's contract table for one year
// so athlete ingestion later hits only the cache. Failures are logged and
// skipped; the lazy path refetches on demand.
func (s *TeamSyncService) PrefetchContracts(ctx context.Context, year int64, teams []team.Team) {
	ctx, span := startUsecaseSpan(ctx, "team.PrefetchContracts")
	defer span.End()

	for _, t := range teams {
		if err := s.enrichment.PrefetchContractTable(ctx, t.Name, year); err != nil {
			s.logger.WarnContext(ctx, "contract table prefetch failed", "team", t.Name, "year", year, "error", err)
		}
	}
}

func (s *TeamSyncService) ensureTeam(ctx context.Context, ref string) (team.Team, error) {
	id, err := refurl.ID(ref)
	if err != nil {
		return team.Team{}, fmt.Errorf("%w: team ref %q: %v", ErrValidation, ref, err)
	}

	return lookupOrCreate(ctx, s.entities, entityKey("team", id),
		func(ctx context.Context) (team.Team, bool, error) {
			return s.teamRepo.GetByID(ctx, id)
		},
		func(ctx context.Context) (team.Team, error) {
			doc, err := s.fetcher.Document(ctx, ref)
			if err != nil {
				return team.Team{}, fmt.Errorf("fetch team %d: %w", id, err)
			}
			if doc.IsEmpty() {
				return team.Team{}, fmt.Errorf("%w: team %d has no document at %s", ErrNotFound, id, ref)
			}

			t := team.Team{
				ID:   id,
				Name: doc.Str("displayName"),
			}
			if err := t.Validate(); err != nil {
				return team.Team{}, fmt.Errorf("%w: %v", ErrValidation, err)
			}
			if err := s.teamRepo.Insert(ctx, t); err != nil {
				return team.Team{}, fmt.Errorf("insert team %d: %w", id, err)
			}
			return t, nil
		},
	)
}

// ImportDraft loads every franchise's picks for one draft year,
// deduplicated by (year, round, pick).
func (s *TeamSyncService) ImportDraft(ctx context.Context, year int64) error {
	ctx, span := startUsecaseSpan(ctx, "team.ImportDraft")
	defer span.End()

	for _, teamID := range TeamIDs() {
		picks, err := s.enrichment.TeamDraftPicks(ctx, year, teamID)
		if err != nil {
			s.logger.WarnContext(ctx, "draft pick lookup failed", "year", year, "team_id", teamID, "error", err)
			continue
		}
		for _, pick := range picks {
			if err := s.insertPick(ctx, pick); err != nil {
				s.logger.WarnContext(ctx, "draft pick insert failed", "year", year, "team_id", teamID, "error", err)
			}
		}
	}
	return nil
}

func (s *TeamSyncService) insertPick(ctx context.Context, pick draft.Pick) error {
	key := entityKey("draftpick", pick.Year, pick.Round, pick.PickNumber)
	_, err := lookupOrCreate(ctx, s.entities, key,
		func(ctx context.Context) (draft.Pick, bool, error) {
			ok, err := s.draftRepo.Exists(ctx, pick.Year, pick.Round, pick.PickNumber)
			return pick, ok, err
		},
		func(ctx context.Context) (draft.Pick, error) {
			if err := s.draftRepo.Insert(ctx, pick); err != nil {
				return draft.Pick{}, err
			}
			return pick, nil
		},
	)
	return err
}
