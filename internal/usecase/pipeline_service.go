package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/gridstats/gridiron/internal/platform/logging"
)

// RunParams bounds one full ingestion run.
type RunParams struct {
	StartYear   int64
	EndYear     int64
	MaxWeek     int64
	SeasonTypes []int64
}

func (p RunParams) validate() error {
	if p.StartYear <= 0 || p.EndYear < p.StartYear {
		return fmt.Errorf("%w: year range %d-%d", ErrInvalidInput, p.StartYear, p.EndYear)
	}
	if p.MaxWeek < 1 {
		return fmt.Errorf("%w: max week %d", ErrInvalidInput, p.MaxWeek)
	}
	if len(p.SeasonTypes) == 0 {
		return fmt.Errorf("%w: no season types", ErrInvalidInput)
	}
	return nil
}

// RunReport summarizes one ingestion run.
type RunReport struct {
	Teams        int
	EventsSeen   int
	EventsFailed int
	Duration     time.Duration
}

// PipelineService orchestrates a full run: franchises first, then draft
// picks per year, then every event of every (year, season type, week)
// slot. Event page listings are collected concurrently; normalization and
// persistence stay sequential so dedup checks never race.
type PipelineService struct {
	fetcher      DocumentFetcher
	feedBaseURL  string
	teams        *TeamSyncService
	events       *EventIngestService
	eventWorkers int
	logger       *logging.Logger
}

func NewPipelineService(
	fetcher DocumentFetcher,
	feedBaseURL string,
	teams *TeamSyncService,
	events *EventIngestService,
	eventWorkers int,
	logger *logging.Logger,
) *PipelineService {
	if logger == nil {
		logger = logging.Default()
	}
	if eventWorkers < 1 {
		eventWorkers = 4
	}
	return &PipelineService{
		fetcher:      fetcher,
		feedBaseURL:  strings.TrimRight(feedBaseURL, "/"),
		teams:        teams,
		events:       events,
		eventWorkers: eventWorkers,
		logger:       logger,
	}
}

func (s *PipelineService) Run(ctx context.Context, params RunParams) (RunReport, error) {
	ctx, span := startUsecaseSpan(ctx, "pipeline.Run")
	defer span.End()

	if err := params.validate(); err != nil {
		return RunReport{}, err
	}

	start := time.Now()

	teams, err := s.teams.SyncTeams(ctx)
	if err != nil {
		return RunReport{}, fmt.Errorf("sync teams: %w", err)
	}
	s.logger.InfoContext(ctx, "teams synced", "count", len(teams))

	for year := params.StartYear; year <= params.EndYear; year++ {
		s.teams.PrefetchContracts(ctx, year, teams)
		if err := s.teams.ImportDraft(ctx, year); err != nil {
			s.logger.WarnContext(ctx, "draft import failed", "year", year, "error", err)
		}
	}

	eventRefs, err := s.collectEventRefs(ctx, params)
	if err != nil {
		return RunReport{}, err
	}
	s.logger.InfoContext(ctx, "event references collected", "count", len(eventRefs))

	report := RunReport{Teams: len(teams), EventsSeen: len(eventRefs)}
	for _, ref := range eventRefs {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if err := s.events.IngestEvent(ctx, ref); err != nil {
			report.EventsFailed++
			s.logger.ErrorContext(ctx, "event ingestion failed", "url", ref, "error", err)
		}
	}

	report.Duration = time.Since(start)
	s.logger.InfoContext(ctx, "ingestion run finished",
		"teams", report.Teams,
		"events_seen", report.EventsSeen,
		"events_failed", report.EventsFailed,
		"duration", report.Duration.String(),
	)
	return report, nil
}

// maxWeekForSeasonType bounds the listing walk per season type: the
// preseason never runs past week 4 and the postseason past week 5, so
// slots beyond that cannot list events.
func maxWeekForSeasonType(seasonType, maxWeek int64) int64 {
	switch seasonType {
	case 1:
		if maxWeek > 4 {
			return 4
		}
	case 3:
		if maxWeek > 5 {
			return 5
		}
	}
	return maxWeek
}

// collectEventRefs fans the (year, season type, week) listing fetches out
// over a worker pool and merges the results into one deduplicated,
// sorted slice.
func (s *PipelineService) collectEventRefs(ctx context.Context, params RunParams) ([]string, error) {
	type slot struct {
		year, seasonType, week int64
	}

	var slots []slot
	for year := params.StartYear; year <= params.EndYear; year++ {
		for _, seasonType := range params.SeasonTypes {
			weeks := maxWeekForSeasonType(seasonType, params.MaxWeek)
			for week := int64(1); week <= weeks; week++ {
				slots = append(slots, slot{year: year, seasonType: seasonType, week: week})
			}
		}
	}

	pool, err := ants.NewPool(s.eventWorkers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var mu sync.Mutex
	set := make(map[string]struct{}, len(slots)*12)

	var workers sync.WaitGroup
	for _, sl := range slots {
		sl := sl
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			listURL := fmt.Sprintf("%s/seasons/%d/types/%d/weeks/%d/events", s.feedBaseURL, sl.year, sl.seasonType, sl.week)
			refs, err := s.fetcher.AllRefs(ctx, listURL)
			if err != nil {
				s.logger.WarnContext(ctx, "event listing failed",
					"year", sl.year, "season_type", sl.seasonType, "week", sl.week, "error", err)
				return
			}

			mu.Lock()
			for _, ref := range refs {
				set[ref] = struct{}{}
			}
			mu.Unlock()
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit listing fetch: %w", err)
		}
	}
	workers.Wait()

	out := make([]string, 0, len(set))
	for ref := range set {
		out = append(out, ref)
	}
	sort.Strings(out)
	return out, nil
}
