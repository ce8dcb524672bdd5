package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/gridstats/gridiron/external/espn"
	"github.com/gridstats/gridiron/external/madden"
	"github.com/gridstats/gridiron/external/spotrac"
	"github.com/gridstats/gridiron/internal/config"
	"github.com/gridstats/gridiron/internal/infrastructure/repository/postgres"
	"github.com/gridstats/gridiron/internal/interfaces/httpapi"
	"github.com/gridstats/gridiron/internal/platform/logging"
	"github.com/gridstats/gridiron/internal/platform/resilience"
	"github.com/gridstats/gridiron/internal/usecase"
)

// NewHTTPServer wires the database, feed clients and ingestion services
// into a ready-to-run HTTP server.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := NewDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	pipeline, err := NewPipeline(cfg, db, logger)
	if err != nil {
		return nil, err
	}

	defaults := usecase.RunParams{
		StartYear:   cfg.StartYear,
		EndYear:     cfg.EndYear,
		MaxWeek:     cfg.MaxWeek,
		SeasonTypes: cfg.SeasonTypes,
	}

	handler := httpapi.NewHandler(pipeline, defaults, logger)
	router := httpapi.NewRouter(handler, logger, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

// NewPipeline assembles the full ingestion service graph over the given
// database handle.
func NewPipeline(cfg config.Config, db *sqlx.DB, logger *logging.Logger) (*usecase.PipelineService, error) {
	if logger == nil {
		logger = logging.Default()
	}

	teamRepo := postgres.NewTeamRepository(db)
	athleteRepo := postgres.NewAthleteRepository(db)
	positionRepo := postgres.NewPositionRepository(db)
	ratingRepo := postgres.NewRatingRepository(db)
	contractRepo := postgres.NewContractRepository(db)
	draftRepo := postgres.NewDraftRepository(db)
	venueRepo := postgres.NewVenueRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	compRepo := postgres.NewCompetitionRepository(db)
	officialRepo := postgres.NewOfficialRepository(db)
	driveRepo := postgres.NewDriveRepository(db)
	playRepo := postgres.NewPlayRepository(db)

	var proxies []string
	if cfg.ProxyFile != "" {
		var err error
		proxies, err = espn.LoadProxies(cfg.ProxyFile)
		if err != nil {
			return nil, fmt.Errorf("load proxies: %w", err)
		}
	}

	feed := espn.NewClient(espn.ClientConfig{
		BaseURL:         cfg.LeagueAPIBaseURL,
		Timeout:         cfg.LeagueAPITimeout,
		MaxRetries:      cfg.LeagueAPIMaxRetries,
		PageConcurrency: cfg.LeagueAPIPageConcurrency,
		Proxies:         proxies,
		Logger:          logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.LeagueAPICircuitEnabled,
			FailureThreshold: cfg.LeagueAPICircuitFailures,
			OpenTimeout:      cfg.LeagueAPICircuitOpenFor,
			HalfOpenMaxReq:   cfg.LeagueAPICircuitHalfOpen,
		},
	})
	ratings := madden.NewClient(madden.ClientConfig{
		BaseURL: cfg.RatingsAPIBaseURL,
		Timeout: cfg.RatingsAPITimeout,
		Logger:  logger,
	})
	contracts := spotrac.NewClient(spotrac.ClientConfig{
		BaseURL: cfg.ContractsBaseURL,
		Timeout: cfg.ContractsTimeout,
		Logger:  logger,
	})

	entities := usecase.NewEntities(cfg.CacheTTL)
	enrichment := usecase.NewEnrichmentService(ratings, contracts, contracts.BaseURL(), logger)
	athletes := usecase.NewAthleteService(
		feed,
		feed.BaseURL(),
		athleteRepo,
		positionRepo,
		teamRepo,
		ratingRepo,
		contractRepo,
		enrichment,
		entities,
		logger,
	)
	drives := usecase.NewDriveIngestService(feed, athletes, driveRepo, playRepo, entities, logger)
	events := usecase.NewEventIngestService(
		feed,
		athletes,
		venueRepo,
		eventRepo,
		compRepo,
		officialRepo,
		drives,
		entities,
		cfg.IgnoresEvent,
		logger,
	)
	teams := usecase.NewTeamSyncService(feed, feed.BaseURL(), teamRepo, draftRepo, enrichment, entities, logger)

	return usecase.NewPipelineService(feed, feed.BaseURL(), teams, events, cfg.EventWorkers, logger), nil
}
