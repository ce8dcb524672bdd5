package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gridstats/gridiron/internal/domain/contract"
	"github.com/gridstats/gridiron/internal/domain/draft"
	"github.com/gridstats/gridiron/internal/domain/rating"
	"github.com/gridstats/gridiron/internal/platform/cache"
	"github.com/gridstats/gridiron/internal/platform/logging"
)

// Contract rows shorter than this are header or summary rows.
const contractRowMinCells = 14

// EnrichmentService resolves auxiliary records from sources that are only
// addressable by name, team, or year. Whole contract and draft tables are
// fetched once and cached; individual lookups filter the cached rows.
type EnrichmentService struct {
	ratings          RatingsProvider
	tables           TableProvider
	contractsBaseURL string
	logger           *logging.Logger

	contractTables *cache.Store
	draftTables    *cache.Store
}

func NewEnrichmentService(
	ratings RatingsProvider,
	tables TableProvider,
	contractsBaseURL string,
	logger *logging.Logger,
) *EnrichmentService {
	if logger == nil {
		logger = logging.Default()
	}
	return &EnrichmentService{
		ratings:          ratings,
		tables:           tables,
		contractsBaseURL: strings.TrimRight(contractsBaseURL, "/"),
		logger:           logger,
		contractTables:   cache.NewStore(0),
		draftTables:      cache.NewStore(0),
	}
}

// PlayerRatings looks up a player's skill ratings by name. Names with an
// initial ("A.J. Brown") are searched by last name and disambiguated by
// first name. When more than one candidate remains the lookup returns
// nothing rather than guessing.
func (s *EnrichmentService) PlayerRatings(ctx context.Context, playerName string) ([]rating.Rating, error) {
	ctx, span := startUsecaseSpan(ctx, "enrichment.PlayerRatings")
	defer span.End()

	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return nil, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	searchName := playerName
	firstName := ""
	if strings.Contains(playerName, ".") {
		parts := strings.Fields(playerName)
		if len(parts) > 1 {
			firstName = parts[0]
			searchName = parts[1]
		}
	}

	items, err := s.ratings.SearchPlayers(ctx, searchName)
	if err != nil {
		return nil, fmt.Errorf("search player ratings: %w", err)
	}
	if len(items) == 0 {
		s.logger.WarnContext(ctx, "no ratings found for player", "player", playerName)
		return nil, nil
	}

	chosen := items[0]
	if len(items) > 1 {
		chosen = nil
		if firstName != "" {
			for _, item := range items {
				if item.Str("firstName") == firstName {
					chosen = item
					break
				}
			}
		}
		if chosen == nil {
			s.logger.WarnContext(ctx, "multiple ratings candidates for player, skipping", "player", playerName, "candidates", len(items))
			return nil, nil
		}
	}

	stats := chosen.Doc("stats")
	ratings := make([]rating.Rating, 0, len(stats))
	for statName := range stats {
		if !stats.Has(statName, "value") {
			s.logger.WarnContext(ctx, "rating stat has no value", "player", playerName, "stat", statName)
			continue
		}
		ratings = append(ratings, rating.Rating{
			Type:  statName,
			Value: stats.Float(statName, "value"),
		})
	}
	return ratings, nil
}

// AthleteContracts filters a team/year contract table down to the rows
// whose name cell contains the player's name, case insensitively. The
// table is fetched once per (team, year) and cached for the process.
func (s *EnrichmentService) AthleteContracts(ctx context.Context, playerName, teamName string, year int64) ([]contract.Contract, error) {
	ctx, span := startUsecaseSpan(ctx, "enrichment.AthleteContracts")
	defer span.End()

	if teamName == "" {
		return nil, nil
	}

	rows, err := s.teamContractTable(ctx, teamName, year)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(playerName))
	var out []contract.Contract
	for _, row := range rows {
		if len(row) < contractRowMinCells {
			continue
		}
		if !strings.Contains(strings.ToLower(row[0]), needle) {
			continue
		}
		out = append(out, contract.Contract{
			TeamName:         teamName,
			Year:             year,
			ApyHitPct:        row[4],
			DeadCap:          row[5],
			BaseSalary:       row[6],
			SigningBonus:     row[7],
			PerGameBonus:     row[8],
			RosterBonus:      row[9],
			OptionBonus:      row[10],
			WorkoutBonus:     row[11],
			RestructureBonus: row[12],
			Incentives:       row[13],
		})
	}
	return out, nil
}

// PrefetchContractTable warms the cached contract table for one team and
// year so later athlete lookups never leave the process.
func (s *EnrichmentService) PrefetchContractTable(ctx context.Context, teamName string, year int64) error {
	if strings.TrimSpace(teamName) == "" {
		return nil
	}
	_, err := s.teamContractTable(ctx, teamName, year)
	return err
}

// TeamDraftPicks filters a draft-year table down to the rows whose team
// cell contains the franchise abbreviation, case insensitively.
func (s *EnrichmentService) TeamDraftPicks(ctx context.Context, year, teamID int64) ([]draft.Pick, error) {
	ctx, span := startUsecaseSpan(ctx, "enrichment.TeamDraftPicks")
	defer span.End()

	abbr, ok := TeamAbbreviation(teamID)
	if !ok {
		return nil, nil
	}
	needle := strings.ToLower(abbr)

	rows, err := s.draftTable(ctx, year)
	if err != nil {
		return nil, err
	}

	var out []draft.Pick
	for _, row := range rows {
		if len(row) < 3 {
			continue
		}
		if !strings.Contains(strings.ToLower(row[2]), needle) {
			continue
		}
		round, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil {
			continue
		}
		pickNumber, err := strconv.ParseInt(row[1], 10, 64)
		if err != nil {
			continue
		}
		out = append(out, draft.Pick{
			Year:       year,
			Round:      round,
			PickNumber: pickNumber,
			TeamID:     teamID,
		})
	}
	return out, nil
}

func (s *EnrichmentService) teamContractTable(ctx context.Context, teamName string, year int64) ([][]string, error) {
	key := entityKey("contracts", teamNameSlug(teamName), year)
	value, err := s.contractTables.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		pageURL := fmt.Sprintf("%s/%s/cap/%d", s.contractsBaseURL, teamNameSlug(teamName), year)
		rows, err := s.tables.TableRows(ctx, pageURL)
		if err != nil {
			return nil, fmt.Errorf("fetch contract table %s: %w", pageURL, err)
		}
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return value.([][]string), nil
}

func (s *EnrichmentService) draftTable(ctx context.Context, year int64) ([][]string, error) {
	key := entityKey("draft", year)
	value, err := s.draftTables.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		pageURL := fmt.Sprintf("%s/draft/_/year/%d", s.contractsBaseURL, year)
		rows, err := s.tables.TableRows(ctx, pageURL)
		if err != nil {
			return nil, fmt.Errorf("fetch draft table %s: %w", pageURL, err)
		}
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return value.([][]string), nil
}
