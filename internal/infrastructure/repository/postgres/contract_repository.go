package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridstats/gridiron/internal/domain/contract"
	qb "github.com/gridstats/gridiron/internal/platform/querybuilder"
)

type ContractRepository struct {
	db *sqlx.DB
}

func NewContractRepository(db *sqlx.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

func (r *ContractRepository) Exists(ctx context.Context, athleteID int64, teamName string, year int64) (bool, error) {
	query, args, err := qb.Select("1").From("contracts").
		Where(
			qb.Eq("athlete_id", athleteID),
			qb.Eq("team_name", teamName),
			qb.Eq("year", year),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build select contract query: %w", err)
	}

	var one int
	if err := r.db.GetContext(ctx, &one, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("select contract: %w", err)
	}
	return true, nil
}

func (r *ContractRepository) Insert(ctx context.Context, c contract.Contract) error {
	model := contractInsertModel{
		AthleteID:        c.AthleteID,
		TeamName:         c.TeamName,
		Year:             c.Year,
		ApyHitPct:        c.ApyHitPct,
		DeadCap:          c.DeadCap,
		BaseSalary:       c.BaseSalary,
		SigningBonus:     c.SigningBonus,
		PerGameBonus:     c.PerGameBonus,
		RosterBonus:      c.RosterBonus,
		OptionBonus:      c.OptionBonus,
		WorkoutBonus:     c.WorkoutBonus,
		RestructureBonus: c.RestructureBonus,
		Incentives:       c.Incentives,
	}
	query, args, err := qb.InsertModel("contracts", model, "ON CONFLICT (athlete_id, team_name, year) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build insert contract query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert contract athlete=%d team=%s year=%d: %w", c.AthleteID, c.TeamName, c.Year, err)
	}
	return nil
}
