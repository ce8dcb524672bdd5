package memory

import (
	"context"
	"sync"

	"github.com/gridstats/gridiron/internal/domain/contract"
	"github.com/gridstats/gridiron/internal/domain/draft"
	"github.com/gridstats/gridiron/internal/domain/rating"
)

type RatingRepository struct {
	mu      sync.RWMutex
	ratings []rating.Rating
}

func NewRatingRepository() *RatingRepository {
	return &RatingRepository{}
}

func (r *RatingRepository) Exists(_ context.Context, athleteID int64, ratingType string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rt := range r.ratings {
		if rt.AthleteID == athleteID && rt.Type == ratingType {
			return true, nil
		}
	}
	return false, nil
}

func (r *RatingRepository) Insert(_ context.Context, rt rating.Rating) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ratings = append(r.ratings, rt)
	return nil
}

func (r *RatingRepository) All() []rating.Rating {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]rating.Rating, len(r.ratings))
	copy(out, r.ratings)
	return out
}

type ContractRepository struct {
	mu        sync.RWMutex
	contracts []contract.Contract
}

func NewContractRepository() *ContractRepository {
	return &ContractRepository{}
}

func (r *ContractRepository) Exists(_ context.Context, athleteID int64, teamName string, year int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.contracts {
		if c.AthleteID == athleteID && c.TeamName == teamName && c.Year == year {
			return true, nil
		}
	}
	return false, nil
}

func (r *ContractRepository) Insert(_ context.Context, c contract.Contract) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.contracts = append(r.contracts, c)
	return nil
}

func (r *ContractRepository) All() []contract.Contract {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]contract.Contract, len(r.contracts))
	copy(out, r.contracts)
	return out
}

type DraftRepository struct {
	mu    sync.RWMutex
	picks []draft.Pick
}

func NewDraftRepository() *DraftRepository {
	return &DraftRepository{}
}

func (r *DraftRepository) Exists(_ context.Context, year, round, pickNumber int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.picks {
		if p.Year == year && p.Round == round && p.PickNumber == pickNumber {
			return true, nil
		}
	}
	return false, nil
}

func (r *DraftRepository) Insert(_ context.Context, p draft.Pick) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.picks = append(r.picks, p)
	return nil
}

func (r *DraftRepository) All() []draft.Pick {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]draft.Pick, len(r.picks))
	copy(out, r.picks)
	return out
}
