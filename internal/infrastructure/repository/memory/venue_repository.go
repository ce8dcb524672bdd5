package memory

import (
	"context"
	"sync"

	"github.com/gridstats/gridiron/internal/domain/venue"
)

type VenueRepository struct {
	mu     sync.RWMutex
	venues map[int64]venue.Venue
}

func NewVenueRepository() *VenueRepository {
	return &VenueRepository{venues: make(map[int64]venue.Venue)}
}

func (r *VenueRepository) GetByID(_ context.Context, id int64) (venue.Venue, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.venues[id]
	return v, ok, nil
}

func (r *VenueRepository) Insert(_ context.Context, v venue.Venue) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.venues[v.ID] = v
	return nil
}

// Count reports how many venues are stored, for tests.
func (r *VenueRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.venues)
}
