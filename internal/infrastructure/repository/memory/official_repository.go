package memory

import (
	"context"
	"sync"

	"github.com/gridstats/gridiron/internal/domain/official"
)

type OfficialRepository struct {
	mu        sync.RWMutex
	officials map[int64]official.Official
	positions map[int64]official.Position
}

func NewOfficialRepository() *OfficialRepository {
	return &OfficialRepository{
		officials: make(map[int64]official.Official),
		positions: make(map[int64]official.Position),
	}
}

func (r *OfficialRepository) GetByID(_ context.Context, id int64) (official.Official, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.officials[id]
	return o, ok, nil
}

func (r *OfficialRepository) Insert(_ context.Context, o official.Official) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.officials[o.ID] = o
	return nil
}

func (r *OfficialRepository) GetPositionByID(_ context.Context, id int64) (official.Position, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.positions[id]
	return p, ok, nil
}

func (r *OfficialRepository) InsertPosition(_ context.Context, p official.Position) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.positions[p.ID] = p
	return nil
}
