package memory

import (
	"context"
	"sync"

	"github.com/gridstats/gridiron/internal/domain/drive"
)

type DriveRepository struct {
	mu     sync.RWMutex
	drives map[int64]drive.Drive
}

func NewDriveRepository() *DriveRepository {
	return &DriveRepository{drives: make(map[int64]drive.Drive)}
}

func (r *DriveRepository) GetByID(_ context.Context, id int64) (drive.Drive, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.drives[id]
	return d, ok, nil
}

func (r *DriveRepository) Insert(_ context.Context, d drive.Drive) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.drives[d.ID] = d
	return nil
}

// Count reports how many drives are stored, for tests.
func (r *DriveRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.drives)
}
