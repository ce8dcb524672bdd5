package memory

import (
	"context"
	"sync"

	"github.com/gridstats/gridiron/internal/domain/athlete"
)

type AthleteRepository struct {
	mu       sync.RWMutex
	athletes map[int64]athlete.Athlete
}

func NewAthleteRepository() *AthleteRepository {
	return &AthleteRepository{athletes: make(map[int64]athlete.Athlete)}
}

func (r *AthleteRepository) GetByID(_ context.Context, id int64) (athlete.Athlete, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.athletes[id]
	return a, ok, nil
}

func (r *AthleteRepository) Insert(_ context.Context, a athlete.Athlete) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.athletes[a.ID] = a
	return nil
}

type PositionRepository struct {
	mu        sync.RWMutex
	nextID    int64
	positions map[int64]athlete.Position
}

func NewPositionRepository() *PositionRepository {
	return &PositionRepository{positions: make(map[int64]athlete.Position)}
}

func (r *PositionRepository) FindPositionByName(_ context.Context, name string) (athlete.Position, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.positions {
		if p.Name == name {
			return p, true, nil
		}
	}
	return athlete.Position{}, false, nil
}

func (r *PositionRepository) InsertPosition(_ context.Context, name string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	r.positions[r.nextID] = athlete.Position{ID: r.nextID, Name: name}
	return r.nextID, nil
}
