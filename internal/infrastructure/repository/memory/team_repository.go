package memory

import (
	"context"
	"sync"

	"github.com/gridstats/gridiron/internal/domain/team"
)

type TeamRepository struct {
	mu      sync.RWMutex
	teams   map[int64]team.Team
	history []team.History
}

func NewTeamRepository() *TeamRepository {
	return &TeamRepository{teams: make(map[int64]team.Team)}
}

func (r *TeamRepository) GetByID(_ context.Context, id int64) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.teams[id]
	return t, ok, nil
}

func (r *TeamRepository) Insert(_ context.Context, t team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.teams[t.ID] = t
	return nil
}

func (r *TeamRepository) HistoryExists(_ context.Context, athleteID, teamID, season int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.history {
		if h.AthleteID == athleteID && h.TeamID == teamID && h.Season == season {
			return true, nil
		}
	}
	return false, nil
}

func (r *TeamRepository) InsertHistory(_ context.Context, h team.History) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.history = append(r.history, h)
	return nil
}

// HistoryCount reports how many history rows are stored, for tests.
func (r *TeamRepository) HistoryCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.history)
}
