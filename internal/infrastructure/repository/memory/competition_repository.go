package memory

import (
	"context"
	"sync"

	"github.com/gridstats/gridiron/internal/domain/competition"
)

type refereeLink struct {
	competitionID int64
	officialID    int64
}

type CompetitionRepository struct {
	mu           sync.RWMutex
	nextStatusID int64
	competitions map[int64]competition.Competition
	competitors  []competition.Competitor
	statuses     map[int64]competition.Status
	statusTypes  map[int64]competition.StatusType
	referees     []refereeLink
}

func NewCompetitionRepository() *CompetitionRepository {
	return &CompetitionRepository{
		competitions: make(map[int64]competition.Competition),
		statuses:     make(map[int64]competition.Status),
		statusTypes:  make(map[int64]competition.StatusType),
	}
}

func (r *CompetitionRepository) GetByID(_ context.Context, id int64) (competition.Competition, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.competitions[id]
	return c, ok, nil
}

func (r *CompetitionRepository) Insert(_ context.Context, c competition.Competition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.competitions[c.ID] = c
	return nil
}

func (r *CompetitionRepository) CompetitorExists(_ context.Context, c competition.Competitor) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, existing := range r.competitors {
		if existing == c {
			return true, nil
		}
	}
	return false, nil
}

func (r *CompetitionRepository) InsertCompetitor(_ context.Context, c competition.Competitor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.competitors = append(r.competitors, c)
	return nil
}

func (r *CompetitionRepository) FindStatus(_ context.Context, status competition.Status) (competition.Status, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.statuses {
		if s.Clock == status.Clock && s.DisplayClock == status.DisplayClock && s.Period == status.Period && s.TypeID == status.TypeID {
			return s, true, nil
		}
	}
	return competition.Status{}, false, nil
}

func (r *CompetitionRepository) InsertStatus(_ context.Context, s competition.Status) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextStatusID++
	s.ID = r.nextStatusID
	r.statuses[s.ID] = s
	return s.ID, nil
}

func (r *CompetitionRepository) GetStatusType(_ context.Context, id int64) (competition.StatusType, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st, ok := r.statusTypes[id]
	return st, ok, nil
}

func (r *CompetitionRepository) InsertStatusType(_ context.Context, st competition.StatusType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.statusTypes[st.ID] = st
	return nil
}

func (r *CompetitionRepository) LinkReferee(_ context.Context, competitionID, officialID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, l := range r.referees {
		if l.competitionID == competitionID && l.officialID == officialID {
			return nil
		}
	}
	r.referees = append(r.referees, refereeLink{competitionID: competitionID, officialID: officialID})
	return nil
}

// Competitors returns the stored competitor rows, for tests.
func (r *CompetitionRepository) Competitors() []competition.Competitor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]competition.Competitor, len(r.competitors))
	copy(out, r.competitors)
	return out
}

// RefereeCount reports how many referee links are stored, for tests.
func (r *CompetitionRepository) RefereeCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.referees)
}
