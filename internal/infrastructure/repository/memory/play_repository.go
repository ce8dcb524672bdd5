package memory

import (
	"context"
	"sync"

	"github.com/gridstats/gridiron/internal/domain/play"
)

type PlayRepository struct {
	mu                sync.RWMutex
	nextParticipantID int64
	plays             map[int64]play.Play
	participants      map[int64]play.Participant
	stats             []play.Stat
}

func NewPlayRepository() *PlayRepository {
	return &PlayRepository{
		plays:        make(map[int64]play.Play),
		participants: make(map[int64]play.Participant),
	}
}

func (r *PlayRepository) GetByID(_ context.Context, id int64) (play.Play, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.plays[id]
	return p, ok, nil
}

func (r *PlayRepository) Insert(_ context.Context, p play.Play) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.plays[p.ID] = p
	return nil
}

func (r *PlayRepository) FindParticipant(_ context.Context, playID, athleteID, order int64) (play.Participant, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.participants {
		if p.PlayID == playID && p.AthleteID == athleteID && p.Order == order {
			return p, true, nil
		}
	}
	return play.Participant{}, false, nil
}

func (r *PlayRepository) InsertParticipant(_ context.Context, p play.Participant) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextParticipantID++
	p.ID = r.nextParticipantID
	r.participants[p.ID] = p
	return p.ID, nil
}

func (r *PlayRepository) StatExists(_ context.Context, s play.Stat) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, existing := range r.stats {
		if existing == s {
			return true, nil
		}
	}
	return false, nil
}

func (r *PlayRepository) InsertStat(_ context.Context, s play.Stat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stats = append(r.stats, s)
	return nil
}

// Counts report stored row totals, for tests.
func (r *PlayRepository) Counts() (plays, participants, stats int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.plays), len(r.participants), len(r.stats)
}
